package janggi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type validateCase struct {
	name     string
	from, to Square
	want     error
}

func runValidateCases(t *testing.T, b Board, cases []validateCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := b
			pc := b.At(tc.from)
			err := b.validate(pc, tc.from, tc.to)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
			assert.Equal(t, before, b, "validate must not mutate the board")
		})
	}
}

func TestValidateInitialPosition(t *testing.T) {
	runValidateCases(t, initialBoard(), []validateCase{
		{"soldier forward", sq(6, 2), sq(5, 2), nil},
		{"soldier sideways", sq(6, 2), sq(6, 1), nil},
		{"soldier backward", sq(6, 2), sq(7, 2), ErrNotInTemplate},
		{"red soldier forward", sq(3, 4), sq(4, 4), nil},
		{"horse leap", sq(9, 2), sq(7, 3), nil},
		{"horse onto own cannon", sq(9, 2), sq(7, 1), ErrSelfCapture},
		{"horse leg blocked", sq(0, 2), sq(1, 0), ErrBlocked},
		{"elephant leap", sq(9, 1), sq(6, 3), nil},
		{"elephant blocked", sq(9, 1), sq(7, 4), ErrBlocked},
		{"guard inside palace", sq(9, 3), sq(8, 3), nil},
		{"guard leaves palace", sq(9, 3), sq(8, 2), ErrOutsidePalace},
		{"general pass", sq(8, 4), sq(8, 4), nil},
		{"general two steps", sq(8, 4), sq(6, 4), ErrNotInTemplate},
		{"chariot pass", sq(9, 0), sq(9, 0), ErrNotInTemplate},
		{"chariot clear", sq(9, 0), sq(7, 0), nil},
		{"chariot onto own soldier", sq(9, 0), sq(6, 0), ErrSelfCapture},
		{"chariot through soldier", sq(9, 0), sq(5, 0), ErrChariotBlocked},
		{"chariot diagonal", sq(9, 0), sq(8, 1), ErrNotInTemplate},
		{"cannon pass", sq(7, 1), sq(7, 1), nil},
		{"cannon nothing to jump", sq(7, 1), sq(5, 1), ErrCannonScreen},
		{"cannon single step", sq(7, 1), sq(7, 2), ErrNotInTemplate},
		{"cannon captures cannon", sq(7, 1), sq(2, 1), ErrCannonCapture},
		{"cannon jumps cannon", sq(7, 1), sq(0, 1), ErrCannonScreen},
		{"cannon jumps cannon sideways", sq(7, 1), sq(7, 8), ErrCannonScreen},
		{"off board", sq(9, 0), sq(10, 0), ErrOffBoard},
		{"negative column", sq(9, 0), sq(9, -1), ErrOffBoard},
	})
}

func TestValidateCannonScreens(t *testing.T) {
	// blue cannon (7,0), blue soldier (5,0), red soldier (3,0)
	g := mustDecode(t, "9/4G4/9/S8/9/s8/9/n8/4g4/9 b")
	runValidateCases(t, g.Snapshot(), []validateCase{
		{"jump and capture", sq(7, 0), sq(3, 0), nil},
		{"jump and move", sq(7, 0), sq(4, 0), nil},
		{"two screens", sq(7, 0), sq(2, 0), ErrCannonScreen},
		{"no screen", sq(7, 0), sq(5, 0), ErrSelfCapture},
	})

	// the only screen is a red cannon
	g = mustDecode(t, "9/4G4/9/S8/9/N8/9/n8/4g4/9 b")
	runValidateCases(t, g.Snapshot(), []validateCase{
		{"cannon screen", sq(7, 0), sq(4, 0), ErrCannonScreen},
		{"cannon screen capture", sq(7, 0), sq(3, 0), ErrCannonScreen},
	})
}

func TestElephantSecondLegBlocked(t *testing.T) {
	// blue soldier on (7,2) sits on the diagonal leg of (9,1) -> (6,3)
	g := mustDecode(t, "9/4G4/9/9/9/9/9/2s6/4g4/1e7 b")
	runValidateCases(t, g.Snapshot(), []validateCase{
		{"diagonal leg blocked", sq(9, 1), sq(6, 3), ErrBlocked},
		{"sideways leap clear", sq(9, 1), sq(7, 4), nil},
	})
}

func TestChariotPathExcludesEndpoints(t *testing.T) {
	// blue chariot (9,0), red soldier (5,0): capture allowed, passing it is not
	g := mustDecode(t, "9/4G4/9/9/9/S8/9/9/4g4/c8 b")
	runValidateCases(t, g.Snapshot(), []validateCase{
		{"capture at end", sq(9, 0), sq(5, 0), nil},
		{"stop before", sq(9, 0), sq(6, 0), nil},
		{"one square", sq(9, 0), sq(8, 0), nil},
		{"beyond", sq(9, 0), sq(4, 0), ErrChariotBlocked},
		{"far beyond", sq(9, 0), sq(0, 0), ErrChariotBlocked},
		{"full row", sq(9, 0), sq(9, 8), nil},
	})
}

func TestLineBetween(t *testing.T) {
	assert.Equal(t, []Square{sq(0, 1), sq(0, 2)}, lineBetween(sq(0, 0), sq(0, 3)))
	assert.Equal(t, []Square{sq(4, 5), sq(3, 5)}, lineBetween(sq(5, 5), sq(2, 5)))
	assert.Empty(t, lineBetween(sq(0, 0), sq(0, 1)))
	assert.Nil(t, lineBetween(sq(0, 0), sq(1, 1)))
	assert.Nil(t, lineBetween(sq(3, 3), sq(3, 3)))
}
