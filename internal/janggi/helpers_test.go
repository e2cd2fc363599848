package janggi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const initialFEN = "CEHU1UEHC/4G4/1N5N1/S1S1S1S1S/9/9/s1s1s1s1s/1n5n1/4g4/cehu1uehc b"

func sq(r, c int) Square { return Square{Row: r, Col: c} }

func mustDecode(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := DecodePosition(fen)
	require.NoError(t, err, "decode %q", fen)
	return g
}

// requireUnchanged fails if g differs from before in any observable field.
func requireUnchanged(t *testing.T, before Game, g *Game) {
	t.Helper()
	if diff := cmp.Diff(before, *g, cmp.AllowUnexported(Game{})); diff != "" {
		t.Fatalf("game mutated by rejected move (-before +after):\n%s", diff)
	}
}
