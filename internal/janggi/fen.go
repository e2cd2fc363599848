package janggi

import (
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

var ErrInvalidPosition = errors.New("invalid position")

// Encode writes the position FEN-style: ten ranks from row 0 to row 9 joined by
// "/", digits for runs of empty squares, then "b" or "r" for the side to move.
func (g *Game) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := g.board.Squares[r*Cols+c]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pc.Glyph())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if g.turn == Red {
		sb.WriteByte('r')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidPosition, format, args...)
}

// DecodePosition parses the output of Encode. Every problem found is reported,
// not only the first one.
func DecodePosition(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) != 2 {
		return nil, invalid("want board and side to move, got %d fields", len(parts))
	}

	var errs *multierror.Error
	var b Board
	generals := [2]int{}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != Rows {
		errs = multierror.Append(errs, invalid("want %d ranks, got %d", Rows, len(ranks)))
	}
	for r, rank := range ranks {
		if r >= Rows {
			break
		}
		c := 0
		for _, ch := range rank {
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			pc, ok := pieceFromGlyph(ch)
			if !ok {
				errs = multierror.Append(errs, invalid("rank %d: unknown piece %q", r, ch))
				c++
				continue
			}
			if c >= Cols {
				c++
				continue
			}
			sq := Square{Row: r, Col: c}
			b.set(sq, pc)
			if PalaceOnly(pc.Type()) && !InPalace(sq) {
				errs = multierror.Append(errs, invalid("%s outside palace at (%d,%d)", pc, r, c))
			}
			if pc.Type() == PieceGeneral {
				generals[pc.Team()]++
				b.Generals[pc.Team()] = sq
			}
			c++
		}
		if c != Cols {
			errs = multierror.Append(errs, invalid("rank %d: want %d files, got %d", r, Cols, c))
		}
	}

	var turn Team
	switch parts[1] {
	case "b":
		turn = Blue
	case "r":
		turn = Red
	default:
		errs = multierror.Append(errs, invalid("unknown side to move %q", parts[1]))
	}

	for _, t := range []Team{Blue, Red} {
		if generals[t] != 1 {
			errs = multierror.Append(errs, invalid("%s has %d generals", t, generals[t]))
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	if b.Attacked(turn.Opponent()) {
		return nil, invalid("%s is in check but not on move", turn.Opponent())
	}
	return newGameFromBoard(b, turn), nil
}
