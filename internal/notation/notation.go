// Package notation converts between board squares and their text form: a file
// letter a-i followed by a rank number 1-10, e.g. "c7" or "e10". Rank 1 is
// Red's back rank (row 0).
package notation

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"janggi/internal/janggi"
)

var ErrBadSquare = errors.New("bad square")

func Parse(s string) (janggi.Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 || len(s) > 3 {
		return janggi.Square{}, errors.Wrapf(ErrBadSquare, "%q", s)
	}
	file := s[0]
	if file < 'a' || file >= 'a'+janggi.Cols {
		return janggi.Square{}, errors.Wrapf(ErrBadSquare, "%q: file out of range", s)
	}
	digits := s[1:]
	if digits[0] < '1' || digits[0] > '9' || (len(digits) == 2 && (digits[1] < '0' || digits[1] > '9')) {
		return janggi.Square{}, errors.Wrapf(ErrBadSquare, "%q: rank must be 1-10", s)
	}
	rank, err := strconv.Atoi(digits)
	if err != nil || rank < 1 || rank > janggi.Rows {
		return janggi.Square{}, errors.Wrapf(ErrBadSquare, "%q: rank out of range", s)
	}
	return janggi.Square{Row: rank - 1, Col: int(file - 'a')}, nil
}

func Format(sq janggi.Square) string {
	if !sq.OnBoard() {
		return "?"
	}
	return string(rune('a'+sq.Col)) + strconv.Itoa(sq.Row+1)
}

// ParseMove reads two squares separated by whitespace, e.g. "c7 c6".
func ParseMove(s string) (janggi.Move, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return janggi.Move{}, errors.Wrapf(ErrBadSquare, "want two squares, got %q", s)
	}
	from, err := Parse(fields[0])
	if err != nil {
		return janggi.Move{}, err
	}
	to, err := Parse(fields[1])
	if err != nil {
		return janggi.Move{}, err
	}
	return janggi.Move{From: from, To: to}, nil
}

func FormatMove(m janggi.Move) string {
	return Format(m.From) + " " + Format(m.To)
}
