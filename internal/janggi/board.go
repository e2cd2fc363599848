package janggi

import (
	"strings"
	"unicode"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols
)

// Board is a value type: assigning it copies the whole position, cache included.
type Board struct {
	Squares [NumSquares]Piece
	// Generals caches each team's General square, indexed by Team.
	Generals [2]Square
}

func (b *Board) At(sq Square) Piece {
	if !sq.OnBoard() {
		return 0
	}
	return b.Squares[sq.index()]
}

func (b *Board) set(sq Square, pc Piece) {
	b.Squares[sq.index()] = pc
}

// General returns t's General square, or an off-board square for NoTeam.
func (b *Board) General(t Team) Square {
	if t != Red && t != Blue {
		return Square{Row: -1, Col: -1}
	}
	return b.Generals[t]
}

// palace: rows 0-2 and 7-9, columns 3-5. Shared by both teams.
func InPalace(sq Square) bool {
	if sq.Col < 3 || sq.Col > 5 {
		return false
	}
	return (sq.Row >= 0 && sq.Row <= 2) || (sq.Row >= 7 && sq.Row <= 9)
}

var glyphToPieceType = map[rune]PieceType{
	'g': PieceGeneral,
	'u': PieceGuard,
	'c': PieceChariot,
	'e': PieceElephant,
	'h': PieceHorse,
	'n': PieceCannon,
	's': PieceSoldier,
}

var pieceTypeToGlyph = map[PieceType]rune{}

func init() {
	for g, pt := range glyphToPieceType {
		pieceTypeToGlyph[pt] = g
	}
}

// Glyph: Red upper-case, Blue lower-case, '.' for empty.
func (p Piece) Glyph() rune {
	if p == 0 {
		return '.'
	}
	g, ok := pieceTypeToGlyph[p.Type()]
	if !ok {
		return '?'
	}
	if p.Team() == Red {
		return unicode.ToUpper(g)
	}
	return g
}

func pieceFromGlyph(ch rune) (Piece, bool) {
	pt, ok := glyphToPieceType[unicode.ToLower(ch)]
	if !ok {
		return 0, false
	}
	team := Blue
	if unicode.IsUpper(ch) {
		team = Red
	}
	return MakePiece(team, pt), true
}

const initialLayout = `CEHU.UEHC
....G....
.N.....N.
S.S.S.S.S
.........
.........
s.s.s.s.s
.n.....n.
....g....
cehu.uehc`

func initialBoard() Board {
	var b Board
	lines := strings.Split(initialLayout, "\n")
	if len(lines) != Rows {
		panic("initialLayout must have 10 rows")
	}
	for r, line := range lines {
		if len(line) != Cols {
			panic("initialLayout must have 9 columns")
		}
		for c, ch := range line {
			if ch == '.' {
				continue
			}
			pc, ok := pieceFromGlyph(ch)
			if !ok {
				panic("unknown glyph: " + string(ch))
			}
			sq := Square{Row: r, Col: c}
			b.set(sq, pc)
			if pc.Type() == PieceGeneral {
				b.Generals[pc.Team()] = sq
			}
		}
	}
	return b
}

// String prints the board one rank per line, glyphs separated by spaces.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(b.Squares[r*Cols+c].Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
