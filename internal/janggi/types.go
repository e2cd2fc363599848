package janggi

type Team int8

const (
	NoTeam Team = -1
	Blue   Team = 0 // moves first
	Red    Team = 1
)

func (t Team) Opponent() Team {
	switch t {
	case Blue:
		return Red
	case Red:
		return Blue
	}
	return NoTeam
}

func (t Team) String() string {
	switch t {
	case Blue:
		return "blue"
	case Red:
		return "red"
	}
	return "none"
}

type PieceType int8

const (
	PieceNone PieceType = iota
	PieceGeneral
	PieceGuard
	PieceChariot
	PieceElephant
	PieceHorse
	PieceCannon
	PieceSoldier
)

var pieceTypeNames = [...]string{
	PieceNone:     "none",
	PieceGeneral:  "general",
	PieceGuard:    "guard",
	PieceChariot:  "chariot",
	PieceElephant: "elephant",
	PieceHorse:    "horse",
	PieceCannon:   "cannon",
	PieceSoldier:  "soldier",
}

func (pt PieceType) String() string {
	if pt < 0 || int(pt) >= len(pieceTypeNames) {
		return "unknown"
	}
	return pieceTypeNames[pt]
}

// Piece: 0 is an empty square, >0 Red, <0 Blue, abs is the PieceType.
type Piece int8

func MakePiece(team Team, pt PieceType) Piece {
	if pt == PieceNone || team == NoTeam {
		return 0
	}
	if team == Red {
		return Piece(pt)
	}
	return -Piece(pt)
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Team() Team {
	if p == 0 {
		return NoTeam
	}
	if p > 0 {
		return Red
	}
	return Blue
}

func (p Piece) String() string {
	if p == 0 {
		return "empty"
	}
	return p.Team().String() + " " + p.Type().String()
}

// Square is a (row, column) pair. Row 0 is Red's back rank.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < Rows && s.Col >= 0 && s.Col < Cols
}

func (s Square) Add(d Delta) Square {
	return Square{Row: s.Row + d.DRow, Col: s.Col + d.DCol}
}

func (s Square) index() int { return s.Row*Cols + s.Col }

func squareAt(idx int) Square { return Square{Row: idx / Cols, Col: idx % Cols} }

// Delta is a displacement vector between two squares.
type Delta struct {
	DRow, DCol int
}

func deltaOf(from, to Square) Delta {
	return Delta{DRow: to.Row - from.Row, DCol: to.Col - from.Col}
}

type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

type GameState int8

const (
	Unfinished GameState = iota
	RedWon
	BlueWon
)

func (s GameState) String() string {
	switch s {
	case RedWon:
		return "RED_WON"
	case BlueWon:
		return "BLUE_WON"
	}
	return "UNFINISHED"
}

func wonBy(t Team) GameState {
	if t == Red {
		return RedWon
	}
	return BlueWon
}
