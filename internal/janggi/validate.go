package janggi

// validate reports whether pc may move from -> to on b, judged only by geometry
// and occupancy. It never mutates the board.
func (b *Board) validate(pc Piece, from, to Square) error {
	if !from.OnBoard() || !to.OnBoard() {
		return ErrOffBoard
	}
	pt, team := pc.Type(), pc.Team()
	d := deltaOf(from, to)

	if !inTemplate(pt, team, d) {
		return ErrNotInTemplate
	}
	if PalaceOnly(pt) && !InPalace(to) {
		return ErrOutsidePalace
	}
	for _, off := range blockers(pt, d) {
		if b.At(from.Add(off)) != 0 {
			return ErrBlocked
		}
	}
	dst := b.At(to)
	if dst != 0 && dst.Team() == team && d != pass {
		return ErrSelfCapture
	}

	switch pt {
	case PieceChariot:
		if b.between(from, to) != 0 {
			return ErrChariotBlocked
		}
	case PieceCannon:
		return b.validateCannon(from, to)
	}
	return nil
}

// A Cannon needs exactly one screen between start and end; neither the screen
// nor the captured piece may be a Cannon.
func (b *Board) validateCannon(from, to Square) error {
	if from == to {
		return nil
	}
	if from.Row != to.Row && from.Col != to.Col {
		return ErrNotInTemplate
	}
	if dst := b.At(to); dst != 0 && dst.Type() == PieceCannon {
		return ErrCannonCapture
	}
	screens := 0
	for _, sq := range lineBetween(from, to) {
		pc := b.At(sq)
		if pc == 0 {
			continue
		}
		if pc.Type() == PieceCannon {
			return ErrCannonScreen
		}
		screens++
	}
	if screens != 1 {
		return ErrCannonScreen
	}
	return nil
}

// between counts occupied squares strictly between two squares on one line.
func (b *Board) between(from, to Square) int {
	n := 0
	for _, sq := range lineBetween(from, to) {
		if b.At(sq) != 0 {
			n++
		}
	}
	return n
}

// lineBetween lists the squares strictly between from and to, both exclusive.
// Squares that do not share a row or column yield nil.
func lineBetween(from, to Square) []Square {
	var step Delta
	switch {
	case from.Row == to.Row && from.Col != to.Col:
		step = Delta{0, sign(to.Col - from.Col)}
	case from.Col == to.Col && from.Row != to.Row:
		step = Delta{sign(to.Row - from.Row), 0}
	default:
		return nil
	}
	var out []Square
	for sq := from.Add(step); sq != to; sq = sq.Add(step) {
		out = append(out, sq)
	}
	return out
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}
