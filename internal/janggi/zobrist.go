package janggi

// pieceKeySlots covers every Piece value from -PieceSoldier to +PieceSoldier.
const pieceKeySlots = 2*int(PieceSoldier) + 1

var (
	// pieceKeys[pc+PieceSoldier][square]; the empty-square row stays zero.
	pieceKeys [pieceKeySlots][NumSquares]uint64
	redToMove uint64
)

func init() {
	state := uint64(0x4A616E676769) // any non-zero seed works for xorshift
	rand64 := func() uint64 {
		state ^= state >> 12
		state ^= state << 25
		state ^= state >> 27
		return state * 0x2545F4914F6CDD1D
	}
	for slot := range pieceKeys {
		if slot == int(PieceSoldier) {
			continue
		}
		for idx := range pieceKeys[slot] {
			pieceKeys[slot][idx] = rand64()
		}
	}
	redToMove = rand64()
}

func pieceKey(pc Piece, idx int) uint64 {
	return pieceKeys[int(pc)+int(PieceSoldier)][idx]
}

// Hash is the Zobrist hash of the board and side to move.
func (g *Game) Hash() uint64 {
	var h uint64
	for idx, pc := range g.board.Squares {
		h ^= pieceKey(pc, idx)
	}
	if g.turn == Red {
		h ^= redToMove
	}
	return h
}
