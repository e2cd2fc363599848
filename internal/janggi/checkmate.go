package janggi

// candidates calls fn for every owned piece of team and every non-zero
// template displacement that lands on the board. It stops when fn returns false.
func (b *Board) candidates(team Team, fn func(pc Piece, from, to Square) bool) {
	for idx, pc := range b.Squares {
		if pc == 0 || pc.Team() != team {
			continue
		}
		from := squareAt(idx)
		for _, d := range Template(pc.Type(), team) {
			if d == pass {
				continue
			}
			to := from.Add(d)
			if !to.OnBoard() {
				continue
			}
			if !fn(pc, from, to) {
				return
			}
		}
	}
}

// accepts reports whether from -> to would survive validation and the check
// test. The trial runs on a copy; b is never modified.
func (b *Board) accepts(pc Piece, from, to Square) bool {
	trial := *b
	_, res, err := trial.tryMove(pc, from, to)
	return err == nil && res != SelfExposed
}

func (b *Board) hasEscape(team Team) bool {
	found := false
	b.candidates(team, func(pc Piece, from, to Square) bool {
		if b.accepts(pc, from, to) {
			found = true
			return false
		}
		return true
	})
	return found
}

// searchCheckmate ends the game if team, currently in check, has no move that
// gets its General out of check.
func (g *Game) searchCheckmate(team Team) {
	if g.board.hasEscape(team) {
		return
	}
	g.state = wonBy(team.Opponent())
}

// LegalMoves lists every relocating move the side to move could submit and
// have accepted. Pass moves are not included.
func (g *Game) LegalMoves() []Move {
	if g.state != Unfinished {
		return nil
	}
	var out []Move
	g.board.candidates(g.turn, func(pc Piece, from, to Square) bool {
		if g.board.accepts(pc, from, to) {
			out = append(out, Move{From: from, To: to})
		}
		return true
	})
	return out
}

// CanPass reports whether the side to move may forfeit its turn with the piece
// on sq. A Chariot never can, and nobody can while in check.
func (g *Game) CanPass(sq Square) bool {
	if g.state != Unfinished {
		return false
	}
	pc := g.board.At(sq)
	if pc == 0 || pc.Team() != g.turn {
		return false
	}
	return g.board.accepts(pc, sq, sq)
}
