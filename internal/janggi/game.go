package janggi

// Game is the referee for a single Janggi game. It is not safe for concurrent
// use; callers sharing a Game must serialize access.
type Game struct {
	board   Board
	turn    Team
	state   GameState
	inCheck [2]bool
}

// NewGame returns a game in the standard starting position with Blue to move.
func NewGame() *Game {
	return &Game{
		board: initialBoard(),
		turn:  Blue,
	}
}

// newGameFromBoard adopts a position, derives its check flags and settles an
// already mated side to move.
func newGameFromBoard(b Board, turn Team) *Game {
	g := &Game{board: b, turn: turn}
	g.inCheck[Blue] = b.Attacked(Blue)
	g.inCheck[Red] = b.Attacked(Red)
	if g.inCheck[turn] {
		g.searchCheckmate(turn)
	}
	return g
}

func (g *Game) Snapshot() Board         { return g.board }
func (g *Game) State() GameState        { return g.state }
func (g *Game) Turn() Team              { return g.turn }
func (g *Game) PieceAt(sq Square) Piece { return g.board.At(sq) }

// General returns the square of t's General.
func (g *Game) General(t Team) Square { return g.board.General(t) }

func (g *Game) InCheck(t Team) bool {
	if t != Red && t != Blue {
		return false
	}
	return g.inCheck[t]
}

// SubmitMove validates and commits a move for the side to move. A zero
// displacement is a pass. On rejection the game is left exactly as it was and
// the returned error is a *MoveError.
func (g *Game) SubmitMove(from, to Square) error {
	if g.state != Unfinished {
		return reject(StructuralRejection, from, to, ErrGameFinished)
	}
	if !from.OnBoard() || !to.OnBoard() {
		return reject(StructuralRejection, from, to, ErrOffBoard)
	}
	pc := g.board.At(from)
	if pc == 0 {
		return reject(StructuralRejection, from, to, ErrNoPiece)
	}
	mover := g.turn
	if pc.Team() != mover {
		return reject(StructuralRejection, from, to, ErrWrongTurn)
	}

	u, res, err := g.board.tryMove(pc, from, to)
	if err != nil {
		return reject(GeometryRejection, from, to, err)
	}
	if res == SelfExposed {
		g.board.revert(u)
		return reject(SelfExposureRejection, from, to, ErrSelfExposure)
	}

	if res == DeliversCheck {
		g.inCheck[mover.Opponent()] = true
		g.inCheck[mover] = false
	} else {
		g.inCheck[Blue] = false
		g.inCheck[Red] = false
	}

	g.turn = mover.Opponent()
	if g.inCheck[g.turn] {
		g.searchCheckmate(g.turn)
	}
	return nil
}

// undo holds what is needed to take back one applied move.
type undo struct {
	from, to Square
	moved    Piece
	captured Piece
	general  Square
}

func (b *Board) apply(from, to Square) undo {
	u := undo{from: from, to: to, moved: b.At(from), captured: b.At(to)}
	if from == to {
		return u
	}
	team := u.moved.Team()
	u.general = b.Generals[team]
	b.set(to, u.moved)
	b.set(from, 0)
	if u.moved.Type() == PieceGeneral {
		b.Generals[team] = to
	}
	return u
}

func (b *Board) revert(u undo) {
	if u.from == u.to {
		return
	}
	b.set(u.from, u.moved)
	b.set(u.to, u.captured)
	b.Generals[u.moved.Team()] = u.general
}

// tryMove validates pc's move, applies it and classifies the result from the
// mover's point of view. The board is left mutated; the caller decides whether
// to keep or revert it. A validation error leaves the board untouched.
func (b *Board) tryMove(pc Piece, from, to Square) (undo, CheckResult, error) {
	if err := b.validate(pc, from, to); err != nil {
		return undo{}, NoCheck, err
	}
	u := b.apply(from, to)
	return u, b.Classify(pc.Team()), nil
}
