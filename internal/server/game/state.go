package game

import (
	"sync"
	"time"

	"janggi/internal/janggi"
)

// Session owns one game. All access to the game goes through the session
// lock, so concurrent requests for the same game are applied one at a time.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	game      *janggi.Game
	updatedAt time.Time
}

// View is a consistent copy of a session taken under its lock.
type View struct {
	ID         string
	Position   string
	Board      janggi.Board
	Turn       janggi.Team
	State      janggi.GameState
	InCheck    [2]bool
	LegalMoves []janggi.Move
	Hash       uint64
	UpdatedAt  time.Time
}

// Play submits a move and returns the resulting view. A rejected move returns
// the unchanged view together with the rejection.
func (s *Session) Play(from, to janggi.Square) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.game.SubmitMove(from, to); err != nil {
		return s.viewLocked(), err
	}
	s.updatedAt = time.Now()
	return s.viewLocked(), nil
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	g := s.game
	return View{
		ID:         s.ID,
		Position:   g.Encode(),
		Board:      g.Snapshot(),
		Turn:       g.Turn(),
		State:      g.State(),
		InCheck:    [2]bool{g.InCheck(janggi.Blue), g.InCheck(janggi.Red)},
		LegalMoves: g.LegalMoves(),
		Hash:       g.Hash(),
		UpdatedAt:  s.updatedAt,
	}
}
