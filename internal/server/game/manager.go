package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"janggi/internal/janggi"
)

var ErrGameNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*Session
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*Session)}
}

// NewGame registers a game in the starting position.
func (m *Manager) NewGame() *Session {
	return m.add(janggi.NewGame())
}

// Load registers a game from an encoded position.
func (m *Manager) Load(fen string) (*Session, error) {
	g, err := janggi.DecodePosition(fen)
	if err != nil {
		return nil, err
	}
	return m.add(g), nil
}

func (m *Manager) add(g *janggi.Game) *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		game:      g,
		updatedAt: now,
	}
	m.mu.Lock()
	m.games[s.ID] = s
	m.mu.Unlock()
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, errors.Wrapf(ErrGameNotFound, "id %q", id)
	}
	return s, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return errors.Wrapf(ErrGameNotFound, "id %q", id)
	}
	delete(m.games, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
