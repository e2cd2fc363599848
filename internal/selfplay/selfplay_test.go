package selfplay

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"janggi/internal/janggi"
)

func TestRunIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Games = 4
	cfg.MaxPlies = 80

	a, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	cfg.Parallel = 1
	b, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, cfg.Games, a.BlueWins+a.RedWins+a.Unfinished)
	for i, r := range a.Results {
		assert.Equal(t, i, r.Game)
		assert.LessOrEqual(t, r.Plies, cfg.MaxPlies)
		_, err := janggi.DecodePosition(r.Position)
		assert.NoError(t, err, "final position of game %d", i)
	}
}

func TestPlayStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Play(ctx, rand.New(rand.NewSource(1)), DefaultConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPlies = 0
	_, err := Run(context.Background(), cfg)
	assert.Error(t, err)
}
