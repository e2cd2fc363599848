// Package selfplay plays random legal games to exercise the referee.
package selfplay

import (
	"context"
	"math/rand"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"janggi/internal/janggi"
)

type Config struct {
	Games       int
	Parallel    int
	Seed        int64
	MaxPlies    int
	RepeatLimit int // stop a game once a position occurs this many times; 0 disables
}

func DefaultConfig() Config {
	return Config{
		Games:       10,
		Parallel:    4,
		Seed:        1,
		MaxPlies:    300,
		RepeatLimit: 3,
	}
}

const (
	ReasonCheckmate  = "checkmate"
	ReasonMaxPlies   = "max_plies"
	ReasonRepetition = "repetition"
	ReasonNoMoves    = "no_moves"
)

type Result struct {
	Game     int
	State    janggi.GameState
	Plies    int
	Passes   int
	Reason   string
	Position string
}

type Summary struct {
	BlueWins   int
	RedWins    int
	Unfinished int
	Results    []Result
}

// Run plays cfg.Games games, at most cfg.Parallel at a time. Game i uses seed
// cfg.Seed+i, so results do not depend on scheduling.
func Run(ctx context.Context, cfg Config) (Summary, error) {
	if cfg.Games < 0 || cfg.MaxPlies <= 0 {
		return Summary{}, errors.Errorf("invalid config: games=%d maxplies=%d", cfg.Games, cfg.MaxPlies)
	}
	results := make([]Result, cfg.Games)
	eg, ctx := errgroup.WithContext(ctx)
	if cfg.Parallel > 0 {
		eg.SetLimit(cfg.Parallel)
	}
	for i := 0; i < cfg.Games; i++ {
		i := i
		eg.Go(func() error {
			rng := rand.New(rand.NewSource(cfg.Seed + int64(i)))
			res, err := Play(ctx, rng, cfg)
			if err != nil {
				return errors.Wrapf(err, "game %d", i)
			}
			res.Game = i
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Summary{}, err
	}

	sum := Summary{Results: results}
	for _, r := range results {
		switch r.State {
		case janggi.BlueWon:
			sum.BlueWins++
		case janggi.RedWon:
			sum.RedWins++
		default:
			sum.Unfinished++
		}
	}
	return sum, nil
}

// Play plays one game with uniformly random legal moves. When no relocating
// move exists the side to move passes with its General.
func Play(ctx context.Context, rng *rand.Rand, cfg Config) (Result, error) {
	g := janggi.NewGame()
	seen := map[uint64]int{g.Hash(): 1}
	res := Result{Reason: ReasonMaxPlies}

	for res.Plies < cfg.MaxPlies {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if g.State() != janggi.Unfinished {
			res.Reason = ReasonCheckmate
			break
		}

		legal := g.LegalMoves()
		var mv janggi.Move
		switch {
		case len(legal) > 0:
			mv = legal[rng.Intn(len(legal))]
		case g.CanPass(g.General(g.Turn())):
			sq := g.General(g.Turn())
			mv = janggi.Move{From: sq, To: sq}
			res.Passes++
		default:
			res.Reason = ReasonNoMoves
			res.State = g.State()
			res.Position = g.Encode()
			return res, nil
		}

		if err := g.SubmitMove(mv.From, mv.To); err != nil {
			return res, errors.Wrapf(err, "listed move rejected at ply %d in %s", res.Plies, g.Encode())
		}
		res.Plies++

		h := g.Hash()
		seen[h]++
		if cfg.RepeatLimit > 0 && seen[h] >= cfg.RepeatLimit && g.State() == janggi.Unfinished {
			res.Reason = ReasonRepetition
			break
		}
	}
	if g.State() != janggi.Unfinished {
		res.Reason = ReasonCheckmate
	}
	res.State = g.State()
	res.Position = g.Encode()
	return res, nil
}
