package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"janggi/internal/selfplay"
)

func main() {
	def := selfplay.DefaultConfig()
	games := flag.Int("games", def.Games, "number of games to play")
	parallel := flag.Int("parallel", def.Parallel, "games played at the same time")
	seed := flag.Int64("seed", def.Seed, "base random seed")
	maxPlies := flag.Int("maxplies", def.MaxPlies, "max plies per game")
	repeat := flag.Int("repeat", def.RepeatLimit, "stop a game when a position repeats this often (0 = never)")
	verbose := flag.Bool("v", false, "print every game")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	sum, err := selfplay.Run(ctx, selfplay.Config{
		Games:       *games,
		Parallel:    *parallel,
		Seed:        *seed,
		MaxPlies:    *maxPlies,
		RepeatLimit: *repeat,
	})
	if err != nil {
		log.Fatalf("selfplay failed: %v", err)
	}

	plies := 0
	for _, r := range sum.Results {
		plies += r.Plies
		if *verbose {
			fmt.Printf("game %d: %s after %d plies (%s, %d passes)\n  %s\n",
				r.Game+1, r.State, r.Plies, r.Reason, r.Passes, r.Position)
		}
	}
	fmt.Printf("blue wins: %d, red wins: %d, unfinished: %d\n", sum.BlueWins, sum.RedWins, sum.Unfinished)
	log.Printf("Selfplay finished: %d plies in %v", plies, time.Since(start))
}
