package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"janggi/internal/server/game"
	httpserver "janggi/internal/server/http"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:2888", "listen address")
	flag.Parse()

	srv := httpserver.NewServer(*addr, game.NewManager())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
