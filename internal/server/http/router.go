package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"janggi/internal/server/game"
)

// Server wraps the API handler in an http.Server.
type Server struct {
	srv *http.Server
}

func NewServer(addr string, m *game.Manager) *Server {
	mux := http.NewServeMux()
	mux.Handle("/api/", NewHandler(m))
	return &Server{srv: &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}}
}

func (s *Server) ListenAndServe() error {
	log.Printf("listening on %s", s.srv.Addr)
	err := s.srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
