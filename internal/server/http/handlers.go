package httpserver

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/pkg/errors"

	"janggi/internal/janggi"
	"janggi/internal/notation"
	"janggi/internal/server/game"
)

const maxBodyBytes = 1 << 16

// Handler implements http.Handler for the /api/* routes.
type Handler struct {
	games *game.Manager
}

func NewHandler(m *game.Manager) *Handler {
	if m == nil {
		m = game.NewManager()
	}
	return &Handler{games: m}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/state":
		h.handleState(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if err := decodeJSON(w, r, &req); err != nil && errors.Cause(err) != io.EOF {
		writeError(w, http.StatusBadRequest, err, "")
		return
	}

	var s *game.Session
	if req.Position == "" {
		s = h.games.NewGame()
	} else {
		var err error
		s, err = h.games.Load(req.Position)
		if err != nil {
			writeError(w, http.StatusBadRequest, err, "")
			return
		}
	}
	log.Printf("new game %s", s.ID)
	writeJSON(w, http.StatusOK, viewToResponse(s.View()))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err, "")
		return
	}
	s, ok := h.session(w, req.GameID)
	if !ok {
		return
	}

	from, err := notation.Parse(req.From)
	if err != nil {
		writeError(w, http.StatusBadRequest, err, "")
		return
	}
	to, err := notation.Parse(req.To)
	if err != nil {
		writeError(w, http.StatusBadRequest, err, "")
		return
	}

	v, err := s.Play(from, to)
	if err != nil {
		writeError(w, http.StatusBadRequest, err, janggi.KindOf(err).String())
		return
	}
	if v.State != janggi.Unfinished {
		log.Printf("game %s finished: %s", s.ID, v.State)
	}
	writeJSON(w, http.StatusOK, viewToResponse(v))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err, "")
		return
	}
	s, ok := h.session(w, req.GameID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, viewToResponse(s.View()))
}

func (h *Handler) session(w http.ResponseWriter, id string) (*game.Session, bool) {
	s, err := h.games.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err, "")
		return nil, false
	}
	return s, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(err, "bad json")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error, kind string) {
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Kind: kind})
}

func formatHash(h uint64) string {
	return fmt.Sprintf("%016x", h)
}
