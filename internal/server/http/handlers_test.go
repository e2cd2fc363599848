package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"janggi/internal/server/game"
)

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeState(t *testing.T, rr *httptest.ResponseRecorder) StateResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var resp StateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestNewGamePlayState(t *testing.T) {
	h := NewHandler(game.NewManager())

	created := decodeState(t, post(t, h, "/api/new_game", ""))
	require.NotEmpty(t, created.GameID)
	assert.Equal(t, "blue", created.Turn)
	assert.Equal(t, "UNFINISHED", created.Status)
	assert.Len(t, created.Board, 10)
	assert.Equal(t, "CEHU.UEHC", created.Board[0])
	assert.Contains(t, created.LegalMoves, MoveDTO{From: "c7", To: "c6"})

	played := decodeState(t, post(t, h, "/api/play", `{"game_id":"`+created.GameID+`","from":"c7","to":"c6"}`))
	assert.Equal(t, "red", played.Turn)
	assert.NotEqual(t, created.Hash, played.Hash)

	state := decodeState(t, post(t, h, "/api/state", `{"game_id":"`+created.GameID+`"}`))
	assert.Equal(t, played, state)
}

func TestPlayRejectedMove(t *testing.T) {
	h := NewHandler(nil)
	created := decodeState(t, post(t, h, "/api/new_game", "{}"))

	rr := post(t, h, "/api/play", `{"game_id":"`+created.GameID+`","from":"b8","to":"b6"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var e ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &e))
	assert.Equal(t, "geometry", e.Kind)

	rr = post(t, h, "/api/play", `{"game_id":"`+created.GameID+`","from":"a4","to":"a5"}`)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &e))
	assert.Equal(t, "structural", e.Kind)

	rr = post(t, h, "/api/play", `{"game_id":"`+created.GameID+`","from":"z1","to":"a5"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	state := decodeState(t, post(t, h, "/api/state", `{"game_id":"`+created.GameID+`"}`))
	assert.Equal(t, created, state)
}

func TestNewGameFromPosition(t *testing.T) {
	h := NewHandler(nil)
	resp := decodeState(t, post(t, h, "/api/new_game", `{"position":"9/4G4/9/9/9/9/9/9/C8/1C1g5 b"}`))
	assert.Equal(t, "RED_WON", resp.Status)
	assert.True(t, resp.BlueInCheck)
	assert.Empty(t, resp.LegalMoves)

	rr := post(t, h, "/api/new_game", `{"position":"nonsense"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouting(t *testing.T) {
	h := NewHandler(nil)

	rr := post(t, h, "/api/state", `{"game_id":"nope"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = post(t, h, "/api/unknown", `{}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = post(t, h, "/api/play", `not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
