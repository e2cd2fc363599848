package httpserver

import (
	"janggi/internal/janggi"
	"janggi/internal/notation"
	"janggi/internal/server/game"
)

// PlayRequest carries squares in notation, e.g. {"from":"c7","to":"c6"}.
type PlayRequest struct {
	GameID string `json:"game_id"`
	From   string `json:"from"`
	To     string `json:"to"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

// NewGameRequest may carry an encoded start position; empty means the standard layout.
type NewGameRequest struct {
	Position string `json:"position"`
}

type MoveDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type StateResponse struct {
	GameID      string    `json:"game_id"`
	Position    string    `json:"position"`
	Board       []string  `json:"board"` // one string of glyphs per row, row 0 first
	Turn        string    `json:"turn"`
	Status      string    `json:"status"`
	BlueInCheck bool      `json:"blue_in_check"`
	RedInCheck  bool      `json:"red_in_check"`
	LegalMoves  []MoveDTO `json:"legal_moves"`
	Hash        string    `json:"hash"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func moveToDTO(m janggi.Move) MoveDTO {
	return MoveDTO{From: notation.Format(m.From), To: notation.Format(m.To)}
}

func movesToDTO(ms []janggi.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

func boardRows(b janggi.Board) []string {
	rows := make([]string, janggi.Rows)
	for r := range rows {
		buf := make([]rune, janggi.Cols)
		for c := range buf {
			buf[c] = b.At(janggi.Square{Row: r, Col: c}).Glyph()
		}
		rows[r] = string(buf)
	}
	return rows
}

func viewToResponse(v game.View) StateResponse {
	return StateResponse{
		GameID:      v.ID,
		Position:    v.Position,
		Board:       boardRows(v.Board),
		Turn:        v.Turn.String(),
		Status:      v.State.String(),
		BlueInCheck: v.InCheck[janggi.Blue],
		RedInCheck:  v.InCheck[janggi.Red],
		LegalMoves:  movesToDTO(v.LegalMoves),
		Hash:        formatHash(v.Hash),
	}
}
