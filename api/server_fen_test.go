package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoadFromFEN(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	createGame(t, r, "")

	fen := "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
	body, _ := json.Marshal(FENRequest{FEN: fen})
	req := httptest.NewRequest(http.MethodPost, "/api/games/1/fen", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("load FEN: status %d, body %s", rec.Code, rec.Body.String())
	}
	var resp GameResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// The response FEN carries four fields; the counters are dropped.
	want := "4k3/8/8/8/8/8/8/4K3 w - -"
	if resp.FEN != want {
		t.Errorf("FEN = %q, want %q", resp.FEN, want)
	}
	if resp.MoveCount != 0 {
		t.Errorf("MoveCount after FEN reload = %d, want 0 (history discarded)", resp.MoveCount)
	}
}

func TestLoadFromFENRejectsMalformed(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	createGame(t, r, "")

	body, _ := json.Marshal(FENRequest{FEN: "garbage"})
	req := httptest.NewRequest(http.MethodPost, "/api/games/1/fen", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestLoadFromFENMissingGameReturns404(t *testing.T) {
	_, r := newTestServerAndRouter(t)

	body, _ := json.Marshal(FENRequest{FEN: "4k3/8/8/8/8/8/8/4K3 w - - 0 1"})
	req := httptest.NewRequest(http.MethodPost, "/api/games/5/fen", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
