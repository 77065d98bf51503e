package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func playMove(t *testing.T, r http.Handler, id string, req MoveRequest) (*httptest.ResponseRecorder, GameResponse) {
	t.Helper()
	body, _ := json.Marshal(req)
	httpReq := httptest.NewRequest(http.MethodPost, "/api/games/"+id+"/moves", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httpReq)

	var resp GameResponse
	if rec.Code == http.StatusOK {
		_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	}
	return rec, resp
}

func TestMakeMoveBySAN(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	createGame(t, r, "")

	rec, resp := playMove(t, r, "1", MoveRequest{PGN: "e4"})
	if rec.Code != http.StatusOK {
		t.Fatalf("move failed: %d, body %s", rec.Code, rec.Body.String())
	}
	if resp.ActiveColor != "b" {
		t.Errorf("ActiveColor after e4 = %q, want b", resp.ActiveColor)
	}
}

func TestMakeMoveByFromTo(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	createGame(t, r, "")

	rec, resp := playMove(t, r, "1", MoveRequest{From: "e2", To: "e4"})
	if rec.Code != http.StatusOK {
		t.Fatalf("move failed: %d, body %s", rec.Code, rec.Body.String())
	}
	if resp.FEN == "" {
		t.Error("expected a FEN in the response")
	}
}

func TestMakeMoveRejectsIllegalMove(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	createGame(t, r, "")

	rec, _ := playMove(t, r, "1", MoveRequest{From: "e2", To: "e5"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestMakeMoveOnMissingGameReturns404(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	rec, _ := playMove(t, r, "7", MoveRequest{From: "e2", To: "e4"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestMakeMovePromotion(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	createGame(t, r, "8/P7/8/8/8/8/8/k6K w - - 0 1")

	rec, resp := playMove(t, r, "1", MoveRequest{From: "a7", To: "a8", Promotion: "N"})
	if rec.Code != http.StatusOK {
		t.Fatalf("promotion move failed: %d, body %s", rec.Code, rec.Body.String())
	}
	if resp.FEN[:1] != "N" {
		t.Errorf("expected promoted knight on a8, FEN = %q", resp.FEN)
	}
}

func TestMakeMoveDisambiguatesAutomaticallyViaLAN(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	createGame(t, r, "8/8/8/8/8/8/8/N1N1k1K1 w - - 0 1")

	rec, resp := playMove(t, r, "1", MoveRequest{From: "a1", To: "b3"})
	if rec.Code != http.StatusOK {
		t.Fatalf("disambiguated LAN move failed: %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(resp.Movetext, "Nab3") {
		t.Errorf("Movetext = %q, want it to contain the disambiguated SAN Nab3", resp.Movetext)
	}
}

func TestMakeMoveEnPassantViaLAN(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	createGame(t, r, "")

	playMove(t, r, "1", MoveRequest{From: "e2", To: "e4"})
	playMove(t, r, "1", MoveRequest{From: "b8", To: "c6"})
	playMove(t, r, "1", MoveRequest{From: "e4", To: "e5"})
	playMove(t, r, "1", MoveRequest{From: "d7", To: "d5"})

	rec, resp := playMove(t, r, "1", MoveRequest{From: "e5", To: "d6"})
	if rec.Code != http.StatusOK {
		t.Fatalf("en passant capture failed: %d, body %s", rec.Code, rec.Body.String())
	}
	if resp.EnPassant != "-" {
		t.Errorf("en passant target after the capture = %q, want -", resp.EnPassant)
	}
}

func TestMakeMoveDetectsCheckmate(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	createGame(t, r, "")

	for _, m := range []MoveRequest{
		{From: "f2", To: "f3"},
		{From: "e7", To: "e5"},
		{From: "g2", To: "g4"},
	} {
		rec, _ := playMove(t, r, "1", m)
		if rec.Code != http.StatusOK {
			t.Fatalf("setup move failed: %d", rec.Code)
		}
	}

	rec, resp := playMove(t, r, "1", MoveRequest{PGN: "Qh4"})
	if rec.Code != http.StatusOK {
		t.Fatalf("mating move failed: %d, body %s", rec.Code, rec.Body.String())
	}
	if !resp.Checkmate {
		t.Error("expected checkmate after fool's mate sequence")
	}
}

func TestUndoMove(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	created := createGame(t, r, "")
	playMove(t, r, "1", MoveRequest{From: "e2", To: "e4"})

	req := httptest.NewRequest(http.MethodPost, "/api/games/1/undo", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("undo failed: %d, body %s", rec.Code, rec.Body.String())
	}
	var resp GameResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.FEN != created.FEN {
		t.Errorf("FEN after undo = %q, want %q", resp.FEN, created.FEN)
	}
}

func TestUndoWithNoHistoryRejected(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	createGame(t, r, "")

	req := httptest.NewRequest(http.MethodPost, "/api/games/1/undo", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetLegalMoves(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	createGame(t, r, "")

	req := httptest.NewRequest(http.MethodGet, "/api/games/1/legal?sq=e2", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Sq    string   `json:"sq"`
		Legal []string `json:"legal"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Legal) != 2 {
		t.Errorf("legal moves from e2 = %v, want 2 (e3, e4)", body.Legal)
	}
}

func TestGetLegalMovesRequiresSquare(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	createGame(t, r, "")

	req := httptest.NewRequest(http.MethodGet, "/api/games/1/legal", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetMovetext(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	createGame(t, r, "")
	playMove(t, r, "1", MoveRequest{From: "e2", To: "e4"})
	playMove(t, r, "1", MoveRequest{From: "e7", To: "e5"})

	req := httptest.NewRequest(http.MethodGet, "/api/games/1/movetext", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != "1. e4 e5" {
		t.Errorf("movetext = %q, want %q", rec.Body.String(), "1. e4 e5")
	}
}

func TestGetStatus(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	createGame(t, r, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")

	req := httptest.NewRequest(http.MethodGet, "/api/games/1/status", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var status StatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !status.Stalemate {
		t.Error("expected stalemate in status response")
	}
}
