package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"go.eastwood.dev/chessboard/config"
)

func newTestServerAndRouter(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := NewServer(config.Default())
	r := gin.New()
	s.SetupRoutes(r)
	return s, r
}

func createGame(t *testing.T, r *gin.Engine, fen string) GameResponse {
	t.Helper()
	var body []byte
	if fen != "" {
		body, _ = json.Marshal(FENRequest{FEN: fen})
	}
	req := httptest.NewRequest(http.MethodPost, "/api/games", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create game: status %d, body %s", rec.Code, rec.Body.String())
	}
	var resp GameResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode create-game response: %v", err)
	}
	return resp
}

func TestNewServer(t *testing.T) {
	s := NewServer(config.Default())
	if s == nil {
		t.Fatal("NewServer returned nil")
	}
	if s.games == nil {
		t.Error("games map should be initialized")
	}
}

func TestCreateGameDefaultsToStartingPosition(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	resp := createGame(t, r, "")
	if resp.FEN != "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -" {
		t.Errorf("unexpected starting FEN: %q", resp.FEN)
	}
	if resp.ActiveColor != "w" {
		t.Errorf("ActiveColor = %q, want w", resp.ActiveColor)
	}
}

func TestCreateGameFromCustomFEN(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	fen := "8/8/8/4k3/8/8/8/4K3 w - - 0 1"
	resp := createGame(t, r, fen)
	// The response FEN carries four fields; the counters are dropped.
	want := "8/8/8/4k3/8/8/8/4K3 w - -"
	if resp.FEN != want {
		t.Errorf("FEN = %q, want %q", resp.FEN, want)
	}
}

func TestCreateGameRejectsMalformedFEN(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	body, _ := json.Marshal(FENRequest{FEN: "not-a-fen"})
	req := httptest.NewRequest(http.MethodPost, "/api/games", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetGameRoundTrips(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	created := createGame(t, r, "")

	req := httptest.NewRequest(http.MethodGet, "/api/games/1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("get game: status %d", rec.Code)
	}
	var resp GameResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.FEN != created.FEN {
		t.Errorf("FEN = %q, want %q", resp.FEN, created.FEN)
	}
}

func TestGetGameMissingReturns404(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/games/999", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGetGameInvalidIDReturns400(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/games/not-a-number", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDeleteGame(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	createGame(t, r, "")

	req := httptest.NewRequest(http.MethodDelete, "/api/games/1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: status %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/games/1", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected deleted game to 404, got %d", rec.Code)
	}
}

func TestDeleteGameMissingReturns404(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	req := httptest.NewRequest(http.MethodDelete, "/api/games/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	createGame(t, r, "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %v, want healthy", body["status"])
	}
	if count, _ := body["game_count"].(float64); count != 1 {
		t.Errorf("game_count = %v, want 1", body["game_count"])
	}
}

func TestCORSPreflightRequest(t *testing.T) {
	_, r := newTestServerAndRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/games", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("OPTIONS status = %d, want 204", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS header on preflight response")
	}
}
