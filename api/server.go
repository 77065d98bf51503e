// Package api exposes the chessboard engine over HTTP: game lifecycle,
// move submission (SAN or from/to squares), undo, legal-move queries,
// FEN reload, status, and a WebSocket feed of game-state pushes after
// every move. It is a thin shell — every response is derived directly
// from a board.Board per SPEC_FULL.md §6; this package adds no rules
// logic of its own.
package api

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"go.eastwood.dev/chessboard/board"
	"go.eastwood.dev/chessboard/config"
)

// GameResponse represents a game in API responses.
type GameResponse struct {
	ID              int       `json:"id"`
	FEN             string    `json:"fen"`
	Board           string    `json:"board"`
	ActiveColor     string    `json:"active_color"`
	CastlingAbility string    `json:"castling_ability"`
	EnPassant       string    `json:"en_passant"`
	Movetext        string    `json:"movetext"`
	MoveCount       int       `json:"move_count"`
	Check           bool      `json:"check"`
	Checkmate       bool      `json:"checkmate"`
	Stalemate       bool      `json:"stalemate"`
	FivefoldDraw    bool      `json:"fivefold_draw"`
	FiftyMoveDraw   bool      `json:"fifty_move_draw"`
	DeadPosition    bool      `json:"dead_position"`
	CreatedAt       time.Time `json:"created_at"`
}

// MoveRequest is a move submitted either as SAN (PGN) or as a pair of
// squares with an optional promotion letter — whichever is present wins,
// SAN taking precedence when both are given.
type MoveRequest struct {
	PGN       string `json:"pgn,omitempty"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Promotion string `json:"promotion,omitempty"`
}

// FENRequest loads a position from Forsyth-Edwards notation.
type FENRequest struct {
	FEN string `json:"fen"`
}

// ErrorResponse is the JSON body returned for any rejected request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// StatusResponse mirrors board.Board's terminal-condition predicates.
type StatusResponse struct {
	Turn          string `json:"turn"`
	Check         bool   `json:"check"`
	Checkmate     bool   `json:"checkmate"`
	Stalemate     bool   `json:"stalemate"`
	FivefoldDraw  bool   `json:"fivefold_draw"`
	FiftyMoveDraw bool   `json:"fifty_move_draw"`
	DeadPosition  bool   `json:"dead_position"`
}

// game bundles a board with the timestamp recorded at creation, since
// board.Board itself carries no notion of wall-clock time.
type game struct {
	b         *board.Board
	createdAt time.Time
}

// Server is the chess HTTP API server: an in-memory registry of games
// guarded by a mutex, identical in shape to the teacher server, plus the
// injected logger, CORS config, and WebSocket upgrader/subscriber table.
type Server struct {
	config   *config.Config
	logger   *zap.Logger
	games    map[int]*game
	gamesMux sync.RWMutex
	nextID   int
	upgrader websocket.Upgrader
	sockets  map[int][]*websocket.Conn
}

// NewServer creates a new API server with a production zap logger, per
// the teacher's own NewServer.
func NewServer(cfg *config.Config) *Server {
	logger, _ := zap.NewProduction()
	return &Server{
		config:  cfg,
		logger:  logger,
		games:   make(map[int]*game),
		nextID:  1,
		sockets: make(map[int][]*websocket.Conn),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// SetupRoutes wires the game-lifecycle, move, and WebSocket endpoints of
// SPEC_FULL.md §6 onto r.
func (s *Server) SetupRoutes(r *gin.Engine) {
	r.Use(s.cors)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/games", s.createGame)
		apiGroup.GET("/games/:id", s.getGame)
		apiGroup.DELETE("/games/:id", s.deleteGame)
		apiGroup.POST("/games/:id/moves", s.makeMove)
		apiGroup.POST("/games/:id/undo", s.undoMove)
		apiGroup.GET("/games/:id/legal", s.getLegalMoves)
		apiGroup.GET("/games/:id/movetext", s.getMovetext)
		apiGroup.POST("/games/:id/fen", s.loadFromFEN)
		apiGroup.GET("/games/:id/status", s.getStatus)
	}

	r.GET("/ws/games/:id", s.handleWebSocket)
	r.GET("/health", s.health)
}

func (s *Server) cors(c *gin.Context) {
	if s.config == nil || s.config.Server.CORSEnabled {
		origin := "*"
		if s.config != nil && len(s.config.Server.AllowedOrigins) > 0 {
			origin = s.config.Server.AllowedOrigins[0]
		}
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
	}
	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

// createGame starts a new game, optionally from a supplied starting FEN.
func (s *Server) createGame(c *gin.Context) {
	var req FENRequest
	_ = c.ShouldBindJSON(&req)

	var b *board.Board
	var err error
	if req.FEN != "" {
		b, err = board.New(req.FEN)
	} else {
		b, err = board.New(board.StartFEN)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_fen", Message: err.Error()})
		return
	}

	s.gamesMux.Lock()
	id := s.nextID
	s.nextID++
	g := &game{b: b, createdAt: time.Now().UTC()}
	s.games[id] = g
	s.gamesMux.Unlock()

	s.logger.Info("created game", zap.Int("game_id", id))
	c.JSON(http.StatusCreated, s.toResponse(id, g))
}

func (s *Server) getGame(c *gin.Context) {
	id, g, ok := s.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.toResponse(id, g))
}

func (s *Server) deleteGame(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_game_id"})
		return
	}

	s.gamesMux.Lock()
	_, exists := s.games[id]
	delete(s.games, id)
	s.gamesMux.Unlock()

	if !exists {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "game_not_found"})
		return
	}
	s.logger.Info("deleted game", zap.Int("game_id", id))
	c.Status(http.StatusNoContent)
}

// makeMove applies req to the game's board, by SAN when PGN is set and
// by PlayLAN (from+to+promotion) otherwise. Per spec.md §7 a rejected
// move never mutates the board, so a 400 here always leaves the prior
// position intact.
func (s *Server) makeMove(c *gin.Context) {
	id, g, ok := s.lookup(c)
	if !ok {
		return
	}

	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	turn := g.b.Turn()
	var accepted bool
	if req.PGN != "" {
		accepted = g.b.Play(turn, req.PGN)
	} else {
		lan := req.From + req.To
		if req.Promotion != "" {
			lan += req.Promotion
		}
		accepted = g.b.PlayLAN(turn, lan)
	}

	if !accepted {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "illegal_move"})
		return
	}

	s.logger.Info("move made", zap.Int("game_id", id), zap.String("fen", g.b.ToFEN()))
	resp := s.toResponse(id, g)
	c.JSON(http.StatusOK, resp)
	s.broadcast(id, resp)
}

func (s *Server) undoMove(c *gin.Context) {
	id, g, ok := s.lookup(c)
	if !ok {
		return
	}
	nb, err := g.b.Undo()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "nothing_to_undo", Message: err.Error()})
		return
	}

	s.gamesMux.Lock()
	g.b = nb
	s.gamesMux.Unlock()

	c.JSON(http.StatusOK, s.toResponse(id, g))
}

func (s *Server) getLegalMoves(c *gin.Context) {
	_, g, ok := s.lookup(c)
	if !ok {
		return
	}
	sq := c.Query("sq")
	if sq == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing_square"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sq": sq, "legal": g.b.Legal(sq)})
}

func (s *Server) getMovetext(c *gin.Context) {
	_, g, ok := s.lookup(c)
	if !ok {
		return
	}
	c.String(http.StatusOK, g.b.Movetext())
}

// loadFromFEN rebuilds the game's board from a client-supplied FEN,
// discarding history — this is a fresh position, not a replay.
func (s *Server) loadFromFEN(c *gin.Context) {
	id, g, ok := s.lookup(c)
	if !ok {
		return
	}
	var req FENRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	nb, err := board.New(req.FEN)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_fen", Message: err.Error()})
		return
	}

	s.gamesMux.Lock()
	g.b = nb
	s.gamesMux.Unlock()

	c.JSON(http.StatusOK, s.toResponse(id, g))
}

func (s *Server) getStatus(c *gin.Context) {
	_, g, ok := s.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, statusOf(g.b))
}

func statusOf(b *board.Board) StatusResponse {
	return StatusResponse{
		Turn:          string(b.Turn()),
		Check:         b.IsCheck(),
		Checkmate:     b.IsMate(),
		Stalemate:     b.IsStalemate(),
		FivefoldDraw:  b.IsFivefoldRepetition(),
		FiftyMoveDraw: b.IsFiftyMoveDraw(),
		DeadPosition:  b.IsDeadPositionDraw(),
	}
}

// handleWebSocket upgrades the connection and pushes the current game
// state once, then on every subsequent move made via the REST endpoint
// (see broadcast). The teacher server uses gorilla/websocket the same
// way: upgrade, send, read-loop until the client disconnects.
func (s *Server) handleWebSocket(c *gin.Context) {
	id, g, ok := s.lookup(c)
	if !ok {
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	if err := conn.WriteJSON(s.toResponse(id, g)); err != nil {
		s.logger.Error("failed to send initial game state", zap.Error(err))
		return
	}

	s.gamesMux.Lock()
	s.sockets[id] = append(s.sockets[id], conn)
	s.gamesMux.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.gamesMux.Lock()
	s.removeSocket(id, conn)
	s.gamesMux.Unlock()
}

func (s *Server) removeSocket(id int, conn *websocket.Conn) {
	conns := s.sockets[id]
	for i, c := range conns {
		if c == conn {
			s.sockets[id] = append(conns[:i], conns[i+1:]...)
			return
		}
	}
}

// broadcast pushes resp to every WebSocket client currently watching
// game id. Best-effort: a write failure just drops that connection on
// the next read-loop iteration.
func (s *Server) broadcast(id int, resp GameResponse) {
	s.gamesMux.RLock()
	conns := append([]*websocket.Conn{}, s.sockets[id]...)
	s.gamesMux.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Warn("websocket push failed", zap.Int("game_id", id), zap.Error(err))
		}
	}
}

func (s *Server) health(c *gin.Context) {
	s.gamesMux.RLock()
	count := len(s.games)
	s.gamesMux.RUnlock()
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"game_count": count,
	})
}

// lookup resolves the :id path param to a game, writing the appropriate
// error response and returning ok=false if it cannot.
func (s *Server) lookup(c *gin.Context) (int, *game, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_game_id"})
		return 0, nil, false
	}

	s.gamesMux.RLock()
	g, exists := s.games[id]
	s.gamesMux.RUnlock()

	if !exists {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "game_not_found"})
		return 0, nil, false
	}
	return id, g, true
}

func (s *Server) toResponse(id int, g *game) GameResponse {
	b := g.b
	st := statusOf(b)
	return GameResponse{
		ID:              id,
		FEN:             b.ToFEN(),
		Board:           b.String(),
		ActiveColor:     string(b.Turn()),
		CastlingAbility: b.CastlingAbility(),
		EnPassant:       b.EnPassant(),
		Movetext:        b.Movetext(),
		MoveCount:       len(b.History()),
		Check:           st.Check,
		Checkmate:       st.Checkmate,
		Stalemate:       st.Stalemate,
		FivefoldDraw:    st.FivefoldDraw,
		FiftyMoveDraw:   st.FiftyMoveDraw,
		DeadPosition:    st.DeadPosition,
		CreatedAt:       g.createdAt,
	}
}
