// Package piece provides per-kind move generation, attack detection, and
// castling/promotion support for the six classical chess piece kinds. It is
// the "Piece capability" collaborator of the board engine: the board
// package consumes pieces purely through the Piece interface and never
// hard-codes a movement pattern itself, so a variant with different piece
// kinds can be plugged in without touching board.
package piece

import (
	"go.eastwood.dev/chessboard/color"
	"go.eastwood.dev/chessboard/square"
)

// RookType distinguishes a rook that services a castling side from one
// that never does. A rook keeps its type when it moves; castling rights
// lost by moving are tracked by the board's castling-ability string. Only
// rooks carry a meaningful value; every other kind reports "".
type RookType string

const (
	// CastleShort marks the rook that can still castle kingside.
	CastleShort RookType = "CASTLE_SHORT"
	// CastleLong marks the rook that can still castle queenside.
	CastleLong RookType = "CASTLE_LONG"
	// Plain marks a rook that does not grant castling (not on a rook home
	// square when placed, arrived via promotion, or placed by castling).
	Plain RookType = "R"
)

// Board is the minimal read-only view of the aggregate a piece needs to
// compute its moves and attacks. board.Board implements it; this package
// never imports board, so there is no import cycle between the two.
type Board interface {
	Size() square.Size
	PieceAt(sq string) (Piece, bool)
	Turn() color.Color
	EnPassant() string
	// CastlingAbility returns the current castling-ability string (a
	// subset of "KQkq", or "-"), consulted by a king's castling move
	// generation so lost rights are never offered again even if the king
	// and rook both happen to sit back on their home squares.
	CastlingAbility() string
	// WouldExposeKing reports whether moving the piece on `from` to `to`
	// would leave mover's own king attacked, per the board's own
	// clone-and-test pin semantics.
	WouldExposeKing(from, to string, mover color.Color) bool
}

// Piece is the capability surface the board engine calls into for every
// piece on the board, regardless of kind.
type Piece interface {
	// ID is the piece letter: P, N, B, R, Q or K.
	ID() string
	Color() color.Color
	Square() string
	// Type is meaningful for rooks only; other kinds return "".
	Type() RookType

	// MoveSqs returns the pseudo-legal destination squares for this piece
	// (king safety not considered).
	MoveSqs(b Board) []string
	// Attacks returns the squares this piece currently attacks — for most
	// kinds identical to MoveSqs, but narrower for pawns (forward pushes
	// are moves, not attacks).
	Attacks(b Board) []string
	// IsMovable reports whether this piece has at least one pseudo-legal
	// destination, ignoring pins.
	IsMovable(b Board) bool
	// IsPinned reports whether moving to `to` would expose this piece's
	// own king, per the board's operational pin test.
	IsPinned(b Board, to string) bool
	// IsPromoted reports whether this piece (a pawn) sits on the back
	// rank for its color and must promote.
	IsPromoted(b Board) bool
}

// Pawn is the extra capability surface pawns expose for en passant and
// disambiguation.
type Pawn interface {
	Piece
	// EnPassantSq returns the board's current en passant target square if
	// this pawn is positioned to capture it, else "".
	EnPassantSq(b Board) string
	// EnPassantPawn returns the opposing pawn captured by an en passant
	// move toward the board's en passant target.
	EnPassantPawn(b Board) (Piece, bool)
	File(b Board) int
	Rank(b Board) int
}

// King is the extra capability surface kings expose for castling.
type King interface {
	Piece
	// GetCastleRook returns the rook this king would castle with for the
	// given side, if one is present and still eligible.
	GetCastleRook(b Board, t RookType) (Piece, bool)
	SqCastleShort() string
	SqCastleLong() string
}
