// Package board implements the chess board state machine: the aggregate
// root holding pieces, turn, castling ability, history and captures; the
// move pipeline (parse, validate, legality/pin-check, apply); terminal
// condition detection; and FEN/PGN/LAN serialization. It is the core
// described by spec.md — pure rules logic with no I/O, no concurrency, and
// no third-party dependencies, consuming piece movement, castling
// geometry, and notation parsing purely through the collaborator
// interfaces in the piece/castling/notation packages.
package board

import (
	"strings"

	"go.eastwood.dev/chessboard/color"
	"go.eastwood.dev/chessboard/piece"
	"go.eastwood.dev/chessboard/square"
)

// PieceRef is a plain-data snapshot of a piece, used in capture records
// where the live piece has already been detached from the board.
type PieceRef struct {
	ID   string
	Sq   string
	Type string
}

// CaptureRecord pairs the capturing piece with the piece it removed.
type CaptureRecord struct {
	Capturing PieceRef
	Captured  PieceRef
}

// HistoryEntry is one played half-move: the castling ability and FEN
// snapshot immediately after it, plus the origin square and PGN text of
// the move itself. Entries are immutable once written, except that the
// last entry's Move may later receive a "+"/"#" suffix and its FEN is
// restamped by refresh.
type HistoryEntry struct {
	CastlingAbility string
	Sq              string
	Move            string
	FEN             string
}

// Board is the aggregate root: the set of pieces on a board of some
// geometry, whose turn it is, castling rights, move history, and captured
// material.
type Board struct {
	variant Variant

	pieces map[string]piece.Piece
	turn   color.Color

	castlingAbility string
	enPassant       string
	startFEN        string

	history  []HistoryEntry
	captures map[color.Color][]CaptureRecord

	sqCount   int
	spaceEval int
}

// New builds a board from fen using the standard 8x8 variant.
func New(fen string) (*Board, error) {
	return NewVariant(fen, Standard())
}

// NewVariant builds a board from fen using the given variant.
func NewVariant(fen string, v Variant) (*Board, error) {
	b := &Board{
		variant:  v,
		pieces:   make(map[string]piece.Piece),
		captures: make(map[color.Color][]CaptureRecord),
	}
	if err := b.loadFEN(fen); err != nil {
		return nil, err
	}
	b.startFEN = fen
	b.refreshCaches()
	return b, nil
}

// Size returns the board's geometry. Implements piece.Board.
func (b *Board) Size() square.Size { return b.variant.Size }

// Turn returns the color to move.
func (b *Board) Turn() color.Color { return b.turn }

// EnPassant returns the current en passant target square, or "-" if none.
// Implements piece.Board.
func (b *Board) EnPassant() string {
	if b.enPassant == "" {
		return "-"
	}
	return b.enPassant
}

// PieceAt returns the piece on sq, if any. Implements piece.Board.
func (b *Board) PieceAt(sq string) (piece.Piece, bool) {
	p, ok := b.pieces[sq]
	return p, ok
}

// Piece returns the first piece of the given color and ID (P, N, B, R, Q,
// K), or false if none exists.
func (b *Board) Piece(c color.Color, id string) (piece.Piece, bool) {
	for _, p := range b.pieces {
		if p.Color() == c && p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// Pieces returns every piece on the board, or only those of the given
// color(s) if provided.
func (b *Board) Pieces(colors ...color.Color) []piece.Piece {
	var out []piece.Piece
	for _, p := range b.pieces {
		if len(colors) == 0 {
			out = append(out, p)
			continue
		}
		for _, c := range colors {
			if p.Color() == c {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// PieceBySq returns the piece on sq, or false.
func (b *Board) PieceBySq(sq string) (piece.Piece, bool) { return b.PieceAt(sq) }

// History returns a copy of the played half-move history.
func (b *Board) History() []HistoryEntry {
	out := make([]HistoryEntry, len(b.history))
	copy(out, b.history)
	return out
}

// Captures returns a copy of the capture records for color c.
func (b *Board) Captures(c color.Color) []CaptureRecord {
	out := make([]CaptureRecord, len(b.captures[c]))
	copy(out, b.captures[c])
	return out
}

// CastlingAbility returns the current castling-ability string.
func (b *Board) CastlingAbility() string { return b.castlingAbility }

func ref(p piece.Piece) PieceRef {
	return PieceRef{ID: p.ID(), Sq: p.Square(), Type: string(p.Type())}
}

// attach places a new piece of kind id/rtype at sq for color c, replacing
// whatever was there. It does not validate the move; callers are expected
// to have already decided it is legal.
func (b *Board) attach(id string, c color.Color, sq string, rtype piece.RookType) error {
	p, err := b.variant.Factory.New(id, c, sq, rtype)
	if err != nil {
		return err
	}
	b.pieces[sq] = p
	return nil
}

// detach removes whatever piece sits on sq, if any.
func (b *Board) detach(sq string) {
	delete(b.pieces, sq)
}

func (b *Board) kingSquare(c color.Color) (string, bool) {
	for sq, p := range b.pieces {
		if p.Color() == c && p.ID() == "K" {
			return sq, true
		}
	}
	return "", false
}

// String renders the board as an 8-rank ASCII grid, matching the
// orientation and formatting style used throughout this codebase's tests.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := b.variant.Size.Ranks - 1; rank >= 0; rank-- {
		for file := 0; file < b.variant.Size.Files; file++ {
			sq := b.variant.Size.FromIndex(file, rank)
			p, ok := b.pieces[sq]
			if !ok {
				sb.WriteString(". ")
				continue
			}
			sb.WriteString(glyph(p))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToArray returns the board as a rank-major grid of FEN-style piece
// letters (uppercase White, lowercase Black, "" for empty), rank 8 first.
func (b *Board) ToArray() [][]string {
	out := make([][]string, b.variant.Size.Ranks)
	for i, rank := 0, b.variant.Size.Ranks-1; rank >= 0; i, rank = i+1, rank-1 {
		row := make([]string, b.variant.Size.Files)
		for file := 0; file < b.variant.Size.Files; file++ {
			sq := b.variant.Size.FromIndex(file, rank)
			if p, ok := b.pieces[sq]; ok {
				row[file] = glyph(p)
			}
		}
		out[i] = row
	}
	return out
}

func glyph(p piece.Piece) string {
	id := p.ID()
	if p.Color() == color.B {
		return strings.ToLower(id)
	}
	return id
}

// rawClone makes an independent copy by round-tripping through FEN, per
// spec.md §4.8/§9's "clone via FEN" semantics.
func (b *Board) rawClone() (*Board, error) {
	clone, err := NewVariant(b.ToFEN(), b.variant)
	if err != nil {
		return nil, err
	}
	clone.history = append([]HistoryEntry{}, b.history...)
	clone.startFEN = b.startFEN
	for c, recs := range b.captures {
		clone.captures[c] = append([]CaptureRecord{}, recs...)
	}
	return clone, nil
}

// Clone returns an independent copy of b.
func (b *Board) Clone() (*Board, error) { return b.rawClone() }
