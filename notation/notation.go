// Package notation parses a PGN half-move string into a structured move
// descriptor and splits long algebraic notation (LAN) into its component
// squares. It is the "Move-notation" external collaborator the board
// engine consumes per spec — board never parses SAN/LAN text itself.
package notation

import (
	"fmt"
	"regexp"
	"strings"

	"go.eastwood.dev/chessboard/castling"
	"go.eastwood.dev/chessboard/color"
)

// Kind classifies a parsed half-move.
type Kind string

const (
	Pawn          Kind = "PAWN"
	PawnCaptures  Kind = "PAWN_CAPTURES"
	PawnPromotes  Kind = "PAWN_PROMOTES"
	Piece         Kind = "PIECE"
	PieceCaptures Kind = "PIECE_CAPTURES"
	King          Kind = "KING"
	KingCaptures  Kind = "KING_CAPTURES"
	CastleShort   Kind = "CASTLE_SHORT"
	CastleLong    Kind = "CASTLE_LONG"
)

// Ellipsis prefixes movetext for a game that starts with Black to move.
const Ellipsis = "..."

// Descriptor is the parsed form of one PGN half-move, per spec.md §4.1.
type Descriptor struct {
	Color color.Color
	// ID is the piece letter moved; "P" for pawn moves.
	ID string
	// SqCurrent is the disambiguation substring: empty, a file, a rank,
	// or a full square. A candidate piece qualifies when its current
	// square contains this substring.
	SqCurrent string
	SqNext    string
	IsCapture bool
	Kind      Kind
	// NewID is the promotion target piece letter, if any.
	NewID string
	// PGN is the normalized input string.
	PGN string
}

var castleRe = regexp.MustCompile(`^(O-O-O|0-0-0|O-O|0-0)[+#]?$`)
var moveRe = regexp.MustCompile(`^([RNBQK]?)([a-h]?[1-8]?)(x?)([a-h][1-8])(=[QRBNqrbn])?[+#]?$`)

// Parse decodes a PGN half-move for the side to move c. It returns an
// error if the text does not match any recognized SAN shape — the "no
// descriptor produced" syntax failure of spec.md §7.
func Parse(c color.Color, pgn string) (Descriptor, error) {
	trimmed := strings.TrimSpace(pgn)

	if m := castleRe.FindStringSubmatch(trimmed); m != nil {
		kind := CastleShort
		if strings.Count(m[1], "O") == 3 || strings.Count(m[1], "0") == 3 {
			kind = CastleLong
		}
		return Descriptor{Color: c, ID: "K", Kind: kind, PGN: trimmed}, nil
	}

	m := moveRe.FindStringSubmatch(trimmed)
	if m == nil {
		return Descriptor{}, fmt.Errorf("notation: cannot parse half-move %q", pgn)
	}

	id := m[1]
	if id == "" {
		id = "P"
	}
	sqCurrent := m[2]
	isCapture := m[3] == "x"
	sqNext := m[4]
	newID := ""
	if m[5] != "" {
		newID = strings.ToUpper(strings.TrimPrefix(m[5], "="))
	}

	var kind Kind
	switch {
	case id == "P" && newID != "":
		kind = PawnPromotes
	case id == "P" && isCapture:
		kind = PawnCaptures
	case id == "P":
		kind = Pawn
	case id == "K" && isCapture:
		kind = KingCaptures
	case id == "K":
		kind = King
	case isCapture:
		kind = PieceCaptures
	default:
		kind = Piece
	}

	return Descriptor{
		Color:     c,
		ID:        id,
		SqCurrent: sqCurrent,
		SqNext:    sqNext,
		IsCapture: isCapture,
		Kind:      kind,
		NewID:     newID,
		PGN:       trimmed,
	}, nil
}

// CastleToken returns the SAN token for a castling side.
func CastleToken(side castling.Side) string {
	if side == castling.Long {
		return "O-O-O"
	}
	return "O-O"
}

// ExplodeSqs splits a 4-5 character LAN string ("e2e4", "e7e8Q") into its
// from/to squares and optional promotion letter.
func ExplodeSqs(lan string) (from, to, promo string, err error) {
	trimmed := strings.TrimSpace(lan)
	if len(trimmed) < 4 || len(trimmed) > 5 {
		return "", "", "", fmt.Errorf("notation: invalid LAN %q", lan)
	}
	from = trimmed[0:2]
	to = trimmed[2:4]
	if len(trimmed) == 5 {
		promo = strings.ToUpper(trimmed[4:5])
	}
	return from, to, promo, nil
}
