package board

import (
	"go.eastwood.dev/chessboard/castling"
	"go.eastwood.dev/chessboard/piece"
	"go.eastwood.dev/chessboard/square"
)

// Variant bundles the three externally-injected collaborators a Board is
// built against: board geometry, the castling-rule table, and the piece
// factory. Swapping a Variant is how a caller plugs in a different
// ruleset/geometry without touching this package, per spec.md §1's
// "variant-parameterised" design.
type Variant struct {
	Size    square.Size
	Rule    *castling.Rule
	Factory piece.Factory
}

// Standard returns the reference 8x8 classical-chess variant.
func Standard() Variant {
	rule := castling.Standard()
	return Variant{
		Size:    square.Standard,
		Rule:    rule,
		Factory: piece.NewFactory(rule),
	}
}

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
