package piece

import (
	"fmt"

	"go.eastwood.dev/chessboard/castling"
	"go.eastwood.dev/chessboard/color"
)

// Factory builds pieces of a given kind, color, and square, wiring in the
// castling rule kings need to resolve castling geometry. A board is built
// against one Factory for its whole lifetime, which is what makes the
// piece set variant-parameterised: a different Factory yields different
// concrete piece behavior without the board package changing at all.
type Factory struct {
	Rule *castling.Rule
}

// NewFactory returns a Factory wired to rule.
func NewFactory(rule *castling.Rule) Factory {
	return Factory{Rule: rule}
}

// New builds a piece of the given uppercase letter (P, N, B, R, Q, K) and
// color c at sq; any other letter, lowercase included, is an error. rtype
// is only meaningful for rooks.
func (f Factory) New(id string, c color.Color, sq string, rtype RookType) (Piece, error) {
	switch id {
	case "P":
		return NewPawn(c, sq), nil
	case "N":
		return NewKnight(c, sq), nil
	case "B":
		return NewBishop(c, sq), nil
	case "R":
		return NewRook(c, sq, rtype), nil
	case "Q":
		return NewQueen(c, sq), nil
	case "K":
		return NewKing(c, sq, f.Rule), nil
	default:
		return nil, fmt.Errorf("piece: unknown kind %q", id)
	}
}

// RookTypeForHome returns the castling RookType a rook built on sq should
// carry, given the color, by checking whether sq is that color's kingside
// or queenside rook home square per the factory's castling rule.
func (f Factory) RookTypeForHome(c color.Color, sq string) RookType {
	if home, ok := f.Rule.RookHome(c, castling.Short); ok && home == sq {
		return CastleShort
	}
	if home, ok := f.Rule.RookHome(c, castling.Long); ok && home == sq {
		return CastleLong
	}
	return Plain
}
