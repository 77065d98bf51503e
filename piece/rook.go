package piece

import "go.eastwood.dev/chessboard/color"

// Rook slides along ranks and files until blocked. Its Type records
// whether it services kingside/queenside castling: a rook built with
// CastleShort or CastleLong keeps that type when it moves, and a king
// castles with it only while it stands on its home square and the
// matching right is still in the castling-ability string; one built Plain
// (the product of a promotion or of castling, or off its home square when
// placed) never does.
type Rook struct {
	base
	rtype RookType
}

// NewRook creates a rook at sq for color c with the given castling type.
func NewRook(c color.Color, sq string, t RookType) *Rook {
	return &Rook{base: base{id: "R", clr: c, sq: sq}, rtype: t}
}

func (p *Rook) Type() RookType           { return p.rtype }
func (p *Rook) MoveSqs(b Board) []string { return slide(b, p.sq, p.clr, rookDirections) }
func (p *Rook) Attacks(b Board) []string { return p.MoveSqs(b) }
func (p *Rook) IsMovable(b Board) bool   { return movable(p.MoveSqs(b)) }
