package piece

import "go.eastwood.dev/chessboard/color"

// Knight moves in an L-shape and, unlike sliding pieces, cannot be blocked
// en route — only its destination square matters.
type Knight struct{ base }

// NewKnight creates a knight at sq for color c.
func NewKnight(c color.Color, sq string) *Knight {
	return &Knight{base{id: "N", clr: c, sq: sq}}
}

func (p *Knight) MoveSqs(b Board) []string { return step(b, p.sq, p.clr, knightOffsets) }
func (p *Knight) Attacks(b Board) []string { return p.MoveSqs(b) }
func (p *Knight) IsMovable(b Board) bool   { return movable(p.MoveSqs(b)) }
