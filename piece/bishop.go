package piece

import "go.eastwood.dev/chessboard/color"

// Bishop slides diagonally any distance until blocked.
type Bishop struct{ base }

// NewBishop creates a bishop at sq for color c.
func NewBishop(c color.Color, sq string) *Bishop {
	return &Bishop{base{id: "B", clr: c, sq: sq}}
}

func (p *Bishop) MoveSqs(b Board) []string { return slide(b, p.sq, p.clr, bishopDirections) }
func (p *Bishop) Attacks(b Board) []string { return p.MoveSqs(b) }
func (p *Bishop) IsMovable(b Board) bool   { return movable(p.MoveSqs(b)) }
