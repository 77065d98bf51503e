package piece

import "go.eastwood.dev/chessboard/color"

// Queen slides any distance along ranks, files, or diagonals.
type Queen struct{ base }

// NewQueen creates a queen at sq for color c.
func NewQueen(c color.Color, sq string) *Queen {
	return &Queen{base{id: "Q", clr: c, sq: sq}}
}

func (p *Queen) MoveSqs(b Board) []string { return slide(b, p.sq, p.clr, queenDirections) }
func (p *Queen) Attacks(b Board) []string { return p.MoveSqs(b) }
func (p *Queen) IsMovable(b Board) bool   { return movable(p.MoveSqs(b)) }
