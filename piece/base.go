package piece

import "go.eastwood.dev/chessboard/color"

// base carries the fields and default method implementations shared by
// every concrete piece kind.
type base struct {
	id  string
	clr color.Color
	sq  string
}

func (p base) ID() string         { return p.id }
func (p base) Color() color.Color { return p.clr }
func (p base) Square() string     { return p.sq }
func (p base) Type() RookType     { return "" }

// IsPinned delegates to the board's operational pin test: would moving
// from this piece's square to `to` leave the mover's own king attacked.
func (p base) IsPinned(b Board, to string) bool {
	return b.WouldExposeKing(p.sq, to, p.clr)
}

func (p base) IsPromoted(b Board) bool { return false }

// movable reports whether any of the given candidate squares are
// available, used by every kind's IsMovable.
func movable(sqs []string) bool { return len(sqs) > 0 }
