package piece

import "go.eastwood.dev/chessboard/color"

// PawnPiece moves straight ahead (one or two squares from its start rank)
// and captures diagonally, including en passant.
type PawnPiece struct{ base }

// NewPawn creates a pawn at sq for color c.
func NewPawn(c color.Color, sq string) *PawnPiece {
	return &PawnPiece{base{id: "P", clr: c, sq: sq}}
}

func (p *PawnPiece) direction() int {
	if p.clr == color.W {
		return 1
	}
	return -1
}

func (p *PawnPiece) startRank(b Board) int {
	if p.clr == color.W {
		return 1
	}
	return b.Size().Ranks - 2
}

func (p *PawnPiece) lastRank(b Board) int {
	if p.clr == color.W {
		return b.Size().Ranks - 1
	}
	return 0
}

// MoveSqs returns quiet forward pushes plus diagonal captures (including en
// passant).
func (p *PawnPiece) MoveSqs(b Board) []string {
	sz := b.Size()
	dir := p.direction()
	var out []string

	if one, ok := sz.Offset(p.sq, 0, dir); ok {
		if _, occ := b.PieceAt(one); !occ {
			out = append(out, one)

			_, rank, _ := sz.ToIndex(p.sq)
			if rank == p.startRank(b) {
				if two, ok := sz.Offset(p.sq, 0, 2*dir); ok {
					if _, occ := b.PieceAt(two); !occ {
						out = append(out, two)
					}
				}
			}
		}
	}

	for _, df := range []int{-1, 1} {
		target, ok := sz.Offset(p.sq, df, dir)
		if !ok {
			continue
		}
		if occ, found := b.PieceAt(target); found {
			if occ.Color() != p.clr {
				out = append(out, target)
			}
			continue
		}
		if target == b.EnPassant() {
			out = append(out, target)
		}
	}

	return out
}

// Attacks returns only the diagonal squares this pawn threatens — forward
// pushes are moves, not attacks, and never count toward check detection.
func (p *PawnPiece) Attacks(b Board) []string {
	sz := b.Size()
	dir := p.direction()
	var out []string
	for _, df := range []int{-1, 1} {
		if target, ok := sz.Offset(p.sq, df, dir); ok {
			out = append(out, target)
		}
	}
	return out
}

func (p *PawnPiece) IsMovable(b Board) bool { return movable(p.MoveSqs(b)) }

// IsPromoted reports whether this pawn sits on the back rank and must be
// promoted.
func (p *PawnPiece) IsPromoted(b Board) bool {
	_, rank, err := b.Size().ToIndex(p.sq)
	if err != nil {
		return false
	}
	return rank == p.lastRank(b)
}

// EnPassantSq returns the board's en passant target if this pawn sits
// diagonally adjacent to it (i.e. is the one pawn eligible to capture
// there), else "".
func (p *PawnPiece) EnPassantSq(b Board) string {
	target := b.EnPassant()
	if target == "" || target == "-" {
		return ""
	}
	if contains(p.Attacks(b), target) {
		return target
	}
	return ""
}

// EnPassantPawn returns the opposing pawn captured by an en passant move:
// the pawn sitting on the same file as the en passant target, one rank
// behind it from the target's perspective (i.e. beside this pawn).
func (p *PawnPiece) EnPassantPawn(b Board) (Piece, bool) {
	target := p.EnPassantSq(b)
	if target == "" {
		return nil, false
	}
	behind, ok := b.Size().Offset(target, 0, -p.direction())
	if !ok {
		return nil, false
	}
	return b.PieceAt(behind)
}

func (p *PawnPiece) File(b Board) int {
	file, _, _ := b.Size().ToIndex(p.sq)
	return file
}

func (p *PawnPiece) Rank(b Board) int {
	_, rank, _ := b.Size().ToIndex(p.sq)
	return rank
}
