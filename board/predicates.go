package board

import (
	"go.eastwood.dev/chessboard/color"
	"go.eastwood.dev/chessboard/piece"
	"go.eastwood.dev/chessboard/square"
)

// Legal returns the legal target squares for the piece on sq, honoring
// pins and (for a king) castling safety. Empty if sq is unoccupied.
func (b *Board) Legal(sq string) []string {
	p, ok := b.PieceAt(sq)
	if !ok {
		return nil
	}
	return b.legalDestinations(p)
}

func (b *Board) legalDestinations(p piece.Piece) []string {
	var out []string
	for _, to := range p.MoveSqs(b) {
		if b.isDestinationLegal(p, to) {
			out = append(out, to)
		}
	}
	return out
}

func (b *Board) attackersOf(sq string, by color.Color) []piece.Piece {
	var out []piece.Piece
	for _, p := range b.pieces {
		if p.Color() != by {
			continue
		}
		if contains(p.Attacks(b), sq) {
			out = append(out, p)
		}
	}
	return out
}

// IsCheck reports whether the side to move's king is currently attacked.
func (b *Board) IsCheck() bool {
	sq, ok := b.kingSquare(b.turn)
	if !ok {
		return false
	}
	return b.isAttacked(sq, color.Opp(b.turn))
}

// IsMate reports checkmate: the side to move is in check, its king has no
// legal square to flee to, and — for a single checking piece — no
// unpinned friendly piece can capture the attacker or interpose on its
// line of attack. A double check can only be answered by a king move.
func (b *Board) IsMate() bool {
	kingSq, ok := b.kingSquare(b.turn)
	if !ok {
		return false
	}
	opp := color.Opp(b.turn)
	attackers := b.attackersOf(kingSq, opp)
	if len(attackers) == 0 {
		return false
	}

	kp, _ := b.PieceAt(kingSq)
	if len(b.legalDestinations(kp)) > 0 {
		return false
	}
	if len(attackers) >= 2 {
		return true
	}

	attacker := attackers[0]
	for _, defender := range b.attackersOf(attacker.Square(), b.turn) {
		if !defender.IsPinned(b, attacker.Square()) {
			return false
		}
	}

	for _, sq := range lineOfAttack(attacker, kingSq, b.variant.Size) {
		for _, p := range b.Pieces(b.turn) {
			if p.ID() == "K" {
				continue
			}
			if !contains(p.MoveSqs(b), sq) {
				continue
			}
			if !p.IsPinned(b, sq) {
				return false
			}
		}
	}

	return true
}

// IsStalemate reports that the side to move is not in check but has no
// legal move at all.
func (b *Board) IsStalemate() bool {
	if b.IsCheck() {
		return false
	}
	for _, p := range b.Pieces(b.turn) {
		if len(b.legalDestinations(p)) > 0 {
			return false
		}
	}
	return true
}

// IsFivefoldRepetition reports whether any position (by FEN) has recurred
// five times across the played history. Per spec.md §9 this engine
// implements fivefold, not the classical threefold, repetition rule.
func (b *Board) IsFivefoldRepetition() bool {
	counts := make(map[string]int, len(b.history))
	for _, h := range b.history {
		counts[h.FEN]++
		if counts[h.FEN] >= 5 {
			return true
		}
	}
	return false
}

// IsFiftyMoveDraw reports whether 50 full moves (100 half-moves) have been
// played. Per spec.md §9 this is a plain history-length check, not the
// classical capture/pawn-move reset rule.
func (b *Board) IsFiftyMoveDraw() bool {
	return len(b.history) >= 100
}

// IsDeadPositionDraw reports insufficient material: king vs king; king
// and minor piece vs king; or king and bishop vs king and bishop with
// both bishops on the same-colored squares.
func (b *Board) IsDeadPositionDraw() bool {
	pieces := b.Pieces()
	switch len(pieces) {
	case 2:
		return true
	case 3:
		for _, p := range pieces {
			if p.ID() == "N" || p.ID() == "B" {
				return true
			}
		}
		return false
	case 4:
		var bishops []piece.Piece
		for _, p := range pieces {
			if p.ID() == "B" {
				bishops = append(bishops, p)
			}
		}
		if len(bishops) != 2 || bishops[0].Color() == bishops[1].Color() {
			return false
		}
		c1, err1 := b.variant.Size.Color(bishops[0].Square())
		c2, err2 := b.variant.Size.Color(bishops[1].Square())
		if err1 != nil || err2 != nil {
			return false
		}
		return c1 == c2
	default:
		return false
	}
}

// lineOfAttack returns the squares strictly between a sliding attacker and
// the square it attacks, for interposition checks. Empty for a knight or
// pawn attacker, which cannot be blocked.
func lineOfAttack(attacker piece.Piece, targetSq string, sz square.Size) []string {
	switch attacker.ID() {
	case "B", "R", "Q":
	default:
		return nil
	}

	af, ar, err1 := sz.ToIndex(attacker.Square())
	tf, tr, err2 := sz.ToIndex(targetSq)
	if err1 != nil || err2 != nil {
		return nil
	}

	df, dr := sign(tf-af), sign(tr-ar)
	var out []string
	for f, r := af+df, ar+dr; f != tf || r != tr; f, r = f+df, r+dr {
		out = append(out, sz.FromIndex(f, r))
	}
	return out
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
