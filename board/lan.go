package board

import (
	"go.eastwood.dev/chessboard/color"
	"go.eastwood.dev/chessboard/notation"
	"go.eastwood.dev/chessboard/piece"
)

// PlayLAN parses lan ("e2e4", "e7e8q") as long algebraic notation for
// color c, converts it to one or more candidate PGN forms, and applies
// the first one that validates. Per spec.md §4.7/§7, LAN additionally
// rejects outright when it is not color's turn to move.
func (b *Board) PlayLAN(c color.Color, lan string) bool {
	if c != b.turn {
		return false
	}

	candidates, ok := b.lanToPgn(c, lan)
	if !ok {
		return false
	}

	for _, pgn := range candidates {
		desc, err := notation.Parse(c, pgn)
		if err != nil {
			continue
		}
		if b.play(desc) {
			return true
		}
	}
	return false
}

// lanToPgn generates the candidate SAN strings a LAN move could decode to,
// per spec.md §4.7. PlayLAN tries each in turn until one is accepted by
// the normal move pipeline.
func (b *Board) lanToPgn(c color.Color, lan string) ([]string, bool) {
	from, to, promo, err := notation.ExplodeSqs(lan)
	if err != nil {
		return nil, false
	}

	p, ok := b.PieceAt(from)
	if !ok || p.Color() != c {
		return nil, false
	}
	_, targetOccupied := b.PieceAt(to)

	switch mover := p.(type) {
	case piece.King:
		if to != "" && to == mover.SqCastleShort() && contains(mover.MoveSqs(b), to) {
			return []string{"O-O"}, true
		}
		if to != "" && to == mover.SqCastleLong() && contains(mover.MoveSqs(b), to) {
			return []string{"O-O-O"}, true
		}
		if targetOccupied {
			return []string{"Kx" + to}, true
		}
		return []string{"K" + to}, true

	case piece.Pawn:
		suffix := ""
		if promo != "" {
			suffix = "=" + promo
		}
		if targetOccupied || to == mover.EnPassantSq(b) {
			return []string{from[0:1] + "x" + to + suffix}, true
		}
		return []string{to + suffix}, true

	default:
		id := p.ID()
		forms := []string{"", from[0:1], from[1:2], from}
		out := make([]string, 0, len(forms))
		for _, f := range forms {
			if targetOccupied {
				out = append(out, id+f+"x"+to)
			} else {
				out = append(out, id+f+to)
			}
		}
		return out, true
	}
}
