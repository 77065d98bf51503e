package piece

import (
	"go.eastwood.dev/chessboard/castling"
	"go.eastwood.dev/chessboard/color"
)

// King moves one square in any direction and, from its home square with
// rights intact, may also castle. Castling geometry is looked up from the
// injected castling.Rule rather than hard-coded, keeping the core
// variant-parameterised.
type KingPiece struct {
	base
	rule *castling.Rule
}

// NewKing creates a king at sq for color c, using rule to resolve castling
// geometry.
func NewKing(c color.Color, sq string, rule *castling.Rule) *KingPiece {
	return &KingPiece{base: base{id: "K", clr: c, sq: sq}, rule: rule}
}

func (p *KingPiece) MoveSqs(b Board) []string {
	out := step(b, p.sq, p.clr, kingOffsets)

	if short, ok := p.castleTarget(b, castling.Short); ok {
		out = append(out, short)
	}
	if long, ok := p.castleTarget(b, castling.Long); ok {
		out = append(out, long)
	}

	return out
}

func (p *KingPiece) Attacks(b Board) []string { return step(b, p.sq, p.clr, kingOffsets) }
func (p *KingPiece) IsMovable(b Board) bool   { return movable(p.MoveSqs(b)) }

// castleTarget reports the king's destination square for side if this king
// sits on its home square, the path is clear, and a castling-eligible rook
// is present. It does not check whether the king passes through check —
// that is the board's job when applying the candidate move.
func (p *KingPiece) castleTarget(b Board, side castling.Side) (string, bool) {
	if !p.rule.Can(b.CastlingAbility(), p.clr)[side] {
		return "", false
	}

	entry, ok := p.rule.Entry(p.clr, side)
	if !ok || entry.King.Current != p.sq {
		return "", false
	}

	rtype := CastleShort
	if side == castling.Long {
		rtype = CastleLong
	}
	if _, ok := p.GetCastleRook(b, rtype); !ok {
		return "", false
	}

	if !p.pathClear(b, entry) {
		return "", false
	}

	return entry.King.Next, true
}

func (p *KingPiece) pathClear(b Board, e Entry) bool {
	sz := b.Size()
	kf, r, _ := sz.ToIndex(e.King.Current)
	nf, _, _ := sz.ToIndex(e.King.Next)
	rf, _, _ := sz.ToIndex(e.Rook.Current)

	lo, hi := kf, rf
	if lo > hi {
		lo, hi = hi, lo
	}
	for f := lo; f <= hi; f++ {
		sq := sz.FromIndex(f, r)
		if sq == e.King.Current || sq == e.Rook.Current {
			continue
		}
		if _, occ := b.PieceAt(sq); occ {
			return false
		}
	}
	_ = nf
	return true
}

// Entry is re-exported for callers that need the raw castling squares
// without importing castling directly.
type Entry = castling.Entry

// GetCastleRook returns the rook this king would castle with for side t, if
// one is present at the rule's rook-home square, belongs to this king's
// color, and still carries the matching castling type.
func (p *KingPiece) GetCastleRook(b Board, t RookType) (Piece, bool) {
	side := castling.Short
	if t == CastleLong {
		side = castling.Long
	}
	home, ok := p.rule.RookHome(p.clr, side)
	if !ok {
		return nil, false
	}
	rook, found := b.PieceAt(home)
	if !found || rook.Color() != p.clr || rook.Type() != t {
		return nil, false
	}
	return rook, true
}

func (p *KingPiece) SqCastleShort() string {
	e, ok := p.rule.Entry(p.clr, castling.Short)
	if !ok {
		return ""
	}
	return e.King.Next
}

func (p *KingPiece) SqCastleLong() string {
	e, ok := p.rule.Entry(p.clr, castling.Long)
	if !ok {
		return ""
	}
	return e.King.Next
}
