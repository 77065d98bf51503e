package board

import (
	"strings"

	"go.eastwood.dev/chessboard/castling"
	"go.eastwood.dev/chessboard/color"
	"go.eastwood.dev/chessboard/notation"
	"go.eastwood.dev/chessboard/piece"
	"go.eastwood.dev/chessboard/square"
)

// Play parses pgn as a half-move for color c and, if it is legal, applies
// it. It returns false — without mutating the board — for any of the
// rejection kinds in spec.md §7: unparseable notation, an ambiguous
// target, no legal candidate, or the wrong side to move.
func (b *Board) Play(c color.Color, pgn string) bool {
	if c != b.turn {
		return false
	}
	desc, err := notation.Parse(c, pgn)
	if err != nil {
		return false
	}
	return b.play(desc)
}

func (b *Board) play(desc notation.Descriptor) bool {
	if desc.Kind == notation.CastleShort || desc.Kind == notation.CastleLong {
		if !b.playCastle(desc) {
			return false
		}
		b.appendCheckSuffix()
		return true
	}

	// §4.2 ambiguous-capture check: a capture must land on an occupied
	// square, unless it is a pawn capturing onto the en passant target.
	if desc.IsCapture {
		if _, occ := b.PieceAt(desc.SqNext); !occ {
			if desc.ID != "P" || desc.SqNext != b.EnPassant() {
				return false
			}
		}
	}

	var legal []piece.Piece
	for _, p := range b.matchingPieces(desc) {
		if !contains(p.MoveSqs(b), desc.SqNext) {
			continue
		}
		if !b.isDestinationLegal(p, desc.SqNext) {
			continue
		}
		legal = append(legal, p)
	}

	// Zero candidates: illegal. More than one: ambiguous. Either rejects
	// the move atomically, per spec.md §4.2/§7.
	if len(legal) != 1 {
		return false
	}

	if !b.applyMove(legal[0], desc) {
		return false
	}
	b.appendCheckSuffix()
	return true
}

// appendCheckSuffix annotates the history entry just pushed with "#" or "+"
// once the resulting position's check/mate status is known, per spec.md §3
// — the input notation is not trusted to already carry the correct suffix.
func (b *Board) appendCheckSuffix() {
	n := len(b.history)
	if n == 0 {
		return
	}
	move := b.history[n-1].Move
	move = strings.TrimSuffix(strings.TrimSuffix(move, "#"), "+")
	switch {
	case b.IsMate():
		move += "#"
	case b.IsCheck():
		move += "+"
	}
	b.history[n-1].Move = move
}

// matchingPieces returns the pieces of desc.Color and desc.ID whose
// current square contains the disambiguation substring desc.SqCurrent.
func (b *Board) matchingPieces(desc notation.Descriptor) []piece.Piece {
	var out []piece.Piece
	for _, p := range b.pieces {
		if p.Color() != desc.Color || p.ID() != desc.ID {
			continue
		}
		if !strings.Contains(p.Square(), desc.SqCurrent) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// isDestinationLegal reports whether p may move to `to` without exposing
// its own king, additionally enforcing (for a castling destination) that
// the king is not currently in, does not pass through, and does not land
// in check.
func (b *Board) isDestinationLegal(p piece.Piece, to string) bool {
	if p.IsPinned(b, to) {
		return false
	}
	if king, ok := p.(piece.King); ok {
		if side, isCastle := b.castleSideFor(king, to); isCastle {
			return b.castleSafe(p.Color(), king, side)
		}
	}
	return true
}

// castleSideFor reports the castling side a king move to `to` stands for:
// only a move from the king's castling home square onto a castling target
// counts, so a one-square step onto that target is an ordinary move.
func (b *Board) castleSideFor(king piece.King, to string) (castling.Side, bool) {
	var side castling.Side
	switch {
	case to != "" && to == king.SqCastleShort():
		side = castling.Short
	case to != "" && to == king.SqCastleLong():
		side = castling.Long
	default:
		return "", false
	}
	entry, ok := b.variant.Rule.Entry(king.Color(), side)
	if !ok || entry.King.Current != king.Square() {
		return "", false
	}
	return side, true
}

func (b *Board) castleSafe(c color.Color, king piece.King, side castling.Side) bool {
	opp := color.Opp(c)
	if b.isAttacked(king.Square(), opp) {
		return false
	}
	entry, ok := b.variant.Rule.Entry(c, side)
	if !ok {
		return false
	}
	for _, sq := range kingPath(entry.King.Current, entry.King.Next, b.variant.Size) {
		if b.isAttacked(sq, opp) {
			return false
		}
	}
	return true
}

// applyMove performs the fixed, order-sensitive sequence of spec.md §5 for
// a non-castling move: capture, detach mover, attach at destination,
// optionally promote, update castling rights, push history, refresh.
func (b *Board) applyMove(mover piece.Piece, desc notation.Descriptor) bool {
	from := mover.Square()
	to := desc.SqNext
	moverID := mover.ID()
	moverType := mover.Type()

	var capturedRef *PieceRef
	if desc.IsCapture {
		capturedRef = b.capture(mover, to)
	}

	b.detach(from)
	if err := b.attach(moverID, desc.Color, to, moverType); err != nil {
		return false
	}

	if newPiece, ok := b.PieceAt(to); ok {
		if pawn, ok := newPiece.(piece.Pawn); ok && pawn.IsPromoted(b) {
			b.promote(to, desc)
		}
	}

	b.updateCastle(moverID, moverType, desc.Color, capturedRef)
	b.enPassant = computeEnPassant(moverID, from, to, b.variant.Size)
	b.pushHistory(from, desc.PGN)
	b.refresh()
	return true
}

// computeEnPassant implements spec.md §4.10: the en passant target is set
// only when the just-played move was a pawn advancing two ranks, in which
// case it is the square on the pawn's file between its origin and
// destination ranks. Any other move clears it.
func computeEnPassant(moverID, from, to string, sz square.Size) string {
	if moverID != "P" {
		return ""
	}
	ff, fr, err1 := sz.ToIndex(from)
	tf, tr, err2 := sz.ToIndex(to)
	if err1 != nil || err2 != nil || ff != tf {
		return ""
	}
	diff := tr - fr
	if diff != 2 && diff != -2 {
		return ""
	}
	mid := fr + diff/2
	return sz.FromIndex(ff, mid)
}

// capture removes the piece taken by a move landing on `to`: the piece
// sitting there normally, or — for a pawn whose en passant target is
// `to` and which is itself empty — the pawn captured in passing.
func (b *Board) capture(mover piece.Piece, to string) *PieceRef {
	var captured piece.Piece

	if pawn, ok := mover.(piece.Pawn); ok {
		if ep := pawn.EnPassantSq(b); ep != "" && ep == to {
			if _, occ := b.PieceAt(to); !occ {
				if victim, ok := pawn.EnPassantPawn(b); ok {
					captured = victim
					b.detach(victim.Square())
				}
			}
		}
	}

	if captured == nil {
		if p, ok := b.PieceAt(to); ok {
			captured = p
			b.detach(to)
		}
	}

	if captured == nil {
		return nil
	}

	r := ref(captured)
	b.captures[mover.Color()] = append(b.captures[mover.Color()], CaptureRecord{
		Capturing: ref(mover),
		Captured:  r,
	})
	return &r
}

// promote replaces the pawn on sq with desc.NewID (default Q). A promoted
// rook always carries piece.Plain — it does not grant castling.
func (b *Board) promote(sq string, desc notation.Descriptor) {
	id := desc.NewID
	if id == "" {
		id = "Q"
	}
	b.detach(sq)
	_ = b.attach(id, desc.Color, sq, piece.Plain)
}

// updateCastle removes castling rights per spec.md §4.4: the mover's own
// rights when a king or castling-eligible rook moves, and the opponent's
// matching right when this move captures their rook on its home square.
func (b *Board) updateCastle(moverID string, moverType piece.RookType, c color.Color, capturedRef *PieceRef) {
	switch moverID {
	case "K":
		b.castlingAbility = b.variant.Rule.Update(b.castlingAbility, c, []castling.Side{castling.Short, castling.Long})
	case "R":
		switch moverType {
		case piece.CastleShort:
			b.castlingAbility = b.variant.Rule.Update(b.castlingAbility, c, []castling.Side{castling.Short})
		case piece.CastleLong:
			b.castlingAbility = b.variant.Rule.Update(b.castlingAbility, c, []castling.Side{castling.Long})
		}
	}

	if capturedRef == nil {
		return
	}
	opp := color.Opp(c)
	if home, ok := b.variant.Rule.RookHome(opp, castling.Short); ok && capturedRef.Sq == home {
		b.castlingAbility = b.variant.Rule.Update(b.castlingAbility, opp, []castling.Side{castling.Short})
	}
	if home, ok := b.variant.Rule.RookHome(opp, castling.Long); ok && capturedRef.Sq == home {
		b.castlingAbility = b.variant.Rule.Update(b.castlingAbility, opp, []castling.Side{castling.Long})
	}
}

func (b *Board) pushHistory(fromSq, pgn string) {
	b.history = append(b.history, HistoryEntry{
		CastlingAbility: b.castlingAbility,
		Sq:              fromSq,
		Move:            pgn,
	})
}

// refresh is run after every successful half-move: flip the side to move,
// recompute the derived piece-count/space caches, and restamp the FEN on
// the history entry just pushed. Concrete pieces in this module are pure
// functions of the board rather than stateful observers, so there is no
// cross-reference cache to rebuild here beyond what spec.md §4.5 itself
// computes (sqCount, spaceEval).
func (b *Board) refresh() {
	b.turn = color.Opp(b.turn)
	b.refreshCaches()
	if n := len(b.history); n > 0 {
		b.history[n-1].FEN = b.ToFEN()
	}
}

// refreshCaches recomputes the derived piece-count/material caches from
// the current position. Called on construction and after every move.
func (b *Board) refreshCaches() {
	b.sqCount = len(b.pieces)
	b.spaceEval = b.computeSpaceEval()
}

// playCastle handles O-O/O-O-O half-moves.
func (b *Board) playCastle(desc notation.Descriptor) bool {
	kp, ok := b.Piece(desc.Color, "K")
	if !ok {
		return false
	}
	king, ok := kp.(piece.King)
	if !ok {
		return false
	}

	side := castling.Short
	target := king.SqCastleShort()
	if desc.Kind == notation.CastleLong {
		side = castling.Long
		target = king.SqCastleLong()
	}
	if target == "" || !contains(king.MoveSqs(b), target) {
		return false
	}
	if !b.castleSafe(desc.Color, king, side) {
		return false
	}

	rtype := piece.CastleShort
	if side == castling.Long {
		rtype = piece.CastleLong
	}
	rook, ok := king.GetCastleRook(b, rtype)
	if !ok {
		return false
	}
	entry, ok := b.variant.Rule.Entry(desc.Color, side)
	if !ok {
		return false
	}

	fromSq := kp.Square()
	b.detach(kp.Square())
	b.detach(rook.Square())
	if err := b.attach("K", desc.Color, entry.King.Next, piece.Plain); err != nil {
		return false
	}
	if err := b.attach("R", desc.Color, entry.Rook.Next, piece.Plain); err != nil {
		return false
	}

	b.castlingAbility = b.variant.Rule.Castle(b.castlingAbility, desc.Color)
	b.enPassant = ""
	b.pushHistory(fromSq, notation.CastleToken(side))
	b.refresh()
	return true
}

// kingPath returns the squares strictly after `from` up to and including
// `to`, along a king's rank — used to check a castling king does not pass
// through or land on an attacked square.
func kingPath(from, to string, sz square.Size) []string {
	ff, r, _ := sz.ToIndex(from)
	tf, _, _ := sz.ToIndex(to)
	step := 1
	if tf < ff {
		step = -1
	}
	var out []string
	for f := ff + step; ; f += step {
		out = append(out, sz.FromIndex(f, r))
		if f == tf {
			break
		}
	}
	return out
}

// WouldExposeKing implements the operational pin test of spec.md §4.3: on
// a throwaway clone, apply the raw move (handling en passant and castling
// side-effects so the simulated position is accurate) and ask whether the
// mover's own king is now attacked. Implements piece.Board.
func (b *Board) WouldExposeKing(from, to string, mover color.Color) bool {
	clone, err := b.rawClone()
	if err != nil {
		return true
	}

	p, ok := clone.PieceAt(from)
	if !ok {
		return true
	}

	if pawn, ok := p.(piece.Pawn); ok {
		if ep := pawn.EnPassantSq(clone); ep != "" && ep == to {
			if _, occ := clone.PieceAt(to); !occ {
				if victim, ok := pawn.EnPassantPawn(clone); ok {
					clone.detach(victim.Square())
				}
			}
		}
	}

	if king, ok := p.(piece.King); ok {
		if side, isCastle := clone.castleSideFor(king, to); isCastle {
			rtype := piece.CastleShort
			if side == castling.Long {
				rtype = piece.CastleLong
			}
			if rook, ok := king.GetCastleRook(clone, rtype); ok {
				if entry, ok := clone.variant.Rule.Entry(mover, side); ok {
					clone.detach(rook.Square())
					_ = clone.attach("R", mover, entry.Rook.Next, piece.Plain)
				}
			}
		}
	}

	clone.detach(from)
	if err := clone.attach(p.ID(), mover, to, p.Type()); err != nil {
		return true
	}

	kingSq, ok := clone.kingSquare(mover)
	if !ok {
		return true
	}
	return clone.isAttacked(kingSq, color.Opp(mover))
}

func (b *Board) isAttacked(sq string, by color.Color) bool {
	for _, p := range b.pieces {
		if p.Color() != by {
			continue
		}
		if contains(p.Attacks(b), sq) {
			return true
		}
	}
	return false
}

func contains(sqs []string, target string) bool {
	for _, s := range sqs {
		if s == target {
			return true
		}
	}
	return false
}

// computeSpaceEval is a minimal material-balance stand-in for the
// space/attack evaluation heuristics spec.md §1 names as an external,
// UI-only collaborator — this package does not implement that heuristic,
// only the cache slot spec.md §3 reserves for it.
func (b *Board) computeSpaceEval() int {
	values := map[string]int{"P": 1, "N": 3, "B": 3, "R": 5, "Q": 9, "K": 0}
	total := 0
	for _, p := range b.pieces {
		v := values[p.ID()]
		if p.Color() == color.B {
			v = -v
		}
		total += v
	}
	return total
}

// SpaceEval exposes the derived material cache refreshed by refresh().
func (b *Board) SpaceEval() int { return b.spaceEval }

// SqCount exposes the derived piece-count cache refreshed by refresh().
func (b *Board) SqCount() int { return b.sqCount }
