package board

import (
	"fmt"
	"strconv"
	"strings"

	"go.eastwood.dev/chessboard/color"
	"go.eastwood.dev/chessboard/piece"
)

// loadFEN parses fen (piece placement, turn, castling ability, en passant
// target — the four fields spec.md §6 requires; halfmove/fullmove counters
// are accepted but not retained, per spec.md §2's four-field wire format)
// and replaces this board's pieces/turn/castling/en-passant with it.
func (b *Board) loadFEN(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return fmt.Errorf("board: invalid FEN %q: need at least 4 fields", fen)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != b.variant.Size.Ranks {
		return fmt.Errorf("board: invalid FEN %q: expected %d ranks, got %d", fen, b.variant.Size.Ranks, len(ranks))
	}

	b.pieces = make(map[string]piece.Piece)

	for i, rankStr := range ranks {
		rank := b.variant.Size.Ranks - 1 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '9' {
				file += int(ch - '0')
				continue
			}
			if file >= b.variant.Size.Files {
				return fmt.Errorf("board: invalid FEN %q: rank %d overflows", fen, rank+1)
			}
			id := strings.ToUpper(string(ch))
			c := color.W
			if ch >= 'a' && ch <= 'z' {
				c = color.B
			}
			sq := b.variant.Size.FromIndex(file, rank)
			rtype := piece.Plain
			if id == "R" {
				rtype = b.variant.Factory.RookTypeForHome(c, sq)
			}
			if err := b.attach(id, c, sq, rtype); err != nil {
				return fmt.Errorf("board: invalid FEN %q: %w", fen, err)
			}
			file++
		}
		if file != b.variant.Size.Files {
			return fmt.Errorf("board: invalid FEN %q: rank %d has %d files, want %d", fen, rank+1, file, b.variant.Size.Files)
		}
	}

	switch fields[1] {
	case "w":
		b.turn = color.W
	case "b":
		b.turn = color.B
	default:
		return fmt.Errorf("board: invalid FEN %q: bad turn field %q", fen, fields[1])
	}

	b.castlingAbility = fields[2]

	if fields[3] == "-" {
		b.enPassant = ""
	} else if b.variant.Size.Valid(fields[3]) {
		b.enPassant = fields[3]
	} else {
		return fmt.Errorf("board: invalid FEN %q: bad en passant field %q", fen, fields[3])
	}

	return nil
}

// ToFEN serializes the current position to the four-field FEN wire format
// of spec.md §4.9/§6 (no halfmove/fullmove counters).
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for rank := b.variant.Size.Ranks - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < b.variant.Size.Files; file++ {
			sq := b.variant.Size.FromIndex(file, rank)
			p, ok := b.pieces[sq]
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(glyph(p))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteString("/")
		}
	}

	sb.WriteString(" ")
	sb.WriteString(string(b.turn))
	sb.WriteString(" ")
	if b.castlingAbility == "" {
		sb.WriteString("-")
	} else {
		sb.WriteString(b.castlingAbility)
	}
	sb.WriteString(" ")
	sb.WriteString(b.EnPassant())

	return sb.String()
}
