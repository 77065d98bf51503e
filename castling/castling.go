// Package castling provides the castling-rule table: for each color and
// side, the king/rook source and destination squares, and the string
// mutations that track castling ability. It is an external collaborator
// per the board engine — the core never hard-codes castling geometry.
package castling

import (
	"strings"

	"go.eastwood.dev/chessboard/color"
)

// Side is one of the two castling sides.
type Side string

const (
	// Short is kingside castling (O-O).
	Short Side = "short"
	// Long is queenside castling (O-O-O).
	Long Side = "long"
)

// Squares is a source/destination pair for one piece's half of a castling
// move.
type Squares struct {
	Current string
	Next    string
}

// Entry describes where the king and rook start and end for one
// color/side combination.
type Entry struct {
	King Squares
	Rook Squares
}

// ability returns the single-character ability token for a color/side
// combination, e.g. White-Short is "K", Black-Long is "q".
func ability(c color.Color, side Side) byte {
	switch {
	case c == color.W && side == Short:
		return 'K'
	case c == color.W && side == Long:
		return 'Q'
	case c == color.B && side == Short:
		return 'k'
	default:
		return 'q'
	}
}

// Rule is the castling-rule table for one board geometry.
type Rule struct {
	entries map[color.Color]map[Side]Entry
}

// Standard returns the castling rule table for classical 8x8 chess.
func Standard() *Rule {
	return &Rule{
		entries: map[color.Color]map[Side]Entry{
			color.W: {
				Short: {King: Squares{"e1", "g1"}, Rook: Squares{"h1", "f1"}},
				Long:  {King: Squares{"e1", "c1"}, Rook: Squares{"a1", "d1"}},
			},
			color.B: {
				Short: {King: Squares{"e8", "g8"}, Rook: Squares{"h8", "f8"}},
				Long:  {King: Squares{"e8", "c8"}, Rook: Squares{"a8", "d8"}},
			},
		},
	}
}

// New builds a Rule from an explicit per-color, per-side entry table —
// used to describe a non-standard variant's castling geometry (e.g. from
// a config overlay) rather than the classical 8x8 squares Standard hard-
// codes.
func New(entries map[color.Color]map[Side]Entry) *Rule {
	return &Rule{entries: entries}
}

// Entry returns the king/rook squares for a color and side.
func (r *Rule) Entry(c color.Color, side Side) (Entry, bool) {
	bySide, ok := r.entries[c]
	if !ok {
		return Entry{}, false
	}
	e, ok := bySide[side]
	return e, ok
}

// RookHome returns the rook's home square for a color/side, used to detect
// "captured the opponent's rook on its home square" without the rook
// having to still be there.
func (r *Rule) RookHome(c color.Color, side Side) (string, bool) {
	e, ok := r.Entry(c, side)
	if !ok {
		return "", false
	}
	return e.Rook.Current, true
}

// Can reports, for each side, whether ability still grants it to c.
func (r *Rule) Can(ability string, c color.Color) map[Side]bool {
	return map[Side]bool{
		Short: strings.IndexByte(ability, castAbility(c, Short)) >= 0,
		Long:  strings.IndexByte(ability, castAbility(c, Long)) >= 0,
	}
}

func castAbility(c color.Color, s Side) byte { return ability(c, s) }

// Update removes the listed rights from ability for color c, returning the
// new ability string (or "-" if nothing is left).
func (r *Rule) Update(ab string, c color.Color, remove []Side) string {
	var drop []byte
	for _, s := range remove {
		drop = append(drop, ability(c, s))
	}
	return dropChars(ab, drop)
}

// Castle removes both rights for color c (called once castling has
// happened).
func (r *Rule) Castle(ab string, c color.Color) string {
	return r.Update(ab, c, []Side{Short, Long})
}

func dropChars(ab string, drop []byte) string {
	var sb strings.Builder
	for i := 0; i < len(ab); i++ {
		ch := ab[i]
		if ch == '-' {
			continue
		}
		skip := false
		for _, d := range drop {
			if ch == d {
				skip = true
				break
			}
		}
		if !skip {
			sb.WriteByte(ch)
		}
	}
	out := sb.String()
	if out == "" {
		return "-"
	}
	return out
}
