// Package square maps algebraic square notation to file/rank indices and
// back, parameterised by board geometry so non-standard variants (larger
// or smaller boards) can reuse the same arithmetic as the standard game.
package square

import "fmt"

// Size describes a board's geometry: how many files (columns) and ranks
// (rows) it has. The standard chess board is Size{Files: 8, Ranks: 8}.
type Size struct {
	Files int
	Ranks int
}

// Standard is the 8x8 geometry of classical chess.
var Standard = Size{Files: 8, Ranks: 8}

// ToIndex parses an algebraic square such as "e4" into zero-based file and
// rank indices. It reports an error if sq is not a well-formed square for
// this geometry (wrong length, out-of-range file letter, or out-of-range
// rank digit).
func (s Size) ToIndex(sq string) (file, rank int, err error) {
	if len(sq) != 2 {
		return 0, 0, fmt.Errorf("square: invalid notation %q", sq)
	}

	file = int(sq[0] - 'a')
	rank = int(sq[1] - '1')

	if file < 0 || file >= s.Files || rank < 0 || rank >= s.Ranks {
		return 0, 0, fmt.Errorf("square: invalid notation %q", sq)
	}

	return file, rank, nil
}

// FromIndex renders zero-based file/rank indices back into algebraic
// notation, e.g. FromIndex(4, 3) == "e4" on the standard board.
func (s Size) FromIndex(file, rank int) string {
	return fmt.Sprintf("%c%c", 'a'+file, '1'+rank)
}

// Valid reports whether sq is a well-formed square for this geometry.
func (s Size) Valid(sq string) bool {
	_, _, err := s.ToIndex(sq)
	return err == nil
}

// Color returns "w" for a light square and "b" for a dark square, using
// the standard alternating coloring (a1 is dark).
func (s Size) Color(sq string) (string, error) {
	file, rank, err := s.ToIndex(sq)
	if err != nil {
		return "", err
	}
	if (file+rank)%2 == 0 {
		return "b", nil
	}
	return "w", nil
}

// Offset returns the square reached from sq by moving dFiles files and
// dRanks ranks, and whether that destination is still on the board.
func (s Size) Offset(sq string, dFiles, dRanks int) (string, bool) {
	file, rank, err := s.ToIndex(sq)
	if err != nil {
		return "", false
	}
	file += dFiles
	rank += dRanks
	if file < 0 || file >= s.Files || rank < 0 || rank >= s.Ranks {
		return "", false
	}
	return s.FromIndex(file, rank), true
}
