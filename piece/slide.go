package piece

import "go.eastwood.dev/chessboard/color"

// slide walks from sq in each of the given (file, rank) directions until it
// runs off the board or hits a piece, collecting every empty square passed
// through plus the first occupied square if it belongs to the opponent.
// Grounded on the teacher's generateSlidingMoves/isPathClear loop.
func slide(b Board, sq string, c color.Color, directions [][2]int) []string {
	sz := b.Size()
	var out []string

	for _, d := range directions {
		cur := sq
		for {
			next, ok := sz.Offset(cur, d[0], d[1])
			if !ok {
				break
			}
			if occ, found := b.PieceAt(next); found {
				if occ.Color() != c {
					out = append(out, next)
				}
				break
			}
			out = append(out, next)
			cur = next
		}
	}

	return out
}

// step evaluates a fixed set of (file, rank) offsets from sq (used by
// knights and kings) and keeps the ones that are on the board and not
// occupied by a piece of color c.
func step(b Board, sq string, c color.Color, offsets [][2]int) []string {
	sz := b.Size()
	var out []string

	for _, o := range offsets {
		next, ok := sz.Offset(sq, o[0], o[1])
		if !ok {
			continue
		}
		if occ, found := b.PieceAt(next); found && occ.Color() == c {
			continue
		}
		out = append(out, next)
	}

	return out
}

var rookDirections = [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
var bishopDirections = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var queenDirections = append(append([][2]int{}, rookDirections...), bishopDirections...)
var knightOffsets = [][2]int{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {2, 1}, {2, -1}, {-2, 1}, {-2, -1}}
var kingOffsets = [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

func contains(sqs []string, target string) bool {
	for _, s := range sqs {
		if s == target {
			return true
		}
	}
	return false
}
