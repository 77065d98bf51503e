package board

import (
	"fmt"
	"strings"

	"go.eastwood.dev/chessboard/color"
	"go.eastwood.dev/chessboard/notation"
)

// Movetext renders the played history as standard numbered movetext
// ("1. e4 e5 2. Nf3 ..."), prefixing with "1..." when the game's starting
// position already has Black to move.
func (b *Board) Movetext() string {
	if len(b.history) == 0 {
		return ""
	}

	var sb strings.Builder
	idx := 0
	moveNo := 1

	if b.startingColor() == color.B {
		fmt.Fprintf(&sb, "%d%s %s ", moveNo, notation.Ellipsis, b.history[0].Move)
		idx = 1
		moveNo++
	}

	for ; idx < len(b.history); idx += 2 {
		fmt.Fprintf(&sb, "%d. %s", moveNo, b.history[idx].Move)
		if idx+1 < len(b.history) {
			fmt.Fprintf(&sb, " %s", b.history[idx+1].Move)
		}
		sb.WriteString(" ")
		moveNo++
	}

	return strings.TrimSpace(sb.String())
}

func (b *Board) startingColor() color.Color {
	fields := strings.Fields(b.startFEN)
	if len(fields) > 1 && fields[1] == "b" {
		return color.B
	}
	return color.W
}

// Undo returns a new board obtained by replaying every half-move except
// the last from the starting position, per spec.md §4.8 — this board is
// left untouched.
func (b *Board) Undo() (*Board, error) {
	if len(b.history) == 0 {
		return nil, fmt.Errorf("board: no moves to undo")
	}

	nb, err := NewVariant(b.startFEN, b.variant)
	if err != nil {
		return nil, err
	}

	for _, h := range b.history[:len(b.history)-1] {
		if !nb.Play(nb.Turn(), h.Move) {
			return nil, fmt.Errorf("board: failed to replay %q during undo", h.Move)
		}
	}

	return nb, nil
}
