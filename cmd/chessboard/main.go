// Command chessboard is an interactive terminal client for the board
// engine: it plays a single game against itself, accepting moves typed in
// PGN half-move or long algebraic notation until the game ends or the
// player quits.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pkg/profile"

	"go.eastwood.dev/chessboard/board"
	"go.eastwood.dev/chessboard/color"
	"go.eastwood.dev/chessboard/config"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "starting position (FEN)")
	variantFile := flag.String("variant", "", "path to a TOML variant overlay (board size + castling geometry)")
	profileFlag := flag.Bool("profile", false, "capture a CPU profile of this run to ./cpu.pprof")
	flag.Parse()

	if *profileFlag {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	var b *board.Board
	var err error
	if *variantFile != "" {
		vf, vErr := config.LoadVariantFile(*variantFile)
		if vErr != nil {
			log.Fatalf("chessboard: %v", vErr)
		}
		b, err = board.NewVariant(*fen, vf.Variant())
	} else {
		b, err = board.New(*fen)
	}
	if err != nil {
		log.Fatalf("chessboard: invalid starting FEN: %v", err)
	}

	fmt.Println("chessboard — type 'help' for commands, 'quit' to exit")
	fmt.Println()
	fmt.Println(b.String())
	prompt(b)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(input) {
		case "quit", "exit", "q":
			fmt.Println("bye")
			return
		case "help", "h":
			printHelp()
		case "board", "b":
			fmt.Println(b.String())
		case "status", "s":
			printStatus(b)
		case "history":
			printHistory(b)
		case "fen":
			fmt.Println(b.ToFEN())
		case "undo":
			nb, err := b.Undo()
			if err != nil {
				fmt.Printf("cannot undo: %v\n", err)
				break
			}
			b = nb
			fmt.Println(b.String())
		case "":
			// ignore blank lines
		default:
			handleMove(b, input)
		}

		prompt(b)
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("chessboard: reading input: %v", err)
	}
}

func handleMove(b *board.Board, input string) {
	turn := b.Turn()

	var ok bool
	if looksLikeLAN(input) {
		ok = b.PlayLAN(turn, input)
	} else {
		ok = b.Play(turn, input)
	}

	if !ok {
		fmt.Printf("rejected: %q is not a legal move for %s\n", input, turn)
		return
	}

	fmt.Println(b.String())
	if b.IsMate() {
		fmt.Printf("checkmate — %s wins\n", color.Opp(b.Turn()))
	} else if b.IsStalemate() {
		fmt.Println("stalemate — draw")
	} else if b.IsCheck() {
		fmt.Printf("%s is in check\n", b.Turn())
	}
}

// looksLikeLAN distinguishes "e2e4"/"e7e8q" from SAN text: LAN is 4-5
// characters, all lowercase, with no piece letter or capture/check marks.
func looksLikeLAN(s string) bool {
	if len(s) < 4 || len(s) > 5 {
		return false
	}
	if s == "O-O" || s == "O-O-O" {
		return false
	}
	return s == strings.ToLower(s) && !strings.ContainsAny(s, "x+#=O-")
}

func prompt(b *board.Board) {
	if b.IsMate() || b.IsStalemate() || b.IsFiftyMoveDraw() || b.IsFivefoldRepetition() || b.IsDeadPositionDraw() {
		fmt.Print("game over — type 'new'-style restart not supported here, 'quit' to exit: ")
		return
	}
	fmt.Printf("%s to move> ", b.Turn())
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  help, h    - show this help")
	fmt.Println("  board, b   - print the board")
	fmt.Println("  status, s  - print check/mate/draw status")
	fmt.Println("  history    - print movetext so far")
	fmt.Println("  fen        - print the current FEN")
	fmt.Println("  undo       - take back the last half-move")
	fmt.Println("  quit, exit, q")
	fmt.Println()
	fmt.Println("Moves: SAN half-moves (e4, Nf3, Qxf7#, O-O) or LAN (e2e4, e7e8q)")
}

func printStatus(b *board.Board) {
	fmt.Printf("turn: %s\n", b.Turn())
	fmt.Printf("check: %v  mate: %v  stalemate: %v\n", b.IsCheck(), b.IsMate(), b.IsStalemate())
	fmt.Printf("fifty-move draw: %v  fivefold repetition: %v  dead position: %v\n",
		b.IsFiftyMoveDraw(), b.IsFivefoldRepetition(), b.IsDeadPositionDraw())
	fmt.Printf("castling ability: %s  en passant: %s\n", b.CastlingAbility(), b.EnPassant())
}

func printHistory(b *board.Board) {
	text := b.Movetext()
	if text == "" {
		fmt.Println("no moves played yet")
		return
	}
	fmt.Println(text)
}
