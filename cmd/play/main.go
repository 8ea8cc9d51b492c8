// Command play is a minimal terminal loop for playing against the engine.
// Moves are entered in coordinate form ("e2e4", "e7e8q").
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"chess-game/engine"

	gm "chess-game/chessmg"
)

var (
	whitePiece = color.New(color.FgHiWhite, color.Bold)
	blackPiece = color.New(color.FgHiBlue, color.Bold)
	boardRule  = color.New(color.FgYellow)
)

func main() {
	fen := flag.String("fen", gm.FENStartPos, "Starting position")
	depth := flag.Int("depth", 3, "Engine search depth in plies")
	playBlack := flag.Bool("black", false, "Play the black pieces")
	flag.Parse()

	state, err := gm.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	human := gm.White
	if *playBlack {
		human = gm.Black
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		printBoard(state)
		if state.GameOver {
			fmt.Println("game over:", state.Result)
			if len(state.Notations) > 0 {
				fmt.Println("moves:", strings.Join(state.Notations, " "))
			}
			return
		}

		var move gm.Move
		if state.Turn == human {
			m, quit := readMove(reader, state)
			if quit {
				return
			}
			move = m
		} else {
			chosen := engine.BestMove(state, *depth)
			if chosen == nil {
				// Unreachable: a live state always has a legal move.
				fmt.Fprintln(os.Stderr, "engine found no move in a live position")
				return
			}
			move = *chosen
		}

		next, err := state.MakeMove(move)
		if err != nil {
			fmt.Println("rejected:", err)
			continue
		}
		state = next
		fmt.Printf("%s plays %s\n", state.Turn.Opponent(), state.Notations[len(state.Notations)-1])
	}
}

// readMove prompts until the input parses and matches a legal move.
func readMove(reader *bufio.Reader, state *gm.GameState) (gm.Move, bool) {
	for {
		fmt.Printf("%s> ", state.Turn)
		line, err := reader.ReadString('\n')
		if err != nil {
			return gm.Move{}, true
		}
		text := strings.TrimSpace(strings.ToLower(line))
		if text == "quit" || text == "exit" {
			return gm.Move{}, true
		}
		m, err := parseMove(state, text)
		if err != nil {
			fmt.Println(err)
			continue
		}
		return m, false
	}
}

// parseMove resolves coordinate text against the legal moves, so castling
// and en-passant flags come from the generator rather than the user.
func parseMove(state *gm.GameState, text string) (gm.Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return gm.Move{}, errors.Errorf("cannot parse %q: want e.g. e2e4 or e7e8q", text)
	}
	from, ok := gm.ParseSquare(text[:2])
	if !ok {
		return gm.Move{}, errors.Errorf("bad origin square in %q", text)
	}
	to, ok := gm.ParseSquare(text[2:4])
	if !ok {
		return gm.Move{}, errors.Errorf("bad destination square in %q", text)
	}
	promo := gm.NoPieceType
	if len(text) == 5 {
		switch text[4] {
		case 'q':
			promo = gm.Queen
		case 'r':
			promo = gm.Rook
		case 'b':
			promo = gm.Bishop
		case 'n':
			promo = gm.Knight
		default:
			return gm.Move{}, errors.Errorf("bad promotion letter in %q", text)
		}
	}
	for _, m := range state.LegalMoves() {
		if m.From == from && m.To == to && m.Promotion == promo {
			return m, nil
		}
	}
	return gm.Move{}, errors.Errorf("%s is not a legal move here", text)
}

func printBoard(state *gm.GameState) {
	fmt.Println()
	for r := 0; r < 8; r++ {
		boardRule.Printf("%d ", 8-r)
		for f := 0; f < 8; f++ {
			p := state.Board[r][f]
			switch {
			case p.IsEmpty():
				fmt.Print(" .")
			case p.Color == gm.White:
				whitePiece.Printf(" %s", pieceGlyph(p))
			default:
				blackPiece.Printf(" %s", pieceGlyph(p))
			}
		}
		fmt.Println()
	}
	boardRule.Println("   a b c d e f g h")
}

func pieceGlyph(p gm.Piece) string {
	glyphs := map[gm.PieceType]string{
		gm.Pawn: "P", gm.Knight: "N", gm.Bishop: "B",
		gm.Rook: "R", gm.Queen: "Q", gm.King: "K",
	}
	return glyphs[p.Type]
}
