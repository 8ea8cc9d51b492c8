package chessmg

import "strings"

// Result is the outcome of a finished game.
type Result uint8

const (
	InProgress Result = iota
	WhiteWins
	BlackWins
	Draw
)

func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// GameState is an immutable snapshot of a game. MakeMove never mutates its
// receiver; it returns a new, fully independent value.
type GameState struct {
	Board          Board
	Turn           Color
	Castling       CastlingRights
	EnPassant      Square // NoSquare when no target exists
	HalfmoveClock  int    // plies since the last pawn move or capture
	FullmoveNumber int    // starts at 1, incremented after Black's move

	History   []MoveRecord
	Captured  [2][]Piece // pieces each color has taken, indexed by capturing side
	Notations []string   // SAN, one entry per applied move

	GameOver bool
	Result   Result
}

// NewGame returns the standard starting position.
func NewGame() *GameState {
	s, err := ParseFEN(FENStartPos)
	if err != nil {
		// The start position constant is well-formed.
		panic(err)
	}
	return s
}

// Clone returns a deep copy sharing no mutable substructure with s.
func (s *GameState) Clone() *GameState {
	next := *s
	next.History = append([]MoveRecord(nil), s.History...)
	next.Notations = append([]string(nil), s.Notations...)
	next.Captured[White] = append([]Piece(nil), s.Captured[White]...)
	next.Captured[Black] = append([]Piece(nil), s.Captured[Black]...)
	return &next
}

// InCheck reports whether the side to move is currently in check.
func (s *GameState) InCheck() bool { return s.Board.InCheck(s.Turn) }

// String renders a rank/file ruled board diagram for debugging.
func (s *GameState) String() string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		sb.WriteByte('8' - byte(r))
		sb.WriteByte(' ')
		for f := 0; f < 8; f++ {
			p := s.Board[r][f]
			sb.WriteByte(' ')
			if p.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteRune(charFromPiece(p))
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	sb.WriteString(s.Turn.String())
	sb.WriteString(" to move\n")
	return sb.String()
}
