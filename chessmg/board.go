package chessmg

// Color identifies a side.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opponent returns the other side.
func (c Color) Opponent() Color { return 1 - c }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless piece kind.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// letter returns the English piece letter used in SAN ("" for pawns).
func (pt PieceType) letter() string {
	switch pt {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return ""
	}
}

// Piece is a colored piece. The zero value means "no piece".
type Piece struct {
	Color Color
	Type  PieceType
}

// NoPiece is the empty-square value.
var NoPiece = Piece{}

// IsEmpty reports whether p denotes an empty square.
func (p Piece) IsEmpty() bool { return p.Type == NoPieceType }

// Square addresses a board cell. Row 0 is rank 8, Col 0 is file a.
type Square struct {
	Row int
	Col int
}

// NoSquare is the sentinel for "no square" (unset en-passant target).
var NoSquare = Square{Row: -1, Col: -1}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

// String renders the square in file-rank form, e.g. "e4".
func (s Square) String() string {
	if !s.InBounds() {
		return "-"
	}
	return string([]byte{'a' + byte(s.Col), '8' - byte(s.Row)})
}

// ParseSquare converts file-rank text ("e4") back into a Square.
func ParseSquare(text string) (Square, bool) {
	if len(text) != 2 {
		return NoSquare, false
	}
	file := text[0]
	rank := text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, true
}

// CastlingRights is a bitmask of the four independent castling permissions.
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ
)

// Board is an 8x8 mailbox, indexed [row][col].
type Board [8][8]Piece

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq Square) Piece { return b[sq.Row][sq.Col] }

// SetPiece places a piece on a square, replacing any existing piece.
func (b *Board) SetPiece(sq Square, p Piece) { b[sq.Row][sq.Col] = p }

// ClearSquare removes any piece from the given square.
func (b *Board) ClearSquare(sq Square) { b[sq.Row][sq.Col] = NoPiece }

// Movement offsets shared by generation and attack detection.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	bishopDirs    = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	rookDirs      = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// pawnDir is the row delta a pawn of the given color advances by.
func pawnDir(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// homeRow is the back rank row for the given color.
func homeRow(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

// KingSquare returns the square of c's king, or NoSquare if absent.
func (b *Board) KingSquare(c Color) Square {
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			p := b[r][f]
			if p.Type == King && p.Color == c {
				return Square{Row: r, Col: f}
			}
		}
	}
	return NoSquare
}

// IsAttacked reports whether any piece of the given color attacks the square.
// Rays stop at the first occupied square regardless of its color; only that
// first piece can deliver a sliding attack.
func (b *Board) IsAttacked(sq Square, by Color) bool {
	for _, off := range knightOffsets {
		t := Square{Row: sq.Row + off[0], Col: sq.Col + off[1]}
		if t.InBounds() {
			if p := b.PieceAt(t); p.Type == Knight && p.Color == by {
				return true
			}
		}
	}

	for _, off := range kingOffsets {
		t := Square{Row: sq.Row + off[0], Col: sq.Col + off[1]}
		if t.InBounds() {
			if p := b.PieceAt(t); p.Type == King && p.Color == by {
				return true
			}
		}
	}

	// A pawn attacks diagonally forward, so the attacker sits one row behind
	// the target square from its own point of view.
	pr := sq.Row - pawnDir(by)
	for _, dc := range [2]int{-1, 1} {
		t := Square{Row: pr, Col: sq.Col + dc}
		if t.InBounds() {
			if p := b.PieceAt(t); p.Type == Pawn && p.Color == by {
				return true
			}
		}
	}

	for _, dir := range bishopDirs {
		if p, ok := b.firstAlong(sq, dir); ok && p.Color == by && (p.Type == Bishop || p.Type == Queen) {
			return true
		}
	}
	for _, dir := range rookDirs {
		if p, ok := b.firstAlong(sq, dir); ok && p.Color == by && (p.Type == Rook || p.Type == Queen) {
			return true
		}
	}
	return false
}

// firstAlong walks from sq in the given direction and returns the first piece hit.
func (b *Board) firstAlong(sq Square, dir [2]int) (Piece, bool) {
	t := Square{Row: sq.Row + dir[0], Col: sq.Col + dir[1]}
	for t.InBounds() {
		if p := b.PieceAt(t); !p.IsEmpty() {
			return p, true
		}
		t.Row += dir[0]
		t.Col += dir[1]
	}
	return NoPiece, false
}

// InCheck reports whether c's king is attacked. Positions without a king
// (possible via arbitrary FEN input) are never considered in check.
func (b *Board) InCheck(c Color) bool {
	ksq := b.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return b.IsAttacked(ksq, c.Opponent())
}
