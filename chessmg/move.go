package chessmg

import "strings"

// CastleSide marks a castling move's wing.
type CastleSide uint8

const (
	CastleNone CastleSide = iota
	CastleKingSide
	CastleQueenSide
)

// Move is a pure value describing a move; it carries no reference to the
// state it was generated from.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType  // NoPieceType unless the move promotes
	EnPassant bool       // destination equals the en-passant target
	Castle    CastleSide // CastleNone for ordinary moves
}

// String produces the coordinate form of the move (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += strings.ToLower(m.Promotion.letter())
	}
	return s
}

// MoveRecord pairs an applied move with the pre-move facts needed to undo it.
type MoveRecord struct {
	Move          Move
	Captured      Piece // NoPiece when nothing was taken
	PrevCastling  CastlingRights
	PrevEnPassant Square
	PrevHalfmove  int
}

// applyToBoard plays the move on a bare board: en-passant victim removal,
// castling rook relocation and promotion replacement included. Bookkeeping
// (rights, clocks, turn) is the caller's job.
func applyToBoard(b *Board, m Move) {
	p := b.PieceAt(m.From)
	if m.EnPassant {
		// The captured pawn sits on the origin's rank at the destination's file.
		b.ClearSquare(Square{Row: m.From.Row, Col: m.To.Col})
	}
	b.ClearSquare(m.From)
	if m.Promotion != NoPieceType {
		p = Piece{Color: p.Color, Type: m.Promotion}
	}
	b.SetPiece(m.To, p)

	switch m.Castle {
	case CastleKingSide:
		rook := b.PieceAt(Square{Row: m.From.Row, Col: 7})
		b.ClearSquare(Square{Row: m.From.Row, Col: 7})
		b.SetPiece(Square{Row: m.From.Row, Col: 5}, rook)
	case CastleQueenSide:
		rook := b.PieceAt(Square{Row: m.From.Row, Col: 0})
		b.ClearSquare(Square{Row: m.From.Row, Col: 0})
		b.SetPiece(Square{Row: m.From.Row, Col: 3}, rook)
	}
}
