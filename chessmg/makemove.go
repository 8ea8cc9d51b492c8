package chessmg

import "github.com/pkg/errors"

// ErrNoPieceAtOrigin is returned by MakeMove when the move's origin square
// is empty. No other precondition is validated; callers are expected to feed
// moves produced by LegalMoves.
var ErrNoPieceAtOrigin = errors.New("no piece on origin square")

// MakeMove applies the move and returns the successor state. The receiver is
// never modified. On failure no new state is produced.
func (s *GameState) MakeMove(m Move) (*GameState, error) {
	moving := s.Board.PieceAt(m.From)
	if moving.IsEmpty() {
		return nil, errors.Wrapf(ErrNoPieceAtOrigin, "move %s", m)
	}
	mover := moving.Color

	captured := s.Board.PieceAt(m.To)
	if m.EnPassant {
		captured = s.Board.PieceAt(Square{Row: m.From.Row, Col: m.To.Col})
	}

	// SAN needs the pre-move position; the check/mate suffix is added once
	// the successor's status is known.
	san := sanBody(s, m, !captured.IsEmpty())

	next := s.Clone()
	next.History = append(next.History, MoveRecord{
		Move:          m,
		Captured:      captured,
		PrevCastling:  s.Castling,
		PrevEnPassant: s.EnPassant,
		PrevHalfmove:  s.HalfmoveClock,
	})
	if !captured.IsEmpty() {
		next.Captured[mover] = append(next.Captured[mover], captured)
	}

	applyToBoard(&next.Board, m)

	// En-passant target exists only right after a pawn double push.
	next.EnPassant = NoSquare
	if moving.Type == Pawn && (m.To.Row-m.From.Row == 2 || m.From.Row-m.To.Row == 2) {
		next.EnPassant = Square{Row: (m.From.Row + m.To.Row) / 2, Col: m.From.Col}
	}

	next.updateCastlingRights(m, moving, captured)

	if moving.Type == Pawn || !captured.IsEmpty() {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if mover == Black {
		next.FullmoveNumber++
	}
	next.Turn = mover.Opponent()

	inCheck, mate := next.updateStatus(mover)
	if inCheck {
		if mate {
			san += "#"
		} else {
			san += "+"
		}
	}
	next.Notations = append(next.Notations, san)
	return next, nil
}

// updateCastlingRights clears rights invalidated by the move: both of the
// mover's on a king move, the matching one when a rook leaves its home
// corner, and the opponent's when a rook is captured on its home corner.
func (s *GameState) updateCastlingRights(m Move, moving, captured Piece) {
	mover := moving.Color
	if moving.Type == King {
		if mover == White {
			s.Castling &^= CastlingWhiteK | CastlingWhiteQ
		} else {
			s.Castling &^= CastlingBlackK | CastlingBlackQ
		}
	}
	if moving.Type == Rook && m.From.Row == homeRow(mover) {
		s.Castling &^= rookRight(mover, m.From.Col)
	}
	if captured.Type == Rook && m.To.Row == homeRow(captured.Color) {
		s.Castling &^= rookRight(captured.Color, m.To.Col)
	}
}

// rookRight maps a home-corner column to the castling right it anchors.
func rookRight(c Color, col int) CastlingRights {
	switch {
	case col == 0 && c == White:
		return CastlingWhiteQ
	case col == 7 && c == White:
		return CastlingWhiteK
	case col == 0 && c == Black:
		return CastlingBlackQ
	case col == 7 && c == Black:
		return CastlingBlackK
	}
	return 0
}

// updateStatus runs termination detection against the post-move state: mate
// or stalemate when the new side to move has no reply, otherwise the two draw
// rules (basic insufficient material, 50-move rule). It reports whether the
// new side to move is in check and whether that check is mate.
func (s *GameState) updateStatus(mover Color) (inCheck, mate bool) {
	inCheck = s.Board.InCheck(s.Turn)
	if len(s.LegalMoves()) == 0 {
		s.GameOver = true
		if inCheck {
			mate = true
			if mover == White {
				s.Result = WhiteWins
			} else {
				s.Result = BlackWins
			}
		} else {
			s.Result = Draw
		}
		return inCheck, mate
	}
	if insufficientMaterial(&s.Board) || s.HalfmoveClock >= 100 {
		s.GameOver = true
		s.Result = Draw
	}
	return inCheck, false
}

// insufficientMaterial covers the basic dead positions only: K vs K, K vs
// K + single minor, and KB vs KB with both bishops on same-colored squares.
func insufficientMaterial(b *Board) bool {
	type minor struct {
		piece  Piece
		parity int
	}
	var minors []minor
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			p := b[r][f]
			switch p.Type {
			case NoPieceType, King:
			case Knight, Bishop:
				minors = append(minors, minor{piece: p, parity: (r + f) % 2})
				if len(minors) > 2 {
					return false
				}
			default:
				return false
			}
		}
	}
	switch len(minors) {
	case 0, 1:
		return true
	case 2:
		first, second := minors[0], minors[1]
		return first.piece.Type == Bishop && second.piece.Type == Bishop &&
			first.piece.Color != second.piece.Color && first.parity == second.parity
	}
	return false
}
