package chessmg

import "strings"

// sanBody renders the move in standard algebraic notation against the
// pre-move state, without the trailing check/mate marker (the caller appends
// "+" or "#" once the successor's status is known).
func sanBody(s *GameState, m Move, isCapture bool) string {
	switch m.Castle {
	case CastleKingSide:
		return "O-O"
	case CastleQueenSide:
		return "O-O-O"
	}

	moving := s.Board.PieceAt(m.From)
	capture := isCapture || m.EnPassant

	var sb strings.Builder
	if moving.Type == Pawn {
		if capture {
			sb.WriteByte('a' + byte(m.From.Col))
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.Promotion != NoPieceType {
			sb.WriteByte('=')
			sb.WriteString(m.Promotion.letter())
		}
		return sb.String()
	}

	sb.WriteString(moving.Type.letter())
	sb.WriteString(disambiguation(s, m, moving))
	if capture {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	return sb.String()
}

// disambiguation computes the origin suffix against the other pseudo-legal
// moves of the same piece kind and color landing on the same destination:
// origin file if unique, else origin rank, else both.
func disambiguation(s *GameState, m Move, moving Piece) string {
	sameFile, sameRank, any := false, false, false
	for _, other := range s.PseudoLegalMoves(moving.Color) {
		if other.To != m.To || other.From == m.From {
			continue
		}
		if s.Board.PieceAt(other.From).Type != moving.Type {
			continue
		}
		any = true
		if other.From.Col == m.From.Col {
			sameFile = true
		}
		if other.From.Row == m.From.Row {
			sameRank = true
		}
	}
	if !any {
		return ""
	}
	file := string(byte('a' + m.From.Col))
	rank := string(byte('8' - m.From.Row))
	switch {
	case !sameFile:
		return file
	case !sameRank:
		return rank
	default:
		return file + rank
	}
}
