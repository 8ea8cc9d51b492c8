package chessmg

// promotionKinds is the expansion order for pawn moves reaching the last rank.
var promotionKinds = [4]PieceType{Queen, Rook, Bishop, Knight}

// LegalMoves generates every legal move for the side to move.
func (s *GameState) LegalMoves() []Move { return s.LegalMovesFor(s.Turn) }

// LegalMovesFor generates every legal move for the given color: pseudo-legal
// shape first, then a king-safety filter on a scratch board.
func (s *GameState) LegalMovesFor(c Color) []Move {
	pseudo := s.PseudoLegalMoves(c)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if s.isLegal(m, c) {
			legal = append(legal, m)
		}
	}
	return legal
}

// isLegal reports whether the pseudo-legal move leaves c's own king safe.
// Castling additionally requires the king not to be in check now and the
// squares it crosses to be unattacked on the pre-move layout.
func (s *GameState) isLegal(m Move, c Color) bool {
	if m.Castle != CastleNone {
		if s.Board.InCheck(c) {
			return false
		}
		transit := Square{Row: m.From.Row, Col: (m.From.Col + m.To.Col) / 2}
		if s.Board.IsAttacked(transit, c.Opponent()) {
			return false
		}
		if s.Board.IsAttacked(m.To, c.Opponent()) {
			return false
		}
	}
	scratch := s.Board
	applyToBoard(&scratch, m)
	return !scratch.InCheck(c)
}

// PseudoLegalMoves generates moves that obey piece movement shape but may
// leave the mover's own king attacked.
func (s *GameState) PseudoLegalMoves(c Color) []Move {
	moves := make([]Move, 0, 48)
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			p := s.Board[r][f]
			if p.IsEmpty() || p.Color != c {
				continue
			}
			from := Square{Row: r, Col: f}
			switch p.Type {
			case Pawn:
				moves = s.pawnMoves(moves, from, c)
			case Knight:
				moves = s.offsetMoves(moves, from, c, knightOffsets)
			case Bishop:
				moves = s.slidingMoves(moves, from, c, bishopDirs[:])
			case Rook:
				moves = s.slidingMoves(moves, from, c, rookDirs[:])
			case Queen:
				moves = s.slidingMoves(moves, from, c, bishopDirs[:])
				moves = s.slidingMoves(moves, from, c, rookDirs[:])
			case King:
				moves = s.offsetMoves(moves, from, c, kingOffsets)
				moves = s.castlingMoves(moves, c)
			}
		}
	}
	return moves
}

// pawnMoves appends pushes, captures, en-passant and promotion expansions.
func (s *GameState) pawnMoves(moves []Move, from Square, c Color) []Move {
	dir := pawnDir(c)
	startRow := 6
	if c == Black {
		startRow = 1
	}

	one := Square{Row: from.Row + dir, Col: from.Col}
	if one.InBounds() && s.Board.PieceAt(one).IsEmpty() {
		moves = appendPawnMove(moves, from, one, c, false)
		two := Square{Row: from.Row + 2*dir, Col: from.Col}
		if from.Row == startRow && s.Board.PieceAt(two).IsEmpty() {
			moves = append(moves, Move{From: from, To: two})
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to := Square{Row: from.Row + dir, Col: from.Col + dc}
		if !to.InBounds() {
			continue
		}
		target := s.Board.PieceAt(to)
		if !target.IsEmpty() && target.Color != c {
			moves = appendPawnMove(moves, from, to, c, false)
		} else if to == s.EnPassant {
			moves = appendPawnMove(moves, from, to, c, true)
		}
	}
	return moves
}

// appendPawnMove expands a pawn move landing on the farthest rank into the
// four promotion choices.
func appendPawnMove(moves []Move, from, to Square, c Color, enPassant bool) []Move {
	lastRow := 0
	if c == Black {
		lastRow = 7
	}
	if to.Row != lastRow {
		return append(moves, Move{From: from, To: to, EnPassant: enPassant})
	}
	for _, kind := range promotionKinds {
		moves = append(moves, Move{From: from, To: to, Promotion: kind})
	}
	return moves
}

// offsetMoves appends fixed-offset moves (knight and king) landing on empty
// or opponent-occupied squares.
func (s *GameState) offsetMoves(moves []Move, from Square, c Color, offsets [8][2]int) []Move {
	for _, off := range offsets {
		to := Square{Row: from.Row + off[0], Col: from.Col + off[1]}
		if !to.InBounds() {
			continue
		}
		if p := s.Board.PieceAt(to); p.IsEmpty() || p.Color != c {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// slidingMoves appends ray moves, stopping at the board edge, before an own
// piece, or on the first opponent piece.
func (s *GameState) slidingMoves(moves []Move, from Square, c Color, dirs [][2]int) []Move {
	for _, dir := range dirs {
		to := Square{Row: from.Row + dir[0], Col: from.Col + dir[1]}
		for to.InBounds() {
			p := s.Board.PieceAt(to)
			if p.IsEmpty() {
				moves = append(moves, Move{From: from, To: to})
			} else {
				if p.Color != c {
					moves = append(moves, Move{From: from, To: to})
				}
				break
			}
			to = Square{Row: to.Row + dir[0], Col: to.Col + dir[1]}
		}
	}
	return moves
}

// castlingMoves appends castle candidates: the matching right must be set,
// the squares between king and rook empty, and king and rook still on their
// home squares. Attack constraints are checked later by isLegal.
func (s *GameState) castlingMoves(moves []Move, c Color) []Move {
	row := homeRow(c)
	kingFrom := Square{Row: row, Col: 4}
	if p := s.Board.PieceAt(kingFrom); p.Type != King || p.Color != c {
		return moves
	}

	kingRight, queenRight := CastlingWhiteK, CastlingWhiteQ
	if c == Black {
		kingRight, queenRight = CastlingBlackK, CastlingBlackQ
	}

	if s.Castling&kingRight != 0 &&
		s.Board[row][5].IsEmpty() && s.Board[row][6].IsEmpty() {
		if rook := s.Board[row][7]; rook.Type == Rook && rook.Color == c {
			moves = append(moves, Move{From: kingFrom, To: Square{Row: row, Col: 6}, Castle: CastleKingSide})
		}
	}
	if s.Castling&queenRight != 0 &&
		s.Board[row][1].IsEmpty() && s.Board[row][2].IsEmpty() && s.Board[row][3].IsEmpty() {
		if rook := s.Board[row][0]; rook.Type == Rook && rook.Color == c {
			moves = append(moves, Move{From: kingFrom, To: Square{Row: row, Col: 2}, Castle: CastleQueenSide})
		}
	}
	return moves
}

// Perft counts leaf nodes of the legal move tree to the given depth.
func Perft(s *GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := s.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next, err := s.MakeMove(m)
		if err != nil {
			continue
		}
		nodes += Perft(next, depth-1)
	}
	return nodes
}

// PerftDivide returns per-root-move node counts at the given depth.
func PerftDivide(s *GameState, depth int) map[Move]uint64 {
	div := make(map[Move]uint64)
	for _, m := range s.LegalMoves() {
		next, err := s.MakeMove(m)
		if err != nil {
			continue
		}
		div[m] = Perft(next, depth-1)
	}
	return div
}
