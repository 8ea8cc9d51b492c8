package engine

import (
	gm "chess-game/chessmg"
)

// Material values in centipawns, indexed by piece type.
var PieceValue = [7]int{
	0,     // no piece
	100,   // Pawn
	320,   // Knight
	330,   // Bishop
	500,   // Rook
	900,   // Queen
	20000, // King
}

// Piece-square tables, written from White's perspective with row 0 = rank 8.
// Black looks the table up with the row mirrored about the horizontal center.

var pawnTable = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable = [8][8]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

var bishopTable = [8][8]int{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
}

var rookTable = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{0, 0, 0, 5, 5, 0, 0, 0},
}

var queenTable = [8][8]int{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-10, 5, 5, 5, 5, 5, 0, -10},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
}

var kingTable = [8][8]int{
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{20, 30, 10, 0, 0, 10, 30, 20},
}

var pieceTables = [7]*[8][8]int{
	nil,
	&pawnTable,
	&knightTable,
	&bishopTable,
	&rookTable,
	&queenTable,
	&kingTable,
}

// pieceSquareBonus returns the positional bonus for the piece on (row, col)
// from its own perspective.
func pieceSquareBonus(p gm.Piece, row, col int) int {
	table := pieceTables[p.Type]
	if table == nil {
		return 0
	}
	if p.Color == gm.Black {
		row = 7 - row
	}
	return table[row][col]
}

// Evaluate scores the position from White's perspective: material plus the
// positional bonus for every piece, added for White and subtracted for Black.
func Evaluate(s *gm.GameState) int {
	score := 0
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			p := s.Board[r][f]
			if p.IsEmpty() {
				continue
			}
			v := PieceValue[p.Type] + pieceSquareBonus(p, r, f)
			if p.Color == gm.White {
				score += v
			} else {
				score -= v
			}
		}
	}
	return score
}
