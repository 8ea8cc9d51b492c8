package engine

import (
	"golang.org/x/exp/slices"

	gm "chess-game/chessmg"
)

// scoreMove rates a move for ordering purposes only: captures by the value
// of the victim minus a tenth of the attacker, promotions by the promoted
// piece's value, quiet moves zero.
func scoreMove(s *gm.GameState, m gm.Move) int {
	score := 0
	victim := s.Board.PieceAt(m.To)
	if m.EnPassant {
		victim = s.Board.PieceAt(gm.Square{Row: m.From.Row, Col: m.To.Col})
	}
	if !victim.IsEmpty() {
		mover := s.Board.PieceAt(m.From)
		score += PieceValue[victim.Type] - PieceValue[mover.Type]/10
	}
	if m.Promotion != gm.NoPieceType {
		score += PieceValue[m.Promotion]
	}
	return score
}

// orderMoves sorts moves by descending heuristic score. The sort is stable
// so equally scored moves keep their generation order, which in turn fixes
// which of several equal-scoring moves the search settles on.
func orderMoves(s *gm.GameState, moves []gm.Move) {
	slices.SortStableFunc(moves, func(a, b gm.Move) bool {
		return scoreMove(s, a) > scoreMove(s, b)
	})
}
