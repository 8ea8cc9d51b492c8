package engine

import (
	gm "chess-game/chessmg"
)

// Score constants. The mate score is offset by the remaining depth so that,
// seen from the root, a shallower mate outscores a deeper one.
const (
	mateScore = 100000
	infinity  = 1000000
)

// Search is a depth-limited minimax with alpha-beta pruning. It returns
// the score of the position and the move achieving it (nil at leaves and
// when no legal move exists). The incumbent is only replaced on strict
// improvement, so among equal-scoring moves the first in ordering order wins.
func Search(s *gm.GameState, depth, alpha, beta int, maximizing bool) (int, *gm.Move) {
	// Finished games score by result, so a mate found inside the tree keeps
	// its depth-offset score instead of collapsing to a material count.
	if s.GameOver {
		switch s.Result {
		case gm.WhiteWins:
			return mateScore + depth, nil
		case gm.BlackWins:
			return -(mateScore + depth), nil
		}
		return Evaluate(s), nil
	}
	if depth == 0 {
		return Evaluate(s), nil
	}

	moves := s.LegalMoves()
	if len(moves) == 0 {
		if s.InCheck() {
			if maximizing {
				return -(mateScore + depth), nil
			}
			return mateScore + depth, nil
		}
		return 0, nil
	}
	orderMoves(s, moves)

	var best *gm.Move
	if maximizing {
		bestScore := -infinity
		for i := range moves {
			next, err := s.MakeMove(moves[i])
			if err != nil {
				// Cannot happen for generated moves; skip defensively.
				continue
			}
			score, _ := Search(next, depth-1, alpha, beta, false)
			if score > bestScore {
				bestScore = score
				best = &moves[i]
			}
			if bestScore > alpha {
				alpha = bestScore
			}
			if beta <= alpha {
				break
			}
		}
		return bestScore, best
	}

	bestScore := infinity
	for i := range moves {
		next, err := s.MakeMove(moves[i])
		if err != nil {
			continue
		}
		score, _ := Search(next, depth-1, alpha, beta, true)
		if score < bestScore {
			bestScore = score
			best = &moves[i]
		}
		if bestScore < beta {
			beta = bestScore
		}
		if beta <= alpha {
			break
		}
	}
	return bestScore, best
}

// BestMove runs the search to the given depth and returns the chosen move,
// or nil when the side to move has no legal move. The result is a pure
// function of (state, depth).
func BestMove(s *gm.GameState, depth int) *gm.Move {
	_, move := Search(s, depth, -infinity, infinity, s.Turn == gm.White)
	return move
}
