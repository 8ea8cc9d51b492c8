package chessmg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gm "chess-game/chessmg"
)

func TestBackRankCheckmate(t *testing.T) {
	s, err := gm.ParseFEN("6k1/5ppp/8/8/8/8/1Q6/K7 w - - 0 1")
	require.NoError(t, err)

	next, err := s.MakeMove(gm.Move{
		From: gm.Square{Row: 6, Col: 1},
		To:   gm.Square{Row: 0, Col: 1},
	})
	require.NoError(t, err)
	assert.True(t, next.GameOver)
	assert.Equal(t, gm.WhiteWins, next.Result)
	require.NotEmpty(t, next.Notations)
	assert.Equal(t, "Qb8#", next.Notations[len(next.Notations)-1])
	assert.Empty(t, next.LegalMoves())
}

func TestStalemateIsDrawNotWin(t *testing.T) {
	s, err := gm.ParseFEN("7k/8/6K1/8/8/5Q2/8/8 w - - 0 1")
	require.NoError(t, err)

	// Qf7 boxes the black king in without giving check.
	next, err := applyCoordinateMove(t, s, "f3f7")
	require.NoError(t, err)
	assert.False(t, next.InCheck())
	assert.Empty(t, next.LegalMoves())
	assert.True(t, next.GameOver)
	assert.Equal(t, gm.Draw, next.Result)
	assert.NotContains(t, next.Notations[0], "+")
}

func TestInsufficientMaterialKingVsKingAndMinor(t *testing.T) {
	// Bxa7 leaves king + bishop against bare king.
	s, err := gm.ParseFEN("k7/b7/1B6/8/8/8/8/K7 w - - 0 1")
	require.NoError(t, err)
	next, err := applyCoordinateMove(t, s, "b6a7")
	require.NoError(t, err)
	assert.True(t, next.GameOver)
	assert.Equal(t, gm.Draw, next.Result)
}

func TestInsufficientMaterialSameColorBishops(t *testing.T) {
	s, err := gm.ParseFEN("k7/b1b5/1B6/8/8/8/8/K7 w - - 0 1")
	require.NoError(t, err)

	// Bxc7: both surviving bishops stand on dark squares -> dead draw.
	same, err := applyCoordinateMove(t, s, "b6c7")
	require.NoError(t, err)
	assert.True(t, same.GameOver)
	assert.Equal(t, gm.Draw, same.Result)
}

func TestOppositeColorBishopsAreNotInsufficientMaterial(t *testing.T) {
	// After Bxa7 the survivors sit on a7 (dark) and b7 (light).
	s, err := gm.ParseFEN("k7/bb6/1B6/8/8/8/8/K7 w - - 0 1")
	require.NoError(t, err)
	next, err := applyCoordinateMove(t, s, "b6a7")
	require.NoError(t, err)
	assert.False(t, next.GameOver)
	assert.Equal(t, gm.InProgress, next.Result)
}

func TestKnightPairIsNotInsufficientMaterial(t *testing.T) {
	s, err := gm.ParseFEN("k6n/8/8/8/8/8/8/K5N1 w - - 0 1")
	require.NoError(t, err)
	next, err := applyCoordinateMove(t, s, "g1f3")
	require.NoError(t, err)
	assert.False(t, next.GameOver)
}

func TestFiftyMoveRuleTriggersExactlyAtHundred(t *testing.T) {
	s, err := gm.ParseFEN("k7/8/8/8/8/8/8/KR6 w - - 98 70")
	require.NoError(t, err)

	// Clock 98 -> 99: still live.
	s, err = applyCoordinateMove(t, s, "b1b2")
	require.NoError(t, err)
	assert.Equal(t, 99, s.HalfmoveClock)
	assert.False(t, s.GameOver)

	// Clock 99 -> 100: drawn on the spot.
	s, err = applyCoordinateMove(t, s, "a8a7")
	require.NoError(t, err)
	assert.Equal(t, 100, s.HalfmoveClock)
	assert.True(t, s.GameOver)
	assert.Equal(t, gm.Draw, s.Result)
}

func TestPawnMoveResetsFiftyMoveCount(t *testing.T) {
	s, err := gm.ParseFEN("k7/p7/8/8/8/8/8/KR6 b - - 99 70")
	require.NoError(t, err)
	s, err = applyCoordinateMove(t, s, "a7a6")
	require.NoError(t, err)
	assert.Equal(t, 0, s.HalfmoveClock)
	assert.False(t, s.GameOver)
}

func TestTerminalStateIsNeverReverted(t *testing.T) {
	s, err := gm.ParseFEN("6k1/5ppp/8/8/8/8/1Q6/K7 w - - 0 1")
	require.NoError(t, err)
	next, err := applyCoordinateMove(t, s, "b2b8")
	require.NoError(t, err)
	require.True(t, next.GameOver)
	assert.Empty(t, next.LegalMoves())
}
