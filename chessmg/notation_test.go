package chessmg_test

import (
	"strings"
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gm "chess-game/chessmg"
)

func TestNotationAgreesWithReferenceLibrary(t *testing.T) {
	script := []string{
		"e2e4", "e7e5",
		"g1f3", "b8c6",
		"f1c4", "f8c5",
		"e1g1", "g8f6",
		"d2d3", "d7d6",
		"c1g5", "h7h6",
		"g5f6", "d8f6",
	}

	s := gm.NewGame()
	oracle := chess.NewGame(chess.UseNotation(chess.UCINotation{}))
	for _, uci := range script {
		pos := oracle.Position()
		refMove, err := chess.UCINotation{}.Decode(pos, uci)
		require.NoError(t, err, uci)
		want := chess.AlgebraicNotation{}.Encode(pos, refMove)
		require.NoError(t, oracle.Move(refMove), uci)

		s, err = applyCoordinateMove(t, s, uci)
		require.NoError(t, err, uci)
		got := s.Notations[len(s.Notations)-1]
		assert.Equal(t, want, got, "uci %s", uci)
	}
	assert.Equal(t, len(script), len(s.Notations))
}

func TestNotationFileDisambiguation(t *testing.T) {
	// Rooks on a1 and h1 can both reach d1: origin files differ.
	s, err := gm.ParseFEN("4k3/8/8/8/8/8/4K3/R6R w - - 0 1")
	require.NoError(t, err)
	next, err := applyCoordinateMove(t, s, "a1d1")
	require.NoError(t, err)
	assert.Equal(t, "Rad1", next.Notations[0])
}

func TestNotationRankDisambiguation(t *testing.T) {
	// Rooks on a1 and a5 can both reach a3: files match, ranks differ.
	s, err := gm.ParseFEN("4k3/8/8/R7/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)
	next, err := applyCoordinateMove(t, s, "a1a3")
	require.NoError(t, err)
	assert.Equal(t, "R1a3", next.Notations[0])
}

func TestNotationFullDisambiguation(t *testing.T) {
	// Three queens on d3, d5 and f5 all reach e4, so neither the file nor
	// the rank alone identifies the d5 queen.
	s, err := gm.ParseFEN("7k/8/8/3Q1Q2/8/3Q4/8/4K3 w - - 0 1")
	require.NoError(t, err)
	next, err := applyCoordinateMove(t, s, "d5e4")
	require.NoError(t, err)
	assert.Equal(t, "Qd5e4", next.Notations[0])
}

func TestNotationPawnCaptureAndEnPassant(t *testing.T) {
	s := gm.NewGame()
	for _, uci := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		var err error
		s, err = applyCoordinateMove(t, s, uci)
		require.NoError(t, err)
	}
	next, err := applyCoordinateMove(t, s, "e5d6")
	require.NoError(t, err)
	assert.Equal(t, "exd6", next.Notations[len(next.Notations)-1])
}

func TestNotationPromotionWithCapture(t *testing.T) {
	s, err := gm.ParseFEN("5r1k/4P3/8/8/8/8/8/K7 w - - 0 1")
	require.NoError(t, err)
	next, err := applyCoordinateMove(t, s, "e7f8q")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(next.Notations[0], "exf8=Q"))
}

func TestNotationCheckSuffix(t *testing.T) {
	s, err := gm.ParseFEN("4k3/8/8/8/8/8/8/4KR2 w - - 0 1")
	require.NoError(t, err)
	next, err := applyCoordinateMove(t, s, "f1f8")
	require.NoError(t, err)
	assert.Equal(t, "Rf8+", next.Notations[0])
}
