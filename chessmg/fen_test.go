package chessmg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gm "chess-game/chessmg"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		gm.FENStartPos,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"8/8/8/8/8/8/8/K6k b - - 42 100",
		"4k3/8/8/8/8/8/8/4K2R w K - 7 30",
	}
	for _, fen := range fens {
		s, err := gm.ParseFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, s.ToFEN())
	}
}

func TestNewGameMatchesStartPos(t *testing.T) {
	s := gm.NewGame()
	assert.Equal(t, gm.FENStartPos, s.ToFEN())
	assert.Equal(t, gm.White, s.Turn)
	assert.Equal(t, 1, s.FullmoveNumber)
}

func TestParseFENStartsFreshGame(t *testing.T) {
	// A position that is in fact stalemate still parses as a live game;
	// termination is only ever detected at a move transition.
	s, err := gm.ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.False(t, s.GameOver)
	assert.Equal(t, gm.InProgress, s.Result)
	assert.Empty(t, s.History)
	assert.Empty(t, s.Notations)
	assert.Empty(t, s.Captured[gm.White])
	assert.Empty(t, s.Captured[gm.Black])
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"not a fen",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",              // 7 ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",     // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KZkq - 0 1",     // bad castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",    // bad ep
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - clock 1", // bad halfmove
		"rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",    // 9 columns
	}
	for _, fen := range bad {
		s, err := gm.ParseFEN(fen)
		assert.Error(t, err, fen)
		assert.Nil(t, s, fen)
	}
}

func TestParseFENAggregatesFieldErrors(t *testing.T) {
	_, err := gm.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq z9 0 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "side to move")
	assert.Contains(t, err.Error(), "en passant")
}
