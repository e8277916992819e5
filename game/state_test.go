package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyMove(t *testing.T) {
	t.Run("simple step relocates the piece", func(t *testing.T) {
		g := NewGameState()
		move := Move{Path: []Coord{{6, 1}, {5, 0}}}

		_, reward, done, err := g.ApplyMove(move)

		require.NoError(t, err, "an opening step should be legal")
		require.Equal(t, Empty, g.Board[6][1], "the origin should be vacated")
		require.Equal(t, Red, g.Board[5][0], "the piece should occupy the destination")
		require.Equal(t, Black, g.Turn, "the turn should flip to black")
		require.Equal(t, 0.0, reward, "an ordinary move should score nothing")
		require.False(t, done, "the game should continue")
		require.Equal(t, 1, g.NoCaptures, "the no-capture counter should increment")
	})

	t.Run("capture removes the jumped pieces and resets the counter", func(t *testing.T) {
		g := NewGameState()
		g.Board = Board{}
		g.Board[4][1] = Red
		g.Board[3][2] = Black
		g.Board[0][5] = Black // Keeps black alive after the capture
		g.NoCaptures = 17

		moves := g.LegalMoves()
		require.Len(t, moves, 1, "the capture should be mandatory")

		_, _, done, err := g.ApplyMove(moves[0])

		require.NoError(t, err)
		require.Equal(t, Empty, g.Board[3][2], "the jumped man should be removed")
		require.Equal(t, Red, g.Board[2][3], "the capturing man should land beyond")
		require.False(t, done, "the game should continue while black has pieces")
		require.Equal(t, 0, g.NoCaptures, "a capture should reset the counter")
	})

	t.Run("double jump promotes on the back rank", func(t *testing.T) {
		g := NewGameState()
		g.Board = Board{}
		g.Board[4][1] = Red
		g.Board[3][2] = Black
		g.Board[1][2] = Black

		moves := g.LegalMoves()
		require.Len(t, moves, 1, "the double jump should be the only legal move")
		require.Len(t, moves[0].Path, 3, "the chain should have a 3-cell path")
		require.Len(t, moves[0].Captures, 2, "the chain should capture both men")

		_, reward, done, err := g.ApplyMove(moves[0])

		require.NoError(t, err)
		require.Equal(t, RedKing, g.Board[0][1], "landing on row 0 should promote")
		require.Equal(t, Empty, g.Board[3][2], "the first captured man should be removed")
		require.Equal(t, Empty, g.Board[1][2], "the second captured man should be removed")
		require.True(t, done, "capturing black's last pieces should end the game")
		require.Equal(t, Red, g.Winner, "red should win by exhaustion")
		require.Equal(t, 1.0, reward, "ending the game with a win should score 1.0")
	})

	t.Run("applying a move to a finished game fails", func(t *testing.T) {
		g := NewGameState()
		g.Done = true

		_, _, _, err := g.ApplyMove(Move{Path: []Coord{{6, 1}, {5, 0}}})

		require.ErrorIs(t, err, ErrGameOver, "a finished game should reject moves")
	})

	t.Run("applying an illegal move fails without corrupting the board", func(t *testing.T) {
		g := NewGameState()
		before := g.Board

		_, _, _, err := g.ApplyMove(Move{Path: []Coord{{6, 1}, {4, 1}}})

		require.ErrorIs(t, err, ErrIllegalMove, "a move outside the legal set should be rejected")
		require.Equal(t, before, g.Board, "a rejected move should leave the board untouched")
		require.Equal(t, Red, g.Turn, "a rejected move should not flip the turn")
	})
}

func TestTermination(t *testing.T) {
	t.Run("opponent with no moves loses", func(t *testing.T) {
		g := NewGameState()
		g.Board = Board{}
		g.Board[5][0] = Red
		g.Board[9][0] = Black // A black man on the last row has no forward moves

		_, reward, done, err := g.ApplyMove(Move{Path: []Coord{{5, 0}, {4, 1}}})

		require.NoError(t, err)
		require.True(t, done, "a moveless opponent should end the game")
		require.Equal(t, Red, g.Winner, "the mover should win")
		require.Equal(t, 1.0, reward, "winning should score 1.0")
	})

	t.Run("80 half-moves without a capture is a draw", func(t *testing.T) {
		g := NewGameState()
		g.NoCaptures = DrawMoveLimit - 1

		_, reward, done, err := g.ApplyMove(g.LegalMoves()[0])

		require.NoError(t, err)
		require.True(t, done, "the draw rule should end the game")
		require.Equal(t, int8(0), g.Winner, "a draw has no winner")
		require.Equal(t, 0.0, reward, "a draw should score nothing")
	})

	t.Run("counter below the limit keeps the game live", func(t *testing.T) {
		g := NewGameState()
		g.NoCaptures = DrawMoveLimit - 2

		_, _, done, err := g.ApplyMove(g.LegalMoves()[0])

		require.NoError(t, err)
		require.False(t, done, "the game should continue below the draw limit")
	})
}

func TestClone(t *testing.T) {
	t.Run("clone is fully independent", func(t *testing.T) {
		g := NewGameState()
		clone := g.Clone()

		_, _, _, err := clone.ApplyMove(clone.LegalMoves()[0])
		require.NoError(t, err)

		require.Equal(t, NewBoard(), g.Board, "the original board should be untouched")
		require.Equal(t, Red, g.Turn, "the original turn should be untouched")
		require.False(t, g.Done, "the original done flag should be untouched")
		require.Equal(t, Black, clone.Turn, "the clone should have advanced")
	})
}

func TestResult(t *testing.T) {
	t.Run("undecided game scores zero", func(t *testing.T) {
		g := NewGameState()
		require.Equal(t, 0.0, g.Result(Red), "a live game has no result")
		require.Equal(t, 0.0, g.Result(Black), "a live game has no result")
	})

	t.Run("draw scores zero for both sides", func(t *testing.T) {
		g := NewGameState()
		g.Done = true
		g.Winner = 0
		require.Equal(t, 0.0, g.Result(Red), "a draw scores zero")
		require.Equal(t, 0.0, g.Result(Black), "a draw scores zero")
	})

	t.Run("win and loss are symmetric", func(t *testing.T) {
		g := NewGameState()
		g.Done = true
		g.Winner = Black
		require.Equal(t, 1.0, g.Result(Black), "the winner scores +1")
		require.Equal(t, -1.0, g.Result(Red), "the loser scores -1")
	})
}

func TestReset(t *testing.T) {
	g := NewGameState()
	_, _, _, err := g.ApplyMove(g.LegalMoves()[0])
	require.NoError(t, err)

	obs := g.Reset()

	require.Equal(t, NewBoard(), g.Board, "reset should restore the starting layout")
	require.Equal(t, Red, g.Turn, "reset should restore red to move")
	require.False(t, g.Done, "reset should clear the done flag")
	require.Equal(t, 0, g.NoCaptures, "reset should clear the no-capture counter")
	require.Equal(t, g.Observation(), obs, "reset should return the fresh observation")
}
