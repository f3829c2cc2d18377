package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, first int) *Game {
	t.Helper()

	game, err := NewGame([2]*Player{
		NewHumanPlayer("Human", MarkX),
		NewBotPlayer("Computer", MarkO),
	}, first)
	require.NoError(t, err)

	return game
}

func playMoves(t *testing.T, game *Game, moves ...int) {
	t.Helper()

	for i, cell := range moves {
		require.NoError(t, game.ApplyMove(cell), "move %d on cell %d", i, cell)
	}
}

func TestNewGame(t *testing.T) {
	t.Run("Starts in progress with an empty board", func(t *testing.T) {
		// When: creating a new game with the bot moving first
		game := newTestGame(t, 1)

		// Then: the round is fresh
		assert.NotEmpty(t, game.ID)
		assert.Equal(t, StatusInProgress, game.Status)
		assert.Equal(t, 1, game.Current)
		assert.Equal(t, "Computer", game.CurrentPlayer().Name)
		assert.Equal(t, "Human", game.Opponent().Name)
		assert.Nil(t, game.Winner)
		assert.Equal(t, 0, game.Turns)
		assert.Len(t, game.Board.EmptyIndices(), CellCount)
	})

	t.Run("Rejects an unknown first player", func(t *testing.T) {
		_, err := NewGame([2]*Player{NewHumanPlayer("a", MarkX), NewBotPlayer("b", MarkO)}, 2)

		assert.ErrorIs(t, err, ErrInvalidPlayer)
	})
}

func TestGame_ApplyMove(t *testing.T) {
	t.Run("Places the mark and switches players", func(t *testing.T) {
		// Given: a new game where the human starts
		game := newTestGame(t, 0)

		// When: the human takes the center
		err := game.ApplyMove(4)

		// Then: the board holds X and the bot is next
		require.NoError(t, err)
		assert.Equal(t, MarkX, game.Board.Cell(4))
		assert.Equal(t, 1, game.Current)
		assert.Equal(t, 1, game.Turns)
		assert.Equal(t, StatusInProgress, game.Status)
	})

	t.Run("Occupied cell is an invalid move and leaves the turn", func(t *testing.T) {
		// Given: X on cell 0
		game := newTestGame(t, 0)
		playMoves(t, game, 0)

		// When: O tries the same cell
		err := game.ApplyMove(0)

		// Then: the error is surfaced and nothing changes
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, MarkX, game.Board.Cell(0))
		assert.Equal(t, 1, game.Current)
		assert.Equal(t, 1, game.Turns)
	})

	t.Run("Completing a line wins for the mover", func(t *testing.T) {
		// Given: X has 0 and 1, O has 3 and 4
		game := newTestGame(t, 0)
		playMoves(t, game, 0, 3, 1, 4)

		// When: X completes the top row
		err := game.ApplyMove(2)

		// Then: the human wins and the turn does not pass
		require.NoError(t, err)
		assert.Equal(t, StatusWon, game.Status)
		require.NotNil(t, game.Winner)
		assert.Equal(t, "Human", game.Winner.Name)
		assert.Equal(t, 0, game.Current)
		assert.True(t, game.IsFinished())
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: moves that end in
		//   X O X
		//   X O O
		//   O X X
		game := newTestGame(t, 0)
		playMoves(t, game, 0, 1, 2, 4, 3, 5, 7, 6)
		require.Equal(t, StatusInProgress, game.Status)

		// When: the last cell is filled
		err := game.ApplyMove(8)

		// Then: the round is drawn, not won
		require.NoError(t, err)
		assert.Equal(t, StatusDrawn, game.Status)
		assert.Nil(t, game.Winner)
		assert.Equal(t, CellCount, game.Turns)
	})

	t.Run("Last move that completes a line is a win, not a draw", func(t *testing.T) {
		// Given: a board where the ninth mark completes the bottom row for X
		game := newTestGame(t, 0)
		playMoves(t, game, 6, 0, 7, 1, 3, 4, 2, 5)

		// When: X fills cell 8
		err := game.ApplyMove(8)

		// Then: X wins on a full board
		require.NoError(t, err)
		assert.True(t, game.Board.IsFull())
		assert.Equal(t, StatusWon, game.Status)
	})

	t.Run("Moves after the end are rejected", func(t *testing.T) {
		game := newTestGame(t, 0)
		playMoves(t, game, 0, 3, 1, 4, 2)

		err := game.ApplyMove(5)

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, MarkEmpty, game.Board.Cell(5))
	})

	t.Run("Marks on the board always equal completed turns", func(t *testing.T) {
		game := newTestGame(t, 1)

		for _, cell := range []int{4, 0, 8, 2, 1} {
			require.NoError(t, game.ApplyMove(cell))
			assert.Equal(t, game.Turns, game.Board.MarkCount())
		}
	})
}

func TestGame_ConfirmInProgress(t *testing.T) {
	t.Run("Finished game", func(t *testing.T) {
		game := &Game{Status: StatusDrawn}

		assert.ErrorIs(t, game.ConfirmInProgress(), apperror.ErrGameFinished)
	})

	t.Run("Unknown status", func(t *testing.T) {
		game := &Game{Status: "unknown"}

		err := game.ConfirmInProgress()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownGameStatus)
	})
}

func TestGame_Restart(t *testing.T) {
	// Given: a finished game
	game := newTestGame(t, 0)
	playMoves(t, game, 0, 3, 1, 4, 2)
	oldID := game.ID
	players := game.Players

	// When: restarting with the human first
	err := game.Restart(0)

	// Then: the board and result are cleared, players and marks are kept
	require.NoError(t, err)
	assert.NotEqual(t, oldID, game.ID)
	assert.Equal(t, StatusInProgress, game.Status)
	assert.Nil(t, game.Winner)
	assert.Equal(t, 0, game.Turns)
	assert.Equal(t, 0, game.Current)
	assert.Equal(t, players, game.Players)
	assert.Equal(t, MarkX, game.Players[0].Mark)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, game.Board.EmptyIndices())

	assert.ErrorIs(t, game.Restart(-1), ErrInvalidPlayer)
}
