package entity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDrawn      Status = "drawn"
)

var (
	ErrInvalidPlayer     = errors.New("invalid player index")
	ErrUnknownGameStatus = errors.New("unknown game status")
)

// Game is a single round between two players sharing one board.
type Game struct {
	ID      string
	Board   *Board
	Players [2]*Player
	Current int
	Status  Status
	Winner  *Player
	Turns   int
}

// NewGame starts a round with Players[first] to move.
func NewGame(players [2]*Player, first int) (*Game, error) {
	if first != 0 && first != 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPlayer, first)
	}

	return &Game{
		ID:      uuid.NewString(),
		Board:   NewBoard(),
		Players: players,
		Current: first,
		Status:  StatusInProgress,
	}, nil
}

// Restart clears the board for a new round with the same players and marks.
func (that *Game) Restart(first int) error {
	if first != 0 && first != 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, first)
	}

	that.ID = uuid.NewString()
	that.Board.Reset()
	that.Current = first
	that.Status = StatusInProgress
	that.Winner = nil
	that.Turns = 0

	return nil
}

func (that *Game) CurrentPlayer() *Player {
	return that.Players[that.Current]
}

// WinnerIndex is the winner's position in Players, or -1 when nobody has won.
func (that *Game) WinnerIndex() int {
	for i, player := range that.Players {
		if that.Winner != nil && player == that.Winner {
			return i
		}
	}

	return -1
}

func (that *Game) Opponent() *Player {
	return that.Players[1-that.Current]
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDrawn
}

func (that *Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that *Game) ConfirmInProgress() error {
	switch that.Status {
	case StatusInProgress:
		return nil
	case StatusWon, StatusDrawn:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// ApplyMove places the current player's mark and advances the round.
func (that *Game) ApplyMove(cell int) error {
	if err := that.ConfirmInProgress(); err != nil {
		return err
	}

	mover := that.CurrentPlayer()
	if err := that.Board.PlaceMark(cell, mover.Mark); err != nil {
		return fmt.Errorf("%s failed to make turn: %w", mover.Name, err)
	}

	that.Turns++
	that.UpdateGameState(mover)

	return nil
}

// UpdateGameState moves the round to won or drawn, or hands the turn over.
func (that *Game) UpdateGameState(mover *Player) {
	switch {
	case that.Board.HasLine(mover.Mark):
		that.Status = StatusWon
		that.Winner = mover
	case that.Board.IsFull():
		that.Status = StatusDrawn
	default:
		that.Current = 1 - that.Current
	}
}
