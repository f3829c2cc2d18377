package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Score tallies finished rounds for the lifetime of the process.
// Wins is indexed like Game.Players.
type Score struct {
	Rounds int
	Draws  int
	Wins   [2]int
}

func NewScore() *Score {
	return &Score{}
}

func (that *Score) Record(game *Game) error {
	switch game.Status {
	case StatusWon:
		winner := game.WinnerIndex()
		if winner < 0 {
			return fmt.Errorf("%w: round %s has no winner", apperror.ErrPrecondition, game.ID)
		}
		that.Wins[winner]++
	case StatusDrawn:
		that.Draws++
	default:
		return fmt.Errorf("%w: round %s is %s", apperror.ErrPrecondition, game.ID, game.Status)
	}

	that.Rounds++

	return nil
}
