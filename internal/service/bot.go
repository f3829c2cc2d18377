package service

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type BotService interface {
	ChooseMove(board *entity.Board, own, opponent entity.Mark) (int, error)
}

type botService struct {
	logger *slog.Logger
	random *rand.Rand
}

// NewBotService returns the one-ply bot. random drives the fallback choice and should be seeded by the caller.
func NewBotService(logger *slog.Logger, random *rand.Rand) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		random: random,
	}
}

// ChooseMove takes an immediate win, else blocks an immediate loss, else falls back to center or random.
func (that *botService) ChooseMove(board *entity.Board, own, opponent entity.Mark) (int, error) {
	log := that.logger.With("method", "ChooseMove", "mark", own)

	if cell, ok := SelectWinningOrBlockingMove(board, own, opponent); ok {
		log.Debug("win or block found", "cell", cell)
		return cell, nil
	}

	cell, err := SelectFallbackMove(board.EmptyIndices(), that.random)
	if err != nil {
		return 0, fmt.Errorf("bot failed to choose move: %w", err)
	}

	log.Debug("fallback move", "cell", cell)

	return cell, nil
}

// SelectWinningOrBlockingMove scans entity.Lines() in order for a line own can complete,
// then rescans for a line opponent could complete. ok is false when neither exists.
func SelectWinningOrBlockingMove(board *entity.Board, own, opponent entity.Mark) (int, bool) {
	if cell, ok := findCompletingCell(board, own); ok {
		return cell, true
	}

	return findCompletingCell(board, opponent)
}

// findCompletingCell returns the empty cell of the first line holding mark twice.
func findCompletingCell(board *entity.Board, mark entity.Mark) (int, bool) {
	for _, line := range entity.Lines() {
		marks, empty := 0, -1
		for _, cell := range line {
			switch board.Cell(cell) {
			case mark:
				marks++
			case entity.MarkEmpty:
				empty = cell
			}
		}

		if marks == 2 && empty >= 0 {
			return empty, true
		}
	}

	return 0, false
}

// SelectFallbackMove prefers the center, otherwise draws uniformly from empty.
func SelectFallbackMove(empty []int, random *rand.Rand) (int, error) {
	if len(empty) == 0 {
		return 0, fmt.Errorf("%w: no empty cells to choose from", apperror.ErrPrecondition)
	}

	for _, cell := range empty {
		if cell == entity.Center {
			return entity.Center, nil
		}
	}

	return empty[random.IntN(len(empty))], nil
}
