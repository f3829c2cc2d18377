package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type ScoreService interface {
	Record(game *entity.Game) error
	Snapshot() entity.Score
}

type scoreService struct {
	logger *slog.Logger
	score  *entity.Score
}

func NewScoreService(logger *slog.Logger) ScoreService {
	return &scoreService{
		logger: logger.With("component", "score"),
		score:  entity.NewScore(),
	}
}

func (that *scoreService) Record(game *entity.Game) error {
	if err := that.score.Record(game); err != nil {
		return fmt.Errorf("failed to record round: %w", err)
	}

	that.logger.Info("round recorded", "game_id", game.ID, "status", game.Status, "rounds", that.score.Rounds)

	return nil
}

// Snapshot returns a copy that is safe to hand out.
func (that *scoreService) Snapshot() entity.Score {
	return *that.score
}
