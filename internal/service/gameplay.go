package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type GamePlayService interface {
	PlayRound(ctx context.Context, game *entity.Game) error
}

// display renders the round as it is played.
type display interface {
	ShowBoard(board *entity.Board)
	AnnounceMove(player *entity.Player, cell int)
	AnnounceTurn(player *entity.Player)
	AnnounceResult(game *entity.Game)
}

type gamePlayService struct {
	logger *slog.Logger

	display      display
	botService   BotService
	humanService HumanService

	botDelay time.Duration
}

func NewGamePlayService(logger *slog.Logger, display display, botService BotService, humanService HumanService, botDelay time.Duration) GamePlayService {
	return &gamePlayService{
		logger:       logger.With("component", "gameplay"),
		display:      display,
		botService:   botService,
		humanService: humanService,
		botDelay:     botDelay,
	}
}

// PlayRound alternates turns until the game is won or drawn. A rejected move is returned, never skipped.
func (that *gamePlayService) PlayRound(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "PlayRound", "game_id", game.ID)

	if err := game.ConfirmInProgress(); err != nil {
		return fmt.Errorf("cannot play round: %w", err)
	}

	log.Info("round started", "first", game.CurrentPlayer().Name)

	for game.IsInProgress() {
		that.display.ShowBoard(game.Board)

		player := game.CurrentPlayer()

		cell, err := that.chooseMove(ctx, game)
		if err != nil {
			return fmt.Errorf("failed to choose move for %s: %w", player.Name, err)
		}

		if err = game.ApplyMove(cell); err != nil {
			log.Error("move rejected", "player", player.Name, "cell", cell, "error", err)
			return fmt.Errorf("failed to apply move: %w", err)
		}

		log.Debug("move applied", "player", player.Name, "cell", cell, "turn", game.Turns)
		that.display.AnnounceMove(player, cell)

		if game.IsInProgress() {
			that.display.AnnounceTurn(game.CurrentPlayer())
		}
	}

	that.display.AnnounceResult(game)
	that.display.ShowBoard(game.Board)

	log.Info("round finished", "status", game.Status, "turns", game.Turns)

	return nil
}

func (that *gamePlayService) chooseMove(ctx context.Context, game *entity.Game) (int, error) {
	player := game.CurrentPlayer()

	if !player.IsBot() {
		return that.humanService.ChooseMove(ctx, game.Board.EmptyIndices())
	}

	if err := pause(ctx, that.botDelay); err != nil {
		return 0, err
	}

	return that.botService.ChooseMove(game.Board, player.Mark, game.Opponent().Mark)
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
