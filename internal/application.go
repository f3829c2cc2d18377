package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
)

// RunApp - runs the interactive game on stdin and stdout until the player stops.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run plays rounds over in and out until the replay prompt is declined or the input ends.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	term := console.New(in, out)

	human := entity.NewHumanPlayer(conf.Human.Name, entity.Mark(conf.Human.Mark))
	bot := entity.NewBotPlayer(conf.Bot.Name, entity.Mark(conf.Bot.Mark))
	first := conf.FirstPlayerIndex()

	game, err := entity.NewGame([2]*entity.Player{human, bot}, first)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	botService := service.NewBotService(logger, newRandom(conf.Seed))
	humanService := service.NewHumanService(term)
	gamePlayService := service.NewGamePlayService(logger, term, botService, humanService, conf.Bot.Delay)
	scoreService := service.NewScoreService(logger)

	log.Info("Starting game", "human", human.String(), "bot", bot.String(), "first", game.CurrentPlayer().Name)

	term.Welcome()

	for {
		if err = gamePlayService.PlayRound(ctx, game); err != nil {
			if isQuit(err) {
				log.Info("Input ended, leaving", "game_id", game.ID, "reason", err)
				return nil
			}

			return fmt.Errorf("round %s failed: %w", game.ID, err)
		}

		if err = scoreService.Record(game); err != nil {
			return fmt.Errorf("could not record round: %w", err)
		}
		term.ShowScore(game.Players, scoreService.Snapshot())

		var again bool
		again, err = term.AskPlayAgain(ctx)
		if err != nil && !isQuit(err) {
			return fmt.Errorf("could not read replay answer: %w", err)
		}

		if !again {
			term.Goodbye()
			return nil
		}

		// marks stay with their players; only the board and the opening player are reset
		if err = game.Restart(first); err != nil {
			return fmt.Errorf("could not restart game: %w", err)
		}
		term.AnnounceNewRound()
	}
}

func isQuit(err error) bool {
	return errors.Is(err, apperror.ErrInputClosed) || errors.Is(err, context.Canceled)
}

// newRandom seeds the bot's random source; seed 0 means a fresh seed per run.
func newRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewPCG(seed, seed))
}
