package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	FirstPlayerHuman = "human"
	FirstPlayerBot   = "bot"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	FirstPlayer string `yaml:"first-player" env:"FIRST_PLAYER" env-default:"human" validate:"oneof=human bot"`
	Seed        uint64 `yaml:"seed" env:"SEED" env-default:"0"`
	Human       Human  `yaml:"human"`
	Bot         Bot    `yaml:"bot"`
}

type Human struct {
	Name string `yaml:"name" env:"HUMAN_NAME" env-default:"Human" validate:"required"`
	Mark string `yaml:"mark" env:"HUMAN_MARK" env-default:"X" validate:"mark"`
}

type Bot struct {
	Name  string        `yaml:"name" env:"BOT_NAME" env-default:"Computer" validate:"required"`
	Mark  string        `yaml:"mark" env:"BOT_MARK" env-default:"O" validate:"mark"`
	Delay time.Duration `yaml:"delay" env:"BOT_DELAY" env-default:"1s" validate:"gte=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// a mark is a single symbol other than the empty cell
	if err := v.RegisterValidation("mark", func(fl validator.FieldLevel) bool {
		mark := fl.Field().String()
		return len([]rune(mark)) == 1 && entity.Mark(mark) != entity.MarkEmpty
	}); err != nil {
		panic(fmt.Errorf("unable to register mark validation: %w", err))
	}

	v.RegisterStructValidation(distinctPlayers, Config{})

	return v
}

// distinctPlayers rejects a bot sharing the human's mark or name; both are shown to the player
// and the score is printed per name.
func distinctPlayers(sl validator.StructLevel) {
	conf, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}

	if conf.Bot.Mark == conf.Human.Mark {
		sl.ReportError(conf.Bot.Mark, "Bot.Mark", "Mark", "necsfield", "Human.Mark")
	}

	if conf.Bot.Name == conf.Human.Name {
		sl.ReportError(conf.Bot.Name, "Bot.Name", "Name", "necsfield", "Human.Name")
	}
}

// MustLoad - load all configurations from the yml file, or from the environment when it does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if err := validate.Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// FirstPlayerIndex maps first-player onto the game's player order: human is 0, bot is 1.
func (that *Config) FirstPlayerIndex() int {
	if that.FirstPlayer == FirstPlayerBot {
		return 1
	}

	return 0
}
