package suite

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"os"
	"testing"
	"time"
)

const (
	maxWaitDuration = 10 * time.Second

	// Seed fixes the random source handed to tests.
	Seed uint64 = 42
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Random *rand.Rand
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Random: NewRandom(Seed),
	}
}

// NewRandom returns a deterministic source for seed.
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
