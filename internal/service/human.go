package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

type HumanService interface {
	ChooseMove(ctx context.Context, empty []int) (int, error)
}

// humanConsole is the interactive side of a human turn. Field numbers are 1-based.
type humanConsole interface {
	AskForMove(fields []int)
	ReadField(ctx context.Context) (string, error)
	RejectField()
}

type humanService struct {
	console humanConsole
}

func NewHumanService(console humanConsole) HumanService {
	return &humanService{
		console: console,
	}
}

// ChooseMove asks for a field number until it names an empty field and returns its 0-based index.
// Bad input is re-prompted without limit; only a closed input or a cancelled ctx ends the loop early.
func (that *humanService) ChooseMove(ctx context.Context, empty []int) (int, error) {
	if len(empty) == 0 {
		return 0, fmt.Errorf("%w: no empty fields to choose from", apperror.ErrPrecondition)
	}

	fields := make([]int, 0, len(empty))
	byNumber := make(map[string]int, len(empty))
	for _, index := range empty {
		fields = append(fields, index+1)
		byNumber[strconv.Itoa(index+1)] = index
	}

	that.console.AskForMove(fields)

	for {
		input, err := that.console.ReadField(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to read field number: %w", err)
		}

		if index, ok := byNumber[input]; ok {
			return index, nil
		}

		that.console.RejectField()
	}
}
