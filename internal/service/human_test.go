package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockHumanConsole struct {
	mock.Mock
}

func (m *mockHumanConsole) AskForMove(fields []int) {
	m.Called(fields)
}

func (m *mockHumanConsole) ReadField(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockHumanConsole) RejectField() {
	m.Called()
}

func TestHumanService_ChooseMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Converts the field number to an index", func(t *testing.T) {
		// Given: a console answering with field 5
		console := &mockHumanConsole{}
		console.On("AskForMove", []int{1, 5, 9}).Return().Once()
		console.On("ReadField", mock.Anything).Return("5", nil).Once()
		humanService := NewHumanService(console)

		// When: the human chooses among cells 0, 4 and 8
		cell, err := humanService.ChooseMove(ctx, []int{0, 4, 8})

		// Then: index 4 is returned without any rejection
		require.NoError(t, err)
		assert.Equal(t, 4, cell)
		console.AssertExpectations(t)
		console.AssertNotCalled(t, "RejectField")
	})

	t.Run("Re-prompts until an empty field is named", func(t *testing.T) {
		// Given: garbage, an out of range number, an occupied field, then a valid one
		console := &mockHumanConsole{}
		console.On("AskForMove", []int{1, 3}).Return().Once()
		console.On("ReadField", mock.Anything).Return("abc", nil).Once()
		console.On("ReadField", mock.Anything).Return("10", nil).Once()
		console.On("ReadField", mock.Anything).Return("2", nil).Once()
		console.On("ReadField", mock.Anything).Return("", nil).Once()
		console.On("ReadField", mock.Anything).Return("3", nil).Once()
		console.On("RejectField").Return().Times(4)
		humanService := NewHumanService(console)

		// When: the human chooses among cells 0 and 2
		cell, err := humanService.ChooseMove(ctx, []int{0, 2})

		// Then: every bad answer is rejected and the valid one wins
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
		console.AssertExpectations(t)
	})

	t.Run("Field one maps to index zero", func(t *testing.T) {
		console := &mockHumanConsole{}
		console.On("AskForMove", []int{1}).Return().Once()
		console.On("ReadField", mock.Anything).Return("1", nil).Once()
		humanService := NewHumanService(console)

		cell, err := humanService.ChooseMove(ctx, []int{0})

		require.NoError(t, err)
		assert.Equal(t, 0, cell)
	})

	t.Run("Closed input ends the loop", func(t *testing.T) {
		console := &mockHumanConsole{}
		console.On("AskForMove", mock.Anything).Return().Once()
		console.On("ReadField", mock.Anything).Return("", fmt.Errorf("stdin: %w", apperror.ErrInputClosed)).Once()
		humanService := NewHumanService(console)

		_, err := humanService.ChooseMove(ctx, []int{0, 1})

		assert.ErrorIs(t, err, apperror.ErrInputClosed)
	})

	t.Run("No empty fields violates the precondition", func(t *testing.T) {
		console := &mockHumanConsole{}
		humanService := NewHumanService(console)

		_, err := humanService.ChooseMove(ctx, nil)

		assert.ErrorIs(t, err, apperror.ErrPrecondition)
		console.AssertNotCalled(t, "AskForMove", mock.Anything)
	})
}
