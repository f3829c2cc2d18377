package apperror

import "errors"

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameFinished = errors.New("game is already finished")
	ErrPrecondition = errors.New("precondition violated")
	ErrInputClosed  = errors.New("input closed")
)
