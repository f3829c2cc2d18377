package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Mark is the symbol stored in a board cell.
type Mark string

const (
	MarkEmpty Mark = "-"
	MarkX     Mark = "X"
	MarkO     Mark = "O"
)

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize
	Center    = 4
)

var ErrInvalidCell = errors.New("invalid cell index")

// lines are the winning index triples in scan order: rows, columns, diagonals.
var lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Lines returns a copy of the winning triples in scan order.
func Lines() [8][3]int {
	return lines
}

// Board is a 3x3 grid stored row-major, index = row*3 + col.
type Board struct {
	cells [CellCount]Mark
}

func NewBoard() *Board {
	board := &Board{}
	board.Reset()

	return board
}

// NewBoardFrom builds a board from a fixed set of cells, mainly for setting up positions.
func NewBoardFrom(cells [CellCount]Mark) *Board {
	return &Board{cells: cells}
}

func (that *Board) Reset() {
	for i := range that.cells {
		that.cells[i] = MarkEmpty
	}
}

func (that *Board) Cell(index int) Mark {
	if index < 0 || index >= CellCount {
		return MarkEmpty
	}

	return that.cells[index]
}

// Rows returns a copy of the grid for rendering.
func (that *Board) Rows() [BoardSize][BoardSize]Mark {
	var rows [BoardSize][BoardSize]Mark
	for i, cell := range that.cells {
		rows[i/BoardSize][i%BoardSize] = cell
	}

	return rows
}

// EmptyIndices returns the indices of all empty cells in ascending order.
func (that *Board) EmptyIndices() []int {
	indices := make([]int, 0, CellCount)
	for i, cell := range that.cells {
		if cell == MarkEmpty {
			indices = append(indices, i)
		}
	}

	return indices
}

// PlaceMark puts mark on an empty cell. An occupied cell is never overwritten.
func (that *Board) PlaceMark(index int, mark Mark) error {
	if index < 0 || index >= CellCount {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidMove, ErrInvalidCell, index)
	}

	if mark == MarkEmpty {
		return fmt.Errorf("%w: cannot place the empty mark on cell %d", apperror.ErrInvalidMove, index)
	}

	if that.cells[index] != MarkEmpty {
		return fmt.Errorf("%w: %w: cell %d holds %s", apperror.ErrInvalidMove, apperror.ErrCellOccupied, index, that.cells[index])
	}

	that.cells[index] = mark

	return nil
}

// HasLine reports whether mark fills any of the eight lines.
func (that *Board) HasLine(mark Mark) bool {
	if mark == MarkEmpty {
		return false
	}

	for _, line := range lines {
		if that.cells[line[0]] == mark && that.cells[line[1]] == mark && that.cells[line[2]] == mark {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	return len(that.EmptyIndices()) == 0
}

// MarkCount returns the number of non-empty cells.
func (that *Board) MarkCount() int {
	return CellCount - len(that.EmptyIndices())
}
