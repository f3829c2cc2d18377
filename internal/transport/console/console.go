package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Console is the terminal front end: it prints the board and prompts and reads answers line by line.
type Console struct {
	out io.Writer

	scanner *bufio.Scanner
	once    sync.Once
	lines   chan string
	readErr error
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		out:     out,
		scanner: bufio.NewScanner(in),
		lines:   make(chan string),
	}
}

// ReadLine returns the next trimmed input line. It gives up when ctx is done and
// reports apperror.ErrInputClosed once the input is exhausted.
func (that *Console) ReadLine(ctx context.Context) (string, error) {
	that.once.Do(func() {
		go that.scan()
	})

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("read aborted: %w", ctx.Err())
	case line, ok := <-that.lines:
		if !ok {
			if that.readErr != nil {
				return "", fmt.Errorf("%w: %w", apperror.ErrInputClosed, that.readErr)
			}
			return "", fmt.Errorf("%w: %w", apperror.ErrInputClosed, io.EOF)
		}
		return strings.TrimSpace(line), nil
	}
}

// scan feeds lines so ReadLine can select on ctx; it is the only reader of the input.
func (that *Console) scan() {
	defer close(that.lines)

	for that.scanner.Scan() {
		that.lines <- that.scanner.Text()
	}

	that.readErr = that.scanner.Err()
}

func (that *Console) Welcome() {
	that.println("Welcome to Tic Tac Toe!")
}

// ShowBoard prints three rows of three symbols with a blank line before and after.
func (that *Console) ShowBoard(board *entity.Board) {
	var builder strings.Builder

	builder.WriteString("\n")
	for _, row := range board.Rows() {
		builder.WriteString(fmt.Sprintf("%s %s %s\n", row[0], row[1], row[2]))
	}
	builder.WriteString("\n")

	that.print(builder.String())
}

func (that *Console) AskForMove(fields []int) {
	numbers := make([]string, 0, len(fields))
	for _, field := range slices.Sorted(slices.Values(fields)) {
		numbers = append(numbers, fmt.Sprintf("'%d'", field))
	}

	that.println("Where do you want to place your mark?")
	that.println(fmt.Sprintf("Empty fields: [%s]", strings.Join(numbers, ", ")))
}

func (that *Console) ReadField(ctx context.Context) (string, error) {
	that.print("Enter a field number: ")

	return that.ReadLine(ctx)
}

func (that *Console) RejectField() {
	that.println("Please enter the number of an empty field.\n")
}

func (that *Console) AnnounceMove(player *entity.Player, cell int) {
	that.println(fmt.Sprintf("Field %d was marked with %s.", cell+1, player.Mark))
}

func (that *Console) AnnounceTurn(player *entity.Player) {
	that.println(fmt.Sprintf("\nNow it's your turn, %s!", player.Name))
}

func (that *Console) AnnounceResult(game *entity.Game) {
	switch game.Status {
	case entity.StatusWon:
		that.println(fmt.Sprintf("\n%s won!", game.Winner.Name))
	case entity.StatusDrawn:
		that.println("\nIt's a draw!")
	case entity.StatusInProgress:
	}
}

// ShowScore prints wins in player order followed by draws.
func (that *Console) ShowScore(players [2]*entity.Player, score entity.Score) {
	parts := make([]string, 0, len(players)+1)
	for i, player := range players {
		parts = append(parts, fmt.Sprintf("%s %d", player.Name, score.Wins[i]))
	}
	parts = append(parts, fmt.Sprintf("draws %d", score.Draws))

	that.println(fmt.Sprintf("Score after %d round(s): %s", score.Rounds, strings.Join(parts, ", ")))
}

// AskPlayAgain is true only for a case-insensitive "y".
func (that *Console) AskPlayAgain(ctx context.Context) (bool, error) {
	that.print("Play again? (y/n) ")

	answer, err := that.ReadLine(ctx)
	if err != nil {
		return false, err
	}

	return strings.EqualFold(answer, "y"), nil
}

func (that *Console) AnnounceNewRound() {
	that.println("A new game is about to start.")
}

func (that *Console) Goodbye() {
	that.println("Thanks for playing!")
}

func (that *Console) print(s string) {
	_, _ = io.WriteString(that.out, s)
}

func (that *Console) println(s string) {
	that.print(s + "\n")
}
