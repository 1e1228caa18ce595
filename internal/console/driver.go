package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	promptChoice = "Enter 1 for player1 and 2 for player 2 to make a move  "
	promptMove   = "Enter move "

	msgInvalidChoice = "Invalid player choice !"
	msgInvalidFormat = "Invalid move, expected: <row> <col>"
	msgTryAgain      = "Try again"
	msgGameOver      = "Game Over !"
)

var ErrInputClosed = errors.New("input closed")

type gameManager interface {
	MakeTurn(ctx context.Context, slot, row, col int) (entity.GameStatus, error)
	Status() entity.GameStatus
	Result() string
	Game() *entity.Game
}

type boardRenderer interface {
	Render(board *entity.Board) error
}

type line struct {
	text string
	err  error
}

// Driver reads turns from the input, hands them to the game manager and prints the board.
type Driver struct {
	logger   *slog.Logger
	manager  gameManager
	renderer boardRenderer

	in  io.Reader
	out io.Writer
}

func NewDriver(logger *slog.Logger, manager gameManager, renderer boardRenderer, in io.Reader, out io.Writer) *Driver {
	return &Driver{
		logger:   logger.With("component", "console"),
		manager:  manager,
		renderer: renderer,
		in:       in,
		out:      out,
	}
}

// Run - plays until the game reaches a terminal status, the input ends or ctx is cancelled.
func (that *Driver) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := that.readLines(ctx)

	for that.manager.Status() == entity.StatusNotOver {
		if err := that.playTurn(ctx, lines); err != nil {
			return err
		}
	}

	if err := that.printf("%s\n%s\n", msgGameOver, that.manager.Result()); err != nil {
		return err
	}

	return nil
}

func (that *Driver) playTurn(ctx context.Context, lines <-chan line) error {
	log := that.logger.With("method", "playTurn")

	if err := that.printf("%s", promptChoice); err != nil {
		return err
	}

	choice, err := that.readLine(ctx, lines)
	if err != nil {
		return err
	}

	if err = that.printf("%s", promptMove); err != nil {
		return err
	}

	// both lines are consumed before the choice is judged so a rejected turn never shifts the input
	move, err := that.readLine(ctx, lines)
	if err != nil {
		return err
	}

	slot, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil || (slot != entity.SlotOne && slot != entity.SlotTwo) {
		return that.printf("%s\n", msgInvalidChoice)
	}

	row, col, ok := parseMove(move)
	if !ok {
		return that.printf("%s\n", msgInvalidFormat)
	}

	if _, err = that.manager.MakeTurn(ctx, slot, row, col); err != nil {
		var invalidMove *apperror.InvalidMoveError
		if errors.As(err, &invalidMove) {
			log.Debug("invalid move", "slot", slot, "reason", invalidMove.Reason.String())
			return that.printf("%s\n%s\n\n\n", invalidMove.Reason, msgTryAgain)
		}

		return fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.renderer.Render(that.manager.Game().Board()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return that.printf("\n")
}

// readLines - scans the input in the background so a cancelled ctx is noticed while waiting for a line.
func (that *Driver) readLines(ctx context.Context) <-chan line {
	lines := make(chan line)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- line{text: scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			select {
			case lines <- line{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	return lines
}

func (that *Driver) readLine(ctx context.Context, lines <-chan line) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-lines:
		if !ok {
			return "", ErrInputClosed
		}

		if l.err != nil {
			return "", fmt.Errorf("failed to read input: %w", l.err)
		}

		return l.text, nil
	}
}

func (that *Driver) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func parseMove(text string) (int, int, bool) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, false
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, false
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, false
	}

	return row, col, true
}
