package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	colorRed   = "\x1b[31m"
	colorGreen = "\x1b[32m"
	colorBlue  = "\x1b[34m"
	colorReset = "\x1b[0m"

	cellWidth = 5
)

type BoardRenderer struct {
	out     io.Writer
	colored bool
}

func NewBoardRenderer(out io.Writer, colored bool) *BoardRenderer {
	return &BoardRenderer{
		out:     out,
		colored: colored,
	}
}

// Output - wraps the file for the given color mode and reports whether escapes should be written.
func Output(file *os.File, mode string) (io.Writer, bool) {
	switch mode {
	case config.ColorAlways:
		return colorable.NewColorable(file), true
	case config.ColorNever:
		return colorable.NewNonColorable(file), false
	default:
		fd := file.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return colorable.NewColorable(file), true
		}
		return colorable.NewNonColorable(file), false
	}
}

// Render - writes one line per row, X for player one's marker, O for player two's and E for empty cells.
func (that *BoardRenderer) Render(board *entity.Board) error {
	var sb strings.Builder

	for _, row := range board.Cells() {
		for _, cell := range row {
			sb.WriteString(that.cell(cell))
		}
		sb.WriteString("\n")
	}

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func (that *BoardRenderer) cell(marker entity.Marker) string {
	symbol, color := "E", colorGreen

	switch marker {
	case entity.MarkerX:
		symbol, color = "X", colorRed
	case entity.MarkerO:
		symbol, color = "O", colorBlue
	}

	padded := fmt.Sprintf("%*s", cellWidth, symbol)
	if !that.colored {
		return padded
	}

	return color + padded + colorReset
}
