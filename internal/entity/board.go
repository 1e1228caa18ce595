package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Board owns the grid, the turn order and the running line sums. It is the
// only place where a move is accepted or rejected.
type Board struct {
	playerOne *Player
	playerTwo *Player
	size      int

	cells      [][]Marker
	turn       *Player
	moves      []*Move
	emptyCount int
	status     GameStatus

	rowSums              []int
	colSums              []int
	primaryDiagonalSum   int
	secondaryDiagonalSum int
}

func NewBoard(playerOne, playerTwo *Player, size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	if playerOne == nil || playerTwo == nil {
		return nil, fmt.Errorf("%w: both players are required", apperror.ErrInvalidPlayers)
	}

	if playerOne.Marker == MarkerEmpty || playerTwo.Marker == MarkerEmpty || playerOne.Marker == playerTwo.Marker {
		return nil, fmt.Errorf("%w: markers %d and %d", apperror.ErrInvalidPlayers, playerOne.Marker, playerTwo.Marker)
	}

	cells := make([][]Marker, size)
	for i := range cells {
		cells[i] = make([]Marker, size)
	}

	board := &Board{
		playerOne:  playerOne,
		playerTwo:  playerTwo,
		size:       size,
		cells:      cells,
		turn:       playerOne,
		emptyCount: size * size,
		status:     StatusNotOver,
		rowSums:    make([]int, size),
		colSums:    make([]int, size),
	}

	playerOne.board = board
	playerTwo.board = board

	return board, nil
}

// MakeMove - validates the move and applies it. A rejected move leaves the board untouched.
func (that *Board) MakeMove(move *Move) error {
	if ok, reason := that.IsMoveValid(move); !ok {
		return apperror.NewInvalidMoveError(reason)
	}

	that.cells[move.Row][move.Col] = move.Player.Marker
	that.updateSums(move)

	that.moves = append(that.moves, move)
	that.toggleTurn()
	that.emptyCount--

	that.status = that.CheckGameStatus()

	return nil
}

// IsMoveValid - checks the move in priority order, the first failing check decides the reason.
func (that *Board) IsMoveValid(move *Move) (bool, apperror.Reason) {
	if that.status.IsTerminal() {
		return false, apperror.ReasonGameAlreadyOver
	}

	if move == nil || move.Player != that.turn {
		return false, apperror.ReasonOutOfTurn
	}

	if !that.isWithinBounds(move.Row, move.Col) {
		return false, apperror.ReasonOutOfBounds
	}

	if that.cells[move.Row][move.Col] != MarkerEmpty {
		return false, apperror.ReasonCellOccupied
	}

	return true, apperror.ReasonNone
}

// CheckGameStatus - derives the status from the last accepted move only,
// since a new win can only run through the cell just filled.
func (that *Board) CheckGameStatus() GameStatus {
	if len(that.moves) == 0 {
		return StatusNotOver
	}

	latest := that.moves[len(that.moves)-1]

	if that.hasWon(latest) {
		if latest.Player == that.playerOne {
			return StatusPlayerOneWon
		}
		return StatusPlayerTwoWon
	}

	if that.emptyCount == 0 {
		return StatusDraw
	}

	return StatusNotOver
}

func (that *Board) hasWon(move *Move) bool {
	if abs(that.rowSums[move.Row]) == that.size || abs(that.colSums[move.Col]) == that.size {
		return true
	}

	if that.onPrimaryDiagonal(move.Row, move.Col) && abs(that.primaryDiagonalSum) == that.size {
		return true
	}

	return that.onSecondaryDiagonal(move.Row, move.Col) && abs(that.secondaryDiagonalSum) == that.size
}

func (that *Board) updateSums(move *Move) {
	marker := int(move.Player.Marker)

	that.rowSums[move.Row] += marker
	that.colSums[move.Col] += marker

	if that.onPrimaryDiagonal(move.Row, move.Col) {
		that.primaryDiagonalSum += marker
	}

	// the center cell of an odd board sits on both diagonals
	if that.onSecondaryDiagonal(move.Row, move.Col) {
		that.secondaryDiagonalSum += marker
	}
}

func (that *Board) toggleTurn() {
	if that.turn == that.playerOne {
		that.turn = that.playerTwo
	} else {
		that.turn = that.playerOne
	}
}

func (that *Board) isWithinBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

func (that *Board) onPrimaryDiagonal(row, col int) bool {
	return row == col
}

func (that *Board) onSecondaryDiagonal(row, col int) bool {
	return row+col == that.size-1
}

func (that *Board) Size() int {
	return that.size
}

// Cell returns MarkerEmpty for coordinates outside the board.
func (that *Board) Cell(row, col int) Marker {
	if !that.isWithinBounds(row, col) {
		return MarkerEmpty
	}
	return that.cells[row][col]
}

// Cells returns a copy of the grid.
func (that *Board) Cells() [][]Marker {
	cells := make([][]Marker, that.size)
	for i, row := range that.cells {
		cells[i] = append([]Marker(nil), row...)
	}
	return cells
}

func (that *Board) Turn() *Player {
	return that.turn
}

// Moves returns the accepted moves in the order they were played.
func (that *Board) Moves() []*Move {
	return append([]*Move(nil), that.moves...)
}

func (that *Board) EmptyCount() int {
	return that.emptyCount
}

// RowSum - running marker sum of a row, 0 for a row outside the board.
func (that *Board) RowSum(row int) int {
	if row < 0 || row >= that.size {
		return 0
	}
	return that.rowSums[row]
}

// ColSum - running marker sum of a column, 0 for a column outside the board.
func (that *Board) ColSum(col int) int {
	if col < 0 || col >= that.size {
		return 0
	}
	return that.colSums[col]
}

func (that *Board) PrimaryDiagonalSum() int {
	return that.primaryDiagonalSum
}

func (that *Board) SecondaryDiagonalSum() int {
	return that.secondaryDiagonalSum
}

func (that *Board) Status() GameStatus {
	return that.status
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
