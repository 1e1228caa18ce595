package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	DefaultBoardSize = 3

	DefaultPlayerOneName = "Player1"
	DefaultPlayerTwoName = "Player2"

	ResultDraw       = "DRAW"
	ResultInProgress = "GAME ON"
)

const (
	SlotOne = 1
	SlotTwo = 2
)

// Game pairs two players with the board they share and binds each player
// slot to an external session.
type Game struct {
	id        string
	playerOne *Player
	playerTwo *Player
	board     *Board

	sessionOne string
	sessionTwo string
}

func NewGame(id string, size int, names [2]string) (*Game, error) {
	if names[0] == "" {
		names[0] = DefaultPlayerOneName
	}

	if names[1] == "" {
		names[1] = DefaultPlayerTwoName
	}

	playerOne := NewPlayer(MarkerX, names[0])
	playerTwo := NewPlayer(MarkerO, names[1])

	board, err := NewBoard(playerOne, playerTwo, size)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &Game{
		id:        id,
		playerOne: playerOne,
		playerTwo: playerTwo,
		board:     board,
	}, nil
}

// Setup - binds the first session and hands out player one.
func (that *Game) Setup(sessionID string) (*Player, error) {
	if that.sessionOne != "" {
		return nil, apperror.ErrGameAlreadySetUp
	}

	that.sessionOne = sessionID

	return that.playerOne, nil
}

// Join - binds the second session and hands out player two.
func (that *Game) Join(sessionID string) (*Player, error) {
	if that.sessionOne == "" {
		return nil, apperror.ErrGameNotSetUp
	}

	if that.sessionTwo != "" {
		return nil, apperror.ErrGameAlreadyJoined
	}

	that.sessionTwo = sessionID

	return that.playerTwo, nil
}

func (that *Game) Status() GameStatus {
	return that.board.CheckGameStatus()
}

func (that *Game) Result() string {
	switch that.Status() {
	case StatusPlayerOneWon:
		return fmt.Sprintf("%s WON", that.playerOne)
	case StatusPlayerTwoWon:
		return fmt.Sprintf("%s WON", that.playerTwo)
	case StatusDraw:
		return ResultDraw
	default:
		return ResultInProgress
	}
}

// PlayerBySlot - returns player one for slot 1 and player two for slot 2.
func (that *Game) PlayerBySlot(slot int) (*Player, error) {
	switch slot {
	case SlotOne:
		return that.playerOne, nil
	case SlotTwo:
		return that.playerTwo, nil
	default:
		return nil, fmt.Errorf("%w: slot %d", apperror.ErrUnknownPlayer, slot)
	}
}

func (that *Game) ID() string {
	return that.id
}

func (that *Game) Board() *Board {
	return that.board
}

func (that *Game) PlayerOne() *Player {
	return that.playerOne
}

func (that *Game) PlayerTwo() *Player {
	return that.playerTwo
}

func (that *Game) SessionOne() string {
	return that.sessionOne
}

func (that *Game) SessionTwo() string {
	return that.sessionTwo
}
