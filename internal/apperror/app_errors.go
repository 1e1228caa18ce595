package apperror

import "errors"

var (
	ErrInvalidMove       = errors.New("invalid move")
	ErrGameNotSetUp      = errors.New("game is not set up")
	ErrGameAlreadySetUp  = errors.New("game is already set up")
	ErrGameAlreadyJoined = errors.New("game is already joined")
	ErrInvalidBoardSize  = errors.New("invalid board size")
	ErrInvalidPlayers    = errors.New("invalid players")
	ErrUnknownPlayer     = errors.New("unknown player")
	ErrSessionNotFound   = errors.New("session not found")
)

// Reason tells why a move was rejected by the board.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonOutOfTurn
	ReasonOutOfBounds
	ReasonCellOccupied
	ReasonGameAlreadyOver
)

func (that Reason) String() string {
	switch that {
	case ReasonNone:
		return "success"
	case ReasonOutOfTurn:
		return "move out of turn"
	case ReasonOutOfBounds:
		return "move out of the bounds of board"
	case ReasonCellOccupied:
		return "cell already filled"
	case ReasonGameAlreadyOver:
		return "game is already over"
	default:
		return "unknown reason"
	}
}

// InvalidMoveError is returned by the board for every rejected move.
type InvalidMoveError struct {
	Reason Reason
}

func NewInvalidMoveError(reason Reason) *InvalidMoveError {
	return &InvalidMoveError{Reason: reason}
}

func (that *InvalidMoveError) Error() string {
	return ErrInvalidMove.Error() + ": " + that.Reason.String()
}

func (that *InvalidMoveError) Is(target error) bool {
	return target == ErrInvalidMove
}
