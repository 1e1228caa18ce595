package entity

import "github.com/rocketscienceinc/tictactoe-console/internal/apperror"

// Marker is the signed value a player leaves in a cell. Sums of markers
// along a line drive win detection.
type Marker int

const (
	MarkerEmpty Marker = 0
	MarkerX     Marker = 1
	MarkerO     Marker = -1
)

type Player struct {
	Marker Marker `json:"marker"`
	Name   string `json:"name"`

	board *Board
}

func NewPlayer(marker Marker, name string) *Player {
	return &Player{
		Marker: marker,
		Name:   name,
	}
}

// MakeMove - places the player's marker at row, col on the board the player is bound to.
func (that *Player) MakeMove(row, col int) error {
	if that.board == nil {
		return apperror.ErrGameNotSetUp
	}

	return that.board.MakeMove(NewMove(row, col, that))
}

func (that *Player) String() string {
	return that.Name
}
