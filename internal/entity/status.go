package entity

// GameStatus is derived from the board after every accepted move.
type GameStatus int

const (
	StatusNotOver GameStatus = iota
	StatusPlayerOneWon
	StatusPlayerTwoWon
	StatusDraw
)

func (that GameStatus) IsTerminal() bool {
	return that != StatusNotOver
}

func (that GameStatus) String() string {
	switch that {
	case StatusNotOver:
		return "not_over"
	case StatusPlayerOneWon:
		return "player_one_won"
	case StatusPlayerTwoWon:
		return "player_two_won"
	case StatusDraw:
		return "draw"
	default:
		return "unknown"
	}
}
