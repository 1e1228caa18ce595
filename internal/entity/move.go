package entity

type Move struct {
	Row    int     `json:"row"`
	Col    int     `json:"col"`
	Player *Player `json:"player"`
}

func NewMove(row, col int, player *Player) *Move {
	return &Move{
		Row:    row,
		Col:    col,
		Player: player,
	}
}
