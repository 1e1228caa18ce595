package entity

// Session ties an opaque external session id to a player slot of a game.
type Session struct {
	ID         string `json:"id"`
	GameID     string `json:"game_id"`
	Slot       int    `json:"slot"`
	PlayerName string `json:"player_name"`
}
