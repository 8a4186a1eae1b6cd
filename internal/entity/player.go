package entity

import "strings"

// BotIDPrefix marks the id of a computer player so it can be told apart
// from human session ids.
const BotIDPrefix = "bot:"

type Player struct {
	ID     string `json:"id"`
	Mark   string `json:"mark,omitempty"`
	GameID string `json:"game_id,omitempty"`
}

func (that *Player) IsBot() bool {
	return strings.HasPrefix(that.ID, BotIDPrefix)
}
