package websocket

import (
	"encoding/json"

	"github.com/gridgames/kinarow-backend/internal/entity"
	"github.com/gridgames/kinarow-backend/internal/game"
)

// Message is one WebSocket exchange: an action name plus its payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Settings carries the session configuration a client may pick when
// starting a game. Unset fields fall back to the server defaults.
// Mark is the side the human wants to play: "X", "O" or "random";
// the computer opens the game whenever it ends up holding X.
type Settings struct {
	Type       string `json:"type,omitempty"`
	BoardSize  int    `json:"board_size,omitempty"`
	WinLength  int    `json:"win_length,omitempty"`
	Mark       string `json:"mark,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

type Payload struct {
	Player   *entity.Player `json:"player,omitempty"`
	Game     *entity.Game   `json:"game,omitempty"`
	Move     *game.Move     `json:"move,omitempty"`
	Settings *Settings      `json:"settings,omitempty"`
	Error    string         `json:"error,omitempty"`
}
