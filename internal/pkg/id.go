package pkg

import (
	"github.com/google/uuid"

	"github.com/gridgames/kinarow-backend/internal/entity"
)

// GenerateGameID returns a new unique game session id.
func GenerateGameID() string {
	return uuid.NewString()
}

// GenerateNewSessionID returns a new unique player session id.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// GenerateBotID returns a player id that entity.Player.IsBot recognizes.
func GenerateBotID() string {
	return entity.BotIDPrefix + uuid.NewString()
}
