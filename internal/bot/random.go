package bot

import (
	"math/rand"

	"github.com/gridgames/kinarow-backend/internal/game"
)

func chooseRandom(moves []game.Move) game.Move {
	return moves[rand.Intn(len(moves))] //nolint: gosec // not used for anything security sensitive
}
