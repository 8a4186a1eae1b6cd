package service

import (
	"errors"
	"fmt"

	"github.com/gridgames/kinarow-backend/internal/bot"
	"github.com/gridgames/kinarow-backend/internal/config"
	"github.com/gridgames/kinarow-backend/internal/entity"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	conf config.Bot
}

func NewBotService(conf config.Bot) BotService {
	return &botService{conf: conf}
}

// MakeTurn plays one computer reply on the session. The strategy comes from
// the session difficulty; easy plays randomly, hard runs the minimax search.
func (that *botService) MakeTurn(gameSession *entity.Game) error {
	botPlayer := gameSession.BotPlayer()
	if botPlayer == nil {
		return ErrBotNotFound
	}

	if gameSession.Board.IsFull() {
		return ErrNoAvailableMoves
	}

	opts := bot.Options{
		Strategy:   that.strategyFor(gameSession.Difficulty),
		Depth:      that.conf.Depth,
		TimeBudget: that.conf.TimeBudget(),
	}

	move, err := bot.ChooseMove(gameSession.Board, botPlayer.Mark, opts)
	if err != nil {
		return fmt.Errorf("bot failed to choose move: %w", err)
	}

	if err = gameSession.MakeTurn(botPlayer.Mark, move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

func (that *botService) strategyFor(difficulty string) bot.Strategy {
	if difficulty == "" {
		difficulty = that.conf.Difficulty
	}

	switch difficulty {
	case entity.DifficultyEasy:
		return bot.StrategyRandom
	default:
		return bot.StrategyMinimax
	}
}
