package service

import (
	"testing"

	"github.com/gridgames/kinarow-backend/internal/config"
	"github.com/gridgames/kinarow-backend/internal/entity"
	"github.com/gridgames/kinarow-backend/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBotGame(t *testing.T, difficulty string) *entity.Game {
	t.Helper()

	gameSession, err := entity.NewGame("g1", entity.WithBotType, 3, 3, difficulty)
	require.NoError(t, err)

	gameSession.Players = []*entity.Player{
		{ID: "p1", Mark: game.PlayerX, GameID: "g1"},
		{ID: entity.BotIDPrefix + "1", Mark: game.PlayerO, GameID: "g1"},
	}
	gameSession.Status = entity.StatusOngoing

	return gameSession
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Fails when the session has no bot", func(t *testing.T) {
		botService := NewBotService(config.Bot{Difficulty: entity.DifficultyEasy, TimeBudgetMs: 250})

		gameSession := newBotGame(t, entity.DifficultyEasy)
		gameSession.Players = gameSession.Players[:1]

		err := botService.MakeTurn(gameSession)
		assert.ErrorIs(t, err, ErrBotNotFound)
	})

	t.Run("Fails on a full board", func(t *testing.T) {
		botService := NewBotService(config.Bot{Difficulty: entity.DifficultyEasy, TimeBudgetMs: 250})

		gameSession := newBotGame(t, entity.DifficultyEasy)
		marks := []string{
			game.PlayerX, game.PlayerO, game.PlayerX,
			game.PlayerX, game.PlayerO, game.PlayerO,
			game.PlayerO, game.PlayerX, game.PlayerX,
		}
		copy(gameSession.Board.Cells, marks)

		err := botService.MakeTurn(gameSession)
		assert.ErrorIs(t, err, ErrNoAvailableMoves)
	})

	t.Run("Easy bot plays some legal move", func(t *testing.T) {
		botService := NewBotService(config.Bot{Difficulty: entity.DifficultyEasy, TimeBudgetMs: 250})

		// Given: it is the bot's turn on an open board
		gameSession := newBotGame(t, entity.DifficultyEasy)
		require.NoError(t, gameSession.Board.Apply(game.NewMove(1, 1), game.PlayerX))

		// When: the bot moves
		err := botService.MakeTurn(gameSession)

		// Then: exactly one O appears and the turn passes back to X
		require.NoError(t, err)
		botMarks := 0
		for _, cell := range gameSession.Board.Cells {
			if cell == game.PlayerO {
				botMarks++
			}
		}
		assert.Equal(t, 1, botMarks)
		assert.Equal(t, game.PlayerX, gameSession.Board.Turn)
	})

	t.Run("Hard bot takes an immediate win", func(t *testing.T) {
		botService := NewBotService(config.Bot{Difficulty: entity.DifficultyHard, TimeBudgetMs: 250})

		// Given: O to move with a completed pair on the middle row
		gameSession := newBotGame(t, entity.DifficultyHard)
		gameSession.Board.Set(0, 0, game.PlayerX)
		gameSession.Board.Set(0, 1, game.PlayerX)
		gameSession.Board.Set(2, 2, game.PlayerX)
		gameSession.Board.Set(1, 0, game.PlayerO)
		gameSession.Board.Set(1, 1, game.PlayerO)
		gameSession.Board.Turn = game.PlayerO

		// When: the bot moves
		err := botService.MakeTurn(gameSession)

		// Then: it completes the row and wins the session
		require.NoError(t, err)
		assert.Equal(t, game.PlayerO, gameSession.Board.At(1, 2))
		assert.Equal(t, entity.StatusFinished, gameSession.Status)
		assert.Equal(t, game.PlayerO, gameSession.Winner)
	})

	t.Run("Session difficulty falls back to the configured default", func(t *testing.T) {
		botService := NewBotService(config.Bot{Difficulty: entity.DifficultyHard, TimeBudgetMs: 250})

		// Given: a session without an explicit difficulty
		gameSession := newBotGame(t, "")
		gameSession.Board.Set(1, 0, game.PlayerO)
		gameSession.Board.Set(1, 1, game.PlayerO)
		gameSession.Board.Set(0, 0, game.PlayerX)
		gameSession.Board.Set(0, 1, game.PlayerX)
		gameSession.Board.Set(2, 2, game.PlayerX)
		gameSession.Board.Turn = game.PlayerO

		// When: the bot moves
		err := botService.MakeTurn(gameSession)

		// Then: the default hard strategy finds the winning cell
		require.NoError(t, err)
		assert.Equal(t, game.PlayerO, gameSession.Board.At(1, 2))
	})
}
