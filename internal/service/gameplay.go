package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gridgames/kinarow-backend/internal/entity"
	"github.com/gridgames/kinarow-backend/internal/game"
	"github.com/gridgames/kinarow-backend/internal/pkg"
)

type GamePlayService interface {
	GetOrCreateGame(ctx context.Context, player *entity.Player, params GameParams) (*entity.Game, error)
	GetGameState(ctx context.Context, player *entity.Player) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)

	MakeTurn(ctx context.Context, playerID string, move game.Move) (*entity.Game, error)
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService
}

func NewGamePlayService(logger *slog.Logger, playerService PlayerService, gameService GameService, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:        logger,
		playerService: playerService,
		gameService:   gameService,
		botService:    botService,
	}
}

// MakeTurn applies one human move and, on bot sessions, the computer reply.
// In a private session the single client drives both marks, so the mark is
// taken from the side to move rather than from the player record.
func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, move game.Move) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	gameSession, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	mark := player.Mark
	if !gameSession.IsWithBot() {
		mark = gameSession.Board.Turn
	}

	if err = gameSession.MakeTurn(mark, move); err != nil {
		return gameSession, fmt.Errorf("failed to make turn: %w", err)
	}

	if gameSession.IsWithBot() && gameSession.IsOngoing() {
		if err = that.botService.MakeTurn(gameSession); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, gameSession); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return gameSession, nil
}

func (that *gamePlayService) GetOrCreateGame(ctx context.Context, player *entity.Player, params GameParams) (*entity.Game, error) {
	if player.GameID == "" {
		gameSession, err := that.createGame(ctx, player, params)
		if err != nil {
			return nil, fmt.Errorf("failed to create new game: %w", err)
		}

		return gameSession, nil
	}

	gameSession, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if gameSession.IsFinished() {
		that.CleanupGame(ctx, gameSession)

		gameSession, err = that.createGame(ctx, player, params)
		if err != nil {
			return nil, fmt.Errorf("failed to create new game: %w", err)
		}
	}

	return gameSession, nil
}

func (that *gamePlayService) GetGameState(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	gameSession, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return gameSession, nil
}

// CleanupGame deletes a finished session and unbinds its human players.
// Failures here only get logged; a stale session must not block a new game.
func (that *gamePlayService) CleanupGame(ctx context.Context, gameSession *entity.Game) {
	log := that.logger.With("method", "CleanupGame", "gameID", gameSession.ID)

	for _, player := range gameSession.Players {
		if player.IsBot() {
			continue
		}

		player.GameID = ""
		player.Mark = ""
		if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
			log.Error("failed to unbind player", "playerID", player.ID, "error", err)
		}
	}

	if err := that.gameService.DeleteGame(ctx, gameSession.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}
}

// createGame starts a session; bot sessions get their computer opponent on
// the mark the human did not take and begin immediately, private sessions
// start at once as well since one client drives both sides. When the
// computer drew X it plays the opening move before the session is returned.
func (that *gamePlayService) createGame(ctx context.Context, player *entity.Player, params GameParams) (*entity.Game, error) {
	gameSession, err := that.gameService.CreateGame(ctx, player, params)
	if err != nil {
		return nil, err
	}

	if gameSession.IsWithBot() {
		botPlayer := &entity.Player{
			ID:     pkg.GenerateBotID(),
			Mark:   game.Opponent(player.Mark),
			GameID: gameSession.ID,
		}
		gameSession.Players = append(gameSession.Players, botPlayer)
	}

	gameSession.Status = entity.StatusOngoing

	if botPlayer := gameSession.BotPlayer(); botPlayer != nil && botPlayer.Mark == game.PlayerX {
		if err = that.botService.MakeTurn(gameSession); err != nil {
			return nil, fmt.Errorf("bot failed to open the game: %w", err)
		}
	}

	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if err = that.gameService.UpdateGame(ctx, gameSession); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return gameSession, nil
}
