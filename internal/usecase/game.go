package usecase

import (
	"context"
	"fmt"

	"github.com/gridgames/kinarow-backend/internal/apperror"
	"github.com/gridgames/kinarow-backend/internal/config"
	"github.com/gridgames/kinarow-backend/internal/entity"
	"github.com/gridgames/kinarow-backend/internal/game"
	"github.com/gridgames/kinarow-backend/internal/service"
)

type GameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	StartGame(ctx context.Context, playerID string, params service.GameParams) (*entity.Game, error)
	GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error)
	EndGame(ctx context.Context, game *entity.Game) error

	MakeTurn(ctx context.Context, playerID string, move game.Move) (*entity.Game, error)
}

type playerService interface {
	CreatePlayer(ctx context.Context) (*entity.Player, error)
	GetPlayerByID(ctx context.Context, id string) (*entity.Player, error)
	UpdatePlayer(ctx context.Context, player *entity.Player) error
}

type gameService interface {
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
}

type gamePlayService interface {
	GetOrCreateGame(ctx context.Context, player *entity.Player, params service.GameParams) (*entity.Game, error)
	GetGameState(ctx context.Context, player *entity.Player) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)

	MakeTurn(ctx context.Context, playerID string, move game.Move) (*entity.Game, error)
}

type gameUseCase struct {
	conf *config.Config

	playerService   playerService
	gameService     gameService
	gamePlayService gamePlayService
}

func NewGameUseCase(conf *config.Config, playerService playerService, gameService gameService, gamePlayService gamePlayService) GameUseCase {
	return &gameUseCase{
		conf:            conf,
		playerService:   playerService,
		gameService:     gameService,
		gamePlayService: gamePlayService,
	}
}

func (that *gameUseCase) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID == "" {
		player, err := that.playerService.CreatePlayer(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not create player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

// StartGame returns the player's current session or creates one. Session
// settings left empty by the client fall back to the configured defaults.
func (that *gameUseCase) StartGame(ctx context.Context, playerID string, params service.GameParams) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	that.applyDefaults(&params)

	gameSession, err := that.gamePlayService.GetOrCreateGame(ctx, player, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create game: %w", err)
	}

	return gameSession, nil
}

func (that *gameUseCase) GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGames
	}

	gameSession, err := that.gamePlayService.GetGameState(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to get game state: %w", err)
	}

	return gameSession, nil
}

// EndGame finishes the session early and unbinds its players.
func (that *gameUseCase) EndGame(ctx context.Context, gameSession *entity.Game) error {
	gameSession.Status = entity.StatusFinished

	if err := that.gameService.UpdateGame(ctx, gameSession); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	that.gamePlayService.CleanupGame(ctx, gameSession)

	return nil
}

// MakeTurn plays one move. A finished session is cleaned up right away and
// signalled with ErrGameFinished alongside the final state.
func (that *gameUseCase) MakeTurn(ctx context.Context, playerID string, move game.Move) (*entity.Game, error) {
	gameSession, err := that.gamePlayService.MakeTurn(ctx, playerID, move)
	if err != nil {
		return gameSession, fmt.Errorf("failed to make turn: %w", err)
	}

	if gameSession.IsFinished() {
		that.gamePlayService.CleanupGame(ctx, gameSession)

		return gameSession, apperror.ErrGameFinished
	}

	return gameSession, nil
}

func (that *gameUseCase) applyDefaults(params *service.GameParams) {
	if params.Type == "" {
		params.Type = entity.WithBotType
	}

	if params.BoardSize == 0 {
		params.BoardSize = that.conf.Game.BoardSize
	}

	if params.WinLength == 0 {
		params.WinLength = that.conf.Game.WinLength
	}

	if params.Difficulty == "" {
		params.Difficulty = that.conf.Bot.Difficulty
	}
}
