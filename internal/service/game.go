package service

import (
	"context"
	"fmt"

	"github.com/gridgames/kinarow-backend/internal/entity"
	"github.com/gridgames/kinarow-backend/internal/game"
	"github.com/gridgames/kinarow-backend/internal/pkg"
)

// MarkRandom lets the server draw sides for the session instead of the
// client picking one.
const MarkRandom = "random"

// GameParams describes one session as requested by the client:
// board geometry, opponent type, the human player's mark and bot difficulty.
type GameParams struct {
	Type       string
	BoardSize  int
	WinLength  int
	Mark       string
	Difficulty string
}

type GameService interface {
	CreateGame(ctx context.Context, player *entity.Player, params GameParams) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
	DeleteGame(ctx context.Context, gameID string) error

	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameService struct {
	gameRepo gameRepo
}

func NewGameService(gameRepo gameRepo) GameService {
	return &gameService{
		gameRepo: gameRepo,
	}
}

func (that *gameService) CreateGame(ctx context.Context, player *entity.Player, params GameParams) (*entity.Game, error) {
	gameID := pkg.GenerateGameID()

	gameSession, err := entity.NewGame(gameID, params.Type, params.BoardSize, params.WinLength, params.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	player.GameID = gameID
	player.Mark = resolveMark(gameSession, params.Mark)

	gameSession.Players = []*entity.Player{player}
	if err = that.gameRepo.CreateOrUpdate(ctx, gameSession); err != nil {
		return nil, fmt.Errorf("failed to create game from storage: %w", err)
	}

	return gameSession, nil
}

// resolveMark picks the human player's side: an explicit X or O is kept,
// MarkRandom draws one, anything else defaults to X.
func resolveMark(gameSession *entity.Game, requested string) string {
	switch requested {
	case game.PlayerX, game.PlayerO:
		return requested
	case MarkRandom:
		mark, _ := gameSession.GetRandomMarks()
		return mark
	default:
		return game.PlayerX
	}
}

func (that *gameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	gameSession, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return gameSession, nil
}

func (that *gameService) UpdateGame(ctx context.Context, gameSession *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, gameSession); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *gameService) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}
