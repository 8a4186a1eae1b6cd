package repository

import (
	"testing"

	"github.com/gridgames/kinarow-backend/internal/entity"
	"github.com/gridgames/kinarow-backend/internal/game"
	"github.com/gridgames/kinarow-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a waiting 4×4 session
	session, err := entity.NewGame("123", entity.WithBotType, 4, 3, entity.DifficultyHard)
	require.NoError(t, err)

	// When: CreateOrUpdate is called
	err = gameRepo.CreateOrUpdate(ctx, session)

	// Then: no error should be returned, and game is stored
	require.NoError(t, err)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a stored session with a move already played
		session, err := entity.NewGame("123", entity.PrivateType, 3, 3, "")
		require.NoError(t, err)
		session.Status = entity.StatusOngoing
		require.NoError(t, session.MakeTurn(game.PlayerX, game.NewMove(1, 1)))

		require.NoError(t, gameRepo.CreateOrUpdate(ctx, session))

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, session.ID)

		// Then: the retrieved session matches the saved one, board included
		require.NoError(t, err)
		require.Equal(t, session.ID, retrievedGame.ID)
		require.Equal(t, session.Status, retrievedGame.Status)
		require.Equal(t, session.Board.Cells, retrievedGame.Board.Cells)
		require.Equal(t, session.Board.Size, retrievedGame.Board.Size)
		require.Equal(t, session.Board.WinLength, retrievedGame.Board.WinLength)
		require.Equal(t, game.PlayerO, retrievedGame.Board.Turn)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		nonExistentGameID := "9999999"

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, nonExistentGameID)

		// Then: an ErrGameNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, ErrGameNotFound, err)
		assert.Empty(t, retrievedGame.ID)
		assert.Empty(t, retrievedGame.Status)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a stored finished session
	session, err := entity.NewGame("123", entity.PrivateType, 3, 3, "")
	require.NoError(t, err)
	session.Status = entity.StatusFinished

	require.NoError(t, gameRepo.CreateOrUpdate(ctx, session))

	// When: DeleteByID is called with existing ID
	err = gameRepo.DeleteByID(ctx, session.ID)

	// Then: the game is gone
	require.NoError(t, err)

	_, err = gameRepo.GetByID(ctx, session.ID)
	assert.Equal(t, ErrGameNotFound, err)
}
