package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/gridgames/kinarow-backend/internal/apperror"
	"github.com/gridgames/kinarow-backend/internal/entity"
	"github.com/gridgames/kinarow-backend/internal/service"
)

const gameStatusLeave = "leave"

func (that *Server) handleConnect(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleConnect")

	var payloadReq Payload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	playerID := ""
	if payloadReq.Player != nil {
		playerID = payloadReq.Player.ID
	}

	player, err := that.gameUseCase.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		log.Error("failed to create or get player", "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to create a new player")
	}

	payloadResp := Payload{Player: player}

	if player.GameID != "" {
		gameSession, err := that.gameUseCase.GetGameByPlayerID(ctx, player.ID)
		if err != nil {
			log.Error("failed to get game", "gameID", player.GameID, "error", err)
			return that.sendErrorResponse(conn, msg.Action, "failed to get the game")
		}

		payloadResp.Game = maskGameDetails(gameSession)
	}

	if err = that.sendMessage(conn, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected player", "playerID", player.ID)

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleNewGame")

	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(conn, msg.Action, "Player is required")
	}

	params := service.GameParams{}
	if payloadReq.Settings != nil {
		params = service.GameParams{
			Type:       payloadReq.Settings.Type,
			BoardSize:  payloadReq.Settings.BoardSize,
			WinLength:  payloadReq.Settings.WinLength,
			Mark:       payloadReq.Settings.Mark,
			Difficulty: payloadReq.Settings.Difficulty,
		}
	}

	gameSession, err := that.gameUseCase.StartGame(ctx, payloadReq.Player.ID, params)
	if err != nil {
		log.Error("failed to start game", "playerID", payloadReq.Player.ID, "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to create a new game")
	}

	log = log.With("gameID", gameSession.ID)

	payloadResp := Payload{
		Player: humanPlayer(gameSession, payloadReq.Player.ID),
		Game:   maskGameDetails(gameSession),
	}

	if err = that.sendMessage(conn, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("game started")

	return nil
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleGameTurn")

	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(conn, msg.Action, "Player is required")
	}

	if payloadReq.Move == nil {
		log.Error("Move is missing in payload")
		return that.sendErrorResponse(conn, msg.Action, "Move is required")
	}

	log = log.With("playerID", payloadReq.Player.ID)

	gameSession, err := that.gameUseCase.MakeTurn(ctx, payloadReq.Player.ID, *payloadReq.Move)

	switch {
	case errors.Is(err, apperror.ErrGameFinished):
		// final state: the winning or tying move just landed
		payloadResp := Payload{
			Player: payloadReq.Player,
			Game:   maskGameDetails(gameSession),
		}
		if err = that.sendMessage(conn, msg.Action, payloadResp); err != nil {
			return fmt.Errorf("failed to send game finished message: %w", err)
		}

		log.Info("game finished", "gameID", gameSession.ID, "winner", gameSession.Winner)

		return nil
	case errors.Is(err, apperror.ErrGameIsNotStarted),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrOutOfBounds):
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	case err != nil:
		log.Error("failed to make turn", "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to make turn")
	}

	payloadResp := Payload{
		Player: payloadReq.Player,
		Game:   maskGameDetails(gameSession),
	}

	if err = that.sendMessage(conn, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("player made a turn", "gameID", gameSession.ID)

	return nil
}

func (that *Server) handleGameLeave(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleGameLeave")

	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(conn, msg.Action, "Player is required")
	}

	gameSession, err := that.gameUseCase.GetGameByPlayerID(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to find game", "error", err)
		return that.sendErrorResponse(conn, msg.Action, "game doesn't exist")
	}

	if err = that.gameUseCase.EndGame(ctx, gameSession); err != nil {
		log.Error("failed to end game", "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to leave the game")
	}

	payloadResp := Payload{
		Player: payloadReq.Player,
		Game:   maskGameDetails(gameSession),
	}
	payloadResp.Game.Status = gameStatusLeave

	if err = that.sendMessage(conn, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("player left the game", "gameID", gameSession.ID)

	return nil
}

// humanPlayer finds the session participant with the given ID so the
// response reflects the mark assigned on creation.
func humanPlayer(gameSession *entity.Game, playerID string) *entity.Player {
	for _, player := range gameSession.Players {
		if player.ID == playerID {
			return player
		}
	}

	return &entity.Player{ID: playerID}
}

// maskGameDetails hides the participant list from the game payload.
func maskGameDetails(gameSession *entity.Game) *entity.Game {
	masked := *gameSession
	masked.Players = nil

	return &masked
}
