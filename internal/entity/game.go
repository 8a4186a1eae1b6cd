package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/gridgames/kinarow-backend/internal/apperror"
	"github.com/gridgames/kinarow-backend/internal/game"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

const (
	// PrivateType is a local two-player session driven by a single client.
	PrivateType = "private"
	// WithBotType is a session against the computer player.
	WithBotType = "bot"
)

const (
	DifficultyEasy = "easy"
	DifficultyHard = "hard"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is one live session: the engine board plus the metadata the
// orchestration layer needs (players, lifecycle status, bot difficulty).
type Game struct {
	ID         string      `json:"id"`
	Board      *game.Board `json:"board"`
	Winner     string      `json:"winner"`
	Status     string      `json:"status"`
	Players    []*Player   `json:"players,omitempty"`
	Type       string      `json:"type,omitempty"`
	Difficulty string      `json:"difficulty,omitempty"`
}

func NewGame(id, gameType string, size, winLength int, difficulty string) (*Game, error) {
	board, err := game.NewBoard(size, winLength)
	if err != nil {
		return nil, fmt.Errorf("invalid board configuration: %w", err)
	}

	return &Game{
		ID:         id,
		Board:      board,
		Status:     StatusWaiting,
		Type:       gameType,
		Difficulty: difficulty,
	}, nil
}

// Turn exposes the engine's side to move; empty once the game is over.
func (that *Game) Turn() string {
	if that.IsFinished() {
		return game.EmptyCell
	}

	return that.Board.Turn
}

// MakeTurn applies one move for playerMark and refreshes the session status
// from the board. The session must be ongoing.
func (that *Game) MakeTurn(playerMark string, move game.Move) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if err := that.Board.Apply(move, playerMark); err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.UpdateGameState()

	return nil
}

// UpdateGameState recomputes winner and status from the board scan.
func (that *Game) UpdateGameState() {
	switch winner := that.Board.Result(); winner {
	// one player wins
	case game.PlayerX, game.PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
	// tie
	case game.PlayerTie:
		that.Winner = game.PlayerTie
		that.Status = StatusFinished
	// game continues
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

// BotPlayer returns the computer participant of a bot session, or nil.
func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

func (that *Game) GetRandomMarks() (string, string) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return game.PlayerX, game.PlayerO
	}
	return game.PlayerO, game.PlayerX
}
