package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrNoActiveGames    = errors.New("no active games")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrOutOfBounds      = errors.New("move is out of bounds")
	ErrBadBoardSize     = errors.New("board size must be between 3 and 6")
	ErrBadWinLength     = errors.New("win length must be between 3 and the board size")
	ErrNoLegalMoves     = errors.New("no legal moves available")
)
