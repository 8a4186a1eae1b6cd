// Package bot selects moves for the computer player. Two strategies are
// available: a uniform random pick and a time-bounded minimax search with
// alpha-beta pruning. Both operate on a snapshot of the board and never
// mutate the caller's game state.
package bot

import (
	"fmt"
	"time"

	"github.com/gridgames/kinarow-backend/internal/apperror"
	"github.com/gridgames/kinarow-backend/internal/game"
)

type Strategy string

const (
	StrategyRandom  Strategy = "random"
	StrategyMinimax Strategy = "minimax"
)

// DefaultTimeBudget bounds a single minimax call when Options.TimeBudget
// is left at zero.
const DefaultTimeBudget = 250 * time.Millisecond

// Options is the tagged strategy variant picked at configuration time.
type Options struct {
	Strategy Strategy

	// Depth caps the search depth; zero picks a cap from the board size.
	Depth int

	// TimeBudget is the wall-clock budget for one move; zero means
	// DefaultTimeBudget.
	TimeBudget time.Duration
}

// ChooseMove returns a move for mark on the given board.
// Calling it with no legal moves left is a caller-contract violation and
// fails with apperror.ErrNoLegalMoves.
func ChooseMove(board *game.Board, mark string, opts Options) (game.Move, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, apperror.ErrNoLegalMoves
	}

	switch opts.Strategy {
	case StrategyMinimax:
		return chooseMinimax(board, mark, moves, opts), nil
	case StrategyRandom, "":
		return chooseRandom(moves), nil
	default:
		return game.Move{}, fmt.Errorf("unknown strategy %q", opts.Strategy)
	}
}
