package bot

import (
	"sort"
	"time"

	"github.com/gridgames/kinarow-backend/internal/game"
)

const (
	// winScore dominates any heuristic value; terminal scores are adjusted
	// by ply so the search prefers faster wins and slower losses.
	winScore = 1_000_000

	infScore = 1 << 30
)

// Depth caps by board size: small boards are searched to the end, larger
// ones rely on the heuristic.
var depthCapBySize = map[int]int{3: 9, 4: 6, 5: 4}

const defaultDepthCap = 3

func depthCap(size int) int {
	if limit, ok := depthCapBySize[size]; ok {
		return limit
	}

	return defaultDepthCap
}

// search carries the state of one minimax call: a private clone of the
// board that is mutated and backtracked in place, and the wall-clock
// deadline polled at every node.
type search struct {
	board    *game.Board
	me       string
	opponent string
	deadline time.Time
	aborted  bool
}

// chooseMinimax runs iterative deepening from depth 1 up to the cap.
// The returned move always comes from the deepest iteration that finished
// inside the time budget; an aborted iteration is discarded so a partially
// searched depth can never produce an inconsistent choice. If not even
// depth 1 completes, the first move in ordering is used as a fallback.
func chooseMinimax(board *game.Board, mark string, moves []game.Move, opts Options) game.Move {
	ordered := orderByCenter(moves, board.Size)

	maxDepth := opts.Depth
	if maxDepth <= 0 {
		maxDepth = depthCap(board.Size)
	}

	budget := opts.TimeBudget
	if budget <= 0 {
		budget = DefaultTimeBudget
	}

	searcher := &search{
		board:    board.Clone(),
		me:       mark,
		opponent: game.Opponent(mark),
		deadline: time.Now().Add(budget),
	}

	best := ordered[0]
	for depth := 1; depth <= maxDepth; depth++ {
		searcher.aborted = false

		move, score, completed := searcher.searchRoot(ordered, depth)
		if !completed {
			break
		}

		best = move

		// A proven win cannot be improved by searching deeper.
		if score >= winScore-maxDepth {
			break
		}
	}

	return best
}

// searchRoot scores every root move to the given depth. Ties keep the move
// found first in ordering, which makes results reproducible.
func (that *search) searchRoot(moves []game.Move, depth int) (game.Move, int, bool) {
	best := moves[0]
	bestScore := -infScore
	alpha := -infScore

	for _, move := range moves {
		that.board.Set(move.Row, move.Col, that.me)
		score := that.alphabeta(depth-1, 1, alpha, infScore, false)
		that.board.Remove(move.Row, move.Col)

		if that.aborted {
			return game.Move{}, 0, false
		}

		if score > bestScore {
			bestScore = score
			best = move
		}
		if score > alpha {
			alpha = score
		}
	}

	return best, bestScore, true
}

// alphabeta is a plain recursive minimax with alpha-beta pruning.
// maximizing nodes play the bot's own mark, minimizing nodes the opponent's.
// The deadline is checked cooperatively on every entry; once it passes, the
// whole iteration unwinds and is thrown away by the caller.
func (that *search) alphabeta(depthLeft, ply, alpha, beta int, maximizing bool) int {
	if time.Now().After(that.deadline) {
		that.aborted = true
		return 0
	}

	switch that.board.Result() {
	case that.me:
		return winScore - ply
	case that.opponent:
		return -winScore + ply
	case game.PlayerTie:
		return 0
	}

	if depthLeft == 0 {
		return evaluate(that.board, that.me)
	}

	moves := orderByCenter(that.board.LegalMoves(), that.board.Size)

	if maximizing {
		value := -infScore
		for _, move := range moves {
			that.board.Set(move.Row, move.Col, that.me)
			score := that.alphabeta(depthLeft-1, ply+1, alpha, beta, false)
			that.board.Remove(move.Row, move.Col)

			if that.aborted {
				return 0
			}

			if score > value {
				value = score
			}
			if value > alpha {
				alpha = value
			}
			if beta <= alpha {
				break
			}
		}

		return value
	}

	value := infScore
	for _, move := range moves {
		that.board.Set(move.Row, move.Col, that.opponent)
		score := that.alphabeta(depthLeft-1, ply+1, alpha, beta, true)
		that.board.Remove(move.Row, move.Col)

		if that.aborted {
			return 0
		}

		if score < value {
			value = score
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			break
		}
	}

	return value
}

// orderByCenter sorts candidate moves by Manhattan distance to the board
// center, nearest first. Center moves cut off more of the tree; ordering
// affects speed, never the final score. The sort is stable over the
// row-major input so ties are deterministic.
func orderByCenter(moves []game.Move, size int) []game.Move {
	ordered := make([]game.Move, len(moves))
	copy(ordered, moves)

	sort.SliceStable(ordered, func(i, j int) bool {
		return centerDistance(ordered[i], size) < centerDistance(ordered[j], size)
	})

	return ordered
}

// centerDistance doubles both coordinates so the geometric center of
// even-sized boards stays integral.
func centerDistance(move game.Move, size int) int {
	center := size - 1
	return abs(2*move.Row-center) + abs(2*move.Col-center)
}

func abs(value int) int {
	if value < 0 {
		return -value
	}

	return value
}
