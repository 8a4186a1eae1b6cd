package bot

import (
	"testing"
	"time"

	"github.com/gridgames/kinarow-backend/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a budget large enough that small-board searches always run to their
// depth cap, keeping the results deterministic.
const relaxedBudget = 5 * time.Second

func minimaxMove(t *testing.T, board *game.Board, mark string) game.Move {
	t.Helper()

	move, err := ChooseMove(board, mark, Options{Strategy: StrategyMinimax, TimeBudget: relaxedBudget})
	require.NoError(t, err)

	return move
}

func TestMinimax_ReturnsLegalMove(t *testing.T) {
	// Given: a midgame position
	board := boardFrom(t, 4, 4, []string{
		"X", "", "", "",
		"", "O", "X", "",
		"", "", "O", "",
		"", "", "", "",
	}, game.PlayerX)

	// When: the minimax strategy picks a move
	move := minimaxMove(t, board, game.PlayerX)

	// Then: the move is legal and the caller's board is untouched
	assert.Contains(t, board.LegalMoves(), move)
	assert.Equal(t, game.EmptyCell, board.At(move.Row, move.Col))
}

func TestMinimax_TakesImmediateWin(t *testing.T) {
	// Given: X can complete the top row right now
	board := boardFrom(t, 3, 3, []string{
		"X", "X", "",
		"O", "O", "",
		"", "", "",
	}, game.PlayerX)

	// When: X asks for a move
	move := minimaxMove(t, board, game.PlayerX)

	// Then: it finishes the game instead of blocking
	assert.Equal(t, game.NewMove(0, 2), move)
}

func TestMinimax_BlocksImminentLoss(t *testing.T) {
	// Given: X threatens to win at (0,2) and O has no win of its own
	board := boardFrom(t, 3, 3, []string{
		"X", "X", "",
		"", "O", "",
		"", "", "",
	}, game.PlayerO)

	// When: O asks for a move
	move := minimaxMove(t, board, game.PlayerO)

	// Then: the only surviving move is the block
	assert.Equal(t, game.NewMove(0, 2), move)
}

func TestMinimax_PrefersOwnWinOverBlocking(t *testing.T) {
	// Given: O to move with a win at (1,2) while X holds a slower threat
	board := boardFrom(t, 3, 3, []string{
		"X", "X", "",
		"O", "O", "",
		"", "", "",
	}, game.PlayerO)

	// When: O asks for a move
	move := minimaxMove(t, board, game.PlayerO)

	// Then: O completes its own row rather than blocking X
	assert.Equal(t, game.NewMove(1, 2), move)
}

func TestMinimax_OptimalSelfPlayDraws(t *testing.T) {
	// Given: an empty 3×3 board, searched to full depth by both sides
	board, err := game.NewBoard(3, 3)
	require.NoError(t, err)

	// When: minimax plays itself to the end
	for board.Result() == game.EmptyCell {
		move := minimaxMove(t, board, board.Turn)
		require.NoError(t, board.Apply(move, board.Turn))
	}

	// Then: the classical result holds
	assert.Equal(t, game.PlayerTie, board.Result(), "final board:\n%s", board)
}

func TestMinimax_DeterministicWithoutTimePressure(t *testing.T) {
	// Given: one midgame position
	board := boardFrom(t, 3, 3, []string{
		"X", "", "",
		"", "O", "",
		"", "", "X",
	}, game.PlayerO)

	// When: searching the same position twice
	first := minimaxMove(t, board, game.PlayerO)
	second := minimaxMove(t, board, game.PlayerO)

	// Then: tie-breaking is first-found, so the answers agree
	assert.Equal(t, first, second)
}

func TestMinimax_ExhaustedBudgetStillReturnsLegalMove(t *testing.T) {
	// Given: a budget that expires before depth 1 can complete
	board, err := game.NewBoard(5, 4)
	require.NoError(t, err)

	move, err := ChooseMove(board, game.PlayerX, Options{
		Strategy:   StrategyMinimax,
		TimeBudget: time.Nanosecond,
	})

	// Then: the search fails closed onto the first ordered legal move
	require.NoError(t, err)
	assert.Contains(t, board.LegalMoves(), move)
}

func TestMinimax_ExplicitDepthOverridesAdaptiveCap(t *testing.T) {
	// Given: a 6×6 board, where the adaptive cap would be shallow
	board, err := game.NewBoard(6, 3)
	require.NoError(t, err)
	require.NoError(t, board.Apply(game.NewMove(2, 2), game.PlayerX))
	require.NoError(t, board.Apply(game.NewMove(3, 3), game.PlayerO))
	require.NoError(t, board.Apply(game.NewMove(2, 3), game.PlayerX))

	// When: O searches with an explicit one-ply depth
	move, err := ChooseMove(board, game.PlayerO, Options{
		Strategy:   StrategyMinimax,
		Depth:      1,
		TimeBudget: relaxedBudget,
	})

	// Then: even a single ply must produce a legal move
	require.NoError(t, err)
	assert.Contains(t, board.LegalMoves(), move)
}

func TestOrderByCenter(t *testing.T) {
	// Given: all cells of an empty 3×3 board
	board, err := game.NewBoard(3, 3)
	require.NoError(t, err)

	// When: ordering the candidate moves
	ordered := orderByCenter(board.LegalMoves(), board.Size)

	// Then: the center comes first, edges before corners, and equal
	// distances keep their row-major order
	require.Len(t, ordered, 9)
	assert.Equal(t, game.NewMove(1, 1), ordered[0])
	assert.ElementsMatch(t,
		[]game.Move{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1}},
		ordered[1:5])
	assert.Equal(t, game.NewMove(0, 1), ordered[1])
}
