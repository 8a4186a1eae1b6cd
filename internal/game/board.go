package game

import (
	"fmt"
	"strings"

	"github.com/gridgames/kinarow-backend/internal/apperror"
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""

	MinBoardSize = 3
	MaxBoardSize = 6
	MinWinLength = 3
)

// Scan order for win detection: right, down, down-right, down-left.
// The order is fixed so that Result is reproducible.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Board holds the grid state and the side to move for one game of
// K-in-a-row on an N×N grid. Cells are stored flat, row-major.
type Board struct {
	Size      int      `json:"size"`
	WinLength int      `json:"win_length"`
	Cells     []string `json:"cells"`
	Turn      string   `json:"turn"`
}

func NewBoard(size, winLength int) (*Board, error) {
	board := &Board{}
	if err := board.Reset(size, winLength); err != nil {
		return nil, err
	}

	return board, nil
}

// Reset reinitializes an empty grid. X always moves first.
func (that *Board) Reset(size, winLength int) error {
	if size < MinBoardSize || size > MaxBoardSize {
		return fmt.Errorf("%w: got %d", apperror.ErrBadBoardSize, size)
	}

	if winLength < MinWinLength || winLength > size {
		return fmt.Errorf("%w: got %d for size %d", apperror.ErrBadWinLength, winLength, size)
	}

	that.Size = size
	that.WinLength = winLength
	that.Cells = make([]string, size*size)
	that.Turn = PlayerX

	return nil
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < that.Size && col < that.Size
}

func (that *Board) At(row, col int) string {
	return that.Cells[that.index(row, col)]
}

func (that *Board) IsEmpty(row, col int) bool {
	return that.InBounds(row, col) && that.At(row, col) == EmptyCell
}

// Set writes a mark without any legality checks. It exists for search code
// that explores moves on a private clone and backtracks with Remove;
// live games must go through Apply.
func (that *Board) Set(row, col int, mark string) {
	that.Cells[that.index(row, col)] = mark
}

func (that *Board) Remove(row, col int) {
	that.Cells[that.index(row, col)] = EmptyCell
}

func (that *Board) CountEmpty() int {
	count := 0
	for _, cell := range that.Cells {
		if cell == EmptyCell {
			count++
		}
	}

	return count
}

func (that *Board) IsFull() bool {
	return that.CountEmpty() == 0
}

func (that *Board) Clone() *Board {
	clone := &Board{
		Size:      that.Size,
		WinLength: that.WinLength,
		Cells:     make([]string, len(that.Cells)),
		Turn:      that.Turn,
	}
	copy(clone.Cells, that.Cells)

	return clone
}

// LegalMoves returns every empty coordinate in row-major order.
// An empty result on a non-terminal board means the game is a draw.
func (that *Board) LegalMoves() []Move {
	moves := make([]Move, 0, that.CountEmpty())
	for row := 0; row < that.Size; row++ {
		for col := 0; col < that.Size; col++ {
			if that.At(row, col) == EmptyCell {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// Apply plays mark at move and alternates the side to move.
// The board is left untouched when any check fails.
func (that *Board) Apply(move Move, mark string) error {
	if that.Result() != EmptyCell {
		return apperror.ErrGameFinished
	}

	if !that.InBounds(move.Row, move.Col) {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrOutOfBounds, move.Row, move.Col)
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if !that.IsEmpty(move.Row, move.Col) {
		return apperror.ErrCellOccupied
	}

	that.Set(move.Row, move.Col, mark)
	that.Turn = Opponent(mark)

	return nil
}

// Result scans the whole grid for a completed run of WinLength equal marks.
// Cells are visited row-major and directions in the fixed order right, down,
// down-right, down-left, so the first qualifying run found is deterministic.
// It returns the winning mark, PlayerTie on a full board with no run, or
// EmptyCell while the game is still in progress.
func (that *Board) Result() string {
	for row := 0; row < that.Size; row++ {
		for col := 0; col < that.Size; col++ {
			start := that.At(row, col)
			if start == EmptyCell {
				continue
			}

			for _, dir := range directions {
				if that.runFrom(row, col, dir[0], dir[1], start) {
					return start
				}
			}
		}
	}

	if that.IsFull() {
		return PlayerTie
	}

	return EmptyCell
}

// runFrom reports whether WinLength cells starting at (row, col) and stepping
// by (dRow, dCol) all hold mark. The whole segment must stay on the board.
func (that *Board) runFrom(row, col, dRow, dCol int, mark string) bool {
	endRow := row + (that.WinLength-1)*dRow
	endCol := col + (that.WinLength-1)*dCol
	if !that.InBounds(endRow, endCol) {
		return false
	}

	for step := 1; step < that.WinLength; step++ {
		if that.At(row+step*dRow, col+step*dCol) != mark {
			return false
		}
	}

	return true
}

// String renders the grid with '.' for empty cells, one row per line.
func (that *Board) String() string {
	var builder strings.Builder
	for row := 0; row < that.Size; row++ {
		if row > 0 {
			builder.WriteByte('\n')
		}
		for col := 0; col < that.Size; col++ {
			if col > 0 {
				builder.WriteByte(' ')
			}
			if cell := that.At(row, col); cell == EmptyCell {
				builder.WriteByte('.')
			} else {
				builder.WriteString(cell)
			}
		}
	}

	return builder.String()
}

func (that *Board) index(row, col int) int {
	return row*that.Size + col
}

func Opponent(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}

	return PlayerX
}
