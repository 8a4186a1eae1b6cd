package bot

import (
	"sync"

	"github.com/gridgames/kinarow-backend/internal/game"
)

// powersOfTen holds the weight for a window with n own marks: 10^(n-1).
// Indexed up to the maximum win length of 6.
var powersOfTen = [...]int{1, 10, 100, 1_000, 10_000, 100_000}

type windowsKey struct {
	size      int
	winLength int
}

// Window index lists are immutable once built, so they are computed once per
// (size, winLength) pair and shared.
var windowsCache = struct {
	mu    sync.Mutex
	table map[windowsKey][][]int
}{table: make(map[windowsKey][][]int)}

// evaluate scores the board from mark's point of view using partial-line
// potential: every window of winLength cells that only one player occupies
// contributes 10^(marks-1) toward that player. Mixed windows can no longer
// be completed by either side and are skipped.
func evaluate(board *game.Board, mark string) int {
	opponent := game.Opponent(mark)

	score := 0
	for _, window := range windowsFor(board.Size, board.WinLength) {
		mine, theirs := 0, 0
		for _, idx := range window {
			switch board.Cells[idx] {
			case mark:
				mine++
			case opponent:
				theirs++
			}
		}

		if mine > 0 && theirs > 0 {
			continue
		}

		if mine > 0 {
			score += powersOfTen[mine-1]
		} else if theirs > 0 {
			score -= powersOfTen[theirs-1]
		}
	}

	return score
}

func windowsFor(size, winLength int) [][]int {
	key := windowsKey{size: size, winLength: winLength}

	windowsCache.mu.Lock()
	defer windowsCache.mu.Unlock()

	if windows, ok := windowsCache.table[key]; ok {
		return windows
	}

	windows := buildWindows(size, winLength)
	windowsCache.table[key] = windows

	return windows
}

// buildWindows enumerates every run of winLength cells on a size×size grid,
// as flat row-major indices, covering rows, columns and both diagonals.
func buildWindows(size, winLength int) [][]int {
	var windows [][]int

	appendRun := func(row, col, dRow, dCol int) {
		window := make([]int, winLength)
		for step := 0; step < winLength; step++ {
			window[step] = (row+step*dRow)*size + (col + step*dCol)
		}
		windows = append(windows, window)
	}

	for row := 0; row < size; row++ {
		for col := 0; col <= size-winLength; col++ {
			appendRun(row, col, 0, 1)
		}
	}

	for col := 0; col < size; col++ {
		for row := 0; row <= size-winLength; row++ {
			appendRun(row, col, 1, 0)
		}
	}

	for row := 0; row <= size-winLength; row++ {
		for col := 0; col <= size-winLength; col++ {
			appendRun(row, col, 1, 1)
		}
	}

	for row := 0; row <= size-winLength; row++ {
		for col := winLength - 1; col < size; col++ {
			appendRun(row, col, 1, -1)
		}
	}

	return windows
}
