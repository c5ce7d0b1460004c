package engine

import (
	"math/rand"

	"github.com/robertrueger/RC4/pkg/grid"
)

// Columns in the order the tactical checks try them. With a nil generator
// the order is ascending, otherwise it's shuffled, so that the choice between
// equally good columns varies from game to game
func columnOrder(cols int, rng *rand.Rand) []int {
	order := make([]int, cols)
	for i := range order {
		order[i] = i
	}
	if rng != nil {
		rng.Shuffle(cols, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}
	return order
}

// Tries the move, checks if it connected four and takes it back
func winsWith(board *grid.Grid, col int, player grid.Piece) bool {
	if !board.ApplyMove(col, player) {
		return false
	}
	result := board.QuickTermination()
	board.Undo(1)
	return result.Winner() == player
}

// Look for a simple solution in this order:
//
// 1. player connects four right away
//
// 2. opponent would connect four next turn, block it
//
// 3. player can set up a double bind
//
// 4. opponent could set up a double bind, take its column first
//
// The board is restored after the call.
func FindShortcut(board *grid.Grid, player grid.Piece, rng *rand.Rand) (int, Shortcut, bool) {
	enemy := player.Opponent()

	if col, ok := InstantVictory(board, player, rng); ok {
		return col, ShortcutWin, true
	}

	if col, ok := InstantVictory(board, enemy, rng); ok {
		return col, ShortcutBlock, true
	}

	if col, ok := DoubleBind(board, player, rng); ok {
		return col, ShortcutFork, true
	}

	if col, ok := DoubleBind(board, enemy, rng); ok {
		return col, ShortcutCounterFork, true
	}

	return -1, ShortcutNone, false
}

// Checks if it is possible for player to win instantly, returns the first
// winning column found
func InstantVictory(board *grid.Grid, player grid.Piece, rng *rand.Rand) (int, bool) {
	for _, col := range columnOrder(board.Cols(), rng) {
		if winsWith(board, col, player) {
			return col, true
		}
	}
	return -1, false
}

// Checks if player can construct a double bind: a move after which two
// other columns would connect four, so the opponent can block only one.
// Moves letting the opponent win on top of the new piece are skipped
func DoubleBind(board *grid.Grid, player grid.Piece, rng *rand.Rand) (int, bool) {
	enemy := player.Opponent()
	columns := columnOrder(board.Cols(), rng)

	for _, col := range columns {
		if !board.ApplyMove(col, player) {
			continue
		}

		// Did I help my enemy?
		if winsWith(board, col, enemy) {
			board.Undo(1)
			continue
		}

		binds := 0
		for _, col2 := range columns {
			if col2 == col || !winsWith(board, col2, player) {
				continue
			}
			binds++
			if binds >= 2 {
				board.Undo(1)
				return col, true
			}
		}

		board.Undo(1)
	}
	return -1, false
}
