package engine

import (
	"math/rand"
	"testing"

	"github.com/robertrueger/RC4/pkg/grid"
)

func TestFindShortcut(t *testing.T) {
	cases := []struct {
		name     string
		notation string
		player   grid.Piece
		col      int
		shortcut Shortcut
	}{
		{"win", "7/7/7/7/7/xxx4", grid.Player1, 3, ShortcutWin},
		{"block", "7/7/7/7/7/xxx4", grid.Player2, 3, ShortcutBlock},
		{"fork", "7/7/7/7/7/1xx4", grid.Player1, 3, ShortcutFork},
		{"counter-fork", "7/7/7/7/7/1xx4", grid.Player2, 3, ShortcutCounterFork},
		{"vertical-win", "7/7/7/o6/o6/oxx4", grid.Player2, 0, ShortcutWin},
		// column 1 would bind, but lets the opponent connect on top of it
		{"self-damaging", "7/7/2xx3/o1ox3/xoxo3/oxoxo2", grid.Player1, -1, ShortcutNone},
		{"quiet", "7/7/7/7/7/3x3", grid.Player2, -1, ShortcutNone},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			board := mustParse(t, c.notation)
			rng := rand.New(rand.NewSource(7))

			col, shortcut, ok := FindShortcut(board, c.player, rng)
			if ok != (c.shortcut != ShortcutNone) || col != c.col || shortcut != c.shortcut {
				t.Errorf("got (%d, %s, %v), want (%d, %s)", col, shortcut, ok, c.col, c.shortcut)
			}
			if board.Notation() != c.notation || board.MoveCount() != mustParse(t, c.notation).MoveCount() {
				t.Errorf("board changed to %s", board.Notation())
			}
		})
	}
}

func TestShortcutPriority(t *testing.T) {
	// both can win, own win comes before the block
	board := mustParse(t, "7/7/7/7/7/xxx1ooo")
	col, shortcut, _ := FindShortcut(board, grid.Player2, nil)
	if col != 3 || shortcut != ShortcutWin {
		t.Errorf("got %d (%s), want 3 (win)", col, shortcut)
	}
}

func TestInstantVictoryOrder(t *testing.T) {
	// two winning columns, nil generator scans left to right
	board := mustParse(t, "7/7/7/7/7/1xxx3")
	if col, ok := InstantVictory(board, grid.Player1, nil); !ok || col != 0 {
		t.Errorf("got %d, %v, want 0", col, ok)
	}

	// any generator picks one of them
	for seed := int64(0); seed < 20; seed++ {
		col, ok := InstantVictory(board, grid.Player1, rand.New(rand.NewSource(seed)))
		if !ok || (col != 0 && col != 4) {
			t.Errorf("seed %d: got %d, %v", seed, col, ok)
		}
	}

	if _, ok := InstantVictory(board, grid.Player2, nil); ok {
		t.Error("player 2 can't win here")
	}
}

func TestDoubleBindFullColumns(t *testing.T) {
	board := mustParse(t, "xxoo/ooxx/xxoo/ooxx")
	if _, ok := DoubleBind(board, grid.Player1, nil); ok {
		t.Error("double bind on a full board")
	}
}

func TestColumnOrderIsPermutation(t *testing.T) {
	order := columnOrder(9, rand.New(rand.NewSource(1)))
	seen := make([]bool, 9)
	for _, col := range order {
		if seen[col] {
			t.Fatalf("column %d repeated in %v", col, order)
		}
		seen[col] = true
	}
}
