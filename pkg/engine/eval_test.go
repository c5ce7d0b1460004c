package engine

import (
	"math/rand"
	"testing"

	"github.com/robertrueger/RC4/pkg/grid"
)

func lineOf(s string) grid.Line {
	line := make(grid.Line, len(s))
	for i, c := range s {
		line[i] = grid.Piece(c - '0')
	}
	return line
}

func TestWindowScore(t *testing.T) {
	cases := []struct {
		line   string
		player grid.Piece
		want   int
	}{
		{"1000", grid.Player1, 1},
		{"1000", grid.Player2, 0},
		{"1100", grid.Player1, 8},
		{"0110", grid.Player1, 8},
		{"01100", grid.Player1, 32},
		{"0111", grid.Player1, 128},
		{"01110", grid.Player1, 768},
		{"1111", grid.Player1, WinScore},
		// counted once, occurrences don't overlap
		{"11111", grid.Player1, WinScore},
		{"0101010", grid.Player1, 32},
		{"0010000", grid.Player1, 5},
		{"000000", grid.Player1, 0},
		{"2220", grid.Player2, 128},
		{"1111", grid.Empty, 0},
	}

	for _, c := range cases {
		if got := WindowScore(lineOf(c.line), c.player); got != c.want {
			t.Errorf("WindowScore(%s, %d) = %d, want %d", c.line, c.player, got, c.want)
		}
	}
}

func TestRate(t *testing.T) {
	cases := []struct {
		notation string
		want     int
	}{
		{"7/7/7/7/7/7", 0},
		{"7/7/7/7/7/3x3", 9},
		{"7/7/7/7/3o3/2xxo2", -7},
		{"4/4/4/x3", 3},
		{"4/4/4/1x2", 3},
	}

	for _, c := range cases {
		board := mustParse(t, c.notation)
		if got := Rate(board, grid.Player1); got != c.want {
			t.Errorf("Rate(%s, P1) = %d, want %d", c.notation, got, c.want)
		}
		if got := Rate(board, grid.Player2); got != -c.want {
			t.Errorf("Rate(%s, P2) = %d, want %d", c.notation, got, -c.want)
		}
	}
}

func TestRateAntisymmetric(t *testing.T) {
	r := rand.New(rand.NewSource(11))

	for i := 0; i < 300; i++ {
		rows := grid.MinSize + r.Intn(grid.MaxSize-grid.MinSize+1)
		cols := grid.MinSize + r.Intn(grid.MaxSize-grid.MinSize+1)
		board, err := grid.New(rows, cols)
		if err != nil {
			t.Fatal(err)
		}

		player := grid.Player1
		for n := r.Intn(rows * cols); n > 0 && !board.IsFull(); n-- {
			moves := board.ValidMoves()
			board.ApplyMove(moves[r.Intn(len(moves))], player)
			player = player.Opponent()
		}

		p1, p2 := Rate(board, grid.Player1), Rate(board, grid.Player2)
		if p1 != -p2 {
			t.Fatalf("%s: Rate P1 %d, P2 %d", board.Notation(), p1, p2)
		}
	}
}

func TestRateWinDominates(t *testing.T) {
	// a connected four outweighs any number of lesser patterns on the board
	board := mustParse(t, "7/7/o6/o6/oxx4/oxx4")
	if got := Rate(board, grid.Player2); got < WinScore/2 {
		t.Errorf("Rate = %d, want a winning score", got)
	}
}
