package engine

import (
	"math/rand"

	"github.com/robertrueger/RC4/pkg/grid"
)

// State of a single unit of work, owned by one goroutine
type searcher struct {
	rng   *rand.Rand
	nodes uint64
}

func newSearcher(seed int64) *searcher {
	return &searcher{rng: rand.New(rand.NewSource(seed))}
}

// Play the move on the owned board, let the opponent answer (recursively)
// and rate the outcome from the mover's perspective
func (s *searcher) scoreMove(owned *grid.Grid, col int, player grid.Piece, depth int) int {
	if !owned.ApplyMove(col, player) {
		return ImpossibleScore
	}
	result := s.resolve(SearchJob{Board: owned, Player: player.Opponent(), Depth: depth - 1})
	return Rate(result, player)
}

// Recursive thinking: plays the move the engine would choose for job.Player
// on job.Board and returns that board. Tactical shortcuts are played without
// lookahead; with no depth left the board is returned as is
func (s *searcher) resolve(job SearchJob) *grid.Grid {
	s.nodes++
	board := job.Board

	if col, _, ok := FindShortcut(board, job.Player, s.rng); ok {
		board.ApplyMove(col, job.Player)
		return board
	}

	if job.Depth <= 0 {
		return board
	}

	scores := make([]int, board.Cols())
	for col := range scores {
		scores[col] = s.scoreMove(board.Clone(), col, job.Player, job.Depth)
	}

	// On a full board every score is impossible and the move is simply rejected
	board.ApplyMove(bestColumn(scores), job.Player)
	return board
}

// Column with the strictly greatest score, the leftmost one wins ties
func bestColumn(scores []int) int {
	move := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[move] {
			move = i
		}
	}
	return move
}
