package engine

import (
	"errors"
	"math"

	"github.com/robertrueger/RC4/pkg/grid"
)

// Other types, which didn't fit to the engine or search files

type MultithreadPolicy int

// Which tactical rule decided the move, if any
type Shortcut int

const (
	ShortcutNone Shortcut = iota
	// The player connects four right away
	ShortcutWin
	// The opponent would connect four next turn, take that column
	ShortcutBlock
	// One move creating two threats at once
	ShortcutFork
	// Occupy the column the opponent needs for its own fork
	ShortcutCounterFork
)

func (s Shortcut) String() string {
	switch s {
	case ShortcutWin:
		return "win"
	case ShortcutBlock:
		return "block"
	case ShortcutFork:
		return "fork"
	case ShortcutCounterFork:
		return "counter-fork"
	}
	return "none"
}

const (
	// Score of an illegal column, never chosen unless every column is illegal
	ImpossibleScore int = math.MinInt

	// Weight of four connected pieces, dominates every other pattern on a line
	WinScore int = 32768
)

var (
	ErrNilBoard      = errors.New("engine: nil board")
	ErrInvalidPlayer = errors.New("engine: invalid player")
	ErrInvalidDepth  = errors.New("engine: invalid depth")
	ErrNoLegalMove   = errors.New("engine: no legal move")
)

// Owned snapshot of a position to be resolved by the recursive search.
// Board must not be shared with any other job
type SearchJob struct {
	Board  *grid.Grid
	Player grid.Piece
	Depth  int
}

type SeedGeneratorFnType func() int64
