package engine

import (
	"fmt"

	"github.com/robertrueger/RC4/pkg/grid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Fixed-depth connect four engine: tactical shortcuts first, then a
// recursive search whose root columns may be evaluated in parallel.
// An Engine may be shared by goroutines as long as its settings aren't
// changed during a search
type Engine struct {
	listener          *StatsListener
	limits            *Limits
	multithreadPolicy MultithreadPolicy
}

// Create new engine with default limits and root-parallel search
func New() *Engine {
	return &Engine{
		listener:          &StatsListener{},
		limits:            DefaultLimits(),
		multithreadPolicy: MultithreadRootParallel,
	}
}

// Copy of the engine settings, without the listener
func (e *Engine) Clone() *Engine {
	limits := *e.limits
	return &Engine{
		listener:          &StatsListener{},
		limits:            &limits,
		multithreadPolicy: e.multithreadPolicy,
	}
}

func (e *Engine) SetLimits(limits *Limits) {
	e.limits = limits
}

func (e *Engine) Limits() *Limits {
	return e.limits
}

func (e *Engine) SetMultithreadPolicy(policy MultithreadPolicy) {
	e.multithreadPolicy = policy
}

func (e *Engine) MultithreadPolicy() MultithreadPolicy {
	return e.multithreadPolicy
}

func (e *Engine) StatsListener() *StatsListener {
	return e.listener
}

func (e *Engine) SetListener(listener StatsListener) {
	*e.listener = listener
}

func (e *Engine) ResetListener() {
	e.listener.OnColumn(nil).OnStop(nil)
}

func (e *Engine) String() string {
	return fmt.Sprintf("Engine={Depth=%d, Threads=%d, Policy=%s}",
		e.limits.Depth, e.threads(), e.multithreadPolicy)
}

func (e *Engine) threads() int {
	if e.multithreadPolicy == MultithreadSequential {
		return 1
	}
	return max(1, e.limits.NThreads)
}

// Choose a column for the player, the board is left untouched
func (e *Engine) Decide(board *grid.Grid, player grid.Piece) (int, error) {
	result, err := e.Search(board, player)
	if err != nil {
		return -1, err
	}
	return result.Column, nil
}

// Run the whole decision procedure and report how the column was chosen.
// Blocks until every root column is evaluated, there is no early stop
func (e *Engine) Search(board *grid.Grid, player grid.Piece) (SearchResult, error) {
	if board == nil {
		return SearchResult{}, ErrNilBoard
	}
	if !player.IsPlayer() {
		return SearchResult{}, fmt.Errorf("%w: %d", ErrInvalidPlayer, player)
	}
	depth := e.limits.Depth
	if depth < 0 {
		return SearchResult{}, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	if len(board.ValidMoves()) == 0 {
		return SearchResult{}, fmt.Errorf("%w: %s", ErrNoLegalMove, board.Notation())
	}

	timer := _NewTimer()
	seed := SeedGeneratorFn()
	root := board.Clone()
	result := SearchResult{
		Depth:   depth,
		Threads: e.threads(),
		Policy:  e.multithreadPolicy,
	}

	// Looking for simple solutions
	if col, shortcut, ok := FindShortcut(root, player, newSearcher(seed).rng); ok {
		log.Debug().
			Int("column", col).
			Stringer("shortcut", shortcut).
			Msg("shortcut")

		result.Column = col
		result.Shortcut = shortcut
		result.Nodes = 1
		result.TimeMs = timer.Deltatime()
		e.listener.invokeStop(result)
		return result, nil
	}

	result.Scores, result.Nodes = e.scoreRoot(root, player, depth, seed)
	result.Column = bestColumn(result.Scores)
	result.TimeMs = timer.Deltatime()

	log.Debug().
		Ints("scores", result.Scores).
		Int("column", result.Column).
		Uint64("nodes", result.Nodes).
		Int("ms", result.TimeMs).
		Msg("best-column")

	e.listener.invokeColumns(result.Scores)
	e.listener.invokeStop(result)
	return result, nil
}

// Score every root column. Each column is an independent unit of work with
// its own copy of the board and its own random generator (seeded by column),
// so both policies produce the same table
func (e *Engine) scoreRoot(board *grid.Grid, player grid.Piece, depth int, seed int64) ([]int, uint64) {
	cols := board.Cols()
	scores := make([]int, cols)
	nodes := make([]uint64, cols)

	evaluate := func(col int, owned *grid.Grid) {
		s := newSearcher(seed + int64(col) + 1)
		scores[col] = s.scoreMove(owned, col, player, depth)
		nodes[col] = s.nodes
	}

	if e.multithreadPolicy == MultithreadSequential {
		for col := range cols {
			evaluate(col, board.Clone())
		}
	} else {
		threads := e.threads()
		log.Debug().Int("threads", threads).Int("columns", cols).Int("depth", depth).Msg("root-fan-out")

		g := errgroup.Group{}
		g.SetLimit(threads)
		for col := range cols {
			owned := board.Clone()
			g.Go(func() error {
				evaluate(col, owned)
				return nil
			})
		}
		// tasks never fail, Wait is only the join
		_ = g.Wait()
	}

	total := uint64(0)
	for _, n := range nodes {
		total += n
	}
	return scores, total
}

// Pick a column for the player with a fresh engine searching 'depth' plies
// below the root move, parallel selects the root-parallel policy
func Decide(board *grid.Grid, player grid.Piece, depth int, parallel bool) (int, error) {
	e := New()
	e.SetLimits(DefaultLimits().SetDepth(depth))
	if !parallel {
		e.SetMultithreadPolicy(MultithreadSequential)
	}
	return e.Decide(board, player)
}
