package bench

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"github.com/robertrueger/RC4/pkg/engine"
	"github.com/robertrueger/RC4/pkg/grid"
	"github.com/rs/zerolog"
)

// Always plays the leftmost legal column
type lowestPlayer struct{}

func (lowestPlayer) Decide(board *grid.Grid, player grid.Piece) (int, error) {
	moves := board.ValidMoves()
	if len(moves) == 0 {
		return -1, engine.ErrNoLegalMove
	}
	return moves[0], nil
}

func (lowestPlayer) String() string         { return "lowest" }
func (p lowestPlayer) Clone() lowestPlayer { return p }

// Returns a fixed answer, legal or not
type fixedPlayer struct {
	col int
	err error
}

func (p fixedPlayer) Decide(*grid.Grid, grid.Piece) (int, error) { return p.col, p.err }
func (fixedPlayer) String() string                              { return "fixed" }
func (p fixedPlayer) Clone() fixedPlayer                        { return p }

type countingListener struct {
	DefaultListener
	moves    *atomic.Int32
	games    *atomic.Int32
	workers  *atomic.Int32
	summary  *VersusSummaryInfo
	summoned *atomic.Int32
}

func newCountingListener() *countingListener {
	return &countingListener{
		moves:    &atomic.Int32{},
		games:    &atomic.Int32{},
		workers:  &atomic.Int32{},
		summoned: &atomic.Int32{},
	}
}

func (l *countingListener) OnMoveMade(VersusWorkerInfo)     { l.moves.Add(1) }
func (l *countingListener) OnFinishedGame(VersusWorkerInfo) { l.games.Add(1) }
func (l *countingListener) OnFinishedWork(VersusWorkerInfo) { l.workers.Add(1) }

func (l *countingListener) Summary(info VersusSummaryInfo) {
	l.summary = &info
	l.summoned.Add(1)
}

// Clones share the counters
func (l *countingListener) Clone() ListenerLike {
	return l
}

func TestMain(m *testing.M) {
	engine.SetSeedGeneratorFn(func() int64 {
		return 42
	})
	zerolog.SetGlobalLevel(zerolog.Disabled)
	fmt.Printf("Using seed %d\n", engine.SeedGeneratorFn())

	os.Exit(m.Run())
}

func TestPlayGameLowestColumns(t *testing.T) {
	// Both stack the columns from the left, the first player completes
	// the bottom row with its 10th piece
	board := grid.NewDefault()
	outcome, err := PlayGame(context.Background(), board, lowestPlayer{}, lowestPlayer{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	if outcome.Winner != grid.Player1 || outcome.Termination != grid.TerminationPlayer1Won {
		t.Errorf("winner %s (%s), want player 1", outcome.Winner, outcome.Termination)
	}
	if outcome.Forfeit {
		t.Error("unexpected forfeit")
	}
	if len(outcome.Moves) != 19 || board.MoveCount() != 19 {
		t.Errorf("game lasted %d moves, board has %d", len(outcome.Moves), board.MoveCount())
	}
}

func TestPlayGameForfeit(t *testing.T) {
	cases := []struct {
		name   string
		player fixedPlayer
	}{
		{"illegal-column", fixedPlayer{col: 99}},
		{"error", fixedPlayer{col: 0, err: errors.New("no idea")}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			board := grid.NewDefault()
			outcome, err := PlayGame(context.Background(), board, c.player, lowestPlayer{}, nil)
			if err != nil {
				t.Fatal(err)
			}
			if !outcome.Forfeit || outcome.Winner != grid.Player2 || len(outcome.Moves) != 0 {
				t.Errorf("got %+v", outcome)
			}
			if board.MoveCount() != 0 {
				t.Errorf("board changed: %s", board.Notation())
			}
		})
	}
}

func TestPlayGameCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := PlayGame(ctx, grid.NewDefault(), lowestPlayer{}, lowestPlayer{}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err=%v", err)
	}
	if !outcome.IsDraw() || len(outcome.Moves) != 0 {
		t.Errorf("got %+v", outcome)
	}
}

func TestPlayGameOnMove(t *testing.T) {
	moves := make([]grid.Move, 0)
	outcome, err := PlayGame(context.Background(), grid.NewDefault(), lowestPlayer{}, lowestPlayer{},
		func(m grid.Move) { moves = append(moves, m) })
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != len(outcome.Moves) || moves[0] != (grid.Move{Player: grid.Player1, Column: 0}) {
		t.Errorf("callback saw %v", moves)
	}
}

func TestToAgentResult(t *testing.T) {
	win1 := GameOutcome{Winner: grid.Player1}
	win2 := GameOutcome{Winner: grid.Player2}

	if toAgentResult(win1, true) != VersusPl1Win || toAgentResult(win1, false) != VersusPl2Win {
		t.Error("first mover win mapped incorrectly")
	}
	if toAgentResult(win2, true) != VersusPl2Win || toAgentResult(win2, false) != VersusPl1Win {
		t.Error("second mover win mapped incorrectly")
	}
	if toAgentResult(GameOutcome{}, true) != VersusDraw {
		t.Error("draw mapped incorrectly")
	}
}

func TestArenaFirstMoverWins(t *testing.T) {
	listener := newCountingListener()
	arena := NewVersusArena(grid.NewDefault, lowestPlayer{}, lowestPlayer{})
	arena.Setup(7, 3)
	arena.Start(listener)
	arena.Wait()

	if arena.Total() != 7 || arena.FirstToMoveWins() != 7 || arena.SecondToMoveWins() != 0 {
		t.Errorf("total %d, first %d, second %d",
			arena.Total(), arena.FirstToMoveWins(), arena.SecondToMoveWins())
	}
	if arena.P1Wins()+arena.P2Wins() != 7 || arena.Draws() != 0 {
		t.Errorf("p1 %d, p2 %d, draws %d", arena.P1Wins(), arena.P2Wins(), arena.Draws())
	}

	if listener.games.Load() != 7 || listener.workers.Load() != 3 || listener.moves.Load() != 7*19 {
		t.Errorf("games %d, workers %d, moves %d",
			listener.games.Load(), listener.workers.Load(), listener.moves.Load())
	}
	if listener.summoned.Load() != 1 || listener.summary.TotalGames != 7 || listener.summary.Workers != 3 {
		t.Errorf("summary %v delivered %d times", listener.summary, listener.summoned.Load())
	}
}

func TestArenaForfeits(t *testing.T) {
	arena := NewVersusArena(grid.NewDefault, fixedPlayer{col: -1}, lowestPlayer{})
	arena.Setup(6, 2)
	arena.Start(DefaultListener{})
	arena.Wait()

	if arena.P2Wins() != 6 || arena.Forfeits() != 6 {
		t.Errorf("p2 wins %d, forfeits %d", arena.P2Wins(), arena.Forfeits())
	}
}

func TestArenaCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	listener := newCountingListener()
	arena := NewVersusArena(grid.NewDefault, lowestPlayer{}, lowestPlayer{}).WithContext(ctx)
	arena.Setup(10, 2)
	arena.Start(listener)
	arena.Wait()

	if arena.Total() != 0 || listener.workers.Load() != 2 || listener.summoned.Load() != 1 {
		t.Errorf("total %d, workers %d", arena.Total(), listener.workers.Load())
	}
}

func TestArenaEngines(t *testing.T) {
	newGrid := func() *grid.Grid {
		g, _ := grid.New(5, 5)
		return g
	}

	deep := engine.New()
	deep.SetLimits(engine.DefaultLimits().SetDepth(2).SetThreads(2))
	shallow := engine.New()
	shallow.SetLimits(engine.DefaultLimits().SetDepth(0))
	shallow.SetMultithreadPolicy(engine.MultithreadSequential)

	arena := NewVersusArena(newGrid, deep, shallow)
	arena.Setup(4, 2)
	arena.Start(NewArenaListener(LogListener{}, DefaultListener{}))
	arena.Wait()

	if arena.Total() != 4 || arena.Forfeits() != 0 {
		t.Errorf("total %d, forfeits %d", arena.Total(), arena.Forfeits())
	}
	t.Logf("deep %d, shallow %d, draws %d", arena.P1Wins(), arena.P2Wins(), arena.Draws())
}
