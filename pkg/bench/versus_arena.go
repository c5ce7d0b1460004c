package bench

import (
	"context"
	"math/rand"

	"github.com/robertrueger/RC4/pkg/engine"
	"github.com/robertrueger/RC4/pkg/grid"
	"golang.org/x/sync/errgroup"
)

/*
Arena benchmark subpackage, allows to play a series of games between two
different players (usually engines with different limits or policies).
*/

type VersusArena[A PlayerLike[A], B PlayerLike[B]] struct {
	VersusArenaStats
	Player1  A
	Player2  B
	NGames   int
	NWorkers int
	newGrid  func() *grid.Grid
	ctx      context.Context
	done     chan struct{}
}

// Create an arena, newGrid supplies the starting board of every game
func NewVersusArena[A PlayerLike[A], B PlayerLike[B]](newGrid func() *grid.Grid, player1 A, player2 B) *VersusArena[A, B] {
	return &VersusArena[A, B]{
		Player1:  player1,
		Player2:  player2,
		NGames:   100,
		NWorkers: 2,
		newGrid:  newGrid,
		ctx:      context.Background(),
	}
}

// Workers stop between moves once ctx is done, the interrupted game isn't counted
func (va *VersusArena[A, B]) WithContext(ctx context.Context) *VersusArena[A, B] {
	va.ctx = ctx
	return va
}

func (va *VersusArena[A, B]) Setup(nGames, nWorkers int) {
	va.NGames = max(nGames, 0)
	va.NWorkers = max(nWorkers, 1)
}

// Block until every worker finished and the summary was delivered
func (va *VersusArena[A, B]) Wait() {
	if va.done != nil {
		<-va.done
	}
}

// Start equally distributed work between worker goroutines, returns immediately
func (va *VersusArena[A, B]) Start(listener ListenerLike) {
	if listener == nil {
		listener = DefaultListener{}
	}
	va.VersusArenaStats = VersusArenaStats{}
	va.done = make(chan struct{})

	nGames := va.NGames / va.NWorkers
	rest := va.NGames % va.NWorkers
	seed := engine.SeedGeneratorFn()
	g := errgroup.Group{}

	for i := range va.NWorkers {
		delta := 0
		if rest > 0 {
			delta = 1
			rest--
		}

		// Always use a clone, to avoid race conditions when cloning
		w := &versusWorker[A, B]{
			arena:    va,
			id:       i,
			nGames:   nGames + delta,
			p1:       va.Player1.Clone(),
			p2:       va.Player2.Clone(),
			listener: listener.Clone(),
			rng:      rand.New(rand.NewSource(seed + int64(i))),
		}
		g.Go(w.run)
	}

	go func() {
		_ = g.Wait()
		listener.Summary(VersusSummaryInfo{
			TotalGames:       va.Total(),
			P1Wins:           va.P1Wins(),
			P2Wins:           va.P2Wins(),
			FirstToMoveWins:  va.FirstToMoveWins(),
			SecondToMoveWins: va.SecondToMoveWins(),
			Draws:            va.Draws(),
			Forfeits:         va.Forfeits(),
			Workers:          va.NWorkers,
			P1Name:           va.Player1.String(),
			P2Name:           va.Player2.String(),
		})
		close(va.done)
	}()
}

type versusWorker[A PlayerLike[A], B PlayerLike[B]] struct {
	arena    *VersusArena[A, B]
	id       int
	nGames   int
	p1       A
	p2       B
	listener ListenerLike
	rng      *rand.Rand
	local    VersusArenaStats
}

func (w *versusWorker[A, B]) info(finished int) VersusWorkerInfo {
	return VersusWorkerInfo{
		WorkerID:      w.id,
		NGames:        w.nGames,
		FinishedGames: finished,
		P1Wins:        w.local.P1Wins(),
		P2Wins:        w.local.P2Wins(),
		Draws:         w.local.Draws(),
		P1Name:        w.p1.String(),
		P2Name:        w.p2.String(),
	}
}

func (w *versusWorker[A, B]) run() error {
	ctx := w.arena.ctx

	for i := range w.nGames {
		// Randomly choose who's going first
		p1WentFirst := w.rng.Intn(2) == 0
		var first, second Decider = w.p1, w.p2
		if !p1WentFirst {
			first, second = w.p2, w.p1
		}

		board := w.arena.newGrid()
		info := w.info(i)
		onMove := func(move grid.Move) {
			info.Moves = append(info.Moves, move)
			info.GameMoveNum = len(info.Moves)
			w.listener.OnMoveMade(info)
		}

		outcome, err := PlayGame(ctx, board, first, second, onMove)
		if err != nil {
			break
		}

		result := toAgentResult(outcome, p1WentFirst)
		w.arena.record(result, outcome)
		w.local.record(result, outcome)

		info = w.info(i + 1)
		info.GameID = outcome.ID
		info.Moves = outcome.Moves
		info.GameMoveNum = len(outcome.Moves)
		info.Outcome = &outcome
		w.listener.OnFinishedGame(info)
	}

	w.listener.OnFinishedWork(w.info(w.local.Total()))
	return nil
}
