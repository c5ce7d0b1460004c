package main

/*

Connect four engine demo

	rc4 -mode best -position 7/7/7/7/7/3x3    engine's column for the side to move
	rc4 -mode duel                            engine against a weaker copy, move by move
	rc4 -mode arena                           many duels on worker goroutines

*/

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/robertrueger/RC4/internal/config"
	"github.com/robertrueger/RC4/internal/render"
	"github.com/robertrueger/RC4/pkg/bench"
	"github.com/robertrueger/RC4/pkg/engine"
	"github.com/robertrueger/RC4/pkg/grid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	mode := flag.String("mode", "best", "One of: best, duel, arena")
	position := flag.String("position", "", "Board notation, empty board by default")
	player := flag.Int("player", 0, "Side to move (1 or 2), inferred from the position by default")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := render.New(os.Stdout, cfg.NoColor)
	switch *mode {
	case "best":
		err = runBest(cfg, r, *position, grid.Piece(*player))
	case "duel":
		err = runDuel(ctx, cfg, r)
	case "arena":
		err = runArena(ctx, cfg)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Str("mode", *mode).Msg("failed")
		os.Exit(1)
	}
}

func setupLogging(cfg *config.Config) {
	level, _ := cfg.LogLevel()
	zerolog.SetGlobalLevel(level)
	if cfg.Log.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.TimeOnly,
			NoColor:    cfg.NoColor,
		})
	}
}

func newEngine(cfg *config.Config, depth int) *engine.Engine {
	e := engine.New()
	limits := engine.DefaultLimits().SetDepth(depth)
	if cfg.Engine.Threads > 0 {
		limits.SetThreads(cfg.Engine.Threads)
	}
	e.SetLimits(limits)
	if cfg.Engine.Policy == "sequential" {
		e.SetMultithreadPolicy(engine.MultithreadSequential)
	}
	return e
}

func newGrid(cfg *config.Config) func() *grid.Grid {
	return func() *grid.Grid {
		// dimensions are validated with the config
		g, _ := grid.New(cfg.Board.Rows, cfg.Board.Cols)
		return g
	}
}

// Player 1 always begins, so equal piece counts mean it's player 1's turn
func sideToMove(board *grid.Grid) grid.Piece {
	if board.MoveCount()%2 == 0 {
		return grid.Player1
	}
	return grid.Player2
}

func runBest(cfg *config.Config, r *render.Renderer, position string, player grid.Piece) error {
	board := newGrid(cfg)()
	if position != "" {
		var err error
		if board, err = grid.FromNotation(position); err != nil {
			return err
		}
	}
	if player == grid.Empty {
		player = sideToMove(board)
	}

	e := newEngine(cfg, cfg.Engine.Depth)
	e.StatsListener().OnColumn(func(col, score int) {
		log.Debug().Int("column", col).Int("score", score).Msg("root-column")
	})

	result, err := e.Search(board, player)
	if err != nil {
		return err
	}

	board.ApplyMove(result.Column, player)
	if err = r.WriteBoard(board); err != nil {
		return err
	}
	fmt.Println(result.String())
	return nil
}

func runDuel(ctx context.Context, cfg *config.Config, r *render.Renderer) error {
	first := newEngine(cfg, cfg.Engine.Depth)
	second := newEngine(cfg, cfg.Arena.OpponentDepth)
	board := newGrid(cfg)()

	fmt.Printf("%s (%s) vs %s (%s)\n", first, r.Symbol(grid.Player1), second, r.Symbol(grid.Player2))
	outcome, err := bench.PlayGame(ctx, board, first, second, func(move grid.Move) {
		_ = r.Printf(move.Player, "%s -> %d\n", r.Symbol(move.Player), move.Column)
		_ = r.WriteBoard(board)
	})
	if err != nil {
		return err
	}

	switch {
	case outcome.IsDraw():
		fmt.Println("draw")
	case outcome.Forfeit:
		return r.Printf(outcome.Winner, "%s wins by forfeit\n", r.Symbol(outcome.Winner))
	default:
		return r.Printf(outcome.Winner, "%s wins after %d moves\n", r.Symbol(outcome.Winner), len(outcome.Moves))
	}
	return nil
}

func runArena(ctx context.Context, cfg *config.Config) error {
	arena := bench.NewVersusArena(
		newGrid(cfg),
		newEngine(cfg, cfg.Engine.Depth),
		newEngine(cfg, cfg.Arena.OpponentDepth),
	).WithContext(ctx)
	arena.Setup(cfg.Arena.Games, cfg.Arena.Workers)

	summary := &summaryListener{}
	arena.Start(bench.NewArenaListener(bench.LogListener{}, summary))
	arena.Wait()

	fmt.Println(summary.info.String())
	return ctx.Err()
}

// Keeps the arena summary for printing
type summaryListener struct {
	bench.DefaultListener
	info bench.VersusSummaryInfo
}

func (s *summaryListener) Summary(info bench.VersusSummaryInfo) {
	s.info = info
}

func (s *summaryListener) Clone() bench.ListenerLike {
	return s
}
