package bench

import (
	"context"

	"github.com/google/uuid"
	"github.com/robertrueger/RC4/pkg/grid"
	"github.com/rs/zerolog/log"
)

// Plays a single game on the board, first moves with grid.Player1 pieces.
// A player returning an error or an illegal column loses immediately.
// onMove (may be nil) is called after every applied move. When ctx is done
// the game stops between moves and ctx.Err() is returned with the partial outcome
func PlayGame(ctx context.Context, board *grid.Grid, first, second Decider, onMove func(grid.Move)) (GameOutcome, error) {
	outcome := GameOutcome{
		ID:    uuid.New(),
		Moves: make([]grid.Move, 0, board.Rows()*board.Cols()),
	}
	players := [...]Decider{first, second}
	piece := grid.Player1

	for !board.IsTerminated() {
		select {
		case <-ctx.Done():
			return outcome, ctx.Err()
		default:
			// continue
		}

		current := players[piece-grid.Player1]
		col, err := current.Decide(board, piece)
		if err == nil && !board.ApplyMove(col, piece) {
			err = grid.ErrIllegalMove
		}
		if err != nil {
			log.Warn().
				Err(err).
				Str("game", outcome.ID.String()).
				Int("column", col).
				Stringer("player", piece).
				Msg("forfeit")

			outcome.Winner = piece.Opponent()
			outcome.Forfeit = true
			return outcome, nil
		}

		move := grid.Move{Player: piece, Column: col}
		outcome.Moves = append(outcome.Moves, move)
		if onMove != nil {
			onMove(move)
		}
		piece = piece.Opponent()
	}

	outcome.Termination = board.Termination()
	outcome.Winner = outcome.Termination.Winner()
	return outcome, nil
}
