package bench

import (
	"github.com/rs/zerolog/log"
)

// Receives the arena progress. Each worker gets its own Clone, the
// Summary is delivered once, to the listener passed to Start
type ListenerLike interface {
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(info VersusSummaryInfo)
	Clone() ListenerLike
}

type DefaultListener struct{}

func (DefaultListener) OnMoveMade(VersusWorkerInfo)     {}
func (DefaultListener) OnFinishedGame(VersusWorkerInfo) {}
func (DefaultListener) OnFinishedWork(VersusWorkerInfo) {}
func (DefaultListener) Summary(VersusSummaryInfo)       {}

func (d DefaultListener) Clone() ListenerLike {
	return d
}

// Writes finished games and the summary to the global logger
type LogListener struct {
	DefaultListener
}

func (LogListener) OnFinishedGame(info VersusWorkerInfo) {
	event := log.Info().
		Int("worker", info.WorkerID).
		Int("game", info.FinishedGames).
		Int("moves", info.GameMoveNum).
		Int("p1_wins", info.P1Wins).
		Int("p2_wins", info.P2Wins).
		Int("draws", info.Draws)

	if info.Outcome != nil {
		event = event.
			Str("id", info.Outcome.ID.String()).
			Stringer("termination", info.Outcome.Termination).
			Bool("forfeit", info.Outcome.Forfeit)
	}
	event.Msg("game-finished")
}

func (LogListener) OnFinishedWork(info VersusWorkerInfo) {
	log.Debug().
		Int("worker", info.WorkerID).
		Int("games", info.NGames).
		Msg("worker-finished")
}

func (LogListener) Summary(info VersusSummaryInfo) {
	log.Info().
		Int("total", info.TotalGames).
		Str("player1", info.P1Name).
		Int("player1_wins", info.P1Wins).
		Str("player2", info.P2Name).
		Int("player2_wins", info.P2Wins).
		Int("draws", info.Draws).
		Int("forfeits", info.Forfeits).
		Int("first_to_move_wins", info.FirstToMoveWins).
		Msg("arena-summary")
}

func (l LogListener) Clone() ListenerLike {
	return l
}
