package bench

import (
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/robertrueger/RC4/pkg/grid"
)

// Anything that can choose a column for a side, e.g. *engine.Engine
type Decider interface {
	Decide(board *grid.Grid, player grid.Piece) (int, error)
}

// Arena contestant, every worker plays with its own clone
type PlayerLike[P any] interface {
	Decider
	fmt.Stringer
	Clone() P
}

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

type VersusArenaStats struct {
	p1Wins           uint32
	p2Wins           uint32
	draws            uint32
	forfeits         uint32
	firstToMoveWins  uint32
	secondToMoveWins uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(atomic.LoadUint32(&vas.p1Wins))
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(atomic.LoadUint32(&vas.p2Wins))
}

func (vas *VersusArenaStats) Draws() int {
	return int(atomic.LoadUint32(&vas.draws))
}

// Games decided by an illegal column or a failing player
func (vas *VersusArenaStats) Forfeits() int {
	return int(atomic.LoadUint32(&vas.forfeits))
}

func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(atomic.LoadUint32(&vas.firstToMoveWins))
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(atomic.LoadUint32(&vas.secondToMoveWins))
}

func (vas *VersusArenaStats) record(result VersusMatchResult, outcome GameOutcome) {
	switch result {
	case VersusPl1Win:
		atomic.AddUint32(&vas.p1Wins, 1)
	case VersusPl2Win:
		atomic.AddUint32(&vas.p2Wins, 1)
	default:
		atomic.AddUint32(&vas.draws, 1)
	}

	switch outcome.Winner {
	case grid.Player1:
		atomic.AddUint32(&vas.firstToMoveWins, 1)
	case grid.Player2:
		atomic.AddUint32(&vas.secondToMoveWins, 1)
	}

	if outcome.Forfeit {
		atomic.AddUint32(&vas.forfeits, 1)
	}
}

type VersusWorkerInfo struct {
	WorkerID      int
	NGames        int
	FinishedGames int
	GameID        uuid.UUID
	GameMoveNum   int
	Moves         []grid.Move
	// Set only in OnFinishedGame
	Outcome *GameOutcome
	// Counters of this worker
	P1Wins int
	P2Wins int
	Draws  int
	P1Name string
	P2Name string
}

type VersusSummaryInfo struct {
	TotalGames       int    `json:"total_games"`
	P1Wins           int    `json:"player1_wins"`
	P2Wins           int    `json:"player2_wins"`
	FirstToMoveWins  int    `json:"first_to_move_wins"`
	SecondToMoveWins int    `json:"second_to_move_wins"`
	Draws            int    `json:"draws"`
	Forfeits         int    `json:"forfeits"`
	Workers          int    `json:"workers"`
	P1Name           string `json:"player1_name"`
	P2Name           string `json:"player2_name"`
}

func (s VersusSummaryInfo) String() string {
	data, err := json.Marshal(s)
	if err != nil {
		return err.Error()
	}
	return string(data)
}

// Result of a single game, from the pieces' perspective
type GameOutcome struct {
	ID uuid.UUID
	// Empty on a draw or an interrupted game
	Winner      grid.Piece
	Termination grid.Termination
	// Loser chose an illegal column or failed to decide
	Forfeit bool
	Moves   []grid.Move
}

func (o GameOutcome) IsDraw() bool {
	return o.Winner == grid.Empty
}

// maps a game outcome to which agent won, given player assignments
func toAgentResult(outcome GameOutcome, p1WentFirst bool) VersusMatchResult {
	if outcome.IsDraw() {
		return VersusDraw
	}

	if p1WentFirst == (outcome.Winner == grid.Player1) {
		return VersusPl1Win
	}
	return VersusPl2Win
}
