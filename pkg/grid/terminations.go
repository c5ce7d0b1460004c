package grid

type Termination int

const (
	TerminationNone       Termination = 0
	TerminationPlayer1Won Termination = 1
	TerminationPlayer2Won Termination = 2
	TerminationDraw       Termination = 4
)

// Number of pieces in a row needed to win
const ConnectLength = 4

func (t Termination) String() string {
	switch t {
	case TerminationNone:
		return "InProgress"
	case TerminationPlayer1Won:
		return "Player1Won"
	case TerminationPlayer2Won:
		return "Player2Won"
	case TerminationDraw:
		return "Draw"
	}
	return "Unknown"
}

// The winning player, Empty for draws and unfinished games
func (t Termination) Winner() Piece {
	switch t {
	case TerminationPlayer1Won:
		return Player1
	case TerminationPlayer2Won:
		return Player2
	}
	return Empty
}

func winTermination(p Piece) Termination {
	if p == Player1 {
		return TerminationPlayer1Won
	}
	return TerminationPlayer2Won
}

// Whether the line contains ConnectLength contiguous pieces of the player
func (l Line) HasFour(p Piece) bool {
	run := 0
	for _, v := range l {
		if v != p {
			run = 0
			continue
		}
		run++
		if run >= ConnectLength {
			return true
		}
	}
	return false
}

// Player 1 is checked first, like the rest of the termination scans
func lineWinner(l Line) Piece {
	if l.HasFour(Player1) {
		return Player1
	}
	if l.HasFour(Player2) {
		return Player2
	}
	return Empty
}

// Full board scan: every row, column and both diagonal families.
// Draw only when the top row is full and nobody connected four
func (g *Grid) Termination() Termination {
	for i := 0; i < g.rows; i++ {
		if p := lineWinner(g.Row(i)); p != Empty {
			return winTermination(p)
		}
	}

	for i := 0; i < g.cols; i++ {
		if p := lineWinner(g.Column(i)); p != Empty {
			return winTermination(p)
		}
	}

	for i := 0; i < g.DiagonalCount(); i++ {
		if p := lineWinner(g.Diagonal1(i)); p != Empty {
			return winTermination(p)
		}
		if p := lineWinner(g.Diagonal2(i)); p != Empty {
			return winTermination(p)
		}
	}

	if g.IsFull() {
		return TerminationDraw
	}
	return TerminationNone
}

// Check if the last move has finished the game, looks only at the lines
// passing through the last placed piece. Never reports a draw
func (g *Grid) QuickTermination() Termination {
	move, ok := g.LastMove()
	if !ok {
		return TerminationNone
	}

	row := g.topRow(move.Column)
	if row < 0 {
		return TerminationNone
	}

	for _, line := range g.Vicinity(row, move.Column) {
		if line.HasFour(move.Player) {
			return winTermination(move.Player)
		}
	}
	return TerminationNone
}

// Whether the game is over (win or draw)
func (g *Grid) IsTerminated() bool {
	return g.Termination() != TerminationNone
}
