package engine

import (
	"strings"

	"github.com/robertrueger/RC4/pkg/grid"
)

// Pattern over the digit alphabet of grid.Line, 'p' stands for the rated player
type windowPattern struct {
	format string
	weight int
}

var windowPatterns = [...]windowPattern{
	// single token
	{"p000", 1},
	{"0p00", 2},
	{"00p0", 2},
	{"000p", 1},
	// double token
	{"pp00", 8},
	{"p0p0", 8},
	{"p00p", 8},
	{"0pp0", 8},
	{"0p0p", 8},
	{"00pp", 8},
	{"0pp00", 16},
	{"00pp0", 16},
	{"0p0p0", 16},
	// triple token
	{"ppp0", 128},
	{"pp0p", 128},
	{"p0pp", 128},
	{"0ppp", 128},
	{"0ppp0", 512},
	// quad token = victory
	{"pppp", WinScore},
}

type compiledPattern struct {
	needle string
	weight int
}

// Patterns with 'p' substituted, indexed by player
var compiledPatterns [3][]compiledPattern

func init() {
	for _, player := range []grid.Piece{grid.Player1, grid.Player2} {
		patterns := make([]compiledPattern, len(windowPatterns))
		for i, pattern := range windowPatterns {
			patterns[i] = compiledPattern{
				needle: strings.ReplaceAll(pattern.format, "p", player.String()),
				weight: pattern.weight,
			}
		}
		compiledPatterns[player] = patterns
	}
}

// Rating of a single line for given player. Occurrences are counted
// non-overlapping, left to right (strings.Count), so e.g. "11111" holds
// only one "1111"
func WindowScore(line grid.Line, player grid.Piece) int {
	return windowScore(line.String(), player)
}

func windowScore(line string, player grid.Piece) int {
	if !player.IsPlayer() {
		return 0
	}

	score := 0
	for _, pattern := range compiledPatterns[player] {
		score += pattern.weight * strings.Count(line, pattern.needle)
	}
	return score
}

func lineRating(line grid.Line, player grid.Piece) int {
	s := line.String()
	return windowScore(s, player) - windowScore(s, player.Opponent())
}

// Calculates a rating for the player's situation: every row, column and
// diagonal, player's patterns minus opponent's patterns.
// Rate(b, Player1) == -Rate(b, Player2)
func Rate(board *grid.Grid, player grid.Piece) int {
	rating := 0

	for i := 0; i < board.Rows(); i++ {
		rating += lineRating(board.Row(i), player)
	}

	for i := 0; i < board.Cols(); i++ {
		rating += lineRating(board.Column(i), player)
	}

	// Diagonals shorter than 4 can't hold any pattern
	for i := 0; i < board.DiagonalCount(); i++ {
		rating += lineRating(board.Diagonal1(i), player)
		rating += lineRating(board.Diagonal2(i), player)
	}

	return rating
}
