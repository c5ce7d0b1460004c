package grid

import "strconv"

type Piece uint8

const (
	Empty   Piece = 0
	Player1 Piece = 1
	Player2 Piece = 2
)

// Board size limits, same for rows and columns
const (
	MinSize = 4
	MaxSize = 10

	DefaultRows = 6
	DefaultCols = 7
)

// Returns the other player, Empty stays Empty
func (p Piece) Opponent() Piece {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

// Whether this is one of the two players
func (p Piece) IsPlayer() bool {
	return p == Player1 || p == Player2
}

func (p Piece) String() string {
	return strconv.Itoa(int(p))
}

// Single entry of the move history
type Move struct {
	Player Piece
	Column int
}

// Ordered sequence of pieces along a row, column or diagonal
type Line []Piece

// Digit representation of the line, for example "0012100"
func (l Line) String() string {
	buf := make([]byte, len(l))
	for i, p := range l {
		buf[i] = '0' + byte(p)
	}
	return string(buf)
}
