package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidNotation = errors.New("grid: invalid notation")

const (
	notationPlayer1 = 'x'
	notationPlayer2 = 'o'
)

// String notation of the board, much like the FEN representation of a chessboard.
// Rows are written top to bottom and separated by '/', 'x' is player 1,
// 'o' is player 2, and a number stands for that many empty cells.
//
// Examples:
//
// * 7/7/7/7/7/7 (empty 6x7 board)
//
// * 7/7/7/7/3o3/2xxo2
func (g *Grid) Notation() string {
	builder := strings.Builder{}

	for row := 0; row < g.rows; row++ {
		counter := 0
		for col := 0; col < g.cols; col++ {
			switch piece := g.At(row, col); piece {
			case Player1, Player2:
				if counter > 0 {
					builder.WriteString(strconv.Itoa(counter))
					counter = 0
				}
				if piece == Player1 {
					builder.WriteByte(notationPlayer1)
				} else {
					builder.WriteByte(notationPlayer2)
				}
			default:
				counter++
			}
		}

		if counter > 0 {
			builder.WriteString(strconv.Itoa(counter))
		}
		if row != g.rows-1 {
			builder.WriteByte('/')
		}
	}

	return builder.String()
}

// Create a board from given notation. The history is rebuilt column by
// column (bottom-up), so Undo works on the parsed board, but the original
// move order is not recovered
func FromNotation(notation string) (*Grid, error) {
	rowStrs := strings.Split(strings.TrimSpace(notation), "/")
	rows := make([][]Piece, 0, len(rowStrs))

	for i, rowStr := range rowStrs {
		row, err := parseNotationRow(rowStr)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidNotation, i, err)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d",
				ErrInvalidNotation, i, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}

	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	g, err := New(len(rows), cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidNotation, err)
	}

	for col := 0; col < g.cols; col++ {
		// Walk bottom-up, once an empty cell is found, everything above must be empty too
		empty := false
		for row := g.rows - 1; row >= 0; row-- {
			piece := rows[row][col]
			if piece == Empty {
				empty = true
				continue
			}
			if empty {
				return nil, fmt.Errorf("%w: floating piece at row %d, column %d",
					ErrInvalidNotation, row, col)
			}
			g.ApplyMove(col, piece)
		}
	}

	return g, nil
}

func parseNotationRow(s string) ([]Piece, error) {
	row := make([]Piece, 0, MaxSize)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == notationPlayer1:
			row = append(row, Player1)
		case c == notationPlayer2:
			row = append(row, Player2)
		case c >= '0' && c <= '9':
			// Run-lengths may have more than one digit (10 columns)
			j := i
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(s[i:j])
			if err != nil || n == 0 || n > MaxSize-len(row) {
				return nil, fmt.Errorf("bad run-length %q", s[i:j])
			}
			for k := 0; k < n; k++ {
				row = append(row, Empty)
			}
			i = j - 1
		default:
			return nil, fmt.Errorf("unexpected character %q", c)
		}
	}
	return row, nil
}
