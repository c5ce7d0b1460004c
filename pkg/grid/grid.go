package grid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")
	// Column out of range or already full
	ErrIllegalMove = errors.New("grid: illegal move")
)

// Raised (as a panic value) when the move history doesn't match the board,
// which means the move/undo bookkeeping is broken
type CorruptionError struct {
	Move     Move
	Occupant Piece
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("grid: history corrupted, column %d holds %d but history says %d",
		e.Move.Column, e.Occupant, e.Move.Player)
}

// Connect four board, cells are stored row by row, row 0 being the top one
type Grid struct {
	rows    int
	cols    int
	cells   []Piece
	history []Move
}

// Create an empty board with given dimensions
func New(rows, cols int) (*Grid, error) {
	if rows < MinSize || rows > MaxSize || cols < MinSize || cols > MaxSize {
		return nil, fmt.Errorf("%w: %dx%d, both must be within [%d, %d]",
			ErrInvalidDimensions, rows, cols, MinSize, MaxSize)
	}

	return &Grid{
		rows:    rows,
		cols:    cols,
		cells:   make([]Piece, rows*cols),
		history: make([]Move, 0, rows*cols),
	}, nil
}

// Create an empty board with the classic 6x7 dimensions
func NewDefault() *Grid {
	g, _ := New(DefaultRows, DefaultCols)
	return g
}

// Make a deep copy of the board (has no shared memory with this object)
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		rows:    g.rows,
		cols:    g.cols,
		cells:   make([]Piece, len(g.cells)),
		history: make([]Move, len(g.history), cap(g.history)),
	}
	copy(clone.cells, g.cells)
	copy(clone.history, g.history)
	return clone
}

// Remove every piece and the whole history
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
	g.history = g.history[:0]
}

func (g *Grid) Rows() int {
	return g.rows
}

func (g *Grid) Cols() int {
	return g.cols
}

// Piece at given cell, Empty if out of range
func (g *Grid) At(row, col int) Piece {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Empty
	}
	return g.cells[row*g.cols+col]
}

func (g *Grid) set(row, col int, p Piece) {
	g.cells[row*g.cols+col] = p
}

// Copy of the move history, oldest first
func (g *Grid) History() []Move {
	history := make([]Move, len(g.history))
	copy(history, g.history)
	return history
}

// Number of pieces on the board
func (g *Grid) MoveCount() int {
	return len(g.history)
}

// Most recent move, ok is false on an empty history
func (g *Grid) LastMove() (Move, bool) {
	if len(g.history) == 0 {
		return Move{}, false
	}
	return g.history[len(g.history)-1], true
}

// Checks if a piece can be dropped into given column
func (g *Grid) IsValidMove(col int) bool {
	return col >= 0 && col < g.cols && g.cells[col] == Empty
}

// Columns that still accept a piece, in index order
func (g *Grid) ValidMoves() []int {
	moves := make([]int, 0, g.cols)
	for col := 0; col < g.cols; col++ {
		if g.cells[col] == Empty {
			moves = append(moves, col)
		}
	}
	return moves
}

// Whether the top row is fully occupied
func (g *Grid) IsFull() bool {
	for col := 0; col < g.cols; col++ {
		if g.cells[col] == Empty {
			return false
		}
	}
	return true
}

// Row index of the topmost piece in the column, -1 if the column is empty
func (g *Grid) topRow(col int) int {
	for row := 0; row < g.rows; row++ {
		if g.At(row, col) != Empty {
			return row
		}
	}
	return -1
}

// Drop the player's piece into given column, returns false and leaves
// the board untouched if the move is illegal
func (g *Grid) ApplyMove(col int, player Piece) bool {
	if !player.IsPlayer() || !g.IsValidMove(col) {
		return false
	}

	// Look for the first free slot in the column (bottom-up)
	row := g.rows - 1
	for row > 0 && g.At(row, col) != Empty {
		row--
	}
	g.set(row, col, player)
	g.history = append(g.history, Move{Player: player, Column: col})
	return true
}

// Take back the last n moves. Panics with *CorruptionError if the history
// doesn't match the board
func (g *Grid) Undo(n int) {
	for j := 0; j < n && len(g.history) > 0; j++ {
		move := g.history[len(g.history)-1]
		row := g.topRow(move.Column)

		occupant := Empty
		if row >= 0 {
			occupant = g.At(row, move.Column)
		}
		if occupant != move.Player {
			panic(&CorruptionError{Move: move, Occupant: occupant})
		}

		g.set(row, move.Column, Empty)
		g.history = g.history[:len(g.history)-1]
	}
}

// Plain board dump with column labels, row 0 on top
func (g *Grid) String() string {
	builder := strings.Builder{}

	for col := 0; col < g.cols; col++ {
		builder.WriteString(fmt.Sprintf(" %d", col))
	}
	builder.WriteByte('\n')
	builder.WriteString(strings.Repeat(" -", g.cols))
	builder.WriteByte('\n')

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			builder.WriteByte(' ')
			builder.WriteString(g.At(row, col).String())
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}
