package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/robertrueger/RC4/pkg/grid"
)

const (
	player1Color = "#E88388"
	player2Color = "#DBAB79"
	emptySymbol  = "."
)

var symbols = [...]string{grid.Empty: emptySymbol, grid.Player1: "X", grid.Player2: "O"}

// Draws boards on a terminal, colours follow the terminal's capabilities
type Renderer struct {
	out *termenv.Output
}

func New(w io.Writer, noColor bool) *Renderer {
	opts := []termenv.OutputOption{}
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

func (r *Renderer) Symbol(p grid.Piece) string {
	return symbols[p]
}

func (r *Renderer) piece(p grid.Piece, last bool) string {
	style := r.out.String(r.Symbol(p))
	if p.IsPlayer() {
		style = style.Foreground(r.out.Color(colorOf(p)))
	}
	if last {
		style = style.Bold().Underline()
	}
	return style.String()
}

// Board with column labels on top, the last move is highlighted
func (r *Renderer) Board(board *grid.Grid) string {
	builder := strings.Builder{}
	lastRow, lastCol := -1, -1
	if move, ok := board.LastMove(); ok {
		lastCol = move.Column
		for row := 0; row < board.Rows(); row++ {
			if board.At(row, lastCol) != grid.Empty {
				lastRow = row
				break
			}
		}
	}

	for col := 0; col < board.Cols(); col++ {
		builder.WriteString(fmt.Sprintf(" %d", col))
	}
	builder.WriteByte('\n')

	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			builder.WriteByte(' ')
			builder.WriteString(r.piece(board.At(row, col), row == lastRow && col == lastCol))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

func (r *Renderer) WriteBoard(board *grid.Grid) error {
	_, err := io.WriteString(r.out, r.Board(board))
	return err
}

// Print a line of text in the colour of the player
func (r *Renderer) Printf(p grid.Piece, format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if p.IsPlayer() {
		text = r.out.String(text).Foreground(r.out.Color(colorOf(p))).String()
	}
	_, err := io.WriteString(r.out, text)
	return err
}

func colorOf(p grid.Piece) string {
	if p == grid.Player2 {
		return player2Color
	}
	return player1Color
}
