package grid

// Returns row n (left to right), empty line if out of range
func (g *Grid) Row(n int) Line {
	if n < 0 || n >= g.rows {
		return Line{}
	}
	line := make(Line, g.cols)
	copy(line, g.cells[n*g.cols:(n+1)*g.cols])
	return line
}

// Returns column n (top to bottom), empty line if out of range
func (g *Grid) Column(n int) Line {
	if n < 0 || n >= g.cols {
		return Line{}
	}
	line := make(Line, g.rows)
	for row := 0; row < g.rows; row++ {
		line[row] = g.At(row, n)
	}
	return line
}

// Number of diagonals in each of the two families
func (g *Grid) DiagonalCount() int {
	return g.rows + g.cols - 1
}

// Bottom-left to top-right diagonals. Index n starts on the left edge at
// row n, then continues along the bottom edge
func (g *Grid) Diagonal1(n int) Line {
	var row, col int
	switch {
	case n >= 0 && n < g.rows:
		row, col = n, 0
	case n >= g.rows && n < g.DiagonalCount():
		row, col = g.rows-1, n-g.rows+1
	default:
		return Line{}
	}

	line := make(Line, 0, min(g.rows, g.cols))
	for row >= 0 && col < g.cols {
		line = append(line, g.At(row, col))
		row--
		col++
	}
	return line
}

// Bottom-right to top-left diagonals. Index n starts on the right edge at
// row n, then continues along the bottom edge
func (g *Grid) Diagonal2(n int) Line {
	var row, col int
	switch {
	case n >= 0 && n < g.rows:
		row, col = n, g.cols-1
	case n >= g.rows && n < g.DiagonalCount():
		row, col = g.rows-1, g.cols-(n-g.rows+2)
	default:
		return Line{}
	}

	line := make(Line, 0, min(g.rows, g.cols))
	for row >= 0 && col >= 0 {
		line = append(line, g.At(row, col))
		row--
		col--
	}
	return line
}

// The row, column and both diagonals passing through given cell
func (g *Grid) Vicinity(row, col int) [4]Line {
	return [4]Line{
		g.Row(row),
		g.Column(col),
		g.Diagonal1(row + col),
		g.Diagonal2(row + g.cols - 1 - col),
	}
}
