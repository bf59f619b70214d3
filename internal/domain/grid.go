package domain

import "strings"

// Grid is a rows x columns character table.
type Grid [][]rune

// NewGrid allocates a grid with every cell set to fill.
func NewGrid(rows, cols int, fill rune) Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	cells := make([]rune, rows*cols)
	for i := range cells {
		cells[i] = fill
	}

	g := make(Grid, rows)
	for r := range g {
		g[r] = cells[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return g
}

func (g Grid) Rows() int { return len(g) }

func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Column returns column c read top to bottom.
func (g Grid) Column(c int) []rune {
	out := make([]rune, 0, len(g))
	for _, row := range g {
		out = append(out, row[c])
	}
	return out
}

// RowMajor concatenates the rows left to right, top to bottom.
func (g Grid) RowMajor() string {
	var b strings.Builder
	b.Grow(g.Rows() * g.Cols())
	for _, row := range g {
		for _, ch := range row {
			b.WriteRune(ch)
		}
	}
	return b.String()
}
