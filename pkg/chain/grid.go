package chain

// grid stores the board's cells in row-major order.
type grid struct {
	rows, cols int
	cells      []Cell
}

func newGrid(rows, cols int) *grid {
	return &grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
}

// index returns the linear slice index for p.
func (g *grid) index(p Pos) int { return p.Row*g.cols + p.Col }

func (g *grid) contains(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// at returns the cell at p. Callers check bounds first.
func (g *grid) at(p Pos) *Cell { return &g.cells[g.index(p)] }

func (g *grid) clear() {
	for i := range g.cells {
		g.cells[i].reset()
	}
}
