// Package maze generates grid mazes and finds shortest paths through them.
//
// A Grid is a rectangle of Passable/Blocked cells whose perimeter is always
// blocked. Generate carves a spanning tree between anchor cells at odd
// coordinates, then opens extra cells to add loops. ShortestPath runs a
// breadth-first search with a fixed Up, Down, Left, Right neighbor order so
// results are reproducible.
package maze

// Grid stores cells row-major. Reads outside the grid report Blocked.
type Grid struct {
	cols  int
	rows  int
	cells []Cell
}

// NewGrid creates a fully blocked cols×rows grid.
func NewGrid(cols, rows int) *Grid {
	return &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}
}

// Cols returns the grid width.
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the grid height.
func (g *Grid) Rows() int {
	return g.rows
}

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Col >= 0 && p.Col < g.cols && p.Row >= 0 && p.Row < g.rows
}

// At returns the cell at p, or Blocked when p is off the grid.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Blocked
	}
	return g.cells[p.Row*g.cols+p.Col]
}

// Passable reports whether p is on the grid and open.
func (g *Grid) Passable(p Position) bool {
	return g.At(p) == Passable
}

// Set changes the cell at p. Off-grid writes are ignored.
func (g *Grid) Set(p Position, c Cell) {
	if !g.InBounds(p) {
		return
	}
	g.cells[p.Row*g.cols+p.Col] = c
}

// IsPerimeter reports whether p is on the outer border.
func (g *Grid) IsPerimeter(p Position) bool {
	return g.InBounds(p) && (p.Col == 0 || p.Row == 0 || p.Col == g.cols-1 || p.Row == g.rows-1)
}

// Center returns the middle cell, rounding down.
func (g *Grid) Center() Position {
	return Position{Col: g.cols / 2, Row: g.rows / 2}
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{cols: g.cols, rows: g.rows, cells: make([]Cell, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// PassableCells lists open cells in row-major order.
func (g *Grid) PassableCells() []Position {
	out := make([]Position, 0, len(g.cells)/2)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			p := Position{Col: col, Row: row}
			if g.Passable(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// CountPassable returns the number of open cells.
func (g *Grid) CountPassable() int {
	n := 0
	for _, c := range g.cells {
		if c == Passable {
			n++
		}
	}
	return n
}

// NearestPassable returns p if it is open, otherwise the first open cell on
// the smallest square ring around p (scanned row by row). The bool is false
// only for a grid with no open cells.
func (g *Grid) NearestPassable(p Position) (Position, bool) {
	if g.Passable(p) {
		return p, true
	}
	maxR := max(g.cols, g.rows)
	for r := 1; r <= maxR; r++ {
		for dr := -r; dr <= r; dr++ {
			for dc := -r; dc <= r; dc++ {
				if max(abs(dc), abs(dr)) != r {
					continue
				}
				q := Position{Col: p.Col + dc, Row: p.Row + dr}
				if g.Passable(q) {
					return q, true
				}
			}
		}
	}
	return p, false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
