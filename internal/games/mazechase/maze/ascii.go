package maze

import (
	"fmt"
	"strings"
)

// String draws the grid with '#' for blocked and ' ' for open cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.cols + 1) * g.rows)

	for row := 0; row < g.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.cols; col++ {
			if g.Passable(Position{Col: col, Row: row}) {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('#')
			}
		}
	}
	return sb.String()
}

// Parse builds a grid from text rows where '#' is blocked and any other
// byte is open. All rows must have the same width.
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("parse: empty layout: %w", ErrInvalidDimensions)
	}

	cols := len(rows[0])
	g := NewGrid(cols, len(rows))
	for r, line := range rows {
		if len(line) != cols {
			return nil, fmt.Errorf("parse: row %d has width %d, expected %d: %w", r, len(line), cols, ErrInvalidDimensions)
		}
		for c := 0; c < cols; c++ {
			if line[c] != '#' {
				g.Set(Position{Col: c, Row: r}, Passable)
			}
		}
	}
	return g, nil
}

// MustParse is Parse for fixed layouts known to be valid.
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows...)
	if err != nil {
		panic(err)
	}
	return g
}
