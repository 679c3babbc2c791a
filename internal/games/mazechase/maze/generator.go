package maze

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// MinDimension is the smallest width or height that still holds one anchor
// inside a blocked border.
const MinDimension = 3

// ErrInvalidDimensions is returned when a grid is too small to carve.
var ErrInvalidDimensions = errors.New("maze: dimensions too small")

// Rand is the random source used by generation. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Density returns how many extra cells to try opening per grid column at a level.
type Density func(level int) int

// DefaultDensity opens fewer shortcuts as the level rises, so later mazes
// are closer to a pure tree with fewer escape routes.
func DefaultDensity(level int) int {
	switch {
	case level <= 1:
		return 20
	case level <= 3:
		return 15
	case level <= 5:
		return 10
	default:
		return 1
	}
}

// ExtraPaths returns the number of difficulty samples for a grid width and level.
func ExtraPaths(cols, level int, density Density) int {
	if density == nil {
		density = DefaultDensity
	}
	return cols * density(level)
}

type options struct {
	density Density
}

// Option customizes Generate.
type Option func(*options)

// WithDensity replaces DefaultDensity.
func WithDensity(d Density) Option {
	return func(o *options) {
		if d != nil {
			o.density = d
		}
	}
}

// Generate builds a cols×rows maze for the given level.
//
// Anchors at odd (col, row) are joined by a randomized depth-first spanning
// tree starting at (1, 1), then AddDifficulty opens ExtraPaths samples.
// The same rng state always produces the same maze.
func Generate(cols, rows, level int, rng Rand, opts ...Option) (*Grid, error) {
	if cols < MinDimension || rows < MinDimension {
		return nil, fmt.Errorf("generate %dx%d: %w", cols, rows, ErrInvalidDimensions)
	}

	o := options{density: DefaultDensity}
	for _, opt := range opts {
		opt(&o)
	}

	g := NewGrid(cols, rows)
	placeAnchors(g)
	carve(g, rng)
	AddDifficulty(g, ExtraPaths(cols, level, o.density), rng)

	return g, nil
}

// placeAnchors opens every cell at odd offsets from (1, 1), stopping short of
// the last row and column so the border stays blocked for even sizes.
func placeAnchors(g *Grid) {
	for row := 1; row < g.rows-1; row += 2 {
		for col := 1; col < g.cols-1; col += 2 {
			g.Set(Position{Col: col, Row: row}, Passable)
		}
	}
}

// carve runs the recursive backtracker over anchors, opening the wall cell
// between each anchor and the neighbor it moves to.
func carve(g *Grid, rng Rand) {
	start := Position{Col: 1, Row: 1}
	visited := mapset.New[Position]()
	visited.Put(start)
	stack := []Position{start}

	candidates := make([]Position, 0, 4)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range Directions {
			dc, dr := d.Delta()
			next := Position{Col: curr.Col + 2*dc, Row: curr.Row + 2*dr}
			if g.Passable(next) && !visited.Has(next) {
				candidates = append(candidates, next)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		g.Set(Position{Col: (curr.Col + next.Col) / 2, Row: (curr.Row + next.Row) / 2}, Passable)
		visited.Put(next)
		stack = append(stack, next)
	}
}

// AddDifficulty samples interior cells attempts times and opens each blocked
// one that touches an open cell. Returns how many cells were opened.
//
// A blocked cell with no open neighbor stays shut: opening it would leave an
// island unreachable from the rest of the maze. Samples that hit such a cell,
// an open cell or a repeat open nothing, so the result is usually below
// attempts (ExtraPaths).
func AddDifficulty(g *Grid, attempts int, rng Rand) int {
	if g.cols < MinDimension || g.rows < MinDimension {
		return 0
	}

	opened := 0
	for range attempts {
		p := Position{
			Col: 1 + rng.Intn(g.cols-2),
			Row: 1 + rng.Intn(g.rows-2),
		}
		if g.At(p) != Blocked || !hasOpenNeighbor(g, p) {
			continue
		}
		g.Set(p, Passable)
		opened++
	}
	return opened
}

func hasOpenNeighbor(g *Grid, p Position) bool {
	for _, d := range Directions {
		if g.Passable(p.Step(d)) {
			return true
		}
	}
	return false
}
