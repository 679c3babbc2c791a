package mazechase

import (
	"cmp"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/maze"
)

// PelletSet holds the uneaten pellets of the current level.
type PelletSet struct {
	set mapset.Set[maze.Position]
}

// NewPelletSet places one pellet on every open cell of g.
func NewPelletSet(g *maze.Grid) *PelletSet {
	set := mapset.New[maze.Position]()
	for _, p := range g.PassableCells() {
		set.Put(p)
	}
	return &PelletSet{set: set}
}

// Eat removes the pellet at p. Returns false if there was none.
func (ps *PelletSet) Eat(p maze.Position) bool {
	if !ps.set.Has(p) {
		return false
	}
	ps.set.Remove(p)
	return true
}

// Has reports whether a pellet lies at p.
func (ps *PelletSet) Has(p maze.Position) bool {
	return ps.set.Has(p)
}

// Len returns the number of pellets left.
func (ps *PelletSet) Len() int {
	return ps.set.Size()
}

// Positions lists the remaining pellets in row-major order.
func (ps *PelletSet) Positions() []maze.Position {
	out := make([]maze.Position, 0, ps.set.Size())
	ps.set.Each(func(p maze.Position) {
		out = append(out, p)
	})
	slices.SortFunc(out, func(a, b maze.Position) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return out
}
