package mazechase

import (
	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/maze"
)

// Pursuer chases a target along the shortest path, stepping once every
// Interval ticks. Each pursuer keeps its own throttle so speeds can differ.
type Pursuer struct {
	Pos      maze.Position
	home     maze.Position // Configured spawn corner, before snapping to an open cell
	interval int
	counter  int
}

// NewPursuer creates a pursuer at pos that moves every interval ticks.
func NewPursuer(home, pos maze.Position, interval int) *Pursuer {
	return &Pursuer{
		Pos:      pos,
		home:     home,
		interval: max(1, interval),
	}
}

// Step advances the throttle and, on every Interval-th call, moves one cell
// toward target. With no route the pursuer stays put.
func (p *Pursuer) Step(g *maze.Grid, target maze.Position) bool {
	p.counter++
	if p.counter%p.interval != 0 {
		return false
	}

	path, err := maze.ShortestPath(g, p.Pos, target)
	if err != nil || len(path) < 2 {
		return false
	}

	p.Pos = path[1]
	return true
}

// Respawn moves the pursuer back to the open cell nearest its spawn corner.
func (p *Pursuer) Respawn(g *maze.Grid) {
	if pos, ok := g.NearestPassable(p.home); ok {
		p.Pos = pos
	}
}

// Interval returns how many ticks pass between steps.
func (p *Pursuer) Interval() int {
	return p.interval
}
