package mazechase

import "github.com/vovakirdan/tui-mazechase/internal/games/mazechase/maze"

// Agent is the player-controlled runner.
type Agent struct {
	Pos   maze.Position
	Dir   maze.Direction
	Score int // Pellets eaten, kept across levels
}

// AttemptMove steps one cell in the current direction.
// Running into a wall (or off the grid) halts the agent: Dir becomes None
// until the player steers again. A halted agent does not move.
func (a *Agent) AttemptMove(g *maze.Grid) bool {
	if a.Dir == maze.None {
		return false
	}

	next := a.Pos.Step(a.Dir)
	if !g.Passable(next) {
		a.Dir = maze.None
		return false
	}

	a.Pos = next
	return true
}

// EatPellet consumes the pellet under the agent, if any.
func (a *Agent) EatPellet(pellets *PelletSet) bool {
	if !pellets.Eat(a.Pos) {
		return false
	}
	a.Score++
	return true
}
