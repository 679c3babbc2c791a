package mazechase

import "github.com/vovakirdan/tui-mazechase/internal/games/mazechase/maze"

// AgentView is the agent state exposed for drawing.
type AgentView struct {
	Pos   maze.Position
	Dir   maze.Direction
	Score int
}

// Snapshot captures everything the presentation layer draws for a tick.
// Grid is shared with the round and must not be modified.
type Snapshot struct {
	Tick     uint64
	Level    int
	State    RoundState
	Grid     *maze.Grid
	Agent    AgentView
	Pursuers []maze.Position
	Coin     maze.Position
	Pellets  []maze.Position
}

// Snapshot returns the current round state.
func (r *Round) Snapshot() Snapshot {
	pursuers := make([]maze.Position, len(r.pursuers))
	for i, p := range r.pursuers {
		pursuers[i] = p.Pos
	}

	return Snapshot{
		Tick:  r.tick,
		Level: r.level,
		State: r.state,
		Grid:  r.grid,
		Agent: AgentView{
			Pos:   r.agent.Pos,
			Dir:   r.agent.Dir,
			Score: r.agent.Score,
		},
		Pursuers: pursuers,
		Coin:     r.coin,
		Pellets:  r.pellets.Positions(),
	}
}
