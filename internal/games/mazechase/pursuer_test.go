package mazechase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/maze"
)

func TestPursuerMovesEveryIntervalTicks(t *testing.T) {
	g := corridor()
	start := maze.Position{Col: 1, Row: 3}
	target := maze.Position{Col: 1, Row: 1}
	p := NewPursuer(start, start, 4)

	for tick := 1; tick <= 3; tick++ {
		assert.False(t, p.Step(g, target), "tick %d", tick)
		assert.Equal(t, start, p.Pos)
	}

	require.True(t, p.Step(g, target))
	assert.Equal(t, maze.Position{Col: 2, Row: 3}, p.Pos)

	// Next move only after four more ticks.
	for range 3 {
		p.Step(g, target)
	}
	assert.Equal(t, maze.Position{Col: 2, Row: 3}, p.Pos)
	p.Step(g, target)
	assert.Equal(t, maze.Position{Col: 3, Row: 3}, p.Pos)
}

func TestPursuerFollowsShortestPath(t *testing.T) {
	g := corridor()
	target := maze.Position{Col: 1, Row: 1}
	p := NewPursuer(maze.Position{Col: 1, Row: 3}, maze.Position{Col: 1, Row: 3}, 1)

	want, err := maze.ShortestPath(g, p.Pos, target)
	require.NoError(t, err)

	for i := 1; i < len(want); i++ {
		require.True(t, p.Step(g, target))
		assert.Equal(t, want[i], p.Pos)
	}

	// On the target there is nowhere left to go.
	assert.False(t, p.Step(g, target))
	assert.Equal(t, target, p.Pos)
}

func TestPursuerStaysWithoutRoute(t *testing.T) {
	g := maze.MustParse(
		"#####",
		"# # #",
		"#####",
	)
	pos := maze.Position{Col: 1, Row: 1}
	p := NewPursuer(pos, pos, 1)

	assert.False(t, p.Step(g, maze.Position{Col: 3, Row: 1}))
	assert.Equal(t, pos, p.Pos)
}

func TestPursuerIntervalAtLeastOne(t *testing.T) {
	p := NewPursuer(maze.Position{}, maze.Position{}, 0)
	assert.Equal(t, 1, p.Interval())
}

func TestPursuerRespawnSnapsToOpenCell(t *testing.T) {
	g := corridor()
	home := maze.Position{Col: 3, Row: 3}
	p := NewPursuer(home, maze.Position{Col: 1, Row: 1}, 4)

	p.Respawn(g)
	assert.Equal(t, home, p.Pos)

	// Home on a wall resolves to the nearest open cell.
	blocked := NewPursuer(maze.Position{Col: 4, Row: 4}, maze.Position{Col: 1, Row: 1}, 4)
	blocked.Respawn(g)
	assert.True(t, g.Passable(blocked.Pos))
}
