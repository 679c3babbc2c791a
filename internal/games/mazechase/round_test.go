package mazechase

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-mazechase/internal/config"
	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/maze"
)

func newTestRound(t *testing.T, cfg config.MazeChaseConfig, seed int64) *Round {
	t.Helper()
	r, err := NewRound(cfg, 1, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return r
}

// parkPursuers moves every pursuer to the open cell farthest from the agent,
// skipping the excluded cells.
func parkPursuers(r *Round, exclude ...maze.Position) {
	var spot maze.Position
	best := -1
	for _, p := range r.grid.PassableCells() {
		if slices.Contains(exclude, p) {
			continue
		}
		if d := maze.Distance(r.grid, r.agent.Pos, p); d > best {
			best, spot = d, p
		}
	}
	for _, p := range r.pursuers {
		p.Pos = spot
	}
}

func TestNewRoundPlacement(t *testing.T) {
	cfg := config.DefaultMazeChaseConfig()
	r := newTestRound(t, cfg, 7)
	snap := r.Snapshot()

	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, 1, snap.Level)
	assert.Equal(t, uint64(0), snap.Tick)
	assert.Equal(t, maze.Right, snap.Agent.Dir)
	assert.True(t, snap.Grid.Passable(snap.Agent.Pos))

	want, _ := snap.Grid.NearestPassable(snap.Grid.Center())
	assert.Equal(t, want, snap.Agent.Pos)

	require.Len(t, snap.Pursuers, 3)
	for _, p := range snap.Pursuers {
		assert.True(t, snap.Grid.Passable(p))
	}

	assert.True(t, snap.Grid.Passable(snap.Coin))
	assert.NotEqual(t, snap.Agent.Pos, snap.Coin)
	assert.Len(t, snap.Pellets, snap.Grid.CountPassable())
}

func TestNewRoundRejectsSmallGrid(t *testing.T) {
	cfg := config.DefaultMazeChaseConfig()
	cfg.Grid.Cols = 2

	_, err := NewRound(cfg, 1, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, maze.ErrInvalidDimensions)
}

func TestLevelTransitionKeepsScoreAndPursuers(t *testing.T) {
	cfg := config.DefaultMazeChaseConfig()
	r := newTestRound(t, cfg, 3)

	r.agent.Score = 5
	r.agent.Pos = r.coin
	r.agent.Dir = maze.None
	parkPursuers(r, r.coin)

	before := r.Snapshot()
	res := r.Tick(KeepCourse)
	snap := res.Snapshot

	require.Len(t, res.Events, 1)
	assert.Equal(t, EventLevelUp, res.Events[0].Kind)
	assert.Equal(t, 2, res.Events[0].Level)

	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, 2, snap.Level)
	assert.Equal(t, 5, snap.Agent.Score)
	assert.NotSame(t, before.Grid, snap.Grid, "maze should be regenerated")

	center, _ := snap.Grid.NearestPassable(snap.Grid.Center())
	assert.Equal(t, center, snap.Agent.Pos)
	assert.Equal(t, snap.Grid.PassableCells(), snap.Pellets)
	assert.Equal(t, before.Pursuers, snap.Pursuers)
	assert.True(t, snap.Grid.Passable(snap.Coin))
}

func TestCornerResetRespawnsPursuers(t *testing.T) {
	cfg := config.DefaultMazeChaseConfig()
	cfg.Pursuers.ResetOnLevelUp = true
	r := newTestRound(t, cfg, 3)

	r.agent.Pos = r.coin
	r.agent.Dir = maze.None
	parkPursuers(r, r.coin)

	snap := r.Tick(KeepCourse).Snapshot
	require.Equal(t, 2, snap.Level)

	for i, corner := range cfg.Pursuers.Spawns {
		col, row, _ := corner.Resolve(cfg.Grid.Cols, cfg.Grid.Rows)
		want, _ := snap.Grid.NearestPassable(maze.Position{Col: col, Row: row})
		assert.Equal(t, want, snap.Pursuers[i], "pursuer %d", i)
	}
}

func TestCollisionEndsRound(t *testing.T) {
	cfg := config.DefaultMazeChaseConfig()
	r := newTestRound(t, cfg, 11)

	r.agent.Dir = maze.None
	r.pursuers[0].Pos = r.agent.Pos

	res := r.Tick(KeepCourse)
	require.Len(t, res.Events, 1)
	assert.Equal(t, EventCaught, res.Events[0].Kind)
	assert.Equal(t, StateGameOver, res.Snapshot.State)

	frozen := res.Snapshot
	for range 10 {
		next := r.Tick(SteerUp)
		assert.Empty(t, next.Events)
		assert.Equal(t, frozen, next.Snapshot)
	}
}

func TestCaughtBeatsCoin(t *testing.T) {
	cfg := config.DefaultMazeChaseConfig()
	r := newTestRound(t, cfg, 5)

	r.agent.Pos = r.coin
	r.agent.Dir = maze.None
	r.pursuers[1].Pos = r.coin

	res := r.Tick(KeepCourse)
	assert.Equal(t, StateGameOver, res.Snapshot.State)
	assert.Equal(t, 1, res.Snapshot.Level)
}

func TestTickEatsPelletOnlyWhenMoving(t *testing.T) {
	cfg := config.DefaultMazeChaseConfig()
	r := newTestRound(t, cfg, 9)

	// Find an open neighbor to step onto.
	var dir maze.Direction
	var next maze.Position
	for _, d := range maze.Directions {
		if p := r.agent.Pos.Step(d); r.grid.Passable(p) {
			dir, next = d, p
			break
		}
	}
	require.NotEqual(t, maze.None, dir, "spawn has no open neighbor")

	for _, p := range r.grid.PassableCells() {
		if p != r.agent.Pos && p != next {
			r.coin = p
			break
		}
	}
	parkPursuers(r, next, r.agent.Pos, r.coin)
	r.agent.Dir = maze.None

	// Halted: nothing eaten, even though a pellet is underfoot.
	res := r.Tick(KeepCourse)
	assert.Empty(t, res.Events)
	assert.Equal(t, 0, res.Snapshot.Agent.Score)

	res = r.Tick(steerFor(dir))
	require.Len(t, res.Events, 1)
	assert.Equal(t, EventPelletEaten, res.Events[0].Kind)
	assert.Equal(t, next, res.Snapshot.Agent.Pos)
	assert.Equal(t, 1, res.Snapshot.Agent.Score)
}

func steerFor(d maze.Direction) Command {
	switch d {
	case maze.Up:
		return SteerUp
	case maze.Down:
		return SteerDown
	case maze.Left:
		return SteerLeft
	default:
		return SteerRight
	}
}

func TestRoundDeterminism(t *testing.T) {
	cfg := config.DefaultMazeChaseConfig()
	r1 := newTestRound(t, cfg, 12345)
	r2 := newTestRound(t, cfg, 12345)

	cmds := []Command{KeepCourse, SteerDown, SteerLeft, KeepCourse, SteerUp, SteerRight}
	for i := range 200 {
		cmd := cmds[i%len(cmds)]
		s1 := r1.Tick(cmd).Snapshot
		s2 := r2.Tick(cmd).Snapshot

		require.Equal(t, s1.Agent, s2.Agent, "tick %d", i)
		require.Equal(t, s1.Pursuers, s2.Pursuers, "tick %d", i)
		require.Equal(t, s1.Coin, s2.Coin, "tick %d", i)
		require.Equal(t, s1.Level, s2.Level, "tick %d", i)
		require.Equal(t, s1.Grid.String(), s2.Grid.String(), "tick %d", i)
	}
}

func TestCommandDirection(t *testing.T) {
	tests := []struct {
		cmd  Command
		want maze.Direction
		ok   bool
	}{
		{KeepCourse, maze.None, false},
		{SteerUp, maze.Up, true},
		{SteerDown, maze.Down, true},
		{SteerLeft, maze.Left, true},
		{SteerRight, maze.Right, true},
	}

	for _, tt := range tests {
		got, ok := tt.cmd.Direction()
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.ok, ok)
	}
}
