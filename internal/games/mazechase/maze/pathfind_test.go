package maze_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/maze"
)

func pos(col, row int) maze.Position {
	return maze.Position{Col: col, Row: row}
}

func requireValidPath(t *testing.T, g *maze.Grid, path []maze.Position) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		dc := path[i].Col - path[i-1].Col
		dr := path[i].Row - path[i-1].Row
		require.Equal(t, 1, abs(dc)+abs(dr), "step %d: %v -> %v", i, path[i-1], path[i])
		require.True(t, g.Passable(path[i]), "step onto blocked cell %v", path[i])
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestShortestPathSingleCorridor(t *testing.T) {
	g := maze.MustParse(
		"#####",
		"#   #",
		"### #",
		"#   #",
		"#####",
	)

	path, err := maze.ShortestPath(g, pos(1, 1), pos(1, 3))
	require.NoError(t, err)

	assert.Len(t, path, 7)
	assert.Equal(t, pos(1, 1), path[0])
	assert.Equal(t, pos(1, 3), path[len(path)-1])
	requireValidPath(t, g, path)
	assert.Equal(t, 6, maze.Distance(g, pos(1, 1), pos(1, 3)))
}

func TestShortestPathTieBreakPrefersDownBeforeRight(t *testing.T) {
	g := maze.MustParse(
		"#####",
		"#   #",
		"# # #",
		"#   #",
		"#####",
	)

	path, err := maze.ShortestPath(g, pos(1, 1), pos(3, 3))
	require.NoError(t, err)

	expected := []maze.Position{pos(1, 1), pos(1, 2), pos(1, 3), pos(2, 3), pos(3, 3)}
	assert.Equal(t, expected, path)
}

func TestShortestPathTieBreakPrefersUpBeforeLeft(t *testing.T) {
	g := maze.MustParse(
		"#####",
		"#   #",
		"# # #",
		"#   #",
		"#####",
	)

	path, err := maze.ShortestPath(g, pos(3, 3), pos(1, 1))
	require.NoError(t, err)
	assert.Equal(t, pos(3, 2), path[1], "first step should go up")
}

func TestShortestPathSameCell(t *testing.T) {
	g := maze.MustParse("###", "# #", "###")

	path, err := maze.ShortestPath(g, pos(1, 1), pos(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []maze.Position{pos(1, 1)}, path)
	assert.Zero(t, maze.Distance(g, pos(1, 1), pos(1, 1)))
}

func TestShortestPathNoRoute(t *testing.T) {
	g := maze.MustParse(
		"#######",
		"#  #  #",
		"#######",
	)

	path, err := maze.ShortestPath(g, pos(1, 1), pos(5, 1))
	require.ErrorIs(t, err, maze.ErrNoRoute)
	assert.Nil(t, path)
	assert.Equal(t, -1, maze.Distance(g, pos(1, 1), pos(5, 1)))

	// Blocked or off-grid goals are never reachable
	_, err = maze.ShortestPath(g, pos(1, 1), pos(3, 1))
	assert.ErrorIs(t, err, maze.ErrNoRoute)
	_, err = maze.ShortestPath(g, pos(1, 1), pos(40, 1))
	assert.ErrorIs(t, err, maze.ErrNoRoute)
}

func TestShortestPathFromBlockedStart(t *testing.T) {
	g := maze.MustParse(
		"#####",
		"#   #",
		"#####",
		"#####",
	)

	// (2, 2) is a wall cell directly below the corridor
	path, err := maze.ShortestPath(g, pos(2, 2), pos(3, 1))
	require.NoError(t, err)
	assert.Equal(t, []maze.Position{pos(2, 2), pos(2, 1), pos(3, 1)}, path)
}

func TestShortestPathIsOptimalOnGeneratedMazes(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := maze.Generate(20, 20, 6, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		cells := g.PassableCells()
		start := cells[0]
		goal := cells[len(cells)-1]

		path, err := maze.ShortestPath(g, start, goal)
		require.NoError(t, err)
		requireValidPath(t, g, path)

		// Every cell on a shortest path is exactly its index away from start
		for i, p := range path {
			assert.Equal(t, i, maze.Distance(g, start, p))
		}
	}
}

func TestFloodFill(t *testing.T) {
	g := maze.MustParse(
		"#######",
		"#  #  #",
		"#######",
	)

	left := maze.FloodFill(g, pos(1, 1))
	assert.Equal(t, 2, left.Size())
	assert.True(t, left.Has(pos(2, 1)))
	assert.False(t, left.Has(pos(4, 1)))

	assert.Zero(t, maze.FloodFill(g, pos(0, 0)).Size())
	assert.False(t, maze.IsConnected(g))
}
