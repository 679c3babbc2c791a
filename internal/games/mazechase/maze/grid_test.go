package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/maze"
)

func TestGridBounds(t *testing.T) {
	g := maze.NewGrid(4, 3)

	assert.Equal(t, maze.Blocked, g.At(pos(1, 1)))
	g.Set(pos(1, 1), maze.Passable)
	assert.True(t, g.Passable(pos(1, 1)))

	// Off-grid cells read as walls and ignore writes
	g.Set(pos(-1, 0), maze.Passable)
	g.Set(pos(4, 0), maze.Passable)
	assert.False(t, g.Passable(pos(-1, 0)))
	assert.False(t, g.Passable(pos(4, 0)))
	assert.False(t, g.InBounds(pos(0, 3)))
	assert.Equal(t, 1, g.CountPassable())
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := maze.MustParse("###", "# #", "###")
	c := g.Clone()

	c.Set(pos(1, 1), maze.Blocked)
	assert.True(t, g.Passable(pos(1, 1)))
	assert.False(t, c.Passable(pos(1, 1)))
}

func TestGridCenterAndPerimeter(t *testing.T) {
	g := maze.NewGrid(20, 20)
	assert.Equal(t, pos(10, 10), g.Center())
	assert.Equal(t, pos(2, 1), maze.NewGrid(5, 3).Center())

	assert.True(t, g.IsPerimeter(pos(0, 5)))
	assert.True(t, g.IsPerimeter(pos(19, 19)))
	assert.False(t, g.IsPerimeter(pos(1, 1)))
	assert.False(t, g.IsPerimeter(pos(20, 5)))
}

func TestNearestPassable(t *testing.T) {
	g := maze.MustParse(
		"#######",
		"#     #",
		"##### #",
		"#######",
	)

	p, ok := g.NearestPassable(pos(3, 1))
	require.True(t, ok)
	assert.Equal(t, pos(3, 1), p, "open cells map to themselves")

	p, ok = g.NearestPassable(pos(2, 3))
	require.True(t, ok)
	assert.Equal(t, pos(1, 1), p, "ring of radius 2 is scanned row by row")

	p, ok = g.NearestPassable(pos(5, 3))
	require.True(t, ok)
	assert.Equal(t, pos(5, 2), p)

	_, ok = maze.NewGrid(3, 3).NearestPassable(pos(1, 1))
	assert.False(t, ok)
}

func TestParseAndString(t *testing.T) {
	layout := []string{
		"#####",
		"# . #",
		"#####",
	}
	g, err := maze.Parse(layout...)
	require.NoError(t, err)
	assert.Equal(t, 3, g.CountPassable())
	assert.Equal(t, "#####\n#   #\n#####", g.String())

	_, err = maze.Parse()
	assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	_, err = maze.Parse("###", "#")
	assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	assert.Panics(t, func() { maze.MustParse("##", "#") })
}

func TestDirections(t *testing.T) {
	assert.Equal(t, [4]maze.Direction{maze.Up, maze.Down, maze.Left, maze.Right}, maze.Directions)
	assert.Equal(t, pos(5, 4), pos(5, 5).Step(maze.Up))
	assert.Equal(t, pos(5, 6), pos(5, 5).Step(maze.Down))
	assert.Equal(t, pos(4, 5), pos(5, 5).Step(maze.Left))
	assert.Equal(t, pos(6, 5), pos(5, 5).Step(maze.Right))
	assert.Equal(t, pos(5, 5), pos(5, 5).Step(maze.None))

	for _, name := range []string{"up", "Down", " left ", "RIGHT", "none"} {
		_, ok := maze.ParseDirection(name)
		assert.True(t, ok, name)
	}
	d, ok := maze.ParseDirection("right")
	assert.True(t, ok)
	assert.Equal(t, maze.Right, d)
	assert.Equal(t, "right", d.String())
	_, ok = maze.ParseDirection("diagonal")
	assert.False(t, ok)
}
