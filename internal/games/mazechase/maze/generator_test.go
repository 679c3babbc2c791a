package maze_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/maze"
)

// floodCount counts open cells reachable from (1, 1) without using the
// package's own search code.
func floodCount(g *maze.Grid) int {
	seen := make(map[maze.Position]bool)
	var visit func(p maze.Position)
	visit = func(p maze.Position) {
		if seen[p] || !g.Passable(p) {
			return
		}
		seen[p] = true
		visit(maze.Position{Col: p.Col, Row: p.Row - 1})
		visit(maze.Position{Col: p.Col, Row: p.Row + 1})
		visit(maze.Position{Col: p.Col - 1, Row: p.Row})
		visit(maze.Position{Col: p.Col + 1, Row: p.Row})
	}
	visit(maze.Position{Col: 1, Row: 1})
	return len(seen)
}

func TestGenerateRejectsSmallDimensions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, dims := range [][2]int{{2, 20}, {20, 2}, {0, 0}, {-5, 10}} {
		g, err := maze.Generate(dims[0], dims[1], 1, rng)
		require.ErrorIs(t, err, maze.ErrInvalidDimensions, "dims %v", dims)
		assert.Nil(t, g)
	}
}

func TestGenerateInvariants(t *testing.T) {
	sizes := [][2]int{{20, 20}, {21, 15}, {3, 3}, {4, 7}, {40, 18}}

	for _, size := range sizes {
		for level := 1; level <= 7; level++ {
			for seed := int64(1); seed <= 5; seed++ {
				cols, rows := size[0], size[1]
				g, err := maze.Generate(cols, rows, level, rand.New(rand.NewSource(seed)))
				require.NoError(t, err)
				require.Equal(t, cols, g.Cols())
				require.Equal(t, rows, g.Rows())

				for row := 0; row < rows; row++ {
					for col := 0; col < cols; col++ {
						p := maze.Position{Col: col, Row: row}
						if g.IsPerimeter(p) {
							require.False(t, g.Passable(p), "perimeter %v open (size %v level %d seed %d)", p, size, level, seed)
						}
						if col%2 == 1 && row%2 == 1 && col < cols-1 && row < rows-1 {
							require.True(t, g.Passable(p), "anchor %v blocked", p)
						}
					}
				}

				require.Equal(t, g.CountPassable(), floodCount(g),
					"unreachable open cells (size %v level %d seed %d)\n%s", size, level, seed, g)
				require.True(t, maze.IsConnected(g))
			}
		}
	}
}

func TestGenerateWithoutDifficultyIsSpanningTree(t *testing.T) {
	noExtras := maze.WithDensity(func(int) int { return 0 })

	for seed := int64(1); seed <= 10; seed++ {
		g, err := maze.Generate(21, 21, 1, rand.New(rand.NewSource(seed)), noExtras)
		require.NoError(t, err)

		// 10x10 anchors joined by exactly anchors-1 corridor cells
		anchors := 10 * 10
		assert.Equal(t, anchors+anchors-1, g.CountPassable())
		assert.True(t, maze.IsConnected(g))
	}
}

func TestGenerateSmallestMaze(t *testing.T) {
	g, err := maze.Generate(3, 3, 1, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.Equal(t, []maze.Position{{Col: 1, Row: 1}}, g.PassableCells())
	assert.Equal(t, "###\n# #\n###", g.String())
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := maze.Generate(20, 20, 2, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b, err := maze.Generate(20, 20, 2, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	c, err := maze.Generate(20, 20, 2, rand.New(rand.NewSource(100)))
	require.NoError(t, err)

	assert.Equal(t, a.String(), b.String())
	assert.NotEqual(t, a.String(), c.String())
}

func TestExtraPathsDecreaseWithLevel(t *testing.T) {
	const width = 20

	l1 := maze.ExtraPaths(width, 1, nil)
	l3 := maze.ExtraPaths(width, 3, nil)
	l6 := maze.ExtraPaths(width, 6, nil)

	assert.Equal(t, 20*width, l1)
	assert.Equal(t, 15*width, l3)
	assert.Equal(t, width, l6)
	assert.GreaterOrEqual(t, l1, l3)
	assert.GreaterOrEqual(t, l3, l6)

	assert.Equal(t, 15*width, maze.ExtraPaths(width, 2, nil))
	assert.Equal(t, 10*width, maze.ExtraPaths(width, 4, nil))
	assert.Equal(t, 10*width, maze.ExtraPaths(width, 5, nil))
	assert.Equal(t, width, maze.ExtraPaths(width, 60, nil))
}

func TestHigherLevelsOpenFewerCells(t *testing.T) {
	total := map[int]int{}
	for seed := int64(1); seed <= 20; seed++ {
		for _, level := range []int{1, 6} {
			g, err := maze.Generate(20, 20, level, rand.New(rand.NewSource(seed)))
			require.NoError(t, err)
			total[level] += g.CountPassable()
		}
	}
	assert.Greater(t, total[1], total[6])
}

func TestAddDifficultyOnlyExtendsOpenArea(t *testing.T) {
	g := maze.MustParse(
		"#######",
		"# #####",
		"#######",
		"#######",
		"#######",
	)
	opened := maze.AddDifficulty(g, 500, rand.New(rand.NewSource(3)))

	assert.Equal(t, opened+1, g.CountPassable())
	assert.True(t, maze.IsConnected(g))
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			p := maze.Position{Col: col, Row: row}
			if g.IsPerimeter(p) {
				assert.False(t, g.Passable(p))
			}
		}
	}

	// A grid with nothing open has nowhere to grow from
	closed := maze.NewGrid(5, 5)
	assert.Zero(t, maze.AddDifficulty(closed, 100, rand.New(rand.NewSource(3))))
}

// scriptedRand returns its values in order, then zeros.
type scriptedRand struct{ vals []int }

func (r *scriptedRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v % n
}

func TestAddDifficultyKeepsIsolatedCellShut(t *testing.T) {
	g := maze.MustParse(
		"#######",
		"#     #",
		"# ### #",
		"# ### #",
		"# ### #",
		"#     #",
		"#######",
	)
	before := g.CountPassable()

	// (3,3) has only blocked neighbors, (2,3) touches the left corridor.
	rng := &scriptedRand{vals: []int{2, 2, 1, 2}}
	opened := maze.AddDifficulty(g, 2, rng)

	assert.Equal(t, 1, opened)
	assert.False(t, g.Passable(maze.Position{Col: 3, Row: 3}))
	assert.True(t, g.Passable(maze.Position{Col: 2, Row: 3}))
	assert.Equal(t, before+1, g.CountPassable())
	assert.True(t, maze.IsConnected(g))
}
