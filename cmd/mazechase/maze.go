package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase"
	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/maze"
)

var (
	flagMazeCols  int
	flagMazeRows  int
	flagMazeLevel int
)

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Print a generated maze",
	Long: `Generate a level the way a round does and print it as text.

Legend:
  #  wall        A  agent spawn
  .  pellet      G  ghost spawn
  $  bonus coin

The summary lists the number of shortcut cells attempted for the level,
whether every open cell is reachable, and each ghost's distance to the agent.

Examples:
  mazechase maze
  mazechase maze --level 6 --seed 42
  mazechase maze --cols 41 --rows 21`,
	Run: runMaze,
}

func init() {
	mazeCmd.Flags().IntVar(&flagMazeCols, "cols", 0, "Maze width in cells (default: grid.cols from config)")
	mazeCmd.Flags().IntVar(&flagMazeRows, "rows", 0, "Maze height in cells (default: grid.rows from config)")
	mazeCmd.Flags().IntVar(&flagMazeLevel, "level", 1, "Level to generate")
}

func runMaze(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagMazeCols > 0 {
		cfg.Grid.Cols = flagMazeCols
	}
	if flagMazeRows > 0 {
		cfg.Grid.Rows = flagMazeRows
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	round, err := mazechase.NewRound(cfg, max(1, flagMazeLevel), rand.New(rand.NewSource(seed)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	snap := round.Snapshot()

	fmt.Println(drawSnapshot(snap))
	fmt.Println()
	fmt.Printf("Size: %dx%d  Level: %d  Seed: %d\n", snap.Grid.Cols(), snap.Grid.Rows(), snap.Level, seed)
	fmt.Printf("Open cells: %d  Shortcut attempts: %d  Connected: %t\n",
		snap.Grid.CountPassable(),
		maze.ExtraPaths(snap.Grid.Cols(), snap.Level, cfg.Difficulty.PerColumn),
		maze.IsConnected(snap.Grid),
	)
	for i, p := range snap.Pursuers {
		fmt.Printf("Ghost %d at %s: %d steps from the agent\n", i+1, p, maze.Distance(snap.Grid, p, snap.Agent.Pos))
	}
}

// drawSnapshot renders a round snapshot as plain text.
func drawSnapshot(snap mazechase.Snapshot) string {
	rows := make([][]byte, snap.Grid.Rows())
	for i, line := range strings.Split(snap.Grid.String(), "\n") {
		rows[i] = []byte(line)
	}

	mark := func(p maze.Position, b byte) {
		rows[p.Row][p.Col] = b
	}
	for _, p := range snap.Pellets {
		mark(p, '.')
	}
	mark(snap.Coin, '$')
	mark(snap.Agent.Pos, 'A')
	for _, p := range snap.Pursuers {
		mark(p, 'G')
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = string(r)
	}
	return strings.Join(lines, "\n")
}
