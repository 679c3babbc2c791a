// mazechase is a terminal maze-chase game: eat pellets, grab the bonus coin
// to reach the next maze, and stay away from the ghosts.
//
// Usage:
//
//	mazechase list              - List available variants
//	mazechase play [variant]    - Play a variant (default: mazechase)
//	mazechase menu              - Pick a variant interactively
//	mazechase maze              - Print a generated maze
//	mazechase serve             - Start SSH server for remote play
//	mazechase scores [variant]  - Show best runs for a variant
//	mazechase config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: tick_rate from config, 8)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.mazechase/scores.db)
//	--config <path>  - Use a custom YAML config
//	--log <path>     - Write game events to a log file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-mazechase/internal/games/mazechase"
)

const defaultVariant = "mazechase"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazechase",
	Short: "Maze Chase - outrun the ghosts in your terminal",
	Long: `Maze Chase is a terminal arcade game. Every level is a freshly
generated maze; eat pellets for points, grab the green coin to move on,
and keep away from the ghosts hunting you down the shortest path.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  maze     - Print a generated maze
  serve    - Start SSH server for remote play
  scores   - View best runs
  config   - Print or check the configuration

Examples:
  mazechase play
  mazechase play mazechase_reset --level 3
  mazechase maze --cols 31 --rows 15 --level 5
  mazechase serve --ssh :2222
  mazechase scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 8, "Tick rate (overrides tick_rate from config when set)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazechase/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write game events to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(mazeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
