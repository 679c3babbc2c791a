package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mazechase/internal/platform/tui"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: mazechase).

Variants:
  mazechase        - Ghosts stay where they are when the maze changes
  mazechase_reset  - Ghosts go back to their corners on every new level

Controls:
  Arrows/WASD/HJKL - Steer
  P                - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot to ~/.mazechase/screenshots
  Q/Ctrl+C         - Quit

Examples:
  mazechase play
  mazechase play mazechase_reset
  mazechase play --level 4 --seed 42
  mazechase play --config ./my-maze.yaml --log ./mazechase.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level (default: start_level from config, 1)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := variantArg(args)
	requireVariant(gameID)

	gameCfg := loadConfig()
	cfg := runtimeConfig(cmd, gameCfg)
	if flagLevel > 0 {
		cfg.StartLevel = flagLevel
	}

	game, err := createGame(gameID, gameCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	logger, logFile := openLogger()

	runErr := tui.Run(game, store, logger, cfg)

	// Close resources before potential exit
	if store != nil {
		store.Close()
	}
	logFile.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
