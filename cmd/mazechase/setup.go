package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mazechase/internal/config"
	"github.com/vovakirdan/tui-mazechase/internal/core"
	"github.com/vovakirdan/tui-mazechase/internal/registry"
	"github.com/vovakirdan/tui-mazechase/internal/storage"
)

// loadConfig loads the game config and exits on errors.
func loadConfig() config.MazeChaseConfig {
	cfg, err := config.LoadMazeChase(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// tickRate returns --fps when given explicitly, else the configured rate.
func tickRate(cmd *cobra.Command, cfg config.MazeChaseConfig) int {
	if cmd.Flags().Changed("fps") && flagFPS > 0 {
		return flagFPS
	}
	return cfg.TickRate
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig(cmd *cobra.Command, cfg config.MazeChaseConfig) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	rc.TickRate = tickRate(cmd, cfg)
	rc.Seed = flagSeed
	if cfg.StartLevel > 0 {
		rc.StartLevel = cfg.StartLevel
	}
	return rc
}

// openLogger returns a logger writing to --log, or one that discards
// everything. Logging to stderr would corrupt the alternate screen.
func openLogger() (*log.Logger, io.Closer) {
	if flagLogPath == "" {
		return log.New(io.Discard), io.NopCloser(nil)
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "mazechase",
		Level:           log.DebugLevel,
	})
	return logger, f
}

// openStore opens the scores database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		return nil
	}
	return store
}

// configurable is implemented by games that accept a custom configuration.
type configurable interface {
	Configure(cfg config.MazeChaseConfig)
}

// createGame instantiates a registered variant with the loaded config.
func createGame(id string, cfg config.MazeChaseConfig) (registry.Game, error) {
	game, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	if c, ok := game.(configurable); ok {
		c.Configure(cfg)
	}
	return game, nil
}

// requireVariant exits when id is not a registered variant.
func requireVariant(id string) {
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'mazechase list' to see available variants.")
		os.Exit(1)
	}
}

// variantArg returns the first argument or the default variant.
func variantArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultVariant
}
