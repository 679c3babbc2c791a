package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mazechase/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in YAML configuration. Save it as
~/.mazechase/config.yaml or ./configs/mazechase.yaml and edit it, or pass
any file with --config. Keys left out of a file keep their defaults.

Examples:
  mazechase config > ~/.mazechase/config.yaml
  mazechase config --check --config ./my-maze.yaml`,
	Run: runConfig,
}

var flagCheckConfig bool

func init() {
	configCmd.Flags().BoolVar(&flagCheckConfig, "check", false, "Validate the active configuration instead of printing defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagCheckConfig {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg := loadConfig()
	fmt.Printf("OK: %dx%d grid, %d pursuers, tick rate %d\n",
		cfg.Grid.Cols, cfg.Grid.Rows, len(cfg.Pursuers.Spawns), cfg.TickRate)
}
