package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/maze"
)

// ErrInvalidConfig is returned by Validate for settings that cannot run.
var ErrInvalidConfig = errors.New("invalid config")

// LoadMazeChase loads the maze chase configuration.
// Search order: customPath -> ~/.mazechase/config.yaml -> ./configs/mazechase.yaml -> embedded default
func LoadMazeChase(customPath string) (MazeChaseConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), "configs/mazechase.yaml"} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg := DefaultMazeChaseConfig()
	if err := yaml.Unmarshal(defaultMazeChaseYAML, &cfg); err != nil {
		return DefaultMazeChaseConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// loadFile reads a YAML file over the hardcoded defaults, so a partial
// file only overrides the keys it sets.
func loadFile(path string) (MazeChaseConfig, error) {
	cfg := DefaultMazeChaseConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazechase", filename)
}

// Validate checks that the configuration describes a playable game.
// Dimension problems wrap maze.ErrInvalidDimensions; everything else wraps
// ErrInvalidConfig.
func (c MazeChaseConfig) Validate() error {
	if c.Grid.Cols < maze.MinDimension || c.Grid.Rows < maze.MinDimension {
		return fmt.Errorf("grid %dx%d: %w", c.Grid.Cols, c.Grid.Rows, maze.ErrInvalidDimensions)
	}
	if c.Grid.CellWidth < 1 {
		return fmt.Errorf("grid.cell_width must be >= 1, got %d: %w", c.Grid.CellWidth, ErrInvalidConfig)
	}
	if c.TickRate < 1 {
		return fmt.Errorf("tick_rate must be >= 1, got %d: %w", c.TickRate, ErrInvalidConfig)
	}
	if c.StartLevel < 1 {
		return fmt.Errorf("start_level must be >= 1, got %d: %w", c.StartLevel, ErrInvalidConfig)
	}
	if _, ok := maze.ParseDirection(c.Agent.InitialDirection); !ok {
		return fmt.Errorf("agent.initial_direction %q: %w", c.Agent.InitialDirection, ErrInvalidConfig)
	}
	if c.Pursuers.MoveEvery < 1 {
		return fmt.Errorf("pursuers.move_every must be >= 1, got %d: %w", c.Pursuers.MoveEvery, ErrInvalidConfig)
	}
	for _, corner := range c.Pursuers.Spawns {
		if _, _, ok := corner.Resolve(c.Grid.Cols, c.Grid.Rows); !ok {
			return fmt.Errorf("pursuers.spawns: unknown corner %q: %w", corner, ErrInvalidConfig)
		}
	}
	if len(c.Difficulty.Tiers) == 0 {
		return fmt.Errorf("difficulty.tiers must not be empty: %w", ErrInvalidConfig)
	}
	for i, t := range c.Difficulty.Tiers {
		if t.PerColumn < 0 || t.MaxLevel < 0 {
			return fmt.Errorf("difficulty.tiers[%d] has negative values: %w", i, ErrInvalidConfig)
		}
	}
	return nil
}
