// Package config provides YAML-based configuration loading and validation
// for the maze chase game.
package config

// MazeChaseConfig contains all configuration for the maze chase game.
// It is loaded once at process start and never changes during play.
type MazeChaseConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	TickRate   int              `yaml:"tick_rate"`
	StartLevel int              `yaml:"start_level"`
	Agent      AgentConfig      `yaml:"agent"`
	Pursuers   PursuersConfig   `yaml:"pursuers"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines maze dimensions and how wide a cell is drawn.
type GridConfig struct {
	Cols      int `yaml:"cols"`
	Rows      int `yaml:"rows"`
	CellWidth int `yaml:"cell_width"`
}

// AgentConfig defines the player's starting state.
type AgentConfig struct {
	InitialDirection string `yaml:"initial_direction"`
}

// PursuersConfig defines pursuer count, placement and speed.
type PursuersConfig struct {
	MoveEvery      int      `yaml:"move_every"`
	Spawns         []Corner `yaml:"spawns"`
	ResetOnLevelUp bool     `yaml:"reset_on_level_up"`
}

// Corner names a pursuer spawn point one cell inside the maze perimeter.
type Corner string

const (
	CornerTopLeft     Corner = "top_left"
	CornerTopRight    Corner = "top_right"
	CornerBottomLeft  Corner = "bottom_left"
	CornerBottomRight Corner = "bottom_right"
)

// Resolve returns the (col, row) of the corner for a cols×rows maze.
func (c Corner) Resolve(cols, rows int) (int, int, bool) {
	switch c {
	case CornerTopLeft:
		return 1, 1, true
	case CornerTopRight:
		return cols - 2, 1, true
	case CornerBottomLeft:
		return 1, rows - 2, true
	case CornerBottomRight:
		return cols - 2, rows - 2, true
	default:
		return 0, 0, false
	}
}

// DifficultyConfig maps levels to how many shortcut cells are opened.
type DifficultyConfig struct {
	Tiers []DifficultyTier `yaml:"tiers"`
}

// DifficultyTier applies to every level up to and including MaxLevel.
// A MaxLevel of 0 matches any level and should come last.
type DifficultyTier struct {
	MaxLevel  int `yaml:"max_level"`
	PerColumn int `yaml:"per_column"`
}
