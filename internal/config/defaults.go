package config

import (
	_ "embed"
)

//go:embed defaults/mazechase.yaml
var defaultMazeChaseYAML []byte

// DefaultMazeChaseConfig returns the default maze chase configuration.
func DefaultMazeChaseConfig() MazeChaseConfig {
	return MazeChaseConfig{
		Grid: GridConfig{
			Cols:      20,
			Rows:      20,
			CellWidth: 2,
		},
		TickRate:   8,
		StartLevel: 1,
		Agent: AgentConfig{
			InitialDirection: "right",
		},
		Pursuers: PursuersConfig{
			MoveEvery: 4,
			Spawns: []Corner{
				CornerBottomRight,
				CornerTopRight,
				CornerBottomLeft,
			},
		},
		Difficulty: DifficultyConfig{
			Tiers: []DifficultyTier{
				{MaxLevel: 1, PerColumn: 20},
				{MaxLevel: 3, PerColumn: 15},
				{MaxLevel: 5, PerColumn: 10},
				{MaxLevel: 0, PerColumn: 1},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMazeChaseYAML
}
