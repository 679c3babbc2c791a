package config

// PerColumn returns the number of extra cells per maze column for a level.
// Tiers are checked in order; levels past every tier use the last one.
func (d DifficultyConfig) PerColumn(level int) int {
	if len(d.Tiers) == 0 {
		return 0
	}
	for _, t := range d.Tiers {
		if t.MaxLevel == 0 || level <= t.MaxLevel {
			return t.PerColumn
		}
	}
	return d.Tiers[len(d.Tiers)-1].PerColumn
}
