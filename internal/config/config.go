// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// ChompConfig contains all configuration for the Chomp maze-chase game.
type ChompConfig struct {
	// ClassicBugCompatible enables the original ambush-ghost targeting
	// artifact: when the player faces up, the ambusher's target is
	// perturbed horizontally as well as vertically.
	ClassicBugCompatible bool `yaml:"classic_bug_compatible"`

	Gameplay ChompGameplay `yaml:"gameplay"`

	// Levels is the per-level tuning table. The last entry applies to
	// all later levels.
	Levels []ChompLevel `yaml:"levels"`
}

// ChompGameplay defines round-level parameters.
type ChompGameplay struct {
	Lives          int `yaml:"lives"`
	ExtraLifeScore int `yaml:"extra_life_score"` // 0 disables the bonus life
}

// ChompLevel is one row of the per-level tuning table.
type ChompLevel struct {
	// PhaseTicks alternates scatter and chase phase durations in ticks,
	// starting with scatter. A zero entry means the phase lasts for the
	// remainder of the level.
	PhaseTicks []int `yaml:"phase_ticks"`

	// FrightTicks is the frightened-mode duration after a power pellet.
	// Zero means power pellets no longer frighten ghosts.
	FrightTicks int `yaml:"fright_ticks"`

	// ReleaseTicks gates each ghost's exit from the holding pen,
	// in pen order (red, pink, cyan, orange).
	ReleaseTicks []int `yaml:"release_ticks"`

	Speeds ChompSpeeds `yaml:"speeds"`
}

// ChompSpeeds holds movement rates as percentages, where 100 means one
// sub-tile step per tick.
type ChompSpeeds struct {
	Player       int `yaml:"player"`
	Ghost        int `yaml:"ghost"`
	FrightPlayer int `yaml:"fright_player"`
	FrightGhost  int `yaml:"fright_ghost"`
	EatenGhost   int `yaml:"eaten_ghost"`
}

// LevelAt returns the tuning row for a 0-based level index.
// Indexes past the end of the table clamp to the last row.
func (c ChompConfig) LevelAt(index int) ChompLevel {
	if len(c.Levels) == 0 {
		return DefaultChompConfig().Levels[0]
	}
	if index < 0 {
		index = 0
	}
	if index >= len(c.Levels) {
		index = len(c.Levels) - 1
	}
	return c.Levels[index]
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyChompPreset modifies the config based on a difficulty preset.
func ApplyChompPreset(cfg *ChompConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		for i := range cfg.Levels {
			cfg.Levels[i].FrightTicks += cfg.Levels[i].FrightTicks / 2
			cfg.Levels[i].Speeds.Ghost -= 10
		}
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		for i := range cfg.Levels {
			cfg.Levels[i].FrightTicks /= 2
			cfg.Levels[i].Speeds.Ghost += 5
		}
	}
}
