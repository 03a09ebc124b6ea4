package config

import (
	_ "embed"
)

//go:embed defaults/chomp.yaml
var defaultChompYAML []byte

// DefaultChompConfig returns the default Chomp configuration.
// Kept in sync with defaults/chomp.yaml; this is the fallback if the
// embedded YAML somehow fails to parse.
func DefaultChompConfig() ChompConfig {
	return ChompConfig{
		ClassicBugCompatible: true,
		Gameplay: ChompGameplay{
			Lives:          3,
			ExtraLifeScore: 10000,
		},
		Levels: []ChompLevel{
			{
				PhaseTicks:   []int{420, 1200, 420, 1200, 300, 1200, 300, 0},
				FrightTicks:  360,
				ReleaseTicks: []int{0, 60, 360, 900},
				Speeds: ChompSpeeds{
					Player:       80,
					Ghost:        75,
					FrightPlayer: 90,
					FrightGhost:  50,
					EatenGhost:   150,
				},
			},
			{
				PhaseTicks:   []int{420, 1200, 420, 1200, 300, 61980, 1, 0},
				FrightTicks:  300,
				ReleaseTicks: []int{0, 0, 180, 600},
				Speeds: ChompSpeeds{
					Player:       90,
					Ghost:        85,
					FrightPlayer: 95,
					FrightGhost:  55,
					EatenGhost:   150,
				},
			},
			{
				PhaseTicks:   []int{300, 1200, 300, 1200, 300, 62220, 1, 0},
				FrightTicks:  120,
				ReleaseTicks: []int{0, 0, 60, 300},
				Speeds: ChompSpeeds{
					Player:       100,
					Ghost:        95,
					FrightPlayer: 100,
					FrightGhost:  60,
					EatenGhost:   150,
				},
			},
			{
				PhaseTicks:   []int{300, 1200, 300, 1200, 300, 62220, 1, 0},
				FrightTicks:  0,
				ReleaseTicks: []int{0, 0, 0, 120},
				Speeds: ChompSpeeds{
					Player:       100,
					Ghost:        100,
					FrightPlayer: 100,
					FrightGhost:  60,
					EatenGhost:   150,
				},
			},
		},
	}
}
