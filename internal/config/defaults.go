package config

import (
	_ "embed"
)

//go:embed defaults/serpent.yaml
var defaultYAML []byte

// Default returns the built-in game configuration.
func Default() GameConfig {
	return GameConfig{
		Grid: GridConfig{
			Size:          20,
			InitialLength: 3,
		},
		Rules: RulesConfig{
			Reward: 10,
			TickMS: 135,
		},
		Theme: "classic",
	}
}
