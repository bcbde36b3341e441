// Package config provides YAML-based game configuration loading,
// difficulty presets and live reloading.
package config

import (
	"fmt"
	"time"
)

// GameConfig contains all tunable game parameters. Everything the
// engine treats as an injected constant lives here.
type GameConfig struct {
	Grid  GridConfig  `yaml:"grid"`
	Rules RulesConfig `yaml:"rules"`
	Theme string      `yaml:"theme"`
}

// GridConfig defines the playing field.
type GridConfig struct {
	Size          int `yaml:"size"`           // Side of the square grid
	InitialLength int `yaml:"initial_length"` // Starting snake length
}

// RulesConfig defines scoring and timing.
type RulesConfig struct {
	Reward int `yaml:"reward"`  // Score per food eaten
	TickMS int `yaml:"tick_ms"` // Simulation step period in milliseconds
}

// TickPeriod returns the configured step period as a duration.
func (c GameConfig) TickPeriod() time.Duration {
	return time.Duration(c.Rules.TickMS) * time.Millisecond
}

// Validate checks the config for values the engine cannot run with.
func (c GameConfig) Validate() error {
	if c.Grid.Size < 8 {
		return fmt.Errorf("config: grid size %d too small (minimum 8)", c.Grid.Size)
	}
	if c.Grid.InitialLength < 1 || c.Grid.InitialLength > c.Grid.Size/2 {
		return fmt.Errorf("config: initial length %d out of range for grid %d", c.Grid.InitialLength, c.Grid.Size)
	}
	if c.Rules.Reward <= 0 {
		return fmt.Errorf("config: reward must be positive, got %d", c.Rules.Reward)
	}
	if c.Rules.TickMS < 30 || c.Rules.TickMS > 1000 {
		return fmt.Errorf("config: tick period %dms out of range [30, 1000]", c.Rules.TickMS)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Tick periods for the named presets, in milliseconds. The observed
// range in the wild is 120-150ms; easy and hard sit just outside it.
const (
	easyTickMS   = 160
	normalTickMS = 135
	hardTickMS   = 110
)

// ApplyPreset adjusts the config for a difficulty preset. The fixed
// preset keeps the config's own tick period. Unknown presets are
// rejected so a CLI typo surfaces instead of silently playing normal.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) error {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.TickMS = easyTickMS
	case DifficultyNormal:
		cfg.Rules.TickMS = normalTickMS
	case DifficultyHard:
		cfg.Rules.TickMS = hardTickMS
	case DifficultyFixed, "":
		// Keep configured value.
	default:
		return fmt.Errorf("config: unknown difficulty preset %q", preset)
	}
	return nil
}
