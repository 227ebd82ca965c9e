// Package config provides YAML-based configuration loading for blockfall.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Config contains all user-tunable settings.
type Config struct {
	Timing   TimingConfig   `yaml:"timing"`
	Controls ControlsConfig `yaml:"controls"`
	Log      LogConfig      `yaml:"log"`
}

// TimingConfig defines the round pacing.
type TimingConfig struct {
	TickMS   int `yaml:"tick_ms"`   // Gravity period in milliseconds
	MoveRate int `yaml:"move_rate"` // Input polls per gravity period
}

// ControlsConfig lists the keys bound to each action, in Bubble Tea key
// notation ("left", "ctrl+q", "h").
type ControlsConfig struct {
	Left   []string `yaml:"left"`
	Right  []string `yaml:"right"`
	Rotate []string `yaml:"rotate"`
	Drop   []string `yaml:"drop"`
	Quit   []string `yaml:"quit"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty disables logging while playing
}

// Validate reports the first setting that cannot drive a round.
func (c Config) Validate() error {
	if c.Timing.MoveRate < 1 {
		return fmt.Errorf("config: timing.move_rate must be at least 1, got %d", c.Timing.MoveRate)
	}
	if c.Timing.TickMS < c.Timing.MoveRate {
		return fmt.Errorf("config: timing.tick_ms (%d) must be at least move_rate (%d)", c.Timing.TickMS, c.Timing.MoveRate)
	}

	bindings := map[string][]string{
		"left":   c.Controls.Left,
		"right":  c.Controls.Right,
		"rotate": c.Controls.Rotate,
		"drop":   c.Controls.Drop,
		"quit":   c.Controls.Quit,
	}
	owner := make(map[string]string)
	for action, keys := range bindings {
		if len(keys) == 0 {
			return fmt.Errorf("config: controls.%s has no keys", action)
		}
		for _, k := range keys {
			if prev, ok := owner[k]; ok && prev != action {
				return fmt.Errorf("config: key %q bound to both %s and %s", k, prev, action)
			}
			owner[k] = action
		}
	}
	return nil
}

// Runtime converts the timing section into the engine's runtime config.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		TickPeriod: time.Duration(c.Timing.TickMS) * time.Millisecond,
		MoveRate:   c.Timing.MoveRate,
		Seed:       seed,
	}
}
