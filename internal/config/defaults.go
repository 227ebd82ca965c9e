package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Timing: TimingConfig{
			TickMS:   500,
			MoveRate: 20,
		},
		Controls: ControlsConfig{
			Left:   []string{"left"},
			Right:  []string{"right"},
			Rotate: []string{"up"},
			Drop:   []string{"down"},
			Quit:   []string{"ctrl+q", "ctrl+c"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
