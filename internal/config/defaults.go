package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultLifeConfig returns the built-in configuration.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Field: FieldConfig{
			Width:  0,
			Height: 0,
		},
		Playback: PlaybackConfig{
			DefaultDelay: 500 * time.Millisecond,
			MinDelay:     100 * time.Millisecond,
			MaxDelay:     time.Second,
			DelayStep:    100 * time.Millisecond,
			FrameRate:    30,
		},
		Layout: LayoutConfig{
			CellWidth:  2,
			CellHeight: 1,
			Gap:        0,
			MarginX:    1,
			MarginY:    1,
		},
		History: HistoryConfig{
			Enabled: true,
			DBPath:  "~/.life/history.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLifeYAML
}
