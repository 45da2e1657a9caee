// Package config provides YAML-based configuration loading for the
// simulator: field size, playback pacing, screen layout and run history.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-life/internal/life"
)

// LifeConfig contains all configuration for a simulator session.
type LifeConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Playback PlaybackConfig `yaml:"playback"`
	Layout   LayoutConfig   `yaml:"layout"`
	History  HistoryConfig  `yaml:"history"`
}

// FieldConfig defines the grid size. Zero means fit the terminal.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlaybackConfig defines the generation delay bounds and the frame rate
// at which input is polled and the screen redrawn.
type PlaybackConfig struct {
	DefaultDelay time.Duration `yaml:"default_delay"`
	MinDelay     time.Duration `yaml:"min_delay"`
	MaxDelay     time.Duration `yaml:"max_delay"`
	DelayStep    time.Duration `yaml:"delay_step"`
	FrameRate    int           `yaml:"frame_rate"`
}

// LayoutConfig defines how cells map to terminal characters.
type LayoutConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	Gap        int `yaml:"gap"`
	MarginX    int `yaml:"margin_x"`
	MarginY    int `yaml:"margin_y"`
}

// HistoryConfig defines where finished runs are recorded.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// Validate checks the configuration for values the simulator cannot use.
func (c LifeConfig) Validate() error {
	var errs []error

	if c.Field.Width < 0 || c.Field.Height < 0 {
		errs = append(errs, fmt.Errorf("field size %dx%d must not be negative", c.Field.Width, c.Field.Height))
	}

	p := c.Playback
	if p.MinDelay <= 0 {
		errs = append(errs, fmt.Errorf("min_delay %v must be positive", p.MinDelay))
	}
	if p.MinDelay > p.MaxDelay {
		errs = append(errs, fmt.Errorf("min_delay %v exceeds max_delay %v", p.MinDelay, p.MaxDelay))
	}
	if p.DefaultDelay < p.MinDelay || p.DefaultDelay > p.MaxDelay {
		errs = append(errs, fmt.Errorf("default_delay %v outside [%v, %v]", p.DefaultDelay, p.MinDelay, p.MaxDelay))
	}
	if p.DelayStep <= 0 {
		errs = append(errs, fmt.Errorf("delay_step %v must be positive", p.DelayStep))
	}
	if p.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("frame_rate %d must be positive", p.FrameRate))
	}

	l := c.Layout
	if l.CellWidth <= 0 || l.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("cell size %dx%d must be positive", l.CellWidth, l.CellHeight))
	}
	if l.Gap < 0 || l.MarginX < 0 || l.MarginY < 0 {
		errs = append(errs, errors.New("gap and margins must not be negative"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// PlaybackSettings converts the playback section for the state machine.
func (c LifeConfig) PlaybackSettings() life.Playback {
	return life.Playback{
		Default: c.Playback.DefaultDelay,
		Min:     c.Playback.MinDelay,
		Max:     c.Playback.MaxDelay,
		Step:    c.Playback.DelayStep,
	}
}

// LayoutSettings converts the layout section for the simulator.
func (c LifeConfig) LayoutSettings() life.Layout {
	return life.Layout{
		CellW:   c.Layout.CellWidth,
		CellH:   c.Layout.CellHeight,
		Gap:     c.Layout.Gap,
		MarginX: c.Layout.MarginX,
		MarginY: c.Layout.MarginY,
	}
}

// FieldFor returns the configured field, filling zero dimensions from the
// largest field that fits a screen of the given size.
func (c LifeConfig) FieldFor(screenW, screenH int) (life.Field, error) {
	fit := c.LayoutSettings().FitField(screenW, screenH)

	w, h := c.Field.Width, c.Field.Height
	if w == 0 {
		w = fit.W
	}
	if h == 0 {
		h = fit.H
	}
	return life.NewField(w, h)
}
