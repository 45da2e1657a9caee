package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-life/internal/life"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error = %v", err)
	}
	if cfg != DefaultLifeConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultLifeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("field:\n  width: 40\nplayback:\n  default_delay: 300ms\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Field.Width != 40 || cfg.Field.Height != 0 {
		t.Errorf("Field = %+v, expected width 40 and height 0", cfg.Field)
	}
	if cfg.Playback.DefaultDelay != 300*time.Millisecond {
		t.Errorf("DefaultDelay = %v, expected 300ms", cfg.Playback.DefaultDelay)
	}
	if cfg.Playback.MaxDelay != time.Second {
		t.Errorf("MaxDelay = %v, expected default 1s", cfg.Playback.MaxDelay)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	if err := os.WriteFile(path, []byte("layout:\n  cell_width: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Layout.CellWidth != 1 {
		t.Errorf("CellWidth = %d, expected 1", cfg.Layout.CellWidth)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("playback:\n  min_delay: 2s\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("Load() of an invalid config should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*LifeConfig)
	}{
		{"negative width", func(c *LifeConfig) { c.Field.Width = -1 }},
		{"zero min delay", func(c *LifeConfig) { c.Playback.MinDelay = 0 }},
		{"min above max", func(c *LifeConfig) { c.Playback.MinDelay = 2 * time.Second }},
		{"default out of range", func(c *LifeConfig) { c.Playback.DefaultDelay = 5 * time.Second }},
		{"zero step", func(c *LifeConfig) { c.Playback.DelayStep = 0 }},
		{"zero frame rate", func(c *LifeConfig) { c.Playback.FrameRate = 0 }},
		{"zero cell width", func(c *LifeConfig) { c.Layout.CellWidth = 0 }},
		{"negative gap", func(c *LifeConfig) { c.Layout.Gap = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultLifeConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.HasPrefix(err.Error(), "config: ") {
				t.Errorf("error %q lacks the config prefix", err)
			}
		})
	}
}

func TestSettingsConversion(t *testing.T) {
	cfg := DefaultLifeConfig()

	if got := cfg.PlaybackSettings(); got != life.DefaultPlayback() {
		t.Errorf("PlaybackSettings() = %+v, expected %+v", got, life.DefaultPlayback())
	}
	if got := cfg.LayoutSettings(); got != life.DefaultLayout() {
		t.Errorf("LayoutSettings() = %+v, expected %+v", got, life.DefaultLayout())
	}
}

func TestFieldFor(t *testing.T) {
	cfg := DefaultLifeConfig()

	f, err := cfg.FieldFor(80, 24)
	if err != nil {
		t.Fatalf("FieldFor() error = %v", err)
	}
	if f != (life.Field{W: 39, H: 17}) {
		t.Errorf("FieldFor(80, 24) = %v, expected 39x17", f)
	}

	cfg.Field.Width = 137
	cfg.Field.Height = 70
	f, err = cfg.FieldFor(80, 24)
	if err != nil {
		t.Fatalf("FieldFor() error = %v", err)
	}
	if f != (life.Field{W: 137, H: 70}) {
		t.Errorf("FieldFor() = %v, expected the configured 137x70", f)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultLifeConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "default_delay: 500ms") {
		t.Errorf("durations should encode as strings, got:\n%s", data)
	}

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg != DefaultLifeConfig() {
		t.Errorf("round trip = %+v", cfg)
	}
}
