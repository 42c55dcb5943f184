package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "bubbleSort" {
		t.Errorf("expected algorithm bubbleSort, got %s", cfg.Algorithm)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if cfg.TrackDelay() != 200*time.Millisecond {
		t.Errorf("expected 200ms track delay, got %v", cfg.TrackDelay())
	}
	if cfg.FrameInterval() <= 0 {
		t.Error("frame interval should be positive")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"negative speed", func(c *Config) { c.Speed = -1 }},
		{"zero move", func(c *Config) { c.Timing.MoveMs = 0 }},
		{"zero track delay", func(c *Config) { c.Timing.TrackDelayMs = 0 }},
		{"zero cell", func(c *Config) { c.Layout.CellWidth = 0 }},
		{"lanes inverted", func(c *Config) { c.Layout.RaiseHigh = 1 }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.modify(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", tt.name, err)
		}
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")
	cfg := DefaultConfig()
	cfg.Algorithm = "quickSort"
	cfg.Input = []int{3, 1, 2}
	cfg.Timing.MoveMs = 120

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Algorithm != "quickSort" || loaded.Timing.MoveMs != 120 || len(loaded.Input) != 3 {
		t.Errorf("unexpected config after round trip: %+v", loaded)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("algorithm: insertionSort\ntiming:\n  move_ms: 50\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Algorithm != "insertionSort" || cfg.Timing.MoveMs != 50 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Timing.FadeMs != DefaultFadeMs || cfg.FPS != DefaultFPS {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("fps: -3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	in, ok := GetPreset("reversed")
	if !ok {
		t.Fatal("expected preset")
	}
	if len(in) != 5 || in[0] != 5 {
		t.Errorf("unexpected reversed preset %v", in)
	}

	in[0] = 99
	again, _ := GetPreset("reversed")
	if again[0] != 5 {
		t.Error("GetPreset must return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if _, ok := GetPreset("nonexistent"); ok {
		t.Error("expected no preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets)+1 {
		t.Errorf("expected %d presets, got %v", len(Presets)+1, presets)
	}
}

func TestRandomInput(t *testing.T) {
	a := RandomInput(10, 42)
	b := RandomInput(10, 42)
	if len(a) != 10 {
		t.Fatalf("expected 10 values, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed must give the same input")
		}
		if a[i] < 1 || a[i] > 20 {
			t.Errorf("value %d out of range", a[i])
		}
	}
	if len(RandomInput(0, 1)) != 0 {
		t.Error("expected empty input for n=0")
	}
}

func TestGetInput(t *testing.T) {
	cfg := DefaultConfig()
	in, err := cfg.GetInput()
	if err != nil {
		t.Fatal(err)
	}
	if len(in) != 6 {
		t.Errorf("expected scenario preset, got %v", in)
	}

	cfg.Input = []int{9, 8}
	if in, _ := cfg.GetInput(); len(in) != 2 {
		t.Errorf("explicit input ignored: %v", in)
	}

	cfg.Input = nil
	cfg.Preset = "random"
	if in, _ := cfg.GetInput(); len(in) != DefaultRandomSize {
		t.Errorf("expected random input of %d, got %v", DefaultRandomSize, in)
	}

	cfg.Preset = "missing"
	if _, err := cfg.GetInput(); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestGeometry(t *testing.T) {
	cfg := DefaultConfig()
	g := cfg.Geometry()
	if g.Pitch != float64(DefaultCellWidth+DefaultGap) {
		t.Errorf("expected pitch %d, got %v", DefaultCellWidth+DefaultGap, g.Pitch)
	}
	if g.Baseline-g.RaiseHigh < 0 {
		t.Error("raised slots must stay on the surface")
	}
	if cfg.NewStage().Speed() != DefaultSpeed {
		t.Error("stage speed not applied")
	}
}
