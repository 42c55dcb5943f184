package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm    = "bubbleSort"
	DefaultPreset       = "scenario"
	DefaultTheme        = "cyberpunk"
	DefaultFPS          = 30
	DefaultSpeed        = 1.0
	DefaultMoveMs       = 300
	DefaultFadeMs       = 150
	DefaultTrackDelayMs = 200
	DefaultCellWidth    = 4
	DefaultGap          = 1
	DefaultRaiseLow     = 2
	DefaultRaiseHigh    = 4
	DefaultRandomSize   = 8
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Algorithm string       `yaml:"algorithm"`
	Preset    string       `yaml:"preset"`
	Input     []int        `yaml:"input,omitempty"`
	Theme     string       `yaml:"theme"`
	FPS       int          `yaml:"fps"`
	Speed     float64      `yaml:"speed"`
	Seed      int64        `yaml:"seed"`
	Timing    TimingConfig `yaml:"timing"`
	Layout    LayoutConfig `yaml:"layout"`
}

type TimingConfig struct {
	MoveMs       int `yaml:"move_ms"`
	FadeMs       int `yaml:"fade_ms"`
	TrackDelayMs int `yaml:"track_delay_ms"`
}

type LayoutConfig struct {
	CellWidth int `yaml:"cell_width"`
	Gap       int `yaml:"gap"`
	RaiseLow  int `yaml:"raise_low"`
	RaiseHigh int `yaml:"raise_high"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Preset:    DefaultPreset,
		Theme:     DefaultTheme,
		FPS:       DefaultFPS,
		Speed:     DefaultSpeed,
		Timing: TimingConfig{
			MoveMs:       DefaultMoveMs,
			FadeMs:       DefaultFadeMs,
			TrackDelayMs: DefaultTrackDelayMs,
		},
		Layout: LayoutConfig{
			CellWidth: DefaultCellWidth,
			Gap:       DefaultGap,
			RaiseLow:  DefaultRaiseLow,
			RaiseHigh: DefaultRaiseHigh,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.FPS)
	case c.Speed <= 0:
		return fmt.Errorf("%w: speed %g", ErrInvalid, c.Speed)
	case c.Timing.MoveMs <= 0, c.Timing.FadeMs <= 0, c.Timing.TrackDelayMs <= 0:
		return fmt.Errorf("%w: timings must be positive (%+v)", ErrInvalid, c.Timing)
	case c.Layout.CellWidth <= 0 || c.Layout.Gap < 0:
		return fmt.Errorf("%w: layout %+v", ErrInvalid, c.Layout)
	case c.Layout.RaiseLow <= 0 || c.Layout.RaiseHigh <= c.Layout.RaiseLow:
		return fmt.Errorf("%w: raise lanes must satisfy 0 < low < high (%d, %d)", ErrInvalid, c.Layout.RaiseLow, c.Layout.RaiseHigh)
	}
	return nil
}

func (c *Config) MoveDuration() time.Duration {
	return time.Duration(c.Timing.MoveMs) * time.Millisecond
}

func (c *Config) FadeDuration() time.Duration {
	return time.Duration(c.Timing.FadeMs) * time.Millisecond
}

func (c *Config) TrackDelay() time.Duration {
	return time.Duration(c.Timing.TrackDelayMs) * time.Millisecond
}

// FrameInterval is the tick period for the configured frame rate.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// GetInput returns the explicit input if one is set, otherwise the preset's.
func (c *Config) GetInput() ([]int, error) {
	if len(c.Input) > 0 {
		return append([]int(nil), c.Input...), nil
	}
	if c.Preset == "random" {
		return RandomInput(DefaultRandomSize, c.Seed), nil
	}
	in, ok := GetPreset(c.Preset)
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset %q", ErrInvalid, c.Preset)
	}
	return in, nil
}
