package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/lyapfrac/internal/export"
	"github.com/san-kum/lyapfrac/internal/grid"
	"github.com/san-kum/lyapfrac/internal/sequence"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth      = 800
	DefaultHeight     = 800
	DefaultSequence   = "BBBABBAAAAAA"
	DefaultIterations = 1000
	DefaultAMin       = 3.999
	DefaultAMax       = 2.4
	DefaultBMin       = 2.4
	DefaultBMax       = 3.999
	DefaultCMin       = 2.5
	DefaultCMax       = 4.0
)

var (
	ErrSize       = errors.New("size must be positive")
	ErrIterations = errors.New("iteration count must be at least 1")
	ErrFrames     = errors.New("frame count must not be negative")
)

// Error is a configuration problem. It is always fatal.
type Error struct {
	Field string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Field, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Config describes one render. The a axis runs down the rows, b across the
// columns and c across frames.
type Config struct {
	Width        int         `yaml:"width"`
	Height       int         `yaml:"height"`
	Frames       int         `yaml:"frames"`
	Sequence     string      `yaml:"sequence"`
	Iterations   int         `yaml:"iterations"`
	A            RangeConfig `yaml:"a"`
	B            RangeConfig `yaml:"b"`
	C            RangeConfig `yaml:"c"`
	Center       string      `yaml:"center,omitempty"`
	Workers      int         `yaml:"workers,omitempty"`
	StrictHeader bool        `yaml:"strict_header,omitempty"`
}

type RangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Sequence:   DefaultSequence,
		Iterations: DefaultIterations,
		A:          RangeConfig{Min: DefaultAMin, Max: DefaultAMax},
		B:          RangeConfig{Min: DefaultBMin, Max: DefaultBMax},
		C:          RangeConfig{Min: DefaultCMin, Max: DefaultCMax},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the keys present in the yaml file at path onto cfg.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Error{Field: "file", Err: err}
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return &Error{Field: "file", Err: fmt.Errorf("%s: %w", path, err)}
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyCenter replaces the a and b ranges with the ones derived from Center.
// It does nothing when Center is empty.
func (c *Config) ApplyCenter() (grid.Center, error) {
	if c.Center == "" {
		return grid.Center{}, nil
	}
	if c.Width <= 0 || c.Height <= 0 {
		return grid.Center{}, &Error{Field: "size", Err: ErrSize}
	}
	center, err := grid.ParseCenter(c.Center)
	if err != nil {
		return grid.Center{}, &Error{Field: "center", Err: err}
	}
	c.B.Min, c.B.Max, c.A.Min, c.A.Max = center.Bounds(c.Width, c.Height)
	return center, nil
}

// Validate checks everything the render pipeline relies on.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return &Error{Field: "size", Err: fmt.Errorf("%w: %dx%d", ErrSize, c.Width, c.Height)}
	}
	if c.Iterations < 1 {
		return &Error{Field: "iterations", Err: fmt.Errorf("%w: %d", ErrIterations, c.Iterations)}
	}
	if c.Frames < 0 {
		return &Error{Field: "frames", Err: fmt.Errorf("%w: %d", ErrFrames, c.Frames)}
	}
	if c.Frames > 0 {
		for _, d := range []int{c.Width, c.Height, c.Frames} {
			if d > export.MaxVolumeDim {
				return &Error{Field: "size", Err: fmt.Errorf("%w: %dx%dx%d", export.ErrDimension, c.Width, c.Height, c.Frames)}
			}
		}
	}
	if _, err := sequence.Parse(c.Sequence); err != nil {
		return &Error{Field: "sequence", Err: err}
	}
	if c.Center != "" {
		if _, err := grid.ParseCenter(c.Center); err != nil {
			return &Error{Field: "center", Err: err}
		}
	}
	return nil
}

// ControlSequence parses Sequence.
func (c *Config) ControlSequence() (sequence.Sequence, error) {
	seq, err := sequence.Parse(c.Sequence)
	if err != nil {
		return nil, &Error{Field: "sequence", Err: err}
	}
	return seq, nil
}

// Plane returns the sampling grid of one frame.
func (c *Config) Plane() grid.Plane {
	return grid.Plane{
		Rows: grid.Axis{Lo: c.A.Min, Hi: c.A.Max, Size: c.Height},
		Cols: grid.Axis{Lo: c.B.Min, Hi: c.B.Max, Size: c.Width},
	}
}

// Depth returns the c axis sampled across Frames.
func (c *Config) Depth() grid.Axis {
	return grid.Axis{Lo: c.C.Min, Hi: c.C.Max, Size: c.Frames}
}

// Layout picks the raster header layout.
func (c *Config) Layout() export.Layout {
	if c.StrictHeader {
		return export.LayoutStrict
	}
	return export.LayoutLegacy
}
