package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/lyapfrac/internal/export"
	"github.com/san-kum/lyapfrac/internal/grid"
	"github.com/san-kum/lyapfrac/internal/sequence"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Sequence != "BBBABBAAAAAA" {
		t.Errorf("expected default sequence, got %s", cfg.Sequence)
	}
	if cfg.A.Min <= cfg.A.Max {
		t.Error("default vertical range should be inverted")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
	if cfg.Layout() != export.LayoutLegacy {
		t.Error("default layout should be legacy")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Config)
		field string
		want  error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "size", ErrSize},
		{"negative height", func(c *Config) { c.Height = -1 }, "size", ErrSize},
		{"no iterations", func(c *Config) { c.Iterations = 0 }, "iterations", ErrIterations},
		{"negative frames", func(c *Config) { c.Frames = -2 }, "frames", ErrFrames},
		{"huge volume", func(c *Config) { c.Frames = 2; c.Width = 70000 }, "size", export.ErrDimension},
		{"empty sequence", func(c *Config) { c.Sequence = "" }, "sequence", sequence.ErrEmpty},
		{"bad symbol", func(c *Config) { c.Sequence = "ABX" }, "sequence", sequence.ErrInvalidSymbol},
		{"bad center", func(c *Config) { c.Center = "1:2" }, "center", grid.ErrBadCenter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(cfg)

			err := cfg.Validate()
			var cerr *Error
			if !errors.As(err, &cerr) {
				t.Fatalf("expected *Error, got %v", err)
			}
			if cerr.Field != tt.field {
				t.Errorf("field = %s, want %s", cerr.Field, tt.field)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error %v does not wrap %v", err, tt.want)
			}
		})
	}
}

func TestApplyCenter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 400, 200
	cfg.Center = "3:3.5:1"

	if _, err := cfg.ApplyCenter(); err != nil {
		t.Fatalf("ApplyCenter failed: %v", err)
	}
	if cfg.B.Min != 2.5 || cfg.B.Max != 3.5 {
		t.Errorf("b range = %v", cfg.B)
	}
	if cfg.A.Min != 3.75 || cfg.A.Max != 3.25 {
		t.Errorf("a range = %v", cfg.A)
	}
}

func TestApplyCenter_Malformed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Center = "3:3.5"

	_, err := cfg.ApplyCenter()
	if !errors.Is(err, grid.ErrBadCenter) {
		t.Errorf("expected ErrBadCenter, got %v", err)
	}
	if cfg.A.Min != DefaultAMin {
		t.Error("ranges must stay untouched on error")
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")

	cfg := DefaultConfig()
	cfg.Sequence = "AB"
	cfg.Frames = 16
	cfg.StrictHeader = true
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Sequence != "AB" || loaded.Frames != 16 || !loaded.StrictHeader {
		t.Errorf("unexpected config: %+v", loaded)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("sequence: ABBA\nb:\n  min: 3\n  max: 4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Sequence != "ABBA" || cfg.B.Min != 3 || cfg.B.Max != 4 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Width != DefaultWidth || cfg.Iterations != DefaultIterations {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	var cerr *Error

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.As(err, &cerr) {
		t.Errorf("expected *Error for missing file, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("width: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.As(err, &cerr) {
		t.Errorf("expected *Error for broken yaml, got %v", err)
	}
}

func TestPlaneAndDepth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Frames = 10, 20, 5

	p := cfg.Plane()
	if p.Width() != 10 || p.Height() != 20 {
		t.Errorf("plane = %dx%d", p.Width(), p.Height())
	}
	if p.Rows.Lo != DefaultAMin || p.Cols.Lo != DefaultBMin {
		t.Error("rows must walk a, columns must walk b")
	}
	if d := cfg.Depth(); d.Size != 5 || d.Lo != DefaultCMin || d.Hi != DefaultCMax {
		t.Errorf("depth = %+v", d)
	}
}

func TestLoadInto_OverlaysPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "over.yaml")
	if err := os.WriteFile(path, []byte("iterations: 50\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.ApplyPreset(GetPreset("ab"))
	if err := LoadInto(path, cfg); err != nil {
		t.Fatalf("LoadInto failed: %v", err)
	}

	if cfg.Iterations != 50 {
		t.Errorf("iterations = %d, want 50", cfg.Iterations)
	}
	if cfg.Sequence != "AB" || cfg.A.Min != 4.0 {
		t.Errorf("preset values lost: %+v", cfg)
	}
}
