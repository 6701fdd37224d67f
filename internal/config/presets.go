package config

import "sort"

// Presets are well-known regions of Lyapunov space. Only the sequence and
// the parameter ranges are taken from a preset.
var Presets = map[string]*Config{
	"classic": {
		Sequence: DefaultSequence,
		A:        RangeConfig{Min: DefaultAMin, Max: DefaultAMax},
		B:        RangeConfig{Min: DefaultBMin, Max: DefaultBMax},
		C:        RangeConfig{Min: DefaultCMin, Max: DefaultCMax},
	},
	"ab": {
		Sequence: "AB",
		A:        RangeConfig{Min: 4.0, Max: 2.0},
		B:        RangeConfig{Min: 2.0, Max: 4.0},
		C:        RangeConfig{Min: DefaultCMin, Max: DefaultCMax},
	},
	"zircon": {
		Sequence: "BBBBBBAAAAAA",
		A:        RangeConfig{Min: 4.0, Max: 3.4},
		B:        RangeConfig{Min: 2.5, Max: 3.4},
		C:        RangeConfig{Min: DefaultCMin, Max: DefaultCMax},
	},
	"abc-volume": {
		Sequence: "ABCABC",
		A:        RangeConfig{Min: 4.0, Max: 2.4},
		B:        RangeConfig{Min: 2.4, Max: 4.0},
		C:        RangeConfig{Min: 2.5, Max: 4.0},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset copies the sequence and ranges of preset p into c.
func (c *Config) ApplyPreset(p *Config) {
	c.Sequence = p.Sequence
	c.A = p.A
	c.B = p.B
	c.C = p.C
}
