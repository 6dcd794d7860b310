package terrain

import (
	"errors"
	"fmt"

	"islands/internal/core"
)

// Params controls terrain synthesis and biome classification.
type Params struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Scale       float64 `yaml:"scale"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	EdgePower   float64 `yaml:"edge_power"`
	Sharpen     float64 `yaml:"sharpen"`

	Levels Levels `yaml:"levels"`
}

// Levels holds the ascending height thresholds used for classification.
type Levels struct {
	Water  float64 `yaml:"water"`
	Sand   float64 `yaml:"sand"`
	Land   float64 `yaml:"land"`
	Forest float64 `yaml:"forest"`
}

// DefaultParams returns the standard island configuration.
func DefaultParams() Params {
	return Params{
		Width:       1024,
		Height:      768,
		Seed:        42,
		Scale:       7,
		Octaves:     5,
		Persistence: 0.5,
		Lacunarity:  2.0,
		EdgePower:   3,
		Sharpen:     1.8,
		Levels: Levels{
			Water:  0.24,
			Sand:   0.27,
			Land:   0.45,
			Forest: 0.6,
		},
	}
}

// Validate reports every malformed parameter. Each error wraps core.ErrInvalidConfig.
func (p Params) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: terrain: "+format, append([]any{core.ErrInvalidConfig}, args...)...))
	}
	if p.Width <= 0 {
		bad("width must be positive, got %d", p.Width)
	}
	if p.Height <= 0 {
		bad("height must be positive, got %d", p.Height)
	}
	if p.Octaves <= 0 {
		bad("octaves must be positive, got %d", p.Octaves)
	}
	if p.Scale <= 0 {
		bad("scale must be positive, got %g", p.Scale)
	}
	if p.Persistence <= 0 {
		bad("persistence must be positive, got %g", p.Persistence)
	}
	if p.Lacunarity <= 0 {
		bad("lacunarity must be positive, got %g", p.Lacunarity)
	}
	if p.EdgePower < 0 {
		bad("edge_power must not be negative, got %g", p.EdgePower)
	}
	if p.Sharpen <= 0 {
		bad("sharpen must be positive, got %g", p.Sharpen)
	}
	lv := p.Levels
	for _, l := range []struct {
		name string
		v    float64
	}{{"water", lv.Water}, {"sand", lv.Sand}, {"land", lv.Land}, {"forest", lv.Forest}} {
		if l.v < 0 || l.v > 1 {
			bad("%s level must be within [0,1], got %g", l.name, l.v)
		}
	}
	if !(lv.Water <= lv.Sand && lv.Sand <= lv.Land && lv.Land <= lv.Forest) {
		bad("levels must ascend water <= sand <= land <= forest, got %g/%g/%g/%g", lv.Water, lv.Sand, lv.Land, lv.Forest)
	}
	return errors.Join(errs...)
}
