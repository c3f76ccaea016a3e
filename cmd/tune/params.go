package main

import (
	"github.com/pthm-cable/lasercool/config"
	"github.com/pthm-cable/lasercool/game"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path or control name for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the parameter set for the given config.
// Hue bounds follow the configured slider range.
func NewParamVector(cfg *config.Config) *ParamVector {
	cc := cfg.Controls
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "laser_hue", Path: "controls.hue_default", Min: cc.HueMin, Max: cc.HueMax, Default: cc.HueDefault},
			{Name: "intensity", Path: "controls.intensity", Min: cc.IntensityMin, Max: cc.IntensityMax, Default: (cc.IntensityMin + cc.IntensityMax) / 2},
			{Name: "aim", Path: "controls.laser", Min: 0, Max: 1, Default: 0.5},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		if spec.Max == spec.Min {
			continue
		}
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig writes the config-backed parameters. Order must match Specs.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)
	cfg.Controls.HueDefault = clamped[0]
}

// ApplyToGame moves the intensity and aiming sliders of a freshly created game.
// The hue slider already starts at the configured default.
func (pv *ParamVector) ApplyToGame(g *game.Game, values []float64) {
	clamped := pv.Clamp(values)
	c := g.Controls()
	c.Intensity.SetValue(clamped[1])
	c.Laser.Aim().SetValue(clamped[2])
}
