package systems

import (
	"math"

	"github.com/pthm-cable/lasercool/components"
	"github.com/pthm-cable/lasercool/config"
)

// maxBeta keeps vx/c away from ±1 so the shift stays finite.
const maxBeta = 0.99

// DopplerModel recolors an atom from its horizontal speed. It is a visual
// analog of the relativistic shift, tuned so that the slider's hue span maps
// onto the visible wavelength range.
type DopplerModel struct {
	SpeedOfLight float64
	Gain         float64 // FreqMin/(FreqMax-FreqMin)
	HueMin       float64
	HueMax       float64
}

// NewDopplerModel builds the model from config.
func NewDopplerModel(cfg *config.Config) DopplerModel {
	return DopplerModel{
		SpeedOfLight: cfg.Doppler.SpeedOfLight,
		Gain:         cfg.Derived.DopplerGain,
		HueMin:       cfg.Controls.HueMin,
		HueMax:       cfg.Controls.HueMax,
	}
}

// Shift returns the hue seen by an atom with base hue baseHue moving at vx.
func (m DopplerModel) Shift(baseHue, vx float64) float64 {
	beta := vx / m.SpeedOfLight
	beta = math.Max(-maxBeta, math.Min(maxBeta, beta))
	k := m.Gain*(m.HueMax-m.HueMin) + baseHue - m.HueMin
	return baseHue - (1-math.Sqrt((1-beta)/(1+beta)))*k
}

// Recolor sets the atom's displayed hue for its current horizontal speed.
func (m DopplerModel) Recolor(atom *components.Atom, vx float64) {
	if !atom.Doppler {
		atom.Hue = atom.BaseHue
		return
	}
	atom.Hue = m.Shift(atom.BaseHue, vx)
}
