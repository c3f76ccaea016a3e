package systems

import (
	"math/rand"

	"github.com/pthm-cable/lasercool/components"
	"github.com/pthm-cable/lasercool/config"
)

// SpawnParams selects the kind of atom to create.
type SpawnParams struct {
	Level        int
	SharedHue    float64 // level 3 hue shared by every atom
	HasSharedHue bool
}

// Spawner governs atom arrivals. Tick always stays in [0, Interval).
type Spawner struct {
	Tick     int
	Interval int
}

// NewSpawner creates a timer that fires for the first time offset ticks early.
func NewSpawner(interval, offset int) Spawner {
	interval = max(interval, 1)
	return Spawner{
		Tick:     max(interval-offset, 1) % interval,
		Interval: interval,
	}
}

// Step advances the timer and spawns one atom on wraparound. Each spawn shrinks
// the interval geometrically toward the level's floor. Reports whether an atom was created.
func (s *Spawner) Step(w *ParticleWorld, cfg *config.Config, rng *rand.Rand, p SpawnParams) bool {
	s.Interval = max(s.Interval, 1)
	s.Tick = (s.Tick + 1) % s.Interval
	if s.Tick != 0 {
		return false
	}

	pos, vel, atom := NewAtom(cfg, rng, p)
	w.AddAtom(pos, vel, atom)

	floor := cfg.FinalInterval(p.Level)
	next := int(float64(floor) + float64(s.Interval-floor)*cfg.Spawner.Decay)
	s.Interval = max(min(next, s.Interval), 1)
	return true
}

// NewAtom draws a new atom at the left edge of the play area. Draw order is
// vertical position, speed, then hue (level 2 only).
func NewAtom(cfg *config.Config, rng *rand.Rand, p SpawnParams) (components.Position, components.Velocity, components.Atom) {
	ac := cfg.Atom
	r := ac.Radius

	x := cfg.Derived.PlayLeft - r
	y := uniform(rng, cfg.Derived.PlayTop+r, cfg.Derived.PlayBottom-r)
	speed := uniform(rng, ac.SpeedMin, ac.SpeedMax)

	atom := components.Atom{Radius: r, Sat: 100, Val: 100, HueRange: ac.AbsorptionRange}
	switch p.Level {
	case 1:
		atom.BaseHue = ac.Level1Hue
		atom.Sat = ac.Level1Saturation
		atom.Val = ac.Level1Value
		atom.HueRange = ac.Level1AbsorptionRange
	case 2:
		atom.BaseHue = uniform(rng, cfg.Controls.HueMin, cfg.Controls.HueMax)
	case 3:
		atom.BaseHue = ac.Level3DefaultHue
		if p.HasSharedHue {
			atom.BaseHue = p.SharedHue
		}
		atom.Doppler = true
	default:
		atom.BaseHue = ac.Level1Hue
		atom.Sat = ac.Level1Saturation
		atom.Val = ac.Level1Value
		atom.HueRange = ac.FallbackAbsorptionRange
	}

	vel := components.Velocity{X: speed, Y: 0}
	NewDopplerModel(cfg).Recolor(&atom, vel.X)

	return components.Position{X: x, Y: y}, vel, atom
}

// uniform returns a value in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
