package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/lasercool/components"
	"github.com/pthm-cable/lasercool/config"
)

// Region is an inclusive axis-aligned rectangle.
type Region struct {
	Left, Top, Right, Bottom float64
}

// Contains reports whether (x, y) lies inside or on the edge of the region.
func (r Region) Contains(x, y float64) bool {
	return r.Left <= x && x <= r.Right && r.Top <= y && y <= r.Bottom
}

// Grow returns the region expanded by m on every side.
func (r Region) Grow(m float64) Region {
	return Region{Left: r.Left - m, Top: r.Top - m, Right: r.Right + m, Bottom: r.Bottom + m}
}

// PlayRegion returns the play area in window coordinates.
func PlayRegion(cfg *config.Config) Region {
	d := cfg.Derived
	return Region{Left: d.PlayLeft, Top: d.PlayTop, Right: d.PlayRight, Bottom: d.PlayBottom}
}

// AtomRegion is where atoms may live: the play area plus one radius and one pixel.
func AtomRegion(cfg *config.Config) Region {
	return PlayRegion(cfg).Grow(cfg.Atom.Radius + 1)
}

// PhotonRegion is where photons may still reach an atom.
func PhotonRegion(cfg *config.Config) Region {
	return AtomRegion(cfg).Grow(cfg.Atom.Radius + cfg.Photon.Width)
}

// AtomExit is a copy of an atom's state at the moment it was culled.
type AtomExit struct {
	Seq  uint64
	Pos  components.Position
	Vel  components.Velocity
	Atom components.Atom
	Life components.Lifetime
}

// CullAtoms removes atoms outside the region and returns them in creation order.
func (w *ParticleWorld) CullAtoms(region Region) []AtomExit {
	var exits []AtomExit
	var out []ecs.Entity
	for _, ar := range w.Atoms() {
		if region.Contains(ar.Pos.X, ar.Pos.Y) {
			continue
		}
		exits = append(exits, AtomExit{Seq: ar.Seq, Pos: *ar.Pos, Vel: *ar.Vel, Atom: *ar.Atom, Life: *ar.Life})
		out = append(out, ar.Entity)
	}
	w.Remove(out)
	return exits
}

// CullPhotons removes photons outside the region and returns how many were removed.
func (w *ParticleWorld) CullPhotons(region Region) int {
	var out []ecs.Entity
	query := w.photonFilter.Query()
	for query.Next() {
		pos, _, _, _ := query.Get()
		if !region.Contains(pos.X, pos.Y) {
			out = append(out, query.Entity())
		}
	}
	w.Remove(out)
	return len(out)
}
