package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/lasercool/components"
)

// Absorber applies photon absorption to atoms.
type Absorber struct {
	Gain    float64 // speed gained along the photon's direction per absorption
	Doppler DopplerModel
}

// AbsorptionResult summarizes one collision pass.
type AbsorptionResult struct {
	Absorbed int // photons absorbed
	Stopped  int // atoms whose horizontal velocity dropped to zero or below this pass
}

// TryAbsorb tests one atom against one photon. The hitboxes are circles and
// must strictly overlap; the hue difference must be strictly below the atom's
// tolerance. On success the atom is kicked along the photon's direction and
// its displayed hue recomputed from the new velocity.
func (a Absorber) TryAbsorb(pos components.Position, vel *components.Velocity, atom *components.Atom,
	photonPos components.Position, photonVel components.Velocity, photon *components.Photon) bool {

	reach := atom.Radius + photon.HitRadius
	d := r2.Sub(pos.Vec(), photonPos.Vec())
	if r2.Norm2(d) >= reach*reach || !atom.Accepts(photon.Hue) {
		return false
	}

	if n := r2.Norm(photonVel.Vec()); n > 0 {
		kick := r2.Scale(a.Gain/n, photonVel.Vec())
		*vel = components.Velocity(r2.Add(vel.Vec(), kick))
	}
	a.Doppler.Recolor(atom, vel.X)
	return true
}

// Resolve tests every atom against every live photon, both in creation order.
// An absorbed photon is marked and skipped for the rest of the pass; marked
// photons are removed once the pass completes.
func (a Absorber) Resolve(w *ParticleWorld) AbsorptionResult {
	var res AbsorptionResult

	atoms := w.Atoms()
	photons := w.Photons()
	if len(atoms) == 0 || len(photons) == 0 {
		return res
	}

	absorbed := make([]bool, len(photons))
	var dead []ecs.Entity

	for _, ar := range atoms {
		movingRight := ar.Vel.X > 0
		for i, pr := range photons {
			if absorbed[i] {
				continue
			}
			if a.TryAbsorb(*ar.Pos, ar.Vel, ar.Atom, *pr.Pos, *pr.Vel, pr.Photon) {
				absorbed[i] = true
				ar.Life.Absorbed++
				dead = append(dead, pr.Entity)
				res.Absorbed++
			}
		}
		if movingRight && ar.Vel.X <= 0 {
			res.Stopped++
		}
	}

	w.Remove(dead)
	return res
}
