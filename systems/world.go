// Package systems contains the ECS storage and per-tick systems for atoms and photons.
package systems

import (
	"cmp"
	"slices"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/lasercool/components"
	"github.com/pthm-cable/lasercool/config"
)

// AtomRef points at one atom's components. Pointers stay valid until the next
// structural change to the world (adding or removing entities).
type AtomRef struct {
	Entity ecs.Entity
	Seq    uint64
	Pos    *components.Position
	Vel    *components.Velocity
	Atom   *components.Atom
	Life   *components.Lifetime
}

// PhotonRef points at one photon's components, with the same validity rules as AtomRef.
type PhotonRef struct {
	Entity ecs.Entity
	Seq    uint64
	Pos    *components.Position
	Vel    *components.Velocity
	Photon *components.Photon
}

// ParticleWorld owns every atom and photon entity.
type ParticleWorld struct {
	world *ecs.World
	cfg   *config.Config

	atomMapper *ecs.Map5[
		components.Position,
		components.Velocity,
		components.Atom,
		components.Lifetime,
		components.Seq,
	]
	photonMapper *ecs.Map4[
		components.Position,
		components.Velocity,
		components.Photon,
		components.Seq,
	]

	atomFilter *ecs.Filter5[
		components.Position,
		components.Velocity,
		components.Atom,
		components.Lifetime,
		components.Seq,
	]
	photonFilter *ecs.Filter4[
		components.Position,
		components.Velocity,
		components.Photon,
		components.Seq,
	]
	// Matches atoms and photons alike
	motionFilter *ecs.Filter2[components.Position, components.Velocity]

	nextSeq uint64
	tick    int32
}

// NewParticleWorld creates an empty world. Photon speed and size are read from cfg.
func NewParticleWorld(cfg *config.Config) *ParticleWorld {
	world := ecs.NewWorld()

	return &ParticleWorld{
		world: world,
		cfg:   cfg,
		atomMapper: ecs.NewMap5[
			components.Position,
			components.Velocity,
			components.Atom,
			components.Lifetime,
			components.Seq,
		](world),
		photonMapper: ecs.NewMap4[
			components.Position,
			components.Velocity,
			components.Photon,
			components.Seq,
		](world),
		atomFilter: ecs.NewFilter5[
			components.Position,
			components.Velocity,
			components.Atom,
			components.Lifetime,
			components.Seq,
		](world),
		photonFilter: ecs.NewFilter4[
			components.Position,
			components.Velocity,
			components.Photon,
			components.Seq,
		](world),
		motionFilter: ecs.NewFilter2[components.Position, components.Velocity](world),
	}
}

func (w *ParticleWorld) seq() components.Seq {
	s := components.Seq{N: w.nextSeq}
	w.nextSeq++
	return s
}

// Tick returns the number of Advance calls so far.
func (w *ParticleWorld) Tick() int32 { return w.tick }

// AddAtom creates an atom entity stamped with the current tick.
func (w *ParticleWorld) AddAtom(pos components.Position, vel components.Velocity, atom components.Atom) ecs.Entity {
	seq := w.seq()
	life := components.Lifetime{BornTick: w.tick, EntrySpeed: r2.Norm(vel.Vec())}
	return w.atomMapper.NewEntity(&pos, &vel, &atom, &life, &seq)
}

// AddPhoton creates a photon entity.
func (w *ParticleWorld) AddPhoton(pos components.Position, vel components.Velocity, photon components.Photon) ecs.Entity {
	seq := w.seq()
	return w.photonMapper.NewEntity(&pos, &vel, &photon, &seq)
}

// EmitPhoton creates a photon of the given hue at (x, y) travelling left at the speed of light.
func (w *ParticleWorld) EmitPhoton(x, y, hue float64) {
	pc := w.cfg.Photon
	w.AddPhoton(
		components.Position{X: x, Y: y},
		components.Velocity{X: -pc.Speed, Y: 0},
		components.NewPhoton(hue, pc.Width, pc.Height),
	)
}

// Atoms returns every atom in creation order.
func (w *ParticleWorld) Atoms() []AtomRef {
	var refs []AtomRef
	query := w.atomFilter.Query()
	for query.Next() {
		pos, vel, atom, life, seq := query.Get()
		refs = append(refs, AtomRef{Entity: query.Entity(), Seq: seq.N, Pos: pos, Vel: vel, Atom: atom, Life: life})
	}
	slices.SortFunc(refs, func(a, b AtomRef) int { return cmp.Compare(a.Seq, b.Seq) })
	return refs
}

// Photons returns every photon in creation order.
func (w *ParticleWorld) Photons() []PhotonRef {
	var refs []PhotonRef
	query := w.photonFilter.Query()
	for query.Next() {
		pos, vel, photon, seq := query.Get()
		refs = append(refs, PhotonRef{Entity: query.Entity(), Seq: seq.N, Pos: pos, Vel: vel, Photon: photon})
	}
	slices.SortFunc(refs, func(a, b PhotonRef) int { return cmp.Compare(a.Seq, b.Seq) })
	return refs
}

// AtomCount returns the number of live atoms.
func (w *ParticleWorld) AtomCount() int {
	n := 0
	query := w.atomFilter.Query()
	for query.Next() {
		n++
	}
	return n
}

// PhotonCount returns the number of live photons.
func (w *ParticleWorld) PhotonCount() int {
	n := 0
	query := w.photonFilter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Remove deletes the given entities. Must not be called while a query is open.
func (w *ParticleWorld) Remove(entities []ecs.Entity) {
	for _, e := range entities {
		if w.world.Alive(e) {
			w.world.RemoveEntity(e)
		}
	}
}

// Clear removes all atoms and photons.
func (w *ParticleWorld) Clear() {
	var all []ecs.Entity
	query := w.motionFilter.Query()
	for query.Next() {
		all = append(all, query.Entity())
	}
	w.Remove(all)
}

// Advance moves every particle by its velocity. No bounds are checked here.
func (w *ParticleWorld) Advance() {
	w.tick++
	query := w.motionFilter.Query()
	for query.Next() {
		pos, vel := query.Get()
		pos.X += vel.X
		pos.Y += vel.Y
	}
}
