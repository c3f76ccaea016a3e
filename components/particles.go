// Package components defines ECS components for the simulation.
package components

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/lasercool/colors"
)

// Position represents an entity's position in window coordinates.
type Position struct {
	X, Y float64
}

// Velocity represents an entity's velocity in pixels per tick.
type Velocity struct {
	X, Y float64
}

// Seq records creation order. Entity IDs are recycled, so passes that must
// visit particles in a stable order sort by Seq instead.
type Seq struct {
	N uint64
}

// Vec returns the position as a vector.
func (p Position) Vec() r2.Vec { return r2.Vec(p) }

// Vec returns the velocity as a vector.
func (v Velocity) Vec() r2.Vec { return r2.Vec(v) }

// Atom holds the optical state of an atom.
type Atom struct {
	BaseHue  float64 // identity color, never changes
	Hue      float64 // displayed hue, Doppler shifted when enabled
	Sat      float64
	Val      float64
	HueRange float64 // photons are absorbed when the hue difference is strictly below this
	Doppler  bool
	Radius   float64
}

// Color returns the displayed color.
func (a *Atom) Color() colors.HSV {
	return colors.HSV{Hue: a.Hue, Sat: a.Sat, Val: a.Val}
}

// Accepts reports whether a photon of the given hue is within this atom's tolerance.
func (a *Atom) Accepts(photonHue float64) bool {
	return math.Abs(a.Hue-photonHue) < a.HueRange
}

// Lifetime records an atom's history from arrival until it leaves the play area.
type Lifetime struct {
	BornTick   int32
	EntrySpeed float64
	Absorbed   int // photons absorbed so far
}

// Photon holds the optical state and hitbox of a photon.
type Photon struct {
	Hue       float64
	Sat       float64
	Val       float64
	Width     float64
	Height    float64
	HitRadius float64 // circular hitbox
}

// NewPhoton creates a fully saturated photon of the given hue and size.
func NewPhoton(hue, width, height float64) Photon {
	return Photon{
		Hue:       hue,
		Sat:       100,
		Val:       100,
		Width:     width,
		Height:    height,
		HitRadius: math.Min(width, height) / 2,
	}
}

// Color returns the fill color.
func (p *Photon) Color() colors.HSV {
	return colors.HSV{Hue: p.Hue, Sat: p.Sat, Val: p.Val}
}

// Bounds returns the bounding box centered on pos.
func (p *Photon) Bounds(pos Position) (x, y, w, h float64) {
	return pos.X - p.Width/2, pos.Y - p.Height/2, p.Width, p.Height
}
