package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/lasercool/components"
	"github.com/pthm-cable/lasercool/config"
)

func testAbsorber(cfg *config.Config) Absorber {
	return Absorber{Gain: cfg.Atom.CollisionSpeedGain, Doppler: NewDopplerModel(cfg)}
}

func grayAtom(hueRange float64) components.Atom {
	return components.Atom{BaseHue: 180, Hue: 180, Sat: 0, Val: 50, HueRange: hueRange, Radius: 16}
}

// TestTryAbsorbDistanceBoundary verifies the hitboxes must strictly overlap.
func TestTryAbsorbDistanceBoundary(t *testing.T) {
	cfg := config.Default()
	a := testAbsorber(cfg)
	photon := components.NewPhoton(180, 12, 8) // hit radius 4
	reach := 16.0 + photon.HitRadius

	tests := []struct {
		name string
		dist float64
		want bool
	}{
		{"touching", reach, false},
		{"just inside", reach - 1e-6, true},
		{"far", reach + 5, false},
		{"concentric", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			atom := grayAtom(360)
			vel := components.Velocity{}
			pos := components.Position{X: 200, Y: 100}
			ppos := components.Position{X: 200 + tt.dist, Y: 100}
			pvel := components.Velocity{X: -8}

			got := a.TryAbsorb(pos, &vel, &atom, ppos, pvel, &photon)
			if got != tt.want {
				t.Fatalf("TryAbsorb at distance %v = %v, want %v", tt.dist, got, tt.want)
			}
			if got && math.Hypot(vel.X, vel.Y) <= 0 {
				t.Errorf("speed did not increase after absorption: %+v", vel)
			}
			if !got && (vel.X != 0 || vel.Y != 0) {
				t.Errorf("velocity changed without absorption: %+v", vel)
			}
		})
	}
}

// TestTryAbsorbHueTolerance verifies the hue test uses a strict comparison.
func TestTryAbsorbHueTolerance(t *testing.T) {
	cfg := config.Default()
	a := testAbsorber(cfg)

	tests := []struct {
		name      string
		photonHue float64
		want      bool
	}{
		{"equal hue", 140, true},
		{"diff tolerance-1 below", 116, true},
		{"diff tolerance-1 above", 164, true},
		{"diff equals tolerance below", 115, false},
		{"diff equals tolerance above", 165, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			atom := components.Atom{BaseHue: 140, Hue: 140, Sat: 100, Val: 100, HueRange: 25, Radius: 16}
			photon := components.NewPhoton(tt.photonHue, 12, 8)
			vel := components.Velocity{X: 1}
			pos := components.Position{X: 300, Y: 150}

			got := a.TryAbsorb(pos, &vel, &atom, pos, components.Velocity{X: -8}, &photon)
			if got != tt.want {
				t.Errorf("TryAbsorb(hue %v vs 140) = %v, want %v", tt.photonHue, got, tt.want)
			}
		})
	}
}

func TestTryAbsorbKickDirection(t *testing.T) {
	cfg := config.Default()
	a := testAbsorber(cfg)
	atom := grayAtom(360)
	photon := components.NewPhoton(140, 12, 8)
	vel := components.Velocity{X: 1.0, Y: 0}
	pos := components.Position{X: 300, Y: 150}

	if !a.TryAbsorb(pos, &vel, &atom, pos, components.Velocity{X: -8}, &photon) {
		t.Fatal("expected absorption")
	}
	// Leftward photon slows a right-moving atom by the collision gain
	if math.Abs(vel.X-(1.0-0.175)) > 1e-9 || vel.Y != 0 {
		t.Errorf("velocity after kick = %+v, want (0.825, 0)", vel)
	}
}

func TestTryAbsorbRecolorsDopplerAtom(t *testing.T) {
	cfg := config.Default()
	a := testAbsorber(cfg)
	dm := NewDopplerModel(cfg)

	atom := components.Atom{BaseHue: 110, Sat: 100, Val: 100, HueRange: 25, Doppler: true, Radius: 16}
	vel := components.Velocity{X: 1.0}
	dm.Recolor(&atom, vel.X)
	before := atom.Hue

	photon := components.NewPhoton(before, 12, 8)
	pos := components.Position{X: 300, Y: 150}
	if !a.TryAbsorb(pos, &vel, &atom, pos, components.Velocity{X: -8}, &photon) {
		t.Fatal("expected absorption")
	}

	want := dm.Shift(110, vel.X)
	if math.Abs(atom.Hue-want) > 1e-9 {
		t.Errorf("hue after absorption = %v, want %v", atom.Hue, want)
	}
	// Slower atoms are shifted less, so the displayed hue moves back toward the base
	if !(atom.Hue > before) {
		t.Errorf("hue should rise toward base after slowing: before %v after %v", before, atom.Hue)
	}
}

func TestResolveRemovesAbsorbedPhotons(t *testing.T) {
	cfg := config.Default()
	w := NewParticleWorld(cfg)
	a := testAbsorber(cfg)

	w.AddAtom(components.Position{X: 300, Y: 150}, components.Velocity{X: 1}, grayAtom(360))
	w.EmitPhoton(300, 150, 140) // overlapping
	w.EmitPhoton(600, 150, 140) // far away

	res := a.Resolve(w)
	if res.Absorbed != 1 {
		t.Errorf("Absorbed = %d, want 1", res.Absorbed)
	}
	if got := w.PhotonCount(); got != 1 {
		t.Errorf("PhotonCount = %d, want 1", got)
	}

	remaining := w.Photons()
	if len(remaining) != 1 || remaining[0].Pos.X != 600 {
		t.Errorf("wrong photon survived: %+v", remaining)
	}
}

// TestResolvePhotonAbsorbedOnce verifies that a photon overlapping two atoms
// goes to the atom created first.
func TestResolvePhotonAbsorbedOnce(t *testing.T) {
	cfg := config.Default()
	w := NewParticleWorld(cfg)
	a := testAbsorber(cfg)

	w.AddAtom(components.Position{X: 300, Y: 150}, components.Velocity{X: 1}, grayAtom(360))
	w.AddAtom(components.Position{X: 305, Y: 150}, components.Velocity{X: 1}, grayAtom(360))
	w.EmitPhoton(302, 150, 140)

	res := a.Resolve(w)
	if res.Absorbed != 1 {
		t.Fatalf("Absorbed = %d, want 1", res.Absorbed)
	}

	atoms := w.Atoms()
	if len(atoms) != 2 {
		t.Fatalf("atoms = %d, want 2", len(atoms))
	}
	if atoms[0].Vel.X >= 1 {
		t.Errorf("first atom should have absorbed the photon, vx = %v", atoms[0].Vel.X)
	}
	if atoms[1].Vel.X != 1 {
		t.Errorf("second atom should be untouched, vx = %v", atoms[1].Vel.X)
	}
}

func TestResolveMultipleAbsorptionsPerAtom(t *testing.T) {
	cfg := config.Default()
	w := NewParticleWorld(cfg)
	a := testAbsorber(cfg)

	w.AddAtom(components.Position{X: 300, Y: 150}, components.Velocity{X: 0.3}, grayAtom(360))
	w.EmitPhoton(298, 150, 140)
	w.EmitPhoton(302, 150, 140)

	res := a.Resolve(w)
	if res.Absorbed != 2 {
		t.Errorf("Absorbed = %d, want 2", res.Absorbed)
	}
	if res.Stopped != 1 {
		t.Errorf("Stopped = %d, want 1 (0.3 - 2*0.175 < 0)", res.Stopped)
	}
	if w.PhotonCount() != 0 {
		t.Errorf("PhotonCount = %d, want 0", w.PhotonCount())
	}
	if got := w.Atoms()[0].Life.Absorbed; got != 2 {
		t.Errorf("Life.Absorbed = %d, want 2", got)
	}
}

func TestResolveEmpty(t *testing.T) {
	cfg := config.Default()
	w := NewParticleWorld(cfg)
	w.EmitPhoton(300, 150, 140)

	res := testAbsorber(cfg).Resolve(w)
	if res.Absorbed != 0 || w.PhotonCount() != 1 {
		t.Errorf("no atoms: Absorbed = %d, photons = %d", res.Absorbed, w.PhotonCount())
	}
}
