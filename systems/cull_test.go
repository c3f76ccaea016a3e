package systems

import (
	"testing"

	"github.com/pthm-cable/lasercool/components"
	"github.com/pthm-cable/lasercool/config"
)

func TestCullAtomsBoundary(t *testing.T) {
	cfg := config.Default()

	// Play area is [96, 704] x [48, 304], radius 16, so atoms live in [79, 721] x [31, 321].
	tests := []struct {
		name     string
		x, y     float64
		wantKept bool
	}{
		{"left - R - 2", 78, 150, false},
		{"left - R - 1", 79, 150, true},
		{"spawn point", 80, 150, true},
		{"right + R + 1", 721, 150, true},
		{"right + R + 2", 722, 150, false},
		{"top + edge", 300, 31, true},
		{"above top", 300, 30, false},
		{"bottom edge", 300, 321, true},
		{"below bottom", 300, 322, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewParticleWorld(cfg)
			w.AddAtom(components.Position{X: tt.x, Y: tt.y}, components.Velocity{X: 1}, components.Atom{Radius: 16})

			removed := len(w.CullAtoms(AtomRegion(cfg)))
			kept := w.AtomCount() == 1
			if kept != tt.wantKept {
				t.Errorf("atom at (%v, %v): kept = %v, want %v", tt.x, tt.y, kept, tt.wantKept)
			}
			if removed+w.AtomCount() != 1 {
				t.Errorf("removed %d + live %d != 1", removed, w.AtomCount())
			}
		})
	}
}

func TestCullAtomsLeavesPhotons(t *testing.T) {
	cfg := config.Default()
	w := NewParticleWorld(cfg)
	w.AddAtom(components.Position{X: 0, Y: 0}, components.Velocity{}, components.Atom{Radius: 16})
	w.EmitPhoton(0, 0, 100)

	if n := len(w.CullAtoms(AtomRegion(cfg))); n != 1 {
		t.Errorf("CullAtoms removed %d, want 1", n)
	}
	if w.PhotonCount() != 1 {
		t.Errorf("PhotonCount = %d, want 1", w.PhotonCount())
	}
}

func TestCullPhotons(t *testing.T) {
	cfg := config.Default()
	region := PhotonRegion(cfg)

	// Atom region left 79, grown by 16 + 12
	if region.Left != 51 {
		t.Fatalf("PhotonRegion left = %v, want 51", region.Left)
	}

	w := NewParticleWorld(cfg)
	w.EmitPhoton(704, 176, 140)
	w.EmitPhoton(51, 176, 140)
	w.EmitPhoton(50, 176, 140)

	if n := w.CullPhotons(region); n != 1 {
		t.Errorf("CullPhotons removed %d, want 1", n)
	}
	for _, p := range w.Photons() {
		if p.Pos.X == 50 {
			t.Error("photon at x=50 should have been culled")
		}
	}
}

func TestCullAtomsReportsExits(t *testing.T) {
	cfg := config.Default()
	w := NewParticleWorld(cfg)
	w.AddAtom(components.Position{X: 100, Y: 150}, components.Velocity{X: 1}, components.Atom{Radius: 16})
	w.AddAtom(components.Position{X: 70, Y: 150}, components.Velocity{X: -0.5}, components.Atom{Radius: 16})
	w.AddAtom(components.Position{X: 730, Y: 150}, components.Velocity{X: 1.1}, components.Atom{Radius: 16})
	w.Advance()

	exits := w.CullAtoms(AtomRegion(cfg))
	if len(exits) != 2 {
		t.Fatalf("exits = %d, want 2", len(exits))
	}
	if exits[0].Vel.X != -0.5 || exits[1].Vel.X != 1.1 {
		t.Errorf("exits out of order: %+v", exits)
	}
	if exits[0].Seq >= exits[1].Seq {
		t.Errorf("exit seqs not increasing: %d, %d", exits[0].Seq, exits[1].Seq)
	}
	if exits[1].Life.EntrySpeed != 1.1 || exits[1].Life.BornTick != 0 {
		t.Errorf("lifetime = %+v, want entry speed 1.1 born at 0", exits[1].Life)
	}
	if w.AtomCount() != 1 {
		t.Errorf("AtomCount = %d, want 1", w.AtomCount())
	}
}

func TestRegionGrow(t *testing.T) {
	r := Region{Left: 10, Top: 20, Right: 30, Bottom: 40}.Grow(5)
	want := Region{Left: 5, Top: 15, Right: 35, Bottom: 45}
	if r != want {
		t.Errorf("Grow = %+v, want %+v", r, want)
	}
}
