package game

import (
	"fmt"

	"github.com/pthm-cable/lasercool/colors"
	"github.com/pthm-cable/lasercool/systems"
	"github.com/pthm-cable/lasercool/ui"
)

// AtomView is an atom as it should be drawn.
type AtomView struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Hue    float64 // displayed hue
	Fill   colors.RGB
}

// PhotonView is a photon as it should be drawn: an ellipse filling its box.
type PhotonView struct {
	X, Y   float64 // center
	W, H   float64
	Fill   colors.RGB
	Border colors.RGB // same hue at half the value
}

// Snapshot is a read-only copy of everything a frame needs.
type Snapshot struct {
	Tick      int32
	Level     int
	Title     string
	Counter   string
	AtomCount int
	Paused    bool
	Hue       float64

	Play    systems.Region
	Atoms   []AtomView
	Photons []PhotonView
	Widgets []ui.View
}

// Title returns the caption shown for a level.
func Title(level int) string {
	switch level {
	case 1:
		return "Laser cooling"
	case 2:
		return "Laser cooling with different atoms"
	case 3:
		return "Laser cooling with the Doppler effect"
	default:
		return "Laser cooling with a person who broke the applet"
	}
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	atoms := g.world.Atoms()
	photons := g.world.Photons()

	s := Snapshot{
		Tick:      g.Tick(),
		Level:     g.state.Level,
		Title:     Title(g.state.Level),
		Counter:   fmt.Sprintf("Atoms: %d", len(atoms)),
		AtomCount: len(atoms),
		Paused:    g.paused,
		Hue:       g.hue,
		Play:      systems.PlayRegion(g.cfg),
		Atoms:     make([]AtomView, 0, len(atoms)),
		Photons:   make([]PhotonView, 0, len(photons)),
	}

	for _, a := range atoms {
		s.Atoms = append(s.Atoms, AtomView{
			X:      a.Pos.X,
			Y:      a.Pos.Y,
			VX:     a.Vel.X,
			VY:     a.Vel.Y,
			Radius: a.Atom.Radius,
			Hue:    a.Atom.Hue,
			Fill:   a.Atom.Color().RGB(),
		})
	}
	for _, p := range photons {
		c := p.Photon.Color()
		s.Photons = append(s.Photons, PhotonView{
			X:      p.Pos.X,
			Y:      p.Pos.Y,
			W:      p.Photon.Width,
			H:      p.Photon.Height,
			Fill:   c.RGB(),
			Border: c.Darken(0.5).RGB(),
		})
	}

	s.Widgets = g.widgetViews()
	return s
}

// widgetViews lists every widget in draw order with its visibility for the level.
func (g *Game) widgetViews() []ui.View {
	c := g.controls
	level := g.state.Level

	next := c.Next.View()
	next.Visible = level < MaxLevel
	prev := c.Prev.View()
	prev.Visible = level > MinLevel
	hue := c.Hue.View()
	hue.Visible = level > MinLevel

	return []ui.View{next, prev, hue, c.Intensity.View(), c.Laser.View()}
}
