package ui

import "math"

// PhotonEmitter receives photons fired by the laser.
type PhotonEmitter interface {
	EmitPhoton(x, y, hue float64)
}

// Laser is a vertical aiming slider that fires a photon every Delay ticks.
// The handle is the laser body; photons leave from its left edge.
type Laser struct {
	aim   *Slider
	fps   int
	delay int
	timer int
}

// NewLaser creates a laser whose body of the given size slides along rect.
// The track is inset by half the body height at each end so the body never
// leaves rect.
func NewLaser(rect Rect, body Size, fps, delay int) *Laser {
	track := Rect{X: rect.X, Y: rect.Y + body.H/2, W: rect.W, H: rect.H - body.H}
	aim := NewSlider(track, Vertical, 0, 1, body)
	aim.Label = "Laser"
	return &Laser{
		aim:   aim,
		fps:   max(fps, 1),
		delay: max(delay, 1),
	}
}

// Aim returns the aiming slider.
func (l *Laser) Aim() *Slider { return l.aim }

// Delay returns the number of ticks between shots.
func (l *Laser) Delay() int { return l.delay }

// Timer returns the current firing timer in [0, Delay).
func (l *Laser) Timer() int { return l.timer }

// SetFireRate sets the delay to round(fps/rate) ticks, at least 1.
// Non-positive rates leave the delay unchanged.
func (l *Laser) SetFireRate(shotsPerSecond float64) {
	if !(shotsPerSecond > 0) {
		return
	}
	d := math.Round(float64(l.fps) / shotsPerSecond)
	if d > math.MaxInt32 {
		d = math.MaxInt32
	}
	l.delay = max(int(d), 1)
}

// Muzzle returns where the next photon will be emitted.
func (l *Laser) Muzzle() (x, y float64) {
	hx, hy := l.aim.HandleCenter()
	return hx - l.aim.handle.W/2, hy
}

// Control advances the firing timer, fires when it wraps to zero, then
// applies the pointer to the aiming slider. Reports whether a photon was fired.
func (l *Laser) Control(p Pointer, hue float64, emitter PhotonEmitter) bool {
	l.timer = (l.timer + 1) % l.delay
	fired := l.timer == 0
	if fired {
		x, y := l.Muzzle()
		emitter.EmitPhoton(x, y, hue)
	}
	l.aim.Control(p)
	return fired
}

// View implements Widget.
func (l *Laser) View() View {
	v := l.aim.View()
	v.Kind = KindLaser
	return v
}
