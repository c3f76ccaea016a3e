package ui

import "github.com/pthm-cable/lasercool/colors"

// Axis is the direction a slider moves along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Slider maps a handle position along a track to a value in [Min, Max].
// Activation 0 is the left end of a horizontal track and the bottom end of a
// vertical one.
type Slider struct {
	Label string

	rect       Rect
	axis       Axis
	min, max   float64
	handle     Size
	activation float64
	sliding    bool
}

// NewSlider creates a slider with its handle in the middle of the track.
func NewSlider(rect Rect, axis Axis, lo, hi float64, handle Size) *Slider {
	return &Slider{
		rect:       rect,
		axis:       axis,
		min:        lo,
		max:        hi,
		handle:     handle,
		activation: 0.5,
	}
}

// Range returns the slider's value range.
func (s *Slider) Range() (lo, hi float64) { return s.min, s.max }

// Activation returns the handle position in [0, 1].
func (s *Slider) Activation() float64 { return s.activation }

// Sliding reports whether the handle is being dragged.
func (s *Slider) Sliding() bool { return s.sliding }

// Value maps the activation onto [Min, Max].
func (s *Slider) Value() float64 {
	return (1-s.activation)*s.min + s.activation*s.max
}

// SetValue moves the handle to v, clamped to the range, and returns the
// resulting value. A degenerate range puts the handle at activation 0.
func (s *Slider) SetValue(v float64) float64 {
	if s.max == s.min {
		s.activation = 0
	} else {
		s.activation = clamp01((v - s.min) / (s.max - s.min))
	}
	return s.Value()
}

// ActivationAt projects a point onto the track.
func (s *Slider) ActivationAt(x, y float64) float64 {
	if s.axis == Vertical {
		if s.rect.H <= 0 {
			return 0
		}
		return 1 - clamp01((y-s.rect.Y)/s.rect.H)
	}
	if s.rect.W <= 0 {
		return 0
	}
	return clamp01((x - s.rect.X) / s.rect.W)
}

// HandleCenter returns the center of the handle.
func (s *Slider) HandleCenter() (x, y float64) {
	if s.axis == Vertical {
		return s.rect.X + 0.5*s.rect.W, s.rect.Y + (1-s.activation)*s.rect.H
	}
	return s.rect.X + s.activation*s.rect.W, s.rect.Y + 0.5*s.rect.H
}

// HandleRect returns the handle's bounding box.
func (s *Slider) HandleRect() Rect {
	x, y := s.HandleCenter()
	return Rect{X: x - s.handle.W/2, Y: y - s.handle.H/2, W: s.handle.W, H: s.handle.H}
}

// Hit reports whether a press at (x, y) grabs the slider. The hit region is
// the track width by the handle height from the track's top edge; vertical
// sliders also accept the handle width by the track height.
func (s *Slider) Hit(x, y float64) bool {
	dx, dy := x-s.rect.X, y-s.rect.Y
	if 0 <= dx && dx <= s.rect.W && 0 <= dy && dy <= s.handle.H {
		return true
	}
	return s.axis == Vertical && 0 <= dx && dx <= s.handle.W && 0 <= dy && dy <= s.rect.H
}

// Control applies one tick of pointer input and returns the current value.
// A drag starts only on a press inside the hit region and lasts until release.
func (s *Slider) Control(p Pointer) float64 {
	if p.Down {
		if p.Pressed && s.Hit(p.X, p.Y) {
			s.sliding = true
		}
	} else {
		s.sliding = false
	}
	if s.sliding {
		s.activation = s.ActivationAt(p.X, p.Y)
	}
	return s.Value()
}

// View implements Widget.
func (s *Slider) View() View {
	return View{
		Kind:       KindSlider,
		Label:      s.Label,
		Bounds:     s.rect,
		Handle:     s.HandleRect(),
		Activation: s.activation,
		Value:      s.Value(),
		Visible:    true,
	}
}

// HueSlider is a horizontal slider whose track shows the hues it selects.
type HueSlider struct {
	*Slider
	gradient []colors.RGB
}

// gradientLevel is the saturation and value of the track colors.
const gradientLevel = 75

// NewHueSlider creates a hue slider over [lo, hi] starting at start.
func NewHueSlider(rect Rect, lo, hi, start float64, handle Size) *HueSlider {
	s := NewSlider(rect, Horizontal, lo, hi, handle)
	s.SetValue(start)
	return &HueSlider{
		Slider:   s,
		gradient: colors.Gradient(lo, hi, gradientLevel, gradientLevel),
	}
}

// Gradient returns one color per integer hue in the slider's range.
func (h *HueSlider) Gradient() []colors.RGB { return h.gradient }

// View implements Widget.
func (h *HueSlider) View() View {
	v := h.Slider.View()
	v.Kind = KindHueSlider
	v.Gradient = h.gradient
	return v
}

func clamp01(v float64) float64 {
	if v != v {
		return 0
	}
	return min(max(v, 0), 1)
}
