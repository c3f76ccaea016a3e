package ui

import "github.com/pthm-cable/lasercool/colors"

// Kind identifies how a widget is drawn.
type Kind int

const (
	KindSlider Kind = iota
	KindHueSlider
	KindButton
	KindImageButton
	KindLaser
)

// Skin is the visual state of a button.
type Skin int

const (
	SkinIdle Skin = iota
	SkinHover
	SkinDown
)

func (s Skin) String() string {
	switch s {
	case SkinHover:
		return "hover"
	case SkinDown:
		return "down"
	default:
		return "idle"
	}
}

// Icon selects the glyph drawn on an image button.
type Icon int

const (
	IconNone Icon = iota
	IconNext
	IconPrev
)

// View is a read-only description of a widget for one frame.
type View struct {
	Kind       Kind
	Label      string
	Bounds     Rect
	Handle     Rect // slider handle, zero for buttons
	Activation float64
	Value      float64
	Skin       Skin
	Icon       Icon
	Gradient   []colors.RGB // hue sliders only, shared with the widget
	Visible    bool
}

// Widget is anything that can describe itself to the renderer.
type Widget interface {
	View() View
}
