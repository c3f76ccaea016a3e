package ui

import "github.com/pthm-cable/lasercool/config"

// Controls is the full set of widgets around the play area.
type Controls struct {
	Intensity *Slider
	Hue       *HueSlider
	Next      *ImageButton
	Prev      *ImageButton
	Laser     *Laser
}

// NewControls lays out the widgets for the configured window.
func NewControls(cfg *config.Config) *Controls {
	cc := cfg.Controls
	d := cfg.Derived
	winW := float64(d.WindowWidth)
	winH := float64(d.WindowHeight)
	handle := Size{W: cc.HandleWidth, H: cc.HandleHeight}

	// Both sliders span the bottom panel, inset from the play area's edges
	sliderX := d.PlayLeft + cc.SliderInset
	sliderW := d.PlayRight - cc.SliderInset - sliderX

	intensity := NewSlider(
		Rect{X: sliderX, Y: d.PlayBottom + cc.IntensityOffset, W: sliderW, H: cc.SliderHeight},
		Horizontal, cc.IntensityMin, cc.IntensityMax, handle,
	)
	intensity.Label = "Intensity"

	hue := NewHueSlider(
		Rect{X: sliderX, Y: d.PlayBottom + cc.HueOffset, W: sliderW, H: cc.SliderHeight},
		cc.HueMin, cc.HueMax, cc.HueDefault, handle,
	)
	hue.Label = "Frequency"

	corner := cc.ButtonMargin + cc.ButtonSize
	next := NewImageButton(Rect{X: winW - corner, Y: winH - corner, W: cc.ButtonSize, H: cc.ButtonSize}, IconNext)
	next.Label = "Next level"
	prev := NewImageButton(Rect{X: cc.ButtonMargin, Y: winH - corner, W: cc.ButtonSize, H: cc.ButtonSize}, IconPrev)
	prev.Label = "Previous level"

	laser := NewLaser(
		Rect{X: d.PlayRight, Y: d.PlayTop, W: cfg.Laser.Width, H: d.PlayBottom - d.PlayTop},
		Size{W: cfg.Laser.Width, H: cfg.Laser.HandleHeight},
		cfg.Screen.TargetFPS, cfg.Laser.FiringDelay,
	)

	return &Controls{
		Intensity: intensity,
		Hue:       hue,
		Next:      next,
		Prev:      prev,
		Laser:     laser,
	}
}
