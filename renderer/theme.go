// Package renderer draws game snapshots with raylib and polls window input.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lasercool/colors"
)

// Theme holds drawing colors and font sizes.
type Theme struct {
	Background  rl.Color // play area
	Border      rl.Color // frame around the play area
	PlayOutline rl.Color
	Text        rl.Color
	TrackFill   rl.Color
	Outline     rl.Color
	Handle      rl.Color
	PanelBg     rl.Color
	PanelBorder rl.Color
	Hitbox      rl.Color
	Velocity    rl.Color

	TitleFontSize   int32
	CounterFontSize int32
	CaptionFontSize int32
	HUDFontSize     int32
	Padding         int32
	LineHeight      int32
}

// DefaultTheme returns the default theme.
func DefaultTheme() Theme {
	return Theme{
		Background:  rl.NewColor(159, 159, 159, 255),
		Border:      rl.NewColor(79, 79, 79, 255),
		PlayOutline: rl.Black,
		Text:        rl.NewColor(192, 192, 192, 255),
		TrackFill:   rl.White,
		Outline:     rl.Black,
		Handle:      rl.NewColor(127, 127, 127, 255),
		PanelBg:     rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder: rl.Color{R: 60, G: 70, B: 80, A: 255},
		Hitbox:      rl.Color{R: 255, G: 60, B: 60, A: 200},
		Velocity:    rl.Color{R: 40, G: 220, B: 255, A: 255},

		TitleFontSize:   24,
		CounterFontSize: 18,
		CaptionFontSize: 18,
		HUDFontSize:     12,
		Padding:         8,
		LineHeight:      16,
	}
}

// toColor converts an RGB triple to an opaque raylib color.
func toColor(c colors.RGB) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
