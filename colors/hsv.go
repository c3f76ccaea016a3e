// Package colors converts between the hue/saturation/value triples used by the
// simulation (hue in degrees, saturation and value in percent) and 8-bit RGB.
//
// Every conversion truncates toward zero, so a round trip may lose up to one
// unit per channel.
package colors

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSV is a color with Hue in [0,360) and Sat, Val in [0,100].
type HSV struct {
	Hue float64
	Sat float64
	Val float64
}

// RGB is an additive color with channels in [0,255].
type RGB struct {
	R, G, B uint8
}

// HSVToRGB converts an HSV triple to RGB. Hue wraps into [0,360);
// saturation and value are clamped to [0,100].
func HSVToRGB(hue, sat, val float64) RGB {
	c := colorful.Hsv(WrapHue(hue), clamp(sat, 0, 100)/100, clamp(val, 0, 100)/100)
	return RGB{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
	}
}

// RGBToHSV converts RGB to an HSV triple with each component truncated to an integer.
func RGBToHSV(c RGB) HSV {
	col := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	h, s, v := col.Hsv()
	return HSV{
		Hue: math.Trunc(WrapHue(h)),
		Sat: math.Trunc(s * 100),
		Val: math.Trunc(v * 100),
	}
}

// RGB returns the color converted to RGB.
func (c HSV) RGB() RGB {
	return HSVToRGB(c.Hue, c.Sat, c.Val)
}

// Darken returns the same hue and saturation at the given fraction of the value.
func (c HSV) Darken(f float64) HSV {
	return HSV{Hue: c.Hue, Sat: c.Sat, Val: c.Val * f}
}

// WrapHue maps any hue onto [0,360).
func WrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// Mod of a tiny negative value can round back up to 360
	if h >= 360 {
		h = 0
	}
	return h
}

// Gradient returns one RGB color per whole hue in [minHue, maxHue], all at the
// given saturation and value. Bounds are clamped to [0,360].
func Gradient(minHue, maxHue, sat, val float64) []RGB {
	lo := int(math.Max(minHue, 0))
	hi := int(math.Min(maxHue, 360))
	if hi < lo {
		return nil
	}
	out := make([]RGB, 0, hi-lo+1)
	for h := lo; h <= hi; h++ {
		out = append(out, HSVToRGB(float64(h), sat, val))
	}
	return out
}

func channel(f float64) uint8 {
	return uint8(clamp(f, 0, 1) * 255)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
