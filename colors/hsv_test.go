package colors

import (
	"math"
	"testing"
)

// hueDistance returns the circular distance between two hues.
func hueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func TestHSVToRGBPrimaries(t *testing.T) {
	tests := []struct {
		name          string
		hue, sat, val float64
		want          RGB
	}{
		{"red", 0, 100, 100, RGB{255, 0, 0}},
		{"green", 120, 100, 100, RGB{0, 255, 0}},
		{"blue", 240, 100, 100, RGB{0, 0, 255}},
		{"white", 0, 0, 100, RGB{255, 255, 255}},
		{"black", 200, 100, 0, RGB{0, 0, 0}},
		{"level 1 gray", 180, 0, 50, RGB{127, 127, 127}},
		{"hue wraps", 480, 100, 100, RGB{0, 255, 0}},
		{"negative hue wraps", -240, 100, 100, RGB{0, 255, 0}},
		{"sat and val clamp", 0, 150, 250, RGB{255, 0, 0}},
		{"negative val clamps", 0, 100, -10, RGB{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSVToRGB(tt.hue, tt.sat, tt.val)
			if got != tt.want {
				t.Errorf("HSVToRGB(%v, %v, %v) = %v, want %v", tt.hue, tt.sat, tt.val, got, tt.want)
			}
		})
	}
}

func TestHSVToRGBTruncates(t *testing.T) {
	// 50% of 255 is 127.5; truncation keeps 127
	got := HSVToRGB(0, 0, 50)
	if got.R != 127 {
		t.Errorf("R = %d, want 127 (truncated)", got.R)
	}
}

func TestRoundTrip(t *testing.T) {
	for hue := 0.0; hue < 360; hue += 7 {
		for _, sat := range []float64{80, 90, 100} {
			for _, val := range []float64{80, 90, 100} {
				got := RGBToHSV(HSVToRGB(hue, sat, val))
				if hueDistance(got.Hue, hue) > 1 {
					t.Errorf("hue round trip (%v,%v,%v) -> %v", hue, sat, val, got)
				}
				if math.Abs(got.Sat-sat) > 1 {
					t.Errorf("sat round trip (%v,%v,%v) -> %v", hue, sat, val, got)
				}
				if math.Abs(got.Val-val) > 1 {
					t.Errorf("val round trip (%v,%v,%v) -> %v", hue, sat, val, got)
				}
			}
		}
	}
}

func TestRGBToHSVGray(t *testing.T) {
	got := RGBToHSV(RGB{128, 128, 128})
	if got.Hue != 0 || got.Sat != 0 {
		t.Errorf("gray -> %v, want hue 0 sat 0", got)
	}
	if got.Val != 50 {
		t.Errorf("gray value = %v, want 50", got.Val)
	}
}

func TestWrapHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{725, 5},
		{-30, 330},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := WrapHue(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGradient(t *testing.T) {
	g := Gradient(0, 282, 75, 75)
	if len(g) != 283 {
		t.Fatalf("len = %d, want 283", len(g))
	}
	if g[0] != HSVToRGB(0, 75, 75) {
		t.Errorf("first stop = %v, want hue 0", g[0])
	}
	if g[282] != HSVToRGB(282, 75, 75) {
		t.Errorf("last stop = %v, want hue 282", g[282])
	}

	if got := Gradient(10, 5, 75, 75); got != nil {
		t.Errorf("inverted range should be empty, got %d stops", len(got))
	}
	if got := Gradient(-20, 400, 75, 75); len(got) != 361 {
		t.Errorf("clamped range len = %d, want 361", len(got))
	}
}

func TestDarken(t *testing.T) {
	c := HSV{Hue: 200, Sat: 100, Val: 100}.Darken(0.5)
	if c.Hue != 200 || c.Sat != 100 || c.Val != 50 {
		t.Errorf("Darken(0.5) = %v", c)
	}
}
