// Package ui implements the interactive controls: sliders, buttons and the
// laser. Widgets are driven by one Pointer sample per tick and expose a View
// for the renderer; they never draw themselves.
package ui

// Pointer is the state of the primary mouse button for one tick.
type Pointer struct {
	X, Y    float64
	Down    bool // button held
	Pressed bool // button went down this tick
}

// Rect is an axis-aligned rectangle in window coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside or on the edge of r.
func (r Rect) Contains(x, y float64) bool {
	return r.X <= x && x <= r.X+r.W && r.Y <= y && y <= r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Size is a width and height pair.
type Size struct {
	W, H float64
}
