package telemetry

import "math"

// ExitSide names the edge an atom left through.
type ExitSide string

const (
	ExitLeft   ExitSide = "left" // pushed back against its direction of arrival
	ExitRight  ExitSide = "right"
	ExitTop    ExitSide = "top"
	ExitBottom ExitSide = "bottom"
)

// Bounds is the play area an exit is classified against.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// Side classifies an exit position. Horizontal edges win over vertical ones.
func (b Bounds) Side(x, y float64) ExitSide {
	switch {
	case x < b.Left:
		return ExitLeft
	case x > b.Right:
		return ExitRight
	case y < b.Top:
		return ExitTop
	default:
		return ExitBottom
	}
}

// LifetimeStats tracks one atom from arrival to exit.
type LifetimeStats struct {
	Atom       uint64   `csv:"atom"`
	Level      int      `csv:"level"`
	BornTick   int32    `csv:"born"`
	ExitTick   int32    `csv:"exit"`
	DwellSec   float64  `csv:"dwell_sec"`
	EntrySpeed float64  `csv:"entry_speed"`
	ExitSpeed  float64  `csv:"exit_speed"`
	ExitVX     float64  `csv:"exit_vx"`
	Absorbed   int      `csv:"absorbed"`
	Side       ExitSide `csv:"side"`
}

// Cooled reports whether the atom left slower than it arrived.
func (s LifetimeStats) Cooled() bool {
	return s.ExitSpeed < s.EntrySpeed
}

// LifetimeTracker keeps running totals over every atom that has left.
type LifetimeTracker struct {
	dt     float64
	bounds Bounds

	count      int
	cooled     int
	byLeft     int
	exitSpeeds float64
}

// NewLifetimeTracker creates a tracker. dt is seconds per tick.
func NewLifetimeTracker(dt float64, bounds Bounds) *LifetimeTracker {
	return &LifetimeTracker{dt: dt, bounds: bounds}
}

// Exit builds the record for an atom leaving at exitTick and adds it to the totals.
func (lt *LifetimeTracker) Exit(atom uint64, level int, bornTick, exitTick int32,
	entrySpeed, vx, vy, x, y float64, absorbed int) LifetimeStats {

	s := LifetimeStats{
		Atom:       atom,
		Level:      level,
		BornTick:   bornTick,
		ExitTick:   exitTick,
		DwellSec:   float64(exitTick-bornTick) * lt.dt,
		EntrySpeed: entrySpeed,
		ExitSpeed:  math.Hypot(vx, vy),
		ExitVX:     vx,
		Absorbed:   absorbed,
		Side:       lt.bounds.Side(x, y),
	}

	lt.count++
	lt.exitSpeeds += s.ExitSpeed
	if s.Cooled() {
		lt.cooled++
	}
	if s.Side == ExitLeft {
		lt.byLeft++
	}
	return s
}

// Count returns the number of atoms that have left.
func (lt *LifetimeTracker) Count() int {
	return lt.count
}

// CooledFraction returns the share of exited atoms that left slower than they arrived.
func (lt *LifetimeTracker) CooledFraction() float64 {
	if lt.count == 0 {
		return 0
	}
	return float64(lt.cooled) / float64(lt.count)
}

// ReflectedFraction returns the share of exited atoms pushed back out the left edge.
func (lt *LifetimeTracker) ReflectedFraction() float64 {
	if lt.count == 0 {
		return 0
	}
	return float64(lt.byLeft) / float64(lt.count)
}

// MeanExitSpeed returns the average exit speed over every atom that has left.
func (lt *LifetimeTracker) MeanExitSpeed() float64 {
	if lt.count == 0 {
		return 0
	}
	return lt.exitSpeeds / float64(lt.count)
}
