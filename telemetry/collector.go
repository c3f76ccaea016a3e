package telemetry

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	atomsSpawned    int
	atomsCulled     int
	atomsStopped    int
	photonsEmitted  int
	photonsAbsorbed int
	photonsCulled   int
	restarts        int

	exits []LifetimeStats
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordSpawn records an atom arrival.
func (c *Collector) RecordSpawn() {
	c.atomsSpawned++
}

// RecordEmit records a photon fired by the laser.
func (c *Collector) RecordEmit() {
	c.photonsEmitted++
}

// RecordAbsorption records one collision pass.
func (c *Collector) RecordAbsorption(absorbed, stopped int) {
	c.photonsAbsorbed += absorbed
	c.atomsStopped += stopped
}

// RecordExit records an atom leaving the play area.
func (c *Collector) RecordExit(s LifetimeStats) {
	c.atomsCulled++
	c.exits = append(c.exits, s)
}

// RecordPhotonCull records photons removed off-screen.
func (c *Collector) RecordPhotonCull(n int) {
	c.photonsCulled += n
}

// RecordRestart records a level change or restart.
func (c *Collector) RecordRestart() {
	c.restarts++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Population is the state of the world sampled at the end of a window.
type Population struct {
	Level   int
	Atoms   int
	Photons int
	Speeds  []float64 // |v| of every live atom
	VX      []float64 // horizontal velocity of every live atom
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, pop Population) WindowStats {
	var absorptionRate float64
	if c.photonsEmitted > 0 {
		absorptionRate = float64(c.photonsAbsorbed) / float64(c.photonsEmitted)
	}

	speed := ComputeSpeedStats(pop.Speeds)
	vxMean, _ := meanStd(pop.VX)

	exitSpeeds := make([]float64, len(c.exits))
	var absorbedSum int
	var dwellSum float64
	for i, e := range c.exits {
		exitSpeeds[i] = e.ExitSpeed
		absorbedSum += e.Absorbed
		dwellSum += e.DwellSec
	}
	exitMean, _ := meanStd(exitSpeeds)
	var absorbedPerAtom, dwellMean float64
	if n := len(c.exits); n > 0 {
		absorbedPerAtom = float64(absorbedSum) / float64(n)
		dwellMean = dwellSum / float64(n)
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Level:   pop.Level,
		Atoms:   pop.Atoms,
		Photons: pop.Photons,

		AtomsSpawned:    c.atomsSpawned,
		AtomsCulled:     c.atomsCulled,
		AtomsStopped:    c.atomsStopped,
		PhotonsEmitted:  c.photonsEmitted,
		PhotonsAbsorbed: c.photonsAbsorbed,
		PhotonsCulled:   c.photonsCulled,
		Restarts:        c.restarts,
		AbsorptionRate:  absorptionRate,

		SpeedMean: speed.Mean,
		SpeedStd:  speed.Std,
		SpeedP10:  speed.P10,
		SpeedP50:  speed.P50,
		SpeedP90:  speed.P90,
		VXMean:    vxMean,

		ExitSpeedMean:   exitMean,
		AbsorbedPerAtom: absorbedPerAtom,
		DwellMeanSec:    dwellMean,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.atomsSpawned = 0
	c.atomsCulled = 0
	c.atomsStopped = 0
	c.photonsEmitted = 0
	c.photonsAbsorbed = 0
	c.photonsCulled = 0
	c.restarts = 0
	c.exits = c.exits[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
