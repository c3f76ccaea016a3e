package telemetry

import (
	"math"
	"testing"
)

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(10, 0.5)

	if c.WindowDurationTicks() != 20 {
		t.Fatalf("WindowDurationTicks = %d, want 20", c.WindowDurationTicks())
	}
	if c.ShouldFlush(19) {
		t.Error("ShouldFlush(19) = true, want false")
	}
	if !c.ShouldFlush(20) {
		t.Error("ShouldFlush(20) = false, want true")
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(10, 0.5)

	c.RecordSpawn()
	c.RecordSpawn()
	for i := 0; i < 8; i++ {
		c.RecordEmit()
	}
	c.RecordAbsorption(3, 1)
	c.RecordAbsorption(1, 0)
	c.RecordPhotonCull(2)
	c.RecordExit(LifetimeStats{ExitSpeed: 0.4, Absorbed: 3, DwellSec: 10})
	c.RecordExit(LifetimeStats{ExitSpeed: 1.0, Absorbed: 1, DwellSec: 20})

	stats := c.Flush(20, Population{
		Level:   2,
		Atoms:   2,
		Photons: 5,
		Speeds:  []float64{0.5, 1.5},
		VX:      []float64{-0.5, 1.5},
	})

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 20 || stats.SimTimeSec != 10 {
		t.Errorf("window = %d..%d at %vs", stats.WindowStartTick, stats.WindowEndTick, stats.SimTimeSec)
	}
	if stats.AtomsSpawned != 2 || stats.AtomsCulled != 2 || stats.AtomsStopped != 1 {
		t.Errorf("atom events = %d/%d/%d, want 2/2/1", stats.AtomsSpawned, stats.AtomsCulled, stats.AtomsStopped)
	}
	if stats.PhotonsEmitted != 8 || stats.PhotonsAbsorbed != 4 || stats.PhotonsCulled != 2 {
		t.Errorf("photon events = %d/%d/%d, want 8/4/2", stats.PhotonsEmitted, stats.PhotonsAbsorbed, stats.PhotonsCulled)
	}
	if stats.AbsorptionRate != 0.5 {
		t.Errorf("AbsorptionRate = %v, want 0.5", stats.AbsorptionRate)
	}
	if stats.SpeedMean != 1 || stats.VXMean != 0.5 {
		t.Errorf("speed mean %v vx mean %v, want 1 and 0.5", stats.SpeedMean, stats.VXMean)
	}
	if math.Abs(stats.ExitSpeedMean-0.7) > 1e-12 || stats.AbsorbedPerAtom != 2 || stats.DwellMeanSec != 15 {
		t.Errorf("exit stats = %v/%v/%v, want 0.7/2/15", stats.ExitSpeedMean, stats.AbsorbedPerAtom, stats.DwellMeanSec)
	}

	// Counters reset
	next := c.Flush(40, Population{Level: 2})
	if next.WindowStartTick != 20 {
		t.Errorf("next window start = %d, want 20", next.WindowStartTick)
	}
	if next.AtomsSpawned != 0 || next.PhotonsEmitted != 0 || next.AtomsCulled != 0 || next.ExitSpeedMean != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if c.ShouldFlush(59) || !c.ShouldFlush(60) {
		t.Error("flush schedule should restart from the last flush")
	}
}
