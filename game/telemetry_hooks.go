package game

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/lasercool/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (g *Game) flushTelemetry() {
	tick := g.Tick()
	if !g.collector.ShouldFlush(tick) {
		return
	}

	stats := g.collector.Flush(tick, g.samplePopulation())
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	// Write to CSV if output manager is enabled
	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
		if err := g.outputManager.WriteExits(g.pendingExits); err != nil {
			slog.Error("failed to write exits", "error", err)
		}
		g.pendingExits = g.pendingExits[:0]
	}

	for _, bm := range g.bookmarkDetector.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if g.outputManager != nil {
			if err := g.outputManager.WriteBookmark(bm); err != nil {
				slog.Error("failed to write bookmark", "error", err)
			}
		}
	}
}

// samplePopulation collects the live world state for a stats window.
func (g *Game) samplePopulation() telemetry.Population {
	atoms := g.world.Atoms()
	pop := telemetry.Population{
		Level:   g.state.Level,
		Atoms:   len(atoms),
		Photons: g.world.PhotonCount(),
		Speeds:  make([]float64, 0, len(atoms)),
		VX:      make([]float64, 0, len(atoms)),
	}
	for _, a := range atoms {
		pop.Speeds = append(pop.Speeds, r2.Norm(a.Vel.Vec()))
		pop.VX = append(pop.VX, a.Vel.X)
	}
	return pop
}
