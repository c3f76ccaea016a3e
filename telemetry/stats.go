package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// World state at window end
	Level   int `csv:"level"`
	Atoms   int `csv:"atoms"`
	Photons int `csv:"photons"`

	// Events during window
	AtomsSpawned    int     `csv:"atoms_spawned"`
	AtomsCulled     int     `csv:"atoms_culled"`
	AtomsStopped    int     `csv:"atoms_stopped"` // horizontal velocity crossed zero
	PhotonsEmitted  int     `csv:"photons_emitted"`
	PhotonsAbsorbed int     `csv:"photons_absorbed"`
	PhotonsCulled   int     `csv:"photons_culled"`
	Restarts        int     `csv:"restarts"`
	AbsorptionRate  float64 `csv:"absorption_rate"`

	// Speed distribution of live atoms (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
	VXMean    float64 `csv:"vx_mean"`

	// Atoms that left during the window
	ExitSpeedMean   float64 `csv:"exit_speed_mean"`
	AbsorbedPerAtom float64 `csv:"absorbed_per_atom"`
	DwellMeanSec    float64 `csv:"dwell_mean"`
}

// SpeedStats summarizes a speed sample.
type SpeedStats struct {
	Mean, Std     float64
	P10, P50, P90 float64
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeSpeedStats calculates mean, sample standard deviation and
// percentiles. The spread of atom speeds is the simulation's temperature.
func ComputeSpeedStats(values []float64) SpeedStats {
	if len(values) == 0 {
		return SpeedStats{}
	}

	mean, std := meanStd(values)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return SpeedStats{
		Mean: mean,
		Std:  std,
		P10:  Percentile(sorted, 0.10),
		P50:  Percentile(sorted, 0.50),
		P90:  Percentile(sorted, 0.90),
	}
}

// meanStd wraps stat.MeanStdDev, returning zeros for an empty sample and a
// zero deviation for a single value.
func meanStd(values []float64) (mean, std float64) {
	switch len(values) {
	case 0:
		return 0, 0
	case 1:
		return values[0], 0
	}
	mean, std = stat.MeanStdDev(values, nil)
	if math.IsNaN(std) {
		std = 0
	}
	return mean, std
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("level", s.Level),
		slog.Int("atoms", s.Atoms),
		slog.Int("photons", s.Photons),
		slog.Int("atoms_spawned", s.AtomsSpawned),
		slog.Int("atoms_culled", s.AtomsCulled),
		slog.Int("atoms_stopped", s.AtomsStopped),
		slog.Int("photons_emitted", s.PhotonsEmitted),
		slog.Int("photons_absorbed", s.PhotonsAbsorbed),
		slog.Int("photons_culled", s.PhotonsCulled),
		slog.Int("restarts", s.Restarts),
		slog.Float64("absorption_rate", s.AbsorptionRate),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p10", s.SpeedP10),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("vx_mean", s.VXMean),
		slog.Float64("exit_speed_mean", s.ExitSpeedMean),
		slog.Float64("absorbed_per_atom", s.AbsorbedPerAtom),
		slog.Float64("dwell_mean", s.DwellMeanSec),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"level", s.Level,
		"atoms", s.Atoms,
		"photons", s.Photons,
		"atoms_spawned", s.AtomsSpawned,
		"atoms_culled", s.AtomsCulled,
		"atoms_stopped", s.AtomsStopped,
		"photons_emitted", s.PhotonsEmitted,
		"photons_absorbed", s.PhotonsAbsorbed,
		"absorption_rate", s.AbsorptionRate,
		"speed_mean", s.SpeedMean,
		"speed_std", s.SpeedStd,
		"speed_p50", s.SpeedP50,
		"exit_speed_mean", s.ExitSpeedMean,
		"absorbed_per_atom", s.AbsorbedPerAtom,
	)
}
