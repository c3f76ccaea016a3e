package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/lasercool/config"
	"github.com/pthm-cable/lasercool/telemetry"
)

func TestParamVectorBounds(t *testing.T) {
	cfg := config.Default()
	pv := NewParamVector(cfg)

	if pv.Dim() != 3 {
		t.Fatalf("Dim = %d, want 3", pv.Dim())
	}

	def := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(def))
	for i := range def {
		if math.Abs(back[i]-def[i]) > 1e-9 {
			t.Errorf("%s: round trip %v, want %v", pv.Specs[i].Name, back[i], def[i])
		}
	}

	clamped := pv.Clamp([]float64{-10, 100, 0.25})
	want := []float64{cfg.Controls.HueMin, cfg.Controls.IntensityMax, 0.25}
	for i := range want {
		if clamped[i] != want[i] {
			t.Errorf("Clamp[%d] = %v, want %v", i, clamped[i], want[i])
		}
	}

	pv.ApplyToConfig(cfg, []float64{200, 1, 0.5})
	if cfg.Controls.HueDefault != 200 {
		t.Errorf("HueDefault = %v, want 200", cfg.Controls.HueDefault)
	}
}

func TestSummarize(t *testing.T) {
	if s := summarize(nil); s.SpeedGain != 1 || s.Exits != 0 {
		t.Errorf("empty summary = %+v, want neutral", s)
	}

	exits := []telemetry.LifetimeStats{
		{EntrySpeed: 1, ExitSpeed: 0.5},
		{EntrySpeed: 1, ExitSpeed: 1.5},
	}
	s := summarize(exits)
	if s.Exits != 2 {
		t.Errorf("Exits = %d, want 2", s.Exits)
	}
	if s.Cooled != 0.5 {
		t.Errorf("Cooled = %v, want 0.5", s.Cooled)
	}
	if math.Abs(s.SpeedGain-1) > 1e-12 {
		t.Errorf("SpeedGain = %v, want 1", s.SpeedGain)
	}
	if got := computeFitness(s); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("fitness = %v, want 0.75", got)
	}
}

func TestEvaluateShortRun(t *testing.T) {
	cfg := config.Default()
	pv := NewParamVector(cfg)
	fe := NewFitnessEvaluator(pv, 60, 2, []int64{1, 2}, cfg)

	fitness := fe.Evaluate(pv.DefaultVector())
	// Nothing can cross the play area in 60 ticks
	if fitness != 1 {
		t.Errorf("fitness = %v, want 1 with no exits", fitness)
	}
	if fe.Last().Exits != 0 {
		t.Errorf("exits = %d, want 0", fe.Last().Exits)
	}
}
