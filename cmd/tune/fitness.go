package main

import (
	"math"
	"slices"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/lasercool/config"
	"github.com/pthm-cable/lasercool/game"
	"github.com/pthm-cable/lasercool/telemetry"
)

// FitnessEvaluator runs headless simulations and scores how well they cool.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int32
	level      int
	seeds      []int64
	baseConfig *config.Config

	mu          sync.Mutex
	bestFitness float64
	bestExits   []telemetry.LifetimeStats
	last        runSummary // from the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, level int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		level:       level,
		seeds:       seeds,
		baseConfig:  baseCfg,
		bestFitness: math.Inf(1),
	}
}

// runSummary aggregates the exits of every seed in one evaluation.
type runSummary struct {
	Exits     int
	Cooled    float64 // share of exits slower than their entry
	SpeedGain float64 // mean exit/entry speed ratio
}

// BestExits returns the atom exits from the best evaluation.
func (fe *FitnessEvaluator) BestExits() []telemetry.LifetimeStats {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.bestExits
}

// Last returns the summary of the most recent evaluation.
func (fe *FitnessEvaluator) Last() runSummary {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.last
}

// Weight of the cooled share against the speed ratio.
const cooledWeight = 0.5

// Evaluate computes fitness for a raw parameter vector (lower = better).
// Fitness is the mean exit/entry speed ratio minus a bonus for the share of
// cooled atoms. A run where no atom leaves scores 1, the same as no effect.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([][]telemetry.LifetimeStats, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(x, s)
		}(i, seed)
	}
	wg.Wait()

	var exits []telemetry.LifetimeStats
	for _, r := range results {
		exits = append(exits, r...)
	}

	summary := summarize(exits)
	fitness := computeFitness(summary)

	fe.mu.Lock()
	if fitness < fe.bestFitness {
		fe.bestFitness = fitness
		fe.bestExits = exits
	}
	fe.last = summary
	fe.mu.Unlock()

	return fitness
}

// runSimulation executes a single headless run and returns every atom exit.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) []telemetry.LifetimeStats {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	var exits []telemetry.LifetimeStats
	g := game.NewGameWithOptions(game.Options{
		Config:         cfg,
		Seed:           seed,
		Level:          fe.level,
		StepsPerUpdate: 1,
		ExitCallback: func(s telemetry.LifetimeStats) {
			exits = append(exits, s)
		},
	})
	defer g.Unload()
	fe.params.ApplyToGame(g, x)

	for g.Tick() < fe.maxTicks {
		g.UpdateHeadless()
	}
	return exits
}

// copyConfig creates a deep copy of the base config.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	cfg.Spawner.InitialIntervals = slices.Clone(fe.baseConfig.Spawner.InitialIntervals)
	cfg.Spawner.FinalIntervals = slices.Clone(fe.baseConfig.Spawner.FinalIntervals)
	return &cfg
}

func summarize(exits []telemetry.LifetimeStats) runSummary {
	if len(exits) == 0 {
		return runSummary{SpeedGain: 1}
	}
	ratios := make([]float64, 0, len(exits))
	cooled := 0
	for _, e := range exits {
		if e.EntrySpeed > 0 {
			ratios = append(ratios, e.ExitSpeed/e.EntrySpeed)
		}
		if e.Cooled() {
			cooled++
		}
	}
	gain := 1.0
	if len(ratios) > 0 {
		gain = stat.Mean(ratios, nil)
	}
	return runSummary{
		Exits:     len(exits),
		Cooled:    float64(cooled) / float64(len(exits)),
		SpeedGain: gain,
	}
}

func computeFitness(s runSummary) float64 {
	return s.SpeedGain - cooledWeight*s.Cooled
}
