// Package game runs the laser cooling simulation one tick at a time.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/lasercool/config"
	"github.com/pthm-cable/lasercool/systems"
	"github.com/pthm-cable/lasercool/telemetry"
	"github.com/pthm-cable/lasercool/ui"
)

// Level bounds.
const (
	MinLevel = 1
	MaxLevel = 3
)

// State is the orchestrator's global state.
type State struct {
	Level        int
	Restart      bool    // clear the world at the end of this tick
	Level3Hue    float64 // shared by every atom on level 3
	HasLevel3Hue bool
}

// Totals counts events since the game was created.
type Totals struct {
	AtomsSpawned    int
	AtomsExited     int
	PhotonsEmitted  int
	PhotonsAbsorbed int
	PhotonsCulled   int
	Restarts        int
}

// Options configures game behavior.
type Options struct {
	Config         *config.Config // nil uses config.Cfg()
	Seed           int64
	Level          int // starting level, clamped to [1,3]
	LogStats       bool
	StatsWindowSec float64 // 0 uses the config value
	OutputDir      string
	StepsPerUpdate int // ticks per UpdateHeadless call

	StatsCallback func(telemetry.WindowStats)
	ExitCallback  func(telemetry.LifetimeStats)
}

// Game holds the complete simulation state.
type Game struct {
	cfg  *config.Config
	rng  *rand.Rand
	seed int64

	world        *systems.ParticleWorld
	spawner      systems.Spawner
	absorber     systems.Absorber
	controls     *ui.Controls
	atomRegion   systems.Region
	photonRegion systems.Region

	state  State
	hue    float64 // laser hue used on the last tick
	paused bool
	totals Totals

	stepsPerUpdate int

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	lifetimeTracker  *telemetry.LifetimeTracker
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	pendingExits     []telemetry.LifetimeStats
	logStats         bool
	statsCallback    func(telemetry.WindowStats)
	exitCallback     func(telemetry.LifetimeStats)
}

// NewGameWithOptions creates a game at the requested level.
func NewGameWithOptions(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	dt := 1.0 / float64(cfg.Screen.TargetFPS)
	d := cfg.Derived

	g := &Game{
		cfg:          cfg,
		rng:          rand.New(rand.NewSource(opts.Seed)),
		seed:         opts.Seed,
		world:        systems.NewParticleWorld(cfg),
		absorber:     systems.Absorber{Gain: cfg.Atom.CollisionSpeedGain, Doppler: systems.NewDopplerModel(cfg)},
		controls:     ui.NewControls(cfg),
		atomRegion:   systems.AtomRegion(cfg),
		photonRegion: systems.PhotonRegion(cfg),
		state:        State{Level: clampLevel(opts.Level)},
		hue:          cfg.Laser.Level1Hue,

		stepsPerUpdate: max(opts.StepsPerUpdate, 1),

		collector:        telemetry.NewCollector(statsWindow, dt),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		lifetimeTracker:  telemetry.NewLifetimeTracker(dt, telemetry.Bounds{Left: d.PlayLeft, Top: d.PlayTop, Right: d.PlayRight, Bottom: d.PlayBottom}),
		bookmarkDetector: telemetry.NewBookmarkDetector(cfg.Telemetry.BookmarkHistory),
		logStats:         opts.LogStats,
		statsCallback:    opts.StatsCallback,
		exitCallback:     opts.ExitCallback,
	}

	g.spawner = systems.NewSpawner(cfg.InitialInterval(g.state.Level), cfg.Spawner.StartupOffset)
	g.drawLevel3Hue()

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
		}
	}

	return g
}

// Tick returns the number of simulated ticks.
func (g *Game) Tick() int32 { return g.world.Tick() }

// State returns a copy of the orchestrator state.
func (g *Game) State() State { return g.state }

// Level returns the current level.
func (g *Game) Level() int { return g.state.Level }

// Hue returns the laser hue used on the last tick.
func (g *Game) Hue() float64 { return g.hue }

// Totals returns event counts since creation.
func (g *Game) Totals() Totals { return g.totals }

// Seed returns the RNG seed the game was created with.
func (g *Game) Seed() int64 { return g.seed }

// Config returns the configuration in use.
func (g *Game) Config() *config.Config { return g.cfg }

// World exposes the particle storage.
func (g *Game) World() *systems.ParticleWorld { return g.world }

// Controls exposes the widgets.
func (g *Game) Controls() *ui.Controls { return g.controls }

// Spawner returns the atom timer.
func (g *Game) Spawner() systems.Spawner { return g.spawner }

// Paused reports whether ticks are suspended.
func (g *Game) Paused() bool { return g.paused }

// SetPaused suspends or resumes ticking.
func (g *Game) SetPaused(p bool) { g.paused = p }

// TogglePause flips the paused state.
func (g *Game) TogglePause() { g.paused = !g.paused }

// RequestRestart clears the world at the end of the next tick.
func (g *Game) RequestRestart() { g.state.Restart = true }

// RecordFrame records render frame timing.
func (g *Game) RecordFrame() { g.perfCollector.RecordFrame() }

// Lifetimes returns running totals over every atom that has left.
func (g *Game) Lifetimes() *telemetry.LifetimeTracker { return g.lifetimeTracker }

// Unload writes any buffered exit records and closes output files.
func (g *Game) Unload() {
	if g.outputManager == nil {
		return
	}
	if err := g.outputManager.WriteExits(g.pendingExits); err != nil {
		slog.Error("failed to write exits", "error", err)
	}
	g.pendingExits = g.pendingExits[:0]
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	g.outputManager = nil
}

func clampLevel(level int) int {
	return min(max(level, MinLevel), MaxLevel)
}
