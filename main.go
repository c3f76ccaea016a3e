package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lasercool/config"
	"github.com/pthm-cable/lasercool/game"
	"github.com/pthm-cable/lasercool/renderer"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	realtime := flag.Bool("realtime", false, "Pace headless runs at the configured FPS")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	level := flag.Int("level", 1, "Starting level (1-3)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call in headless mode")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Config:         cfg,
		Seed:           rngSeed,
		Level:          *level,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
		StepsPerUpdate: *stepsPerUpdate,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *headless {
		runHeadless(ctx, opts, *maxTicks, *realtime)
		return
	}
	runWindow(ctx, cfg, opts, *maxTicks)
}

// runHeadless steps the simulation without a window until interrupted or maxTicks is reached.
func runHeadless(ctx context.Context, opts game.Options, maxTicks int, realtime bool) {
	g := game.NewGameWithOptions(opts)
	defer g.Unload()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"level", g.Level(),
		"max_ticks", maxTicks,
		"realtime", realtime,
		"steps_per_update", opts.StepsPerUpdate,
	)

	var tick <-chan time.Time
	if realtime {
		ticker := time.NewTicker(time.Second / time.Duration(opts.Config.Screen.TargetFPS))
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				slog.Info("interrupted", "tick", g.Tick())
				return
			case <-tick:
			}
		} else if ctx.Err() != nil {
			slog.Info("interrupted", "tick", g.Tick())
			return
		}

		g.UpdateHeadless()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached",
				"tick", g.Tick(),
				"atoms_exited", g.Lifetimes().Count(),
				"cooled_fraction", g.Lifetimes().CooledFraction(),
				"mean_exit_speed", g.Lifetimes().MeanExitSpeed(),
			)
			return
		}
	}
}

// runWindow runs the interactive simulation until the window closes.
func runWindow(ctx context.Context, cfg *config.Config, opts game.Options, maxTicks int) {
	width := int32(cfg.Derived.WindowWidth)
	height := int32(cfg.Derived.WindowHeight)

	rl.InitWindow(width, height, "Laser cooling")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGameWithOptions(opts)
	defer g.Unload()

	overlays := renderer.NewOverlayRegistry()
	scene := renderer.NewScene(width, height, overlays)

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		in := renderer.PollInput(overlays)
		if in.TogglePause {
			g.TogglePause()
		}
		if in.Restart {
			g.RequestRestart()
		}
		if in.ToggledLayer != "" {
			slog.Debug("overlay toggled", "overlay", in.ToggledLayer, "enabled", overlays.IsEnabled(in.ToggledLayer))
		}

		g.Update(in.Pointer)
		g.RecordFrame()

		rl.BeginDrawing()
		scene.Draw(g.Snapshot(), hudData(g))
		rl.EndDrawing()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
}

func hudData(g *game.Game) renderer.HUDData {
	sp := g.Spawner()
	return renderer.HUDData{
		Tick:        g.Tick(),
		FPS:         rl.GetFPS(),
		Level:       g.Level(),
		Hue:         g.Hue(),
		FireDelay:   g.Controls().Laser.Delay(),
		Atoms:       g.World().AtomCount(),
		Photons:     g.World().PhotonCount(),
		NextAtomIn:  sp.Interval - sp.Tick,
		CooledShare: g.Lifetimes().CooledFraction(),
	}
}
