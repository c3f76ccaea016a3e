package game

import (
	"log/slog"
	"math"

	"github.com/pthm-cable/lasercool/systems"
	"github.com/pthm-cable/lasercool/telemetry"
	"github.com/pthm-cable/lasercool/ui"
)

// Update runs one tick with the given pointer sample. Nothing happens while paused.
func (g *Game) Update(p ui.Pointer) {
	if g.paused {
		return
	}
	g.perfCollector.StartTick()
	g.step(p)
	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()
	g.perfCollector.EndTick()
}

// UpdateHeadless runs StepsPerUpdate ticks with no pointer input.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Update(ui.Pointer{})
	}
}

// step advances the simulation by one tick. Atoms spawn and move before
// absorption, and the controls act after the cull so that a photon fired
// this tick first moves on the next one.
func (g *Game) step(p ui.Pointer) {
	pc := g.perfCollector

	pc.StartPhase(telemetry.PhaseSpawn)
	if g.spawner.Step(g.world, g.cfg, g.rng, g.spawnParams()) {
		g.totals.AtomsSpawned++
		g.collector.RecordSpawn()
		slog.Debug("atom spawned", "tick", g.Tick(), "level", g.state.Level, "next_interval", g.spawner.Interval)
	}

	pc.StartPhase(telemetry.PhaseMove)
	g.world.Advance()

	pc.StartPhase(telemetry.PhaseAbsorb)
	res := g.absorber.Resolve(g.world)
	g.totals.PhotonsAbsorbed += res.Absorbed
	g.collector.RecordAbsorption(res.Absorbed, res.Stopped)

	pc.StartPhase(telemetry.PhaseCull)
	g.cull()

	pc.StartPhase(telemetry.PhaseControls)
	g.updateControls(p)
	if g.state.Restart {
		g.restart()
	}
}

func (g *Game) spawnParams() systems.SpawnParams {
	return systems.SpawnParams{
		Level:        g.state.Level,
		SharedHue:    g.state.Level3Hue,
		HasSharedHue: g.state.HasLevel3Hue,
	}
}

// cull removes atoms that left the play area, and stray photons when enabled.
func (g *Game) cull() {
	tick := g.Tick()
	for _, e := range g.world.CullAtoms(g.atomRegion) {
		s := g.lifetimeTracker.Exit(e.Seq, g.state.Level, e.Life.BornTick, tick,
			e.Life.EntrySpeed, e.Vel.X, e.Vel.Y, e.Pos.X, e.Pos.Y, e.Life.Absorbed)
		g.totals.AtomsExited++
		g.collector.RecordExit(s)
		if g.outputManager != nil {
			g.pendingExits = append(g.pendingExits, s)
		}
		if g.exitCallback != nil {
			g.exitCallback(s)
		}
	}

	if g.cfg.Photon.CullOffscreen {
		n := g.world.CullPhotons(g.photonRegion)
		g.totals.PhotonsCulled += n
		g.collector.RecordPhotonCull(n)
	}
}

// updateControls applies the pointer to every visible widget.
func (g *Game) updateControls(p ui.Pointer) {
	c := g.controls

	if g.state.Level < MaxLevel && c.Next.Control(p) {
		g.setLevel(g.state.Level + 1)
	}
	if g.state.Level > MinLevel && c.Prev.Control(p) {
		g.setLevel(g.state.Level - 1)
	}

	if g.state.Level > MinLevel {
		g.hue = c.Hue.Control(p)
	} else {
		g.hue = g.cfg.Laser.Level1Hue
	}

	c.Laser.SetFireRate(c.Intensity.Control(p))
	if c.Laser.Control(p, g.hue, g.world) {
		g.totals.PhotonsEmitted++
		g.collector.RecordEmit()
	}
}

// setLevel switches level and schedules a restart.
func (g *Game) setLevel(level int) {
	level = clampLevel(level)
	slog.Info("level changed", "tick", g.Tick(), "from", g.state.Level, "to", level)
	g.state.Level = level
	g.state.Restart = true
}

// restart empties the world and rearms the spawner for the current level.
func (g *Game) restart() {
	g.world.Clear()
	g.spawner = systems.NewSpawner(g.cfg.InitialInterval(g.state.Level), g.cfg.Spawner.RestartOffset)
	g.drawLevel3Hue()
	g.state.Restart = false

	g.totals.Restarts++
	g.collector.RecordRestart()
	slog.Info("restart",
		"tick", g.Tick(),
		"level", g.state.Level,
		"level3_hue", g.state.Level3Hue,
		"first_atom_in", g.spawner.Interval-g.spawner.Tick,
	)
}

// drawLevel3Hue picks a whole-number hue shared by every level 3 atom, or
// clears it on other levels.
func (g *Game) drawLevel3Hue() {
	if g.state.Level != MaxLevel {
		g.state.Level3Hue = 0
		g.state.HasLevel3Hue = false
		return
	}
	ac := g.cfg.Atom
	h := ac.Level3HueMin + g.rng.Float64()*(ac.Level3HueMax-ac.Level3HueMin)
	g.state.Level3Hue = math.Trunc(h)
	g.state.HasLevel3Hue = true
}
