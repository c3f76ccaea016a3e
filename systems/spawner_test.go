package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/lasercool/config"
)

func TestSpawnerFirstArrival(t *testing.T) {
	cfg := config.Default()
	w := NewParticleWorld(cfg)
	rng := rand.New(rand.NewSource(1))

	s := NewSpawner(cfg.InitialInterval(1), cfg.Spawner.StartupOffset)
	if s.Tick != 150 || s.Interval != 300 {
		t.Fatalf("NewSpawner = %+v, want tick 150 interval 300", s)
	}

	p := SpawnParams{Level: 1}
	for i := 1; i < 150; i++ {
		if s.Step(w, cfg, rng, p) {
			t.Fatalf("spawned early at step %d", i)
		}
	}
	if !s.Step(w, cfg, rng, p) {
		t.Fatal("expected a spawn at step 150")
	}
	if w.AtomCount() != 1 {
		t.Errorf("AtomCount = %d, want 1", w.AtomCount())
	}
	// int(150 + 0.85*(300-150)) = 277
	if s.Interval != 277 {
		t.Errorf("Interval after first spawn = %d, want 277", s.Interval)
	}
	if s.Tick != 0 {
		t.Errorf("Tick after spawn = %d, want 0", s.Tick)
	}
}

func TestSpawnerIntervalConverges(t *testing.T) {
	cfg := config.Default()

	for level := 1; level <= 3; level++ {
		w := NewParticleWorld(cfg)
		rng := rand.New(rand.NewSource(int64(level)))
		s := NewSpawner(cfg.InitialInterval(level), 0)
		floor := cfg.FinalInterval(level)
		p := SpawnParams{Level: level}

		prev := s.Interval
		spawns := 0
		for spawns < 40 {
			if !s.Step(w, cfg, rng, p) {
				if s.Tick < 0 || s.Tick >= s.Interval {
					t.Fatalf("level %d: tick %d outside [0, %d)", level, s.Tick, s.Interval)
				}
				continue
			}
			spawns++
			if s.Interval > prev {
				t.Fatalf("level %d: interval increased %d -> %d", level, prev, s.Interval)
			}
			if s.Interval < floor {
				t.Fatalf("level %d: interval %d below floor %d", level, s.Interval, floor)
			}
			prev = s.Interval
		}
		if s.Interval != floor {
			t.Errorf("level %d: interval after %d spawns = %d, want floor %d", level, spawns, s.Interval, floor)
		}
	}
}

func TestSpawnerDegenerateInterval(t *testing.T) {
	cfg := config.Default()
	w := NewParticleWorld(cfg)
	rng := rand.New(rand.NewSource(1))

	s := Spawner{Tick: 0, Interval: 0}
	if !s.Step(w, cfg, rng, SpawnParams{Level: 1}) {
		t.Error("interval 0 should be clamped to 1 and spawn every tick")
	}
	if s.Interval < 1 {
		t.Errorf("Interval = %d, want >= 1", s.Interval)
	}
}

func TestNewAtomByLevel(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name      string
		params    SpawnParams
		wantRange float64
		doppler   bool
		check     func(t *testing.T, base, sat, val float64)
	}{
		{
			name:      "level 1 gray",
			params:    SpawnParams{Level: 1},
			wantRange: 360,
			check: func(t *testing.T, base, sat, val float64) {
				if base != 180 || sat != 0 || val != 50 {
					t.Errorf("color = (%v,%v,%v), want (180,0,50)", base, sat, val)
				}
			},
		},
		{
			name:      "level 2 random hue",
			params:    SpawnParams{Level: 2},
			wantRange: 25,
			check: func(t *testing.T, base, sat, val float64) {
				if base < 0 || base >= 282 {
					t.Errorf("hue %v outside [0, 282)", base)
				}
				if sat != 100 || val != 100 {
					t.Errorf("sat/val = %v/%v, want 100/100", sat, val)
				}
			},
		},
		{
			name:      "level 3 shared hue",
			params:    SpawnParams{Level: 3, SharedHue: 200, HasSharedHue: true},
			wantRange: 25,
			doppler:   true,
			check: func(t *testing.T, base, sat, val float64) {
				if base != 200 {
					t.Errorf("base hue = %v, want 200", base)
				}
			},
		},
		{
			name:      "level 3 default hue",
			params:    SpawnParams{Level: 3},
			wantRange: 25,
			doppler:   true,
			check: func(t *testing.T, base, sat, val float64) {
				if base != 110 {
					t.Errorf("base hue = %v, want 110", base)
				}
			},
		},
		{
			name:      "unknown level",
			params:    SpawnParams{Level: 9},
			wantRange: 180,
			check: func(t *testing.T, base, sat, val float64) {
				if base != 180 || sat != 0 || val != 50 {
					t.Errorf("color = (%v,%v,%v), want (180,0,50)", base, sat, val)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			for i := 0; i < 50; i++ {
				pos, vel, atom := NewAtom(cfg, rng, tt.params)

				if pos.X != 80 {
					t.Fatalf("x = %v, want 80", pos.X)
				}
				if pos.Y < 64 || pos.Y > 288 {
					t.Fatalf("y = %v outside [64, 288]", pos.Y)
				}
				if vel.X < 0.8 || vel.X > 1.2 || vel.Y != 0 {
					t.Fatalf("velocity = %+v, want vx in [0.8, 1.2], vy 0", vel)
				}
				if atom.HueRange != tt.wantRange {
					t.Fatalf("HueRange = %v, want %v", atom.HueRange, tt.wantRange)
				}
				if atom.Doppler != tt.doppler {
					t.Fatalf("Doppler = %v, want %v", atom.Doppler, tt.doppler)
				}
				if atom.Doppler && atom.Hue >= atom.BaseHue {
					t.Fatalf("right-moving Doppler atom hue %v should be below base %v", atom.Hue, atom.BaseHue)
				}
				if !atom.Doppler && atom.Hue != atom.BaseHue {
					t.Fatalf("hue %v != base %v without Doppler", atom.Hue, atom.BaseHue)
				}
				tt.check(t, atom.BaseHue, atom.Sat, atom.Val)
			}
		})
	}
}

func TestNewAtomDeterministic(t *testing.T) {
	cfg := config.Default()
	p := SpawnParams{Level: 2}

	pa, va, aa := NewAtom(cfg, rand.New(rand.NewSource(7)), p)
	pb, vb, ab := NewAtom(cfg, rand.New(rand.NewSource(7)), p)
	if pa != pb || va != vb || aa != ab {
		t.Error("same seed produced different atoms")
	}
}
