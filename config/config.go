// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Atom      AtomConfig      `yaml:"atom"`
	Photon    PhotonConfig    `yaml:"photon"`
	Doppler   DopplerConfig   `yaml:"doppler"`
	Spawner   SpawnerConfig   `yaml:"spawner"`
	Laser     LaserConfig     `yaml:"laser"`
	Controls  ControlsConfig  `yaml:"controls"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds the play area and the borders around it.
type ScreenConfig struct {
	PlayWidth    int `yaml:"play_width"`
	PlayHeight   int `yaml:"play_height"`
	LeftBorder   int `yaml:"left_border"`
	RightBorder  int `yaml:"right_border"`
	TopBorder    int `yaml:"top_border"`
	BottomBorder int `yaml:"bottom_border"`
	TargetFPS    int `yaml:"target_fps"`
}

// AtomConfig holds atom creation and absorption parameters.
type AtomConfig struct {
	Radius             float64 `yaml:"radius"`
	SpeedMin           float64 `yaml:"speed_min"`
	SpeedMax           float64 `yaml:"speed_max"`
	CollisionSpeedGain float64 `yaml:"collision_speed_gain"` // Speed gained per absorbed photon
	AbsorptionRange    float64 `yaml:"absorption_range"`     // Hue tolerance for levels 2 and 3

	Level1Hue             float64 `yaml:"level1_hue"`
	Level1Saturation      float64 `yaml:"level1_saturation"`
	Level1Value           float64 `yaml:"level1_value"`
	Level1AbsorptionRange float64 `yaml:"level1_absorption_range"`

	Level3DefaultHue float64 `yaml:"level3_default_hue"` // Used when no shared hue was drawn
	Level3HueMin     float64 `yaml:"level3_hue_min"`
	Level3HueMax     float64 `yaml:"level3_hue_max"`

	FallbackAbsorptionRange float64 `yaml:"fallback_absorption_range"`
}

// PhotonConfig holds photon parameters.
type PhotonConfig struct {
	Speed         float64 `yaml:"speed"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	CullOffscreen bool    `yaml:"cull_offscreen"` // false keeps photons forever unless absorbed
}

// DopplerConfig holds the visual Doppler model constants.
type DopplerConfig struct {
	SpeedOfLight  float64 `yaml:"speed_of_light"`
	WavelengthMin float64 `yaml:"wavelength_min"`
	WavelengthMax float64 `yaml:"wavelength_max"`
}

// SpawnerConfig holds atom arrival timing, indexed by level-1.
type SpawnerConfig struct {
	InitialIntervals []int   `yaml:"initial_intervals"`
	FinalIntervals   []int   `yaml:"final_intervals"`
	Decay            float64 `yaml:"decay"`
	StartupOffset    int     `yaml:"startup_offset"`
	RestartOffset    int     `yaml:"restart_offset"`
}

// LaserConfig holds laser geometry and firing parameters.
type LaserConfig struct {
	Width        float64 `yaml:"width"`
	HandleHeight float64 `yaml:"handle_height"`
	FiringDelay  int     `yaml:"firing_delay"`
	Level1Hue    float64 `yaml:"level1_hue"`
}

// ControlsConfig holds slider ranges and control panel layout.
type ControlsConfig struct {
	IntensityMin    float64 `yaml:"intensity_min"`
	IntensityMax    float64 `yaml:"intensity_max"`
	HueMin          float64 `yaml:"hue_min"`
	HueMax          float64 `yaml:"hue_max"`
	HueDefault      float64 `yaml:"hue_default"`
	SliderInset     float64 `yaml:"slider_inset"`
	SliderHeight    float64 `yaml:"slider_height"`
	HandleWidth     float64 `yaml:"handle_width"`
	HandleHeight    float64 `yaml:"handle_height"`
	IntensityOffset float64 `yaml:"intensity_offset"`
	HueOffset       float64 `yaml:"hue_offset"`
	ButtonSize      float64 `yaml:"button_size"`
	ButtonMargin    float64 `yaml:"button_margin"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
	BookmarkHistory     int     `yaml:"bookmark_history"` // windows kept by the bookmark detector
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WindowWidth  int
	WindowHeight int

	// Play area edges in window coordinates
	PlayLeft   float64
	PlayTop    float64
	PlayRight  float64
	PlayBottom float64

	// Doppler frequencies in arbitrary units
	FreqMin float64
	FreqMax float64

	// DopplerGain is FreqMin/(FreqMax-FreqMin); multiplies the slider hue span.
	DopplerGain float64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns the embedded defaults. It panics if they fail to parse,
// which can only happen if defaults.yaml itself is broken.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.sanitize()
	cfg.computeDerived()

	return cfg, nil
}

// sanitize clamps values that would otherwise divide by zero or stall timers.
func (c *Config) sanitize() {
	if c.Screen.TargetFPS < 1 {
		c.Screen.TargetFPS = 1
	}
	if c.Laser.FiringDelay < 1 {
		c.Laser.FiringDelay = 1
	}
	for len(c.Spawner.InitialIntervals) < 3 {
		c.Spawner.InitialIntervals = append(c.Spawner.InitialIntervals, 300)
	}
	for len(c.Spawner.FinalIntervals) < 3 {
		c.Spawner.FinalIntervals = append(c.Spawner.FinalIntervals, 150)
	}
	for i := range c.Spawner.InitialIntervals {
		c.Spawner.InitialIntervals[i] = max(c.Spawner.InitialIntervals[i], 1)
	}
	for i := range c.Spawner.FinalIntervals {
		c.Spawner.FinalIntervals[i] = max(c.Spawner.FinalIntervals[i], 1)
	}
	if c.Doppler.SpeedOfLight <= 0 {
		c.Doppler.SpeedOfLight = 16
	}
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	s := c.Screen
	c.Derived.WindowWidth = s.LeftBorder + s.PlayWidth + s.RightBorder
	c.Derived.WindowHeight = s.TopBorder + s.PlayHeight + s.BottomBorder

	c.Derived.PlayLeft = float64(s.LeftBorder)
	c.Derived.PlayTop = float64(s.TopBorder)
	c.Derived.PlayRight = float64(s.LeftBorder + s.PlayWidth)
	c.Derived.PlayBottom = float64(s.TopBorder + s.PlayHeight)

	c.Derived.FreqMin = c.Doppler.SpeedOfLight / c.Doppler.WavelengthMax
	c.Derived.FreqMax = c.Doppler.SpeedOfLight / c.Doppler.WavelengthMin
	if span := c.Derived.FreqMax - c.Derived.FreqMin; span != 0 {
		c.Derived.DopplerGain = c.Derived.FreqMin / span
	}
}

// InitialInterval returns the spawn interval a level starts from.
func (c *Config) InitialInterval(level int) int {
	return c.Spawner.InitialIntervals[clampLevel(level)-1]
}

// FinalInterval returns the spawn interval floor for a level.
func (c *Config) FinalInterval(level int) int {
	return c.Spawner.FinalIntervals[clampLevel(level)-1]
}

func clampLevel(level int) int {
	return min(max(level, 1), 3)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
