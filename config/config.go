// Package config provides configuration loading and access for the aquarium.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all aquarium configuration parameters.
type Config struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Placement PlacementConfig `yaml:"placement"`
	Motion    MotionConfig    `yaml:"motion"`
	Assets    AssetsConfig    `yaml:"assets"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// CanvasConfig holds the drawing surface size.
// Fish bounce off its edges.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlacementConfig holds the non-overlapping placement parameters used by Add.
type PlacementConfig struct {
	AnchorX float64 `yaml:"anchor_x"` // First candidate position
	AnchorY float64 `yaml:"anchor_y"`
	Step    float64 `yaml:"step"`    // Diagonal offset between candidates
	Overlap float64 `yaml:"overlap"` // DistanceTo below this counts as overlapping
}

// MotionConfig holds fish movement parameters.
type MotionConfig struct {
	Margin    float64 `yaml:"margin"`     // Distance from the canvas edge where fish turn around
	MinSpeedX float64 `yaml:"min_speed_x"` // Lower bound of the initial random speed (pixels/sec)
	MaxSpeedX float64 `yaml:"max_speed_x"` // Upper bound of the initial random speed (pixels/sec)
	DT        float64 `yaml:"dt"`          // Seconds per headless tick
}

// AssetsConfig holds image metrics used when no image files are available.
type AssetsConfig struct {
	Dir           string               `yaml:"dir"` // Directory the image names are resolved against ("" = sizes only)
	DefaultWidth  float64              `yaml:"default_width"`
	DefaultHeight float64              `yaml:"default_height"`
	Sizes         map[string]AssetSize `yaml:"sizes"`
}

// AssetSize is the pixel size of one image.
type AssetSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TelemetryConfig holds headless output parameters.
type TelemetryConfig struct {
	SummaryEvery int  `yaml:"summary_every"` // Ticks between summary rows
	Trace        bool `yaml:"trace"`         // Write one trace row per item per tick
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	CanvasW float64 // Canvas.Width as float64
	CanvasH float64 // Canvas.Height as float64
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

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
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

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the simulation cannot run with.
func (c *Config) validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Motion.MinSpeedX > c.Motion.MaxSpeedX {
		return fmt.Errorf("motion.min_speed_x %g exceeds motion.max_speed_x %g", c.Motion.MinSpeedX, c.Motion.MaxSpeedX)
	}
	if c.Assets.DefaultWidth <= 0 || c.Assets.DefaultHeight <= 0 {
		return fmt.Errorf("assets default size must be positive")
	}
	for name, size := range c.Assets.Sizes {
		if size.Width <= 0 || size.Height <= 0 {
			return fmt.Errorf("asset %q: size must be positive", name)
		}
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.CanvasW = float64(c.Canvas.Width)
	c.Derived.CanvasH = float64(c.Canvas.Height)

	if c.Telemetry.SummaryEvery < 1 {
		c.Telemetry.SummaryEvery = 1
	}
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
