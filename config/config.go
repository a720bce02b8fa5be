// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/laserscape/input"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all game configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Arena      ArenaConfig      `yaml:"arena"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Ships      []ShipConfig     `yaml:"ships"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// PhysicsConfig holds the fixed-step integration parameters.
type PhysicsConfig struct {
	DT               float64 `yaml:"dt"`                  // seconds per fixed step
	MoveAccel        float64 `yaml:"move_accel"`          // thrust per tick while up/down is held
	TurnAccel        float64 `yaml:"turn_accel"`          // turn speed added per tick while left/right is held
	MoveDrag         float64 `yaml:"move_drag"`           // velocity divisor per tick, >= 1
	TurnDrag         float64 `yaml:"turn_drag"`           // turn speed divisor per tick
	MaxStepsPerFrame int     `yaml:"max_steps_per_frame"` // cap on catch-up steps per rendered frame
}

// ArenaConfig holds the ship and projectile rectangles.
type ArenaConfig struct {
	Width         float64 `yaml:"width"`  // 0 = screen width
	Height        float64 `yaml:"height"` // 0 = screen height
	DespawnWidth  float64 `yaml:"despawn_width"`
	DespawnHeight float64 `yaml:"despawn_height"`
}

// ProjectileConfig holds projectile presentation.
type ProjectileConfig struct {
	Scale  float64 `yaml:"scale"`
	Length float64 `yaml:"length"` // drawn length in world units
}

// Vec2 is a YAML-friendly 2D point.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// R3 embeds the point in 3D.
func (v Vec2) R3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y}
}

// ControlsConfig maps steering directions to key names.
type ControlsConfig struct {
	Up    input.Key `yaml:"up"`
	Down  input.Key `yaml:"down"`
	Left  input.Key `yaml:"left"`
	Right input.Key `yaml:"right"`
}

// WeaponConfig defines one weapon mount.
type WeaponConfig struct {
	Trigger         input.Key     `yaml:"trigger"`
	Offset          Vec2          `yaml:"offset"`
	Cooldown        time.Duration `yaml:"cooldown"`
	ProjectileSpeed float64       `yaml:"projectile_speed"`
}

// ShipConfig defines a player ship.
type ShipConfig struct {
	Name     string         `yaml:"name"`
	Color    uint8          `yaml:"color"`
	Spawn    Vec2           `yaml:"spawn"`
	Rotation float64        `yaml:"rotation"`
	Scale    float64        `yaml:"scale"`
	Controls ControlsConfig `yaml:"controls"`
	Weapons  []WeaponConfig `yaml:"weapons"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Step          time.Duration // Physics.DT as a duration
	ArenaWidth    float64       // effective ship arena width
	ArenaHeight   float64       // effective ship arena height
	ScreenW32     float32
	ScreenH32     float32
	TicksPerStats int32 // Telemetry.StatsWindow in ticks
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

// Defaults returns the embedded default configuration.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are broken: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	return Parse(data)
}

// Parse overlays YAML data on the embedded defaults, then validates.
// A ships list in data replaces the default ships entirely.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if len(data) > 0 {
		// Unmarshal into same struct - only overwrites fields present in data
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects configurations the simulation cannot run.
func (c *Config) Validate() error {
	if c.Physics.DT <= 0 {
		return fmt.Errorf("%w: physics.dt must be positive, got %v", ErrInvalid, c.Physics.DT)
	}
	if c.Physics.MoveDrag < 1 || c.Physics.TurnDrag < 1 {
		return fmt.Errorf("%w: drag divisors must be at least 1, got move %v turn %v",
			ErrInvalid, c.Physics.MoveDrag, c.Physics.TurnDrag)
	}
	if c.Arena.DespawnWidth <= 0 || c.Arena.DespawnHeight <= 0 {
		return fmt.Errorf("%w: despawn arena must have positive size", ErrInvalid)
	}
	if c.Arena.Width < 0 || c.Arena.Height < 0 {
		return fmt.Errorf("%w: arena size cannot be negative", ErrInvalid)
	}
	if len(c.Ships) == 0 {
		return fmt.Errorf("%w: at least one ship is required", ErrInvalid)
	}

	seen := make(map[string]bool, len(c.Ships))
	for i, ship := range c.Ships {
		if ship.Name == "" {
			return fmt.Errorf("%w: ship %d has no name", ErrInvalid, i)
		}
		if seen[ship.Name] {
			return fmt.Errorf("%w: duplicate ship name %q", ErrInvalid, ship.Name)
		}
		seen[ship.Name] = true

		ctl := ship.Controls
		if ctl.Up == input.KeyNull || ctl.Down == input.KeyNull || ctl.Left == input.KeyNull || ctl.Right == input.KeyNull {
			return fmt.Errorf("%w: ship %q needs all four controls", ErrInvalid, ship.Name)
		}
		for j, w := range ship.Weapons {
			if w.Trigger == input.KeyNull {
				return fmt.Errorf("%w: ship %q weapon %d has no trigger", ErrInvalid, ship.Name, j)
			}
			if w.Cooldown < 0 {
				return fmt.Errorf("%w: ship %q weapon %d has negative cooldown", ErrInvalid, ship.Name, j)
			}
		}
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	// Rounded so 1/60 s is 16666667ns and 15 steps cover 250ms
	c.Derived.Step = time.Duration(math.Round(c.Physics.DT * float64(time.Second)))
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	// Arena defaults to screen size if not specified
	c.Derived.ArenaWidth = c.Arena.Width
	if c.Derived.ArenaWidth == 0 {
		c.Derived.ArenaWidth = float64(c.Screen.Width)
	}
	c.Derived.ArenaHeight = c.Arena.Height
	if c.Derived.ArenaHeight == 0 {
		c.Derived.ArenaHeight = float64(c.Screen.Height)
	}

	if c.Physics.MaxStepsPerFrame < 1 {
		c.Physics.MaxStepsPerFrame = 1
	}

	ticks := int32(c.Telemetry.StatsWindow / c.Physics.DT)
	if ticks < 1 {
		ticks = 1
	}
	c.Derived.TicksPerStats = ticks

	for i := range c.Ships {
		if c.Ships[i].Scale == 0 {
			c.Ships[i].Scale = 1
		}
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
