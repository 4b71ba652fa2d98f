package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all simulation tunables
type Config struct {
	// Gravity is the downward acceleration applied to rockets in pixels per second^2
	Gravity float64 `yaml:"gravity"`

	// ParticleGravityScale scales gravity for burst particles (below 1 gives a softer arc)
	ParticleGravityScale float64 `yaml:"particle_gravity_scale"`

	// LaunchEveryMin/Max bound the randomized delay between rocket launches in seconds
	LaunchEveryMin float64 `yaml:"launch_every_min"`
	LaunchEveryMax float64 `yaml:"launch_every_max"`

	// RocketSpeedMin/Max bound the launch speed in pixels per second
	RocketSpeedMin float64 `yaml:"rocket_speed_min"`
	RocketSpeedMax float64 `yaml:"rocket_speed_max"`

	// FuseMin/Max bound the rocket fuse in seconds; a rocket bursts when its fuse runs out
	FuseMin float64 `yaml:"fuse_min"`
	FuseMax float64 `yaml:"fuse_max"`

	// BurstCountMin/Max bound the number of particles produced by one burst
	BurstCountMin int `yaml:"burst_count_min"`
	BurstCountMax int `yaml:"burst_count_max"`

	// ParticleSpeedMin/Max bound the initial radial speed of burst particles
	ParticleSpeedMin float64 `yaml:"particle_speed_min"`
	ParticleSpeedMax float64 `yaml:"particle_speed_max"`

	// ParticleRadiusMin/Max bound the rendered base radius of burst particles
	ParticleRadiusMin float64 `yaml:"particle_radius_min"`
	ParticleRadiusMax float64 `yaml:"particle_radius_max"`

	// ParticleLifeMin/Max bound particle lifetime in seconds
	ParticleLifeMin float64 `yaml:"particle_life_min"`
	ParticleLifeMax float64 `yaml:"particle_life_max"`

	// ParticleDragMin/Max bound the per-particle velocity damping coefficient
	ParticleDragMin float64 `yaml:"particle_drag_min"`
	ParticleDragMax float64 `yaml:"particle_drag_max"`

	// HueJitter is the maximum per-particle hue offset from the burst's base hue
	HueJitter float64 `yaml:"hue_jitter"`

	// CullSlack expands the bounds outward by this many pixels before off-screen culling
	CullSlack float64 `yaml:"cull_slack"`

	// MaxParticles caps the live particle set; bursts stop appending at the cap
	MaxParticles int `yaml:"max_particles"`

	// ScreenWidth/Height are the initial window dimensions in pixels
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
}

// DefaultConfig returns the default simulation configuration
func DefaultConfig() Config {
	return Config{
		Gravity:              900.0,
		ParticleGravityScale: 0.45,
		LaunchEveryMin:       0.15,
		LaunchEveryMax:       0.6,
		RocketSpeedMin:       400.0,
		RocketSpeedMax:       720.0,
		FuseMin:              0.55,
		FuseMax:              1.15,
		BurstCountMin:        70,
		BurstCountMax:        130,
		ParticleSpeedMin:     100.0,
		ParticleSpeedMax:     400.0,
		ParticleRadiusMin:    1.5,
		ParticleRadiusMax:    3.5,
		ParticleLifeMin:      0.8,
		ParticleLifeMax:      2.2,
		ParticleDragMin:      0.4,
		ParticleDragMax:      1.3,
		HueJitter:            0.05,
		CullSlack:            60.0,
		MaxParticles:         4000,
		ScreenWidth:          1024,
		ScreenHeight:         768,
	}
}

// LoadConfig reads a YAML file over the defaults, so a config file only
// needs to name the values it changes
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every range is ordered and every magnitude is usable
func (c Config) Validate() error {
	ranges := []struct {
		name    string
		lo, hi  float64
		posOnly bool
	}{
		{"launch_every", c.LaunchEveryMin, c.LaunchEveryMax, true},
		{"rocket_speed", c.RocketSpeedMin, c.RocketSpeedMax, true},
		{"fuse", c.FuseMin, c.FuseMax, true},
		{"particle_speed", c.ParticleSpeedMin, c.ParticleSpeedMax, true},
		{"particle_radius", c.ParticleRadiusMin, c.ParticleRadiusMax, true},
		{"particle_life", c.ParticleLifeMin, c.ParticleLifeMax, true},
		{"particle_drag", c.ParticleDragMin, c.ParticleDragMax, false},
	}
	for _, r := range ranges {
		if r.lo > r.hi {
			return fmt.Errorf("inverted %s range: min %v > max %v", r.name, r.lo, r.hi)
		}
		if r.posOnly && r.lo <= 0 {
			return fmt.Errorf("%s range must be positive, got min %v", r.name, r.lo)
		}
	}

	if c.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %v", c.Gravity)
	}
	if c.ParticleGravityScale < 0 {
		return fmt.Errorf("particle_gravity_scale must not be negative, got %v", c.ParticleGravityScale)
	}
	if c.BurstCountMin <= 0 || c.BurstCountMin > c.BurstCountMax {
		return fmt.Errorf("invalid burst_count range [%d, %d]", c.BurstCountMin, c.BurstCountMax)
	}
	if c.HueJitter < 0 || c.HueJitter > 0.5 {
		return fmt.Errorf("hue_jitter must be in [0, 0.5], got %v", c.HueJitter)
	}
	if c.CullSlack < 0 {
		return fmt.Errorf("cull_slack must not be negative, got %v", c.CullSlack)
	}
	if c.MaxParticles <= 0 {
		return fmt.Errorf("max_particles must be positive, got %d", c.MaxParticles)
	}
	return nil
}
