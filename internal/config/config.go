// Package config handles simulation configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all simulation settings.
type Config struct {
	Terrain    TerrainConfig    `yaml:"terrain"`
	Targets    TargetsConfig    `yaml:"targets"`
	Bomb       BombConfig       `yaml:"bomb"`
	Balloon    BalloonConfig    `yaml:"balloon"`
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// TerrainConfig holds heightfield synthesis settings.
type TerrainConfig struct {
	Resolution int     `yaml:"resolution"` // Quads per side
	SideWidth  float32 `yaml:"side_width"` // World units per side
	OriginX    float32 `yaml:"origin_x"`
	OriginZ    float32 `yaml:"origin_z"`
	BlobCount  int     `yaml:"blob_count"`
}

// TargetsConfig holds target population and animation settings.
type TargetsConfig struct {
	Count          int     `yaml:"count"`
	Size           float32 `yaml:"size"`
	InitialWaitMax int     `yaml:"initial_wait_max"` // Ticks
	RewaitMax      int     `yaml:"rewait_max"`       // Ticks
	BobStep        float32 `yaml:"bob_step"`
	BobHeightMax   int     `yaml:"bob_height_max"`
}

// BombConfig holds projectile settings.
type BombConfig struct {
	FallStep    float32 `yaml:"fall_step"`
	CatchRadius float32 `yaml:"catch_radius"`
	HitRadius   float32 `yaml:"hit_radius"`
	Radius      float32 `yaml:"radius"`
}

// BalloonConfig holds bomber placement and movement settings.
type BalloonConfig struct {
	Altitude   float32 `yaml:"altitude"`
	BasketDrop float32 `yaml:"basket_drop"`
	Step       float32 `yaml:"step"`
}

// SimulationConfig holds tick driver settings.
type SimulationConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	Seed         uint64        `yaml:"seed"`      // 0 picks a time-based seed
	MaxTicks     int           `yaml:"max_ticks"` // 0 runs until all targets are down
	ViewTargets  bool          `yaml:"view_targets"`
	Autopilot    bool          `yaml:"autopilot"`
	DumpBlobs    bool          `yaml:"dump_blobs"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Resolution: 64,
			SideWidth:  64,
			BlobCount:  20,
		},
		Targets: TargetsConfig{
			Count:          10,
			Size:           1.0,
			InitialWaitMax: 120,
			RewaitMax:      400,
			BobStep:        0.05,
			BobHeightMax:   10,
		},
		Bomb: BombConfig{
			FallStep:    0.1,
			CatchRadius: 1.0,
			HitRadius:   1.0,
			Radius:      0.5,
		},
		Balloon: BalloonConfig{
			Altitude:   10,
			BasketDrop: 6.25,
			Step:       0.125,
		},
		Simulation: SimulationConfig{
			TickInterval: 25 * time.Millisecond,
			Autopilot:    true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Terrain.Resolution < 2 {
		errs = append(errs, fmt.Errorf("terrain.resolution %d: must be at least 2", c.Terrain.Resolution))
	}
	if c.Terrain.SideWidth <= 0 {
		errs = append(errs, fmt.Errorf("terrain.side_width %v: must be positive", c.Terrain.SideWidth))
	}
	if c.Terrain.BlobCount < 0 {
		errs = append(errs, fmt.Errorf("terrain.blob_count %d: must not be negative", c.Terrain.BlobCount))
	}
	if c.Targets.Count < 0 {
		errs = append(errs, fmt.Errorf("targets.count %d: must not be negative", c.Targets.Count))
	}
	if c.Targets.InitialWaitMax < 1 || c.Targets.RewaitMax < 1 || c.Targets.BobHeightMax < 1 {
		errs = append(errs, errors.New("targets: initial_wait_max, rewait_max and bob_height_max must be at least 1"))
	}
	if c.Targets.BobStep <= 0 {
		errs = append(errs, fmt.Errorf("targets.bob_step %v: must be positive", c.Targets.BobStep))
	}
	if c.Targets.Size <= 0 {
		errs = append(errs, fmt.Errorf("targets.size %v: must be positive", c.Targets.Size))
	}
	for _, f := range []struct {
		name  string
		value float32
	}{
		{"bomb.fall_step", c.Bomb.FallStep},
		{"bomb.catch_radius", c.Bomb.CatchRadius},
		{"bomb.hit_radius", c.Bomb.HitRadius},
	} {
		if f.value <= 0 {
			errs = append(errs, fmt.Errorf("%s %v: must be positive", f.name, f.value))
		}
	}
	if c.Balloon.Step <= 0 {
		errs = append(errs, fmt.Errorf("balloon.step %v: must be positive", c.Balloon.Step))
	}
	if c.Simulation.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("simulation.tick_interval %v: must be positive", c.Simulation.TickInterval))
	}
	return errors.Join(errs...)
}
