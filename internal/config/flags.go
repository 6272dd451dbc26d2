package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging and blob dump")
	flagSeed        = flag.Uint64("seed", 0, "Random seed (0 = time-based)")
	flagResolution  = flag.Int("resolution", 0, "Terrain quads per side")
	flagTargets     = flag.Int("targets", -1, "Number of targets")
	flagTicks       = flag.Int("ticks", 0, "Stop after this many ticks")
	flagViewTargets = flag.Bool("view-targets", false, "Start with target animation frozen")
	flagIdle        = flag.Bool("idle", false, "Animate targets without dropping bombs")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Simulation.DumpBlobs = true
	}
	if *flagSeed != 0 {
		cfg.Simulation.Seed = *flagSeed
	}
	if *flagResolution > 0 {
		cfg.Terrain.Resolution = *flagResolution
	}
	if *flagTargets >= 0 {
		cfg.Targets.Count = *flagTargets
	}
	if *flagTicks > 0 {
		cfg.Simulation.MaxTicks = *flagTicks
	}
	if *flagViewTargets {
		cfg.Simulation.ViewTargets = true
	}
	if *flagIdle {
		cfg.Simulation.Autopilot = false
	}
}
