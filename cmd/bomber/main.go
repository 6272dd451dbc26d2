// Package main runs the balloon bomber simulation headless.
package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/balloon-bomber/internal/config"
	"github.com/Faultbox/balloon-bomber/internal/logger"
	"github.com/Faultbox/balloon-bomber/internal/sim"
	"github.com/Faultbox/balloon-bomber/pkg/math"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Balloon Bomber ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("simulation error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("seeding", zap.Uint64("seed", seed))

	s, err := sim.New(cfg, rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		return fmt.Errorf("creating simulation: %w", err)
	}

	if cfg.Simulation.DumpBlobs {
		s.ForEachBlob(func(pos math.Vec3, height, width float32) {
			logger.Debug("blob",
				logger.Vec3("position", pos),
				zap.Float32("height", height),
				zap.Float32("width", width),
			)
		})
	}

	s.OnTargetHit(func(index, remaining int) {
		logger.Sugar.Infof("target %d destroyed, %d remaining", index, remaining)
	})
	s.OnAllTargetsDown(func() {
		logger.Info("you win")
	})

	var pilot *sim.Autopilot
	if cfg.Simulation.Autopilot {
		pilot = sim.NewAutopilot(s)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, err := s.Run(ctx, cfg.Simulation.TickInterval, cfg.Simulation.MaxTicks, pilot)
	fields := []zap.Field{
		zap.Uint64("ticks", out.Ticks),
		zap.Int("remaining", out.Remaining),
		zap.Int("drops", out.Drops),
		zap.Bool("allDown", out.AllDown),
	}

	switch {
	case err == nil:
		logger.Info("simulation finished", fields...)
	case errors.Is(err, sim.ErrTickLimit), errors.Is(err, context.Canceled):
		logger.Info("simulation stopped", append(fields, zap.NamedError("reason", err))...)
	default:
		return err
	}
	return nil
}
