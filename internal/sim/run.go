package sim

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// ErrTickLimit is returned by Run when maxTicks elapse with targets left.
var ErrTickLimit = errors.New("tick limit reached")

// Outcome summarizes a finished run.
type Outcome struct {
	Ticks     uint64
	Remaining int
	Drops     int
	AllDown   bool
}

// Run drives the simulation from a ticker until every target is down, maxTicks
// ticks have elapsed or ctx is cancelled. A maxTicks of zero means no limit.
// pilot may be nil, in which case only targets animate.
//
// Run returns ctx.Err() on cancellation and ErrTickLimit when the limit is hit.
func (s *Simulation) Run(ctx context.Context, interval time.Duration, maxTicks int, pilot *Autopilot) (Outcome, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.Info("run started",
		zap.Duration("interval", interval),
		zap.Int("maxTicks", maxTicks),
		zap.Bool("autopilot", pilot != nil),
	)

	for {
		if s.allDown || s.targets.Len() == 0 {
			return s.outcome(pilot), nil
		}
		if maxTicks > 0 && s.tick >= uint64(maxTicks) {
			return s.outcome(pilot), ErrTickLimit
		}

		select {
		case <-ctx.Done():
			return s.outcome(pilot), ctx.Err()
		case <-ticker.C:
			s.Step(pilot)
		}
	}
}

// Step applies one pilot move followed by one tick.
func (s *Simulation) Step(pilot *Autopilot) {
	if pilot != nil {
		pilot.Step()
	}
	s.OnTick()
}

func (s *Simulation) outcome(pilot *Autopilot) Outcome {
	o := Outcome{
		Ticks:     s.tick,
		Remaining: s.targets.Remaining(),
		AllDown:   s.allDown,
	}
	if pilot != nil {
		o.Drops = pilot.Drops()
	}
	return o
}
