package sim

import (
	"go.uber.org/zap"
)

// Autopilot steers the balloon toward risen targets and drops bombs on them.
// It stands in for a player when the simulation runs headless.
type Autopilot struct {
	sim    *Simulation
	target int // Index being chased, -1 when idle
	drops  int
}

// NewAutopilot creates an idle autopilot for s.
func NewAutopilot(s *Simulation) *Autopilot {
	return &Autopilot{sim: s, target: -1}
}

// Drops returns the number of bombs released so far.
func (a *Autopilot) Drops() int {
	return a.drops
}

// Step moves the balloon one nudge and releases a bomb when it is over a
// target that is currently moving. Call it once per tick, before OnTick.
func (a *Autopilot) Step() {
	s := a.sim
	if s.bomb.Active() {
		return
	}

	if a.target < 0 || s.targets.At(a.target).Hit {
		a.target = a.nearest()
		if a.target < 0 {
			return
		}
		s.log.Debug("autopilot chasing", zap.Int("target", a.target))
	}

	t := s.targets.At(a.target)
	if !s.balloon.StepToward(t.Position.X, t.Position.Z) {
		return
	}
	if t.Moving && s.DropFromBalloon() {
		a.drops++
	}
}

// nearest returns the closest target that is not hit, preferring ones that
// are currently above ground.
func (a *Autopilot) nearest() int {
	s := a.sim
	here := s.balloon.Position().XZ()

	best, bestMoving := -1, false
	var bestDist float32
	for i := range s.targets.Len() {
		t := s.targets.At(i)
		if t.Hit {
			continue
		}
		d := t.Position.XZ().Sub(here).Length()
		switch {
		case best < 0,
			t.Moving && !bestMoving,
			t.Moving == bestMoving && d < bestDist:
			best, bestMoving, bestDist = i, t.Moving, d
		}
	}
	return best
}
