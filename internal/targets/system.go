package targets

import (
	"github.com/Faultbox/balloon-bomber/internal/terrain"
	"github.com/Faultbox/balloon-bomber/pkg/math"
)

// Config holds target animation parameters.
type Config struct {
	Size           float32 // Cube edge length
	InitialWaitMax int     // Upper bound of the first countdown, in ticks
	RewaitMax      int     // Upper bound of later countdowns, in ticks
	BobStep        float32 // Vertical distance moved per tick
	BobHeightMax   int     // Upper bound of the per-cycle bob ceiling
}

// DefaultConfig returns the standard target parameters.
func DefaultConfig() Config {
	return Config{
		Size:           1.0,
		InitialWaitMax: 120,
		RewaitMax:      400,
		BobStep:        0.05,
		BobHeightMax:   10,
	}
}

// Ground supplies spawn points for targets.
type Ground interface {
	RandomVertex(rng terrain.Rand) math.Vec3
}

// System owns a fixed set of targets and advances their animation.
type System struct {
	cfg         Config
	rng         terrain.Rand
	targets     []Target
	remaining   int
	viewTargets bool
}

// NewSystem creates an empty target system.
func NewSystem(cfg Config, rng terrain.Rand) *System {
	return &System{cfg: cfg, rng: rng}
}

// Place replaces all targets with count new ones planted on random interior
// vertices of ground. Each starts waiting with a fresh countdown.
func (s *System) Place(count int, ground Ground) {
	s.targets = make([]Target, count)
	for i := range s.targets {
		pos := ground.RandomVertex(s.rng)
		s.targets[i] = Target{
			Position:          pos,
			Size:              s.cfg.Size,
			MeshHeight:        pos.Y - s.cfg.Size*2,
			TicksBeforeMoving: s.rng.IntN(s.cfg.InitialWaitMax) + 1,
		}
	}
	s.remaining = count
}

// Add appends a prepared target. Hit targets do not count as remaining.
func (s *System) Add(t Target) int {
	s.targets = append(s.targets, t)
	if !t.Hit {
		s.remaining++
	}
	return len(s.targets) - 1
}

// Len returns the number of targets.
func (s *System) Len() int {
	return len(s.targets)
}

// At returns the target at index i.
func (s *System) At(i int) *Target {
	return &s.targets[i]
}

// Targets returns all targets in placement order.
func (s *System) Targets() []Target {
	return s.targets
}

// Remaining returns the number of targets not yet hit.
func (s *System) Remaining() int {
	return s.remaining
}

// MarkHit destroys target i. It reports false if the target was already hit.
func (s *System) MarkHit(i int) bool {
	t := &s.targets[i]
	if t.Hit {
		return false
	}
	t.Hit = true
	t.Moving = false
	s.remaining--
	return true
}

// ViewTargets reports whether animation is frozen for inspection.
func (s *System) ViewTargets() bool {
	return s.viewTargets
}

// SetViewTargets freezes or resumes animation without touching any countdown.
func (s *System) SetViewTargets(on bool) {
	s.viewTargets = on
}

// ToggleViewTargets flips the freeze flag and returns the new value.
func (s *System) ToggleViewTargets() bool {
	s.viewTargets = !s.viewTargets
	return s.viewTargets
}

// Visible reports whether target i should be drawn: while moving, or while
// frozen for inspection and not yet hit.
func (s *System) Visible(i int) bool {
	t := &s.targets[i]
	return t.Moving || (s.viewTargets && !t.Hit)
}

// Tick advances every target that is not hit by one step.
// Nothing moves while targets are frozen for inspection.
func (s *System) Tick() {
	if s.viewTargets {
		return
	}
	for i := range s.targets {
		t := &s.targets[i]
		if t.Hit {
			continue
		}
		if t.Moving {
			s.stepMoving(t)
		} else {
			s.stepWaiting(t)
		}
	}
}

func (s *System) stepWaiting(t *Target) {
	t.TicksBeforeMoving--
	if t.TicksBeforeMoving != 0 {
		return
	}
	t.Moving = true
	t.Position.Y = t.MeshHeight - t.Size
	t.MaxHeight = float32(s.rng.IntN(s.cfg.BobHeightMax) + 1)
	t.Delta = s.cfg.BobStep
}

func (s *System) stepMoving(t *Target) {
	switch {
	case t.Delta > 0 && t.Position.Y < t.MeshHeight+t.MaxHeight:
		t.Position.Y += t.Delta
	case t.Delta > 0:
		// Apex: turn around without moving this tick
		t.Delta = -t.Delta
	case t.Position.Y > t.Floor():
		t.Position.Y += t.Delta
	default:
		t.Moving = false
		t.TicksBeforeMoving = s.rng.IntN(s.cfg.RewaitMax) + 1
	}
}
