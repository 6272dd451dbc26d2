// Package sim owns the terrain, balloon, targets and bomb of one game and
// advances them on discrete ticks.
//
// A Simulation is not safe for concurrent use. Ticks, drops and frame
// snapshots must all come from the same goroutine. Frame copies target and
// bomb state, so a renderer can keep a frame after the next tick.
package sim

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/balloon-bomber/internal/ballistics"
	"github.com/Faultbox/balloon-bomber/internal/balloon"
	"github.com/Faultbox/balloon-bomber/internal/config"
	"github.com/Faultbox/balloon-bomber/internal/logger"
	"github.com/Faultbox/balloon-bomber/internal/targets"
	"github.com/Faultbox/balloon-bomber/internal/terrain"
	"github.com/Faultbox/balloon-bomber/pkg/math"
)

// HitFunc is called once for every target destroyed. remaining counts the
// targets left standing after that hit.
type HitFunc func(index, remaining int)

// Simulation is the complete game state.
type Simulation struct {
	rng terrain.Rand
	log *zap.Logger

	field   *terrain.HeightField
	normals *terrain.NormalField
	mesh    *terrain.Mesh

	balloon *balloon.Balloon
	targets *targets.System
	bomb    *ballistics.Bomb

	tick    uint64
	allDown bool

	onHit     []HitFunc
	onAllDown []func()
}

// New synthesizes the terrain and places the balloon and targets.
// rng drives every random choice, so equal seeds give equal games.
func New(cfg *config.Config, rng terrain.Rand) (*Simulation, error) {
	log := logger.Named("sim")

	field, normals, err := terrain.Generate(terrain.Params{
		Resolution: cfg.Terrain.Resolution,
		SideWidth:  cfg.Terrain.SideWidth,
		OriginX:    cfg.Terrain.OriginX,
		OriginZ:    cfg.Terrain.OriginZ,
		BlobCount:  cfg.Terrain.BlobCount,
	}, rng)
	if err != nil {
		return nil, fmt.Errorf("synthesizing terrain: %w", err)
	}
	log.Info("terrain synthesized",
		zap.Int("resolution", field.Resolution()),
		zap.Int("blobs", len(field.Blobs())),
		zap.Float32("maxHeight", field.MaxHeight()),
	)

	s := &Simulation{
		rng:     rng,
		log:     log,
		field:   field,
		normals: normals,
		mesh:    terrain.BuildMesh(field, normals),
		balloon: balloon.New(balloon.Config{
			Altitude:   cfg.Balloon.Altitude,
			BasketDrop: cfg.Balloon.BasketDrop,
			Step:       cfg.Balloon.Step,
		}, field.MaxHeight()),
		targets: targets.NewSystem(targets.Config{
			Size:           cfg.Targets.Size,
			InitialWaitMax: cfg.Targets.InitialWaitMax,
			RewaitMax:      cfg.Targets.RewaitMax,
			BobStep:        cfg.Targets.BobStep,
			BobHeightMax:   cfg.Targets.BobHeightMax,
		}, rng),
		bomb: ballistics.New(ballistics.Config{
			FallStep:    cfg.Bomb.FallStep,
			CatchRadius: cfg.Bomb.CatchRadius,
			HitRadius:   cfg.Bomb.HitRadius,
			Radius:      cfg.Bomb.Radius,
		}),
	}

	s.targets.Place(cfg.Targets.Count, field)
	s.targets.SetViewTargets(cfg.Simulation.ViewTargets)
	log.Info("targets placed", zap.Int("count", cfg.Targets.Count))

	return s, nil
}

// OnTargetHit registers fn to run whenever a target is destroyed.
func (s *Simulation) OnTargetHit(fn HitFunc) {
	s.onHit = append(s.onHit, fn)
}

// OnAllTargetsDown registers fn to run once, when the last target is destroyed.
func (s *Simulation) OnAllTargetsDown(fn func()) {
	s.onAllDown = append(s.onAllDown, fn)
}

// OnTick advances the simulation by one step. Targets move first so the bomb
// collides with this tick's target positions.
func (s *Simulation) OnTick() {
	s.tick++
	s.targets.Tick()

	res := s.bomb.Tick(s.targets)
	if res.Expired {
		s.log.Debug("bomb expired", zap.Uint64("tick", s.tick))
	}

	// Hits are reported in order, each with the count left after it.
	remaining := s.targets.Remaining() + len(res.Hits)
	for _, i := range res.Hits {
		remaining--
		s.log.Info("target hit",
			zap.Int("target", i),
			zap.Int("remaining", remaining),
			logger.Vec3("position", s.targets.At(i).Position),
		)
		for _, fn := range s.onHit {
			fn(i, remaining)
		}
	}

	if res.AllDown && !s.allDown {
		s.allDown = true
		s.log.Info("all targets down", zap.Uint64("tick", s.tick))
		for _, fn := range s.onAllDown {
			fn()
		}
	}
}

// OnDrop releases a bomb at origin. It returns false, changing nothing,
// while a bomb is already falling.
func (s *Simulation) OnDrop(origin math.Vec3) bool {
	if !s.bomb.Drop(origin, s.targets) {
		return false
	}
	s.log.Debug("bomb dropped",
		logger.Vec3("origin", origin),
		zap.Ints("candidates", s.bomb.Candidates()),
	)
	return true
}

// DropFromBalloon releases a bomb from under the balloon basket.
func (s *Simulation) DropFromBalloon() bool {
	return s.OnDrop(s.balloon.DropOrigin())
}

// TargetsRemaining returns the number of targets not yet hit.
func (s *Simulation) TargetsRemaining() int {
	return s.targets.Remaining()
}

// AllTargetsDown reports whether the last target has been destroyed.
func (s *Simulation) AllTargetsDown() bool {
	return s.allDown
}

// RandomVertex returns a random interior terrain vertex.
func (s *Simulation) RandomVertex() math.Vec3 {
	return s.field.RandomVertex(s.rng)
}

// ForEachBlob calls fn for every terrain blob in insertion order.
func (s *Simulation) ForEachBlob(fn func(position math.Vec3, height, width float32)) {
	s.field.ForEachBlob(fn)
}

// MaxHeight returns the highest terrain elevation.
func (s *Simulation) MaxHeight() float32 {
	return s.field.MaxHeight()
}

// Ticks returns the number of ticks applied so far.
func (s *Simulation) Ticks() uint64 {
	return s.tick
}

// Balloon returns the bomber platform.
func (s *Simulation) Balloon() *balloon.Balloon {
	return s.balloon
}

// Targets returns the target system.
func (s *Simulation) Targets() *targets.System {
	return s.targets
}

// Bomb returns the projectile.
func (s *Simulation) Bomb() *ballistics.Bomb {
	return s.bomb
}

// HeightField returns the synthesized terrain.
func (s *Simulation) HeightField() *terrain.HeightField {
	return s.field
}

// NormalField returns the terrain normals.
func (s *Simulation) NormalField() *terrain.NormalField {
	return s.normals
}

// ToggleViewTargets freezes or resumes target animation.
func (s *Simulation) ToggleViewTargets() bool {
	on := s.targets.ToggleViewTargets()
	s.log.Debug("view targets", zap.Bool("on", on))
	return on
}
