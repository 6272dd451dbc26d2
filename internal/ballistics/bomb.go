// Package ballistics drops a single bomb and resolves its collisions with targets.
package ballistics

import (
	"github.com/Faultbox/balloon-bomber/internal/targets"
	"github.com/Faultbox/balloon-bomber/pkg/math"
)

// Config holds bomb parameters.
type Config struct {
	FallStep    float32 // Descent per tick
	CatchRadius float32 // Horizontal half-extent of the broad-phase box
	HitRadius   float32 // Per-axis half-extent of the narrow-phase box
	Radius      float32 // Drawn sphere radius
}

// DefaultConfig returns the standard bomb parameters.
func DefaultConfig() Config {
	return Config{
		FallStep:    0.1,
		CatchRadius: 1.0,
		HitRadius:   1.0,
		Radius:      0.5,
	}
}

// Field is the target population a bomb collides with.
type Field interface {
	Len() int
	At(i int) *targets.Target
	MarkHit(i int) bool
	Remaining() int
}

// Result describes what happened during one bomb tick.
type Result struct {
	Hits    []int // Target indices destroyed this tick
	Expired bool  // Bomb reached the ground and deactivated
	AllDown bool  // The last remaining target was destroyed this tick
}

// Bomb is the single in-flight projectile.
type Bomb struct {
	cfg        Config
	position   math.Vec3
	active     bool
	candidates []int
}

// New creates an inactive bomb.
func New(cfg Config) *Bomb {
	return &Bomb{cfg: cfg}
}

// Active reports whether a bomb is in flight.
func (b *Bomb) Active() bool {
	return b.active
}

// Position returns the bomb position and whether it is valid.
func (b *Bomb) Position() (math.Vec3, bool) {
	return b.position, b.active
}

// Radius returns the drawn sphere radius.
func (b *Bomb) Radius() float32 {
	return b.cfg.Radius
}

// Candidates returns the target indices selected when the bomb was dropped.
func (b *Bomb) Candidates() []int {
	return b.candidates
}

// Drop releases a bomb at origin. It does nothing and returns false while
// another bomb is in flight.
//
// Targets that are not hit and lie within CatchRadius horizontally are
// remembered for collision tests; targets elsewhere are never tested during
// this drop.
func (b *Bomb) Drop(origin math.Vec3, field Field) bool {
	if b.active {
		return false
	}
	b.active = true
	b.position = origin
	b.candidates = b.candidates[:0]

	for i := range field.Len() {
		t := field.At(i)
		if t.Hit {
			continue
		}
		if t.Position.XZ().Sub(origin.XZ()).WithinBox(b.cfg.CatchRadius) {
			b.candidates = append(b.candidates, i)
		}
	}
	return true
}

// Tick lowers the bomb by one step and tests it against the candidates.
func (b *Bomb) Tick(field Field) Result {
	var res Result
	if !b.active {
		return res
	}

	if b.position.Y <= 0 {
		b.deactivate()
		res.Expired = true
		return res
	}

	b.position.Y -= b.cfg.FallStep
	if len(b.candidates) > 0 {
		res.Hits = b.collide(field)
		res.AllDown = len(res.Hits) > 0 && field.Remaining() == 0
	}
	return res
}

// collide marks every candidate touching the bomb as hit. Any hit ends the
// drop by grounding the bomb, which deactivates it on the next tick.
func (b *Bomb) collide(field Field) []int {
	var hits []int
	r := b.cfg.HitRadius

	for _, i := range b.candidates {
		t := field.At(i)
		if t.Hit || !t.AboveGround() {
			continue
		}
		d := t.Position.Sub(b.position)
		if math.Abs(d.X) < r && math.Abs(d.Y) < r && math.Abs(d.Z) < r {
			if field.MarkHit(i) {
				hits = append(hits, i)
			}
		}
	}

	if len(hits) > 0 {
		b.candidates = b.candidates[:0]
		b.position.Y = 0
	}
	return hits
}

func (b *Bomb) deactivate() {
	b.active = false
	b.candidates = b.candidates[:0]
}
