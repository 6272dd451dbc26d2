// Package balloon models the hot-air balloon that carries and releases bombs.
package balloon

import (
	"github.com/Faultbox/balloon-bomber/pkg/math"
)

// Config holds balloon placement and movement parameters.
type Config struct {
	Altitude   float32 // Height of the envelope center above the highest terrain point
	BasketDrop float32 // Distance from envelope center down to the basket floor
	Step       float32 // Horizontal distance moved per nudge
}

// DefaultConfig returns the standard balloon parameters.
func DefaultConfig() Config {
	return Config{
		Altitude:   10,
		BasketDrop: 6.25,
		Step:       0.125,
	}
}

// Direction is a horizontal nudge direction.
type Direction uint8

const (
	North Direction = iota // -Z
	South                  // +Z
	West                   // -X
	East                   // +X
)

// Balloon floats at a fixed altitude and moves on the XZ plane.
type Balloon struct {
	cfg      Config
	position math.Vec3
}

// New places a balloon above the origin, clear of the highest terrain point.
func New(cfg Config, maxTerrainHeight float32) *Balloon {
	return &Balloon{
		cfg:      cfg,
		position: math.Vec3{X: 0, Y: maxTerrainHeight + cfg.Altitude, Z: 0},
	}
}

// Position returns the envelope center.
func (b *Balloon) Position() math.Vec3 {
	return b.position
}

// BaseHeight returns the height of the basket floor.
func (b *Balloon) BaseHeight() float32 {
	return b.position.Y - b.cfg.BasketDrop
}

// DropOrigin returns the point below the basket where bombs are released.
func (b *Balloon) DropOrigin() math.Vec3 {
	return b.position.WithY(b.BaseHeight())
}

// Nudge moves the balloon one step in dir.
func (b *Balloon) Nudge(dir Direction) {
	switch dir {
	case North:
		b.position.Z -= b.cfg.Step
	case South:
		b.position.Z += b.cfg.Step
	case West:
		b.position.X -= b.cfg.Step
	case East:
		b.position.X += b.cfg.Step
	}
}

// StepToward nudges the balloon at most one step per axis toward (x, z) and
// reports whether it is now within one step of the point on both axes.
func (b *Balloon) StepToward(x, z float32) bool {
	dx := x - b.position.X
	dz := z - b.position.Z
	if dx >= b.cfg.Step {
		b.Nudge(East)
	} else if dx <= -b.cfg.Step {
		b.Nudge(West)
	}
	if dz >= b.cfg.Step {
		b.Nudge(South)
	} else if dz <= -b.cfg.Step {
		b.Nudge(North)
	}
	return math.Abs(x-b.position.X) < b.cfg.Step && math.Abs(z-b.position.Z) < b.cfg.Step
}
