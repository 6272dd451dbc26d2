// Package targets animates the bobbing targets planted on the terrain.
package targets

import (
	"github.com/Faultbox/balloon-bomber/pkg/math"
)

// State is the animation state of a target.
type State uint8

const (
	StateWaiting State = iota // Hidden below ground, counting down
	StateMoving               // Bobbing up and back down
	StateHit                  // Destroyed, never ticks again
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateMoving:
		return "moving"
	case StateHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Target is a cube that periodically rises out of the terrain.
type Target struct {
	Position   math.Vec3
	Size       float32 // Cube edge length
	MeshHeight float32 // Resting reference height, fixed at placement

	Hit    bool
	Moving bool

	TicksBeforeMoving int

	// Valid while Moving
	MaxHeight float32 // Bob ceiling above MeshHeight for this cycle
	Delta     float32 // Signed vertical step per tick
}

// State derives the animation state from the target flags.
func (t *Target) State() State {
	switch {
	case t.Hit:
		return StateHit
	case t.Moving:
		return StateMoving
	default:
		return StateWaiting
	}
}

// AboveGround reports whether the target has risen far enough to be hit.
func (t *Target) AboveGround() bool {
	return t.Position.Y > t.MeshHeight-t.Size/2
}

// Floor returns the height at which a descending target stops moving.
func (t *Target) Floor() float32 {
	return t.MeshHeight - t.Size*2
}
