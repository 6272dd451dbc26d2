package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/balloon-bomber/internal/targets"
	"github.com/Faultbox/balloon-bomber/internal/terrain"
	"github.com/Faultbox/balloon-bomber/pkg/math"
)

// TargetView is a drawable target.
type TargetView struct {
	Index    int
	Position math.Vec3
	Size     float32
	State    targets.State
	Model    mgl32.Mat4 // Unit cube to world
}

// BombView is a drawable bomb.
type BombView struct {
	Position math.Vec3
	Radius   float32
	Model    mgl32.Mat4 // Unit sphere to world
}

// Frame is a snapshot of everything a renderer draws for one frame.
type Frame struct {
	Tick uint64

	// Terrain is built once in New and never modified; it is shared between frames.
	Terrain *terrain.Mesh

	Targets   []TargetView // Visible targets only
	Bomb      *BombView    // Nil while no bomb is falling
	Balloon   math.Vec3
	Remaining int
}

// Frame captures the current state for drawing.
func (s *Simulation) Frame() Frame {
	f := Frame{
		Tick:      s.tick,
		Terrain:   s.mesh,
		Balloon:   s.balloon.Position(),
		Remaining: s.targets.Remaining(),
	}

	for i := range s.targets.Len() {
		if !s.targets.Visible(i) {
			continue
		}
		t := s.targets.At(i)
		f.Targets = append(f.Targets, TargetView{
			Index:    i,
			Position: t.Position,
			Size:     t.Size,
			State:    t.State(),
			Model:    modelMatrix(t.Position, t.Size),
		})
	}

	if pos, ok := s.bomb.Position(); ok {
		r := s.bomb.Radius()
		f.Bomb = &BombView{
			Position: pos,
			Radius:   r,
			Model:    modelMatrix(pos, r*2),
		}
	}
	return f
}

// modelMatrix scales a unit shape centered at the origin and moves it to pos.
func modelMatrix(pos math.Vec3, scale float32) mgl32.Mat4 {
	return mgl32.Translate3D(pos.Mgl().Elem()).Mul4(mgl32.Scale3D(scale, scale, scale))
}
