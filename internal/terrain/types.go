// Package terrain synthesizes blob-sculpted heightfields and their lighting normals.
package terrain

import (
	"errors"

	"github.com/Faultbox/balloon-bomber/pkg/math"
)

// Terrain errors.
var (
	ErrInvalidResolution = errors.New("terrain resolution must be at least 2")
)

// Rand is the random source used for vertex and blob selection.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Blob is a radial height contribution with exponential falloff.
type Blob struct {
	Position math.Vec3
	Height   float32 // Peak amplitude
	Width    float32 // Falloff coefficient (larger is narrower)
}

// Quad holds four vertex indices in winding order:
// (row,col), (row,col+1), (row+1,col+1), (row+1,col).
type Quad [4]int

// Vertex is an interleaved render vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds terrain buffers ready for upload by a renderer.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32 // Two triangles per quad
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}
