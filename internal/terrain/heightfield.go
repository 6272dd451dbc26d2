package terrain

import (
	gomath "math"

	"github.com/Faultbox/balloon-bomber/pkg/math"
)

// HeightField is a square vertex lattice whose Y values are sculpted by blobs.
// Vertices are stored row-major in a flat slice of (resolution+1)² entries.
type HeightField struct {
	resolution int
	vertices   []math.Vec3
	quads      []Quad
	blobs      []Blob
	maxHeight  float32
}

// NewHeightField allocates a (resolution+1)² vertex grid and a resolution² quad grid.
// The lattice is flat at the origin until LayOutFlat is called.
func NewHeightField(resolution int) (*HeightField, error) {
	if resolution < 2 {
		return nil, ErrInvalidResolution
	}
	side := resolution + 1
	return &HeightField{
		resolution: resolution,
		vertices:   make([]math.Vec3, side*side),
		quads:      make([]Quad, resolution*resolution),
	}, nil
}

// Resolution returns the number of quads along one side.
func (h *HeightField) Resolution() int {
	return h.resolution
}

// Index converts a (row, col) vertex coordinate to a flat index.
func (h *HeightField) Index(row, col int) int {
	return row*(h.resolution+1) + col
}

// LayOutFlat places vertices on a uniform lattice spanning sideWidth centered on
// (originX, originZ) with Y = 0, and rebuilds the quad index grid.
func (h *HeightField) LayOutFlat(originX, originZ, sideWidth float32) {
	cornerX := originX - sideWidth/2
	cornerZ := originZ - sideWidth/2
	delta := sideWidth / float32(h.resolution)

	for row := 0; row <= h.resolution; row++ {
		z := cornerZ + float32(row)*delta
		for col := 0; col <= h.resolution; col++ {
			h.vertices[h.Index(row, col)] = math.Vec3{X: cornerX + float32(col)*delta, Y: 0, Z: z}
		}
	}

	for i := range h.quads {
		row := i / h.resolution
		col := i % h.resolution
		h.quads[i] = Quad{
			h.Index(row, col),
			h.Index(row, col+1),
			h.Index(row+1, col+1),
			h.Index(row+1, col),
		}
	}
	h.maxHeight = 0
}

// AddBlob appends a blob. Blobs are applied by the next Synthesize call.
func (h *HeightField) AddBlob(b Blob) {
	h.blobs = append(h.blobs, b)
}

// Blobs returns the blobs in insertion order.
func (h *HeightField) Blobs() []Blob {
	return h.blobs
}

// ForEachBlob calls fn for every blob in insertion order.
func (h *HeightField) ForEachBlob(fn func(position math.Vec3, height, width float32)) {
	for _, b := range h.blobs {
		fn(b.Position, b.Height, b.Width)
	}
}

// Reset flattens every vertex back to Y = 0.
func (h *HeightField) Reset() {
	for i := range h.vertices {
		h.vertices[i].Y = 0
	}
	h.maxHeight = 0
}

// Synthesize adds every blob's contribution to every vertex and returns the
// highest elevation seen.
//
// Each blob term is evaluated against the elevation accumulated so far for that
// vertex, so the blob order influences the result. The first term of a vertex
// sees its Y before synthesis.
func (h *HeightField) Synthesize() float32 {
	for i := range h.vertices {
		v := &h.vertices[i]
		y := v.Y
		for _, b := range h.blobs {
			d2 := math.Vec3{X: v.X, Y: y, Z: v.Z}.DistanceSquared(b.Position)
			y += float32(float64(b.Height) * gomath.Exp(-float64(b.Width)*float64(d2)))
		}
		v.Y = y
		if y > h.maxHeight {
			h.maxHeight = y
		}
	}
	return h.maxHeight
}

// MaxHeight returns the highest elevation computed by the last Synthesize.
func (h *HeightField) MaxHeight() float32 {
	return h.maxHeight
}

// Vertices returns the flat vertex grid. Callers must not resize it.
func (h *HeightField) Vertices() []math.Vec3 {
	return h.vertices
}

// Vertex returns the vertex at (row, col).
func (h *HeightField) Vertex(row, col int) math.Vec3 {
	return h.vertices[h.Index(row, col)]
}

// Quads returns the quad index grid.
func (h *HeightField) Quads() []Quad {
	return h.quads
}

// RandomVertex returns a uniformly chosen interior vertex, never one on the border.
func (h *HeightField) RandomVertex(rng Rand) math.Vec3 {
	row := rng.IntN(h.resolution-1) + 1
	col := rng.IntN(h.resolution-1) + 1
	return h.Vertex(row, col)
}

// RandomBlob builds a blob at pos with height in [2, 9] and a width that
// narrows as the blob gets taller.
func RandomBlob(rng Rand, pos math.Vec3) Blob {
	height := float32(rng.IntN(8)) + 2
	width := (float32(rng.IntN(20))/100 + 0.001) / (height / 3)
	return Blob{Position: pos, Height: height, Width: width}
}
