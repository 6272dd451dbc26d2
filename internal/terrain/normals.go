package terrain

import (
	"github.com/Faultbox/balloon-bomber/pkg/math"
)

// NormalField holds one lighting normal per heightfield vertex.
type NormalField struct {
	resolution int
	normals    []math.Vec3
}

// NewNormalField allocates a normal grid matching resolution.
func NewNormalField(resolution int) *NormalField {
	side := resolution + 1
	return &NormalField{
		resolution: resolution,
		normals:    make([]math.Vec3, side*side),
	}
}

// Normals returns the flat normal grid, indexed like HeightField.Vertices.
func (n *NormalField) Normals() []math.Vec3 {
	return n.normals
}

// Normal returns the normal at (row, col).
func (n *NormalField) Normal(row, col int) math.Vec3 {
	return n.normals[row*(n.resolution+1)+col]
}

// faceNormal returns the unit normal of the face spanned by a-v and b-v.
// Parallel edges give the zero vector.
func faceNormal(v, a, b math.Vec3) math.Vec3 {
	return a.Sub(v).Cross(b.Sub(v)).Normalize()
}

// Recompute rebuilds every normal from the current vertex grid.
// Interior vertices average four faces, edge vertices two, corners one.
func (n *NormalField) Recompute(h *HeightField) {
	if h.resolution != n.resolution {
		n.resolution = h.resolution
		side := h.resolution + 1
		n.normals = make([]math.Vec3, side*side)
	}

	res := n.resolution
	at := h.Vertex
	set := func(row, col int, v math.Vec3) {
		n.normals[row*(res+1)+col] = v
	}

	for r := 1; r < res; r++ {
		for c := 1; c < res; c++ {
			v := at(r, c)
			n1 := faceNormal(v, at(r+1, c+1), at(r-1, c))
			n2 := faceNormal(v, at(r+1, c), at(r+1, c+1))
			n3 := faceNormal(v, at(r, c-1), at(r+1, c))
			n4 := faceNormal(v, at(r-1, c), at(r, c-1))
			set(r, c, n1.Add(n2).Add(n3).Add(n4).Normalize())
		}
	}

	for i := 1; i < res; i++ {
		top := at(0, i)
		set(0, i, faceNormal(top, at(1, i), at(0, i+1)).
			Add(faceNormal(top, at(0, i-1), at(1, i))).Normalize())

		bottom := at(res, i)
		set(res, i, faceNormal(bottom, at(res-1, i), at(res, i-1)).
			Add(faceNormal(bottom, at(res, i+1), at(res-1, i))).Normalize())

		left := at(i, 0)
		set(i, 0, faceNormal(left, at(i, 1), at(i-1, 0)).
			Add(faceNormal(left, at(i+1, 0), at(i, 1))).Normalize())

		right := at(i, res)
		set(i, res, faceNormal(right, at(i-1, res), at(i, res-1)).
			Add(faceNormal(right, at(i, res-1), at(i+1, res))).Normalize())
	}

	set(0, 0, faceNormal(at(0, 0), at(1, 0), at(0, 1)))
	set(0, res, faceNormal(at(0, res), at(0, res-1), at(1, res)))
	set(res, 0, faceNormal(at(res, 0), at(res, 1), at(res-1, 0)))
	set(res, res, faceNormal(at(res, res), at(res-1, res), at(res, res-1)))
}
