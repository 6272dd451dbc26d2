package terrain

// BuildMesh interleaves the current vertex and normal grids into render buffers.
// Each quad becomes two triangles sharing the (row,col)-(row+1,col+1) diagonal.
func BuildMesh(h *HeightField, n *NormalField) *Mesh {
	side := h.resolution + 1
	vertices := make([]Vertex, 0, side*side)

	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}

	for row := 0; row <= h.resolution; row++ {
		for col := 0; col <= h.resolution; col++ {
			p := h.Vertex(row, col).Array()
			updateBounds(&bounds, p)

			// Texture repeats once per quad, mirrored on alternate quads
			vertices = append(vertices, Vertex{
				Position: p,
				Normal:   n.Normal(row, col).Array(),
				TexCoord: [2]float32{float32(row % 2), float32(col % 2)},
			})
		}
	}

	indices := make([]uint32, 0, len(h.quads)*6)
	for _, q := range h.quads {
		indices = append(indices,
			uint32(q[0]), uint32(q[1]), uint32(q[2]),
			uint32(q[0]), uint32(q[2]), uint32(q[3]),
		)
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Bounds:   bounds,
	}
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := range 3 {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
