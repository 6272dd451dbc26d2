package terrain

// Params describes a terrain to generate.
type Params struct {
	Resolution int     // Quads per side
	SideWidth  float32 // World units per side
	OriginX    float32
	OriginZ    float32
	BlobCount  int
}

// Generate lays out a flat lattice, scatters BlobCount random blobs over its
// interior vertices, synthesizes the heights and computes the normals.
// Blobs are placed before any height is applied, so every blob sits at Y = 0.
func Generate(p Params, rng Rand) (*HeightField, *NormalField, error) {
	h, err := NewHeightField(p.Resolution)
	if err != nil {
		return nil, nil, err
	}
	h.LayOutFlat(p.OriginX, p.OriginZ, p.SideWidth)

	for range p.BlobCount {
		h.AddBlob(RandomBlob(rng, h.RandomVertex(rng)))
	}
	h.Synthesize()

	n := NewNormalField(p.Resolution)
	n.Recompute(h)
	return h, n, nil
}
