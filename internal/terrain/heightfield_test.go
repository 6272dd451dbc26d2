package terrain

import (
	"errors"
	gomath "math"
	"math/rand/v2"
	"testing"

	"github.com/Faultbox/balloon-bomber/pkg/math"
)

func newFlatField(t *testing.T, resolution int, side float32) *HeightField {
	t.Helper()
	h, err := NewHeightField(resolution)
	if err != nil {
		t.Fatalf("NewHeightField(%d) error: %v", resolution, err)
	}
	h.LayOutFlat(0, 0, side)
	return h
}

func TestNewHeightFieldSizes(t *testing.T) {
	for _, res := range []int{2, 3, 8, 64} {
		h := newFlatField(t, res, float32(res))

		if got, want := len(h.Vertices()), (res+1)*(res+1); got != want {
			t.Errorf("res %d: len(Vertices()) = %d, want %d", res, got, want)
		}
		if got, want := len(h.Quads()), res*res; got != want {
			t.Errorf("res %d: len(Quads()) = %d, want %d", res, got, want)
		}

		for i, q := range h.Quads() {
			for _, idx := range q {
				if idx < 0 || idx >= len(h.Vertices()) {
					t.Fatalf("res %d: quad %d has out-of-range index %d", res, i, idx)
				}
			}
			row, col := i/res, i%res
			want := Quad{h.Index(row, col), h.Index(row, col+1), h.Index(row+1, col+1), h.Index(row+1, col)}
			if q != want {
				t.Errorf("res %d: quad %d = %v, want %v", res, i, q, want)
			}
		}
	}
}

func TestNewHeightFieldInvalid(t *testing.T) {
	for _, res := range []int{-1, 0, 1} {
		_, err := NewHeightField(res)
		if !errors.Is(err, ErrInvalidResolution) {
			t.Errorf("NewHeightField(%d) error = %v, want ErrInvalidResolution", res, err)
		}
	}
}

func TestLayOutFlat(t *testing.T) {
	h, err := NewHeightField(4)
	if err != nil {
		t.Fatal(err)
	}
	h.LayOutFlat(10, -2, 8)

	tests := []struct {
		row, col int
		want     math.Vec3
	}{
		{0, 0, math.Vec3{X: 6, Y: 0, Z: -6}},
		{0, 4, math.Vec3{X: 14, Y: 0, Z: -6}},
		{4, 0, math.Vec3{X: 6, Y: 0, Z: 2}},
		{2, 2, math.Vec3{X: 10, Y: 0, Z: -2}},
		{4, 4, math.Vec3{X: 14, Y: 0, Z: 2}},
	}
	for _, tt := range tests {
		if got := h.Vertex(tt.row, tt.col); got != tt.want {
			t.Errorf("Vertex(%d,%d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestSynthesizeNoBlobs(t *testing.T) {
	h := newFlatField(t, 16, 16)

	if got := h.Synthesize(); got != 0 {
		t.Errorf("Synthesize() = %v, want 0", got)
	}
	if got := h.MaxHeight(); got != 0 {
		t.Errorf("MaxHeight() = %v, want 0", got)
	}
	for i, v := range h.Vertices() {
		if v.Y != 0 {
			t.Fatalf("vertex %d Y = %v, want 0", i, v.Y)
		}
	}
}

func TestSynthesizeSingleBlobAtCenter(t *testing.T) {
	const res = 8
	h := newFlatField(t, res, res)
	center := h.Vertex(res/2, res/2)
	h.AddBlob(Blob{Position: center, Height: 5, Width: 0.1})

	maxHeight := h.Synthesize()

	if got := h.Vertex(res/2, res/2).Y; got != 5 {
		t.Errorf("center Y = %v, want 5", got)
	}
	if maxHeight != 5 {
		t.Errorf("Synthesize() = %v, want 5", maxHeight)
	}

	prev := h.Vertex(res/2, res/2).Y
	for col := res/2 + 1; col <= res; col++ {
		y := h.Vertex(res/2, col).Y
		if y >= prev {
			t.Errorf("Y at col %d = %v, want < %v", col, y, prev)
		}
		prev = y
	}
}

func TestSynthesizeUsesAccumulatedHeight(t *testing.T) {
	h := newFlatField(t, 4, 4)
	pos := h.Vertex(2, 2)
	h.AddBlob(Blob{Position: pos, Height: 2, Width: 0.5})
	h.AddBlob(Blob{Position: pos, Height: 3, Width: 0.25})
	h.Synthesize()

	// Second term sees the vertex already raised by the first blob.
	want := 2 + 3*gomath.Exp(-0.25*4)
	got := float64(h.Vertex(2, 2).Y)
	if gomath.Abs(got-want) > 1e-5 {
		t.Errorf("Y = %v, want %v", got, want)
	}
}

func TestSynthesizeAccumulatesAcrossCalls(t *testing.T) {
	h := newFlatField(t, 4, 4)
	h.AddBlob(Blob{Position: h.Vertex(2, 2), Height: 1, Width: 0.1})
	h.Synthesize()
	first := h.Vertex(2, 2).Y
	h.Synthesize()
	if second := h.Vertex(2, 2).Y; second <= first {
		t.Errorf("second Synthesize() Y = %v, want > %v", second, first)
	}

	h.Reset()
	if h.Vertex(2, 2).Y != 0 || h.MaxHeight() != 0 {
		t.Errorf("Reset() left Y = %v, max = %v", h.Vertex(2, 2).Y, h.MaxHeight())
	}
}

func TestSynthesizeMaxHeight(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	h := newFlatField(t, 32, 32)
	for range 20 {
		h.AddBlob(RandomBlob(rng, h.RandomVertex(rng)))
	}
	got := h.Synthesize()

	var want float32
	for _, v := range h.Vertices() {
		if v.Y > want {
			want = v.Y
		}
	}
	if got != want {
		t.Errorf("Synthesize() = %v, want %v", got, want)
	}
}

func TestRandomVertexInterior(t *testing.T) {
	const res = 6
	h := newFlatField(t, res, res)
	rng := rand.New(rand.NewPCG(1, 2))

	half := float32(res) / 2
	for range 500 {
		v := h.RandomVertex(rng)
		if v.X <= -half || v.X >= half || v.Z <= -half || v.Z >= half {
			t.Fatalf("RandomVertex() = %v, on or outside the border", v)
		}
	}
}

func TestRandomBlobRanges(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 500 {
		b := RandomBlob(rng, math.Vec3{})
		if b.Height < 2 || b.Height > 9 {
			t.Fatalf("blob height %v outside [2, 9]", b.Height)
		}
		if b.Width <= 0 {
			t.Fatalf("blob width %v, want > 0", b.Width)
		}
	}
}

func TestForEachBlob(t *testing.T) {
	h := newFlatField(t, 4, 4)
	h.AddBlob(Blob{Position: math.Vec3{X: 1}, Height: 2, Width: 0.5})
	h.AddBlob(Blob{Position: math.Vec3{Z: -1}, Height: 4, Width: 0.25})

	var heights []float32
	h.ForEachBlob(func(pos math.Vec3, height, width float32) {
		heights = append(heights, height)
	})
	if len(heights) != 2 || heights[0] != 2 || heights[1] != 4 {
		t.Errorf("ForEachBlob visited heights %v, want [2 4]", heights)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := Params{Resolution: 16, SideWidth: 16, BlobCount: 5}

	h1, n1, err := Generate(p, rand.New(rand.NewPCG(9, 9)))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	h2, n2, err := Generate(p, rand.New(rand.NewPCG(9, 9)))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if len(h1.Blobs()) != 5 {
		t.Errorf("len(Blobs()) = %d, want 5", len(h1.Blobs()))
	}
	for _, b := range h1.Blobs() {
		if b.Position.Y != 0 {
			t.Errorf("blob at %v, want Y = 0", b.Position)
		}
	}
	if h1.MaxHeight() != h2.MaxHeight() || h1.MaxHeight() <= 0 {
		t.Errorf("MaxHeight() = %v and %v, want equal and positive", h1.MaxHeight(), h2.MaxHeight())
	}
	for i := range h1.Vertices() {
		if h1.Vertices()[i] != h2.Vertices()[i] || n1.Normals()[i] != n2.Normals()[i] {
			t.Fatalf("vertex %d differs between runs with the same seed", i)
		}
	}
}

func TestGenerateInvalidResolution(t *testing.T) {
	_, _, err := Generate(Params{Resolution: 1, SideWidth: 4}, rand.New(rand.NewPCG(1, 1)))
	if !errors.Is(err, ErrInvalidResolution) {
		t.Errorf("Generate() error = %v, want ErrInvalidResolution", err)
	}
}
