package math

import (
	"testing"
)

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2WithinBox(t *testing.T) {
	tests := []struct {
		v    Vec2
		want bool
	}{
		{Vec2{0, 0}, true},
		{Vec2{0.99, -0.99}, true},
		{Vec2{1, 0}, false},
		{Vec2{0, -1}, false},
		{Vec2{-2, 0.5}, false},
	}
	for _, tt := range tests {
		if got := tt.v.WithinBox(1); got != tt.want {
			t.Errorf("%v.WithinBox(1) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3CrossParallel(t *testing.T) {
	a := Vec3{1, 2, 3}
	got := a.Cross(Vec3{2, 4, 6})
	if !got.IsZero() {
		t.Errorf("Vec3.Cross() of parallel vectors = %v, want zero", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	got := Vec3{}.Normalize()
	if got != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero vector", got)
	}
}

func TestVec3DistanceSquared(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 6, 3}
	if got := a.DistanceSquared(b); got != 25 {
		t.Errorf("DistanceSquared() = %v, want 25", got)
	}
}

func TestVec3Mgl(t *testing.T) {
	v := Vec3{1, -2, 3}
	m := v.Mgl()
	if m.X() != 1 || m.Y() != -2 || m.Z() != 3 {
		t.Errorf("Mgl() = %v, want [1 -2 3]", m)
	}
}
