package geometry

import (
	"math"
	"testing"

	"github.com/Faultbox/blossom/pkg/vmath"
)

func TestSweepStraightCylinder(t *testing.T) {
	profile := []vmath.Vec2{{X: 1, Y: 0}, {X: 1, Y: 1}}
	curve := []vmath.Vec3{
		{Y: 0},
		{Y: 1},
		{Y: 2},
	}

	mesh, err := Sweep(profile, curve, 8, white)
	if err != nil {
		t.Fatalf("Sweep() error: %v", err)
	}

	// 3 curve points x 2 profile points x 8 segments
	if mesh.VertexCount() != 48 {
		t.Errorf("VertexCount() = %d, want 48", mesh.VertexCount())
	}
	if mesh.TriangleCount() == 0 {
		t.Errorf("swept mesh has no triangles")
	}
}

func TestSweepNormalsRadial(t *testing.T) {
	profile := []vmath.Vec2{{X: 1, Y: 0}, {X: 1, Y: 1}}
	curve := []vmath.Vec3{{Y: 0}, {Y: 1}}

	mesh, err := Sweep(profile, curve, 8, white)
	if err != nil {
		t.Fatalf("Sweep() error: %v", err)
	}

	for i, normal := range mesh.Normals {
		radial := math.Sqrt(float64(normal.X*normal.X + normal.Z*normal.Z))
		if radial < 0.9 {
			t.Errorf("normal %d should point radially outward, got %v", i, normal)
		}
		l := normal.Length()
		if math.Abs(float64(l-1)) > 0.01 {
			t.Errorf("normal %d length = %v, want 1", i, l)
		}
	}
}

func TestSweepCurvedPathFinite(t *testing.T) {
	profile := []vmath.Vec2{{X: 0.1, Y: 0}, {X: 0.1, Y: 1}}
	curve := []vmath.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 0.1, Y: 0.5, Z: 0},
		{X: 0.2, Y: 1.0, Z: 0.1},
		{X: 0.3, Y: 1.5, Z: 0.3},
	}

	mesh, err := Sweep(profile, curve, 12, white)
	if err != nil {
		t.Fatalf("Sweep() error: %v", err)
	}

	for i, pos := range mesh.Positions {
		if math.IsNaN(float64(pos.X)) || math.IsNaN(float64(pos.Y)) || math.IsNaN(float64(pos.Z)) {
			t.Errorf("position %d is NaN: %v", i, pos)
		}
	}
}

func TestSweepIndexBounds(t *testing.T) {
	profile := []vmath.Vec2{{X: 0.5, Y: 0}, {X: 0.3, Y: 1}}
	curve := []vmath.Vec3{{Y: 0}, {X: 0.2, Y: 1}, {X: 0.5, Y: 2}}

	mesh, err := Sweep(profile, curve, 6, white)
	if err != nil {
		t.Fatalf("Sweep() error: %v", err)
	}

	for _, idx := range mesh.Indices {
		if int(idx) >= mesh.VertexCount() {
			t.Errorf("index %d out of range (%d vertices)", idx, mesh.VertexCount())
		}
	}
}

func TestSweepErrors(t *testing.T) {
	curve := []vmath.Vec3{{Y: 0}, {Y: 1}}
	profile := []vmath.Vec2{{X: 1, Y: 0}}

	if _, err := Sweep(nil, curve, 8, white); err == nil {
		t.Errorf("Sweep() with empty profile should fail")
	}
	if _, err := Sweep(profile, curve[:1], 8, white); err == nil {
		t.Errorf("Sweep() with 1-point curve should fail")
	}
	if _, err := Sweep(profile, curve, 2, white); err == nil {
		t.Errorf("Sweep() with 2 segments should fail")
	}
}

func TestCurveTangentsStraightLine(t *testing.T) {
	curve := []vmath.Vec3{{Y: 0}, {Y: 1}, {Y: 2}}
	tangents := curveTangents(curve)

	if len(tangents) != len(curve) {
		t.Fatalf("len(tangents) = %d, want %d", len(tangents), len(curve))
	}
	for i, tangent := range tangents {
		if tangent.Y < 0.9 {
			t.Errorf("tangent %d should point in +Y, got %v", i, tangent)
		}
	}
}

func TestOrthonormalFrame(t *testing.T) {
	tangent := vmath.Vec3{Y: 1}
	right, up := orthonormalFrame(tangent)

	if math.Abs(float64(right.Dot(tangent))) > 1e-5 {
		t.Errorf("right not perpendicular to tangent")
	}
	if math.Abs(float64(up.Dot(tangent))) > 1e-5 {
		t.Errorf("up not perpendicular to tangent")
	}
	if math.Abs(float64(right.Dot(up))) > 1e-5 {
		t.Errorf("right not perpendicular to up")
	}
	if math.Abs(float64(right.Length()-1)) > 1e-5 || math.Abs(float64(up.Length()-1)) > 1e-5 {
		t.Errorf("frame vectors not unit length")
	}
}
