package components

import (
	"math"
	"testing"

	"github.com/Faultbox/blossom/pkg/vmath"
)

func TestDefaultStamen(t *testing.T) {
	mesh, err := DefaultStamenParams().Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if mesh.VertexCount() == 0 {
		t.Fatalf("mesh has no vertices")
	}
	if mesh.TriangleCount() == 0 {
		t.Fatalf("mesh has no triangles")
	}
}

func TestStamenHasFilamentAndAnther(t *testing.T) {
	params := DefaultStamenParams()
	mesh, err := params.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	want := 2*params.Segments + 7*params.Segments
	if mesh.VertexCount() != want {
		t.Errorf("VertexCount() = %d, want %d", mesh.VertexCount(), want)
	}
}

func TestShortStamenHeight(t *testing.T) {
	params := ShortStamenParams()
	mesh, err := params.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	var maxY float32
	for _, p := range mesh.Positions {
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	want := params.FilamentLength + params.AntherLength/2
	if math.Abs(float64(maxY-want)) > 0.3 {
		t.Errorf("max height = %v, want ~%v", maxY, want)
	}
}

func TestStamenAntherEllipsoid(t *testing.T) {
	params := StamenParams{
		FilamentLength: 1.5,
		FilamentRadius: 0.04,
		AntherLength:   0.4,
		AntherWidth:    0.1,
		AntherHeight:   0.06,
		Segments:       12,
		Color:          white,
	}

	mesh, err := params.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	var maxX, maxZ float32
	for _, p := range mesh.Positions {
		if math.Abs(float64(p.Y-params.FilamentLength)) > float64(params.AntherLength) {
			continue
		}
		if x := float32(math.Abs(float64(p.X))); x > maxX {
			maxX = x
		}
		if z := float32(math.Abs(float64(p.Z))); z > maxZ {
			maxZ = z
		}
	}

	if math.Abs(float64(maxX-params.AntherWidth)) > 0.1 {
		t.Errorf("anther extent X = %v, want ~%v", maxX, params.AntherWidth)
	}
	if math.Abs(float64(maxZ-params.AntherHeight)) > 0.1 {
		t.Errorf("anther extent Z = %v, want ~%v", maxZ, params.AntherHeight)
	}
}

func TestCurvedStamen(t *testing.T) {
	params := DefaultStamenParams()
	params.FilamentCurve = []vmath.Vec3{
		{},
		{Y: 0.5},
		{X: 0.2, Y: 1.0, Z: 0.1},
		{X: 0.3, Y: 1.5, Z: 0.3},
	}

	mesh, err := params.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if mesh.TriangleCount() == 0 {
		t.Fatalf("mesh has no triangles")
	}

	// Anther should sit off-axis at the curve end.
	var maxX float32
	for _, p := range mesh.Positions {
		if p.X > maxX {
			maxX = p.X
		}
	}
	if maxX < 0.2 {
		t.Errorf("max X = %v, curved stamen should lean sideways", maxX)
	}
}

func TestCurvedStamenTooFewPoints(t *testing.T) {
	params := DefaultStamenParams()
	params.FilamentCurve = []vmath.Vec3{{}, {Y: 1}}

	if _, err := params.Generate(); err == nil {
		t.Errorf("Generate() with 2 curve points should fail")
	}
}

func TestStamenIndicesInBounds(t *testing.T) {
	mesh, err := SlenderStamenParams().Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	count := uint32(mesh.VertexCount())
	for _, idx := range mesh.Indices {
		if idx >= count {
			t.Fatalf("index %d out of bounds (vertex count %d)", idx, count)
		}
	}
}
