package components

import (
	"math"
	"testing"
)

func TestPetalControlGridShape(t *testing.T) {
	grid := petalControlGrid(DefaultPetalParams())

	if len(grid) != petalGridRows {
		t.Fatalf("len(grid) = %d, want %d", len(grid), petalGridRows)
	}
	for i, row := range grid {
		if len(row) != petalGridCols {
			t.Fatalf("len(grid[%d]) = %d, want %d", i, len(row), petalGridCols)
		}
	}

	// Flat in the XY plane.
	for _, row := range grid {
		for _, p := range row {
			if math.Abs(float64(p.Z)) > 1e-4 {
				t.Errorf("control point Z = %v, want 0", p.Z)
			}
		}
	}
}

func TestPetalControlGridSpansLength(t *testing.T) {
	params := DefaultPetalParams()
	params.Length = 5.0
	grid := petalControlGrid(params)

	for _, p := range grid[0] {
		if math.Abs(float64(p.Y)) > 0.01 {
			t.Errorf("base row Y = %v, want 0", p.Y)
		}
	}
	for _, p := range grid[petalGridRows-1] {
		if math.Abs(float64(p.Y-params.Length)) > 0.01 {
			t.Errorf("tip row Y = %v, want %v", p.Y, params.Length)
		}
	}
}

func TestPetalControlGridWidthVariation(t *testing.T) {
	params := PetalParams{
		Length:       3.0,
		Width:        2.0,
		TipSharpness: 0.7,
		BaseWidth:    0.4,
		Resolution:   16,
		Color:        white,
	}
	grid := petalControlGrid(params)

	baseWidth := grid[0][4].X - grid[0][0].X
	middleWidth := grid[4][4].X - grid[4][0].X
	tipWidth := grid[8][4].X - grid[8][0].X

	if middleWidth <= baseWidth {
		t.Errorf("middle width %v should exceed base width %v", middleWidth, baseWidth)
	}
	if tipWidth >= middleWidth {
		t.Errorf("tip width %v should be below middle width %v", tipWidth, middleWidth)
	}
}

func TestPetalControlGridSymmetric(t *testing.T) {
	grid := petalControlGrid(DefaultPetalParams())

	for i, row := range grid {
		if math.Abs(float64(row[0].X+row[4].X)) > 0.01 {
			t.Errorf("row %d edges not symmetric: %v, %v", i, row[0].X, row[4].X)
		}
		if math.Abs(float64(row[2].X)) > 0.01 {
			t.Errorf("row %d center X = %v, want 0", i, row[2].X)
		}
	}
}

func TestApplyCurlDirection(t *testing.T) {
	grid := petalControlGrid(DefaultPetalParams())
	applyCurl(grid, 0.5)

	for _, p := range grid[0] {
		if math.Abs(float64(p.Z)) > 0.1 {
			t.Errorf("base should stay flat, Z = %v", p.Z)
		}
	}
	for _, p := range grid[petalGridRows-1] {
		if p.Z <= 0 {
			t.Errorf("tip should curl toward +Z, Z = %v", p.Z)
		}
	}

	down := petalControlGrid(DefaultPetalParams())
	applyCurl(down, -0.5)
	for _, p := range down[petalGridRows-1] {
		if p.Z >= 0 {
			t.Errorf("tip should curl toward -Z, Z = %v", p.Z)
		}
	}
}

func TestApplyTwistDisplacesTip(t *testing.T) {
	grid := petalControlGrid(DefaultPetalParams())
	baseLeftX := grid[0][0].X

	applyTwist(grid, 45)

	if math.Abs(float64(grid[0][0].X-baseLeftX)) > 0.1 {
		t.Errorf("base moved under twist: %v -> %v", baseLeftX, grid[0][0].X)
	}

	var tipHasZ bool
	for _, p := range grid[petalGridRows-1] {
		if math.Abs(float64(p.Z)) > 0.1 {
			tipHasZ = true
		}
	}
	if !tipHasZ {
		t.Errorf("tip should gain Z displacement from twist")
	}
}

func TestApplyLateralCurveBendsSideways(t *testing.T) {
	grid := petalControlGrid(DefaultPetalParams())
	applyLateralCurve(grid, 0.5)

	var centerSum float32
	for _, row := range grid {
		centerSum += row[2].X
	}
	if math.Abs(float64(centerSum)) < 0.01 {
		t.Errorf("centerline should bend off axis, sum X = %v", centerSum)
	}
}

func TestApplyRuffleLeavesCenterAlone(t *testing.T) {
	grid := petalControlGrid(DefaultPetalParams())
	applyRuffle(grid, 3.0, 0.2)

	for i, row := range grid {
		if math.Abs(float64(row[2].Z)) > 0.1 {
			t.Errorf("row %d center Z = %v, want ~0", i, row[2].Z)
		}
	}

	var edgesMoved bool
	for _, row := range grid {
		if math.Abs(float64(row[0].Z)) > 0.05 || math.Abs(float64(row[4].Z)) > 0.05 {
			edgesMoved = true
		}
	}
	if !edgesMoved {
		t.Errorf("edges should gain Z displacement from ruffle")
	}
}

func TestPetalMeshTopology(t *testing.T) {
	params := DefaultPetalParams()
	mesh, err := params.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	// Front and back faces double both counts.
	res := params.Resolution
	wantVertices := (res + 1) * (res + 1) * 2
	if mesh.VertexCount() != wantVertices {
		t.Errorf("VertexCount() = %d, want %d", mesh.VertexCount(), wantVertices)
	}
	wantTriangles := res * res * 2 * 2
	if mesh.TriangleCount() != wantTriangles {
		t.Errorf("TriangleCount() = %d, want %d", mesh.TriangleCount(), wantTriangles)
	}

	count := uint32(mesh.VertexCount())
	for _, idx := range mesh.Indices {
		if idx >= count {
			t.Fatalf("index %d out of bounds (vertex count %d)", idx, count)
		}
	}
}

func TestFlatPetalStaysNearPlane(t *testing.T) {
	mesh, err := DefaultPetalParams().Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	var sum float32
	for _, p := range mesh.Positions {
		sum += float32(math.Abs(float64(p.Z)))
	}
	avg := sum / float32(len(mesh.Positions))
	if avg > 0.5 {
		t.Errorf("avg |Z| = %v, undeformed petal should stay near the XY plane", avg)
	}
}

func TestPetalDimensions(t *testing.T) {
	params := DefaultPetalParams()
	params.Length = 5.0

	mesh, err := params.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	var maxY float32
	minY := float32(math.MaxFloat32)
	for _, p := range mesh.Positions {
		if p.Y > maxY {
			maxY = p.Y
		}
		if p.Y < minY {
			minY = p.Y
		}
	}

	if minY > 0.5 {
		t.Errorf("min Y = %v, base should be near 0", minY)
	}
	if math.Abs(float64(maxY-params.Length)) > 0.1 {
		t.Errorf("max Y = %v, tip should reach %v", maxY, params.Length)
	}
}

func TestPetalNormalsDoubleSided(t *testing.T) {
	mesh, err := DefaultPetalParams().Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for i, n := range mesh.Normals {
		if math.Abs(float64(n.Length()-1)) > 0.1 {
			t.Errorf("normal %d length = %v, want 1", i, n.Length())
		}
		if math.Abs(float64(n.Z)) < 0.5 {
			t.Errorf("normal %d Z = %v, want a strong Z component on a flat petal", i, n.Z)
		}
	}
}

func TestDeformedPetalPresets(t *testing.T) {
	params := WidePetalParams()
	params.Curl = 0.3
	params.Twist = 15
	params.RuffleFreq = 2
	params.RuffleAmp = 0.1

	mesh, err := params.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for i, p := range mesh.Positions {
		for _, c := range []float32{p.X, p.Y, p.Z} {
			if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
				t.Fatalf("position %d not finite: %v", i, p)
			}
		}
	}
}

func TestPetalInvalidResolution(t *testing.T) {
	params := DefaultPetalParams()
	params.Resolution = 0

	if _, err := params.Generate(); err == nil {
		t.Errorf("Generate() with zero resolution should fail")
	}
}

func TestSepalPresetsCurlDownward(t *testing.T) {
	presets := map[string]PetalParams{
		"default":  DefaultSepalParams(),
		"narrow":   NarrowSepalParams(),
		"wide":     WideSepalParams(),
		"recurved": RecurvedSepalParams(),
	}

	for name, params := range presets {
		if params.Curl >= 0 {
			t.Errorf("%s sepal curl = %v, want negative", name, params.Curl)
		}
		if params.Color != sepalGreen {
			t.Errorf("%s sepal color = %v, want green", name, params.Color)
		}

		mesh, err := params.Generate()
		if err != nil {
			t.Fatalf("%s sepal Generate() error: %v", name, err)
		}
		if mesh.TriangleCount() == 0 {
			t.Errorf("%s sepal mesh has no triangles", name)
		}
	}
}
