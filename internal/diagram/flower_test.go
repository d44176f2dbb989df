package diagram

import (
	"math"
	"testing"
)

func TestGenerateLilyFlower(t *testing.T) {
	flower, err := GenerateFlower(LilyFlower())
	if err != nil {
		t.Fatalf("GenerateFlower() error: %v", err)
	}

	if flower.VertexCount() == 0 {
		t.Fatalf("flower has no vertices")
	}
	if flower.TriangleCount() == 0 {
		t.Fatalf("flower has no triangles")
	}

	count := uint32(flower.VertexCount())
	for _, idx := range flower.Indices {
		if idx >= count {
			t.Fatalf("index %d out of bounds (vertex count %d)", idx, count)
		}
	}

	for i, p := range flower.Positions {
		for _, c := range []float32{p.X, p.Y, p.Z} {
			if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
				t.Fatalf("position %d not finite: %v", i, p)
			}
		}
	}
}

func TestGenerateFivePetalFlower(t *testing.T) {
	flower, err := GenerateFlower(FivePetalFlower())
	if err != nil {
		t.Fatalf("GenerateFlower() error: %v", err)
	}

	if flower.VertexCount() < 500 {
		t.Errorf("VertexCount() = %d, want substantial geometry", flower.VertexCount())
	}
	if len(flower.Positions) != len(flower.Normals) {
		t.Errorf("positions and normals disagree: %d vs %d",
			len(flower.Positions), len(flower.Normals))
	}
	if len(flower.Positions) != len(flower.UVs) {
		t.Errorf("positions and uvs disagree: %d vs %d",
			len(flower.Positions), len(flower.UVs))
	}
}

func TestGenerateDaisyFlower(t *testing.T) {
	flower, err := GenerateFlower(DaisyFlower())
	if err != nil {
		t.Fatalf("GenerateFlower() error: %v", err)
	}

	// 21 petals, 34 stamens, 13 pistils.
	if flower.VertexCount() < 1000 {
		t.Errorf("VertexCount() = %d, want a dense daisy", flower.VertexCount())
	}
}

func TestGenerateFlowerWithSepals(t *testing.T) {
	params := LilyFlower()
	withoutSepals, err := GenerateFlower(params)
	if err != nil {
		t.Fatalf("GenerateFlower() error: %v", err)
	}

	params.Diagram.SepalWhorls = []ComponentWhorl{{
		Count:   3,
		Radius:  1.1,
		Height:  0.2,
		Pattern: EvenlySpaced,
	}}

	withSepals, err := GenerateFlower(params)
	if err != nil {
		t.Fatalf("GenerateFlower() with sepals error: %v", err)
	}

	if withSepals.VertexCount() <= withoutSepals.VertexCount() {
		t.Errorf("sepal whorl added no geometry: %d vs %d",
			withSepals.VertexCount(), withoutSepals.VertexCount())
	}
}

func TestGenerateFlowerExtents(t *testing.T) {
	flower, err := GenerateFlower(LilyFlower())
	if err != nil {
		t.Fatalf("GenerateFlower() error: %v", err)
	}

	minY := float32(math.MaxFloat32)
	var maxY, maxR float32
	for _, p := range flower.Positions {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
		if r := p.XZ().Length(); r > maxR {
			maxR = r
		}
	}

	if minY < -0.1 {
		t.Errorf("min Y = %v, base should be near the origin", minY)
	}
	if maxY < 1.0 {
		t.Errorf("max Y = %v, flower should have height", maxY)
	}
	if maxR < 1.0 {
		t.Errorf("max radius = %v, flower should spread", maxR)
	}
}
