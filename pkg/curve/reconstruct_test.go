package curve

import (
	"math"
	"testing"

	"github.com/Faultbox/blossom/pkg/vmath"
)

func TestResampleUniformY(t *testing.T) {
	points := []vmath.Vec2{
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 2, Y: 2},
	}

	resampled, err := ResampleUniformY(points, 5)
	if err != nil {
		t.Fatalf("ResampleUniformY() error: %v", err)
	}
	if len(resampled) != 5 {
		t.Fatalf("len(resampled) = %d, want 5", len(resampled))
	}

	want := []float32{0, 0.5, 1, 1.5, 2}
	for i := range want {
		if math.Abs(float64(resampled[i].Y-want[i])) > 1e-5 {
			t.Errorf("resampled[%d].Y = %v, want %v", i, resampled[i].Y, want[i])
		}
	}
}

func TestSecondDerivativesStraightLine(t *testing.T) {
	points := []vmath.Vec2{
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 2, Y: 2},
		{X: 3, Y: 3},
	}

	d2x, err := SecondDerivativesX(points)
	if err != nil {
		t.Fatalf("SecondDerivativesX() error: %v", err)
	}
	if len(d2x) != 4 {
		t.Fatalf("len(d2x) = %d, want 4", len(d2x))
	}
	for i, v := range d2x {
		if math.Abs(float64(v)) > 1e-3 {
			t.Errorf("d2x[%d] = %v, want ~0", i, v)
		}
	}
}

func TestIntegrateTwiceStartsAtZero(t *testing.T) {
	result := IntegrateTwice([]float32{2, 2, 2, 2})
	if len(result) != 4 {
		t.Fatalf("len(result) = %d, want 4", len(result))
	}
	if math.Abs(float64(result[0])) > 0.1 {
		t.Errorf("result[0] = %v, want 0", result[0])
	}
	// Constant second derivative integrates to a growing quadratic.
	for i := 1; i < len(result); i++ {
		if result[i] <= result[i-1] {
			t.Errorf("result not increasing at %d: %v <= %v", i, result[i], result[i-1])
		}
	}
}

func TestIntegrateTwiceEmpty(t *testing.T) {
	if got := IntegrateTwice(nil); got != nil {
		t.Errorf("IntegrateTwice(nil) = %v, want nil", got)
	}
}

func TestApplyDepthSignsFlipAtInflection(t *testing.T) {
	// S-shaped lateral input: x = sin(y) over one full period has a
	// single inflection, falling between grid samples for this count.
	const n = 8
	points := make([]vmath.Vec2, 0, n)
	for i := 0; i < n; i++ {
		y := 2 * math.Pi * float64(i) / (n - 1)
		points = append(points, vmath.Vec2{X: float32(math.Sin(y)), Y: float32(y)})
	}

	dx2, err := SecondDerivativesX(points)
	if err != nil {
		t.Fatalf("SecondDerivativesX() error: %v", err)
	}

	crossing := 0
	for i := 1; i < len(dx2); i++ {
		if dx2[i]*dx2[i-1] < 0 {
			if crossing != 0 {
				t.Fatalf("lateral curvature crosses zero more than once")
			}
			crossing = i
		}
	}
	if crossing == 0 {
		t.Fatal("lateral curvature never crosses zero")
	}

	dz2 := make([]float32, n)
	for i := range dz2 {
		dz2[i] = 1
	}
	if err := applyDepthSigns(points, dz2); err != nil {
		t.Fatalf("applyDepthSigns() error: %v", err)
	}

	for i := 1; i < crossing; i++ {
		if dz2[i] != 1 {
			t.Errorf("dz2[%d] = %v, want +1 before the inflection", i, dz2[i])
		}
	}
	for i := crossing; i < n; i++ {
		if dz2[i] != -1 {
			t.Errorf("dz2[%d] = %v, want -1 after the inflection", i, dz2[i])
		}
	}
}

func TestReconstruct3DStraightLine(t *testing.T) {
	line := []vmath.Vec2{
		{X: 0, Y: 0},
		{X: 0, Y: 1},
		{X: 0, Y: 2},
		{X: 0, Y: 3},
	}

	curve3D, err := Reconstruct3D(line)
	if err != nil {
		t.Fatalf("Reconstruct3D() error: %v", err)
	}
	if len(curve3D) != 4 {
		t.Fatalf("len(curve3D) = %d, want 4", len(curve3D))
	}

	for i, p := range curve3D {
		if math.Abs(float64(p.Z)) > 0.1 {
			t.Errorf("point %d Z = %v, straight input should stay straight", i, p.Z)
		}
	}
}

func TestReconstruct3DSineWaveLifts(t *testing.T) {
	var wave []vmath.Vec2
	for i := 0; i < 20; i++ {
		y := float32(i) * 0.5
		x := float32(math.Sin(float64(y) * math.Pi / 4))
		wave = append(wave, vmath.Vec2{X: x, Y: y})
	}

	curve3D, err := Reconstruct3D(wave)
	if err != nil {
		t.Fatalf("Reconstruct3D() error: %v", err)
	}

	var maxZ float32
	for _, p := range curve3D {
		if z := float32(math.Abs(float64(p.Z))); z > maxZ {
			maxZ = z
		}
	}
	if maxZ < 0.1 {
		t.Errorf("max |Z| = %v, curved input should gain depth", maxZ)
	}
}

func TestReconstruct3DFinite(t *testing.T) {
	points := []vmath.Vec2{
		{X: 0, Y: 0},
		{X: 0.5, Y: 1},
		{X: -0.3, Y: 2},
		{X: 0.2, Y: 3},
		{X: 0, Y: 4},
	}

	curve3D, err := Reconstruct3D(points)
	if err != nil {
		t.Fatalf("Reconstruct3D() error: %v", err)
	}

	for i, p := range curve3D {
		for _, c := range []float32{p.X, p.Y, p.Z} {
			if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
				t.Errorf("point %d not finite: %v", i, p)
			}
		}
	}
}

func TestReconstruct3DTooFewPoints(t *testing.T) {
	points := []vmath.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}
	if _, err := Reconstruct3D(points); err == nil {
		t.Errorf("Reconstruct3D() with 2 points should fail")
	}
}
