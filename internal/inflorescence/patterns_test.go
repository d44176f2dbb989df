package inflorescence

import (
	"math"
	"testing"

	"github.com/Faultbox/blossom/pkg/curve"
	"github.com/Faultbox/blossom/pkg/vmath"
)

func straightAxis(t *testing.T, length float32) *curve.AxisCurve {
	t.Helper()
	axis, err := curve.NewAxisCurve([]vmath.Vec3{{}, {Y: length}})
	if err != nil {
		t.Fatalf("NewAxisCurve() error: %v", err)
	}
	return axis
}

func TestRacemeBranchCount(t *testing.T) {
	params := DefaultParams()
	params.BranchCount = 7

	branches := racemeBranchPoints(params, straightAxis(t, params.AxisLength))
	if len(branches) != 7 {
		t.Fatalf("len(branches) = %d, want 7", len(branches))
	}
}

func TestRacemeAgeGradient(t *testing.T) {
	params := DefaultParams()
	params.BranchCount = 5

	branches := racemeBranchPoints(params, straightAxis(t, params.AxisLength))

	if math.Abs(float64(branches[0].Age-1)) > 1e-5 {
		t.Errorf("bottom age = %v, want 1", branches[0].Age)
	}
	if math.Abs(float64(branches[len(branches)-1].Age)) > 1e-5 {
		t.Errorf("top age = %v, want 0", branches[len(branches)-1].Age)
	}
	for i := 1; i < len(branches); i++ {
		if branches[i].Age >= branches[i-1].Age {
			t.Errorf("age at %d = %v, should decrease from %v", i, branches[i].Age, branches[i-1].Age)
		}
	}
}

func TestRacemeLengthInterpolation(t *testing.T) {
	params := DefaultParams()
	params.BranchCount = 4
	params.BranchLengthBottom = 1.5
	params.BranchLengthTop = 0.5

	branches := racemeBranchPoints(params, straightAxis(t, params.AxisLength))

	if math.Abs(float64(branches[0].Length-1.5)) > 1e-5 {
		t.Errorf("bottom length = %v, want 1.5", branches[0].Length)
	}
	if math.Abs(float64(branches[len(branches)-1].Length-0.5)) > 1e-5 {
		t.Errorf("top length = %v, want 0.5", branches[len(branches)-1].Length)
	}
}

func TestRacemeDirectionsNormalized(t *testing.T) {
	params := DefaultParams()
	branches := racemeBranchPoints(params, straightAxis(t, params.AxisLength))

	for i, b := range branches {
		if math.Abs(float64(b.Direction.Length()-1)) > 1e-4 {
			t.Errorf("direction %d length = %v, want 1", i, b.Direction.Length())
		}
	}
}

func TestRacemeSingleBranchAtMidpoint(t *testing.T) {
	params := DefaultParams()
	params.BranchCount = 1

	branches := racemeBranchPoints(params, straightAxis(t, 10))
	base := branches[0].Position.Sub(branches[0].Direction.Scale(branches[0].Length))

	if math.Abs(float64(base.Y-5)) > 0.01 {
		t.Errorf("single branch base Y = %v, want 5", base.Y)
	}
}

func TestRacemeEightBranchSpiral(t *testing.T) {
	params := DefaultParams()
	params.BranchCount = 8
	params.RotationAngle = 137.5
	params.AngleBottom = 60
	params.AngleTop = 45

	branches := racemeBranchPoints(params, straightAxis(t, params.AxisLength))
	if len(branches) != 8 {
		t.Fatalf("len(branches) = %d, want 8", len(branches))
	}

	// Azimuth about the axis, measured in the spiral's rotation
	// direction so successive branches advance by the rotation angle.
	azimuth := func(d vmath.Vec3) float64 {
		deg := math.Atan2(float64(-d.Z), float64(d.X)) * 180 / math.Pi
		return math.Mod(deg+360, 360)
	}

	for i, want := range []float64{0, 137.5, 275, 52.5} {
		got := azimuth(branches[i].Direction)
		diff := math.Abs(got - want)
		if diff > 180 {
			diff = 360 - diff
		}
		if diff > 0.05 {
			t.Errorf("azimuth %d = %v degrees, want %v", i, got, want)
		}
	}

	// The branch angle interpolates from the bottom value to the top
	// value, read back as elevation above the horizontal plane.
	elevation := func(d vmath.Vec3) float64 {
		return math.Asin(float64(d.Y)) * 180 / math.Pi
	}
	if got := elevation(branches[0].Direction); math.Abs(got-60) > 0.05 {
		t.Errorf("bottom branch elevation = %v degrees, want 60", got)
	}
	if got := elevation(branches[7].Direction); math.Abs(got-45) > 0.05 {
		t.Errorf("top branch elevation = %v degrees, want 45", got)
	}
}

func TestSpikeFlowersAreSessile(t *testing.T) {
	params := DefaultParams()
	params.Pattern = Spike
	params.BranchCount = 6

	branches := spikeBranchPoints(params, straightAxis(t, 10))

	for i, b := range branches {
		if b.Length != 0 {
			t.Errorf("branch %d length = %v, want 0", i, b.Length)
		}
		if r := b.Position.XZ().Length(); r > 1e-3 {
			t.Errorf("branch %d sits %v off the axis, want on axis", i, r)
		}
	}
}

func TestUmbelSingleOrigin(t *testing.T) {
	params := DefaultParams()
	params.Pattern = Umbel
	params.BranchCount = 8
	params.BranchLengthTop = 2.0

	branches := umbelBranchPoints(params, straightAxis(t, 10))

	for i, b := range branches {
		base := b.Position.Sub(b.Direction.Scale(b.Length))
		if math.Abs(float64(base.Y-10)) > 1e-3 || base.XZ().Length() > 1e-3 {
			t.Errorf("branch %d base = %v, want axis top (0, 10, 0)", i, base)
		}
	}
}

func TestUmbelDeterminateAges(t *testing.T) {
	params := DefaultParams()
	params.Pattern = Umbel

	branches := umbelBranchPoints(params, straightAxis(t, 10))
	for i, b := range branches {
		if b.Age != 1 {
			t.Errorf("branch %d age = %v, want 1", i, b.Age)
		}
	}
}

func TestUmbelRadialSpread(t *testing.T) {
	params := DefaultParams()
	params.Pattern = Umbel
	params.BranchCount = 4
	params.RotationAngle = 90
	params.AngleTop = 45
	params.BranchLengthTop = 2.0

	branches := umbelBranchPoints(params, straightAxis(t, 10))

	var sum float32
	radii := make([]float32, 0, len(branches))
	for _, b := range branches {
		r := b.Position.XZ().Length()
		radii = append(radii, r)
		sum += r
	}
	avg := sum / float32(len(radii))
	for i, r := range radii {
		if math.Abs(float64(r-avg)) > 0.1 {
			t.Errorf("branch %d radius = %v, want ~%v", i, r, avg)
		}
	}
}

func TestCorymbFlatTop(t *testing.T) {
	params := DefaultParams()
	params.Pattern = Corymb
	params.BranchCount = 5
	params.AngleTop = 30
	params.AngleBottom = 60

	branches := corymbBranchPoints(params, straightAxis(t, 10))

	for i, b := range branches {
		if math.Abs(float64(b.Position.Y-10)) > 0.1 {
			t.Errorf("branch %d Y = %v, corymb should reach the axis top", i, b.Position.Y)
		}
	}
}

func TestCorymbPedicelLengthsDecrease(t *testing.T) {
	params := DefaultParams()
	params.Pattern = Corymb
	params.BranchCount = 4
	params.AngleTop = 45
	params.AngleBottom = 45

	branches := corymbBranchPoints(params, straightAxis(t, 10))

	if branches[0].Length <= branches[len(branches)-1].Length {
		t.Errorf("bottom length %v should exceed top length %v",
			branches[0].Length, branches[len(branches)-1].Length)
	}
}

func TestDichasiumBranchCount(t *testing.T) {
	params := DefaultParams()
	params.Pattern = Dichasium
	params.RecursionDepth = 3

	branches := dichasiumBranchPoints(params, straightAxis(t, 10))

	// Full binary tree: 2^(depth+1) - 1 nodes.
	if len(branches) != 15 {
		t.Fatalf("len(branches) = %d, want 15", len(branches))
	}
}

func TestDichasiumRootOldest(t *testing.T) {
	params := DefaultParams()
	params.Pattern = Dichasium
	params.RecursionDepth = 2

	branches := dichasiumBranchPoints(params, straightAxis(t, 10))

	if branches[0].Age != 1 {
		t.Errorf("root age = %v, want 1", branches[0].Age)
	}

	var leaves int
	for _, b := range branches {
		if b.Age == 0 {
			leaves++
		}
	}
	if leaves != 4 {
		t.Errorf("leaf count = %d, want 4 at depth 2", leaves)
	}
}

func TestDichasiumScaleShrinksWithDepth(t *testing.T) {
	params := DefaultParams()
	params.Pattern = Dichasium
	params.RecursionDepth = 3

	branches := dichasiumBranchPoints(params, straightAxis(t, 10))

	var minScale float32 = math.MaxFloat32
	for _, b := range branches {
		if b.FlowerScale < minScale {
			minScale = b.FlowerScale
		}
	}
	if branches[0].FlowerScale <= minScale {
		t.Errorf("root scale %v should exceed periphery scale %v",
			branches[0].FlowerScale, minScale)
	}
}

func TestDrepaniumChainLength(t *testing.T) {
	params := DefaultParams()
	params.Pattern = Drepanium
	params.RecursionDepth = 4

	branches := drepaniumBranchPoints(params, straightAxis(t, 10))

	if len(branches) != 5 {
		t.Fatalf("len(branches) = %d, want 5", len(branches))
	}
}

func TestDrepaniumGeometricLengths(t *testing.T) {
	params := DefaultParams()
	params.Pattern = Drepanium
	params.RecursionDepth = 3
	params.BranchRatio = 0.8
	params.BranchLengthTop = 1.0

	branches := drepaniumBranchPoints(params, straightAxis(t, 10))

	for i, b := range branches {
		want := float32(math.Pow(0.8, float64(i)))
		if math.Abs(float64(b.Length-want)) > 1e-4 {
			t.Errorf("branch %d length = %v, want %v", i, b.Length, want)
		}
	}
}

func TestDrepaniumAgesDecrease(t *testing.T) {
	params := DefaultParams()
	params.Pattern = Drepanium
	params.RecursionDepth = 4

	branches := drepaniumBranchPoints(params, straightAxis(t, 10))

	if branches[0].Age != 1 {
		t.Errorf("root age = %v, want 1", branches[0].Age)
	}
	for i := 1; i < len(branches); i++ {
		if branches[i].Age >= branches[i-1].Age {
			t.Errorf("age at %d = %v, should decrease", i, branches[i].Age)
		}
	}
}

func TestApplyAgeDistribution(t *testing.T) {
	tests := []struct {
		base, distribution, want float32
	}{
		{0.5, 0, 0.5},
		{0.5, 1, 0.5},
		{0.5, 0.5, 0.25},
		{0.8, 2, 1},
		{1, 1.5, 1},
	}

	for _, tt := range tests {
		if got := applyAgeDistribution(tt.base, tt.distribution); got != tt.want {
			t.Errorf("applyAgeDistribution(%v, %v) = %v, want %v",
				tt.base, tt.distribution, got, tt.want)
		}
	}
}
