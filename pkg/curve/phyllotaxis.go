package curve

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/blossom/pkg/vmath"
)

// GoldenAngle is the golden angle in radians, roughly 137.5 degrees.
// Successive florets placed at this divergence never align, which is
// what produces the familiar sunflower spiral.
const GoldenAngle float32 = 2.39996322972865332

// FibonacciAngle returns the spiral angle for the given index,
// normalized to [0, 2pi).
func FibonacciAngle(index int) float32 {
	return math32.Mod(float32(index)*GoldenAngle, 2*math32.Pi)
}

// EvenlySpaced returns n angles at equal steps covering one full
// revolution, starting at offset.
func EvenlySpaced(n int, offset float32) []float32 {
	if n <= 0 {
		return nil
	}

	step := 2 * math32.Pi / float32(n)
	out := make([]float32, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, offset+float32(i)*step)
	}
	return out
}

// GoldenSpiral returns n angles at successive golden-angle increments.
// The angles accumulate without normalization so the winding order is
// preserved.
func GoldenSpiral(n int) []float32 {
	if n <= 0 {
		return nil
	}

	out := make([]float32, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, float32(i)*GoldenAngle)
	}
	return out
}

// VogelSpiral returns the 2D position of element index in a disc of the
// given radius using Vogel's packing: the radius grows as sqrt(i/(n-1))
// so the density stays uniform.
func VogelSpiral(index, count int, radius float32) vmath.Vec2 {
	angle := float32(index) * GoldenAngle
	var r float32
	if count > 1 {
		r = radius * math32.Sqrt(float32(index)/float32(count-1))
	}
	return vmath.Vec2{X: r * math32.Cos(angle), Y: r * math32.Sin(angle)}
}

// RadialPositions places count elements at equal angular intervals on a
// circle, starting at angleOffset.
func RadialPositions(count int, radius, angleOffset float32) []vmath.Vec2 {
	if count <= 0 {
		return nil
	}

	angleStep := 2 * math32.Pi / float32(count)
	out := make([]vmath.Vec2, 0, count)
	for i := 0; i < count; i++ {
		angle := float32(i)*angleStep + angleOffset
		out = append(out, vmath.Vec2{
			X: radius * math32.Cos(angle),
			Y: radius * math32.Sin(angle),
		})
	}
	return out
}

// WhorledPositions places count elements in a horizontal ring at the
// given radius and height.
func WhorledPositions(count int, radius, height, angleOffset float32) []vmath.Vec3 {
	if count <= 0 {
		return nil
	}

	angleStep := 2 * math32.Pi / float32(count)
	out := make([]vmath.Vec3, 0, count)
	for i := 0; i < count; i++ {
		angle := float32(i)*angleStep + angleOffset
		out = append(out, vmath.Vec3{
			X: radius * math32.Cos(angle),
			Y: height,
			Z: radius * math32.Sin(angle),
		})
	}
	return out
}

// RadiusFunc maps a normalized position t in [0,1] to a radius factor.
type RadiusFunc func(t float32) float32

// FibonacciSpiral3D arranges count elements on a spiral climbing a
// cylinder of the given base radius and height. radiusFn optionally
// varies the radius along the climb; nil keeps it constant.
func FibonacciSpiral3D(count int, baseRadius, height float32, radiusFn RadiusFunc) []vmath.Vec3 {
	if count <= 0 {
		return nil
	}

	out := make([]vmath.Vec3, 0, count)
	for i := 0; i < count; i++ {
		var t float32
		if count > 1 {
			t = float32(i) / float32(count-1)
		}
		angle := FibonacciAngle(i)
		y := t * height

		radius := baseRadius
		if radiusFn != nil {
			radius = baseRadius * radiusFn(t)
		}

		out = append(out, vmath.Vec3{
			X: radius * math32.Cos(angle),
			Y: y,
			Z: radius * math32.Sin(angle),
		})
	}
	return out
}

// RadiusConstant keeps the radius fixed along the arrangement.
func RadiusConstant(_ float32) float32 {
	return 1
}

// RadiusLinear tapers the radius linearly to zero.
func RadiusLinear(t float32) float32 {
	return 1 - t
}

// RadiusQuadratic tapers the radius quadratically for a smoother cone.
func RadiusQuadratic(t float32) float32 {
	s := 1 - t
	return s * s
}

// RadiusBulge widens the arrangement in the middle.
func RadiusBulge(t float32) float32 {
	return math32.Sin(t * math32.Pi)
}
