// Package curve provides the spline, phyllotaxis, and curve-lifting math
// behind the flower generators.
package curve

import (
	"github.com/Faultbox/blossom/pkg/vmath"
)

// QuadraticBezier2D evaluates a quadratic Bezier curve at t in [0,1].
func QuadraticBezier2D(p0, p1, p2 vmath.Vec2, t float32) vmath.Vec2 {
	oneMinusT := 1 - t
	a := oneMinusT * oneMinusT
	b := 2 * oneMinusT * t
	c := t * t

	return vmath.Vec2{
		X: a*p0.X + b*p1.X + c*p2.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y,
	}
}

// CubicBezier2D evaluates a cubic Bezier curve at t in [0,1].
func CubicBezier2D(p0, p1, p2, p3 vmath.Vec2, t float32) vmath.Vec2 {
	oneMinusT := 1 - t
	a := oneMinusT * oneMinusT * oneMinusT
	b := 3 * oneMinusT * oneMinusT * t
	c := 3 * oneMinusT * t * t
	d := t * t * t

	return vmath.Vec2{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// QuadraticBezier3D evaluates a quadratic Bezier curve in 3D at t in [0,1].
func QuadraticBezier3D(p0, p1, p2 vmath.Vec3, t float32) vmath.Vec3 {
	oneMinusT := 1 - t
	a := oneMinusT * oneMinusT
	b := 2 * oneMinusT * t
	c := t * t

	return p0.Scale(a).Add(p1.Scale(b)).Add(p2.Scale(c))
}

// CubicBezier3D evaluates a cubic Bezier curve in 3D at t in [0,1].
func CubicBezier3D(p0, p1, p2, p3 vmath.Vec3, t float32) vmath.Vec3 {
	oneMinusT := 1 - t
	a := oneMinusT * oneMinusT * oneMinusT
	b := 3 * oneMinusT * oneMinusT * t
	c := 3 * oneMinusT * t * t
	d := t * t * t

	return p0.Scale(a).Add(p1.Scale(b)).Add(p2.Scale(c)).Add(p3.Scale(d))
}

// QuadraticBezierDerivative2D returns the first derivative of a quadratic
// Bezier curve at t.
func QuadraticBezierDerivative2D(p0, p1, p2 vmath.Vec2, t float32) vmath.Vec2 {
	d0 := p1.Sub(p0).Scale(2 * (1 - t))
	d1 := p2.Sub(p1).Scale(2 * t)
	return d0.Add(d1)
}

// CubicBezierDerivative2D returns the first derivative of a cubic Bezier
// curve at t.
func CubicBezierDerivative2D(p0, p1, p2, p3 vmath.Vec2, t float32) vmath.Vec2 {
	oneMinusT := 1 - t
	d0 := p1.Sub(p0).Scale(3 * oneMinusT * oneMinusT)
	d1 := p2.Sub(p1).Scale(6 * oneMinusT * t)
	d2 := p3.Sub(p2).Scale(3 * t * t)
	return d0.Add(d1).Add(d2)
}

// SampleQuadraticBezier2D samples a quadratic Bezier at count evenly
// spaced parameter values, endpoints included. Counts below 2 are
// treated as 2.
func SampleQuadraticBezier2D(p0, p1, p2 vmath.Vec2, count int) []vmath.Vec2 {
	if count < 2 {
		count = 2
	}
	out := make([]vmath.Vec2, 0, count)
	for i := 0; i < count; i++ {
		t := float32(i) / float32(count-1)
		out = append(out, QuadraticBezier2D(p0, p1, p2, t))
	}
	return out
}

// SampleCubicBezier2D samples a cubic Bezier at count evenly spaced
// parameter values, endpoints included. Counts below 2 are treated as 2.
func SampleCubicBezier2D(p0, p1, p2, p3 vmath.Vec2, count int) []vmath.Vec2 {
	if count < 2 {
		count = 2
	}
	out := make([]vmath.Vec2, 0, count)
	for i := 0; i < count; i++ {
		t := float32(i) / float32(count-1)
		out = append(out, CubicBezier2D(p0, p1, p2, p3, t))
	}
	return out
}

// SampleQuadraticBezier3D samples a quadratic 3D Bezier at count evenly
// spaced parameter values, endpoints included. Counts below 2 are
// treated as 2.
func SampleQuadraticBezier3D(p0, p1, p2 vmath.Vec3, count int) []vmath.Vec3 {
	if count < 2 {
		count = 2
	}
	out := make([]vmath.Vec3, 0, count)
	for i := 0; i < count; i++ {
		t := float32(i) / float32(count-1)
		out = append(out, QuadraticBezier3D(p0, p1, p2, t))
	}
	return out
}
