// Package components generates the individual flower parts: receptacle,
// pistil, stamen, petal, and sepal. Each part is described by a params
// struct with named presets and produces a standalone mesh with the part
// base at the origin, growing along +Y.
package components

import (
	"github.com/Faultbox/blossom/pkg/curve"
	"github.com/Faultbox/blossom/pkg/geometry"
	"github.com/Faultbox/blossom/pkg/vmath"
)

var (
	white      = vmath.Vec3{X: 1, Y: 1, Z: 1}
	sepalGreen = vmath.Vec3{X: 0.2, Y: 0.6, Z: 0.2}
)

// ReceptacleParams describes the flower base that all other parts attach
// to. The profile is a cubic Bezier from base to top radius through the
// bulge, revolved around the Y axis.
type ReceptacleParams struct {
	// Height is the total height of the receptacle.
	Height float32

	// BaseRadius is the radius at the bottom.
	BaseRadius float32

	// BulgeRadius is the radius at the widest point.
	BulgeRadius float32

	// TopRadius is the radius at the top.
	TopRadius float32

	// BulgePosition places the bulge along the height, 0 at the bottom
	// and 1 at the top.
	BulgePosition float32

	// Segments is the number of segments around the circumference.
	Segments int

	// ProfileSamples is the number of samples along the profile curve.
	ProfileSamples int

	// Color is the RGB color in the 0-1 range.
	Color vmath.Vec3
}

// DefaultReceptacleParams returns a slightly bulbous receptacle with a
// smooth taper, suited to a lily.
func DefaultReceptacleParams() ReceptacleParams {
	return ReceptacleParams{
		Height:         1.0,
		BaseRadius:     0.25,
		BulgeRadius:    0.35,
		TopRadius:      0.15,
		BulgePosition:  0.5,
		Segments:       16,
		ProfileSamples: 8,
		Color:          white,
	}
}

// FlatReceptacleParams returns a flat disc-like receptacle.
func FlatReceptacleParams() ReceptacleParams {
	return ReceptacleParams{
		Height:         0.2,
		BaseRadius:     0.5,
		BulgeRadius:    0.5,
		TopRadius:      0.5,
		BulgePosition:  0.5,
		Segments:       16,
		ProfileSamples: 4,
		Color:          white,
	}
}

// ConvexReceptacleParams returns a bulbous receptacle.
func ConvexReceptacleParams() ReceptacleParams {
	return ReceptacleParams{
		Height:         1.2,
		BaseRadius:     0.2,
		BulgeRadius:    0.6,
		TopRadius:      0.25,
		BulgePosition:  0.6,
		Segments:       20,
		ProfileSamples: 10,
		Color:          white,
	}
}

// ConcaveReceptacleParams returns a cup-like receptacle.
func ConcaveReceptacleParams() ReceptacleParams {
	return ReceptacleParams{
		Height:         0.8,
		BaseRadius:     0.4,
		BulgeRadius:    0.3,
		TopRadius:      0.5,
		BulgePosition:  0.3,
		Segments:       16,
		ProfileSamples: 8,
		Color:          white,
	}
}

// Generate builds the receptacle mesh by sampling the Bezier profile and
// revolving it around the Y axis.
func (p ReceptacleParams) Generate() (*geometry.Mesh, error) {
	p0 := vmath.Vec2{X: p.BaseRadius, Y: 0}

	// The lower control point sits at 20% height, pulled toward the
	// bulge radius; the upper one sits at the bulge itself.
	p1 := vmath.Vec2{
		X: p.BaseRadius + (p.BulgeRadius-p.BaseRadius)*0.3,
		Y: p.Height * 0.2,
	}
	p2 := vmath.Vec2{X: p.BulgeRadius, Y: p.Height * p.BulgePosition}
	p3 := vmath.Vec2{X: p.TopRadius, Y: p.Height}

	profile := curve.SampleCubicBezier2D(p0, p1, p2, p3, p.ProfileSamples)

	return geometry.Revolve(profile, p.Segments, p.Color)
}
