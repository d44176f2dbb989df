package components

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/blossom/pkg/curve"
	"github.com/Faultbox/blossom/pkg/geometry"
	"github.com/Faultbox/blossom/pkg/vmath"
)

// StamenParams describes the male reproductive structure: a thin
// filament topped with an ellipsoid anther.
type StamenParams struct {
	// FilamentLength is the filament height, used for straight
	// filaments only.
	FilamentLength float32

	// FilamentRadius is the filament radius.
	FilamentRadius float32

	// AntherLength is the anther extent along the filament direction.
	AntherLength float32

	// AntherWidth is the anther extent along X.
	AntherWidth float32

	// AntherHeight is the anther extent along Z.
	AntherHeight float32

	// Segments is the number of segments around the circumference.
	Segments int

	// FilamentCurve, when set, sweeps the filament along these
	// Catmull-Rom control points instead of building a straight stalk.
	// At least 4 control points are required; FilamentLength is ignored.
	FilamentCurve []vmath.Vec3

	// Color is the RGB color in the 0-1 range.
	Color vmath.Vec3
}

// DefaultStamenParams returns a lily-like stamen.
func DefaultStamenParams() StamenParams {
	return StamenParams{
		FilamentLength: 1.5,
		FilamentRadius: 0.04,
		AntherLength:   0.25,
		AntherWidth:    0.07,
		AntherHeight:   0.07,
		Segments:       10,
		Color:          white,
	}
}

// ShortStamenParams returns a short stamen with a thick anther.
func ShortStamenParams() StamenParams {
	return StamenParams{
		FilamentLength: 0.8,
		FilamentRadius: 0.05,
		AntherLength:   0.2,
		AntherWidth:    0.1,
		AntherHeight:   0.1,
		Segments:       10,
		Color:          white,
	}
}

// SlenderStamenParams returns a long, slender stamen.
func SlenderStamenParams() StamenParams {
	return StamenParams{
		FilamentLength: 2.5,
		FilamentRadius: 0.03,
		AntherLength:   0.3,
		AntherWidth:    0.05,
		AntherHeight:   0.05,
		Segments:       8,
		Color:          white,
	}
}

// ElongatedAntherStamenParams returns a stamen with a stretched anther.
func ElongatedAntherStamenParams() StamenParams {
	return StamenParams{
		FilamentLength: 1.5,
		FilamentRadius: 0.04,
		AntherLength:   0.4,
		AntherWidth:    0.06,
		AntherHeight:   0.06,
		Segments:       10,
		Color:          white,
	}
}

// Generate builds the stamen mesh: the filament first, then the anther
// sphere scaled to an ellipsoid and moved to the filament tip.
func (p StamenParams) Generate() (*geometry.Mesh, error) {
	filament, tip, err := p.filament()
	if err != nil {
		return nil, err
	}

	baseRadius := math32.Max(p.AntherWidth, p.AntherHeight)
	anther, err := geometry.UVSphere(baseRadius, 6, p.Segments, p.Color)
	if err != nil {
		return nil, fmt.Errorf("stamen anther: %w", err)
	}

	anther.Transform(vmath.Scale(
		p.AntherWidth/baseRadius,
		p.AntherLength/baseRadius,
		p.AntherHeight/baseRadius,
	))
	anther.Transform(vmath.Translate(tip.X, tip.Y, tip.Z))

	filament.Merge(anther)

	return filament, nil
}

// filament builds the filament mesh and returns it with the tip
// position for anther placement.
func (p StamenParams) filament() (*geometry.Mesh, vmath.Vec3, error) {
	if p.FilamentCurve == nil {
		profile := []vmath.Vec2{
			{X: p.FilamentRadius, Y: 0},
			{X: p.FilamentRadius, Y: p.FilamentLength},
		}

		mesh, err := geometry.Revolve(profile, p.Segments, p.Color)
		if err != nil {
			return nil, vmath.Vec3{}, fmt.Errorf("stamen filament: %w", err)
		}
		return mesh, vmath.Vec3{Y: p.FilamentLength}, nil
	}

	if len(p.FilamentCurve) < 4 {
		return nil, vmath.Vec3{}, fmt.Errorf(
			"stamen filament: curve requires at least 4 control points, got %d",
			len(p.FilamentCurve))
	}

	sampled, err := curve.SampleCatmullRom(p.FilamentCurve, 20)
	if err != nil {
		return nil, vmath.Vec3{}, fmt.Errorf("stamen filament: %w", err)
	}

	profile := []vmath.Vec2{
		{X: p.FilamentRadius, Y: 0},
		{X: p.FilamentRadius, Y: 1},
	}

	mesh, err := geometry.Sweep(profile, sampled, p.Segments, p.Color)
	if err != nil {
		return nil, vmath.Vec3{}, fmt.Errorf("stamen filament: %w", err)
	}

	return mesh, sampled[len(sampled)-1], nil
}
