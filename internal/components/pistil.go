package components

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/blossom/pkg/curve"
	"github.com/Faultbox/blossom/pkg/geometry"
	"github.com/Faultbox/blossom/pkg/vmath"
)

// PistilParams describes the female reproductive structure: a tapered
// style topped with a spherical stigma.
type PistilParams struct {
	// Length is the length of the style.
	Length float32

	// BaseRadius is the style radius at its base.
	BaseRadius float32

	// TipRadius is the style radius at its tip.
	TipRadius float32

	// StigmaRadius is the radius of the stigma sphere.
	StigmaRadius float32

	// Segments is the number of segments around the circumference.
	Segments int

	// Droop bends the style sideways, 0 for a straight style. The
	// magnitude sets how far the tip leans relative to the length.
	Droop float32

	// Color is the RGB color in the 0-1 range.
	Color vmath.Vec3
}

// DefaultPistilParams returns a lily-like pistil.
func DefaultPistilParams() PistilParams {
	return PistilParams{
		Length:       2.0,
		BaseRadius:   0.08,
		TipRadius:    0.06,
		StigmaRadius: 0.12,
		Segments:     12,
		Color:        white,
	}
}

// ShortPistilParams returns a short, thick pistil.
func ShortPistilParams() PistilParams {
	return PistilParams{
		Length:       1.0,
		BaseRadius:   0.15,
		TipRadius:    0.12,
		StigmaRadius: 0.2,
		Segments:     12,
		Color:        white,
	}
}

// SlenderPistilParams returns a long, slender pistil.
func SlenderPistilParams() PistilParams {
	return PistilParams{
		Length:       3.0,
		BaseRadius:   0.05,
		TipRadius:    0.04,
		StigmaRadius: 0.08,
		Segments:     10,
		Color:        white,
	}
}

// Generate builds the pistil mesh. A straight style is a revolved taper;
// a drooping one lifts the bent centerline into 3D and sweeps a tube
// along it. The stigma sphere caps the style tip either way.
func (p PistilParams) Generate() (*geometry.Mesh, error) {
	var style *geometry.Mesh
	tip := vmath.Vec3{Y: p.Length}

	if math32.Abs(p.Droop) > 0.001 {
		var err error
		style, tip, err = p.droopingStyle()
		if err != nil {
			return nil, err
		}
	} else {
		profile := []vmath.Vec2{
			{X: p.BaseRadius, Y: 0},
			{X: p.TipRadius, Y: p.Length},
		}

		var err error
		style, err = geometry.Revolve(profile, p.Segments, p.Color)
		if err != nil {
			return nil, fmt.Errorf("pistil style: %w", err)
		}
	}

	stigma, err := geometry.UVSphere(p.StigmaRadius, 6, p.Segments, p.Color)
	if err != nil {
		return nil, fmt.Errorf("pistil stigma: %w", err)
	}
	stigma.Transform(vmath.Translate(tip.X, tip.Y, tip.Z))

	style.Merge(stigma)

	return style, nil
}

// droopingStyle builds the bent style tube and returns it with the tip
// position for stigma placement.
func (p PistilParams) droopingStyle() (*geometry.Mesh, vmath.Vec3, error) {
	const samples = 8

	// Planar centerline: the lean grows quadratically toward the tip.
	centerline2D := make([]vmath.Vec2, 0, samples)
	for i := 0; i < samples; i++ {
		t := float32(i) / float32(samples-1)
		centerline2D = append(centerline2D, vmath.Vec2{
			X: p.Droop * t * t * p.Length * 0.5,
			Y: t * p.Length,
		})
	}

	centerline, err := curve.Reconstruct3D(centerline2D)
	if err != nil {
		return nil, vmath.Vec3{}, fmt.Errorf("pistil style: %w", err)
	}

	profile := []vmath.Vec2{
		{X: p.BaseRadius, Y: 0},
		{X: p.BaseRadius, Y: 1},
	}

	style, err := geometry.Sweep(profile, centerline, p.Segments, p.Color)
	if err != nil {
		return nil, vmath.Vec3{}, fmt.Errorf("pistil style: %w", err)
	}

	return style, centerline[len(centerline)-1], nil
}
