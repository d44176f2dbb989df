package curve

import (
	"fmt"

	"github.com/Faultbox/blossom/pkg/vmath"
)

// CatmullRomPoint evaluates a uniform Catmull-Rom segment (tension 0.5)
// at t in [0,1]. The segment runs from p1 to p2; p0 and p3 shape the
// tangents at the ends.
func CatmullRomPoint(p0, p1, p2, p3 vmath.Vec3, t float32) vmath.Vec3 {
	t2 := t * t
	t3 := t2 * t

	b0 := -t + 2*t2 - t3
	b1 := 2 - 5*t2 + 3*t3
	b2 := t + 4*t2 - 3*t3
	b3 := -t2 + t3

	return p0.Scale(b0).Add(p1.Scale(b1)).Add(p2.Scale(b2)).Add(p3.Scale(b3)).Scale(0.5)
}

// CatmullRomTangent evaluates the derivative of a Catmull-Rom segment
// at t in [0,1]. The result is not normalized.
func CatmullRomTangent(p0, p1, p2, p3 vmath.Vec3, t float32) vmath.Vec3 {
	t2 := t * t

	b0 := -1 + 4*t - 3*t2
	b1 := -10*t + 9*t2
	b2 := 1 + 8*t - 9*t2
	b3 := -2*t + 3*t2

	return p0.Scale(b0).Add(p1.Scale(b1)).Add(p2.Scale(b2)).Add(p3.Scale(b3)).Scale(0.5)
}

// SampleCatmullRom samples a Catmull-Rom spline through the interior
// control points. The first and last points only shape the end tangents;
// the curve runs from points[1] to points[len-2].
func SampleCatmullRom(points []vmath.Vec3, samplesPerSegment int) ([]vmath.Vec3, error) {
	if len(points) < 4 {
		return nil, fmt.Errorf("catmull-rom: need at least 4 control points, got %d", len(points))
	}
	if samplesPerSegment < 2 {
		return nil, fmt.Errorf("catmull-rom: need at least 2 samples per segment, got %d", samplesPerSegment)
	}

	numSegments := len(points) - 3
	out := make([]vmath.Vec3, 0, numSegments*samplesPerSegment+1)

	for segIdx := 0; segIdx < numSegments; segIdx++ {
		p0 := points[segIdx]
		p1 := points[segIdx+1]
		p2 := points[segIdx+2]
		p3 := points[segIdx+3]

		for i := 0; i < samplesPerSegment; i++ {
			t := float32(i) / float32(samplesPerSegment)
			out = append(out, CatmullRomPoint(p0, p1, p2, p3, t))
		}
	}

	// Close the curve at the last interior point.
	out = append(out, points[len(points)-2])

	return out, nil
}
