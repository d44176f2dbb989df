package curve

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/blossom/pkg/vmath"
)

// AxisSample is a point on an axis curve with its local frame.
type AxisSample struct {
	Position vmath.Vec3
	Tangent  vmath.Vec3
	Normal   vmath.Vec3
	Binormal vmath.Vec3
}

// AxisCurve is a polyline parameterized by arc length. Sampling returns
// the interpolated position together with a re-orthogonalized
// tangent/normal/binormal frame.
type AxisCurve struct {
	points      []vmath.Vec3
	arcLengths  []float32
	totalLength float32
}

// ArcLengths returns cumulative arc lengths for a point sequence;
// element i is the distance along the polyline from the start to point i.
func ArcLengths(points []vmath.Vec3) []float32 {
	lengths := make([]float32, 1, len(points))

	for i := 1; i < len(points); i++ {
		segment := points[i].Sub(points[i-1]).Length()
		lengths = append(lengths, lengths[i-1]+segment)
	}

	return lengths
}

// NewAxisCurve creates an axis curve from at least 2 points.
func NewAxisCurve(points []vmath.Vec3) (*AxisCurve, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("axis curve: need at least 2 points, got %d", len(points))
	}

	arcLengths := ArcLengths(points)
	return &AxisCurve{
		points:      points,
		arcLengths:  arcLengths,
		totalLength: arcLengths[len(arcLengths)-1],
	}, nil
}

// Length returns the total arc length.
func (c *AxisCurve) Length() float32 {
	return c.totalLength
}

// SampleAt samples the curve at normalized parameter t in [0,1].
// Values outside the range are clamped.
func (c *AxisCurve) SampleAt(t float32) AxisSample {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return c.sampleAtArcLength(t * c.totalLength)
}

func (c *AxisCurve) sampleAtArcLength(targetLength float32) AxisSample {
	n := len(c.points)

	idx := 0
	for idx < n-1 && c.arcLengths[idx+1] < targetLength {
		idx++
	}
	if idx >= n-1 {
		idx = n - 2
	}

	segmentStart := c.arcLengths[idx]
	segmentLength := c.arcLengths[idx+1] - segmentStart

	var localT float32
	if segmentLength > 1e-6 {
		localT = (targetLength - segmentStart) / segmentLength
	}

	position := c.points[idx].Lerp(c.points[idx+1], localT)

	tangent := c.tangentAtIndex(idx).Normalize()
	normal := c.normalAtIndex(idx, tangent).Normalize()
	binormal := tangent.Cross(normal).Normalize()

	// Re-orthogonalize so the frame is exactly orthonormal.
	normal = binormal.Cross(tangent).Normalize()

	return AxisSample{
		Position: position,
		Tangent:  tangent,
		Normal:   normal,
		Binormal: binormal,
	}
}

// SampleUniform returns count samples evenly spaced by arc length.
func (c *AxisCurve) SampleUniform(count int) []AxisSample {
	if count <= 1 {
		return []AxisSample{c.SampleAt(0)}
	}

	samples := make([]AxisSample, 0, count)
	for i := 0; i < count; i++ {
		t := float32(i) / float32(count-1)
		samples = append(samples, c.SampleAt(t))
	}
	return samples
}

func (c *AxisCurve) tangentAtIndex(idx int) vmath.Vec3 {
	n := len(c.points)

	var d vmath.Vec3
	switch {
	case idx > 0 && idx < n-1:
		d = c.points[idx+1].Sub(c.points[idx-1])
	case idx == 0:
		d = c.points[1].Sub(c.points[0])
	default:
		d = c.points[n-1].Sub(c.points[n-2])
	}

	if d.LengthSquared() == 0 {
		return vmath.Vec3{Y: 1}
	}
	return d.Normalize()
}

// normalAtIndex estimates the curvature direction from the discrete
// second derivative, projected perpendicular to the tangent. Straight
// segments fall back to an arbitrary perpendicular.
func (c *AxisCurve) normalAtIndex(idx int, tangent vmath.Vec3) vmath.Vec3 {
	n := len(c.points)

	if n < 3 {
		return arbitraryPerpendicular(tangent)
	}

	var d2p vmath.Vec3
	switch {
	case idx > 0 && idx < n-1:
		d2p = c.points[idx+1].Sub(c.points[idx].Scale(2)).Add(c.points[idx-1])
	case idx == 0:
		d2p = c.points[2].Sub(c.points[1].Scale(2)).Add(c.points[0])
	default:
		d2p = c.points[n-1].Sub(c.points[n-2].Scale(2)).Add(c.points[n-3])
	}

	normal := d2p.Sub(tangent.Scale(d2p.Dot(tangent)))

	if normal.Length() < 1e-4 {
		normal = arbitraryPerpendicular(tangent)
	}

	if normal.LengthSquared() == 0 {
		return vmath.Vec3{X: 1}
	}
	return normal.Normalize()
}

// arbitraryPerpendicular returns a unit vector perpendicular to v.
func arbitraryPerpendicular(v vmath.Vec3) vmath.Vec3 {
	candidate := vmath.Vec3{Y: 1}
	if math32.Abs(v.Y) >= 0.9 {
		candidate = vmath.Vec3{X: 1}
	}

	perpendicular := candidate.Sub(v.Scale(candidate.Dot(v)))
	if perpendicular.LengthSquared() == 0 {
		return vmath.Vec3{X: 1}
	}
	return perpendicular.Normalize()
}
