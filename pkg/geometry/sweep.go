package geometry

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/blossom/pkg/vmath"
)

// Sweep extrudes a circular cross-section along a 3D curve.
//
// The profile is a list of (radius, offset) pairs; at every curve sample
// each profile point becomes a ring of vertices in the plane
// perpendicular to the local tangent. Normals point radially outward
// from the curve, so no recomputation pass is needed.
func Sweep(profile []vmath.Vec2, curve []vmath.Vec3, segments int, color vmath.Vec3) (*Mesh, error) {
	if len(profile) == 0 {
		return nil, fmt.Errorf("sweep: profile cannot be empty")
	}
	if len(curve) < 2 {
		return nil, fmt.Errorf("sweep: curve must have at least 2 points, got %d", len(curve))
	}
	if segments < 3 {
		return nil, fmt.Errorf("sweep: need at least 3 segments, got %d", segments)
	}

	numProfile := len(profile)
	numCurve := len(curve)

	mesh := NewMesh()
	tangents := curveTangents(curve)

	for curveIdx, curvePoint := range curve {
		right, up := orthonormalFrame(tangents[curveIdx])
		curveT := float32(curveIdx) / float32(numCurve-1)

		for _, profilePoint := range profile {
			radius := profilePoint.X

			for segIdx := 0; segIdx < segments; segIdx++ {
				angle := float32(segIdx) * 2 * math32.Pi / float32(segments)
				cosA := math32.Cos(angle)
				sinA := math32.Sin(angle)

				local := right.Scale(radius * cosA).Add(up.Scale(radius * sinA))
				position := curvePoint.Add(local)
				normal := right.Scale(cosA).Add(up.Scale(sinA)).Normalize()

				uv := vmath.Vec2{
					X: float32(segIdx) / float32(segments),
					Y: curveT,
				}
				mesh.AddVertex(position, normal, uv, color)
			}
		}
	}

	for curveIdx := 0; curveIdx < numCurve-1; curveIdx++ {
		for profileIdx := 0; profileIdx < numProfile-1; profileIdx++ {
			for segIdx := 0; segIdx < segments; segIdx++ {
				nextSeg := (segIdx + 1) % segments

				baseIdx := (curveIdx*numProfile + profileIdx) * segments
				nextCurveBase := ((curveIdx+1)*numProfile + profileIdx) * segments

				i0 := uint32(baseIdx + segIdx)
				i1 := uint32(baseIdx + nextSeg)
				i2 := uint32(nextCurveBase + segIdx)
				i3 := uint32(nextCurveBase + nextSeg)

				mesh.AddTriangle(i0, i2, i1)
				mesh.AddTriangle(i1, i2, i3)
			}
		}
	}

	return mesh, nil
}

// curveTangents computes a unit tangent per curve point using central
// differences for interior points and one-sided differences at the ends.
func curveTangents(curve []vmath.Vec3) []vmath.Vec3 {
	n := len(curve)
	tangents := make([]vmath.Vec3, 0, n)

	for i := 0; i < n; i++ {
		var tangent vmath.Vec3
		switch {
		case i == 0:
			tangent = curve[1].Sub(curve[0]).Normalize()
		case i == n-1:
			tangent = curve[n-1].Sub(curve[n-2]).Normalize()
		default:
			tangent = curve[i+1].Sub(curve[i-1]).Normalize()
		}
		tangents = append(tangents, tangent)
	}

	return tangents
}

// orthonormalFrame returns (right, up) perpendicular to the tangent.
// The reference vector is Y unless the tangent is near-vertical, then X.
func orthonormalFrame(tangent vmath.Vec3) (vmath.Vec3, vmath.Vec3) {
	arbitrary := vmath.Vec3{Y: 1}
	if math32.Abs(tangent.Y) >= 0.9 {
		arbitrary = vmath.Vec3{X: 1}
	}

	right := tangent.Cross(arbitrary).Normalize()
	up := tangent.Cross(right).Normalize()

	return right, up
}
