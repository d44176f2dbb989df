package geometry

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/blossom/pkg/vmath"
)

// Revolve generates a mesh by revolving a 2D profile around the Y axis.
//
// Each profile point is (radius, height); points are ordered bottom to
// top. Rings with radius near zero collapse to a pole and the adjacent
// strip is fan-triangulated instead of producing degenerate quads.
// UVs map u to the angle fraction and v to the position along the
// profile. Normals are recomputed from the triangulated geometry.
func Revolve(profile []vmath.Vec2, segments int, color vmath.Vec3) (*Mesh, error) {
	if len(profile) == 0 {
		return nil, fmt.Errorf("revolve: profile cannot be empty")
	}
	if segments < 3 {
		return nil, fmt.Errorf("revolve: need at least 3 segments, got %d", segments)
	}

	mesh := NewMesh()
	angleStep := 2 * math32.Pi / float32(segments)

	for ringIdx, point := range profile {
		radius := point.X
		height := point.Y

		var v float32
		if len(profile) > 1 {
			v = float32(ringIdx) / float32(len(profile)-1)
		}

		for seg := 0; seg < segments; seg++ {
			angle := float32(seg) * angleStep
			u := float32(seg) / float32(segments)

			pos := vmath.Vec3{
				X: radius * math32.Cos(angle),
				Y: height,
				Z: radius * math32.Sin(angle),
			}
			mesh.AddVertex(pos, vmath.Vec3{Y: 1}, vmath.Vec2{X: u, Y: v}, color)
		}
	}

	for ringIdx := 0; ringIdx < len(profile)-1; ringIdx++ {
		r0 := profile[ringIdx].X
		r1 := profile[ringIdx+1].X

		isBottomPole := math32.Abs(r0) < 1e-6
		isTopPole := math32.Abs(r1) < 1e-6

		for seg := 0; seg < segments; seg++ {
			nextSeg := (seg + 1) % segments

			i0 := uint32(ringIdx*segments + seg)
			i1 := uint32(ringIdx*segments + nextSeg)
			i2 := uint32((ringIdx+1)*segments + nextSeg)
			i3 := uint32((ringIdx+1)*segments + seg)

			// Winding is reversed (i0, i3, i2, i1) for outward normals.
			switch {
			case isBottomPole && isTopPole:
				// Zero-area quad between two poles.
				continue
			case isBottomPole:
				mesh.AddTriangle(i0, i3, i2)
			case isTopPole:
				mesh.AddTriangle(i0, i2, i1)
			default:
				mesh.AddQuad(i0, i3, i2, i1)
			}
		}
	}

	mesh.RecomputeNormals()

	return mesh, nil
}

// Cylinder creates a cylinder shell of the given radius and height.
func Cylinder(radius, height float32, segments int, color vmath.Vec3) (*Mesh, error) {
	profile := []vmath.Vec2{
		{X: radius, Y: 0},
		{X: radius, Y: height},
	}
	return Revolve(profile, segments, color)
}

// Cone creates a cone with a circular base at y=0 and apex at y=height.
func Cone(radius, height float32, segments int, color vmath.Vec3) (*Mesh, error) {
	profile := []vmath.Vec2{
		{X: radius, Y: 0},
		{X: 0, Y: height},
	}
	return Revolve(profile, segments, color)
}

// UVSphere creates a sphere from a semicircular profile. rings is the
// latitude division count (minimum 2), segments the longitude count.
func UVSphere(radius float32, rings, segments int, color vmath.Vec3) (*Mesh, error) {
	if rings < 2 {
		return nil, fmt.Errorf("uv sphere: need at least 2 rings, got %d", rings)
	}

	profile := make([]vmath.Vec2, 0, rings+1)
	for i := 0; i <= rings; i++ {
		// Semicircle from pole to pole.
		theta := float32(i) / float32(rings) * math32.Pi
		profile = append(profile, vmath.Vec2{
			X: radius * math32.Sin(theta),
			Y: radius * math32.Cos(theta),
		})
	}

	return Revolve(profile, segments, color)
}
