package inflorescence

import (
	"github.com/Faultbox/blossom/pkg/curve"
	"github.com/Faultbox/blossom/pkg/vmath"
)

// racemeBranchPoints spaces stalked flowers evenly along the axis. The
// pattern is indeterminate: the bottom flowers are the oldest, so age
// runs from 1 at the base to 0 at the tip.
func racemeBranchPoints(params InflorescenceParams, axis *curve.AxisCurve) []BranchPoint {
	branches := make([]BranchPoint, 0, params.BranchCount)

	for i := 0; i < params.BranchCount; i++ {
		t := branchParameter(i, params.BranchCount)
		sample := axis.SampleAt(t)

		angle := lerp(params.AngleBottom, params.AngleTop, t)
		length := lerp(params.BranchLengthBottom, params.BranchLengthTop, t)
		scale := lerp(params.FlowerSizeBottom, params.FlowerSizeTop, t)
		rotation := params.RotationAngle * float32(i)

		direction := branchDirection(sample, angle, rotation)
		position := sample.Position.Add(direction.Scale(length))

		branches = append(branches, BranchPoint{
			Position:    position,
			Direction:   direction,
			Length:      length,
			FlowerScale: scale,
			Age:         applyAgeDistribution(1-t, params.AgeDistribution),
		})
	}

	return branches
}

// branchParameter maps branch index i of n to the 0-1 axis parameter.
// A single branch sits at the axis midpoint.
func branchParameter(i, n int) float32 {
	if n <= 1 {
		return 0.5
	}
	return float32(i) / float32(n-1)
}

// branchDirection tilts the axis frame normal down by the branch angle
// around the binormal, then spirals it around the tangent. Both angles
// are in degrees.
func branchDirection(sample curve.AxisSample, angle, rotation float32) vmath.Vec3 {
	down := vmath.QuatFromAxisAngle(sample.Binormal, -radians(angle))
	spiral := vmath.QuatFromAxisAngle(sample.Tangent, radians(rotation))
	return spiral.RotateVec3(down.RotateVec3(sample.Normal)).Normalize()
}
