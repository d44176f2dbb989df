package inflorescence

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/blossom/pkg/curve"
)

// corymbBranchPoints spaces flowers along the axis like a raceme but
// stretches each pedicel so every flower reaches the height of the axis
// top, giving the flat-topped corymb silhouette.
func corymbBranchPoints(params InflorescenceParams, axis *curve.AxisCurve) []BranchPoint {
	branches := make([]BranchPoint, 0, params.BranchCount)

	targetHeight := axis.SampleAt(1).Position.Y

	for i := 0; i < params.BranchCount; i++ {
		t := branchParameter(i, params.BranchCount)
		sample := axis.SampleAt(t)

		angle := lerp(params.AngleBottom, params.AngleTop, t)
		scale := lerp(params.FlowerSizeBottom, params.FlowerSizeTop, t)
		rotation := params.RotationAngle * float32(i)

		direction := branchDirection(sample, angle, rotation)

		// Solve position.y + direction.y * length = targetHeight.
		// Near-horizontal pedicels cannot reach the target, so they
		// fall back to the interpolated length.
		var length float32
		if math32.Abs(direction.Y) > 0.01 {
			length = math32.Max((targetHeight-sample.Position.Y)/direction.Y, 0)
		} else {
			length = lerp(params.BranchLengthBottom, params.BranchLengthTop, t)
		}

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
