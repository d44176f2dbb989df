package inflorescence

import (
	"github.com/Faultbox/blossom/pkg/curve"
)

// spikeBranchPoints places sessile flowers directly on the axis. Like
// the raceme, age runs from 1 at the base to 0 at the tip; unlike the
// raceme, pedicel length is 0 and flowers sit on the axis itself.
func spikeBranchPoints(params InflorescenceParams, axis *curve.AxisCurve) []BranchPoint {
	branches := make([]BranchPoint, 0, params.BranchCount)

	for i := 0; i < params.BranchCount; i++ {
		t := branchParameter(i, params.BranchCount)
		sample := axis.SampleAt(t)

		angle := lerp(params.AngleBottom, params.AngleTop, t)
		scale := lerp(params.FlowerSizeBottom, params.FlowerSizeTop, t)
		rotation := params.RotationAngle * float32(i)

		// Direction still controls flower orientation even though the
		// flower attaches at the axis.
		direction := branchDirection(sample, angle, rotation)

		branches = append(branches, BranchPoint{
			Position:    sample.Position,
			Direction:   direction,
			Length:      0,
			FlowerScale: scale,
			Age:         applyAgeDistribution(1-t, params.AgeDistribution),
		})
	}

	return branches
}
