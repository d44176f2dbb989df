package inflorescence

import (
	"github.com/Faultbox/blossom/pkg/curve"
)

// umbelBranchPoints spreads equal pedicels from the top of the axis in
// an umbrella shape. The pattern is determinate: every flower has age 1
// and blooms together.
func umbelBranchPoints(params InflorescenceParams, axis *curve.AxisCurve) []BranchPoint {
	branches := make([]BranchPoint, 0, params.BranchCount)

	sample := axis.SampleAt(1)
	age := applyAgeDistribution(1, params.AgeDistribution)

	for i := 0; i < params.BranchCount; i++ {
		rotation := params.RotationAngle * float32(i)
		direction := branchDirection(sample, params.AngleTop, rotation)
		position := sample.Position.Add(direction.Scale(params.BranchLengthTop))

		branches = append(branches, BranchPoint{
			Position:    position,
			Direction:   direction,
			Length:      params.BranchLengthTop,
			FlowerScale: params.FlowerSizeTop,
			Age:         age,
		})
	}

	return branches
}
