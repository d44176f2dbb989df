package inflorescence

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/blossom/pkg/curve"
	"github.com/Faultbox/blossom/pkg/vmath"
)

// Drepanium defaults when the corresponding parameter is zero.
const (
	drepaniumDefaultDepth = 5
	drepaniumDefaultRatio = 0.8
	drepaniumTiltDegrees  = -15.0
)

// drepaniumBranchPoints builds a scorpioid cyme: a single chain of
// branches starting at the axis top, each child rotated around its
// parent by the spiral angle and tilted slightly downward. The pattern
// is determinate: the root flower is the oldest.
func drepaniumBranchPoints(params InflorescenceParams, axis *curve.AxisCurve) []BranchPoint {
	maxDepth := params.RecursionDepth
	if maxDepth <= 0 {
		maxDepth = drepaniumDefaultDepth
	}
	ratio := params.BranchRatio
	if ratio <= 0 {
		ratio = drepaniumDefaultRatio
	}

	sample := axis.SampleAt(1)
	node := branchNode{
		position:  sample.Position,
		direction: sample.Normal,
		length:    params.BranchLengthTop,
	}

	branches := make([]BranchPoint, 0, maxDepth+1)
	for {
		baseAge := float32(1)
		if maxDepth > 0 {
			baseAge = 1 - float32(node.depth)/float32(maxDepth)
		}

		t := float32(node.depth) / float32(max(maxDepth, 1))

		branches = append(branches, BranchPoint{
			Position:    node.position.Add(node.direction.Scale(node.length)),
			Direction:   node.direction,
			Length:      node.length,
			FlowerScale: params.FlowerSizeTop * (1 - t*0.3),
			Age:         baseAge,
		})

		if node.depth >= maxDepth {
			break
		}
		node = nextDrepaniumNode(node, ratio, params.RotationAngle)
	}

	return branches
}

// nextDrepaniumNode spirals the direction around the parent branch and
// tilts it down for a natural droop.
func nextDrepaniumNode(node branchNode, ratio, spiralAngle float32) branchNode {
	branchEnd := node.position.Add(node.direction.Scale(node.length))

	spiral := vmath.QuatFromAxisAngle(node.direction.Normalize(), radians(spiralAngle))

	var perpendicular vmath.Vec3
	if math32.Abs(node.direction.Y) < 0.9 {
		perpendicular = vmath.Vec3{Y: 1}.Cross(node.direction).Normalize()
	} else {
		perpendicular = vmath.Vec3{X: 1}.Cross(node.direction).Normalize()
	}
	tilt := vmath.QuatFromAxisAngle(perpendicular, radians(drepaniumTiltDegrees))

	direction := tilt.RotateVec3(spiral.RotateVec3(node.direction)).Normalize()

	return branchNode{
		position:  branchEnd,
		direction: direction,
		length:    node.length * ratio,
		depth:     node.depth + 1,
	}
}
