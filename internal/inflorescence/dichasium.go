package inflorescence

import (
	"github.com/Faultbox/blossom/pkg/curve"
	"github.com/Faultbox/blossom/pkg/vmath"
)

// Dichasium defaults when the corresponding parameter is zero.
const (
	dichasiumDefaultDepth      = 3
	dichasiumDefaultRatio      = 0.7
	dichasiumDefaultDivergence = 30.0
)

// branchNode is an intermediate node of the recursive cymose patterns.
type branchNode struct {
	position  vmath.Vec3
	direction vmath.Vec3
	length    float32
	depth     int
}

// dichasiumBranchPoints builds a binary tree of branches starting at the
// axis top. Every node forks into two children tilted by the divergence
// angle to either side within a fixed branching plane. The pattern is
// determinate: the root flower is the oldest.
func dichasiumBranchPoints(params InflorescenceParams, axis *curve.AxisCurve) []BranchPoint {
	maxDepth := params.RecursionDepth
	if maxDepth <= 0 {
		maxDepth = dichasiumDefaultDepth
	}
	ratio := params.BranchRatio
	if ratio <= 0 {
		ratio = dichasiumDefaultRatio
	}
	divergence := params.AngleDivergence
	if divergence == 0 {
		divergence = dichasiumDefaultDivergence
	}

	sample := axis.SampleAt(1)
	root := branchNode{
		position:  sample.Position,
		direction: sample.Normal,
		length:    params.BranchLengthTop,
	}

	// The binormal fixes the branching plane for the whole tree.
	nodes := buildDichasium(root, maxDepth, ratio, divergence, sample.Binormal)

	branches := make([]BranchPoint, 0, len(nodes))
	for _, node := range nodes {
		baseAge := float32(1)
		if maxDepth > 0 {
			baseAge = 1 - float32(node.depth)/float32(maxDepth)
		}

		t := float32(node.depth) / float32(max(maxDepth, 1))

		branches = append(branches, BranchPoint{
			Position:    node.position.Add(node.direction.Scale(node.length)),
			Direction:   node.direction,
			Length:      node.length,
			FlowerScale: params.FlowerSizeTop * (1 - t*0.4),
			Age:         applyAgeDistribution(baseAge, params.AgeDistribution),
		})
	}

	return branches
}

// buildDichasium returns the node and its subtree in pre-order.
func buildDichasium(node branchNode, maxDepth int, ratio, divergence float32, branchingAxis vmath.Vec3) []branchNode {
	if node.depth >= maxDepth {
		return []branchNode{node}
	}

	branchEnd := node.position.Add(node.direction.Scale(node.length))

	left := vmath.QuatFromAxisAngle(branchingAxis, radians(divergence)).
		RotateVec3(node.direction).Normalize()
	right := vmath.QuatFromAxisAngle(branchingAxis, -radians(divergence)).
		RotateVec3(node.direction).Normalize()

	nodes := []branchNode{node}
	for _, childDir := range []vmath.Vec3{left, right} {
		child := branchNode{
			position:  branchEnd,
			direction: childDir,
			length:    node.length * ratio,
			depth:     node.depth + 1,
		}
		nodes = append(nodes, buildDichasium(child, maxDepth, ratio, divergence, branchingAxis)...)
	}

	return nodes
}
