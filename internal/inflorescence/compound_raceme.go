package inflorescence

import (
	"fmt"

	"github.com/Faultbox/blossom/pkg/curve"
	"github.com/Faultbox/blossom/pkg/geometry"
	"github.com/Faultbox/blossom/pkg/vmath"
)

// Compound stem radii. The main axis of a compound inflorescence is
// thicker than a simple one; sub-axes shrink with the child transform.
const (
	compoundStemRadius    = 0.08
	compoundPedicelRadius = 0.05
)

// compoundRaceme recursively builds a raceme whose flowers are replaced
// by scaled-down sub-racemes. Each level shortens the axis, halves the
// branch count, and shrinks pedicels and flowers.
func compoundRaceme(params InflorescenceParams, flower *geometry.Mesh, stemColor vmath.Vec3) (*geometry.Mesh, error) {
	depth := params.RecursionDepth
	if depth <= 0 {
		depth = 1
	}

	if depth <= 1 {
		simple := params
		simple.Pattern = Raceme
		return assemble(simple, flower, func(float32) *geometry.Mesh { return flower }, stemColor)
	}

	axisPts := []vmath.Vec3{{}, {Y: params.AxisLength}}
	axis, err := curve.NewAxisCurve(axisPts)
	if err != nil {
		return nil, fmt.Errorf("compound raceme axis: %w", err)
	}

	primary := params
	primary.Pattern = Raceme
	branches := racemeBranchPoints(primary, axis)

	mesh, err := stemAlongAxis(axisPts, compoundStemRadius, stemColor)
	if err != nil {
		return nil, fmt.Errorf("compound raceme stem: %w", err)
	}

	for _, branch := range branches {
		if branch.Length > minPedicelLength {
			pedicel, err := pedicelMesh(branch, params, compoundPedicelRadius, stemColor)
			if err != nil {
				return nil, fmt.Errorf("compound raceme pedicel: %w", err)
			}
			mesh.Merge(pedicel)
		}

		sub := params
		sub.AxisLength = params.AxisLength * 0.4
		sub.BranchCount = max(params.BranchCount/2, 3)
		sub.BranchLengthTop = params.BranchLengthTop * 0.6
		sub.BranchLengthBottom = params.BranchLengthBottom * 0.6
		sub.FlowerSizeTop = params.FlowerSizeTop * 0.7
		sub.FlowerSizeBottom = params.FlowerSizeBottom * 0.7
		sub.RecursionDepth = depth - 1

		subMesh, err := compoundRaceme(sub, flower, stemColor)
		if err != nil {
			return nil, err
		}
		subMesh.Transform(subTransform(branch))
		mesh.Merge(subMesh)
	}

	return mesh, nil
}

// subTransform places a sub-inflorescence at a branch tip, aligned with
// the branch direction and shrunk by the compound scale.
func subTransform(branch BranchPoint) vmath.Mat4 {
	return vmath.FromScaleRotationTranslation(
		vmath.Splat3(compoundStemScale),
		vmath.QuatFromRotationArc(vmath.Vec3{Y: 1}, branch.Direction),
		branch.Position,
	)
}
