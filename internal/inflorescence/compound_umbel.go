package inflorescence

import (
	"fmt"

	"github.com/Faultbox/blossom/pkg/curve"
	"github.com/Faultbox/blossom/pkg/geometry"
	"github.com/Faultbox/blossom/pkg/vmath"
)

// compoundUmbel recursively builds an umbel whose rays end in
// scaled-down sub-umbels. Each level shortens the sub-axes and trims the
// ray count slightly.
func compoundUmbel(params InflorescenceParams, flower *geometry.Mesh, stemColor vmath.Vec3) (*geometry.Mesh, error) {
	depth := params.RecursionDepth
	if depth <= 0 {
		depth = 1
	}

	if depth <= 1 {
		simple := params
		simple.Pattern = Umbel
		return assemble(simple, flower, func(float32) *geometry.Mesh { return flower }, stemColor)
	}

	axisPts := axisPoints(params)
	axis, err := curve.NewAxisCurve(axisPts)
	if err != nil {
		return nil, fmt.Errorf("compound umbel axis: %w", err)
	}

	primary := params
	primary.Pattern = Umbel
	rays := umbelBranchPoints(primary, axis)

	mesh, err := stemAlongAxis(axisPts, compoundStemRadius, stemColor)
	if err != nil {
		return nil, fmt.Errorf("compound umbel stem: %w", err)
	}

	for _, ray := range rays {
		if ray.Length > minPedicelLength {
			pedicel, err := pedicelMesh(ray, params, compoundPedicelRadius, stemColor)
			if err != nil {
				return nil, fmt.Errorf("compound umbel pedicel: %w", err)
			}
			mesh.Merge(pedicel)
		}

		sub := params
		sub.AxisLength = params.AxisLength * 0.3
		sub.BranchCount = max(params.BranchCount*3/4, 4)
		sub.BranchLengthTop = params.BranchLengthTop * 0.6
		sub.FlowerSizeTop = params.FlowerSizeTop * 0.7
		sub.RecursionDepth = depth - 1

		subMesh, err := compoundUmbel(sub, flower, stemColor)
		if err != nil {
			return nil, err
		}
		subMesh.Transform(subTransform(ray))
		mesh.Merge(subMesh)
	}

	return mesh, nil
}
