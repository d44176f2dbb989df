package inflorescence

import (
	"fmt"

	"github.com/Faultbox/blossom/pkg/curve"
	"github.com/Faultbox/blossom/pkg/geometry"
	"github.com/Faultbox/blossom/pkg/vmath"
)

// Stem geometry constants shared by the simple and compound assemblers.
const (
	stemRadius        = 0.05
	stemSegments      = 8
	pedicelSegments   = 6
	curvedAxisPoints  = 8
	curvedStemPoints  = 6
	minCurveAmount    = 0.01
	minPedicelLength  = 0.01
	compoundStemScale = 0.5
)

// Assemble builds a complete inflorescence mesh: the main stem, a
// pedicel per branch point, and a transformed copy of the flower mesh at
// every branch tip.
func Assemble(params InflorescenceParams, flower *geometry.Mesh, stemColor vmath.Vec3) (*geometry.Mesh, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return assemble(params, flower, func(float32) *geometry.Mesh { return flower }, stemColor)
}

// AssembleWithAging builds an inflorescence where each branch gets the
// bud, bloom, or wilt mesh matching its age. Compound patterns place the
// bloom mesh everywhere.
func AssembleWithAging(params InflorescenceParams, aging FlowerAging, stemColor vmath.Vec3) (*geometry.Mesh, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return assemble(params, aging.Bloom, aging.SelectMesh, stemColor)
}

func assemble(params InflorescenceParams, compoundFlower *geometry.Mesh, flowerFor func(float32) *geometry.Mesh, stemColor vmath.Vec3) (*geometry.Mesh, error) {
	// Compound patterns recurse and build their mesh directly.
	switch params.Pattern {
	case CompoundRaceme:
		return compoundRaceme(params, compoundFlower, stemColor)
	case CompoundUmbel:
		return compoundUmbel(params, compoundFlower, stemColor)
	}

	axisPts := axisPoints(params)
	axis, err := curve.NewAxisCurve(axisPts)
	if err != nil {
		return nil, fmt.Errorf("inflorescence axis: %w", err)
	}

	branches := branchPoints(params, axis)

	mesh, err := stemAlongAxis(axisPts, stemRadius, stemColor)
	if err != nil {
		return nil, fmt.Errorf("inflorescence stem: %w", err)
	}

	for _, branch := range branches {
		if branch.Length > minPedicelLength {
			pedicel, err := pedicelMesh(branch, params, stemRadius*0.6, stemColor)
			if err != nil {
				return nil, fmt.Errorf("inflorescence pedicel: %w", err)
			}
			mesh.Merge(pedicel)
		}

		flower := flowerFor(branch.Age).Clone()
		flower.Transform(branchTransform(branch))
		mesh.Merge(flower)
	}

	return mesh, nil
}

// branchPoints dispatches to the pattern generator. Compound patterns
// never reach this point.
func branchPoints(params InflorescenceParams, axis *curve.AxisCurve) []BranchPoint {
	switch params.Pattern {
	case Spike:
		return spikeBranchPoints(params, axis)
	case Umbel:
		return umbelBranchPoints(params, axis)
	case Corymb:
		return corymbBranchPoints(params, axis)
	case Dichasium:
		return dichasiumBranchPoints(params, axis)
	case Drepanium:
		return drepaniumBranchPoints(params, axis)
	default:
		return racemeBranchPoints(params, axis)
	}
}

// branchTransform scales a flower, rotates its +Y axis onto the branch
// direction, and moves it to the branch tip.
func branchTransform(branch BranchPoint) vmath.Mat4 {
	return vmath.FromScaleRotationTranslation(
		vmath.Splat3(branch.FlowerScale),
		vmath.QuatFromRotationArc(vmath.Vec3{Y: 1}, branch.Direction),
		branch.Position,
	)
}

// curvedPoints traces a quadratic Bezier from start to end whose control
// point sits at the midpoint, offset along direction. The offset grows
// with both the curve amount and the span length. Negligible curvature
// collapses to a two-point straight line.
func curvedPoints(start, end vmath.Vec3, amount float32, direction vmath.Vec3, count int) []vmath.Vec3 {
	if amount < minCurveAmount {
		return []vmath.Vec3{start, end}
	}

	midpoint := start.Add(end).Scale(0.5)
	offset := amount * end.Sub(start).Length() * 0.5
	control := midpoint.Add(direction.Normalize().Scale(offset))

	points := make([]vmath.Vec3, 0, count)
	for i := 0; i < count; i++ {
		t := float32(i) / float32(count-1)
		omt := 1 - t

		point := start.Scale(omt * omt).
			Add(control.Scale(2 * omt * t)).
			Add(end.Scale(t * t))
		points = append(points, point)
	}

	return points
}

// axisPoints returns the main axis control points from the origin to the
// axis top, curved when the params ask for it.
func axisPoints(params InflorescenceParams) []vmath.Vec3 {
	count := 2
	if params.AxisCurveAmount > minCurveAmount {
		count = curvedAxisPoints
	}

	return curvedPoints(
		vmath.Vec3{},
		vmath.Vec3{Y: params.AxisLength},
		params.AxisCurveAmount,
		params.AxisCurveDirection,
		count,
	)
}

// stemAlongAxis sweeps a cylindrical profile along the axis points.
func stemAlongAxis(axisPts []vmath.Vec3, radius float32, color vmath.Vec3) (*geometry.Mesh, error) {
	profile := []vmath.Vec2{
		{X: radius, Y: 0},
		{X: radius, Y: 1},
	}
	return geometry.Sweep(profile, axisPts, stemSegments, color)
}

// pedicelMesh sweeps a thin stem from the axis attachment point to the
// flower position, curved per the branch curve settings.
func pedicelMesh(branch BranchPoint, params InflorescenceParams, radius float32, color vmath.Vec3) (*geometry.Mesh, error) {
	base := branch.Position.Sub(branch.Direction.Scale(branch.Length))

	amount := effectiveCurveAmount(params, branch.Age)

	count := 2
	if amount > minCurveAmount {
		count = curvedStemPoints
	}
	points := curvedPoints(base, branch.Position, amount, pedicelCurveDirection(branch.Direction), count)

	profile := []vmath.Vec2{
		{X: radius, Y: 0},
		{X: radius, Y: 1},
	}
	return geometry.Sweep(profile, points, pedicelSegments, color)
}

// effectiveCurveAmount scales the pedicel curvature by branch position
// when a gradient mode is set. Age stands in for the axis position: the
// indeterminate patterns assign age 1 at the bottom and 0 at the top.
func effectiveCurveAmount(params InflorescenceParams, age float32) float32 {
	positionOnAxis := 1 - age

	switch params.BranchCurveMode {
	case CurveGradientUp:
		return params.BranchCurveAmount * positionOnAxis * positionOnAxis
	case CurveGradientDown:
		bottomEmphasis := 1 - positionOnAxis
		return params.BranchCurveAmount * bottomEmphasis * bottomEmphasis
	default:
		return params.BranchCurveAmount
	}
}

// pedicelCurveDirection picks a droop direction perpendicular to the
// branch in the horizontal plane, pulled downward. Vertical branches
// fall back to +X.
func pedicelCurveDirection(branchDir vmath.Vec3) vmath.Vec3 {
	dir := branchDir.Normalize()

	horizontal := dir.Cross(vmath.Vec3{Y: 1})
	if horizontal.Length() > 0.1 {
		horizontal = horizontal.Normalize()
	} else {
		horizontal = vmath.Vec3{X: 1}
	}

	return horizontal.Add(vmath.Vec3{Y: -0.5}).Normalize()
}
