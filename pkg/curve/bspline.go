package curve

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/blossom/pkg/vmath"
)

// BasisFunction evaluates the i-th B-spline basis function of degree p
// at parameter u using Cox-de Boor recursion. Divisions of 0/0 are
// treated as 0; u equal to the maximum knot evaluates on the closed
// interval of the last valid span.
func BasisFunction(i, p int, u float32, knots []float32) float32 {
	if i+p+1 >= len(knots) {
		return 0
	}

	if p == 0 {
		if math32.Abs(knots[i+1]-knots[i]) < 1e-10 {
			// Degenerate interval.
			return 0
		}

		if u >= knots[i] && u < knots[i+1] {
			return 1
		}

		maxKnot := knots[len(knots)-1]
		if math32.Abs(u-maxKnot) < 1e-10 && math32.Abs(knots[i+1]-maxKnot) < 1e-10 {
			if u >= knots[i] && u <= knots[i+1] {
				return 1
			}
		}

		return 0
	}

	var left float32
	leftDenom := knots[i+p] - knots[i]
	if math32.Abs(leftDenom) >= 1e-10 {
		left = (u - knots[i]) / leftDenom * BasisFunction(i, p-1, u, knots)
	}

	var right float32
	rightDenom := knots[i+p+1] - knots[i+1]
	if math32.Abs(rightDenom) >= 1e-10 {
		right = (knots[i+p+1] - u) / rightDenom * BasisFunction(i+1, p-1, u, knots)
	}

	return left + right
}

// GenerateKnotVector builds an open knot vector for n control points of
// degree p: the first and last p+1 knots are clamped to 0 and 1 so the
// curve interpolates the end control points. With uniform set, interior
// knots are evenly spaced.
func GenerateKnotVector(n, p int, uniform bool) []float32 {
	m := n + p + 1
	knots := make([]float32, m)

	if uniform && n > p {
		for i := p + 1; i < n; i++ {
			knots[i] = float32(i-p) / float32(n-p)
		}
	}

	for i := n; i < m; i++ {
		knots[i] = 1
	}

	return knots
}

// BSplineSurface is a tensor-product B-spline surface over a 2D control
// grid. Rows of the grid run in the u direction, columns in v.
type BSplineSurface struct {
	ControlPoints [][]vmath.Vec3
	DegreeU       int
	DegreeV       int
	KnotsU        []float32
	KnotsV        []float32
}

// NewBSplineSurface builds a surface over the control grid with open
// uniform knot vectors, validating the grid shape and knot lengths so
// evaluation can never divide by garbage.
func NewBSplineSurface(controlPoints [][]vmath.Vec3, degreeU, degreeV int) (*BSplineSurface, error) {
	n := len(controlPoints)
	if n == 0 {
		return nil, fmt.Errorf("bspline surface: control grid is empty")
	}
	m := len(controlPoints[0])
	if m == 0 {
		return nil, fmt.Errorf("bspline surface: control grid has empty rows")
	}
	for i, row := range controlPoints {
		if len(row) != m {
			return nil, fmt.Errorf("bspline surface: row %d has %d points, want %d", i, len(row), m)
		}
	}
	if degreeU < 1 || degreeU >= n {
		return nil, fmt.Errorf("bspline surface: degree u %d invalid for %d rows", degreeU, n)
	}
	if degreeV < 1 || degreeV >= m {
		return nil, fmt.Errorf("bspline surface: degree v %d invalid for %d columns", degreeV, m)
	}

	s := &BSplineSurface{
		ControlPoints: controlPoints,
		DegreeU:       degreeU,
		DegreeV:       degreeV,
		KnotsU:        GenerateKnotVector(n, degreeU, true),
		KnotsV:        GenerateKnotVector(m, degreeV, true),
	}

	if err := validateKnots(s.KnotsU, n, degreeU); err != nil {
		return nil, fmt.Errorf("bspline surface: u knots: %w", err)
	}
	if err := validateKnots(s.KnotsV, m, degreeV); err != nil {
		return nil, fmt.Errorf("bspline surface: v knots: %w", err)
	}

	return s, nil
}

func validateKnots(knots []float32, n, p int) error {
	if len(knots) != n+p+1 {
		return fmt.Errorf("length %d, want %d", len(knots), n+p+1)
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return fmt.Errorf("not monotonic at index %d", i)
		}
	}
	return nil
}

// Evaluate returns the surface point at parameters (u, v) in [0,1].
func (s *BSplineSurface) Evaluate(u, v float32) vmath.Vec3 {
	n := len(s.ControlPoints)
	m := len(s.ControlPoints[0])

	var point vmath.Vec3

	for i := 0; i < n; i++ {
		basisU := BasisFunction(i, s.DegreeU, u, s.KnotsU)
		if math32.Abs(basisU) < 1e-10 {
			continue
		}

		for j := 0; j < m; j++ {
			basisV := BasisFunction(j, s.DegreeV, v, s.KnotsV)
			if math32.Abs(basisV) < 1e-10 {
				continue
			}

			point = point.Add(s.ControlPoints[i][j].Scale(basisU * basisV))
		}
	}

	return point
}

// DerivativeU approximates the partial derivative with respect to u by
// central differences clamped to [0,1].
func (s *BSplineSurface) DerivativeU(u, v float32) vmath.Vec3 {
	const h = 0.001
	uPlus := math32.Min(u+h, 1)
	uMinus := math32.Max(u-h, 0)

	pPlus := s.Evaluate(uPlus, v)
	pMinus := s.Evaluate(uMinus, v)

	return pPlus.Sub(pMinus).Scale(1 / (uPlus - uMinus))
}

// DerivativeV approximates the partial derivative with respect to v by
// central differences clamped to [0,1].
func (s *BSplineSurface) DerivativeV(u, v float32) vmath.Vec3 {
	const h = 0.001
	vPlus := math32.Min(v+h, 1)
	vMinus := math32.Max(v-h, 0)

	pPlus := s.Evaluate(u, vPlus)
	pMinus := s.Evaluate(u, vMinus)

	return pPlus.Sub(pMinus).Scale(1 / (vPlus - vMinus))
}

// Normal returns the unit surface normal at (u, v); degenerate tangent
// crosses fall back to +Y.
func (s *BSplineSurface) Normal(u, v float32) vmath.Vec3 {
	tangentU := s.DerivativeU(u, v)
	tangentV := s.DerivativeV(u, v)

	normal := tangentU.Cross(tangentV)

	length := normal.Length()
	if length > 1e-6 {
		return normal.Scale(1 / length)
	}
	return vmath.Vec3{Y: 1}
}
