package curve

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/blossom/pkg/vmath"
)

// ResampleUniformY resamples a 2D curve so that Y values are evenly
// spaced, interpolating X linearly. Input points must be sorted by Y.
func ResampleUniformY(points []vmath.Vec2, n int) ([]vmath.Vec2, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("resample: need at least 2 points, got %d", len(points))
	}
	if n < 2 {
		return nil, fmt.Errorf("resample: need at least 2 samples, got %d", n)
	}

	yMin := points[0].Y
	yMax := points[len(points)-1].Y
	dy := (yMax - yMin) / float32(n-1)

	resampled := make([]vmath.Vec2, 0, n)

	for i := 0; i < n; i++ {
		targetY := yMin + float32(i)*dy

		idx := 0
		for idx < len(points)-1 && points[idx+1].Y < targetY {
			idx++
		}

		if idx < len(points)-1 {
			p0 := points[idx]
			p1 := points[idx+1]
			span := p1.Y - p0.Y
			if span < 1e-6 {
				span = 1e-6
			}
			t := (targetY - p0.Y) / span
			resampled = append(resampled, vmath.Vec2{X: p0.X + t*(p1.X-p0.X), Y: targetY})
		} else {
			resampled = append(resampled, points[len(points)-1])
		}
	}

	return resampled, nil
}

// SecondDerivativesX computes d2x/dy2 by finite differences over a
// uniform Y grid: one-sided at the ends, central in the interior.
func SecondDerivativesX(points []vmath.Vec2) ([]float32, error) {
	n := len(points)
	if n < 3 {
		return nil, fmt.Errorf("second derivatives: need at least 3 points, got %d", n)
	}

	dy := math32.Abs(points[1].Y - points[0].Y)
	if dy < 1e-6 {
		dy = 1e-6
	}
	dy2 := dy * dy

	d2x := make([]float32, 0, n)
	d2x = append(d2x, (points[2].X-2*points[1].X+points[0].X)/dy2)

	for i := 1; i < n-1; i++ {
		d2x = append(d2x, (points[i+1].X-2*points[i].X+points[i-1].X)/dy2)
	}

	d2x = append(d2x, (points[n-1].X-2*points[n-2].X+points[n-3].X)/dy2)

	return d2x, nil
}

// IntegrateTwice integrates a second-derivative sequence twice with the
// trapezoidal rule, starting from zero value and zero slope.
func IntegrateTwice(secondDerivatives []float32) []float32 {
	n := len(secondDerivatives)
	if n == 0 {
		return nil
	}

	first := make([]float32, 1, n)
	for i := 1; i < n; i++ {
		avg := (secondDerivatives[i] + secondDerivatives[i-1]) / 2
		first = append(first, first[i-1]+avg)
	}

	second := make([]float32, 1, n)
	for i := 1; i < n; i++ {
		avg := (first[i] + first[i-1]) / 2
		second = append(second, second[i-1]+avg)
	}

	return second
}

// applyDepthSigns flips the sign of the depth second derivatives each
// time the lateral second derivative crosses zero, so the lifted curve
// spirals instead of folding back on itself.
func applyDepthSigns(points2D []vmath.Vec2, dz2 []float32) error {
	dx2, err := SecondDerivativesX(points2D)
	if err != nil {
		return err
	}

	sign := float32(1)
	for i := 1; i < len(dz2); i++ {
		if dx2[i]*dx2[i-1] < 0 {
			sign = -sign
		}
		dz2[i] *= sign
	}
	return nil
}

// Reconstruct3D lifts a 2D (lateral, vertical) curve into 3D under a
// constant-curvature constraint: the lateral and depth second
// derivatives satisfy dx2^2 + dz2^2 = k^2 where k is the maximum
// lateral curvature. Straight input stays straight.
func Reconstruct3D(points2D []vmath.Vec2) ([]vmath.Vec3, error) {
	if len(points2D) < 3 {
		return nil, fmt.Errorf("reconstruct: need at least 3 points, got %d", len(points2D))
	}

	uniform, err := ResampleUniformY(points2D, len(points2D))
	if err != nil {
		return nil, err
	}

	dx2, err := SecondDerivativesX(uniform)
	if err != nil {
		return nil, err
	}

	maxCurvature := float32(1e-6)
	for _, v := range dx2 {
		if a := math32.Abs(v); a > maxCurvature {
			maxCurvature = a
		}
	}

	dz2 := make([]float32, 0, len(dx2))
	for _, v := range dx2 {
		rem := maxCurvature*maxCurvature - v*v
		if rem > 0 {
			dz2 = append(dz2, math32.Sqrt(rem))
		} else {
			dz2 = append(dz2, 0)
		}
	}

	if err := applyDepthSigns(uniform, dz2); err != nil {
		return nil, err
	}

	zValues := IntegrateTwice(dz2)

	out := make([]vmath.Vec3, 0, len(uniform))
	for i, p := range uniform {
		out = append(out, vmath.Vec3{X: p.X, Y: p.Y, Z: zValues[i]})
	}
	return out, nil
}
