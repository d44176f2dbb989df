// Package inflorescence arranges flowers along branching stems. It
// generates branch attachment points for the classic botanical patterns
// (raceme, spike, umbel, corymb, dichasium, drepanium and their compound
// forms) and assembles them with stem geometry into a single mesh.
package inflorescence

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/blossom/pkg/vmath"
)

// PatternType selects the branching pattern of an inflorescence.
type PatternType string

const (
	// Raceme places stalked flowers along the axis, oldest at the bottom.
	Raceme PatternType = "raceme"
	// Spike places stalkless flowers directly on the axis.
	Spike PatternType = "spike"
	// Umbel spreads equal stalks from a single point at the axis top.
	Umbel PatternType = "umbel"
	// Corymb varies stalk lengths so all flowers reach the same height.
	Corymb PatternType = "corymb"
	// Dichasium forks into two branches at every node.
	Dichasium PatternType = "dichasium"
	// Drepanium is a one-sided spiral chain of branches.
	Drepanium PatternType = "drepanium"
	// CompoundRaceme replaces each raceme flower with a sub-raceme.
	CompoundRaceme PatternType = "compound-raceme"
	// CompoundUmbel replaces each umbel ray with a sub-umbel.
	CompoundUmbel PatternType = "compound-umbel"
)

// CurveMode controls how pedicel curvature varies along the axis.
type CurveMode string

const (
	// CurveUniform applies the same curvature to every pedicel.
	CurveUniform CurveMode = "uniform"
	// CurveGradientUp concentrates curvature near the axis top.
	CurveGradientUp CurveMode = "gradient-up"
	// CurveGradientDown concentrates curvature near the axis bottom.
	CurveGradientDown CurveMode = "gradient-down"
)

// maxRecursionDepth bounds compound and cymose recursion. Branch counts
// grow exponentially with depth.
const maxRecursionDepth = 8

// InflorescenceParams describes the shape of an inflorescence. Angle
// fields are in degrees.
type InflorescenceParams struct {
	// Pattern is the branching pattern.
	Pattern PatternType

	// AxisLength is the length of the main axis.
	AxisLength float32

	// BranchCount is the number of branches along the axis.
	BranchCount int

	// AngleTop and AngleBottom are the branch angles from the axis at
	// the top and bottom, interpolated between.
	AngleTop    float32
	AngleBottom float32

	// BranchLengthTop and BranchLengthBottom are the pedicel lengths at
	// the top and bottom, interpolated between.
	BranchLengthTop    float32
	BranchLengthBottom float32

	// RotationAngle is the phyllotactic rotation between successive
	// branches around the axis.
	RotationAngle float32

	// FlowerSizeTop and FlowerSizeBottom are the flower scale factors
	// at the top and bottom, interpolated between.
	FlowerSizeTop    float32
	FlowerSizeBottom float32

	// AgeDistribution multiplies every branch age before clamping to
	// the 0-1 range. Values below 1 shift the whole structure toward
	// buds, values above 1 toward blooms and wilt. Zero means 1.
	AgeDistribution float32

	// AxisCurveAmount bends the main axis, 0 for a straight axis.
	AxisCurveAmount float32

	// AxisCurveDirection is the bend direction of the main axis.
	AxisCurveDirection vmath.Vec3

	// BranchCurveMode selects how pedicel curvature varies along the
	// axis.
	BranchCurveMode CurveMode

	// BranchCurveAmount bends the pedicels, 0 for straight pedicels.
	BranchCurveAmount float32

	// RecursionDepth is the nesting depth of recursive patterns. Zero
	// selects the pattern's own default.
	RecursionDepth int

	// BranchRatio scales branch length at each recursion level. Zero
	// selects the pattern's own default.
	BranchRatio float32

	// AngleDivergence is the fork angle of the dichasium pattern. Zero
	// selects the default.
	AngleDivergence float32
}

// DefaultParams returns a raceme with a lupine-like silhouette.
func DefaultParams() InflorescenceParams {
	return InflorescenceParams{
		Pattern:            Raceme,
		AxisLength:         10.0,
		BranchCount:        12,
		AngleTop:           45.0,
		AngleBottom:        60.0,
		BranchLengthTop:    0.5,
		BranchLengthBottom: 1.5,
		RotationAngle:      137.5,
		FlowerSizeTop:      0.8,
		FlowerSizeBottom:   1.0,
		AgeDistribution:    1.0,
		AxisCurveDirection: vmath.Vec3{X: 1},
		BranchCurveMode:    CurveUniform,
	}
}

// Validate reports whether the parameters can produce a mesh.
func (p InflorescenceParams) Validate() error {
	switch p.Pattern {
	case Raceme, Spike, Umbel, Corymb, Dichasium, Drepanium,
		CompoundRaceme, CompoundUmbel:
	default:
		return fmt.Errorf("inflorescence: unknown pattern %q", p.Pattern)
	}

	if p.AxisLength <= 0 {
		return fmt.Errorf("inflorescence: axis length must be positive, got %v", p.AxisLength)
	}
	if p.BranchCount < 1 {
		return fmt.Errorf("inflorescence: branch count must be at least 1, got %d", p.BranchCount)
	}
	if p.RecursionDepth > maxRecursionDepth {
		return fmt.Errorf("inflorescence: recursion depth %d exceeds limit %d",
			p.RecursionDepth, maxRecursionDepth)
	}

	switch p.BranchCurveMode {
	case "", CurveUniform, CurveGradientUp, CurveGradientDown:
	default:
		return fmt.Errorf("inflorescence: unknown curve mode %q", p.BranchCurveMode)
	}

	return nil
}

// BranchPoint is a flower attachment location on the inflorescence.
type BranchPoint struct {
	// Position is the flower position at the pedicel tip.
	Position vmath.Vec3

	// Direction is the normalized pedicel direction.
	Direction vmath.Vec3

	// Length is the pedicel length, 0 for sessile flowers.
	Length float32

	// FlowerScale is the flower scale factor at this point.
	FlowerScale float32

	// Age is the bloom age in the 0-1 range, 1 for the oldest flowers.
	Age float32
}

// applyAgeDistribution shifts a base age by the distribution multiplier
// and clamps to the valid range. A zero multiplier means no adjustment.
func applyAgeDistribution(base, distribution float32) float32 {
	if distribution == 0 {
		distribution = 1
	}

	age := base * distribution
	if age < 0 {
		return 0
	}
	if age > 1 {
		return 1
	}
	return age
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func radians(degrees float32) float32 {
	return degrees * math32.Pi / 180
}
