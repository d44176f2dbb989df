// Package diagram defines the floral diagram, the 2D arrangement plan
// for a single flower, and assembles complete flower meshes from it.
// A diagram lists concentric whorls of parts; each whorl is mapped onto
// the receptacle surface and populated with component instances.
package diagram

import (
	"math"

	"github.com/Faultbox/blossom/pkg/curve"
)

// ArrangementPattern selects how components are distributed around a
// whorl.
type ArrangementPattern string

const (
	// EvenlySpaced distributes components at equal angular steps.
	EvenlySpaced ArrangementPattern = "evenly-spaced"

	// GoldenSpiral steps by the golden angle, producing natural
	// phyllotaxis for dense whorls.
	GoldenSpiral ArrangementPattern = "golden-spiral"

	// CustomOffset steps by the whorl's CustomOffset angle.
	CustomOffset ArrangementPattern = "custom-offset"
)

// ComponentWhorl is one concentric ring of similar components.
type ComponentWhorl struct {
	// Count is the number of components in the whorl.
	Count int

	// Radius is the radial distance from the flower center.
	Radius float32

	// Height is where the whorl attaches on the receptacle, 0 at the
	// bottom and 1 at the top.
	Height float32

	// Pattern is the angular arrangement.
	Pattern ArrangementPattern

	// RotationOffset rotates the whole whorl, in radians.
	RotationOffset float32

	// CustomOffset is the per-component angular step used by the
	// CustomOffset pattern, in radians.
	CustomOffset float32

	// TiltAngle leans tiltable components away from vertical, in
	// radians. Zero keeps stamens and pistils upright.
	TiltAngle float32
}

// Angles returns the angular position of every component in the whorl,
// in radians.
func (w ComponentWhorl) Angles() []float32 {
	switch w.Pattern {
	case GoldenSpiral:
		angles := curve.GoldenSpiral(w.Count)
		for i := range angles {
			angles[i] += w.RotationOffset
		}
		return angles
	case CustomOffset:
		angles := make([]float32, 0, w.Count)
		for i := 0; i < w.Count; i++ {
			angles = append(angles, w.RotationOffset+float32(i)*w.CustomOffset)
		}
		return angles
	default:
		return curve.EvenlySpaced(w.Count, w.RotationOffset)
	}
}

// FloralDiagram is the complete arrangement plan for one flower.
type FloralDiagram struct {
	// ReceptacleHeight is the height of the flower base.
	ReceptacleHeight float32

	// ReceptacleRadius is the base radius of the flower base.
	ReceptacleRadius float32

	// PetalWhorls holds the petal ring(s).
	PetalWhorls []ComponentWhorl

	// StamenWhorls holds the stamen ring(s).
	StamenWhorls []ComponentWhorl

	// PistilWhorls holds the pistil ring(s), usually a single center
	// pistil.
	PistilWhorls []ComponentWhorl

	// SepalWhorls holds the outer protective ring(s), often empty.
	SepalWhorls []ComponentWhorl

	// PositionJitter randomizes each component's radius by up to this
	// amount. Zero disables it.
	PositionJitter float32

	// AngleJitter randomizes each component's angle by up to this many
	// degrees. Zero disables it.
	AngleJitter float32

	// SizeJitter randomizes each component's scale by up to this
	// fraction. Zero disables it.
	SizeJitter float32

	// JitterSeed makes the jitter deterministic for a given diagram.
	JitterSeed uint64
}

// LilyDiagram returns six petals alternating with six stamens around a
// single central pistil.
func LilyDiagram() FloralDiagram {
	return FloralDiagram{
		ReceptacleHeight: 1.0,
		ReceptacleRadius: 0.3,
		PetalWhorls: []ComponentWhorl{{
			Count:   6,
			Radius:  1.0,
			Height:  0.8,
			Pattern: EvenlySpaced,
		}},
		StamenWhorls: []ComponentWhorl{{
			Count:          6,
			Radius:         0.6,
			Height:         0.6,
			Pattern:        EvenlySpaced,
			RotationOffset: math.Pi / 6,
		}},
		PistilWhorls: []ComponentWhorl{{
			Count:   1,
			Radius:  0,
			Height:  0.5,
			Pattern: EvenlySpaced,
		}},
	}
}

// FivePetalDiagram returns a rose-like plan: five petals, ten stamens
// in two offset whorls, one central pistil.
func FivePetalDiagram() FloralDiagram {
	return FloralDiagram{
		ReceptacleHeight: 0.8,
		ReceptacleRadius: 0.4,
		PetalWhorls: []ComponentWhorl{{
			Count:   5,
			Radius:  1.2,
			Height:  0.6,
			Pattern: EvenlySpaced,
		}},
		StamenWhorls: []ComponentWhorl{
			{
				Count:   5,
				Radius:  0.7,
				Height:  0.5,
				Pattern: EvenlySpaced,
			},
			{
				Count:          5,
				Radius:         0.5,
				Height:         0.4,
				Pattern:        EvenlySpaced,
				RotationOffset: math.Pi / 5,
			},
		},
		PistilWhorls: []ComponentWhorl{{
			Count:   1,
			Radius:  0,
			Height:  0.3,
			Pattern: EvenlySpaced,
		}},
	}
}

// DaisyDiagram returns a dense spiral plan: many petals, stamens, and
// pistils arranged by the golden angle.
func DaisyDiagram() FloralDiagram {
	return FloralDiagram{
		ReceptacleHeight: 0.5,
		ReceptacleRadius: 0.8,
		PetalWhorls: []ComponentWhorl{{
			Count:   21,
			Radius:  1.5,
			Height:  0.4,
			Pattern: GoldenSpiral,
		}},
		StamenWhorls: []ComponentWhorl{{
			Count:          34,
			Radius:         0.7,
			Height:         0.3,
			Pattern:        GoldenSpiral,
			RotationOffset: 0.5,
		}},
		PistilWhorls: []ComponentWhorl{{
			Count:          13,
			Radius:         0.4,
			Height:         0.2,
			Pattern:        GoldenSpiral,
			RotationOffset: 1.0,
		}},
	}
}

// FourPetalDiagram returns a cross-shaped plan of four petals with four
// alternating stamens and a central pistil.
func FourPetalDiagram() FloralDiagram {
	return FloralDiagram{
		ReceptacleHeight: 0.6,
		ReceptacleRadius: 0.3,
		PetalWhorls: []ComponentWhorl{{
			Count:          4,
			Radius:         1.0,
			Height:         0.5,
			Pattern:        EvenlySpaced,
			RotationOffset: math.Pi / 4,
		}},
		StamenWhorls: []ComponentWhorl{{
			Count:   4,
			Radius:  0.5,
			Height:  0.4,
			Pattern: EvenlySpaced,
		}},
		PistilWhorls: []ComponentWhorl{{
			Count:   1,
			Radius:  0,
			Height:  0.3,
			Pattern: EvenlySpaced,
		}},
	}
}

// TotalPetalCount sums the petals across all whorls.
func (d FloralDiagram) TotalPetalCount() int {
	return whorlTotal(d.PetalWhorls)
}

// TotalStamenCount sums the stamens across all whorls.
func (d FloralDiagram) TotalStamenCount() int {
	return whorlTotal(d.StamenWhorls)
}

// TotalPistilCount sums the pistils across all whorls.
func (d FloralDiagram) TotalPistilCount() int {
	return whorlTotal(d.PistilWhorls)
}

// TotalSepalCount sums the sepals across all whorls.
func (d FloralDiagram) TotalSepalCount() int {
	return whorlTotal(d.SepalWhorls)
}

func whorlTotal(whorls []ComponentWhorl) int {
	total := 0
	for _, w := range whorls {
		total += w.Count
	}
	return total
}
