package diagram

import (
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/Faultbox/blossom/internal/components"
	"github.com/Faultbox/blossom/pkg/curve"
	"github.com/Faultbox/blossom/pkg/vmath"
)

// ComponentType identifies which flower part a placement instantiates.
type ComponentType int

const (
	// ComponentReceptacle is the flower base.
	ComponentReceptacle ComponentType = iota
	// ComponentPistil is the female reproductive structure.
	ComponentPistil
	// ComponentStamen is the male reproductive structure.
	ComponentStamen
	// ComponentPetal is a petal.
	ComponentPetal
	// ComponentSepal is an outer protective leaf.
	ComponentSepal
)

// ComponentPlacement positions one component in diagram space before
// mapping onto the receptacle surface.
type ComponentPlacement struct {
	// Type selects the component template.
	Type ComponentType

	// Radius is the radial distance from the flower center.
	Radius float32

	// Angle is the angular position in radians, counterclockwise from
	// the +X axis.
	Angle float32

	// Height is the attachment height on the receptacle, 0 at the
	// bottom and 1 at the top.
	Height float32

	// Scale is the per-instance scale multiplier.
	Scale float32

	// TiltAngle leans tiltable components away from vertical, in
	// radians.
	TiltAngle float32
}

// Transform3D is the placement result: position, orientation, and
// scale for one component instance.
type Transform3D struct {
	Position vmath.Vec3
	Rotation vmath.Quat
	Scale    vmath.Vec3
}

// Matrix combines the transform into a single matrix for mesh
// transformation.
func (t Transform3D) Matrix() vmath.Mat4 {
	return vmath.FromScaleRotationTranslation(t.Scale, t.Rotation, t.Position)
}

// ReceptacleMapper maps diagram placements onto the receptacle
// surface. It reconstructs the Bezier profile the receptacle was
// revolved from, so positions and surface normals agree with the
// generated geometry.
type ReceptacleMapper struct {
	p0, p1, p2, p3 vmath.Vec2
	height         float32
}

// NewReceptacleMapper derives the profile control points from the
// receptacle parameters.
func NewReceptacleMapper(params components.ReceptacleParams) *ReceptacleMapper {
	return &ReceptacleMapper{
		p0: vmath.Vec2{X: params.BaseRadius, Y: 0},
		p1: vmath.Vec2{
			X: params.BaseRadius + (params.BulgeRadius-params.BaseRadius)*0.3,
			Y: params.Height * 0.2,
		},
		p2: vmath.Vec2{X: params.BulgeRadius, Y: params.Height * params.BulgePosition},
		p3: vmath.Vec2{X: params.TopRadius, Y: params.Height},

		height: params.Height,
	}
}

// RadiusAtHeight evaluates the profile radius at an absolute height.
func (m *ReceptacleMapper) RadiusAtHeight(height float32) float32 {
	t := clamp01(height / m.height)
	return curve.CubicBezier2D(m.p0, m.p1, m.p2, m.p3, t).X
}

// tangentAtHeight returns the profile tangent (dr/dt, dy/dt) at an
// absolute height, lifted into the XY plane.
func (m *ReceptacleMapper) tangentAtHeight(height float32) vmath.Vec2 {
	t := clamp01(height / m.height)
	return curve.CubicBezierDerivative2D(m.p0, m.p1, m.p2, m.p3, t)
}

// MapTo3D computes the 3D transform for a placement.
//
// Center pistils stand upright on the axis. Other stamens and pistils
// start upright and lean outward by the tilt angle. Petals and sepals
// are oriented by the receptacle surface frame so their local Y points
// along the outward surface normal.
func (m *ReceptacleMapper) MapTo3D(placement ComponentPlacement) Transform3D {
	height := placement.Height * m.height

	if placement.Type == ComponentPistil && placement.Radius < 0.001 {
		return Transform3D{
			Position: vmath.Vec3{Y: height},
			Rotation: vmath.QuatIdentity(),
			Scale:    vmath.Splat3(placement.Scale),
		}
	}

	radius := m.RadiusAtHeight(height)
	sinA := math32.Sin(placement.Angle)
	cosA := math32.Cos(placement.Angle)

	position := vmath.Vec3{
		X: radius * cosA,
		Y: height,
		Z: radius * sinA,
	}

	// Azimuthal direction around the flower at this angle.
	azimuthal := vmath.Vec3{X: -sinA, Z: cosA}.Normalize()

	if placement.Type == ComponentStamen || placement.Type == ComponentPistil {
		// Rotate the up direction around the azimuthal axis; the
		// negative angle leans the component outward.
		tilt := vmath.QuatFromAxisAngle(azimuthal, -placement.TiltAngle)
		localY := tilt.RotateVec3(vmath.Vec3{Y: 1})

		localX := azimuthal
		localZ := localX.Cross(localY).Normalize()
		localY = localZ.Cross(localX).Normalize()

		return Transform3D{
			Position: position,
			Rotation: vmath.QuatFromBasis(localX, localY, localZ),
			Scale:    vmath.Splat3(placement.Scale),
		}
	}

	// Petals and sepals follow the receptacle surface. The outward 2D
	// normal to the profile tangent (dr, dy) is (dy, -dr).
	tangent2D := m.tangentAtHeight(height)
	normal2D := vmath.Vec2{X: tangent2D.Y, Y: -tangent2D.X}.Normalize()

	normal := vmath.Vec3{
		X: normal2D.X * cosA,
		Y: normal2D.Y,
		Z: normal2D.X * sinA,
	}.Normalize()

	binormal := azimuthal.Cross(normal).Normalize()
	tangent := normal.Cross(binormal).Normalize()

	return Transform3D{
		Position: position,
		Rotation: vmath.QuatFromBasis(tangent, normal, binormal),
		Scale:    vmath.Splat3(placement.Scale),
	}
}

// Placements expands the diagram whorls into concrete component
// placements, applying jitter when any jitter parameter is set. The
// order is pistils, stamens, petals, sepals.
func (d FloralDiagram) Placements() []ComponentPlacement {
	var placements []ComponentPlacement
	var index uint64

	jitterEnabled := d.PositionJitter > 0 || d.AngleJitter > 0 || d.SizeJitter > 0

	appendWhorls := func(whorls []ComponentWhorl, componentType ComponentType) {
		index = 0
		for _, whorl := range whorls {
			for _, angle := range whorl.Angles() {
				radius, scale := whorl.Radius, float32(1)
				if jitterEnabled {
					radius, angle, scale = d.applyJitter(whorl.Radius, angle, componentType, index)
				}

				placements = append(placements, ComponentPlacement{
					Type:      componentType,
					Radius:    radius,
					Angle:     angle,
					Height:    whorl.Height,
					Scale:     scale,
					TiltAngle: whorl.TiltAngle,
				})
				index++
			}
		}
	}

	appendWhorls(d.PistilWhorls, ComponentPistil)
	appendWhorls(d.StamenWhorls, ComponentStamen)
	appendWhorls(d.PetalWhorls, ComponentPetal)
	appendWhorls(d.SepalWhorls, ComponentSepal)

	return placements
}

// applyJitter perturbs radius, angle, and scale for one component. The
// RNG is seeded from the diagram seed, a per-type salt, and the
// instance index within the type, so a diagram always produces the
// same flower for a given seed. Draws happen in a fixed order (radius,
// angle, scale).
func (d FloralDiagram) applyJitter(baseRadius, baseAngle float32, componentType ComponentType, index uint64) (float32, float32, float32) {
	key := d.JitterSeed + uint64(componentType)*1000003 + index
	rng := rand.New(rand.NewSource(int64(key)))

	radius := baseRadius
	if d.PositionJitter > 0 {
		radius = math32.Max(baseRadius+symmetricRange(rng, d.PositionJitter), 0)
	}

	angle := baseAngle
	if d.AngleJitter > 0 {
		maxRad := d.AngleJitter * math32.Pi / 180
		angle = baseAngle + symmetricRange(rng, maxRad)
	}

	scale := float32(1)
	if d.SizeJitter > 0 {
		// Clamped so heavy jitter cannot shrink a part to nothing.
		scale = math32.Max(1+symmetricRange(rng, d.SizeJitter), 0.1)
	}

	return radius, angle, scale
}

// symmetricRange draws a uniform value in (-limit, limit).
func symmetricRange(rng *rand.Rand, limit float32) float32 {
	return (rng.Float32()*2 - 1) * limit
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
