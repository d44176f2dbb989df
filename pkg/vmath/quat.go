package vmath

import "github.com/chewxy/math32"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	halfAngle := angle / 2
	s := math32.Sin(halfAngle)
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math32.Cos(halfAngle),
	}
}

// QuatFromRotationArc creates the shortest rotation taking unit vector
// from to unit vector to. Antiparallel inputs rotate 180 degrees around
// an axis perpendicular to from.
func QuatFromRotationArc(from, to Vec3) Quat {
	dot := from.Dot(to)

	if dot > 0.999999 {
		return QuatIdentity()
	}

	if dot < -0.999999 {
		// Pick any axis perpendicular to from for the half turn.
		axis := Vec3{1, 0, 0}.Cross(from)
		if axis.LengthSquared() < 1e-6 {
			axis = Vec3{0, 1, 0}.Cross(from)
		}
		return QuatFromAxisAngle(axis.Normalize(), math32.Pi)
	}

	axis := from.Cross(to)
	return Quat{
		X: axis.X,
		Y: axis.Y,
		Z: axis.Z,
		W: 1 + dot,
	}.Normalize()
}

// QuatFromBasis creates a quaternion from three orthonormal column vectors
// of a rotation matrix.
func QuatFromBasis(x, y, z Vec3) Quat {
	trace := x.X + y.Y + z.Z
	if trace > 0 {
		s := math32.Sqrt(trace+1) * 2
		return Quat{
			X: (y.Z - z.Y) / s,
			Y: (z.X - x.Z) / s,
			Z: (x.Y - y.X) / s,
			W: s / 4,
		}
	}
	if x.X > y.Y && x.X > z.Z {
		s := math32.Sqrt(1+x.X-y.Y-z.Z) * 2
		return Quat{
			X: s / 4,
			Y: (y.X + x.Y) / s,
			Z: (z.X + x.Z) / s,
			W: (y.Z - z.Y) / s,
		}
	}
	if y.Y > z.Z {
		s := math32.Sqrt(1+y.Y-x.X-z.Z) * 2
		return Quat{
			X: (y.X + x.Y) / s,
			Y: s / 4,
			Z: (z.Y + y.Z) / s,
			W: (z.X - x.Z) / s,
		}
	}
	s := math32.Sqrt(1+z.Z-x.X-y.Y) * 2
	return Quat{
		X: (z.X + x.Z) / s,
		Y: (z.Y + y.Z) / s,
		Z: s / 4,
		W: (x.Y - y.X) / s,
	}
}

// Normalize returns a normalized quaternion.
func (q Quat) Normalize() Quat {
	length := math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if length < 0.0001 {
		return QuatIdentity()
	}
	invLen := 1.0 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Mul multiplies two quaternions (combines rotations).
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// RotateVec3 rotates a vector by this quaternion.
func (q Quat) RotateVec3(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	uv := u.Cross(v)
	uuv := u.Cross(uv)
	return v.Add(uv.Scale(2 * q.W)).Add(uuv.Scale(2))
}

// Slerp performs spherical linear interpolation between two quaternions.
// t should be in range [0, 1].
func (q Quat) Slerp(other Quat, t float32) Quat {
	// Compute cos of angle between quaternions
	dot := q.Dot(other)

	// If dot is negative, negate one quaternion to take the shorter path
	if dot < 0 {
		other = Quat{X: -other.X, Y: -other.Y, Z: -other.Z, W: -other.W}
		dot = -dot
	}

	// If quaternions are very close, use linear interpolation to avoid division by zero
	if dot > 0.9995 {
		return Quat{
			X: q.X + t*(other.X-q.X),
			Y: q.Y + t*(other.Y-q.Y),
			Z: q.Z + t*(other.Z-q.Z),
			W: q.W + t*(other.W-q.W),
		}.Normalize()
	}

	// Standard slerp
	theta0 := math32.Acos(dot)
	theta := theta0 * t
	sinTheta := math32.Sin(theta)
	sinTheta0 := math32.Sin(theta0)

	s0 := math32.Cos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return Quat{
		X: q.X*s0 + other.X*s1,
		Y: q.Y*s0 + other.Y*s1,
		Z: q.Z*s0 + other.Z*s1,
		W: q.W*s0 + other.W*s1,
	}
}

// ToMat4 converts the quaternion to a 4x4 rotation matrix.
func (q Quat) ToMat4() Mat4 {
	// Normalize first
	q = q.Normalize()

	xx := q.X * q.X
	xy := q.X * q.Y
	xz := q.X * q.Z
	xw := q.X * q.W
	yy := q.Y * q.Y
	yz := q.Y * q.Z
	yw := q.Y * q.W
	zz := q.Z * q.Z
	zw := q.Z * q.W

	return Mat4{
		1 - 2*(yy+zz), 2 * (xy + zw), 2 * (xz - yw), 0,
		2 * (xy - zw), 1 - 2*(xx+zz), 2 * (yz + xw), 0,
		2 * (xz + yw), 2 * (yz - xw), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}
