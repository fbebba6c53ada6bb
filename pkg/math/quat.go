package math

import "fmt"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
// Quaternions are not normalized on construction.
//
// Composition follows the Hamilton product: a.Mul(b) rotates by b first,
// then by a, the same order as a.ToMat4().Mul(b.ToMat4()).
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
	s, c := sincos(angle / 2)
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: c,
	}
}

// QuatFromEuler creates a quaternion from Euler angles in radians.
// The rotation applies x (pitch) first, then y (yaw), then z (roll).
func QuatFromEuler(x, y, z float32) Quat {
	qx := QuatFromAxisAngle(Vec3UnitX, x)
	qy := QuatFromAxisAngle(Vec3UnitY, y)
	qz := QuatFromAxisAngle(Vec3UnitZ, z)
	return qz.Mul(qy).Mul(qx)
}

// Length returns the magnitude of the quaternion.
func (q Quat) Length() float32 {
	return Sqrt(q.Dot(q))
}

// Normalize returns a normalized quaternion.
// Near-zero quaternions normalize to the identity.
func (q Quat) Normalize() Quat {
	length := q.Length()
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

// NormalizeSelf normalizes q in place.
func (q *Quat) NormalizeSelf() {
	*q = q.Normalize()
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Conjugate returns the quaternion with its vector part negated.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns the multiplicative inverse. For unit quaternions this
// equals the conjugate.
func (q Quat) Inverse() Quat {
	n := q.Dot(q)
	c := q.Conjugate()
	return Quat{X: c.X / n, Y: c.Y / n, Z: c.Z / n, W: c.W / n}
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

// MulSelf sets q to q * other.
func (q *Quat) MulSelf(other Quat) {
	*q = q.Mul(other)
}

// Rotate rotates v by the quaternion, which must be unit length.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Slerp performs spherical linear interpolation between two quaternions.
// t should be in range [0, 1].
func (q Quat) Slerp(other Quat, t float32) Quat {
	dot := q.Dot(other)

	// Take the shorter path.
	if dot < 0 {
		other = Quat{X: -other.X, Y: -other.Y, Z: -other.Z, W: -other.W}
		dot = -dot
	}

	// Nearly parallel: sin(theta0) would be close to zero.
	if dot > 0.9995 {
		return q.Lerp(other, t)
	}

	theta0 := acos(dot)
	theta := theta0 * t
	sinTheta, cosTheta := sincos(theta)
	sinTheta0, _ := sincos(theta0)

	s0 := cosTheta - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return Quat{
		X: q.X*s0 + other.X*s1,
		Y: q.Y*s0 + other.Y*s1,
		Z: q.Z*s0 + other.Z*s1,
		W: q.W*s0 + other.W*s1,
	}
}

// Lerp performs linear interpolation between two quaternions.
// Use Slerp for rotation interpolation; this is for simple blending.
func (q Quat) Lerp(other Quat, t float32) Quat {
	return Quat{
		X: Lerp(q.X, other.X, t),
		Y: Lerp(q.Y, other.Y, t),
		Z: Lerp(q.Z, other.Z, t),
		W: Lerp(q.W, other.W, t),
	}.Normalize()
}

// ToMat3 converts the quaternion to a 3x3 rotation matrix.
func (q Quat) ToMat3() Mat3 {
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

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy + zw), 2 * (xz - yw),
		2 * (xy - zw), 1 - 2*(xx+zz), 2 * (yz + xw),
		2 * (xz + yw), 2 * (yz - xw), 1 - 2*(xx+yy),
	}
}

// ToMat4 converts the quaternion to a 4x4 rotation matrix.
func (q Quat) ToMat4() Mat4 {
	return q.ToMat3().Mat4()
}

// Compare reports whether every component is within epsilon of other.
func (q Quat) Compare(other Quat, epsilon float32) bool {
	return ApproxEqual(q.X, other.X, epsilon) &&
		ApproxEqual(q.Y, other.Y, epsilon) &&
		ApproxEqual(q.Z, other.Z, epsilon) &&
		ApproxEqual(q.W, other.W, epsilon)
}

func (q Quat) String() string {
	return fmt.Sprintf("(%g, %g, %g; %g)", q.X, q.Y, q.Z, q.W)
}
