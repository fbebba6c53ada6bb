package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	if math.Abs(float64(n.Length()-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", n.Length())
	}

	// Not normalized on construction.
	if q.Length() == 1 {
		t.Error("construction should not normalize")
	}
	q.NormalizeSelf()
	if q != n {
		t.Errorf("NormalizeSelf = %v, want %v", q, n)
	}

	if got := (Quat{}).Normalize(); got != QuatIdentity() {
		t.Errorf("zero quaternion normalizes to %v, want identity", got)
	}
}

func TestQuatSlerp(t *testing.T) {
	// Test endpoints
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	// At t=0, should equal q1
	result0 := q1.Slerp(q2, 0)
	if math.Abs(float64(result0.W-q1.W)) > 0.001 {
		t.Errorf("Slerp at t=0 should equal q1")
	}

	// At t=1, should equal q2
	result1 := q1.Slerp(q2, 1)
	if math.Abs(float64(result1.W-q2.W)) > 0.001 {
		t.Errorf("Slerp at t=1 should equal q2")
	}

	// At t=0.5, should be halfway
	result5 := q1.Slerp(q2, 0.5)
	// For 90 degree rotation, halfway should be 45 degrees
	expectedW := float32(math.Cos(float64(math.Pi / 8))) // cos(45/2 degrees)
	if math.Abs(float64(result5.W-expectedW)) > 0.01 {
		t.Errorf("Slerp at t=0.5: expected W ~%v, got %v", expectedW, result5.W)
	}
}

func TestQuatToMat4(t *testing.T) {
	// Identity quaternion should produce identity matrix
	q := QuatIdentity()
	m := q.ToMat4()

	if !m.Compare(Identity(), 0.0001) {
		t.Errorf("Identity quat should produce identity matrix, got %v", m)
	}

	// Axis-angle quaternion matches the axis-angle matrix.
	axis := Vec3{1, 2, 2}.Normalize()
	q = QuatFromAxisAngle(axis, 1.2)
	if got, want := q.ToMat4(), RotateAxis(axis, 1.2); !got.Compare(want, 1e-5) {
		t.Errorf("ToMat4 = %v, want %v", got, want)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	// Should have Y component and W = cos(45deg)
	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatRotate(t *testing.T) {
	q := QuatFromAxisAngle(Vec3UnitZ, Radians(90))
	if got := q.Rotate(Vec3UnitX); !got.Compare(Vec3UnitY, 1e-5) {
		t.Errorf("Z90 rotates X to %v, want Y", got)
	}

	// Rotate agrees with the matrix form.
	q = QuatFromAxisAngle(Vec3{0, 0.6, 0.8}, 2.1)
	v := Vec3{3, -1, 2}
	if got, want := q.Rotate(v), q.ToMat4().TransformPoint(v); !got.Compare(want, 1e-5) {
		t.Errorf("Rotate = %v, matrix = %v", got, want)
	}
}

// a.Mul(b) applies b first, then a.
func TestQuatMulComposition(t *testing.T) {
	a := QuatFromAxisAngle(Vec3UnitZ, Radians(90))
	b := QuatFromAxisAngle(Vec3UnitX, Radians(90))

	// b takes Y to Z, a leaves Z alone.
	got := a.Mul(b).Rotate(Vec3UnitY)
	if !got.Compare(Vec3UnitZ, 1e-5) {
		t.Errorf("(a*b) rotates Y to %v, want Z", got)
	}
	// Reversed order: a takes Y to -X, b leaves X axis vectors alone.
	got = b.Mul(a).Rotate(Vec3UnitY)
	if !got.Compare(Vec3UnitX.Neg(), 1e-5) {
		t.Errorf("(b*a) rotates Y to %v, want -X", got)
	}

	v := Vec3{1, 2, 3}
	if got, want := a.Mul(b).Rotate(v), a.Rotate(b.Rotate(v)); !got.Compare(want, 1e-5) {
		t.Errorf("a*b rotate = %v, nested = %v", got, want)
	}

	q := a
	q.MulSelf(b)
	if q != a.Mul(b) {
		t.Errorf("MulSelf = %v, want %v", q, a.Mul(b))
	}
}

func TestQuatMulMatchesMat4(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{1, 1, 0}.Normalize(), 0.8)
	b := QuatFromAxisAngle(Vec3{0, 1, 1}.Normalize(), -1.3)

	got := a.Mul(b).ToMat4()
	want := a.ToMat4().Mul(b.ToMat4())
	if !got.Compare(want, 1e-5) {
		t.Errorf("(a*b).ToMat4() = %v, want %v", got, want)
	}
}

func TestQuatInverse(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 0, 1}, 0.5)
	if got := q.Mul(q.Inverse()); !got.Compare(QuatIdentity(), 1e-5) {
		t.Errorf("q * q^-1 = %v, want identity", got)
	}
	if !q.Inverse().Compare(q.Conjugate(), 1e-5) {
		t.Errorf("unit inverse %v should equal conjugate %v", q.Inverse(), q.Conjugate())
	}

	s := Quat{X: 0, Y: 0, Z: 0, W: 2}
	if got := s.Inverse(); got != (Quat{W: 0.5}) {
		t.Errorf("inverse of scalar 2 = %v, want 0.5", got)
	}
}

func TestQuatFromEuler(t *testing.T) {
	// Pure yaw equals an axis-angle rotation around Y.
	got := QuatFromEuler(0, 0.7, 0)
	want := QuatFromAxisAngle(Vec3UnitY, 0.7)
	if !got.Compare(want, 1e-5) {
		t.Errorf("QuatFromEuler yaw = %v, want %v", got, want)
	}

	// X is applied before Z: X90 takes Y to Z, Z90 leaves it.
	q := QuatFromEuler(Radians(90), 0, Radians(90))
	if v := q.Rotate(Vec3UnitY); !v.Compare(Vec3UnitZ, 1e-5) {
		t.Errorf("euler rotate Y = %v, want Z", v)
	}
}

func TestQuatLerp(t *testing.T) {
	a := QuatIdentity()
	b := QuatFromAxisAngle(Vec3UnitX, 1)
	mid := a.Lerp(b, 0.5)
	if math.Abs(float64(mid.Length()-1)) > 1e-5 {
		t.Errorf("Lerp result should be normalized, length %v", mid.Length())
	}
}
