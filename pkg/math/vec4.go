package math

import "fmt"

// Vec4 is a 4-component vector. W is 1 for points and 0 for directions.
type Vec4 struct {
	X, Y, Z, W float32
}

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// AddSelf adds other to v in place.
func (v *Vec4) AddSelf(other Vec4) {
	*v = v.Add(other)
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// SubSelf subtracts other from v in place.
func (v *Vec4) SubSelf(other Vec4) {
	*v = v.Sub(other)
}

// Neg returns -v.
func (v Vec4) Neg() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// Scale returns v * scalar.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// ScaleSelf multiplies v by s in place.
func (v *Vec4) ScaleSelf(s float32) {
	*v = v.Scale(s)
}

// Mul returns the component-wise product.
func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// MulSelf multiplies v by other component-wise in place.
func (v *Vec4) MulSelf(other Vec4) {
	*v = v.Mul(other)
}

// Div returns the component-wise quotient.
func (v Vec4) Div(other Vec4) Vec4 {
	return Vec4{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

// DivSelf divides v by other component-wise in place.
func (v *Vec4) DivSelf(other Vec4) {
	*v = v.Div(other)
}

// DivScalar returns v / s.
func (v Vec4) DivScalar(s float32) Vec4 {
	return Vec4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// DivScalarSelf divides v by s in place.
func (v *Vec4) DivScalarSelf(s float32) {
	*v = v.DivScalar(s)
}

// Dot returns the dot product.
func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// LengthSquared returns the squared magnitude.
func (v Vec4) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the magnitude.
func (v Vec4) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector. The zero vector stays zero.
func (v Vec4) Normalize() Vec4 {
	l := v.Length()
	if l == 0 {
		return Vec4{}
	}
	return Vec4{v.X / l, v.Y / l, v.Z / l, v.W / l}
}

// NormalizeSelf normalizes v in place.
func (v *Vec4) NormalizeSelf() {
	*v = v.Normalize()
}

// ClampLength rescales v so its length lies in [lo, hi].
func (v Vec4) ClampLength(lo, hi float32) Vec4 {
	l := v.Length()
	switch {
	case l > hi:
		return v.Normalize().Scale(hi)
	case l < lo:
		return v.Normalize().Scale(lo)
	}
	return v
}

// ClampLengthSelf is the in-place form of ClampLength.
func (v *Vec4) ClampLengthSelf(lo, hi float32) {
	*v = v.ClampLength(lo, hi)
}

// Clamp clamps each component to the matching components of lo and hi.
func (v Vec4) Clamp(lo, hi Vec4) Vec4 {
	return Vec4{
		Clamp(v.X, lo.X, hi.X),
		Clamp(v.Y, lo.Y, hi.Y),
		Clamp(v.Z, lo.Z, hi.Z),
		Clamp(v.W, lo.W, hi.W),
	}
}

// ClampSelf is the in-place form of Clamp.
func (v *Vec4) ClampSelf(lo, hi Vec4) {
	*v = v.Clamp(lo, hi)
}

// Mirror reflects v about the unit vector normal.
func (v Vec4) Mirror(normal Vec4) Vec4 {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

// MirrorSelf is the in-place form of Mirror.
func (v *Vec4) MirrorSelf(normal Vec4) {
	*v = v.Mirror(normal)
}

// Lerp interpolates between v and other.
func (v Vec4) Lerp(other Vec4, t float32) Vec4 {
	return Vec4{
		Lerp(v.X, other.X, t),
		Lerp(v.Y, other.Y, t),
		Lerp(v.Z, other.Z, t),
		Lerp(v.W, other.W, t),
	}
}

// Compare reports whether every component is within epsilon of other.
func (v Vec4) Compare(other Vec4, epsilon float32) bool {
	return ApproxEqual(v.X, other.X, epsilon) &&
		ApproxEqual(v.Y, other.Y, epsilon) &&
		ApproxEqual(v.Z, other.Z, epsilon) &&
		ApproxEqual(v.W, other.W, epsilon)
}

// At returns the component at index i (0 = X ... 3 = W).
func (v Vec4) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(fmt.Sprintf("math: Vec4 index %d out of range", i))
}

// Set assigns the component at index i.
func (v *Vec4) Set(i int, value float32) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	case 3:
		v.W = value
	default:
		panic(fmt.Sprintf("math: Vec4 index %d out of range", i))
	}
}

// Vec3 drops the w component.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

func (v Vec4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
