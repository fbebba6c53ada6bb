package math

import "fmt"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Unit axes.
var (
	Vec3UnitX = Vec3{1, 0, 0}
	Vec3UnitY = Vec3{0, 1, 0}
	Vec3UnitZ = Vec3{0, 0, 1}
	Vec3One   = Vec3{1, 1, 1}
)

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddSelf adds other to v in place.
func (v *Vec3) AddSelf(other Vec3) {
	*v = v.Add(other)
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// SubSelf subtracts other from v in place.
func (v *Vec3) SubSelf(other Vec3) {
	*v = v.Sub(other)
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// ScaleSelf multiplies v by s in place.
func (v *Vec3) ScaleSelf(s float32) {
	*v = v.Scale(s)
}

// Mul returns the component-wise product.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// MulSelf multiplies v by other component-wise in place.
func (v *Vec3) MulSelf(other Vec3) {
	*v = v.Mul(other)
}

// Div returns the component-wise quotient.
// Zero components divide to signed infinity.
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// DivSelf divides v by other component-wise in place.
func (v *Vec3) DivSelf(other Vec3) {
	*v = v.Div(other)
}

// DivScalar returns v / s.
func (v Vec3) DivScalar(s float32) Vec3 {
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

// DivScalarSelf divides v by s in place.
func (v *Vec3) DivScalarSelf(s float32) {
	*v = v.DivScalar(s)
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared magnitude.
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector. The zero vector stays zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// NormalizeSelf normalizes v in place.
func (v *Vec3) NormalizeSelf() {
	*v = v.Normalize()
}

// ClampLength rescales v so its length lies in [lo, hi].
func (v Vec3) ClampLength(lo, hi float32) Vec3 {
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
func (v *Vec3) ClampLengthSelf(lo, hi float32) {
	*v = v.ClampLength(lo, hi)
}

// Clamp clamps each component to the matching components of lo and hi.
func (v Vec3) Clamp(lo, hi Vec3) Vec3 {
	return Vec3{
		Clamp(v.X, lo.X, hi.X),
		Clamp(v.Y, lo.Y, hi.Y),
		Clamp(v.Z, lo.Z, hi.Z),
	}
}

// ClampSelf is the in-place form of Clamp.
func (v *Vec3) ClampSelf(lo, hi Vec3) {
	*v = v.Clamp(lo, hi)
}

// Mirror reflects v about the unit vector normal.
func (v Vec3) Mirror(normal Vec3) Vec3 {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

// MirrorSelf is the in-place form of Mirror.
func (v *Vec3) MirrorSelf(normal Vec3) {
	*v = v.Mirror(normal)
}

// Min returns the component-wise minimum.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{Min(v.X, other.X), Min(v.Y, other.Y), Min(v.Z, other.Z)}
}

// Max returns the component-wise maximum.
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{Max(v.X, other.X), Max(v.Y, other.Y), Max(v.Z, other.Z)}
}

// Lerp interpolates between v and other.
func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return Vec3{Lerp(v.X, other.X, t), Lerp(v.Y, other.Y, t), Lerp(v.Z, other.Z, t)}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Compare reports whether every component is within epsilon of other.
func (v Vec3) Compare(other Vec3, epsilon float32) bool {
	return ApproxEqual(v.X, other.X, epsilon) &&
		ApproxEqual(v.Y, other.Y, epsilon) &&
		ApproxEqual(v.Z, other.Z, epsilon)
}

// At returns the component at index i (0 = X, 1 = Y, 2 = Z).
func (v Vec3) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("math: Vec3 index %d out of range", i))
}

// Set assigns the component at index i.
func (v *Vec3) Set(i int, value float32) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic(fmt.Sprintf("math: Vec3 index %d out of range", i))
	}
}

// XY returns the XY components as Vec2.
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

// XZ returns the XZ components as Vec2.
func (v Vec3) XZ() Vec2 {
	return Vec2{v.X, v.Z}
}

// Vec4 extends v with a w component.
func (v Vec3) Vec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
