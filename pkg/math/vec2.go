package math

import "fmt"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// AddSelf adds other to v in place.
func (v *Vec2) AddSelf(other Vec2) {
	*v = v.Add(other)
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// SubSelf subtracts other from v in place.
func (v *Vec2) SubSelf(other Vec2) {
	*v = v.Sub(other)
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// ScaleSelf multiplies v by s in place.
func (v *Vec2) ScaleSelf(s float32) {
	*v = v.Scale(s)
}

// Mul returns the component-wise product.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// MulSelf multiplies v by other component-wise in place.
func (v *Vec2) MulSelf(other Vec2) {
	*v = v.Mul(other)
}

// Div returns the component-wise quotient.
// Zero components divide to signed infinity.
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

// DivSelf divides v by other component-wise in place.
func (v *Vec2) DivSelf(other Vec2) {
	*v = v.Div(other)
}

// DivScalar returns v / s.
func (v Vec2) DivScalar(s float32) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

// DivScalarSelf divides v by s in place.
func (v *Vec2) DivScalarSelf(s float32) {
	*v = v.DivScalar(s)
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product of v and other.
func (v Vec2) Cross(other Vec2) float32 {
	return v.X*other.Y - v.Y*other.X
}

// LengthSquared returns the squared magnitude.
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// NormalizeSelf normalizes v in place.
func (v *Vec2) NormalizeSelf() {
	*v = v.Normalize()
}

// ClampLength rescales v so its length lies in [lo, hi].
func (v Vec2) ClampLength(lo, hi float32) Vec2 {
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
func (v *Vec2) ClampLengthSelf(lo, hi float32) {
	*v = v.ClampLength(lo, hi)
}

// Clamp clamps each component to the matching components of lo and hi.
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{Clamp(v.X, lo.X, hi.X), Clamp(v.Y, lo.Y, hi.Y)}
}

// ClampSelf is the in-place form of Clamp.
func (v *Vec2) ClampSelf(lo, hi Vec2) {
	*v = v.Clamp(lo, hi)
}

// Mirror reflects v about the unit vector normal.
func (v Vec2) Mirror(normal Vec2) Vec2 {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

// MirrorSelf is the in-place form of Mirror.
func (v *Vec2) MirrorSelf(normal Vec2) {
	*v = v.Mirror(normal)
}

// Min returns the component-wise minimum.
func (v Vec2) Min(other Vec2) Vec2 {
	return Vec2{Min(v.X, other.X), Min(v.Y, other.Y)}
}

// Max returns the component-wise maximum.
func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{Max(v.X, other.X), Max(v.Y, other.Y)}
}

// Lerp interpolates between v and other.
func (v Vec2) Lerp(other Vec2, t float32) Vec2 {
	return Vec2{Lerp(v.X, other.X, t), Lerp(v.Y, other.Y, t)}
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// Compare reports whether every component is within epsilon of other.
func (v Vec2) Compare(other Vec2, epsilon float32) bool {
	return ApproxEqual(v.X, other.X, epsilon) && ApproxEqual(v.Y, other.Y, epsilon)
}

// At returns the component at index i (0 = X, 1 = Y).
func (v Vec2) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Sprintf("math: Vec2 index %d out of range", i))
}

// Set assigns the component at index i.
func (v *Vec2) Set(i int, value float32) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		panic(fmt.Sprintf("math: Vec2 index %d out of range", i))
	}
}

// Vec3 extends v with a z component.
func (v Vec2) Vec3(z float32) Vec3 {
	return Vec3{v.X, v.Y, z}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
