// Package math provides float32 vectors, matrices, quaternions and transforms.
package math

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	// Pi as float32.
	Pi = float32(math.Pi)

	// Epsilon is the default tolerance for approximate comparisons.
	Epsilon = float32(1e-5)
)

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp returns v clamped to the range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly between a and b.
// t is not clamped, so values outside [0, 1] extrapolate.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Ratio returns where v lies between lo and hi, 0 at lo and 1 at hi.
// It is the inverse of Lerp.
func Ratio[T constraints.Float](v, lo, hi T) T {
	return (v - lo) / (hi - lo)
}

// IsPowerOfTwo reports whether v is a power of two. Zero is not.
func IsPowerOfTwo[T constraints.Unsigned](v T) bool {
	return v != 0 && v&(v-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= v.
// NextPowerOfTwo(0) is 1.
func NextPowerOfTwo[T constraints.Unsigned](v T) T {
	if v <= 1 {
		return 1
	}
	p := T(1)
	for p < v {
		p <<= 1
	}
	return p
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf(sign int) float32 {
	return float32(math.Inf(sign))
}

// IsInf reports whether x is an infinity.
func IsInf(x float32) bool {
	return math.IsInf(float64(x), 0)
}

// Radians converts degrees to radians.
func Radians(degrees float32) float32 {
	return degrees * Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float32) float32 {
	return radians * 180 / Pi
}

// ApproxEqual reports whether a and b differ by at most epsilon.
func ApproxEqual(a, b, epsilon float32) bool {
	return Abs(a-b) <= epsilon
}

func sincos(angle float32) (float32, float32) {
	s, c := math.Sincos(float64(angle))
	return float32(s), float32(c)
}

func acos(x float32) float32 {
	return float32(math.Acos(float64(x)))
}
