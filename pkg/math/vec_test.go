package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec2Cross(t *testing.T) {
	got := Vec2{1, 0}.Cross(Vec2{0, 1})
	if got != 1 {
		t.Errorf("Vec2.Cross() = %v, want 1", got)
	}
	got = Vec2{0, 1}.Cross(Vec2{1, 0})
	if got != -1 {
		t.Errorf("Vec2.Cross() = %v, want -1", got)
	}
}

func TestVec2Clamp(t *testing.T) {
	v := Vec2{-5, 12}
	got := v.Clamp(Vec2{0, 0}, Vec2{10, 10})
	want := Vec2{0, 10}
	if got != want {
		t.Errorf("Vec2.Clamp() = %v, want %v", got, want)
	}

	v.ClampSelf(Vec2{-1, -1}, Vec2{1, 1})
	if v != (Vec2{-1, 1}) {
		t.Errorf("Vec2.ClampSelf() = %v, want (-1, 1)", v)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Neg(); got != (Vec3{-1, -2, -3}) {
		t.Errorf("Neg: got %v", got)
	}
	if got := a.Mul(b); got != (Vec3{4, 10, 18}) {
		t.Errorf("Mul: got %v", got)
	}
	if got := b.Div(Vec3{2, 5, 3}); got != (Vec3{2, 1, 2}) {
		t.Errorf("Div: got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: got %v, want 32", got)
	}
}

func TestVec3SelfVariants(t *testing.T) {
	v := Vec3{1, 2, 3}
	v.AddSelf(Vec3{1, 1, 1})
	v.ScaleSelf(2)
	v.SubSelf(Vec3{0, 2, 4})
	want := Vec3{4, 4, 4}
	if v != want {
		t.Errorf("self variants: got %v, want %v", v, want)
	}

	// The value-returning form must not touch the receiver.
	_ = v.Scale(10)
	if v != want {
		t.Errorf("Scale mutated receiver: got %v", v)
	}
}

func TestVecDivideByZero(t *testing.T) {
	inf := float32(math.Inf(1))

	v := Vec3{1, -2, 3}.DivScalar(0)
	want := Vec3{inf, -inf, inf}
	if v != want {
		t.Errorf("Vec3 / 0 = %v, want %v", v, want)
	}

	v2 := Vec2{-1, 1}.Div(Vec2{0, 0})
	if v2 != (Vec2{-inf, inf}) {
		t.Errorf("Vec2 / (0,0) = %v", v2)
	}

	v4 := Vec4{1, 1, -1, -1}
	v4.DivScalarSelf(0)
	if v4 != (Vec4{inf, inf, -inf, -inf}) {
		t.Errorf("Vec4 /= 0 = %v", v4)
	}
}

func TestVecScaleDivRoundTrip(t *testing.T) {
	vs := []Vec3{{1, 2, 3}, {-0.5, 100, 7.25}, {1e-3, -1e3, 0}}
	scalars := []float32{0.1, 3, -7, 1000}
	for _, v := range vs {
		for _, s := range scalars {
			got := v.Scale(s).DivScalar(s)
			if !got.Compare(v, 1e-3) {
				t.Errorf("(%v * %v) / %v = %v", v, s, s, got)
			}
		}
	}
}

func TestVecNormalizeLength(t *testing.T) {
	for _, v := range []Vec3{{1, 0, 0}, {3, 4, 12}, {-1, -1, -1}, {1e-3, 2e-3, 0}} {
		if l := v.Normalize().Length(); math.Abs(float64(l-1)) > 1e-5 {
			t.Errorf("%v.Normalize().Length() = %v", v, l)
		}
	}
	for _, v := range []Vec4{{1, 2, 3, 4}, {0, 0, 0, -2}} {
		if l := v.Normalize().Length(); math.Abs(float64(l-1)) > 1e-5 {
			t.Errorf("%v.Normalize().Length() = %v", v, l)
		}
	}

	var zero Vec3
	if got := zero.Normalize(); got != zero {
		t.Errorf("zero.Normalize() = %v, want zero", got)
	}
}

func TestVecClampLength(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want float32
	}{
		{"longer than max", Vec3{10, 0, 0}, 5},
		{"shorter than min", Vec3{0, 0.5, 0}, 2},
		{"in range", Vec3{0, 0, 3}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.ClampLength(2, 5)
			if math.Abs(float64(got.Length()-tt.want)) > 1e-5 {
				t.Errorf("ClampLength length = %v, want %v", got.Length(), tt.want)
			}
			// Direction is preserved.
			if !got.Normalize().Compare(tt.v.Normalize(), 1e-6) {
				t.Errorf("ClampLength changed direction: %v", got)
			}

			v := tt.v
			v.ClampLengthSelf(2, 5)
			if v != got {
				t.Errorf("ClampLengthSelf = %v, want %v", v, got)
			}
		})
	}
}

func TestVec2ClampLength(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want Vec2
	}{
		{"longer than max", Vec2{6, 8}, Vec2{3, 4}},
		{"shorter than min", Vec2{0.3, 0.4}, Vec2{1.2, 1.6}},
		{"in range", Vec2{3, 4}, Vec2{3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.ClampLength(2, 5)
			if !got.Compare(tt.want, 1e-5) {
				t.Errorf("Vec2.ClampLength() = %v, want %v", got, tt.want)
			}

			v := tt.v
			v.ClampLengthSelf(2, 5)
			if v != got {
				t.Errorf("Vec2.ClampLengthSelf() = %v, want %v", v, got)
			}
		})
	}
}

func TestVec4ClampLength(t *testing.T) {
	tests := []struct {
		name string
		v    Vec4
		want Vec4
	}{
		{"longer than max", Vec4{0, 0, 0, 10}, Vec4{0, 0, 0, 5}},
		{"shorter than min", Vec4{0.5, 0.5, 0.5, 0.5}, Vec4{1, 1, 1, 1}},
		{"in range", Vec4{1, 2, 2, 0}, Vec4{1, 2, 2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.ClampLength(2, 5)
			if !got.Compare(tt.want, 1e-5) {
				t.Errorf("Vec4.ClampLength() = %v, want %v", got, tt.want)
			}

			v := tt.v
			v.ClampLengthSelf(2, 5)
			if v != got {
				t.Errorf("Vec4.ClampLengthSelf() = %v, want %v", v, got)
			}
		})
	}
}

func TestVecMirror(t *testing.T) {
	if got := (Vec2{1, -1}).Mirror(Vec2{0, 1}); got != (Vec2{1, 1}) {
		t.Errorf("Vec2.Mirror() = %v, want (1, 1)", got)
	}
	v2 := Vec2{2, 3}
	v2.MirrorSelf(Vec2{1, 0})
	if v2 != (Vec2{-2, 3}) {
		t.Errorf("Vec2.MirrorSelf() = %v, want (-2, 3)", v2)
	}

	if got := (Vec3{1, -1, 0}).Mirror(Vec3{0, 1, 0}); got != (Vec3{1, 1, 0}) {
		t.Errorf("Vec3.Mirror() = %v, want (1, 1, 0)", got)
	}
	v3 := Vec3{0, 4, -2}
	v3.MirrorSelf(Vec3{0, 0, 1})
	if v3 != (Vec3{0, 4, 2}) {
		t.Errorf("Vec3.MirrorSelf() = %v, want (0, 4, 2)", v3)
	}

	if got := (Vec4{1, 2, 3, 4}).Mirror(Vec4{0, 0, 0, 1}); got != (Vec4{1, 2, 3, -4}) {
		t.Errorf("Vec4.Mirror() = %v, want (1, 2, 3, -4)", got)
	}
	v4 := Vec4{1, -1, 0, 5}
	v4.MirrorSelf(Vec4{0, 1, 0, 0})
	if v4 != (Vec4{1, 1, 0, 5}) {
		t.Errorf("Vec4.MirrorSelf() = %v, want (1, 1, 0, 5)", v4)
	}
}

func TestVec3Clamp(t *testing.T) {
	v := Vec3{-5, 0.5, 12}
	got := v.Clamp(Vec3{0, 0, 0}, Vec3{1, 1, 10})
	if got != (Vec3{0, 0.5, 10}) {
		t.Errorf("Vec3.Clamp() = %v, want (0, 0.5, 10)", got)
	}

	v.ClampSelf(Vec3{-1, -1, -1}, Vec3{1, 1, 1})
	if v != (Vec3{-1, 0.5, 1}) {
		t.Errorf("Vec3.ClampSelf() = %v, want (-1, 0.5, 1)", v)
	}
}

func TestVec4Clamp(t *testing.T) {
	v := Vec4{-1, 2, 0.5, 9}
	got := v.Clamp(Vec4{}, Vec4{1, 1, 1, 1})
	if got != (Vec4{0, 1, 0.5, 1}) {
		t.Errorf("Vec4.Clamp() = %v, want (0, 1, 0.5, 1)", got)
	}

	v.ClampSelf(Vec4{0, 0, 0, 10}, Vec4{0.5, 3, 3, 20})
	if v != (Vec4{0, 2, 0.5, 10}) {
		t.Errorf("Vec4.ClampSelf() = %v, want (0, 2, 0.5, 10)", v)
	}
}

func TestVecCompare(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{1.0001, 2, 2.9999}
	if a == b {
		t.Error("exact equality should fail")
	}
	if !a.Compare(b, 0.001) {
		t.Error("Compare within epsilon should succeed")
	}
	if a.Compare(b, 0.00001) {
		t.Error("Compare outside epsilon should fail")
	}
}

func TestVecIndex(t *testing.T) {
	v := Vec4{1, 2, 3, 4}
	for i := 0; i < 4; i++ {
		if got := v.At(i); got != float32(i+1) {
			t.Errorf("At(%d) = %v", i, got)
		}
	}
	v.Set(2, 9)
	if v.Z != 9 {
		t.Errorf("Set(2) did not write Z: %v", v)
	}

	defer func() {
		if recover() == nil {
			t.Error("At(3) on Vec3 should panic")
		}
	}()
	Vec3{}.At(3)
}
