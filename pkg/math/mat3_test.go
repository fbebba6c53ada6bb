package math

import "testing"

func TestMat3InverseExact(t *testing.T) {
	m := Mat3FromRows([3][3]float32{
		{2, 2, 3},
		{4, 2, 5},
		{4, 2, 1},
	})
	want := Mat3FromRows([3][3]float32{
		{-0.5, 0.25, 0.25},
		{1, -0.625, 0.125},
		{0, 0.25, -0.25},
	})

	if got := m.Det(); got != 16 {
		t.Errorf("Det() = %v, want 16", got)
	}
	if got := m.Inverse(); got != want {
		t.Errorf("Inverse() = %v, want %v", got, want)
	}

	// The same vectors read as columns invert to the transposed result.
	cols := Mat3FromColumns(Vec3{2, 2, 3}, Vec3{4, 2, 5}, Vec3{4, 2, 1})
	wantCols := Mat3FromColumns(Vec3{-0.5, 0.25, 0.25}, Vec3{1, -0.625, 0.125}, Vec3{0, 0.25, -0.25})
	if got := cols.Inverse(); got != wantCols {
		t.Errorf("column Inverse() = %v, want %v", got, wantCols)
	}

	m.InverseSelf()
	if m != want {
		t.Errorf("InverseSelf() = %v, want %v", m, want)
	}
}

func TestMat3InverseRoundTrip(t *testing.T) {
	m := QuatFromAxisAngle(Vec3UnitY, 0.4).ToMat3().Mul(NewMat3(
		3, 0, 0,
		0, 0.5, 0,
		1, 0, 2,
	))
	if got := m.Mul(m.Inverse()); !got.Compare(Mat3Identity(), 1e-5) {
		t.Errorf("M * M^-1 = %v, want identity", got)
	}
}

func TestMat3Singular(t *testing.T) {
	m := NewMat3(
		1, 2, 3,
		2, 4, 6,
		0, 1, 0,
	)
	if got := m.Det(); got != 0 {
		t.Errorf("Det() = %v, want 0", got)
	}
	if got := m.Inverse(); got != Mat3Identity() {
		t.Errorf("singular Inverse() = %v, want identity", got)
	}
}

func TestMat3Constructors(t *testing.T) {
	a := NewMat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	others := map[string]Mat3{
		"FromSlice":   Mat3FromSlice([]float32{1, 2, 3, 4, 5, 6, 7, 8, 9}),
		"FromRows":    Mat3FromRows([3][3]float32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}),
		"FromColumns": Mat3FromColumns(Vec3{1, 4, 7}, Vec3{2, 5, 8}, Vec3{3, 6, 9}),
	}
	for name, m := range others {
		if m != a {
			t.Errorf("Mat3%s = %v, want %v", name, m, a)
		}
	}

	if got := a.Row(1); got != (Vec3{4, 5, 6}) {
		t.Errorf("Row(1) = %v", got)
	}
	if got := a.Col(1); got != (Vec3{2, 5, 8}) {
		t.Errorf("Col(1) = %v", got)
	}
	if got := a.At(1, 2); got != 6 {
		t.Errorf("At(1, 2) = %v, want 6", got)
	}
	a.Set(1, 2, 60)
	if got := a.At(1, 2); got != 60 {
		t.Errorf("At(1, 2) after Set = %v, want 60", got)
	}
	if got := Mat3Fill(0); got != (Mat3{}) {
		t.Errorf("Mat3Fill(0) = %v", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Mat3FromSlice with 3 elements should panic")
		}
	}()
	Mat3FromSlice([]float32{1, 2, 3})
}

func TestMat3Arithmetic(t *testing.T) {
	a := NewMat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	b := Mat3Fill(1)

	if got := a.Add(b); got != NewMat3(2, 3, 4, 5, 6, 7, 8, 9, 10) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != NewMat3(0, 1, 2, 3, 4, 5, 6, 7, 8) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != NewMat3(2, 4, 6, 8, 10, 12, 14, 16, 18) {
		t.Errorf("Scale: got %v", got)
	}

	// Row i of A*B sums row i of A.
	ab := a.Mul(b)
	ba := b.Mul(a)
	if ab != NewMat3(6, 6, 6, 15, 15, 15, 24, 24, 24) {
		t.Errorf("A*B: got %v", ab)
	}
	if ba != NewMat3(12, 15, 18, 12, 15, 18, 12, 15, 18) {
		t.Errorf("B*A: got %v", ba)
	}
	if ab == ba {
		t.Error("matrix multiplication should not commute here")
	}

	if got := a.Mul(Mat3Identity()); got != a {
		t.Errorf("A*I = %v, want %v", got, a)
	}
	if got := a.MulVec3(Vec3{1, 2, 3}); got != (Vec3{14, 32, 50}) {
		t.Errorf("MulVec3: got %v", got)
	}
	if got := a.Transpose().Transpose(); got != a {
		t.Errorf("double transpose: got %v", got)
	}

	m := a
	m.AddSelf(b)
	m.SubSelf(b)
	m.ScaleSelf(3)
	m.MulSelf(Mat3Identity())
	if want := a.Scale(3); m != want {
		t.Errorf("self variants: got %v, want %v", m, want)
	}
}

func TestMat2(t *testing.T) {
	m := NewMat2(4, 7, 2, 6)
	if got := m.Det(); got != 10 {
		t.Fatalf("Det() = %v, want 10", got)
	}

	inv := m.Inverse()
	if !inv.Compare(NewMat2(0.6, -0.7, -0.2, 0.4), 1e-6) {
		t.Errorf("Inverse() = %v", inv)
	}
	if !m.Mul(inv).Compare(Mat2Identity(), 1e-6) {
		t.Errorf("M * M^-1 = %v, want identity", m.Mul(inv))
	}

	if got := Mat2FromRows([2][2]float32{{4, 7}, {2, 6}}); got != m {
		t.Errorf("Mat2FromRows = %v", got)
	}
	if got := Mat2FromSlice([]float32{4, 7, 2, 6}); got != m {
		t.Errorf("Mat2FromSlice = %v", got)
	}
	if got := Mat2FromColumns(Vec2{4, 2}, Vec2{7, 6}); got != m {
		t.Errorf("Mat2FromColumns = %v", got)
	}
	if got := m.MulVec2(Vec2{1, 2}); got != (Vec2{18, 14}) {
		t.Errorf("MulVec2: got %v", got)
	}
	if got := m.Transpose(); got != NewMat2(4, 2, 7, 6) {
		t.Errorf("Transpose: got %v", got)
	}

	rot := NewMat2(0, -1, 1, 0)
	if m.Mul(rot) == rot.Mul(m) {
		t.Error("matrix multiplication should not commute here")
	}
	if got := Mat2Fill(2).Inverse(); got != Mat2Identity() {
		t.Errorf("singular Inverse() = %v, want identity", got)
	}

	s := m
	s.InverseSelf()
	if s != inv {
		t.Errorf("InverseSelf() = %v, want %v", s, inv)
	}
	s.AddSelf(Mat2Fill(1))
	s.SubSelf(Mat2Fill(1))
	s.ScaleSelf(10)
	if !s.Compare(NewMat2(6, -7, -2, 4), 1e-5) {
		t.Errorf("self variants: got %v", s)
	}
}
