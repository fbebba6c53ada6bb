package math

import "fmt"

// Mat2 is a 2x2 matrix in column-major order.
// Layout: [m0 m2]
//
//	[m1 m3]
type Mat2 [4]float32

// NewMat2 builds a matrix from elements given in row reading order.
func NewMat2(m00, m01, m10, m11 float32) Mat2 {
	return Mat2{m00, m10, m01, m11}
}

// Mat2Identity returns an identity matrix.
func Mat2Identity() Mat2 {
	return Mat2{1, 0, 0, 1}
}

// Mat2Fill returns a matrix with every element set to v.
func Mat2Fill(v float32) Mat2 {
	return Mat2{v, v, v, v}
}

// Mat2FromSlice builds a matrix from a flat row-major slice of at least 4 elements.
func Mat2FromSlice(s []float32) Mat2 {
	_ = s[3]
	return NewMat2(s[0], s[1], s[2], s[3])
}

// Mat2FromRows builds a matrix from a 2D array of rows.
func Mat2FromRows(rows [2][2]float32) Mat2 {
	return NewMat2(rows[0][0], rows[0][1], rows[1][0], rows[1][1])
}

// Mat2FromColumns builds a matrix from column vectors.
func Mat2FromColumns(c0, c1 Vec2) Mat2 {
	return Mat2{c0.X, c0.Y, c1.X, c1.Y}
}

// At returns the element at row, col.
func (m Mat2) At(row, col int) float32 {
	return m[col*2+row]
}

// Set assigns the element at row, col.
func (m *Mat2) Set(row, col int, v float32) {
	m[col*2+row] = v
}

// Col returns column i.
func (m Mat2) Col(i int) Vec2 {
	return Vec2{m[i*2], m[i*2+1]}
}

// Row returns row i.
func (m Mat2) Row(i int) Vec2 {
	return Vec2{m[i], m[2+i]}
}

// Add returns m + other.
func (m Mat2) Add(other Mat2) Mat2 {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

// AddSelf adds other to m in place.
func (m *Mat2) AddSelf(other Mat2) {
	*m = m.Add(other)
}

// Sub returns m - other.
func (m Mat2) Sub(other Mat2) Mat2 {
	for i := range m {
		m[i] -= other[i]
	}
	return m
}

// SubSelf subtracts other from m in place.
func (m *Mat2) SubSelf(other Mat2) {
	*m = m.Sub(other)
}

// Scale returns m * s.
func (m Mat2) Scale(s float32) Mat2 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// ScaleSelf multiplies m by s in place.
func (m *Mat2) ScaleSelf(s float32) {
	*m = m.Scale(s)
}

// Mul returns m * other.
func (m Mat2) Mul(other Mat2) Mat2 {
	var result Mat2
	for col := 0; col < 2; col++ {
		for row := 0; row < 2; row++ {
			result[col*2+row] = m[row]*other[col*2] + m[2+row]*other[col*2+1]
		}
	}
	return result
}

// MulSelf sets m to m * other.
func (m *Mat2) MulSelf(other Mat2) {
	*m = m.Mul(other)
}

// MulVec2 returns m * v.
func (m Mat2) MulVec2(v Vec2) Vec2 {
	return Vec2{
		m[0]*v.X + m[2]*v.Y,
		m[1]*v.X + m[3]*v.Y,
	}
}

// Transpose returns the transposed matrix.
func (m Mat2) Transpose() Mat2 {
	return Mat2{m[0], m[2], m[1], m[3]}
}

// Det returns the determinant.
func (m Mat2) Det() float32 {
	return m[0]*m[3] - m[2]*m[1]
}

// Inverse returns the inverse of the matrix.
// Returns identity if the matrix is singular.
func (m Mat2) Inverse() Mat2 {
	det := m.Det()
	if det == 0 {
		return Mat2Identity()
	}
	invDet := 1 / det
	return Mat2{
		m[3] * invDet, -m[1] * invDet,
		-m[2] * invDet, m[0] * invDet,
	}
}

// InverseSelf inverts m in place.
func (m *Mat2) InverseSelf() {
	*m = m.Inverse()
}

// Compare reports whether every element is within epsilon of other.
func (m Mat2) Compare(other Mat2, epsilon float32) bool {
	for i := range m {
		if !ApproxEqual(m[i], other[i], epsilon) {
			return false
		}
	}
	return true
}

func (m Mat2) String() string {
	return fmt.Sprintf("[%v %v]", m.Row(0), m.Row(1))
}
