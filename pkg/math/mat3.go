package math

import "fmt"

// Mat3 is a 3x3 matrix in column-major order.
// Layout: [m0 m3 m6]
//
//	[m1 m4 m7]
//	[m2 m5 m8]
type Mat3 [9]float32

// NewMat3 builds a matrix from elements given in row reading order.
func NewMat3(m00, m01, m02, m10, m11, m12, m20, m21, m22 float32) Mat3 {
	return Mat3{
		m00, m10, m20,
		m01, m11, m21,
		m02, m12, m22,
	}
}

// Mat3Identity returns an identity matrix.
func Mat3Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3Fill returns a matrix with every element set to v.
func Mat3Fill(v float32) Mat3 {
	return Mat3{v, v, v, v, v, v, v, v, v}
}

// Mat3FromSlice builds a matrix from a flat row-major slice of at least 9 elements.
func Mat3FromSlice(s []float32) Mat3 {
	_ = s[8]
	return NewMat3(s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7], s[8])
}

// Mat3FromRows builds a matrix from a 2D array of rows.
func Mat3FromRows(rows [3][3]float32) Mat3 {
	var m Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[c*3+r] = rows[r][c]
		}
	}
	return m
}

// Mat3FromColumns builds a matrix from column vectors.
func Mat3FromColumns(c0, c1, c2 Vec3) Mat3 {
	return Mat3{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
	}
}

// At returns the element at row, col.
func (m Mat3) At(row, col int) float32 {
	return m[col*3+row]
}

// Set assigns the element at row, col.
func (m *Mat3) Set(row, col int, v float32) {
	m[col*3+row] = v
}

// Col returns column i.
func (m Mat3) Col(i int) Vec3 {
	return Vec3{m[i*3], m[i*3+1], m[i*3+2]}
}

// Row returns row i.
func (m Mat3) Row(i int) Vec3 {
	return Vec3{m[i], m[3+i], m[6+i]}
}

// Add returns m + other.
func (m Mat3) Add(other Mat3) Mat3 {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

// AddSelf adds other to m in place.
func (m *Mat3) AddSelf(other Mat3) {
	*m = m.Add(other)
}

// Sub returns m - other.
func (m Mat3) Sub(other Mat3) Mat3 {
	for i := range m {
		m[i] -= other[i]
	}
	return m
}

// SubSelf subtracts other from m in place.
func (m *Mat3) SubSelf(other Mat3) {
	*m = m.Sub(other)
}

// Scale returns m * s.
func (m Mat3) Scale(s float32) Mat3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// ScaleSelf multiplies m by s in place.
func (m *Mat3) ScaleSelf(s float32) {
	*m = m.Scale(s)
}

// Mul returns m * other.
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			result[col*3+row] =
				m[0*3+row]*other[col*3+0] +
					m[1*3+row]*other[col*3+1] +
					m[2*3+row]*other[col*3+2]
		}
	}
	return result
}

// MulSelf sets m to m * other.
func (m *Mat3) MulSelf(other Mat3) {
	*m = m.Mul(other)
}

// MulVec3 returns m * v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// adjugate returns the transposed cofactor matrix.
func (m Mat3) adjugate() Mat3 {
	a00, a10, a20 := m[0], m[1], m[2]
	a01, a11, a21 := m[3], m[4], m[5]
	a02, a12, a22 := m[6], m[7], m[8]

	return Mat3{
		a11*a22 - a12*a21, -(a10*a22 - a12*a20), a10*a21 - a11*a20,
		-(a01*a22 - a02*a21), a00*a22 - a02*a20, -(a00*a21 - a01*a20),
		a01*a12 - a02*a11, -(a00*a12 - a02*a10), a00*a11 - a01*a10,
	}
}

// Det returns the determinant.
func (m Mat3) Det() float32 {
	adj := m.adjugate()
	// Expansion along row 0: cofactor (0, c) sits at adj[c].
	return m[0]*adj[0] + m[3]*adj[1] + m[6]*adj[2]
}

// Inverse returns the inverse of the matrix.
// Returns identity if the matrix is singular.
func (m Mat3) Inverse() Mat3 {
	adj := m.adjugate()
	det := m[0]*adj[0] + m[3]*adj[1] + m[6]*adj[2]
	if det == 0 {
		return Mat3Identity()
	}
	return adj.Scale(1 / det)
}

// InverseSelf inverts m in place.
func (m *Mat3) InverseSelf() {
	*m = m.Inverse()
}

// Mat4 embeds m in the upper-left corner of an identity Mat4.
func (m Mat3) Mat4() Mat4 {
	return Mat4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

// Compare reports whether every element is within epsilon of other.
func (m Mat3) Compare(other Mat3, epsilon float32) bool {
	for i := range m {
		if !ApproxEqual(m[i], other[i], epsilon) {
			return false
		}
	}
	return true
}

func (m Mat3) String() string {
	return fmt.Sprintf("[%v %v %v]", m.Row(0), m.Row(1), m.Row(2))
}
