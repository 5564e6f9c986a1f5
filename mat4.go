// Package mat implements the dense 4x4 matrix, 3-vector, and quaternion
// algebra used by the point cloud tools to build model, view, and
// projection transforms.
//
// Mat4 is stored in column-major order so that it can be passed to a
// graphics API expecting column-major mat4 uniforms without conversion.
// All types are plain values: copying is assignment, and no operation
// aliases its inputs with its output.
package mat

import "fmt"

// Mat4 is a 4x4 matrix of float32 in column-major order.
// Element (row r, column c) is at index r + c*4:
//
//	| 0  4  8  12 |
//	| 1  5  9  13 |
//	| 2  6  10 14 |
//	| 3  7  11 15 |
//
// Column 3 (indices 12..14) holds the translation of an affine transform.
// The zero value Mat4{} is the zero matrix; use Ident for the identity.
type Mat4 [16]float32

// Ident returns a fresh identity matrix.
func Ident() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Equal reports exact IEEE equality of all 16 elements.
// Callers needing tolerance must compare element-wise themselves.
func (m Mat4) Equal(a Mat4) bool {
	return m == a
}

// IsIdent reports whether m is exactly the identity matrix.
func (m Mat4) IsIdent() bool {
	return m == Ident()
}

// Add returns the element-wise sum m + a.
func (m Mat4) Add(a Mat4) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] + a[i]
	}
	return out
}

// Mul returns the matrix product m * a.
// The product is unrolled one column of a at a time: each output column
// is the four dot products of m's rows against that column.
func (m Mat4) Mul(a Mat4) Mat4 {
	b0, b1, b2, b3 := a[0], a[1], a[2], a[3]
	var out Mat4
	out[0] = m[0]*b0 + m[4]*b1 + m[8]*b2 + m[12]*b3
	out[1] = m[1]*b0 + m[5]*b1 + m[9]*b2 + m[13]*b3
	out[2] = m[2]*b0 + m[6]*b1 + m[10]*b2 + m[14]*b3
	out[3] = m[3]*b0 + m[7]*b1 + m[11]*b2 + m[15]*b3

	b0, b1, b2, b3 = a[4], a[5], a[6], a[7]
	out[4] = m[0]*b0 + m[4]*b1 + m[8]*b2 + m[12]*b3
	out[5] = m[1]*b0 + m[5]*b1 + m[9]*b2 + m[13]*b3
	out[6] = m[2]*b0 + m[6]*b1 + m[10]*b2 + m[14]*b3
	out[7] = m[3]*b0 + m[7]*b1 + m[11]*b2 + m[15]*b3

	b0, b1, b2, b3 = a[8], a[9], a[10], a[11]
	out[8] = m[0]*b0 + m[4]*b1 + m[8]*b2 + m[12]*b3
	out[9] = m[1]*b0 + m[5]*b1 + m[9]*b2 + m[13]*b3
	out[10] = m[2]*b0 + m[6]*b1 + m[10]*b2 + m[14]*b3
	out[11] = m[3]*b0 + m[7]*b1 + m[11]*b2 + m[15]*b3

	b0, b1, b2, b3 = a[12], a[13], a[14], a[15]
	out[12] = m[0]*b0 + m[4]*b1 + m[8]*b2 + m[12]*b3
	out[13] = m[1]*b0 + m[5]*b1 + m[9]*b2 + m[13]*b3
	out[14] = m[2]*b0 + m[6]*b1 + m[10]*b2 + m[14]*b3
	out[15] = m[3]*b0 + m[7]*b1 + m[11]*b2 + m[15]*b3
	return out
}

// MulAffine returns the matrix product m * a assuming both operands are
// affine, with bottom row (0, 0, 0, 1). The bottom row of a is not read.
func (m Mat4) MulAffine(a Mat4) Mat4 {
	b0, b1, b2 := a[0], a[1], a[2]
	var out Mat4
	out[0] = m[0]*b0 + m[4]*b1 + m[8]*b2
	out[1] = m[1]*b0 + m[5]*b1 + m[9]*b2
	out[2] = m[2]*b0 + m[6]*b1 + m[10]*b2

	b0, b1, b2 = a[4], a[5], a[6]
	out[4] = m[0]*b0 + m[4]*b1 + m[8]*b2
	out[5] = m[1]*b0 + m[5]*b1 + m[9]*b2
	out[6] = m[2]*b0 + m[6]*b1 + m[10]*b2

	b0, b1, b2 = a[8], a[9], a[10]
	out[8] = m[0]*b0 + m[4]*b1 + m[8]*b2
	out[9] = m[1]*b0 + m[5]*b1 + m[9]*b2
	out[10] = m[2]*b0 + m[6]*b1 + m[10]*b2

	b0, b1, b2 = a[12], a[13], a[14]
	out[12] = m[0]*b0 + m[4]*b1 + m[8]*b2 + m[12]
	out[13] = m[1]*b0 + m[5]*b1 + m[9]*b2 + m[13]
	out[14] = m[2]*b0 + m[6]*b1 + m[10]*b2 + m[14]
	out[15] = 1
	return out
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// String renders the 16 elements in storage order. Debugging aid only.
func (m Mat4) String() string {
	return fmt.Sprintf(
		"[%g, %g, %g, %g, %g, %g, %g, %g, %g, %g, %g, %g, %g, %g, %g, %g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11], m[12], m[13], m[14], m[15],
	)
}

// Float32Slice returns the elements as a []float32 in storage order,
// backed by a copy of m.
func (m Mat4) Float32Slice() []float32 {
	return m[:]
}
