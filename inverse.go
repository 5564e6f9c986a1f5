package mat

import (
	"errors"
)

// ErrSingular is returned by Inv and InvRot3x3 when the determinant is
// exactly zero. Near-singular matrices are not detected; they invert to
// large but finite values.
var ErrSingular = errors.New("singular matrix")

// Det returns the determinant of m, computed from the 2x2 minors of the
// top and bottom half of the matrix (Laplace expansion by 2x2 blocks).
func (m Mat4) Det() float32 {
	b00 := m[0]*m[5] - m[1]*m[4]
	b01 := m[0]*m[6] - m[2]*m[4]
	b02 := m[0]*m[7] - m[3]*m[4]
	b03 := m[1]*m[6] - m[2]*m[5]
	b04 := m[1]*m[7] - m[3]*m[5]
	b05 := m[2]*m[7] - m[3]*m[6]
	b06 := m[8]*m[13] - m[9]*m[12]
	b07 := m[8]*m[14] - m[10]*m[12]
	b08 := m[8]*m[15] - m[11]*m[12]
	b09 := m[9]*m[14] - m[10]*m[13]
	b10 := m[9]*m[15] - m[11]*m[13]
	b11 := m[10]*m[15] - m[11]*m[14]

	return b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
}

// Inv returns the inverse of m via the adjugate, sharing the twelve 2x2
// minors between the determinant and the cofactors. If the determinant
// is exactly zero it returns m unchanged and ErrSingular.
func (m Mat4) Inv() (Mat4, error) {
	b00 := m[0]*m[5] - m[1]*m[4]
	b01 := m[0]*m[6] - m[2]*m[4]
	b02 := m[0]*m[7] - m[3]*m[4]
	b03 := m[1]*m[6] - m[2]*m[5]
	b04 := m[1]*m[7] - m[3]*m[5]
	b05 := m[2]*m[7] - m[3]*m[6]
	b06 := m[8]*m[13] - m[9]*m[12]
	b07 := m[8]*m[14] - m[10]*m[12]
	b08 := m[8]*m[15] - m[11]*m[12]
	b09 := m[9]*m[14] - m[10]*m[13]
	b10 := m[9]*m[15] - m[11]*m[13]
	b11 := m[10]*m[15] - m[11]*m[14]

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	if det == 0 {
		return m, ErrSingular
	}
	d := 1 / det

	return Mat4{
		(m[5]*b11 - m[6]*b10 + m[7]*b09) * d,
		(m[2]*b10 - m[1]*b11 - m[3]*b09) * d,
		(m[13]*b05 - m[14]*b04 + m[15]*b03) * d,
		(m[10]*b04 - m[9]*b05 - m[11]*b03) * d,
		(m[6]*b08 - m[4]*b11 - m[7]*b07) * d,
		(m[0]*b11 - m[2]*b08 + m[3]*b07) * d,
		(m[14]*b02 - m[12]*b05 - m[15]*b01) * d,
		(m[8]*b05 - m[10]*b02 + m[11]*b01) * d,
		(m[4]*b10 - m[5]*b08 + m[7]*b06) * d,
		(m[1]*b08 - m[0]*b10 - m[3]*b06) * d,
		(m[12]*b04 - m[13]*b02 + m[15]*b00) * d,
		(m[9]*b02 - m[8]*b04 - m[11]*b00) * d,
		(m[5]*b07 - m[4]*b09 - m[6]*b06) * d,
		(m[0]*b09 - m[1]*b07 + m[2]*b06) * d,
		(m[13]*b01 - m[12]*b03 - m[14]*b00) * d,
		(m[8]*b03 - m[9]*b01 + m[10]*b00) * d,
	}, nil
}

// InvRot3x3 returns the inverse of the upper-left 3x3 block of m by
// cofactor expansion, with zero translation and unit bottom row. Its
// transpose is the normal matrix of the model transform m. If the block
// determinant is exactly zero it returns m unchanged and ErrSingular.
func (m Mat4) InvRot3x3() (Mat4, error) {
	c00 := m[5]*m[10] - m[9]*m[6]
	c01 := m[8]*m[6] - m[4]*m[10]
	c02 := m[4]*m[9] - m[8]*m[5]

	det := m[0]*c00 + m[1]*c01 + m[2]*c02
	if det == 0 {
		return m, ErrSingular
	}
	d := 1 / det

	return Mat4{
		c00 * d, (m[9]*m[2] - m[1]*m[10]) * d, (m[1]*m[6] - m[5]*m[2]) * d, 0,
		c01 * d, (m[0]*m[10] - m[8]*m[2]) * d, (m[4]*m[2] - m[0]*m[6]) * d, 0,
		c02 * d, (m[8]*m[1] - m[0]*m[9]) * d, (m[0]*m[5] - m[4]*m[1]) * d, 0,
		0, 0, 0, 1,
	}, nil
}

// InvAffine returns the inverse of m assuming it is a composition of
// translation, rotation, and scale in that order (the matrix TRS
// builds), so the linear block is rotation*scale with orthogonal
// columns. The block inverts by transposing its columns scaled by their
// inverse squared norms; a scale-then-rotate composition or any other
// sheared block is out of contract and inverts inexactly. Zero scale on
// any axis yields infinities.
func (m Mat4) InvAffine() Mat4 {
	n0 := m[0]*m[0] + m[1]*m[1] + m[2]*m[2]
	n1 := m[4]*m[4] + m[5]*m[5] + m[6]*m[6]
	n2 := m[8]*m[8] + m[9]*m[9] + m[10]*m[10]

	var out Mat4
	out[0], out[4], out[8] = m[0]/n0, m[1]/n0, m[2]/n0
	out[1], out[5], out[9] = m[4]/n1, m[5]/n1, m[6]/n1
	out[2], out[6], out[10] = m[8]/n2, m[9]/n2, m[10]/n2
	out[12] = -(out[0]*m[12] + out[4]*m[13] + out[8]*m[14])
	out[13] = -(out[1]*m[12] + out[5]*m[13] + out[9]*m[14])
	out[14] = -(out[2]*m[12] + out[6]*m[13] + out[10]*m[14])
	out[15] = 1
	return out
}
