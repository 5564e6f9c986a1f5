package mat

import (
	"math"
)

// Translation returns the translation column of m.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// AxisX returns the transformed x basis axis (column 0) of m.
func (m Mat4) AxisX() Vec3 {
	return Vec3{m[0], m[1], m[2]}
}

// AxisY returns the transformed y basis axis (column 1) of m.
func (m Mat4) AxisY() Vec3 {
	return Vec3{m[4], m[5], m[6]}
}

// AxisZ returns the transformed z basis axis (column 2) of m.
func (m Mat4) AxisZ() Vec3 {
	return Vec3{m[8], m[9], m[10]}
}

// Scale returns the per-axis scale of m, the norms of its basis axes.
// Only meaningful for matrices without shear; a sheared basis reports a
// scale that does not reproduce m through TRS.
func (m Mat4) Scale() Vec3 {
	return Vec3{m.AxisX().Norm(), m.AxisY().Norm(), m.AxisZ().Norm()}
}

// EulerXYZ extracts XYZ-order Euler angles in degrees from the rotation
// block of m, dividing out Scale first. At the |ey| = 90 degree gimbal
// singularity ez is forced to 0 and ex absorbs the remaining rotation.
// Inverse of FromEulerXYZ (up to the radian/degree mismatch) for pure
// rotations only; shear makes the result meaningless.
func (m Mat4) EulerXYZ() Vec3 {
	s := m.Scale()
	r00 := float64(m[0] / s[0])
	r01 := float64(m[4] / s[1])
	r11 := float64(m[5] / s[1])
	r21 := float64(m[6] / s[1])
	r02 := float64(m[8] / s[2])
	r12 := float64(m[9] / s[2])
	r22 := float64(m[10] / s[2])

	var ex, ey, ez float64
	switch {
	case r02 >= 1:
		ey = math.Pi / 2
		ex = math.Atan2(r21, r11)
	case r02 <= -1:
		ey = -math.Pi / 2
		ex = math.Atan2(r21, r11)
	default:
		ey = math.Asin(r02)
		ex = math.Atan2(-r12, r22)
		ez = math.Atan2(-r01, r00)
	}

	const radToDeg = 180 / math.Pi
	return Vec3{
		float32(ex * radToDeg),
		float32(ey * radToDeg),
		float32(ez * radToDeg),
	}
}
