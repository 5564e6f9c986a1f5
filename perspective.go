package mat

import (
	"math"
)

// Frustum returns the off-center perspective projection matrix mapping
// the right-handed eye-space frustum to clip space with w' = -z_eye
// (OpenGL convention). near and far are the positive distances to the
// clip planes; the bounds must describe a non-empty volume.
func Frustum(left, right, bottom, top, near, far float32) Mat4 {
	return Mat4{
		2 * near / (right - left), 0, 0, 0,
		0, 2 * near / (top - bottom), 0, 0,
		(right + left) / (right - left), (top + bottom) / (top - bottom), -(far + near) / (far - near), -1,
		0, 0, -2 * far * near / (far - near), 0,
	}
}

// Perspective returns the symmetric perspective projection matrix for a
// vertical field of view of fovy degrees and the given width/height
// aspect ratio.
func Perspective(fovy, aspect, near, far float32) Mat4 {
	top := near * float32(math.Tan(float64(fovy)*math.Pi/360))
	right := top * aspect
	return Frustum(-right, right, -top, top, near, far)
}
