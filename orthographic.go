package mat

// Orthographic returns the orthographic projection matrix mapping the
// axis-aligned eye-space box to the [-1, 1] clip cube (OpenGL
// convention). near and far are the positive distances to the clip
// planes; the bounds must describe a non-empty volume.
func Orthographic(left, right, bottom, top, near, far float32) Mat4 {
	return Mat4{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
