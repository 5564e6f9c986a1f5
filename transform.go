package mat

import (
	"math"
)

// Translate returns the matrix translating by (x, y, z).
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scale returns the matrix scaling by (x, y, z).
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Rotate returns the matrix rotating by ang radians around the axis
// (x, y, z). The axis must be unit length; a non-unit axis produces a
// wrongly scaled rotation.
func Rotate(x, y, z, ang float32) Mat4 {
	s := float32(math.Sin(float64(ang)))
	c := float32(math.Cos(float64(ang)))
	t := 1 - c

	return Mat4{
		c + x*x*t, y*x*t + z*s, z*x*t - y*s, 0,
		x*y*t - z*s, c + y*y*t, z*y*t + x*s, 0,
		x*z*t + y*s, y*z*t - x*s, c + z*z*t, 0,
		0, 0, 0, 1,
	}
}

// TRS composes translation t, unit rotation quaternion q, and per-axis
// scale s into a single affine matrix, equivalent to
// Translate(t...).Mul(rotation of q).Mul(Scale(s...)) without the two
// intermediate products. This is the per-object world matrix builder.
func TRS(t Vec3, q Quat, s Vec3) Mat4 {
	x2, y2, z2 := q[0]+q[0], q[1]+q[1], q[2]+q[2]
	xx, xy, xz := q[0]*x2, q[0]*y2, q[0]*z2
	yy, yz, zz := q[1]*y2, q[1]*z2, q[2]*z2
	wx, wy, wz := q[3]*x2, q[3]*y2, q[3]*z2

	return Mat4{
		(1 - (yy + zz)) * s[0], (xy + wz) * s[0], (xz - wy) * s[0], 0,
		(xy - wz) * s[1], (1 - (xx + zz)) * s[1], (yz + wx) * s[1], 0,
		(xz + wy) * s[2], (yz - wx) * s[2], (1 - (xx + yy)) * s[2], 0,
		t[0], t[1], t[2], 1,
	}
}

// LookAt returns the camera matrix for an eye at position looking at
// target with the given up hint. The right-handed basis
//
//	z = normalize(position - target)
//	x = normalize(up x z)
//	y = z x x
//
// is written as the rows of the rotation block, with position as the
// translation column. up must not be parallel to position - target;
// a parallel up yields a degenerate basis.
func LookAt(position, target, up Vec3) Mat4 {
	z := position.Sub(target).Normalized()
	x := up.Cross(z).Normalized()
	y := z.Cross(x)

	return Mat4{
		x[0], y[0], z[0], 0,
		x[1], y[1], z[1], 0,
		x[2], y[2], z[2], 0,
		position[0], position[1], position[2], 1,
	}
}

// FromEulerXYZ returns the rotation matrix for XYZ-order Euler angles
// ex, ey, ez in radians. EulerXYZ is its inverse for pure rotations,
// but note that it reports degrees.
func FromEulerXYZ(ex, ey, ez float32) Mat4 {
	a := float32(math.Cos(float64(ex)))
	b := float32(math.Sin(float64(ex)))
	c := float32(math.Cos(float64(ey)))
	d := float32(math.Sin(float64(ey)))
	e := float32(math.Cos(float64(ez)))
	f := float32(math.Sin(float64(ez)))

	ae, af := a*e, a*f
	be, bf := b*e, b*f

	return Mat4{
		c * e, af + be*d, bf - ae*d, 0,
		-c * f, ae - bf*d, be + af*d, 0,
		d, -b * c, a * c, 0,
		0, 0, 0, 1,
	}
}
