package mat

import (
	"math"
)

// Quat is a quaternion (x, y, z, w) of float32. TRS expects unit
// quaternions; use Normalized before passing a quaternion of unknown
// magnitude.
type Quat [4]float32

func NewQuat(x, y, z, w float32) Quat {
	return Quat{x, y, z, w}
}

// NewQuatAxisAngle returns the unit quaternion rotating by ang radians
// around the unit-length axis.
func NewQuatAxisAngle(axis Vec3, ang float32) Quat {
	s := float32(math.Sin(float64(ang / 2)))
	c := float32(math.Cos(float64(ang / 2)))
	return Quat{axis[0] * s, axis[1] * s, axis[2] * s, c}
}

func (q Quat) NormSq() float32 {
	return q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3]
}

func (q Quat) Norm() float32 {
	return float32(math.Sqrt(float64(q.NormSq())))
}

func (q Quat) Normalized() Quat {
	n := 1 / q.Norm()
	return Quat{q[0] * n, q[1] * n, q[2] * n, q[3] * n}
}
