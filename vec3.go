package mat

import (
	"fmt"
	"math"
)

// Vec3 is a 3-vector of float32.
type Vec3 [3]float32

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) NormSq() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func (v Vec3) Norm() float32 {
	return float32(math.Sqrt(float64(v.NormSq())))
}

func (v Vec3) Normalized() Vec3 {
	return v.Mul(1.0 / v.Norm())
}

func (v Vec3) Mul(a float32) Vec3 {
	return Vec3{v[0] * a, v[1] * a, v[2] * a}
}

func (v Vec3) Sub(a Vec3) Vec3 {
	return Vec3{v[0] - a[0], v[1] - a[1], v[2] - a[2]}
}

func (v Vec3) Add(a Vec3) Vec3 {
	return Vec3{v[0] + a[0], v[1] + a[1], v[2] + a[2]}
}

func (v Vec3) Dot(a Vec3) float32 {
	return v[0]*a[0] + v[1]*a[1] + v[2]*a[2]
}

func (v Vec3) Cross(a Vec3) Vec3 {
	return Vec3{
		v[1]*a[2] - v[2]*a[1],
		v[2]*a[0] - v[0]*a[2],
		v[0]*a[1] - v[1]*a[0],
	}
}

// CrossNormSq returns |v x a|^2 without building the cross product.
func (v Vec3) CrossNormSq(a Vec3) float32 {
	d := v.Dot(a)
	return v.NormSq()*a.NormSq() - d*d
}

// Transform applies m to the point a (homogeneous w = 1) and drops the
// fourth coordinate. No perspective division is performed.
func (m Mat4) Transform(a Vec3) Vec3 {
	return m.TransformW(a, 1)
}

// TransformAffine applies the affine transform m to the point a.
// It is Transform under another name, kept for affine-only call sites.
func (m Mat4) TransformAffine(a Vec3) Vec3 {
	return m.TransformW(a, 1)
}

// TransformW applies m to the homogeneous vector (a, w) and drops the
// fourth coordinate. w = 1 transforms a point, w = 0 a direction.
func (m Mat4) TransformW(a Vec3, w float32) Vec3 {
	var out Vec3
	out[0] = m[0]*a[0] + m[4]*a[1] + m[8]*a[2] + m[12]*w
	out[1] = m[1]*a[0] + m[5]*a[1] + m[9]*a[2] + m[13]*w
	out[2] = m[2]*a[0] + m[6]*a[1] + m[10]*a[2] + m[14]*w
	return out
}

// TransformX returns the x component of m applied to the point a.
// TransformX, TransformY, and TransformZ avoid computing the unused
// components in per-point filter loops.
func (m Mat4) TransformX(a Vec3) float32 {
	return m[0]*a[0] + m[4]*a[1] + m[8]*a[2] + m[12]
}

// TransformY returns the y component of m applied to the point a.
func (m Mat4) TransformY(a Vec3) float32 {
	return m[1]*a[0] + m[5]*a[1] + m[9]*a[2] + m[13]
}

// TransformZ returns the z component of m applied to the point a.
func (m Mat4) TransformZ(a Vec3) float32 {
	return m[2]*a[0] + m[6]*a[1] + m[10]*a[2] + m[14]
}

// String renders the components. Debugging aid only.
func (v Vec3) String() string {
	return fmt.Sprintf("[%g, %g, %g]", v[0], v[1], v[2])
}
