package mat

import (
	"testing"
)

func transformNaive(m Mat4, a Vec3, w float32) Vec3 {
	var out Vec3
	in := [4]float32{a[0], a[1], a[2], w}
	for i := 0; i < 3; i++ {
		var sum float32
		for k := 0; k < 4; k++ {
			sum += m[4*k+i] * in[k]
		}
		out[i] = sum
	}
	return out
}

func TestTransform(t *testing.T) {
	m0 := Translate(0.1, 0.2, 0.3)
	m1 := Scale(1.1, 1.2, 1.3)
	m2 := Rotate(1, 0, 0, 0.1)
	m3 := Rotate(0, 1, 0, 0.1)
	m4 := Rotate(0, 0, 1, 0.1)

	m := m0.Mul(m1).Mul(m2).Mul(m3).Mul(m4)

	in := NewVec3(1, 2, 3)
	vecNear(t, transformNaive(m, in, 1), m.Transform(in), 0.01)
	vecNear(t, m.Transform(in), m.TransformAffine(in), 0.01)
}

func TestTransformW(t *testing.T) {
	m := Translate(5, 6, 7).Mul(Rotate(0, 0, 1, 0.3))
	in := NewVec3(1, 2, 3)

	vecNear(t, transformNaive(m, in, 1), m.TransformW(in, 1), 0.01)

	// w=0 transforms a direction: translation must not contribute.
	dir := m.TransformW(in, 0)
	vecNear(t, transformNaive(m, in, 0), dir, 0.01)
	vecNear(t, Rotate(0, 0, 1, 0.3).Transform(in), dir, 0.01)
}

func TestTransformComponents(t *testing.T) {
	m := Translate(0.5, -0.5, 2).Mul(Rotate(0, 1, 0, 0.4)).Mul(Scale(2, 2, 2))
	in := NewVec3(-1, 2, 0.5)

	v := m.Transform(in)
	if x := m.TransformX(in); x != v[0] {
		t.Errorf("TransformX expected to be %0.3f, got %0.3f", v[0], x)
	}
	if y := m.TransformY(in); y != v[1] {
		t.Errorf("TransformY expected to be %0.3f, got %0.3f", v[1], y)
	}
	if z := m.TransformZ(in); z != v[2] {
		t.Errorf("TransformZ expected to be %0.3f, got %0.3f", v[2], z)
	}
}

func TestCross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	z := NewVec3(0, 0, 1)

	vecNear(t, z, x.Cross(y), 1e-6)
	vecNear(t, x, y.Cross(z), 1e-6)
	vecNear(t, z.Mul(-1), y.Cross(x), 1e-6)

	a := NewVec3(1.5, -2, 0.5)
	b := NewVec3(0.3, 4, -1)
	c := a.Cross(b)
	if d := c.Dot(a); d < -1e-5 || 1e-5 < d {
		t.Errorf("cross product expected to be orthogonal to a, dot %0.6f", d)
	}
	if d := c.Dot(b); d < -1e-5 || 1e-5 < d {
		t.Errorf("cross product expected to be orthogonal to b, dot %0.6f", d)
	}
	if diff := c.NormSq() - a.CrossNormSq(b); diff < -1e-4 || 1e-4 < diff {
		t.Errorf("CrossNormSq expected to be %0.5f, got %0.5f", c.NormSq(), a.CrossNormSq(b))
	}
}

func TestNormalized(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalized()
	if n := v.Norm(); n < 0.9999 || 1.0001 < n {
		t.Errorf("normalized vector expected to have norm 1, got %0.5f", n)
	}
	vecNear(t, NewVec3(0.6, 0.8, 0), v, 1e-5)
}
