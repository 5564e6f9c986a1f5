package mat

import (
	"errors"
	"testing"
)

func TestInv(t *testing.T) {
	for name, m := range map[string]Mat4{
		"Ident":  Ident(),
		"Affine": Translate(0.1, 0.2, 0.3).Mul(Scale(1.1, 1.2, 1.3)).Mul(Rotate(1, 0, 0, 0.5)),
		"Projective": Perspective(60, 1.5, 0.5, 50).
			Mul(Rotate(0, 1, 0, 0.3)).
			Mul(Translate(1, -2, -10)),
	} {
		m := m
		t.Run(name, func(t *testing.T) {
			mi, err := m.Inv()
			if err != nil {
				t.Fatal(err)
			}
			matNear(t, Ident(), m.Mul(mi), 1e-3)
			matNear(t, Ident(), mi.Mul(m), 1e-3)
		})
	}
}

func TestInvSingular(t *testing.T) {
	for name, m := range map[string]Mat4{
		"Zero":      {},
		"FlatScale": Scale(1, 1, 0),
	} {
		m := m
		t.Run(name, func(t *testing.T) {
			mi, err := m.Inv()
			if !errors.Is(err, ErrSingular) {
				t.Fatalf("expected ErrSingular, got %v", err)
			}
			if mi != m {
				t.Error("singular input expected to be returned unchanged")
			}
		})
	}
}

func TestInvAffine(t *testing.T) {
	// Translation, then rotation, then scale: the composition order
	// InvAffine requires, leaving the linear block with orthogonal
	// columns.
	m0 := Translate(0.1, 0.2, 0.3)
	m1 := Rotate(1, 0, 0, 0.5)
	m2 := Scale(1.1, 1.2, 1.3)

	m := m0.MulAffine(m1).MulAffine(m2)
	mi := m.InvAffine()

	diag := m.Mul(mi)
	for i := 0; i < 4; i++ {
		t.Logf("%+0.1f %+0.1f %+0.1f %+0.1f", diag[4*i+0], diag[4*i+1], diag[4*i+2], diag[4*i+3])
		for j := 0; j < 3; j++ {
			if i == j {
				if diag[4*i+j] < 0.99 || 1.01 < diag[4*i+j] {
					t.Errorf("m(%d, %d): %0.3f", i, j, diag[4*i+j])
				}
			} else {
				if diag[4*i+j] < -0.01 || 0.01 < diag[4*i+j] {
					t.Errorf("m(%d, %d): %0.3f", i, j, diag[4*i+j])
				}
			}
		}
	}

	full, err := m.Inv()
	if err != nil {
		t.Fatal(err)
	}
	matNear(t, full, mi, 1e-4)

	// A TRS-built matrix is exactly the shape InvAffine contracts for.
	trs := TRS(NewVec3(1, -2, 3), NewQuatAxisAngle(NewVec3(0, 1, 0), 0.7), NewVec3(2, 0.5, 1.5))
	full, err = trs.Inv()
	if err != nil {
		t.Fatal(err)
	}
	matNear(t, full, trs.InvAffine(), 1e-4)
}

func TestInvRot3x3(t *testing.T) {
	m := Translate(5, 6, 7).
		MulAffine(Rotate(0, 1, 0, 0.4)).
		MulAffine(Scale(2, 3, 4))

	mi, err := m.InvRot3x3()
	if err != nil {
		t.Fatal(err)
	}

	if got := mi.Translation(); got != (Vec3{}) {
		t.Errorf("translation expected to be zero, got %v", got)
	}

	// The inverted block composed with the original block is identity;
	// the original translation must not leak in.
	rot := m
	rot[12], rot[13], rot[14] = 0, 0, 0
	matNear(t, Ident(), mi.Mul(rot), 1e-4)
}

func TestInvRot3x3Singular(t *testing.T) {
	m := Scale(1, 0, 1)
	mi, err := m.InvRot3x3()
	if !errors.Is(err, ErrSingular) {
		t.Fatalf("expected ErrSingular, got %v", err)
	}
	if mi != m {
		t.Error("singular input expected to be returned unchanged")
	}
}

func TestDet(t *testing.T) {
	for _, tt := range []struct {
		m   Mat4
		det float32
	}{
		{Ident(), 1},
		{Translate(3, -1, 2), 1},
		{Scale(2, 3, 4), 24},
		{Rotate(0, 0, 1, 0.8), 1},
		{Mat4{}, 0},
		{Scale(1, 1, 0), 0},
	} {
		if diff := tt.m.Det() - tt.det; diff < -1e-4 || 1e-4 < diff {
			t.Errorf("det of %v expected to be %0.3f, got %0.3f", tt.m, tt.det, tt.m.Det())
		}
	}
}
