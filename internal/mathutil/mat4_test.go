package mathutil

import (
	"math"
	"testing"
)

func mat4Near(a, b Mat4, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestMat4IdentityRoundTrip(t *testing.T) {
	m := Mat4Mul(Mat4Mul(RotX(0.3), RotY(1.1)), Translate(2, -3, 7))

	if got := Mat4Mul(Mat4Identity(), m); !mat4Near(got, m, 1e-12) {
		t.Errorf("I × M != M:\n%v\n%v", got, m)
	}
	if got := Mat4Mul(m, Mat4Identity()); !mat4Near(got, m, 1e-12) {
		t.Errorf("M × I != M:\n%v\n%v", got, m)
	}
}

func TestMat4Translate(t *testing.T) {
	p := Translate(1, 2, 3).MulVec3(Vec3{10, 20, 30}, 1)
	if p != (Vec3{11, 22, 33}) {
		t.Errorf("translated point = %v", p)
	}

	// Directions (w=0) are unaffected by translation.
	d := Translate(1, 2, 3).MulVec3(Vec3{10, 20, 30}, 0)
	if d != (Vec3{10, 20, 30}) {
		t.Errorf("translated direction = %v", d)
	}
}

func TestMat4Rotations(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"rotY quarter turn", RotY(math.Pi / 2), Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"rotX quarter turn", RotX(math.Pi / 2), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"rotZ quarter turn", RotZ(math.Pi / 2), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
	}
	for _, tc := range tests {
		got := tc.m.MulVec3(tc.in, 1)
		for i := range got {
			if math.Abs(got[i]-tc.want[i]) > 1e-12 {
				t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
				break
			}
		}
	}
}

func TestMat4Scale(t *testing.T) {
	p := Scale(2, 3, 4).MulVec3(Vec3{1, 1, 1}, 1)
	if p != (Vec3{2, 3, 4}) {
		t.Errorf("scaled point = %v", p)
	}
}

func TestLookAtCanonicalCamera(t *testing.T) {
	// Camera at the origin looking down -Z with Y up is the identity view.
	m := LookAt(Vec3{0, 0, 0}, Vec3{0, 0, -1}, Vec3{0, 1, 0})
	if !m.IsIdentity() {
		t.Errorf("canonical LookAt = %v, want identity", m)
	}
}

func TestPerspectiveDepthShrinksX(t *testing.T) {
	proj := Perspective(math.Pi/2, 1, 0.1, 100)

	near := proj.MulVec3(Vec3{1, 1, -2}, 1)
	far := proj.MulVec3(Vec3{1, 1, -10}, 1)

	if math.Abs(far[0]) >= math.Abs(near[0]) {
		t.Errorf("farther point did not shrink: near x=%v far x=%v", near[0], far[0])
	}
	if near[2] >= far[2] {
		t.Errorf("NDC depth not increasing with distance: near z=%v far z=%v", near[2], far[2])
	}
}

func TestMulVec3NoDivideForDirections(t *testing.T) {
	proj := Perspective(math.Pi/2, 1, 0.1, 100)
	// w=0 through a projective matrix yields ww = -z; a direction along -Z
	// gets divided, but one in the XY plane must pass through undivided.
	d := proj.MulVec3(Vec3{1, 0, 0}, 0)
	if math.IsNaN(d[0]) || math.IsInf(d[0], 0) {
		t.Errorf("direction transform produced %v", d)
	}
}

func TestDeg2Rad(t *testing.T) {
	if got := Deg2Rad(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("Deg2Rad(180) = %v", got)
	}
}
