package mathutil

import "math"

// Mat4 is a 4×4 transform stored row-major as a flat array (value type).
// Points are treated as row vectors: translation lives in elements 12..14
// and MulVec3 multiplies from the left, so chains built with Mat4Mul apply
// left-to-right at the vector level.
type Mat4 [16]float64

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Mul returns a × b.
func Mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// MulVec3 transforms v by the matrix using homogeneous coordinate w
// (1 for points, 0 for directions). When the resulting w is nonzero the
// perspective divide is applied here; this is the only divide site in the
// pipeline.
func (m Mat4) MulVec3(v Vec3, w float64) Vec3 {
	x := m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*w
	y := m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*w
	z := m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*w
	ww := m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*w
	if ww != 0 {
		return Vec3{x / ww, y / ww, z / ww}
	}
	return Vec3{x, y, z}
}

// Translate returns a translation by (x, y, z).
func Translate(x, y, z float64) Mat4 {
	m := Mat4Identity()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

// Scale returns a non-uniform scale.
func Scale(x, y, z float64) Mat4 {
	m := Mat4Identity()
	m[0] = x
	m[5] = y
	m[10] = z
	return m
}

// RotX returns a rotation around the X axis. Angle in radians.
func RotX(a float64) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	m := Mat4Identity()
	m[5] = c
	m[6] = s
	m[9] = -s
	m[10] = c
	return m
}

// RotY returns a rotation around the Y axis.
func RotY(a float64) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	m := Mat4Identity()
	m[0] = c
	m[2] = -s
	m[8] = s
	m[10] = c
	return m
}

// RotZ returns a rotation around the Z axis.
func RotZ(a float64) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	m := Mat4Identity()
	m[0] = c
	m[1] = s
	m[4] = -s
	m[5] = c
	return m
}

// Perspective returns a perspective projection. fov is the vertical field of
// view in radians; near and far bound the visible depth range.
func Perspective(fov, aspect, near, far float64) Mat4 {
	var m Mat4
	tanHalf := math.Tan(fov / 2)
	m[0] = 1 / (aspect * tanHalf)
	m[5] = 1 / tanHalf
	m[10] = -(far + near) / (far - near)
	m[11] = -1
	m[14] = -(2 * far * near) / (far - near)
	return m
}

// LookAt returns a view matrix for a camera at eye looking toward target.
func LookAt(eye, target, up Vec3) Mat4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	m := Mat4Identity()
	m[0] = s[0]
	m[4] = s[1]
	m[8] = s[2]
	m[1] = u[0]
	m[5] = u[1]
	m[9] = u[2]
	m[2] = -f[0]
	m[6] = -f[1]
	m[10] = -f[2]
	m[12] = -s.Dot(eye)
	m[13] = -u.Dot(eye)
	m[14] = f.Dot(eye)
	return m
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	id := Mat4Identity()
	for i := 0; i < 16; i++ {
		d := m[i] - id[i]
		if d > 1e-8 || d < -1e-8 {
			return false
		}
	}
	return true
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
