// Package gamemath provides the 4x4 projection math shared between the viewer
// client and the headless director server. It must have zero dependencies on
// ebiten or any graphics library so the dedicated server binary stays headless.
package gamemath

import "math"

// Mat4 is a 4x4 float32 matrix in column-major (OpenGL) layout:
// element (row, col) lives at index col*4+row.
type Mat4 [16]float32

// Identity returns the multiplicative identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ortho returns the standard GL orthographic projection matrix for the given
// clipping planes. It maps (l, b, -near) to (-1, -1, ·) and (r, t, -near) to
// (1, 1, ·) in normalized device coordinates. Degenerate planes (l == r,
// t == b, near == far) divide by zero and produce Inf/NaN entries; no
// validation is performed here.
func Ortho(l, r, t, b, near, far float32) Mat4 {
	return Mat4{
		2 / (r - l), 0, 0, 0,
		0, 2 / (t - b), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(r + l) / (r - l), -(t + b) / (t - b), -(far + near) / (far - near), 1,
	}
}

// Perspective returns the standard GL perspective projection matrix for a
// vertical field of view in radians, built from the symmetric view frustum at
// the near plane. As with Ortho, degenerate input flows through as Inf/NaN
// entries with no validation: a zero aspect collapses the frustum width, an
// infinite aspect (a width/height ratio with height 0) makes the frustum
// bounds infinite and their sum NaN.
func Perspective(fovy, aspect, near, far float32) Mat4 {
	top := near * float32(math.Tan(float64(fovy)/2))
	bottom := -top
	right := top * aspect
	left := -right
	return Mat4{
		2 * near / (right - left), 0, 0, 0,
		0, 2 * near / (top - bottom), 0, 0,
		(right + left) / (right - left), (top + bottom) / (top - bottom), (far + near) / (near - far), -1,
		0, 0, 2 * far * near / (near - far), 0,
	}
}

// Mul returns the matrix product a*b.
func Mul(a, b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// TransformPoint multiplies the point (x, y, z, 1) by m and returns the raw
// clip-space coordinates including w. Callers divide by w themselves when they
// need normalized device coordinates.
func TransformPoint(m Mat4, x, y, z float32) (cx, cy, cz, cw float32) {
	cx = m[0]*x + m[4]*y + m[8]*z + m[12]
	cy = m[1]*x + m[5]*y + m[9]*z + m[13]
	cz = m[2]*x + m[6]*y + m[10]*z + m[14]
	cw = m[3]*x + m[7]*y + m[11]*z + m[15]
	return cx, cy, cz, cw
}

// Project transforms the point (x, y, z) by m and performs the perspective
// divide. ok is false when w is too close to zero to divide safely (point on
// or behind the projection plane).
func Project(m Mat4, x, y, z float32) (nx, ny, nz float32, ok bool) {
	cx, cy, cz, cw := TransformPoint(m, x, y, z)
	if cw < 1e-6 && cw > -1e-6 {
		return 0, 0, 0, false
	}
	return cx / cw, cy / cw, cz / cw, true
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * 180 / math.Pi
}

// IsFinite reports whether every entry of m is a finite number.
func IsFinite(m Mat4) bool {
	for _, v := range m {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
