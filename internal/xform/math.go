package xform

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Pos is a point or a direction in 3D space.
type Pos [3]float32

// Mat4 is a 4x4 matrix in column-major order (OpenGL-style).
// Element (col, row) lives at index col*4+row.
type Mat4 [16]float32

const (
	// FieldOfView is the vertical field of view in radians.
	FieldOfView float32 = 3.141592 / 3.0
	ZNear       float32 = 0.1
	ZFar        float32 = 1024.0
)

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Model builds a uniform scale followed by a translation.
func Model(s, dx, dy, dz float32) Mat4 {
	return Mat4{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
		dx, dy, dz, 1,
	}
}

// Normalize divides v by its length. The zero vector yields NaN components.
func Normalize(v Pos) Pos {
	length := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	return Pos{v[0] / length, v[1] / length, v[2] / length}
}

// Cross returns b × a. Note the operand order.
func Cross(a, b Pos) Pos {
	return Pos{
		b[1]*a[2] - b[2]*a[1],
		b[2]*a[0] - b[0]*a[2],
		b[0]*a[1] - b[1]*a[0],
	}
}

// Dot returns the negated dot product, -(b·a).
func Dot(a, b Pos) float32 {
	return -b[0]*a[0] - b[1]*a[1] - b[2]*a[2]
}

// Look builds the view matrix. target is used as the forward direction
// as-is; eye only contributes to the translation column.
func Look(eye, target, up Pos) Mat4 {
	f := Normalize(target)
	s := Normalize(Cross(f, up))
	u := Cross(s, f)

	return Mat4{
		s[0], u[0], f[0], 0,
		s[1], u[1], f[1], 0,
		s[2], u[2], f[2], 0,
		Dot(s, eye), Dot(u, eye), Dot(f, eye), 1,
	}
}

// Projection builds a perspective projection for a viewport of the given
// pixel size. aspect = height/width, NDC z ∈ [-1,1].
func Projection(width, height uint32) Mat4 {
	aspect := float32(height) / float32(width)
	f := 1.0 / math32.Tan(FieldOfView/2.0)
	div := ZFar - ZNear

	return Mat4{
		f * aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (ZFar + ZNear) / div, 1,
		0, 0, -(2.0 * ZFar * ZNear) / div, 0,
	}
}

// At returns the element in column col, row row.
func (m Mat4) At(col, row int) float32 { return m[col*4+row] }

// Array returns the matrix as four columns.
func (m Mat4) Array() [4][4]float32 {
	var a [4][4]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			a[col][row] = m[col*4+row]
		}
	}
	return a
}

// GL converts m for use with mathgl.
func (m Mat4) GL() mgl32.Mat4 { return mgl32.Mat4(m) }

// Mul performs column-major matrix multiplication: result = m * other.
func (m Mat4) Mul(other Mat4) Mat4 {
	return Mat4(m.GL().Mul4(other.GL()))
}

// MulPoint transforms a point (w=1) and returns clip coordinates along with
// the perspective-divided position. ok is false when w is zero.
func (m Mat4) MulPoint(p Pos) (clip [4]float32, ndc Pos, ok bool) {
	r := m.GL().Mul4x1(mgl32.Vec4{p[0], p[1], p[2], 1})
	clip = [4]float32(r)
	if r[3] == 0 {
		return clip, Pos{r[0], r[1], r[2]}, false
	}
	inv := 1.0 / r[3]
	return clip, Pos{r[0] * inv, r[1] * inv, r[2] * inv}, true
}
