package xform_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cube-demo/internal/xform"
)

const tol = 1e-5

func assertPosInDelta(t *testing.T, want, got xform.Pos) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "component %d of %v", i, got)
	}
}

func length(v xform.Pos) float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func TestModelIdentity(t *testing.T) {
	assert.Equal(t, xform.Identity(), xform.Model(1, 0, 0, 0))
}

func TestModelScaleTranslate(t *testing.T) {
	m := xform.Model(2, 1, 2, 3).Array()
	for i := 0; i < 3; i++ {
		assert.Equal(t, float32(2), m[i][i])
	}
	assert.Equal(t, float32(1), m[3][3])
	assert.Equal(t, [4]float32{1, 2, 3, 1}, m[3])
	assert.Equal(t, float32(0), m[0][1])
	assert.Equal(t, float32(0), m[2][3])
}

func TestNormalize(t *testing.T) {
	assertPosInDelta(t, xform.Pos{0.6, 0, 0.8}, xform.Normalize(xform.Pos{3, 0, 4}))

	for _, v := range []xform.Pos{{1, 2, 3}, {-5, 0.25, 9}, {0, 0, -7}, {1e-3, 1e-3, 0}} {
		assert.InDelta(t, 1, length(xform.Normalize(v)), tol, "v=%v", v)
	}
}

func TestNormalizeZeroIsNaN(t *testing.T) {
	n := xform.Normalize(xform.Pos{})
	for _, c := range n {
		assert.True(t, math32.IsNaN(c))
	}
}

func TestCrossOperandOrder(t *testing.T) {
	x := xform.Pos{1, 0, 0}
	y := xform.Pos{0, 1, 0}
	// b × a, so x,y gives -z.
	assert.Equal(t, xform.Pos{0, 0, -1}, xform.Cross(x, y))
	assert.Equal(t, xform.Pos{0, 0, 1}, xform.Cross(y, x))
}

func TestCrossAnticommutative(t *testing.T) {
	pairs := [][2]xform.Pos{
		{{1, 2, 3}, {4, 5, 6}},
		{{-2, 0.5, 7}, {3, -1, 0}},
		{{0, 0, 1}, {0, 1, 0}},
	}
	for _, p := range pairs {
		ab := xform.Cross(p[0], p[1])
		ba := xform.Cross(p[1], p[0])
		assertPosInDelta(t, xform.Pos{-ba[0], -ba[1], -ba[2]}, ab)
	}
}

func TestDotNegatedAndSymmetric(t *testing.T) {
	a := xform.Pos{1, 2, 3}
	b := xform.Pos{-3, 0, 5}
	assert.Equal(t, float32(-12), xform.Dot(a, b))
	assert.Equal(t, xform.Dot(a, b), xform.Dot(b, a))
	assert.Equal(t, float32(-14), xform.Dot(a, a))
}

func TestLookBasis(t *testing.T) {
	eye := xform.Pos{2, -1, 1}
	target := xform.Pos{-2, 1, 1}
	up := xform.Pos{0, 1, 0}
	m := xform.Look(eye, target, up)

	f := xform.Normalize(target)
	s := xform.Normalize(xform.Cross(f, up))
	u := xform.Cross(s, f)

	for i := 0; i < 3; i++ {
		assert.Equal(t, s[i], m.At(i, 0))
		assert.Equal(t, u[i], m.At(i, 1))
		assert.Equal(t, f[i], m.At(i, 2))
		assert.Equal(t, float32(0), m.At(i, 3))
	}
	assert.Equal(t, xform.Dot(s, eye), m.At(3, 0))
	assert.Equal(t, xform.Dot(u, eye), m.At(3, 1))
	assert.Equal(t, xform.Dot(f, eye), m.At(3, 2))
	assert.Equal(t, float32(1), m.At(3, 3))

	assert.InDelta(t, 1, length(s), tol)
	assert.InDelta(t, 1, length(u), tol)
}

func TestLookTargetIsDirection(t *testing.T) {
	// Moving the eye changes only the translation column.
	a := xform.Look(xform.Pos{0, 0, 0}, xform.Pos{0, 0, 1}, xform.Pos{0, 1, 0})
	b := xform.Look(xform.Pos{5, 5, 5}, xform.Pos{0, 0, 1}, xform.Pos{0, 1, 0})
	assert.Equal(t, a[:12], b[:12])
	assert.NotEqual(t, a[12:15], b[12:15])

	// Scaling the target does not change the rotation block.
	c := xform.Look(xform.Pos{}, xform.Pos{0, 0, 10}, xform.Pos{0, 1, 0})
	for i := 0; i < 12; i++ {
		assert.InDelta(t, a[i], c[i], tol)
	}
}

func TestLookAxisAligned(t *testing.T) {
	m := xform.Look(xform.Pos{1, 2, 3}, xform.Pos{0, 0, 1}, xform.Pos{0, 1, 0})
	want := xform.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		-1, -2, -3, 1,
	}
	for i := range want {
		assert.InDelta(t, want[i], m[i], tol, "index %d", i)
	}
}

func TestProjectionSquareViewport(t *testing.T) {
	p := xform.Projection(512, 512)
	assert.Equal(t, p.At(0, 0), p.At(1, 1))
}

func TestProjection800x600(t *testing.T) {
	p := xform.Projection(800, 600)
	near, far := float32(0.1), float32(1024.0)

	assert.InDelta(t, (far+near)/(far-near), p.At(2, 2), tol)
	assert.InDelta(t, -(2*far*near)/(far-near), p.At(3, 2), tol)
	assert.Equal(t, float32(1), p.At(2, 3))
	assert.Equal(t, float32(0), p.At(3, 3))

	f := 1 / math32.Tan(xform.FieldOfView/2)
	assert.InDelta(t, f, p.At(1, 1), tol)
	assert.InDelta(t, f*600/800, p.At(0, 0), tol)
	assert.InDelta(t, 1.7320508, p.At(1, 1), 1e-4)
}

func TestMulIdentity(t *testing.T) {
	m := xform.Model(3, 4, 5, 6)
	assert.Equal(t, m, xform.Identity().Mul(m))
	assert.Equal(t, m, m.Mul(xform.Identity()))
}

func TestMulPoint(t *testing.T) {
	clip, ndc, ok := xform.Model(2, 1, 2, 3).MulPoint(xform.Pos{1, 1, 1})
	require.True(t, ok)
	assert.Equal(t, [4]float32{3, 4, 5, 1}, clip)
	assert.Equal(t, xform.Pos{3, 4, 5}, ndc)

	// A point on the camera plane has w == 0 under the projection.
	_, _, ok = xform.Projection(800, 600).MulPoint(xform.Pos{1, 1, 0})
	assert.False(t, ok)
}
