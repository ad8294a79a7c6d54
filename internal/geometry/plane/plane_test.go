package plane

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geometry3d/internal/geometry/line"
	"geometry3d/internal/geometry/vector"
)

func TestXY(t *testing.T) {
	assert.Equal(t, vector.NewVec3(0, 0, 1), XY().Norm())
}

func TestNormDegenerate(t *testing.T) {
	p := New(vector.NewVec3(1, 1, 0), vector.NewVec3(2, 2, 0), vector.Vec3{})
	assert.Equal(t, vector.Vec3{}, p.Norm())
}

func TestTangent(t *testing.T) {
	cases := []struct {
		name string
		d    vector.Vec3
		a    vector.Vec3
	}{
		{"general", vector.NewVec3(1, 2, 4), vector.NewVec3(0, 1, -0.5)},
		{"flat direction", vector.NewVec3(3, -1, 0), vector.NewVec3(0, 0, 1)},
		{"axis", vector.NewVec3(0, 0, 2), vector.NewVec3(0, 1, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			through := vector.NewVec3(5, -1, 2)
			p := Tangent(line.New(tc.d, through))

			assert.Equal(t, tc.a, p.D1)
			assert.Equal(t, vector.Cross(tc.a, tc.d), p.D2)
			assert.Equal(t, through, p.P)

			assert.InDelta(t, 0, p.D1.Dot(tc.d), 1e-12)
			assert.InDelta(t, 0, p.D2.Dot(tc.d), 1e-12)
			n := p.Norm()
			assert.NotEqual(t, vector.Vec3{}, n)
			assert.True(t, n.Cross(tc.d).ApproxEqual(vector.Vec3{}), "normal %v not parallel to %v", n, tc.d)
		})
	}
}

func TestIntersect(t *testing.T) {
	t.Run("xy plane", func(t *testing.T) {
		l := line.New(vector.NewVec3(0, 0, -1), vector.NewVec3(1, 1, 5))
		pt, err := XY().Intersect(l)
		require.NoError(t, err)
		assert.True(t, pt.ApproxEqual(vector.NewVec3(1, 1, 0)), "got %v", pt)
		assert.True(t, XY().LineIntersection(l).ApproxEqual(vector.NewVec3(1, 1, 0)))
	})

	t.Run("offset oblique plane", func(t *testing.T) {
		// x + y + z = 3
		p := New(vector.NewVec3(1, -1, 0), vector.NewVec3(1, 0, -1), vector.NewVec3(1, 1, 1))
		l := line.FromPoints(vector.Vec3{}, vector.NewVec3(2, 2, 2))
		pt, err := p.Intersect(l)
		require.NoError(t, err)
		assert.True(t, pt.ApproxEqual(vector.NewVec3(1, 1, 1)), "got %v", pt)
	})

	t.Run("tangent plane of a line contains its point", func(t *testing.T) {
		l := line.New(vector.NewVec3(2, -3, 1), vector.NewVec3(4, 4, 4))
		pt, err := Tangent(l).Intersect(l)
		require.NoError(t, err)
		assert.True(t, pt.ApproxEqual(l.P))
	})

	t.Run("parallel line", func(t *testing.T) {
		l := line.New(vector.NewVec3(1, 1, 0), vector.NewVec3(7, 7, 3))
		_, err := XY().Intersect(l)
		assert.ErrorIs(t, err, ErrParallel)

		// the sentinel is indistinguishable from a genuine hit at the origin
		assert.Equal(t, vector.Vec3{}, XY().LineIntersection(l))
		origin := XY().LineIntersection(line.New(vector.NewVec3(0, 0, 1), vector.NewVec3(0, 0, 9)))
		assert.Equal(t, vector.Vec3{}, origin)
	})

	t.Run("degenerate plane", func(t *testing.T) {
		p := New(vector.NewVec3(1, 0, 0), vector.NewVec3(-2, 0, 0), vector.Vec3{})
		_, err := p.Intersect(line.New(vector.NewVec3(0, 0, 1), vector.Vec3{}))
		assert.ErrorIs(t, err, ErrParallel)
	})
}
