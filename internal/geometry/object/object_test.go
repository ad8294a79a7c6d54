package object

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geometry3d/internal/geometry/tri"
	"geometry3d/internal/geometry/vector"
)

func TestNewEmpty(t *testing.T) {
	o := New("empty")
	assert.Equal(t, "empty", o.Name)
	assert.Empty(t, o.Tris)
	assert.Equal(t, vector.Vec3{}, o.Position)
	assert.Equal(t, vector.Vec3{}, o.Rotation)

	_, err := uuid.Parse(o.ID)
	require.NoError(t, err)
}

func TestNewCopiesTris(t *testing.T) {
	tris := []tri.Tri{
		tri.New(vector.Vec3{}, vector.NewVec3(1, 0, 0), vector.NewVec3(0, 1, 0)),
		tri.New(vector.Vec3{}, vector.NewVec3(0, 1, 0), vector.NewVec3(0, 0, 1)),
	}
	o := New("pair", tris...)
	require.Len(t, o.Tris, 2)

	tris[0].P[0] = vector.NewVec3(9, 9, 9)
	assert.Equal(t, vector.Vec3{}, o.Tris[0].P[0])
}

func TestIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, New("a").ID, New("a").ID)
}
