// Package object holds named triangle collections
package object

import (
	"github.com/google/uuid"

	"geometry3d/internal/geometry/tri"
	"geometry3d/internal/geometry/vector"
)

// Object is a named set of triangles placed in space. Rotation is carried
// as a raw triple; nothing interprets it yet.
type Object struct {
	ID       string      `json:"id" yaml:"id"`
	Name     string      `json:"name" yaml:"name"`
	Position vector.Vec3 `json:"position" yaml:"position"`
	Rotation vector.Vec3 `json:"rotation" yaml:"rotation"`
	Tris     []tri.Tri   `json:"tris" yaml:"tris"`
}

// New creates an object at the origin owning a copy of tris
func New(name string, tris ...tri.Tri) Object {
	owned := make([]tri.Tri, len(tris))
	copy(owned, tris)
	return Object{
		ID:   uuid.NewString(),
		Name: name,
		Tris: owned,
	}
}
