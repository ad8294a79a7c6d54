// Package tri models triangular faces in R3
package tri

import "geometry3d/internal/geometry/vector"

// Tri is a triangle. Vertex order fixes its orientation.
type Tri struct {
	P [3]vector.Vec3 `json:"p" yaml:"p"`
}

// New creates a triangle from three vertices
func New(a, b, c vector.Vec3) Tri {
	return Tri{P: [3]vector.Vec3{a, b, c}}
}

// Norm returns the unit surface normal (p1-p0) × (p2-p0), or the zero
// vector when the vertices are collinear.
func (t Tri) Norm() vector.Vec3 {
	d1 := t.P[1].Sub(t.P[0])
	d2 := t.P[2].Sub(t.P[0])
	return vector.Cross(d1, d2).Normalized()
}
