// Package plane models infinite planes in R3 spanned by two direction vectors
package plane

import (
	"geometry3d/internal/geometry/line"
	"geometry3d/internal/geometry/vector"
)

// Plane is the set of points P + s*D1 + t*D2. D1 and D2 need not be
// orthogonal or unit length, but parallel spanning vectors make the plane degenerate.
type Plane struct {
	D1 vector.Vec3 `json:"d1" yaml:"d1"`
	D2 vector.Vec3 `json:"d2" yaml:"d2"`
	P  vector.Vec3 `json:"p" yaml:"p"`
}

// New creates a plane through p spanned by d1 and d2
func New(d1, d2, p vector.Vec3) Plane {
	return Plane{D1: d1, D2: d2, P: p}
}

// XY returns the plane z = 0
func XY() Plane {
	return New(vector.NewVec3(1, 0, 0), vector.NewVec3(0, 1, 0), vector.Vec3{})
}

// Tangent returns a plane through l.P whose normal is parallel to l.D.
// The spanning vectors come from a fixed construction and are one valid
// basis among many.
func Tangent(l line.Line) Plane {
	a := vector.NewVec3(0, 1, 0)
	if l.D.Z == 0 {
		// a.z would divide by zero; (0,0,1) is already orthogonal to d
		a = vector.NewVec3(0, 0, 1)
	} else {
		a.Z = -l.D.Y / l.D.Z
	}
	b := vector.Cross(a, l.D)
	return New(a, b, l.P)
}

// Norm returns D1 × D2. The result is not normalized and is zero for a degenerate plane.
func (p Plane) Norm() vector.Vec3 { return vector.Cross(p.D1, p.D2) }

// Intersect returns the point where l crosses p, or ErrParallel when the line
// runs parallel to the plane or the plane is degenerate.
func (p Plane) Intersect(l line.Line) (vector.Vec3, error) {
	n := p.Norm()
	numerator := n.Dot(p.P) - n.Dot(l.P)
	denominator := n.Dot(l.D)
	if denominator == 0 {
		return vector.Vec3{}, ErrParallel
	}
	return l.At(numerator / denominator), nil
}

// LineIntersection is Intersect with the error folded into a zero-vector sentinel.
// Callers cannot tell a parallel line from a true hit at the origin; use
// Intersect when that matters.
func (p Plane) LineIntersection(l line.Line) vector.Vec3 {
	pt, err := p.Intersect(l)
	if err != nil {
		return vector.Vec3{}
	}
	return pt
}
