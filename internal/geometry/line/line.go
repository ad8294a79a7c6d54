// Package line models infinite lines in R3
package line

import "geometry3d/internal/geometry/vector"

// Line is the set of points P + t*D. D is not normalized and a zero D
// leaves the line undefined.
type Line struct {
	D vector.Vec3 `json:"d" yaml:"d"`
	P vector.Vec3 `json:"p" yaml:"p"`
}

// New creates a line with direction d through point p
func New(d, p vector.Vec3) Line {
	return Line{D: d, P: p}
}

// FromPoints returns the line through p1 and p2, directed from p1 to p2
func FromPoints(p1, p2 vector.Vec3) Line {
	return New(p2.Sub(p1), p1)
}

// At returns the point P + t*D
func (l Line) At(t float64) vector.Vec3 { return l.P.Add(l.D.Mul(t)) }
