// Package vector provides 3D vector operations
package vector

import (
	"fmt"
	"math"
)

// Epsilon is the per-component tolerance used by ApproxEqual
const Epsilon = 0.005

// NewVec3 creates a new 3D vector with the given components
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Vec3 represents a vector in R3. The zero value is the origin.
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Add returns the sum of two vectors
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v minus o
func (v Vec3) Sub(o Vec3) Vec3 { return v.Add(o.Mul(-1)) }

// Mul scales a vector by a scalar
func (v Vec3) Mul(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Scale returns v scaled by k
func Scale(k float64, v Vec3) Vec3 { return v.Mul(k) }

// Dot returns the dot product of two vectors
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of two vectors
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Cross returns a × b
func Cross(a, b Vec3) Vec3 { return a.Cross(b) }

// Norm returns the vector's magnitude (Euclidean norm)
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize scales v to unit length in place.
// The zero vector is left untouched.
func (v *Vec3) Normalize() {
	n := v.Norm()
	if n == 0 {
		return
	}
	v.X /= n
	v.Y /= n
	v.Z /= n
}

// Normalized returns a unit vector in the same direction, or the zero vector
func (v Vec3) Normalized() Vec3 {
	v.Normalize()
	return v
}

// ApproxEqual reports whether every component of v-o lies strictly inside
// (-Epsilon, Epsilon). It is a fixed tolerance check, not an equivalence relation.
func (v Vec3) ApproxEqual(o Vec3) bool {
	d := v.Sub(o)
	return within(d.X) && within(d.Y) && within(d.Z)
}

func within(f float64) bool { return f < Epsilon && f > -Epsilon }

// String formats v as "(x, y, z)"
func (v Vec3) String() string {
	return fmt.Sprintf("(%f, %f, %f)", v.X, v.Y, v.Z)
}
