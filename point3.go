package interpolation

import (
	"fmt"
	"math"
)

// Point3 is an immutable triple of float64 coordinates. It doubles as the
// minimal vector type of this package: the only operations are component-wise
// addition and subtraction, uniform scaling, and linear interpolation.
// Consumers with their own vector type are expected to convert at the
// boundary.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Splat returns the point's x, y, and z coordinates.
func (pt Point3) Splat() (float64, float64, float64) {
	return pt.X, pt.Y, pt.Z
}

func (pt Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

// Add adds two points component-wise.
func (pt Point3) Add(o Point3) Point3 {
	return Point3{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
		Z: pt.Z + o.Z,
	}
}

// Sub computes pt−o component-wise.
func (pt Point3) Sub(o Point3) Point3 {
	return Point3{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
		Z: pt.Z - o.Z,
	}
}

// Mul scales the point uniformly by f.
func (pt Point3) Mul(f float64) Point3 {
	return Point3{
		X: pt.X * f,
		Y: pt.Y * f,
		Z: pt.Z * f,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point3) Lerp(o Point3, t float64) Point3 {
	// pt + t * (o - pt)
	return pt.Add(o.Sub(pt).Mul(t))
}

// IsInf reports whether at least one coordinate is infinite.
func (pt Point3) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) || math.IsInf(pt.Z, 0)
}

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point3) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}
