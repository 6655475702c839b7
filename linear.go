package interpolation

// LinearValue interpolates linearly between a and b:
//
//	a + (b-a)*t
//
// The result is exactly a at t=0 and exactly b at t=1, and is monotonic in t
// for fixed a and b. Values of t outside [0, 1] extrapolate along the same
// line.
func LinearValue(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LinearVector interpolates linearly between two points, component-wise.
func LinearVector(a, b Point3, t float64) Point3 {
	return a.Lerp(b, t)
}
