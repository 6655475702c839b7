package interpolation

// QuadraticBezierValue evaluates the quadratic Bézier curve with control
// values p0, p1, p2 at t, using the closed Bernstein form. With u = 1-t:
//
//	B(t) = u²·p0 + 2ut·p1 + t²·p2
//
// The curve starts at p0 (t=0), ends at p2 (t=1), and is pulled toward p1 in
// between. The three weights sum to 1 for every t, including t outside [0, 1].
func QuadraticBezierValue(p0, p1, p2, t float64) float64 {
	u := 1.0 - t
	return u*u*p0 + 2.0*u*t*p1 + t*t*p2
}

// QuadraticBezierVector evaluates the quadratic Bézier curve with control
// points p0, p1, p2 at t. All axes share the same three Bernstein weights.
func QuadraticBezierVector(p0, p1, p2 Point3, t float64) Point3 {
	u := 1.0 - t
	return p0.Mul(u * u).Add(p1.Mul(2.0 * u * t)).Add(p2.Mul(t * t))
}

// QuadraticDeCasteljauValue evaluates the same curve as
// [QuadraticBezierValue], computed by de Casteljau's algorithm: two nested
// linear interpolations instead of the expanded polynomial. Both forms agree
// up to floating-point rounding for all inputs.
func QuadraticDeCasteljauValue(p0, p1, p2, t float64) float64 {
	d1 := LinearValue(p0, p1, t)
	d2 := LinearValue(p1, p2, t)
	return LinearValue(d1, d2, t)
}

// QuadraticDeCasteljauVector is the de Casteljau form of
// [QuadraticBezierVector].
func QuadraticDeCasteljauVector(p0, p1, p2 Point3, t float64) Point3 {
	d1 := p0.Lerp(p1, t)
	d2 := p1.Lerp(p2, t)
	return d1.Lerp(d2, t)
}
