package interpolation

// DefaultAlpha is the scale factor that makes [CatmullRomSpline] pass through
// p1 and p2 exactly.
const DefaultAlpha = 0.5

// CatmullRomSpline evaluates a Catmull-Rom spline segment at t. p1 and p2 are
// the segment's endpoints; p0 and p3 steer the tangents at those endpoints and
// are not visited by the curve. With u = t:
//
//	q1 = -u³ + 2u² - u
//	q2 =  3u³ - 5u² + 2
//	q3 = -3u³ + 4u² + u
//	q4 =  u³ - u²
//	result = alpha · (p0·q1 + p1·q2 + p2·q3 + p3·q4)
//
// alpha multiplies the entire weighted sum, not the individual basis
// polynomials. Since q2(0) = q3(1) = 2, the curve passes through 2·alpha·p1
// at t=0 and 2·alpha·p2 at t=1; only with alpha = [DefaultAlpha] does the
// segment run from p1 to p2 exactly, and any other alpha scales the whole
// curve uniformly. There is no scalar counterpart to this function.
func CatmullRomSpline(p0, p1, p2, p3 Point3, t, alpha float64) Point3 {
	t2 := t * t
	t3 := t2 * t
	q1 := -t3 + 2.0*t2 - t
	q2 := 3.0*t3 - 5.0*t2 + 2.0
	q3 := -3.0*t3 + 4.0*t2 + t
	q4 := t3 - t2
	return p0.Mul(q1).Add(p1.Mul(q2)).Add(p2.Mul(q3)).Add(p3.Mul(q4)).Mul(alpha)
}
