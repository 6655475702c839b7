package interpolation

// CubicSmoothValue blends from a to b with the cubic Hermite weight
//
//	w(t) = -2t³ + 3t²
//
// w(0)=0 and w(1)=1 with zero derivative at both endpoints, so the blend
// eases in and out instead of moving at constant speed. Unlike the quadratic
// Bézier functions it takes only two control values.
func CubicSmoothValue(a, b, t float64) float64 {
	w := t * t * (3.0 - 2.0*t)
	return a + (b-a)*w
}

// CubicSmoothVector blends from a to b component-wise with the same Hermite
// weight as [CubicSmoothValue].
func CubicSmoothVector(a, b Point3, t float64) Point3 {
	w := t * t * (3.0 - 2.0*t)
	return a.Add(b.Sub(a).Mul(w))
}
