// Package interpolation provides stateless interpolation functions over
// float64 scalars and 3-component points.
//
// Five curve families are covered: linear interpolation, the quadratic Bézier
// in both its closed Bernstein form and its de Casteljau form, the cubic
// smoothstep blend, and the four-point Catmull-Rom spline. Each family (except
// Catmull-Rom, which is vector-only) comes as a pair: a scalar function and a
// [Point3] function that applies the same weights to every component.
//
// All functions are pure: they share no state, perform no I/O, and are safe to
// call concurrently without coordination. The progress parameter t is
// nominally in [0, 1], but no function rejects values outside that range;
// every formula extrapolates along the same curve, and some callers rely on
// that.
//
// # Non-finite inputs
//
// Inputs are never validated. A NaN or infinite component propagates through
// the arithmetic per the usual floating-point rules and shows up in the
// result. Callers that care can check their values with [Point3.IsNaN] and
// [Point3.IsInf] before or after a call.
//
// # Catmull-Rom scaling
//
// [CatmullRomSpline] applies its alpha factor as a single multiplier on the
// whole weighted sum rather than folding it into the individual basis
// polynomials. See its documentation for the consequences.
package interpolation
