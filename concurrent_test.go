package interpolation

import (
	"sync"
	"testing"
)

// All functions are pure, so concurrent callers with identical inputs must
// observe bit-identical results.
func TestConcurrentCallsAgree(t *testing.T) {
	a := Pt3(3.1, 4.1, -5.9)
	b := Pt3(5.9, 2.6, 5.3)
	c := Pt3(5.3, 5.8, 9.7)
	d := Pt3(-2.6, 1.4, 0.5)

	const n = 100
	type sample struct {
		linear, bezier, casteljau, smooth, spline Point3
	}
	eval := func(tt float64) sample {
		return sample{
			linear:    LinearVector(a, b, tt),
			bezier:    QuadraticBezierVector(a, b, c, tt),
			casteljau: QuadraticDeCasteljauVector(a, b, c, tt),
			smooth:    CubicSmoothVector(a, b, tt),
			spline:    CatmullRomSpline(a, b, c, d, tt, DefaultAlpha),
		}
	}

	var want [n + 1]sample
	for i := 0; i <= n; i++ {
		want[i] = eval(float64(i) / float64(n))
	}

	var wg sync.WaitGroup
	for k := 0; k < 8; k++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i <= n; i++ {
				if got := eval(float64(i) / float64(n)); got != want[i] {
					t.Errorf("concurrent evaluation diverged at sample %d", i)
					return
				}
			}
		}()
	}
	wg.Wait()
}
