package interpolation

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, want Point3, got Point3, epsilon float64) {
	t.Helper()
	d := got.Sub(want)
	if math.Sqrt(d.X*d.X+d.Y*d.Y+d.Z*d.Z) > epsilon {
		t.Fatalf("got %s, want %s", got, want)
	}
}
