package predicates

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInCircle(t *testing.T) {
	testCases := []struct {
		name                           string
		ax, ay, bx, by, cx, cy, dx, dy float64
		want                           int
	}{
		{"inside clockwise", 0, -1, 0, 1, 1, 0, -0.5, 0, -1},
		{"on circle", 0, -1, 1, 0, 0, 1, -1, 0, 0},
		{"outside clockwise", 0, -1, 0, 1, 1, 0, -1.5, 0, 1},
		{"inside counterclockwise", 0, -1, 1, 0, 0, 1, 0.25, 0.25, 1},
		{"repeated vertex", 0, -1, 1, 0, 0, 1, 1, 0, 0},
		{"just inside", 1, 0, -1, 0, 0, 1, 0, math.Nextafter(-1, 0), -1},
		{"just outside", 1, 0, -1, 0, 0, 1, 0, math.Nextafter(-1, -2), 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := InCircle(tc.ax, tc.ay, tc.bx, tc.by, tc.cx, tc.cy, tc.dx, tc.dy)
			assert.Equal(t, tc.want, sign(got))
			exact := inCircleExact(tc.ax, tc.ay, tc.bx, tc.by, tc.cx, tc.cy, tc.dx, tc.dy)
			assert.Equal(t, tc.want, sign(exact))
		})
	}
}

func TestInCircleScales(t *testing.T) {
	// The triangle (0,x) (-x,-x) (x,-x) is counterclockwise and its
	// circumcircle is centered at (0,-x/4) with radius 5x/4.
	x := 1e-64
	for k := 0; k < 128; k++ {
		assert.Greater(t, InCircle(0, x, -x, -x, x, -x, 0, 0), 0.0, "x=%v", x)
		assert.Less(t, InCircle(0, x, -x, -x, x, -x, 0, 2*x), 0.0, "x=%v", x)
		assert.Equal(t, 0.0, InCircle(0, x, -x, -x, x, -x, 0, x), "x=%v", x)
		x *= 10
	}
}

func TestInCircleFast(t *testing.T) {
	assert.Less(t, InCircleFast(0, -1, 0, 1, 1, 0, -0.5, 0), 0.0)
	assert.Equal(t, 0.0, InCircleFast(0, -1, 0, 1, 1, 0, -1, 0))
	assert.Greater(t, InCircleFast(0, -1, 0, 1, 1, 0, -1.5, 0), 0.0)
}

func TestInCircleRandom(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for n := 0; n < 1000; n++ {
		var v [8]float64
		for k := range v {
			v[k] = r.NormFloat64()
		}
		if n%2 == 0 {
			// Put d on the unit circle through three other unit points.
			for k := 0; k < 8; k += 2 {
				theta := 2 * math.Pi * r.Float64()
				v[k], v[k+1] = math.Cos(theta), math.Sin(theta)
			}
		}

		got := InCircle(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7])
		want := inCircleExact(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7])
		if sign(got) != sign(want) {
			t.Fatalf("expected sign %d for %v, got %v", sign(want), v, got)
		}
	}
}

func TestInCircleNonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(InCircle(math.Inf(1), 0, 0, 1, -1, 0, 0, 0)))
	assert.True(t, math.IsNaN(inCircleExact(0, 0, 0, 1, -1, 0, math.NaN(), 0)))
}
