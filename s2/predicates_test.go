package s2

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	x, y, z := Point{1, 0, 0}, Point{0, 1, 0}, Point{0, 0, 1}
	assert.True(t, Sign(x, y, z))
	assert.True(t, Sign(y, z, x))
	assert.False(t, Sign(z, y, x))
	assert.False(t, Sign(x, x, y))
}

func TestRobustSign(t *testing.T) {
	x, y, z := Point{1, 0, 0}, Point{0, 1, 0}, Point{0, 0, 1}
	testCases := []struct {
		name    string
		a, b, c Point
		want    Direction
	}{
		{"axes", x, y, z, CounterClockwise},
		{"axes reversed", z, y, x, Clockwise},
		{"repeated", x, x, z, Indeterminate},
		{"collinear", x, y, x.Neg(), Indeterminate},
		// The determinant is far below the rounding bound but not zero.
		{"nearly collinear", x, Point{1, 1e-17, 0}, z, CounterClockwise},
		{"nearly collinear reversed", z, Point{1, 1e-17, 0}, x, Clockwise},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RobustSign(tc.a, tc.b, tc.c))
		})
	}

	assert.Equal(t, Indeterminate, triageSign(x, Point{1, 1e-17, 0}, z))
}

func TestRobustSignSymmetry(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for n := 0; n < 100; n++ {
		a := randomPoint(r)
		b := randomPoint(r)
		// Pull c onto the great circle through a and b so that the
		// exact path is exercised.
		c := a.Add(b.MulScalar(float64(n%3) - 1)).Normalize()
		d := RobustSign(a, b, c)
		assert.Equal(t, d, RobustSign(b, c, a))
		assert.Equal(t, d, RobustSign(c, a, b))
		assert.Equal(t, -d, RobustSign(c, b, a))
		assert.Equal(t, -d, RobustSign(a, c, b))
	}
}

func TestOrderedCCW(t *testing.T) {
	o := Point{0, 0, 1}
	a, b, c := Point{1, 0, 0}, Point{0, 1, 0}, Point{-1, 0, 0}
	assert.True(t, OrderedCCW(a, b, c, o))
	assert.True(t, OrderedCCW(b, c, a, o))
	assert.False(t, OrderedCCW(c, b, a, o))
	assert.True(t, OrderedCCW(a, a, c, o))
	assert.True(t, OrderedCCW(a, a, a, o))
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "Clockwise", Clockwise.String())
	assert.Equal(t, "Indeterminate", Indeterminate.String())
	assert.Equal(t, "CounterClockwise", CounterClockwise.String())
}
