package s1

import (
	"math"
)

// ChordAngle represents the angle subtended by a chord, the straight line
// segment connecting two points on the unit sphere. It is stored as the
// squared chord length, which makes comparisons and distance computations
// cheap at the cost of accuracy near 180 degrees.
//
// The finite range is [0, 4]. Two special values sit outside it:
// NegativeChordAngle, which compares less than every other chord angle, and
// InfChordAngle, which compares greater.
type ChordAngle float64

const (
	NegativeChordAngle ChordAngle = -1
	RightChordAngle    ChordAngle = 2
	StraightChordAngle ChordAngle = 4

	// maxLength2 is the squared length of a chord between antipodal points.
	maxLength2 = 4.0

	dblEpsilon = 2.220446049250313e-16
)

// InfChordAngle returns a chord angle larger than any finite chord angle.
func InfChordAngle() ChordAngle {
	return ChordAngle(math.Inf(1))
}

// ChordAngleFromAngle converts an Angle. Negative angles map to
// NegativeChordAngle, angles of π or more to StraightChordAngle and infinite
// angles to InfChordAngle.
func ChordAngleFromAngle(a Angle) ChordAngle {
	if a < 0 {
		return NegativeChordAngle
	}
	if math.IsInf(float64(a), 1) {
		return InfChordAngle()
	}
	l := 2 * math.Sin(0.5*math.Min(math.Pi, float64(a)))
	return ChordAngle(l * l)
}

// ChordAngleFromSquaredLength returns a chord angle from the squared chord
// length, clamping lengths past 4 to StraightChordAngle.
func ChordAngleFromSquaredLength(length2 float64) ChordAngle {
	if length2 > maxLength2 {
		return StraightChordAngle
	}
	return ChordAngle(length2)
}

func ChordAngleFromDegrees(deg float64) ChordAngle {
	return ChordAngleFromAngle(AngleFromDegrees(deg))
}

// FastUpperBoundFrom returns a chord angle at least as large as a, computed
// without trigonometry. The bound is tight for small angles.
func FastUpperBoundFrom(a Angle) ChordAngle {
	return ChordAngleFromSquaredLength(float64(a * a))
}

func ChordAngleFromMeters(m float64) ChordAngle {
	return ChordAngleFromAngle(AngleFromMeters(m))
}

func ChordAngleFromMetersOn(m, radius float64) ChordAngle {
	return ChordAngleFromAngle(AngleFromMetersOn(m, radius))
}

func ChordAngleFromKilometers(km float64) ChordAngle {
	return ChordAngleFromAngle(AngleFromKilometers(km))
}

func ChordAngleFromKilometersOn(km, radius float64) ChordAngle {
	return ChordAngleFromAngle(AngleFromKilometersOn(km, radius))
}

// IsSpecial reports whether c is NegativeChordAngle or InfChordAngle.
func (c ChordAngle) IsSpecial() bool {
	return c < 0 || math.IsInf(float64(c), 1)
}

// IsValid reports whether c is in [0, 4] or special.
func (c ChordAngle) IsValid() bool {
	return (c >= 0 && c <= maxLength2) || c.IsSpecial()
}

// Angle converts the chord angle back to an Angle. NegativeChordAngle maps
// to -1 radian.
func (c ChordAngle) Angle() Angle {
	if c < 0 {
		return -1 * Radian
	}
	if math.IsInf(float64(c), 1) {
		return InfAngle()
	}
	return Angle(2 * math.Asin(0.5*math.Sqrt(float64(c))))
}

// Sin2 returns the square of the sine of the angle, computed directly from
// the squared chord length.
func (c ChordAngle) Sin2() float64 {
	// sin²(θ) = l²(1 - l²/4), from the half-angle identities.
	return float64(c) * (1 - 0.25*float64(c))
}

func (c ChordAngle) Sin() float64 {
	return math.Sqrt(c.Sin2())
}

func (c ChordAngle) Cos() float64 {
	return 1 - 0.5*float64(c)
}

func (c ChordAngle) Tan() float64 {
	return c.Sin() / c.Cos()
}

// Mod returns the remainder of the squared length divided by |m|.
func (c ChordAngle) Mod(m ChordAngle) ChordAngle {
	return ChordAngle(math.Mod(float64(c), math.Abs(float64(m))))
}

// Successor returns the smallest representable chord angle larger than c.
func (c ChordAngle) Successor() ChordAngle {
	if c >= maxLength2 {
		return InfChordAngle()
	}
	if c < 0 {
		return 0
	}
	return ChordAngle(math.Nextafter(float64(c), 10))
}

// Predecessor returns the largest representable chord angle less than c.
func (c ChordAngle) Predecessor() ChordAngle {
	if c <= 0 {
		return NegativeChordAngle
	}
	if c > maxLength2 {
		return StraightChordAngle
	}
	return ChordAngle(math.Nextafter(float64(c), -10))
}

// Add returns the chord angle of the sum of the two angles, capped at
// StraightChordAngle. Neither argument may be special.
func (c ChordAngle) Add(other ChordAngle) ChordAngle {
	if other == 0 {
		return c
	}
	if c+other >= maxLength2 {
		return StraightChordAngle
	}
	// With x = sin²(a/2) and y = sin²(b/2), sin²((a+b)/2) is
	// x(1-y) + y(1-x) + 2√(xy(1-x)(1-y)).
	x := float64(c * 0.25)
	y := float64(other * 0.25)
	return ChordAngle(math.Min(maxLength2, 4*(x+y-2*x*y+2*math.Sqrt(x*y*(1-x)*(1-y)))))
}

// Sub returns the chord angle of the difference of the two angles, floored
// at zero. Neither argument may be special.
func (c ChordAngle) Sub(other ChordAngle) ChordAngle {
	if other == 0 {
		return c
	}
	if c <= other {
		return 0
	}
	x := float64(c * 0.25)
	y := float64(other * 0.25)
	return ChordAngle(math.Max(0, 4*(x+y-2*x*y-2*math.Sqrt(x*y*(1-x)*(1-y)))))
}

// MaxPointError returns the maximum error of a chord angle computed as the
// squared distance between two unit-length points.
func (c ChordAngle) MaxPointError() float64 {
	return 2.5*dblEpsilon*float64(c) + 16*dblEpsilon*dblEpsilon
}

func (c ChordAngle) Meters() float64 { return c.Angle().Meters() }

func (c ChordAngle) MetersOn(radius float64) float64 { return c.Angle().MetersOn(radius) }

func (c ChordAngle) Kilometers() float64 { return c.Angle().Kilometers() }

func (c ChordAngle) KilometersOn(radius float64) float64 { return c.Angle().KilometersOn(radius) }

func (c ChordAngle) String() string {
	return c.Angle().String()
}
