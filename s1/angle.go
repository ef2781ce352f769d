// Package s1 implements one-dimensional spherical quantities: angles stored in
// radians and chord angles stored as squared chord lengths.
package s1

import (
	"math"
	"strconv"
)

// Angle is a one-dimensional angle measured in radians. The range is not
// constrained; use Normalized to bring an angle into (-π, π].
type Angle float64

const (
	Radian Angle = 1
	Degree Angle = (math.Pi / 180) * Radian

	E5 = 1e-5 * Degree
	E6 = 1e-6 * Degree
	E7 = 1e-7 * Degree
)

// InfAngle returns an angle larger than any finite angle.
func InfAngle() Angle {
	return Angle(math.Inf(1))
}

// AngleFromDegrees is a convenience for deg * Degree that avoids the extra
// rounding step for the common multiples of 45 degrees.
func AngleFromDegrees(deg float64) Angle {
	switch deg {
	case 180:
		return math.Pi
	case -180:
		return -math.Pi
	case 90:
		return math.Pi / 2
	case -90:
		return -math.Pi / 2
	case 45:
		return math.Pi / 4
	case -45:
		return -math.Pi / 4
	}
	return Angle(deg) * Degree
}

func (a Angle) Radians() float64 { return float64(a) }

func (a Angle) Degrees() float64 { return float64(a / Degree) }

func round(val float64) int32 {
	if val < 0 {
		return int32(val - 0.5)
	}
	return int32(val + 0.5)
}

// E5 returns the angle in hundred thousandths of degrees.
func (a Angle) E5() int32 { return round(a.Degrees() * 1e5) }

// E6 returns the angle in millionths of degrees.
func (a Angle) E6() int32 { return round(a.Degrees() * 1e6) }

// E7 returns the angle in ten millionths of degrees.
func (a Angle) E7() int32 { return round(a.Degrees() * 1e7) }

func AngleFromE5(e5 int32) Angle { return Angle(e5) * E5 }

func AngleFromE6(e6 int32) Angle { return Angle(e6) * E6 }

func AngleFromE7(e7 int32) Angle { return Angle(e7) * E7 }

// Abs returns the absolute value of the angle.
func (a Angle) Abs() Angle { return Angle(math.Abs(float64(a))) }

// Mod returns the floating point remainder of a divided by |m|, with the
// sign of a.
func (a Angle) Mod(m Angle) Angle {
	return Angle(math.Mod(float64(a), math.Abs(float64(m))))
}

// Normalized returns an equivalent angle in (-π, π].
func (a Angle) Normalized() Angle {
	rad := math.Remainder(float64(a), 2*math.Pi)
	if rad <= -math.Pi {
		rad = math.Pi
	}
	return Angle(rad)
}

// Compare orders two angles, treating NaN as equal to itself and smaller
// than any number.
func (a Angle) Compare(b Angle) int {
	return compareFloat(float64(a), float64(b))
}

func compareFloat(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Meters converts the angle to a distance along a sphere with Earth's mean
// radius.
func (a Angle) Meters() float64 { return a.MetersOn(EarthRadiusMeters) }

func (a Angle) MetersOn(radius float64) float64 { return float64(a) * radius }

func (a Angle) Kilometers() float64 { return a.KilometersOn(EarthRadiusMeters) }

func (a Angle) KilometersOn(radius float64) float64 { return a.MetersOn(radius) / 1000 }

// AngleFromMeters returns the angle subtended by an arc of the given length
// on Earth's surface.
func AngleFromMeters(m float64) Angle { return AngleFromMetersOn(m, EarthRadiusMeters) }

func AngleFromMetersOn(m, radius float64) Angle { return Angle(m / radius) }

func AngleFromKilometers(km float64) Angle { return AngleFromMetersOn(km*1000, EarthRadiusMeters) }

func AngleFromKilometersOn(km, radius float64) Angle { return AngleFromMetersOn(km*1000, radius) }

// String formats the angle in degrees with seven digits after the point.
func (a Angle) String() string {
	return strconv.FormatFloat(a.Degrees(), 'f', 7, 64)
}
