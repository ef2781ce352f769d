package s2

import (
	"math/big"
)

// Direction is the orientation of an ordered triple of points.
type Direction int

const (
	Clockwise        Direction = -1
	Indeterminate    Direction = 0
	CounterClockwise Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	}
	return "Indeterminate"
}

// maxDeterminantError bounds the rounding error of the triple product
// computed by triageSign for unit length inputs.
const maxDeterminantError = 1.8274 * dblEpsilon

const dblEpsilon = 2.220446049250313e-16

// Sign reports whether a, b and c wind counterclockwise when viewed from
// outside the sphere. It is fast but gives inconsistent answers for nearly
// collinear points; use RobustSign where that matters.
func Sign(a, b, c Point) bool {
	return c.Cross(a).Dot(b) > 0
}

// RobustSign returns the orientation of a, b and c. Points must be unit
// length. The floating point determinant is used when its sign is certain;
// otherwise the determinant is evaluated exactly. Exactly collinear or
// repeated points are Indeterminate.
func RobustSign(a, b, c Point) Direction {
	if d := triageSign(a, b, c); d != Indeterminate {
		return d
	}
	return exactSign(a, b, c)
}

func triageSign(a, b, c Point) Direction {
	det := a.Cross(b).Dot(c)
	if det > maxDeterminantError {
		return CounterClockwise
	}
	if det < -maxDeterminantError {
		return Clockwise
	}
	return Indeterminate
}

// exactSign evaluates the triple product a×b·c in rational arithmetic.
func exactSign(a, b, c Point) Direction {
	ax, ay, az := ratFloat(a.X), ratFloat(a.Y), ratFloat(a.Z)
	bx, by, bz := ratFloat(b.X), ratFloat(b.Y), ratFloat(b.Z)
	cx, cy, cz := ratFloat(c.X), ratFloat(c.Y), ratFloat(c.Z)

	det := new(big.Rat).Mul(cx, ratSub2x2(ay, az, by, bz))
	det.Add(det, new(big.Rat).Mul(cy, ratSub2x2(az, ax, bz, bx)))
	det.Add(det, new(big.Rat).Mul(cz, ratSub2x2(ax, ay, bx, by)))
	return Direction(det.Sign())
}

// ratSub2x2 returns p*s - q*r.
func ratSub2x2(p, q, r, s *big.Rat) *big.Rat {
	lhs := new(big.Rat).Mul(p, s)
	return lhs.Sub(lhs, new(big.Rat).Mul(q, r))
}

func ratFloat(f float64) *big.Rat {
	return new(big.Rat).SetFloat64(f)
}

// OrderedCCW reports whether the edges OA, OB and OC are encountered in that
// order while sweeping counterclockwise around o. When any two edges
// coincide the result is true only for the orderings that remain consistent.
// a, b and c must all differ from o.
func OrderedCCW(a, b, c, o Point) bool {
	sum := 0
	if RobustSign(b, o, a) != Clockwise {
		sum++
	}
	if RobustSign(c, o, b) != Clockwise {
		sum++
	}
	if RobustSign(a, o, c) == CounterClockwise {
		sum++
	}
	return sum >= 2
}
