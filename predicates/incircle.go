package predicates

import (
	"math"
	"math/big"
)

// InCircle reports where d lies relative to the circle through a, b and c.
// With a, b and c in counterclockwise order the result is positive if d is
// inside the circle and negative if outside; clockwise order flips the
// sign. The result is exactly zero when the four points are cocircular.
func InCircle(ax, ay, bx, by, cx, cy, dx, dy float64) float64 {
	adx := ax - dx
	bdx := bx - dx
	cdx := cx - dx
	ady := ay - dy
	bdy := by - dy
	cdy := cy - dy

	bdxcdy := float64(bdx * cdy)
	cdxbdy := float64(cdx * bdy)
	alift := float64(adx*adx) + float64(ady*ady)

	cdxady := float64(cdx * ady)
	adxcdy := float64(adx * cdy)
	blift := float64(bdx*bdx) + float64(bdy*bdy)

	adxbdy := float64(adx * bdy)
	bdxady := float64(bdx * ady)
	clift := float64(cdx*cdx) + float64(cdy*cdy)

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)

	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*alift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*blift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*clift
	errBound := iccErrBoundA * permanent
	if det > errBound || -det > errBound {
		return det
	}
	return inCircleExact(ax, ay, bx, by, cx, cy, dx, dy)
}

// InCircleFast is InCircle without error control.
func InCircleFast(ax, ay, bx, by, cx, cy, dx, dy float64) float64 {
	adx := ax - dx
	ady := ay - dy
	bdx := bx - dx
	bdy := by - dy
	cdx := cx - dx
	cdy := cy - dy

	abdet := adx*bdy - bdx*ady
	bcdet := bdx*cdy - cdx*bdy
	cadet := cdx*ady - adx*cdy
	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	return alift*bcdet + blift*cadet + clift*abdet
}

// inCircleExact evaluates the determinant in rational arithmetic. A nonzero
// value too small for a float64 is returned as the smallest float64 of the
// same sign. Non-finite inputs give NaN.
func inCircleExact(ax, ay, bx, by, cx, cy, dx, dy float64) float64 {
	for _, v := range [...]float64{ax, ay, bx, by, cx, cy, dx, dy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return math.NaN()
		}
	}

	rat := func(v float64) *big.Rat { return new(big.Rat).SetFloat64(v) }
	sub := func(p, q float64) *big.Rat { return new(big.Rat).Sub(rat(p), rat(q)) }
	mul := func(p, q *big.Rat) *big.Rat { return new(big.Rat).Mul(p, q) }
	cross := func(p, q, r, s *big.Rat) *big.Rat { return new(big.Rat).Sub(mul(p, s), mul(q, r)) }
	lift := func(x, y *big.Rat) *big.Rat { return new(big.Rat).Add(mul(x, x), mul(y, y)) }

	adx, ady := sub(ax, dx), sub(ay, dy)
	bdx, bdy := sub(bx, dx), sub(by, dy)
	cdx, cdy := sub(cx, dx), sub(cy, dy)

	det := mul(lift(adx, ady), cross(bdx, cdx, bdy, cdy))
	det.Add(det, mul(lift(bdx, bdy), cross(cdx, adx, cdy, ady)))
	det.Add(det, mul(lift(cdx, cdy), cross(adx, bdx, ady, bdy)))

	f, _ := det.Float64()
	if f == 0 && det.Sign() != 0 {
		return float64(det.Sign()) * math.SmallestNonzeroFloat64
	}
	return f
}
