// Package predicates implements adaptive precision geometric predicates in
// the plane. Each predicate first evaluates a float64 approximation and
// only does more work when its error bound cannot certify the sign.
package predicates

import "math"

// Orient2D reports the orientation of the points a, b and c. The result is
// negative if they occur in counterclockwise order (c lies left of the
// directed line from a to b), positive if clockwise, and exactly zero if
// they are collinear. The sign is always correct; the magnitude
// approximates twice the signed triangle area.
func Orient2D(ax, ay, bx, by, cx, cy float64) float64 {
	detLeft := float64((ay - cy) * (bx - cx))
	detRight := float64((ax - cx) * (by - cy))
	det := detLeft - detRight

	detSum := math.Abs(detLeft + detRight)
	if math.Abs(det) >= ccwErrBoundA*detSum {
		return det
	}
	if det = orient2dAdapt(ax, ay, bx, by, cx, cy, detSum); det == 0 {
		return 0
	}
	return -det
}

// Orient2DFast is Orient2D without error control. Its sign may be wrong
// for nearly collinear inputs.
func Orient2DFast(ax, ay, bx, by, cx, cy float64) float64 {
	return (ay-cy)*(bx-cx) - (ax-cx)*(by-cy)
}

// orient2dAdapt returns the determinant with the conventional sign:
// positive for counterclockwise.
func orient2dAdapt(ax, ay, bx, by, cx, cy, detSum float64) float64 {
	var (
		c1 [8]float64
		c2 [12]float64
		d  [16]float64
	)

	acx := ax - cx
	bcx := bx - cx
	acy := ay - cy
	bcy := by - cy

	b := crossDiff(acx, bcy, acy, bcx)
	det := estimate(b[:])
	errBound := ccwErrBoundB * detSum
	if det >= errBound || -det >= errBound {
		return det
	}

	acxTail := twoDiffTail(ax, cx, acx)
	bcxTail := twoDiffTail(bx, cx, bcx)
	acyTail := twoDiffTail(ay, cy, acy)
	bcyTail := twoDiffTail(by, cy, bcy)
	if acxTail == 0 && acyTail == 0 && bcxTail == 0 && bcyTail == 0 {
		return det
	}

	errBound = ccwErrBoundC*detSum + resultErrBound*math.Abs(det)
	det += (acx*bcyTail + bcy*acxTail) - (acy*bcxTail + bcx*acyTail)
	if det >= errBound || -det >= errBound {
		return det
	}

	u := crossDiff(acxTail, bcy, acyTail, bcx)
	c1Len := sumZeroElim(b[:], u[:], c1[:])

	u = crossDiff(acx, bcyTail, acy, bcxTail)
	c2Len := sumZeroElim(c1[:c1Len], u[:], c2[:])

	u = crossDiff(acxTail, bcyTail, acyTail, bcxTail)
	dLen := sumZeroElim(c2[:c2Len], u[:], d[:])

	return d[dLen-1]
}
