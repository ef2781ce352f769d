//go:build s2linear

package s2

import "math"

// STToUV converts an s or t value to the corresponding u or v value using
// the linear projection.
func STToUV(s float64) float64 { return LinearSTToUV(s) }

func UVToST(u float64) float64 { return LinearUVToST(u) }

const (
	minAngleSpanDeriv = 1.0
	maxAngleSpanDeriv = 2.0
	minWidthDeriv     = 0.816496580927726032 // sqrt(2/3)
	avgWidthDeriv     = 1.411459345844456965
	minEdgeDeriv      = 2 * math.Sqrt2 / 3
	avgEdgeDeriv      = 1.440034192955603643
	minDiagDeriv      = 2 * math.Sqrt2 / 3
	maxDiagDeriv      = 2 * math.Sqrt2
	avgDiagDeriv      = 2.031817866418812674
	minAreaDeriv      = 4 / (3 * 1.732050807568877293527446341505872367)
	maxAreaDeriv      = 4.0

	MaxEdgeAspect = 1.442615274452682920
)
