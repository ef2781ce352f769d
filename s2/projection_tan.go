//go:build s2tan && !s2linear

package s2

import "math"

// STToUV converts an s or t value to the corresponding u or v value using
// the tangent projection.
func STToUV(s float64) float64 { return TangentSTToUV(s) }

func UVToST(u float64) float64 { return TangentUVToST(u) }

const (
	minAngleSpanDeriv = math.Pi / 2
	maxAngleSpanDeriv = math.Pi / 2
	minWidthDeriv     = math.Pi / (2 * math.Sqrt2)
	avgWidthDeriv     = 1.437318638925160885
	minEdgeDeriv      = math.Pi / (2 * math.Sqrt2)
	avgEdgeDeriv      = 1.461667032546739266
	minDiagDeriv      = math.Pi * math.Sqrt2 / 3
	maxDiagDeriv      = math.Pi * 0.816496580927726032 // π·sqrt(2/3)
	avgDiagDeriv      = 2.063623197195635753
	minAreaDeriv      = math.Pi * math.Pi / (4 * math.Sqrt2)
	maxAreaDeriv      = math.Pi * math.Pi / 4

	MaxEdgeAspect = math.Sqrt2
)
