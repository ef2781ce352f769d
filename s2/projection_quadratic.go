//go:build !s2linear && !s2tan

package s2

import "math"

// STToUV converts an s or t value to the corresponding u or v value using
// the quadratic projection.
func STToUV(s float64) float64 { return QuadraticSTToUV(s) }

// UVToST is the inverse of STToUV.
func UVToST(u float64) float64 { return QuadraticUVToST(u) }

const (
	minAngleSpanDeriv = 4.0 / 3
	maxAngleSpanDeriv = 1.704897179199218452
	minWidthDeriv     = 2 * math.Sqrt2 / 3
	avgWidthDeriv     = 1.434523672886099389
	minEdgeDeriv      = 2 * math.Sqrt2 / 3
	avgEdgeDeriv      = 1.459213746386106062
	minDiagDeriv      = 8 * math.Sqrt2 / 9
	maxDiagDeriv      = 2.438654594434021032
	avgDiagDeriv      = 2.060422738998471683
	minAreaDeriv      = 8 * math.Sqrt2 / 9
	maxAreaDeriv      = 2.635799256963161491

	// MaxEdgeAspect is the maximum edge aspect ratio of any cell.
	MaxEdgeAspect = math.Sqrt2
)
