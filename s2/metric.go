package s2

import "math"

// Metric relates a measure of cell size to a cell level. Length metrics
// (Dim 1) halve with each level and area metrics (Dim 2) quarter. Deriv is
// the value of the metric at level 0 on the unit sphere.
type Metric struct {
	Dim   int
	Deriv float64
}

// The metrics below describe cell sizes under the compiled projection. The
// Deriv values for each projection live next to the projection itself.
var (
	MinAngleSpanMetric = Metric{1, minAngleSpanDeriv}
	MaxAngleSpanMetric = Metric{1, maxAngleSpanDeriv}
	AvgAngleSpanMetric = Metric{1, math.Pi / 2}

	MinWidthMetric = Metric{1, minWidthDeriv}
	MaxWidthMetric = Metric{1, maxAngleSpanDeriv}
	AvgWidthMetric = Metric{1, avgWidthDeriv}

	MinEdgeMetric = Metric{1, minEdgeDeriv}
	MaxEdgeMetric = Metric{1, maxAngleSpanDeriv}
	AvgEdgeMetric = Metric{1, avgEdgeDeriv}

	MinDiagMetric = Metric{1, minDiagDeriv}
	MaxDiagMetric = Metric{1, maxDiagDeriv}
	AvgDiagMetric = Metric{1, avgDiagDeriv}

	MinAreaMetric = Metric{2, minAreaDeriv}
	MaxAreaMetric = Metric{2, maxAreaDeriv}
	AvgAreaMetric = Metric{2, 4 * math.Pi / 6}
)

// MaxDiagAspect is the maximum ratio of the two diagonals of any cell.
var MaxDiagAspect = math.Sqrt(3)

// Value returns the value of the metric at the given level.
func (m Metric) Value(level int) float64 {
	return math.Ldexp(m.Deriv, -m.Dim*level)
}

// ClosestLevel returns the level at which the metric is closest to val, in
// the geometric sense.
func (m Metric) ClosestLevel(val float64) int {
	x := math.Sqrt2
	if m.Dim == 2 {
		x = 2
	}
	return m.LevelForMaxValue(x * val)
}

// LevelForMaxValue returns the minimum level such that the metric is at most
// val, or MaxLevel if there is none.
func (m Metric) LevelForMaxValue(val float64) int {
	if val <= 0 {
		return MaxLevel
	}
	// Value(level) <= val becomes level >= -ilogb(val/Deriv)/Dim, where the
	// arithmetic shift rounds toward the finer level.
	level := math.Ilogb(val / m.Deriv)
	level = -(level >> uint(m.Dim-1))
	return clamp(level, 0, MaxLevel)
}

// LevelForMinValue returns the maximum level such that the metric is at
// least val, or 0 if there is none.
func (m Metric) LevelForMinValue(val float64) int {
	if val <= 0 {
		return MaxLevel
	}
	level := math.Ilogb(m.Deriv / val)
	level = level >> uint(m.Dim-1)
	return clamp(level, 0, MaxLevel)
}
