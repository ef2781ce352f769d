package s2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricValue(t *testing.T) {
	assert.Equal(t, MaxEdgeMetric.Deriv, MaxEdgeMetric.Value(0))
	assert.Equal(t, MaxEdgeMetric.Deriv/8, MaxEdgeMetric.Value(3))
	assert.Equal(t, AvgAreaMetric.Deriv/16, AvgAreaMetric.Value(2))
	assert.InDelta(t, 4*math.Pi, 6*AvgAreaMetric.Value(0), 1e-14)
}

func TestMetricLevels(t *testing.T) {
	metrics := []struct {
		name   string
		metric Metric
	}{
		{"min width", MinWidthMetric},
		{"avg edge", AvgEdgeMetric},
		{"max diag", MaxDiagMetric},
		{"min area", MinAreaMetric},
		{"max area", MaxAreaMetric},
	}

	for _, m := range metrics {
		t.Run(m.name, func(t *testing.T) {
			for level := 0; level <= MaxLevel; level++ {
				v := m.metric.Value(level)
				assert.Equal(t, level, m.metric.LevelForMaxValue(v))
				assert.Equal(t, level, m.metric.LevelForMinValue(v))
				if level > 0 {
					assert.Equal(t, level-1, m.metric.LevelForMaxValue(1.2*v*math.Pow(2, float64(m.metric.Dim))))
				}
				if level < MaxLevel {
					assert.Equal(t, level+1, m.metric.LevelForMinValue(0.8*v/math.Pow(2, float64(m.metric.Dim))))
				}
			}

			assert.Equal(t, MaxLevel, m.metric.LevelForMaxValue(0))
			assert.Equal(t, MaxLevel, m.metric.LevelForMaxValue(-1))
			assert.Equal(t, 0, m.metric.LevelForMaxValue(100))
			assert.Equal(t, 0, m.metric.LevelForMinValue(100))
			assert.Equal(t, MaxLevel, m.metric.LevelForMaxValue(1e-300))
		})
	}
}

func TestMetricClosestLevel(t *testing.T) {
	prev := 0
	for _, v := range []float64{4, 1, 0.3, 0.05, 1e-3, 1e-5, 1e-8} {
		level := MaxEdgeMetric.ClosestLevel(v)
		assert.GreaterOrEqual(t, level, prev, "value %v", v)
		prev = level
	}
	assert.Equal(t, 0, MaxEdgeMetric.ClosestLevel(MaxEdgeMetric.Value(0)))
	assert.Equal(t, 12, MaxEdgeMetric.ClosestLevel(MaxEdgeMetric.Value(12)))
	assert.Equal(t, 7, AvgAreaMetric.ClosestLevel(AvgAreaMetric.Value(7)))
}

func TestMetricOrdering(t *testing.T) {
	families := []struct {
		name          string
		min, avg, max Metric
	}{
		{"angle span", MinAngleSpanMetric, AvgAngleSpanMetric, MaxAngleSpanMetric},
		{"width", MinWidthMetric, AvgWidthMetric, MaxWidthMetric},
		{"edge", MinEdgeMetric, AvgEdgeMetric, MaxEdgeMetric},
		{"diag", MinDiagMetric, AvgDiagMetric, MaxDiagMetric},
		{"area", MinAreaMetric, AvgAreaMetric, MaxAreaMetric},
	}

	for _, f := range families {
		assert.LessOrEqual(t, f.min.Deriv, f.avg.Deriv, f.name)
		assert.LessOrEqual(t, f.avg.Deriv, f.max.Deriv, f.name)
	}
	assert.GreaterOrEqual(t, MaxEdgeAspect, 1.0)
	assert.Equal(t, math.Sqrt(3), MaxDiagAspect)
}
