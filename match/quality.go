package match

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/mzmatch/mzmatch/feature"
)

// AxisStats summarizes absolute residuals on one axis.
type AxisStats struct {
	Mean   float64
	StdDev float64
	Median float64
}

// QualityReport summarizes how tightly emitted pairs agree in raw
// coordinates. A low time mean with a high stddev usually means the scene
// transform is off in parts of the map.
type QualityReport struct {
	Pairs int
	Time  AxisStats
	Mass  AxisStats
}

// Quality computes residual statistics for pairs found between ref and
// scene with the given transform. Residuals are measured in raw coordinates
// after applying tf to the scene side, mirroring what FindPairs compared.
func Quality(ref, scene feature.Map, pairs []Pair, tf MapTransform) QualityReport {
	report := QualityReport{Pairs: len(pairs)}
	if len(pairs) == 0 {
		return report
	}
	timeRes := make([]float64, 0, len(pairs))
	massRes := make([]float64, 0, len(pairs))
	for _, p := range pairs {
		sp := tf.apply(scene[p.Scene].Position)
		rp := ref[p.Model].Position
		timeRes = append(timeRes, math.Abs(sp.Time-rp.Time))
		massRes = append(massRes, math.Abs(sp.Mass-rp.Mass))
	}
	report.Time = axisStats(timeRes)
	report.Mass = axisStats(massRes)
	return report
}

func axisStats(residuals []float64) AxisStats {
	mean, variance := stat.MeanVariance(residuals, nil)
	if math.IsNaN(variance) {
		variance = 0
	}
	sort.Float64s(residuals)
	return AxisStats{
		Mean:   mean,
		StdDev: math.Sqrt(variance),
		Median: stat.Quantile(0.5, stat.Empirical, residuals, nil),
	}
}
