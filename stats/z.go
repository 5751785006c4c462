package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var unitNormal = distuv.UnitNormal

// ZVal returns the two-tailed z-value for a confidence level given in
// percent, e.g. 1.96 for 95. Levels outside (0, 100) give NaN.
func ZVal(confidence float64) float64 {
	if confidence <= 0 || confidence >= 100 {
		return math.NaN()
	}
	return unitNormal.Quantile((1 + confidence/100) / 2)
}
