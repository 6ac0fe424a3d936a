package spectral

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// median returns the middle value of x without modifying it.
func median(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}

// percentile returns the pct-th percentile (0..100) of x without modifying it.
func percentile(x []float64, pct float64) float64 {
	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)

	return stat.Quantile(pct/100, stat.Empirical, sorted, nil)
}
