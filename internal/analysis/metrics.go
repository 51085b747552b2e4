// Package analysis derives statistics from a built graph: path-length
// aggregates over a BFS distance map, degree and second-order histograms,
// and their averages.
package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/persistorai/friendgraph/internal/models"
)

// PathMetrics summarises every value of d, the source's own 0 included.
// Median, mean and the population standard deviation are computed in float64.
func PathMetrics(d models.DistanceMap) (models.PathMetrics, error) {
	if len(d) == 0 {
		return models.PathMetrics{}, models.ErrEmptyDistances
	}

	sorted := d.Values()
	xs := make([]float64, len(sorted))
	for i, v := range sorted {
		xs[i] = float64(v)
	}

	mean, std := stat.PopMeanStdDev(xs, nil)

	return models.PathMetrics{
		Max:    int(floats.Max(xs)),
		Min:    int(floats.Min(xs)),
		Median: median(xs),
		StdDev: std,
		Mean:   mean,
	}, nil
}

// median expects xs sorted ascending and non-empty.
func median(xs []float64) float64 {
	mid := len(xs) / 2
	if len(xs)%2 == 1 {
		return xs[mid]
	}

	return (xs[mid-1] + xs[mid]) / 2
}
