// Package tsp - cost utilities.
//
// Two entry points compute the length of a closed tour:
//   - TourCost: name-based, validated, returns sentinel errors. For callers
//     outside the annealing loop (reporting, tests).
//   - cycleCost: index-based over a flat row-major buffer. Used in the hot
//     loop; a missing entry is a broken invariant and panics.
//
// Both sum consecutive pairs (i, i+1) and round to 1e-9 so that recomputing
// a tour's cost always reproduces the carried value exactly.
package tsp

import (
	"fmt"
	"math"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost sums table distances over the consecutive pairs of tour.
// The sum is rounded to 1e-9, so it can differ from the plain sum in the last
// digits; the annealer's carried cost uses the same rounding.
//
// Errors:
//   - ErrInvalidTour when len(tour) < 2.
//   - ErrUnknownCity when a name is not in the table.
//
// Complexity: O(len(tour)).
func TourCost(table *DistanceTable, tour []string) (float64, error) {
	if table == nil {
		return 0, ErrNilTable
	}
	if len(tour) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 entries, got %d", ErrInvalidTour, len(tour))
	}

	var (
		sum float64
		d   float64
		err error
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		if d, err = table.Lookup(tour[i], tour[i+1]); err != nil {
			return 0, err
		}
		sum += d
	}

	return round1e9(sum), nil
}

// cycleCost sums dist[u*n+v] over consecutive pairs of tour.
// An index outside [0, n) means the city list and the table disagree; it panics
// with ErrMissingDistance.
//
// Complexity: O(len(tour)).
func cycleCost(dist []float64, n int, tour []int) float64 {
	var (
		sum  float64
		u, v int
		i    int
	)
	for i = 0; i+1 < len(tour); i++ {
		u = tour[i]
		v = tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			panic(fmt.Errorf("%w: edge %d->%d with n=%d", ErrMissingDistance, u, v, n))
		}
		sum += dist[u*n+v]
	}

	return round1e9(sum)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
