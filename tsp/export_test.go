package tsp

// Test-only exports of private helpers.

// CycleCost exposes cycleCost.
func CycleCost(dist []float64, n int, tour []int) float64 { return cycleCost(dist, n, tour) }

// ReverseSpanInPlace exposes reverseSpanInPlace.
func ReverseSpanInPlace(tour []int, lo, hi int) { reverseSpanInPlace(tour, lo, hi) }

// IdentityTour exposes identityTour.
func IdentityTour(n int) []int { return identityTour(n) }

// DeriveSeed exposes deriveSeed.
func DeriveSeed(parent int64, stream uint64) int64 { return deriveSeed(parent, stream) }

// LocalSearchOnce runs a single neighbourhood step and returns the candidate
// as names together with its cost, without touching the current state.
func (a *Annealer) LocalSearchOnce() ([]string, float64) {
	c := a.localSearch()
	return namesOf(a.nextBuf, a.ids), c
}

// Step runs one cooling iteration regardless of the floor.
func (a *Annealer) Step() { a.step() }
