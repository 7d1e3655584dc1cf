// Package tsp - neighbourhood generation for the annealer.
//
// One call to localSearch produces one candidate per cooling step: the best
// of LocalSearchTrials random perturbations of the current tour under two
// operators sharing the same random positions i ≠ j ∈ [1, n−1]:
//
//   - node exchange: swap the cities at i and j;
//   - edge exchange: reverse the half-open span [min(i,j), max(i,j)).
//
// Only strictly cheaper candidates replace the running best (which starts at
// +Inf), so ties keep the first one found. Position 0 (home) and position n
// (closure) are never moved.
//
// Contracts:
//   - n ≥ 3; smaller instances never reach this code (see Annealer.Run).
//   - a.swapBuf, a.revBuf, a.nextBuf have length n+1 and alias nothing else.
//
// Complexity: O(trials·n) time, O(1) extra space.
package tsp

import "math"

// localSearch fills a.nextBuf with the best candidate of this step and returns its cost.
func (a *Annealer) localSearch() float64 {
	var (
		bestCost = math.Inf(1)
		c        float64
		i, j     int
		lo, hi   int
		t        int
	)
	for t = 0; t < a.cfg.LocalSearchTrials; t++ {
		i, j = distinctPair(a.rng, a.n)
		lo, hi = i, j
		if lo > hi {
			lo, hi = hi, lo
		}

		// Node exchange.
		copy(a.swapBuf, a.cur)
		swapInPlace(a.swapBuf, i, j)
		c = cycleCost(a.dist, a.n, a.swapBuf)
		if c < bestCost {
			bestCost = c
			copy(a.nextBuf, a.swapBuf)
		}

		// Edge exchange.
		copy(a.revBuf, a.cur)
		reverseSpanInPlace(a.revBuf, lo, hi)
		c = cycleCost(a.dist, a.n, a.revBuf)
		if c < bestCost {
			bestCost = c
			copy(a.nextBuf, a.revBuf)
		}
	}

	return bestCost
}
