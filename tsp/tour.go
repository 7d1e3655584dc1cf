// Package tsp - tour utilities.
//
// A tour is a closed index or name sequence of length n+1 whose first and
// last elements are the home city. Provided helpers:
//   - identityTour: the initial ring [0, 1, …, n−1, 0].
//   - swapInPlace: node exchange of two positions (swap operator).
//   - reverseSpanInPlace: half-open segment reversal (edge-exchange operator).
//   - namesOf: index tour → name tour.
//   - CopyTour: independent copy of a name tour.
//   - FormatTour: "A -> B -> A" rendering.
//
// Design:
//   - In-place mutations avoid allocations in the annealing hot loop.
//   - Index contracts are enforced by callers; helpers do not re-check them.
package tsp

import "strings"

// tourArrow separates city names in FormatTour.
const tourArrow = " -> "

// identityTour returns [0, 1, …, n−1, 0]. For n == 1 it returns [0, 0].
//
// Complexity: O(n) time, O(n) space.
func identityTour(n int) []int {
	out := make([]int, n+1)

	var i int
	for i = 0; i < n; i++ {
		out[i] = i
	}
	out[n] = 0

	return out
}

// swapInPlace exchanges the cities at positions i and j.
//
// Complexity: O(1).
func swapInPlace(tour []int, i, j int) {
	tour[i], tour[j] = tour[j], tour[i]
}

// reverseSpanInPlace reverses tour[lo:hi] (hi exclusive).
// Contract: 1 ≤ lo ≤ hi ≤ n−1, so the home city and the closure are never moved.
//
// Complexity: O(hi−lo) time, O(1) space.
func reverseSpanInPlace(tour []int, lo, hi int) {
	hi--
	for lo < hi {
		tour[lo], tour[hi] = tour[hi], tour[lo]
		lo++
		hi--
	}
}

// namesOf maps an index tour onto identifiers.
func namesOf(tour []int, ids []string) []string {
	out := make([]string, len(tour))

	var i int
	for i = range tour {
		out[i] = ids[tour[i]]
	}

	return out
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []string) []string {
	if tour == nil {
		return nil
	}
	out := make([]string, len(tour))
	copy(out, tour)

	return out
}

// FormatTour renders a tour as names joined by " -> ", e.g. "A -> C -> B -> A".
func FormatTour(tour []string) string {
	return strings.Join(tour, tourArrow)
}
