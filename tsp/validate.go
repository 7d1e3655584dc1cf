// Package tsp - validation utilities shared by the distance table and the annealer.
//
// This file contains small helpers that:
//  1. Validate identifier lists (non-empty, unique).
//  2. Validate single distance values (finite, non-negative).
//  3. Validate name tours against an identifier set.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
package tsp

import (
	"fmt"
	"math"
)

// validateIDs enforces non-empty strings and uniqueness.
//
// Complexity: O(n) time and O(n) extra space.
func validateIDs(ids []string) error {
	if len(ids) == 0 {
		return ErrEmptyInput
	}
	seen := make(map[string]struct{}, len(ids))

	var (
		i  int
		id string
		ok bool
	)
	for i = 0; i < len(ids); i++ {
		id = ids[i]
		if id == "" {
			return fmt.Errorf("position %d: %w", i, ErrEmptyName)
		}
		if _, ok = seen[id]; ok {
			return fmt.Errorf("%q: %w", id, ErrDuplicateCity)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// validateDistance rejects NaN, ±Inf and negative values.
//
// Complexity: O(1).
func validateDistance(d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return ErrInvalidDistance
	}
	if d < 0 {
		return ErrNegativeDistance
	}

	return nil
}

// ValidateTour enforces the Hamiltonian-cycle invariants for a name tour over ids:
//
//	len(tour) == len(ids)+1, tour[0] == tour[n] == ids[0],
//	each id appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []string, ids []string) error {
	var n = len(ids)
	if n == 0 {
		return ErrEmptyInput
	}
	if len(tour) != n+1 {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidTour, len(tour), n+1)
	}
	if tour[0] != ids[0] || tour[n] != ids[0] {
		return fmt.Errorf("%w: must start and end at %q", ErrInvalidTour, ids[0])
	}

	want := make(map[string]bool, n)
	var i int
	for i = 0; i < n; i++ {
		want[ids[i]] = false
	}
	var (
		seen  bool
		known bool
	)
	for i = 0; i < n; i++ {
		seen, known = want[tour[i]]
		if !known {
			return fmt.Errorf("%w: %q at position %d", ErrUnknownCity, tour[i], i)
		}
		if seen {
			return fmt.Errorf("%w: %q visited twice", ErrInvalidTour, tour[i])
		}
		want[tour[i]] = true
	}

	return nil
}
