// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major float64 storage used by the
// tsp package for pairwise distance tables.
//
// The surface is intentionally small:
//
//   - Matrix: the access interface (Rows/Cols/At/Set/Clone).
//   - Dense: flat-slice implementation with bounds-checked accessors and an
//     optional finite-only numeric policy on Set.
//   - Induced: copy-based extraction of a sub-matrix by index lists, used to
//     project a shared distance table onto the cities of one annealing run.
//   - ValidateSymmetric: structural symmetry check within a tolerance.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Induced: O(r'*c').
package matrix
