// Package tsp - DistanceTable: the (id, id) → distance lookup.
//
// The table is a semantic map keyed by ordered pairs of city names, stored
// as a dense row-major matrix indexed by integer position with a name→index
// map built once. Every ordered pair (self-pairs included) has an entry from
// construction on; unset pairs read as 0.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/satsp/matrix"
)

// DistanceTable maps ordered pairs of city identifiers to non-negative distances.
// It is not safe for concurrent mutation; concurrent reads are fine.
type DistanceTable struct {
	ids   []string
	index map[string]int
	m     *matrix.Dense
}

// NewDistanceTable returns a zero-filled table over ids.
//
// Errors: ErrEmptyInput, ErrEmptyName, ErrDuplicateCity.
//
// Complexity: O(n²) time and memory.
func NewDistanceTable(ids []string) (*DistanceTable, error) {
	if err := validateIDs(ids); err != nil {
		return nil, err
	}
	m, err := matrix.NewSquare(len(ids))
	if err != nil {
		return nil, err
	}

	t := &DistanceTable{
		ids:   append([]string(nil), ids...),
		index: make(map[string]int, len(ids)),
		m:     m,
	}
	var i int
	for i = range t.ids {
		t.index[t.ids[i]] = i
	}

	return t, nil
}

// EuclideanTable builds the full table of straight-line distances among cities,
// every ordered pair including self-pairs (0).
//
// Complexity: O(n²).
func EuclideanTable(cities []City) (*DistanceTable, error) {
	if err := ValidateCities(cities); err != nil {
		return nil, err
	}
	t, err := NewDistanceTable(cityNames(cities))
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = range cities {
		for j = range cities {
			if err = t.m.Set(i, j, EuclideanDistance(cities[i], cities[j])); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

// Len returns the number of identifiers in the table.
func (t *DistanceTable) Len() int { return len(t.ids) }

// IDs returns a copy of the identifiers in table order.
func (t *DistanceTable) IDs() []string { return append([]string(nil), t.ids...) }

// Has reports whether id is covered by the table.
func (t *DistanceTable) Has(id string) bool {
	_, ok := t.index[id]
	return ok
}

// Set stores d for the ordered pair (a, b). The reverse pair is not touched.
//
// Errors: ErrUnknownCity, ErrNegativeDistance, ErrInvalidDistance.
func (t *DistanceTable) Set(a, b string, d float64) error {
	i, j, err := t.pair(a, b)
	if err != nil {
		return err
	}
	if err = validateDistance(d); err != nil {
		return fmt.Errorf("(%q,%q)=%g: %w", a, b, d, err)
	}

	return t.m.Set(i, j, d)
}

// Lookup returns the distance for the ordered pair (a, b).
//
// Errors: ErrUnknownCity.
func (t *DistanceTable) Lookup(a, b string) (float64, error) {
	i, j, err := t.pair(a, b)
	if err != nil {
		return 0, err
	}

	return t.m.At(i, j)
}

// Matrix exposes a deep copy of the backing matrix in table order.
func (t *DistanceTable) Matrix() matrix.Matrix { return t.m.Clone() }

func (t *DistanceTable) pair(a, b string) (int, int, error) {
	i, ok := t.index[a]
	if !ok {
		return 0, 0, fmt.Errorf("%q: %w", a, ErrUnknownCity)
	}
	j, ok := t.index[b]
	if !ok {
		return 0, 0, fmt.Errorf("%q: %w", b, ErrUnknownCity)
	}

	return i, j, nil
}

// project copies the rows/cols for ids (in that order) into a fresh n×n matrix.
// Position k of the result corresponds to ids[k].
//
// Complexity: O(n²).
func (t *DistanceTable) project(ids []string) (*matrix.Dense, error) {
	idx := make([]int, len(ids))

	var (
		k  int
		ok bool
	)
	for k = range ids {
		if idx[k], ok = t.index[ids[k]]; !ok {
			return nil, fmt.Errorf("%q: %w", ids[k], ErrUnknownCity)
		}
	}

	return t.m.Induced(idx, idx)
}
