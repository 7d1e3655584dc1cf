package tsp

import "math"

// City is a named point with integer coordinates. Values are immutable by convention.
type City struct {
	Name string
	X, Y int
}

// EuclideanDistance returns sqrt((ax−bx)² + (ay−by)²).
func EuclideanDistance(a, b City) float64 {
	dx := float64(a.X) - float64(b.X)
	dy := float64(a.Y) - float64(b.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// ValidateCities checks that the list is non-empty and names are non-empty and unique.
//
// Complexity: O(n) time, O(n) space.
func ValidateCities(cities []City) error {
	if len(cities) == 0 {
		return ErrEmptyInput
	}

	return validateIDs(cityNames(cities))
}

// cityNames projects cities onto their identifiers, preserving order.
func cityNames(cities []City) []string {
	ids := make([]string, len(cities))
	var i int
	for i = range cities {
		ids[i] = cities[i].Name
	}

	return ids
}
