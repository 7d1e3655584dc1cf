// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/satsp/tsp"
	"github.com/stretchr/testify/require"
)

const (
	// epsTiny is the tolerance for floating comparisons of stabilized costs.
	epsTiny = 1e-9

	// seedDet is a deterministic seed (0 ⇒ internal default seed).
	seedDet = int64(0)
)

// fastConfig is a short schedule for tests that do not care about quality.
func fastConfig() tsp.Config {
	cfg := tsp.DefaultConfig()
	cfg.InitialTemperature = 100
	cfg.FloorTemperature = 0.01
	cfg.CoolingRate = 0.001
	return cfg
}

// unitSquare returns the four corners of the unit square in a crossing order,
// so the identity tour (cost 2+2√2) is not optimal (cost 4).
func unitSquare() []tsp.City {
	return []tsp.City{
		{Name: "A", X: 0, Y: 0},
		{Name: "C", X: 1, Y: 1},
		{Name: "B", X: 0, Y: 1},
		{Name: "D", X: 1, Y: 0},
	}
}

// rippledCircle places n cities on a circle of radius r with a small
// deterministic ripple to break ties.
func rippledCircle(n int, r float64) []tsp.City {
	out := make([]tsp.City, n)
	var (
		i  int
		th float64
		rr float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64((i*7)%n) / float64(n) // scrambled angular order
		rr = r * (1 + 0.02*float64(i%3))
		out[i] = tsp.City{
			Name: fmt.Sprintf("c%02d", i),
			X:    int(math.Round(rr * math.Cos(th))),
			Y:    int(math.Round(rr * math.Sin(th))),
		}
	}
	return out
}

// mustAnnealer builds the Euclidean table and an Annealer or fails the test.
func mustAnnealer(t testing.TB, cities []tsp.City, seed int64, opts ...tsp.Option) (*tsp.Annealer, *tsp.DistanceTable) {
	t.Helper()
	table, err := tsp.EuclideanTable(cities)
	require.NoError(t, err)
	a, err := tsp.NewAnnealer(cities, table, tsp.NewRand(seed), opts...)
	require.NoError(t, err)
	return a, table
}

// ids returns the names of cities in order.
func ids(cities []tsp.City) []string {
	out := make([]string, len(cities))
	for i := range cities {
		out[i] = cities[i].Name
	}
	return out
}
