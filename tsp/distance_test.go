package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/satsp/tsp"
	"github.com/stretchr/testify/require"
)

// TestEuclideanTable_AllPairs checks every ordered pair including self-pairs.
func TestEuclideanTable_AllPairs(t *testing.T) {
	cities := []tsp.City{
		{Name: "o", X: 0, Y: 0},
		{Name: "p", X: 3, Y: 4},
		{Name: "q", X: -3, Y: 4},
	}
	table, err := tsp.EuclideanTable(cities)
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())
	require.Equal(t, []string{"o", "p", "q"}, table.IDs())

	var a, b tsp.City
	for _, a = range cities {
		for _, b = range cities {
			d, err := table.Lookup(a.Name, b.Name)
			require.NoError(t, err)
			require.Equal(t, tsp.EuclideanDistance(a, b), d)
			if a.Name == b.Name {
				require.Zero(t, d)
			}
		}
	}

	d, _ := table.Lookup("p", "q")
	require.Equal(t, 6.0, d)
	d, _ = table.Lookup("q", "o")
	require.Equal(t, 5.0, d)

	m := table.Matrix()
	require.Equal(t, 3, m.Rows())
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
}

// TestEuclideanTable_ExtremeCoordinates keeps differences of opposite-sign
// coordinates near the int64 limits exact.
func TestEuclideanTable_ExtremeCoordinates(t *testing.T) {
	cities := []tsp.City{
		{Name: "east", X: 5_000_000_000_000_000_000, Y: 0},
		{Name: "west", X: -5_000_000_000_000_000_000, Y: 0},
		{Name: "north", X: 0, Y: math.MaxInt64},
	}
	require.InEpsilon(t, 1e19, tsp.EuclideanDistance(cities[0], cities[1]), 1e-12)

	table, err := tsp.EuclideanTable(cities)
	require.NoError(t, err)
	d, err := table.Lookup("west", "east")
	require.NoError(t, err)
	require.InEpsilon(t, 1e19, d, 1e-12)

	d, err = table.Lookup("east", "north")
	require.NoError(t, err)
	require.InEpsilon(t, math.Hypot(5e18, float64(math.MaxInt64)), d, 1e-12)
}

// TestEuclideanTable_Errors covers empty, unnamed and duplicate inputs.
func TestEuclideanTable_Errors(t *testing.T) {
	_, err := tsp.EuclideanTable(nil)
	require.ErrorIs(t, err, tsp.ErrEmptyInput)

	_, err = tsp.EuclideanTable([]tsp.City{{Name: ""}})
	require.ErrorIs(t, err, tsp.ErrEmptyName)

	_, err = tsp.EuclideanTable([]tsp.City{{Name: "x"}, {Name: "y"}, {Name: "x"}})
	require.ErrorIs(t, err, tsp.ErrDuplicateCity)
}

// TestDistanceTable_SetLookup exercises the explicit (asymmetric) table path.
func TestDistanceTable_SetLookup(t *testing.T) {
	table, err := tsp.NewDistanceTable([]string{"a", "b"})
	require.NoError(t, err)
	require.True(t, table.Has("a"))
	require.False(t, table.Has("z"))

	require.NoError(t, table.Set("a", "b", 2.5))
	d, err := table.Lookup("a", "b")
	require.NoError(t, err)
	require.Equal(t, 2.5, d)

	d, err = table.Lookup("b", "a")
	require.NoError(t, err)
	require.Zero(t, d, "reverse pair is independent")

	require.ErrorIs(t, table.Set("a", "b", -1), tsp.ErrNegativeDistance)
	require.ErrorIs(t, table.Set("a", "b", math.NaN()), tsp.ErrInvalidDistance)
	require.ErrorIs(t, table.Set("a", "b", math.Inf(1)), tsp.ErrInvalidDistance)
	require.ErrorIs(t, table.Set("a", "z", 1), tsp.ErrUnknownCity)

	_, err = table.Lookup("z", "a")
	require.ErrorIs(t, err, tsp.ErrUnknownCity)
}

// TestDistanceTable_IDsIsCopy ensures callers cannot mutate the table identifiers.
func TestDistanceTable_IDsIsCopy(t *testing.T) {
	table, err := tsp.NewDistanceTable([]string{"a", "b"})
	require.NoError(t, err)

	got := table.IDs()
	got[0] = "mutated"
	require.Equal(t, []string{"a", "b"}, table.IDs())
}

// TestAnnealer_AsymmetricTable runs on a hand-built directed table.
func TestAnnealer_AsymmetricTable(t *testing.T) {
	names := []string{"h", "x", "y", "z"}
	table, err := tsp.NewDistanceTable(names)
	require.NoError(t, err)

	// Cheap directed ring h→x→y→z→h; everything else costs 10.
	var a, b string
	for _, a = range names {
		for _, b = range names {
			if a != b {
				require.NoError(t, table.Set(a, b, 10))
			}
		}
	}
	require.NoError(t, table.Set("h", "x", 1))
	require.NoError(t, table.Set("x", "y", 1))
	require.NoError(t, table.Set("y", "z", 1))
	require.NoError(t, table.Set("z", "h", 1))

	cities := []tsp.City{{Name: "h"}, {Name: "z"}, {Name: "y"}, {Name: "x"}}
	an, err := tsp.NewAnnealer(cities, table, tsp.NewRand(3))
	require.NoError(t, err)

	res := an.Run()
	require.Equal(t, []string{"h", "x", "y", "z", "h"}, res.Tour)
	require.Equal(t, 4.0, res.Cost)
}
