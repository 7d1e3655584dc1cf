package tsp_test

import (
	"testing"

	"github.com/katalvlaran/satsp/tsp"
	"github.com/stretchr/testify/require"
)

// TestValidateTour covers the accepted shape and each violated invariant.
func TestValidateTour(t *testing.T) {
	names := []string{"A", "B", "C"}

	require.NoError(t, tsp.ValidateTour([]string{"A", "C", "B", "A"}, names))
	require.NoError(t, tsp.ValidateTour([]string{"A", "A"}, []string{"A"}))

	cases := []struct {
		name string
		tour []string
		want error
	}{
		{"too short", []string{"A", "B", "A"}, tsp.ErrInvalidTour},
		{"wrong start", []string{"B", "A", "C", "B"}, tsp.ErrInvalidTour},
		{"not closed", []string{"A", "B", "C", "B"}, tsp.ErrInvalidTour},
		{"repeat", []string{"A", "B", "B", "A"}, tsp.ErrInvalidTour},
		{"unknown", []string{"A", "B", "Q", "A"}, tsp.ErrUnknownCity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tsp.ValidateTour(tc.tour, names), tc.want)
		})
	}

	require.ErrorIs(t, tsp.ValidateTour([]string{"A"}, nil), tsp.ErrEmptyInput)
}

// TestIdentityTour checks the closed ring shape including n == 1.
func TestIdentityTour(t *testing.T) {
	require.Equal(t, []int{0, 0}, tsp.IdentityTour(1))
	require.Equal(t, []int{0, 1, 0}, tsp.IdentityTour(2))
	require.Equal(t, []int{0, 1, 2, 3, 0}, tsp.IdentityTour(4))
}

// TestReverseSpanInPlace verifies the half-open reversal used by edge exchange.
func TestReverseSpanInPlace(t *testing.T) {
	tour := []int{0, 1, 2, 3, 4, 5, 0}
	tsp.ReverseSpanInPlace(tour, 1, 4)
	require.Equal(t, []int{0, 3, 2, 1, 4, 5, 0}, tour)

	// Width-1 span is a no-op.
	tsp.ReverseSpanInPlace(tour, 2, 3)
	require.Equal(t, []int{0, 3, 2, 1, 4, 5, 0}, tour)

	// hi is exclusive: position 5 stays put.
	tsp.ReverseSpanInPlace(tour, 4, 5)
	require.Equal(t, []int{0, 3, 2, 1, 4, 5, 0}, tour)
}

// TestFormatTour checks the arrow rendering and CopyTour independence.
func TestFormatTour(t *testing.T) {
	tour := []string{"A", "B", "C", "A"}
	require.Equal(t, "A -> B -> C -> A", tsp.FormatTour(tour))

	cp := tsp.CopyTour(tour)
	cp[1] = "X"
	require.Equal(t, "B", tour[1])
	require.Nil(t, tsp.CopyTour(nil))
}
