package cityio

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/satsp/tsp"
)

// FormatCost renders a cost with the shortest representation that round-trips.
func FormatCost(cost float64) string {
	return strconv.FormatFloat(cost, 'g', -1, 64)
}

// WriteReport prints the two-line result:
//
//	TSP path: A -> B -> C -> A
//	Total cost: 12.5
func WriteReport(w io.Writer, tour []string, cost float64) error {
	_, err := fmt.Fprintf(w, "TSP path: %s\nTotal cost: %s\n", tsp.FormatTour(tour), FormatCost(cost))
	return err
}
