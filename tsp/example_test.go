// Package tsp_test provides runnable, deterministic examples for the annealer.
package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/satsp/tsp"
)

// ExampleAnnealer_Run anneals the four corners of a unit square given in a
// crossing order and recovers the perimeter tour.
func ExampleAnnealer_Run() {
	cities := []tsp.City{
		{Name: "A", X: 0, Y: 0},
		{Name: "C", X: 1, Y: 1},
		{Name: "B", X: 0, Y: 1},
		{Name: "D", X: 1, Y: 0},
	}
	table, err := tsp.EuclideanTable(cities)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	a, err := tsp.NewAnnealer(cities, table, tsp.NewRand(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("before: %.4f\n", a.Cost())
	res := a.Run()
	fmt.Printf("after:  %.4f\n", res.Cost)
	fmt.Println("valid:", tsp.ValidateTour(res.Tour, []string{"A", "C", "B", "D"}) == nil)

	// Output:
	// before: 4.8284
	// after:  4.0000
	// valid: true
}

// ExampleNewAnnealer_degenerate shows that two cities need no search.
func ExampleNewAnnealer_degenerate() {
	cities := []tsp.City{{Name: "home", X: 0, Y: 0}, {Name: "away", X: 6, Y: 8}}
	table, _ := tsp.EuclideanTable(cities)
	a, _ := tsp.NewAnnealer(cities, table, tsp.NewRand(0))

	res := a.Run()
	fmt.Println(tsp.FormatTour(res.Tour))
	fmt.Println(res.Cost, res.Iterations)

	// Output:
	// home -> away -> home
	// 20 0
}

// ExampleCoolingSteps prints the length of the default schedule.
func ExampleCoolingSteps() {
	fmt.Println(tsp.CoolingSteps(tsp.DefaultConfig()) > 3000)

	// Output:
	// true
}
