// Package satsp finds short closed tours through a set of named cities with
// simulated annealing.
//
// The work is split across small subpackages:
//
//	matrix/     - dense row-major float64 storage used for distance tables
//	tsp/        - cities, distance tables, tour cost and the annealer itself
//	cityio/     - text input parser and the "TSP path / Total cost" report
//	config/     - YAML run configuration (schedule, logging, plot output)
//	logger/     - log/slog setup shared by the command
//	render/     - tour plots (png, svg, pdf) via gonum.org/v1/plot
//	cmd/satsp/  - command-line entry point
//
// Quick start:
//
//	cities, _ := cityio.Parse(os.Stdin)
//	table, _ := tsp.EuclideanTable(cities)
//	a, _ := tsp.NewAnnealer(cities, table, tsp.NewRand(42))
//	res := a.Run()
//	_ = cityio.WriteReport(os.Stdout, res.Tour, res.Cost)
//
// Runs are reproducible: the same cities, configuration and seed always give
// the same tour.
package satsp
