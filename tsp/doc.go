// Package tsp approximates the Travelling Salesman Problem with simulated annealing.
//
// Inputs are an ordered list of named cities and a DistanceTable covering every
// ordered pair of their names (self-pairs are 0). EuclideanTable builds one from
// integer coordinates.
//
// The Annealer keeps a closed tour [home, …, home] of length n+1, its cost and a
// temperature. Each cooling step:
//
//   - samples LocalSearchTrials random position pairs and keeps the cheapest of
//     the node-exchange and segment-reversal candidates;
//   - accepts it with the Metropolis probability exp((cur − cand) / T), so
//     non-worsening candidates are always taken;
//   - cools T by the logarithmic rule T /= ln(acc), acc = e + k·rate.
//
// The loop stops once T ≤ FloorTemperature. With the defaults (10000, 1e-4,
// rate 1e-5, 10 trials) that is about 3.2k steps regardless of n.
//
// Randomness is injected as a *rand.Rand (see NewRand) so runs are reproducible.
package tsp
