package tsp

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors. Callers match them with errors.Is; functions may wrap them
// with fmt.Errorf("ctx: %w", ErrX) when the offending value matters.
var (
	// ErrEmptyInput is returned when no cities are supplied (N must be ≥ 1).
	ErrEmptyInput = errors.New("tsp: empty city list")

	// ErrEmptyName is returned for a city with an empty identifier.
	ErrEmptyName = errors.New("tsp: empty city name")

	// ErrDuplicateCity is returned when two cities share an identifier.
	ErrDuplicateCity = errors.New("tsp: duplicate city name")

	// ErrUnknownCity is returned when an identifier is absent from a DistanceTable.
	ErrUnknownCity = errors.New("tsp: unknown city")

	// ErrNegativeDistance is returned when a distance below zero is stored.
	ErrNegativeDistance = errors.New("tsp: negative distance")

	// ErrInvalidDistance is returned for NaN or ±Inf distances.
	ErrInvalidDistance = errors.New("tsp: non-finite distance")

	// ErrInvalidTour is returned when a tour breaks the Hamiltonian-cycle invariants.
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("tsp: invalid config")

	// ErrNilTable is returned when NewAnnealer receives a nil distance table.
	ErrNilTable = errors.New("tsp: nil distance table")

	// ErrNilRand is returned when NewAnnealer receives a nil random stream.
	ErrNilRand = errors.New("tsp: nil random source")

	// ErrMissingDistance marks a broken city/table invariant discovered while
	// evaluating a tour. It is raised as a panic value, never returned.
	ErrMissingDistance = errors.New("tsp: missing distance entry")
)

// Schedule defaults.
const (
	// DefaultInitialTemperature is the starting temperature of every run.
	DefaultInitialTemperature = 10000.0

	// DefaultFloorTemperature ends the cooling loop once reached.
	DefaultFloorTemperature = 0.0001

	// DefaultCoolingRate is the per-iteration increment of the logarithmic accumulator.
	DefaultCoolingRate = 0.00001

	// DefaultLocalSearchTrials is the number of random (i, j) draws per candidate.
	DefaultLocalSearchTrials = 10
)

// Config holds the annealing constants.
type Config struct {
	// InitialTemperature is the temperature at construction. Must be finite and > 0.
	InitialTemperature float64

	// FloorTemperature terminates the loop when temperature ≤ floor. Must be finite and > 0.
	FloorTemperature float64

	// CoolingRate is added to the accumulator (initially e) each iteration;
	// temperature is then divided by ln(accumulator). Must be finite and > 0.
	CoolingRate float64

	// LocalSearchTrials is the number of random index pairs sampled per step. Must be ≥ 1.
	LocalSearchTrials int
}

// DefaultConfig returns the reference schedule: 10000 → 0.0001, rate 1e-5, 10 trials.
func DefaultConfig() Config {
	return Config{
		InitialTemperature: DefaultInitialTemperature,
		FloorTemperature:   DefaultFloorTemperature,
		CoolingRate:        DefaultCoolingRate,
		LocalSearchTrials:  DefaultLocalSearchTrials,
	}
}

// Validate reports the first invalid field wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if !positiveFinite(c.InitialTemperature) {
		return fmt.Errorf("%w: initial temperature must be finite and > 0 (got %g)", ErrInvalidConfig, c.InitialTemperature)
	}
	if !positiveFinite(c.FloorTemperature) {
		return fmt.Errorf("%w: floor temperature must be finite and > 0 (got %g)", ErrInvalidConfig, c.FloorTemperature)
	}
	// rate > 0 keeps ln(acc) > 1 after the first step, so the loop always terminates.
	if !positiveFinite(c.CoolingRate) {
		return fmt.Errorf("%w: cooling rate must be finite and > 0 (got %g)", ErrInvalidConfig, c.CoolingRate)
	}
	if c.LocalSearchTrials < 1 {
		return fmt.Errorf("%w: local search trials must be >= 1 (got %d)", ErrInvalidConfig, c.LocalSearchTrials)
	}

	return nil
}

func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}

// Phase is the state of the cooling loop.
type Phase int

const (
	// Annealing means the temperature is still above the floor.
	Annealing Phase = iota
	// Done means the loop has terminated; the state is frozen.
	Done
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case Annealing:
		return "annealing"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Result is the read-only outcome of a finished run.
type Result struct {
	// Tour is the closed cycle of city names; Tour[0] == Tour[len-1] == home city.
	Tour []string

	// Cost is the total distance of Tour.
	Cost float64

	// Iterations is the number of cooling steps performed.
	Iterations int

	// Accepted counts the steps whose candidate replaced the current tour.
	Accepted int

	// FinalTemperature is the temperature when the loop stopped.
	FinalTemperature float64
}

// Progress is a snapshot handed to an Observer.
type Progress struct {
	Iteration   int
	Temperature float64
	Cost        float64
	Accepted    int
}

// Observer receives periodic progress snapshots from Run.
// It runs on the caller's goroutine and must not retain the Annealer.
type Observer func(Progress)

// Option configures an Annealer at construction.
type Option func(*Annealer)

// WithConfig replaces the default schedule constants. The config is validated by NewAnnealer.
func WithConfig(cfg Config) Option {
	return func(a *Annealer) { a.cfg = cfg }
}

// WithObserver registers fn to be called every `every` iterations.
// every ≤ 0 or fn == nil disables observation.
func WithObserver(every int, fn Observer) Option {
	return func(a *Annealer) {
		if every <= 0 || fn == nil {
			a.observer, a.every = nil, 0
			return
		}
		a.observer, a.every = fn, every
	}
}
