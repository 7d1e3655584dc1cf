// Package tsp - simulated-annealing engine.
//
// Annealer owns the mutable state (current tour, current cost, temperature)
// for exactly one run. Control flow:
//
//	NewAnnealer(cities, table, rng) → Run() → Tour()/Cost()/Result()
//
// Cooling loop, while temperature > floor:
//  1. candidate := localSearch()           (best of trials × {swap, reverse})
//  2. p := exp((cur − cand) / temperature) (p ≥ 1 for non-worsening moves)
//  3. accept when p > u, u ~ U[0,1)
//  4. agg += rate; temperature /= ln(agg)
//
// Instances with n ≤ 2 have no two distinct movable positions; Run freezes the
// initial tour immediately instead of sampling.
//
// Determinism: all randomness comes from the injected *rand.Rand.
// Concurrency: not goroutine-safe; one Annealer per goroutine.
package tsp

import (
	"math"
	"math/rand"
)

// minSearchSize is the smallest n for which two distinct non-home positions exist.
const minSearchSize = 3

// Annealer runs simulated annealing over one city list.
type Annealer struct {
	cfg Config
	rng *rand.Rand

	ids  []string  // ids[k] is the name of local index k (input order)
	dist []float64 // n×n row-major, dist[u*n+v] = d(ids[u], ids[v])
	n    int

	cur     []int // current closed tour, len n+1
	curCost float64
	temp    float64
	sched   logSchedule

	phase    Phase
	iter     int
	accepted int

	observer Observer
	every    int

	// scratch buffers reused across steps (len n+1 each)
	swapBuf []int
	revBuf  []int
	nextBuf []int
}

// NewAnnealer builds the initial state: home = cities[0], tour =
// [city0, city1, …, cityN−1, city0], cost from the table, temperature from config.
//
// Errors:
//   - ErrEmptyInput, ErrEmptyName, ErrDuplicateCity from the city list.
//   - ErrNilTable, ErrNilRand for missing collaborators.
//   - ErrUnknownCity when the table lacks a city.
//   - ErrInvalidConfig from WithConfig.
//
// Complexity: O(n²) for projecting the table.
func NewAnnealer(cities []City, table *DistanceTable, rng *rand.Rand, opts ...Option) (*Annealer, error) {
	if err := ValidateCities(cities); err != nil {
		return nil, err
	}
	if table == nil {
		return nil, ErrNilTable
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	a := &Annealer{cfg: DefaultConfig(), rng: rng}
	var opt Option
	for _, opt = range opts {
		opt(a)
	}
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}

	a.ids = cityNames(cities)
	a.n = len(a.ids)
	local, err := table.project(a.ids)
	if err != nil {
		return nil, err
	}
	a.dist = local.RawRowMajor()

	a.cur = identityTour(a.n)
	a.curCost = cycleCost(a.dist, a.n, a.cur)
	a.temp = a.cfg.InitialTemperature
	a.sched = newLogSchedule(a.cfg.CoolingRate)
	a.phase = Annealing

	a.swapBuf = make([]int, a.n+1)
	a.revBuf = make([]int, a.n+1)
	a.nextBuf = make([]int, a.n+1)

	return a, nil
}

// AcceptanceProbability is the Metropolis factor exp((cur − cand) / temp).
// It exceeds 1 when cand < cur and equals exactly 1 when cand == cur.
func AcceptanceProbability(cur, cand, temp float64) float64 {
	return math.Exp((cur - cand) / temp)
}

// Run executes the cooling loop to completion and returns the final result.
// Calling Run on a finished Annealer returns the same result without mutation.
//
// Complexity: O(steps · trials · n), steps = CoolingSteps(cfg).
func (a *Annealer) Run() Result {
	if a.phase == Done {
		return a.Result()
	}
	if a.n < minSearchSize {
		a.phase = Done
		return a.Result()
	}

	for a.temp > a.cfg.FloorTemperature {
		a.step()
		if a.observer != nil && a.iter%a.every == 0 {
			a.observer(a.progress())
		}
	}
	a.phase = Done

	return a.Result()
}

// step performs one cooling iteration: search, accept or reject, cool.
func (a *Annealer) step() {
	cand := a.localSearch()
	u := a.rng.Float64()
	if AcceptanceProbability(a.curCost, cand, a.temp) > u {
		a.cur, a.nextBuf = a.nextBuf, a.cur
		a.curCost = cand
		a.accepted++
	}
	a.temp = a.sched.next(a.temp)
	a.iter++
}

func (a *Annealer) progress() Progress {
	return Progress{
		Iteration:   a.iter,
		Temperature: a.temp,
		Cost:        a.curCost,
		Accepted:    a.accepted,
	}
}

// Result returns a snapshot of the current state. After Run it is the final result.
func (a *Annealer) Result() Result {
	return Result{
		Tour:             a.Tour(),
		Cost:             a.curCost,
		Iterations:       a.iter,
		Accepted:         a.accepted,
		FinalTemperature: a.temp,
	}
}

// Tour returns a copy of the current closed tour as city names.
func (a *Annealer) Tour() []string { return namesOf(a.cur, a.ids) }

// Cost returns the cost of the current tour.
func (a *Annealer) Cost() float64 { return a.curCost }

// Temperature returns the current temperature.
func (a *Annealer) Temperature() float64 { return a.temp }

// Phase reports whether the loop is still annealing or done.
func (a *Annealer) Phase() Phase { return a.phase }

// Done reports whether the temperature has reached the floor.
func (a *Annealer) Done() bool { return a.phase == Done }

// Config returns the schedule constants in use.
func (a *Annealer) Config() Config { return a.cfg }
