package tsp

import "math"

// logSchedule is the logarithmic cooling rule: the accumulator starts at e and
// grows by rate each step; the temperature is divided by ln(accumulator).
// Since ln(e+k·rate) > 1 for k ≥ 1, every step strictly lowers the temperature.
type logSchedule struct {
	agg  float64
	rate float64
}

func newLogSchedule(rate float64) logSchedule {
	return logSchedule{agg: math.E, rate: rate}
}

// next advances the accumulator and returns the cooled temperature.
func (s *logSchedule) next(temp float64) float64 {
	s.agg += s.rate
	return temp / math.Log(s.agg)
}

// CoolingSteps returns how many iterations Run performs under cfg, i.e. the
// number of schedule steps needed to bring InitialTemperature to ≤ FloorTemperature.
// It replays the schedule without any search. Returns 0 for an invalid cfg.
//
// Complexity: O(steps).
func CoolingSteps(cfg Config) int {
	if cfg.Validate() != nil {
		return 0
	}

	var (
		s     = newLogSchedule(cfg.CoolingRate)
		temp  = cfg.InitialTemperature
		steps int
	)
	for temp > cfg.FloorTemperature {
		temp = s.next(temp)
		steps++
	}

	return steps
}
