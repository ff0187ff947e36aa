package sim

import "math/rand"

// Arrival represents one entity entering the facility. ArrivalTime and
// ServiceDuration are drawn at generation time; StartTime and
// DepartureTime are assigned once by SimulateDay and never mutated after
// the arrival is recorded.
type Arrival struct {
	ArrivalTime     float64 // minutes from open, non-decreasing across the generated sequence
	ServiceDuration float64 // minutes, >= 0
	StartTime       float64 // >= ArrivalTime
	DepartureTime   float64 // StartTime + ServiceDuration
}

// Wait returns how long the arrival spent waiting for a server.
func (a Arrival) Wait() float64 {
	return a.StartTime - a.ArrivalTime
}

// NextArrival generates the successor of prev in the arrival process.
//
// The inter-arrival gap and the service duration are independent
// exponential draws: gap with mean 1/ArrivalRate, duration with mean
// 1/ServiceRate. The gap is drawn first; the two-draw order is part of
// the reproducibility contract. Rates must be positive (caller
// precondition, not validated here).
//
// The first call of a run passes a zero-valued Arrival as prev; it seeds
// the chain and is never itself part of the population.
func NextArrival(prev Arrival, profile ServiceProfile, rng *rand.Rand) Arrival {
	gap := rng.ExpFloat64() / profile.ArrivalRate
	duration := rng.ExpFloat64() / profile.ServiceRate
	return Arrival{
		ArrivalTime:     prev.ArrivalTime + gap,
		ServiceDuration: duration,
	}
}
