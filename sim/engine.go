package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// SimulateDay runs one full operating day for the facility and returns
// the arrivals observed within the operating window, in arrival order,
// each with finalized StartTime and DepartureTime.
//
// The loop always performs exactly cfg.MaxPopulation generation steps.
// Arrivals past closing time are still generated, still occupy servers,
// and still advance the arrival-time chain; they are only excluded from
// the returned population. Stopping generation at closing time instead
// would change the draw sequence and break seed compatibility.
func SimulateDay(cfg FacilityConfig, numServers int, rng *rand.Rand) []*Arrival {
	pool := NewServerPool(numServers)
	closeTime := cfg.CloseTime()
	recorded := make([]*Arrival, 0, cfg.MaxPopulation)

	// Zero-valued chain seed, not the first arrival.
	prev := Arrival{}

	for i := 0; i < cfg.MaxPopulation; i++ {
		next := NextArrival(prev, cfg.Profile, rng)

		if !pool.IsFull() {
			// A server is free the moment the arrival walks in.
			next.StartTime = next.ArrivalTime
		} else {
			freed := pool.RemoveEarliest()
			if next.ArrivalTime > freed {
				// The slot freed up before the arrival showed up.
				next.StartTime = next.ArrivalTime
			} else {
				next.StartTime = freed
			}
		}
		next.DepartureTime = next.StartTime + next.ServiceDuration
		pool.Add(next.DepartureTime)

		if next.ArrivalTime <= closeTime {
			a := next
			recorded = append(recorded, &a)
		}

		prev = next
	}

	logrus.Debugf("%s: simulated %d arrivals with %d servers, %d within the %vh window",
		cfg.Name, cfg.MaxPopulation, numServers, len(recorded), cfg.HoursOpen)
	return recorded
}
