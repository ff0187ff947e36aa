// Package sim provides the core discrete-event simulation engine for
// facility-sim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - arrival.go: the Arrival record and the exponential-gap generator
//   - pool.go: the bounded min-heap of in-service departure times
//   - engine.go: SimulateDay, the per-run assignment loop
//
// On top of the kernel sit the estimation layers:
//   - trials.go: repeated seeded runs producing a median average wait
//   - search.go: the capacity sweep that sizes the server pool against
//     a target wait time
//
// All randomness flows through explicit *rand.Rand handles derived from a
// SimulationKey (rng.go); two runs with the same key and configuration
// produce bit-for-bit identical results.
package sim
