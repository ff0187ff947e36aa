package sim

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Waits extracts the per-arrival waiting times from a recorded population.
func Waits(arrivals []*Arrival) []float64 {
	waits := make([]float64, len(arrivals))
	for i, a := range arrivals {
		waits[i] = a.Wait()
	}
	return waits
}

// AverageWait returns the mean waiting time over a recorded population.
// The population must be non-empty; trial runners guard this before the
// division (ErrNoArrivalsRecorded).
func AverageWait(arrivals []*Arrival) float64 {
	return stat.Mean(Waits(arrivals), nil)
}

// MedianByRank returns the element at rank len/2 of the ascending-sorted
// samples. For even counts this is the upper-middle element, NOT an
// interpolated median; downstream consumers depend on reproducing that
// exact rank, which is why stat.Quantile (interpolating) is not used
// here. The input slice is not modified. Samples must be non-empty.
func MedianByRank(samples []float64) float64 {
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2]
}

// TrialStats summarizes the per-trial average waits of a trial sequence.
// Median is the rank median (MedianByRank), the same value FindAvgWaitTime
// returns; the remaining fields are descriptive only.
type TrialStats struct {
	NumTrials int
	Mean      float64
	StdDev    float64
	Min       float64
	Max       float64
	Median    float64
}

// SummarizeTrials computes descriptive statistics over per-trial average
// waits. Averages must be non-empty.
func SummarizeTrials(averages []float64) TrialStats {
	sorted := append([]float64(nil), averages...)
	sort.Float64s(sorted)

	stddev := 0.0
	if len(sorted) > 1 {
		stddev = stat.StdDev(sorted, nil)
	}
	return TrialStats{
		NumTrials: len(sorted),
		Mean:      stat.Mean(sorted, nil),
		StdDev:    stddev,
		Min:       sorted[0],
		Max:       sorted[len(sorted)-1],
		Median:    sorted[len(sorted)/2],
	}
}
