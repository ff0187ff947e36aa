package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrNoArrivalsRecorded is returned when a trial observes no arrivals
// within the operating window, leaving its average wait undefined.
// It indicates a configuration problem: the operating window, generation
// budget, and arrival rate should be chosen so at least one arrival lands
// before closing.
var ErrNoArrivalsRecorded = errors.New("no arrivals recorded within the operating window")

// RunTrials executes numTrials independent simulated days and returns the
// per-trial average waits in trial order. Trial i runs on seed
// initialSeed+i; the mapping is fixed so results are reproducible.
func RunTrials(cfg FacilityConfig, numServers, numTrials int, initialSeed int64) ([]float64, error) {
	if numTrials < 1 {
		return nil, fmt.Errorf("numTrials must be >= 1, got %d", numTrials)
	}

	key := NewSimulationKey(initialSeed)
	averages := make([]float64, 0, numTrials)
	for trial := 0; trial < numTrials; trial++ {
		trialKey := key.ForTrial(trial)
		recorded := SimulateDay(cfg, numServers, trialKey.Source())
		if len(recorded) == 0 {
			return nil, fmt.Errorf("trial %d (seed %d): %w", trial, int64(trialKey), ErrNoArrivalsRecorded)
		}
		averages = append(averages, AverageWait(recorded))
	}
	return averages, nil
}

// FindAvgWaitTime estimates the average waiting time for a fixed server
// count: it runs numTrials simulated days on seeds initialSeed,
// initialSeed+1, ... and returns the rank median of the per-trial
// averages as a noise-robust point estimate.
func FindAvgWaitTime(cfg FacilityConfig, numServers, numTrials int, initialSeed int64) (float64, error) {
	averages, err := RunTrials(cfg, numServers, numTrials, initialSeed)
	if err != nil {
		return 0, err
	}
	median := MedianByRank(averages)
	logrus.Debugf("%s: %d servers, %d trials: median average wait %.4f min",
		cfg.Name, numServers, numTrials, median)
	return median, nil
}
