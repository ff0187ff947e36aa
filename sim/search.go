package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// CapacityPoint records the estimated median average wait at one tested
// server count during a capacity sweep.
type CapacityPoint struct {
	NumServers int
	AvgWait    float64
}

// SizingResult is the outcome of FindNumberOfServers. When no tested
// capacity meets the target, Feasible is false and NumServers is 0 (the
// sentinel for infeasibility within the tested range). Sweep always holds
// every tested capacity in ascending order, whether or not the search
// succeeded.
type SizingResult struct {
	NumServers int
	AvgWait    float64
	Feasible   bool
	Sweep      []CapacityPoint
}

// FindNumberOfServers sweeps the server count from 1 to maxServers and
// returns the first capacity whose median average wait is strictly below
// targetWait, together with that wait.
//
// Every capacity level is estimated with the same starting seed, so
// levels differ only in server count, not in workload. The sweep stops at
// the first satisfying capacity under the assumption that average wait is
// non-increasing in server count; each point is itself a noisy median
// estimate, so this is an expectation rather than a guarantee.
func FindNumberOfServers(cfg FacilityConfig, targetWait float64, maxServers, numTrials int, seed int64) (SizingResult, error) {
	result := SizingResult{}
	for numServers := 1; numServers <= maxServers; numServers++ {
		wait, err := FindAvgWaitTime(cfg, numServers, numTrials, seed)
		if err != nil {
			return SizingResult{}, fmt.Errorf("capacity %d: %w", numServers, err)
		}
		result.Sweep = append(result.Sweep, CapacityPoint{NumServers: numServers, AvgWait: wait})

		if wait < targetWait {
			result.NumServers = numServers
			result.AvgWait = wait
			result.Feasible = true
			return result, nil
		}
		logrus.Debugf("%s: %d servers miss target %.4f min (median average wait %.4f min)",
			cfg.Name, numServers, targetWait, wait)
	}
	return result, nil
}
