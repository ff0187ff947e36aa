package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAvgWaitTime_SingleTrialEqualsSingleRun(t *testing.T) {
	cfg := NewFacilityConfig("single", 4, 200, 1.0, 0.5)

	got, err := FindAvgWaitTime(cfg, 2, 1, 42)
	require.NoError(t, err)

	recorded := SimulateDay(cfg, 2, NewSimulationKey(42).Source())
	require.NotEmpty(t, recorded)
	assert.Equal(t, AverageWait(recorded), got)
}

func TestRunTrials_TrialSeedMapping(t *testing.T) {
	// Trial i of a sequence starting at seed s runs on seed s+i.
	cfg := NewFacilityConfig("mapping", 4, 200, 1.0, 0.5)

	averages, err := RunTrials(cfg, 2, 3, 10)
	require.NoError(t, err)
	require.Len(t, averages, 3)

	for i := 0; i < 3; i++ {
		solo, err := RunTrials(cfg, 2, 1, 10+int64(i))
		require.NoError(t, err)
		assert.Equal(t, solo[0], averages[i], "trial %d", i)
	}
}

func TestFindAvgWaitTime_Deterministic(t *testing.T) {
	cfg := scenarioConfig()
	a, err := FindAvgWaitTime(cfg, 2, 5, 0)
	require.NoError(t, err)
	b, err := FindAvgWaitTime(cfg, 2, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFindAvgWaitTime_UnboundedCapacity_ZeroWait(t *testing.T) {
	wait, err := FindAvgWaitTime(scenarioConfig(), 1000, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, wait)
}

func TestFindAvgWaitTime_SingleServer_WaitsExceedUnbounded(t *testing.T) {
	cfg := scenarioConfig()

	unbounded, err := FindAvgWaitTime(cfg, 1000, 5, 0)
	require.NoError(t, err)
	single, err := FindAvgWaitTime(cfg, 1, 5, 0)
	require.NoError(t, err)

	assert.Greater(t, single, unbounded)
}

func TestRunTrials_ZeroArrivalsRecorded(t *testing.T) {
	// A zero-hour window records nothing: the first arrival lands after
	// minute zero with probability one.
	cfg := NewFacilityConfig("closed", 0, 10, 1.0, 2.0)

	_, err := RunTrials(cfg, 1, 1, 0)
	assert.ErrorIs(t, err, ErrNoArrivalsRecorded)

	_, err = FindAvgWaitTime(cfg, 1, 1, 0)
	assert.ErrorIs(t, err, ErrNoArrivalsRecorded)
}

func TestRunTrials_RejectsNonPositiveTrialCount(t *testing.T) {
	_, err := RunTrials(scenarioConfig(), 1, 0, 0)
	assert.Error(t, err)
}
