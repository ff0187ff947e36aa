package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	sim "github.com/facility-sim/facility-sim/sim"
)

// writeDayCSV writes one simulated day as CSV: header row, then one row
// per recorded arrival in arrival order.
func writeDayCSV(w io.Writer, arrivals []*sim.Arrival) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"arrival_time", "start_time", "departure_time", "wait"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for i, a := range arrivals {
		row := []string{
			strconv.FormatFloat(a.ArrivalTime, 'f', -1, 64),
			strconv.FormatFloat(a.StartTime, 'f', -1, 64),
			strconv.FormatFloat(a.DepartureTime, 'f', -1, 64),
			strconv.FormatFloat(a.Wait(), 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// exportDay simulates one day and writes the recorded population to path.
func exportDay(path string, cfg sim.FacilityConfig, numServers int, seed int64) error {
	arrivals := sim.SimulateDay(cfg, numServers, sim.NewSimulationKey(seed).Source())

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := writeDayCSV(file, arrivals); err != nil {
		file.Close() //nolint:errcheck // the write error is the one worth reporting
		return fmt.Errorf("exporting day to %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing export file %s: %w", path, err)
	}
	return nil
}
