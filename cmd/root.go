package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/facility-sim/facility-sim/sim"
)

var (
	// Shared CLI flags
	configPath string // Path to the facility YAML file
	logLevel   string // Log verbosity level
	seed       int64  // Initial seed for the deterministic random source
	numTrials  int    // Number of simulated days per estimate

	// `wait` and `export` flags
	numServers int // Fixed server count to simulate

	// `size` flags
	targetWait float64 // Target median average wait (minutes)
	maxServers int     // Largest server count the facility can support

	// `export` flags
	exportPath string // Output CSV path
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "facility-sim",
	Short: "Discrete-event simulator for sizing multi-server queueing facilities",
}

// loadFacility sets up logging and loads the facility file shared by all
// subcommands. Invalid input is fatal at this boundary so the sim package
// can assume its documented preconditions.
func loadFacility() sim.FacilityConfig {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)

	spec, err := LoadFacilitySpec(configPath)
	if err != nil {
		logrus.Fatalf("Unable to load facility config: %v", err)
	}
	return spec.Config()
}

// waitCmd estimates the median average wait for a fixed server count
var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Estimate the median average wait time for a fixed server count",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadFacility()
		startTime := time.Now()

		averages, err := sim.RunTrials(cfg, numServers, numTrials, seed)
		if err != nil {
			logrus.Fatalf("Trial run failed: %v", err)
		}
		stats := sim.SummarizeTrials(averages)

		logrus.Infof("%s: %d servers, %d trials in %v", cfg.Name, numServers, numTrials, time.Since(startTime))
		logrus.Infof("Trial averages: mean=%.4f stddev=%.4f min=%.4f max=%.4f", stats.Mean, stats.StdDev, stats.Min, stats.Max)
		cmd.Printf("median average wait: %.4f minutes\n", stats.Median)
	},
}

// sizeCmd searches for the smallest server count meeting a wait target
var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Find the minimum server count that meets a target wait time",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadFacility()
		startTime := time.Now()

		result, err := sim.FindNumberOfServers(cfg, targetWait, maxServers, numTrials, seed)
		if err != nil {
			logrus.Fatalf("Capacity search failed: %v", err)
		}

		logrus.Infof("%s: swept %d capacity levels in %v", cfg.Name, len(result.Sweep), time.Since(startTime))
		for _, point := range result.Sweep {
			logrus.Infof("  %3d servers: median average wait %.4f min", point.NumServers, point.AvgWait)
		}
		if !result.Feasible {
			cmd.Printf("target wait %.4f minutes is infeasible within %d servers\n", targetWait, maxServers)
			return
		}
		cmd.Printf("%d servers meet the target: median average wait %.4f minutes (target %.4f)\n",
			result.NumServers, result.AvgWait, targetWait)
	},
}

// exportCmd writes one simulated day to a CSV file for inspection
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Simulate one day and export the recorded arrivals as CSV",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadFacility()

		if err := exportDay(exportPath, cfg, numServers, seed); err != nil {
			logrus.Fatalf("Export failed: %v", err)
		}
		cmd.Printf("wrote %s\n", exportPath)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "facility.yaml", "Path to the facility YAML file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Initial seed for the deterministic random source")
	rootCmd.PersistentFlags().IntVar(&numTrials, "trials", 20, "Number of simulated days per estimate")

	waitCmd.Flags().IntVar(&numServers, "servers", 1, "Number of servers to simulate")

	sizeCmd.Flags().Float64Var(&targetWait, "target-wait", 10.0, "Target median average wait in minutes")
	sizeCmd.Flags().IntVar(&maxServers, "max-servers", 50, "Largest server count the facility can support")

	exportCmd.Flags().IntVar(&numServers, "servers", 1, "Number of servers to simulate")
	exportCmd.Flags().StringVarP(&exportPath, "out", "o", "day.csv", "Output CSV path")

	rootCmd.AddCommand(waitCmd)
	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(exportCmd)
}
