package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/fastpass-sim/fastpass-sim/sim"
)

var (
	// CLI flags shared by the run command
	logLevel    string  // Log verbosity level
	arrivalRate float64 // Total arrival rate λ (customers per minute)
	serviceRate float64 // Service rate μ (customers per minute)
	fraction    float64 // Fraction of arrivals granted priority status
	horizon     float64 // Total simulated minutes
	warmup      float64 // Minutes excluded from statistics
	seed        int64   // Seed for the run's RNG streams
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "fastpass-sim",
	Short: "Discrete-event simulator for two-class priority queueing",
}

// runCmd executes a single simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single simulation and report per-class residence times",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg := sim.Config{
			ArrivalRate:      arrivalRate,
			ServiceRate:      serviceRate,
			PriorityFraction: fraction,
			Horizon:          horizon,
			Warmup:           warmup,
			Seed:             seed,
		}

		logrus.Infof("Starting simulation with λ=%g, μ=%g, f=%g, horizon=%g min, warmup=%g min, seed=%d",
			cfg.ArrivalRate, cfg.ServiceRate, cfg.PriorityFraction, cfg.Horizon, cfg.Warmup, cfg.Seed)

		result, err := sim.Run(cfg)
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}

		writeRunReport(os.Stdout, cfg, result)
		logrus.Info("Simulation complete.")
	},
}

// setupLogging applies the --log flag to the global logrus logger.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().Float64Var(&arrivalRate, "arrival-rate", 0.5, "Total arrival rate λ in customers per minute")
	runCmd.Flags().Float64Var(&serviceRate, "service-rate", 1.0, "Service rate μ in customers per minute")
	runCmd.Flags().Float64Var(&fraction, "fraction", 0.0, "Fraction of arrivals granted priority status, in [0, 1)")
	runCmd.Flags().Float64Var(&horizon, "horizon", 50000, "Total simulated minutes")
	runCmd.Flags().Float64Var(&warmup, "warmup", 5000, "Warm-up minutes excluded from statistics")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the run's random number streams")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
}
