package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fastpass-sim/fastpass-sim/sim/sweep"
)

var (
	// CLI flags for the sweep command
	sweepConfigPath   string
	sweepRates        []float64
	sweepServiceRate  float64
	sweepFracStart    float64
	sweepFracStop     float64
	sweepFracSteps    int
	sweepHorizon      float64
	sweepWarmup       float64
	sweepSeed         int64
	sweepReplications int
	sweepThreshold    float64
	sweepWorkers      int
	sweepOutput       string
)

// sweepCmd runs the engine across a grid of arrival rates and priority
// fractions and reports a recommended fraction per arrival rate.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep priority fractions across arrival rates",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		spec := specFromFlags()
		if sweepConfigPath != "" {
			loaded, err := sweep.LoadSpec(sweepConfigPath)
			if err != nil {
				logrus.Fatalf("unable to read sweep config: %v", err)
			}
			spec = loaded
		}

		grid := spec.Grid()
		logrus.Infof("Sweeping %d arrival rates x %d fractions x %d replications",
			len(grid.ArrivalRates), len(grid.Fractions), grid.Replications)

		runner := &sweep.Runner{Workers: sweepWorkers}
		table, err := runner.Run(grid)
		if err != nil {
			logrus.Fatalf("sweep failed: %v", err)
		}

		if sweepOutput != "" {
			if err := table.WriteCSVFile(sweepOutput); err != nil {
				logrus.Fatalf("unable to write sweep table: %v", err)
			}
			logrus.Infof("Sweep table written to %s", sweepOutput)
		}

		writeSweepReport(os.Stdout, spec.Policy().Recommend(table))
	},
}

// specFromFlags assembles a sweep spec from the command line; a --config
// file replaces it entirely.
func specFromFlags() *sweep.Spec {
	return &sweep.Spec{
		ArrivalRates:      sweepRates,
		ServiceRate:       sweepServiceRate,
		FractionStart:     sweepFracStart,
		FractionStop:      sweepFracStop,
		FractionSteps:     sweepFracSteps,
		Horizon:           sweepHorizon,
		Warmup:            sweepWarmup,
		Seed:              sweepSeed,
		Replications:      sweepReplications,
		ThresholdMultiple: sweepThreshold,
	}
}

func init() {
	sweepCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	sweepCmd.Flags().StringVar(&sweepConfigPath, "config", "", "Path to a YAML sweep spec (overrides the grid flags)")
	sweepCmd.Flags().Float64SliceVar(&sweepRates, "arrival-rates", []float64{0.5, 0.95}, "Comma-separated arrival rates λ to sweep")
	sweepCmd.Flags().Float64Var(&sweepServiceRate, "service-rate", 1.0, "Service rate μ in customers per minute")
	sweepCmd.Flags().Float64Var(&sweepFracStart, "fraction-start", 0.0, "First priority fraction in the grid")
	sweepCmd.Flags().Float64Var(&sweepFracStop, "fraction-stop", 0.95, "Last priority fraction in the grid")
	sweepCmd.Flags().IntVar(&sweepFracSteps, "fraction-steps", 20, "Number of evenly spaced fractions")
	sweepCmd.Flags().Float64Var(&sweepHorizon, "horizon", 50000, "Total simulated minutes per run")
	sweepCmd.Flags().Float64Var(&sweepWarmup, "warmup", 5000, "Warm-up minutes excluded from statistics")
	sweepCmd.Flags().Int64Var(&sweepSeed, "seed", 42, "Base seed; per-run seeds are derived from it")
	sweepCmd.Flags().IntVar(&sweepReplications, "replications", 1, "Replications per grid point")
	sweepCmd.Flags().Float64Var(&sweepThreshold, "threshold-multiple", sweep.DefaultThresholdMultiple, "Acceptability bound as a multiple of the M/M/1 baseline")
	sweepCmd.Flags().IntVar(&sweepWorkers, "workers", 4, "Concurrent simulation runs")
	sweepCmd.Flags().StringVar(&sweepOutput, "output", "", "Write the swept table to this CSV file")
}
