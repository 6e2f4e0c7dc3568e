package cmd

import (
	"fmt"
	"io"

	sim "github.com/fastpass-sim/fastpass-sim/sim"
	"github.com/fastpass-sim/fastpass-sim/sim/sweep"
)

// writeRunReport renders the per-class statistics of a single run.
// Undefined means (a class with no post-warm-up departures) render as N/A.
func writeRunReport(w io.Writer, cfg sim.Config, result sim.Result) {
	fmt.Fprintln(w, "=== Simulation Results ===")
	fmt.Fprintf(w, "Arrival rate λ        : %.4g customers/min\n", cfg.ArrivalRate)
	fmt.Fprintf(w, "Service rate μ        : %.4g customers/min\n", cfg.ServiceRate)
	fmt.Fprintf(w, "Priority fraction f   : %.4g\n", cfg.PriorityFraction)
	fmt.Fprintf(w, "Utilization ρ         : %.4g\n", cfg.Utilization())
	if cfg.ArrivalRate < cfg.ServiceRate {
		fmt.Fprintf(w, "M/M/1 baseline        : %.2f min\n", sweep.Baseline(cfg.ArrivalRate, cfg.ServiceRate))
	}

	writeClassReport(w, "Priority", result.Priority)
	writeClassReport(w, "Regular", result.Regular)

	priorityMean, pOK := result.Priority.MeanResidence()
	regularMean, rOK := result.Regular.MeanResidence()
	if pOK && rOK && priorityMean > 0 {
		fmt.Fprintf(w, "Regular/Priority ratio: %.2f\n", regularMean/priorityMean)
	}
}

func writeClassReport(w io.Writer, label string, r sim.ClassResult) {
	fmt.Fprintf(w, "--- %s class ---\n", label)
	fmt.Fprintf(w, "Arrivals              : %d\n", r.Arrivals)
	fmt.Fprintf(w, "Counted departures    : %d\n", r.Samples)
	fmt.Fprintf(w, "Mean residence        : %s min\n", r.FormatMean())
	if r.Samples > 0 {
		fmt.Fprintf(w, "Max residence         : %.2f min\n", r.Max)
		fmt.Fprintf(w, "P50 / P95 / P99       : %.2f / %.2f / %.2f min\n", r.P50, r.P95, r.P99)
	}
}

// writeSweepReport renders the recommendations produced by a sweep.
func writeSweepReport(w io.Writer, recs []sweep.Recommendation) {
	fmt.Fprintln(w, "=== Sweep Recommendations ===")
	for _, rec := range recs {
		fmt.Fprintln(w, rec)
	}
}
