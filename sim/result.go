package sim

import "fmt"

// ClassResult reports the aggregated residence time statistics for one
// class. Mean, Max and the quantiles are meaningful only when Samples > 0;
// MeanResidence communicates that explicitly.
type ClassResult struct {
	Arrivals int64 // arrivals of this class over the whole run
	Samples  int64 // post-warm-up departures the statistics are built from
	Mean     float64
	Max      float64
	P50      float64
	P95      float64
	P99      float64
}

// MeanResidence returns the class mean residence time and whether it is
// defined. A class with zero qualifying departures (e.g. the priority class
// at fraction 0) has no mean; callers must handle the undefined case
// explicitly rather than read a zero.
func (r ClassResult) MeanResidence() (float64, bool) {
	if r.Samples == 0 {
		return 0, false
	}
	return r.Mean, true
}

// FormatMean renders the mean for human-readable reports, "N/A" when the
// class had no qualifying departures.
func (r ClassResult) FormatMean() string {
	if mean, ok := r.MeanResidence(); ok {
		return fmt.Sprintf("%.2f", mean)
	}
	return "N/A"
}

// Result is the output of one simulation run: the per-class residence time
// statistics over the post-warm-up window.
type Result struct {
	Priority ClassResult
	Regular  ClassResult
}
