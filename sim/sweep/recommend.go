package sweep

import (
	"fmt"
	"math"
)

// DefaultThresholdMultiple is the default acceptability rule: the regular
// class mean must stay under 2.5 times the plain M/M/1 residence time.
const DefaultThresholdMultiple = 2.5

// Policy selects a recommended priority fraction per arrival rate. The
// acceptability rule is a configurable multiple of the M/M/1 baseline
// rather than a hard-coded constant.
type Policy struct {
	// ThresholdMultiple bounds the regular class mean at
	// ThresholdMultiple * 1/(μ-λ).
	ThresholdMultiple float64
}

// Recommendation is the per-arrival-rate outcome of applying a Policy to a
// swept table.
type Recommendation struct {
	ArrivalRate  float64
	Baseline     float64 // M/M/1 mean residence time 1/(μ-λ)
	Threshold    float64
	Fraction     float64
	PriorityMean float64
	RegularMean  float64
	Found        bool // false when no fraction satisfied the rule
}

func (r Recommendation) String() string {
	if !r.Found {
		if math.IsInf(r.Threshold, 1) {
			return fmt.Sprintf("λ=%.2f: no acceptable fraction (overloaded, λ >= μ)", r.ArrivalRate)
		}
		return fmt.Sprintf("λ=%.2f: no acceptable fraction (regular mean over %.2f min everywhere)", r.ArrivalRate, r.Threshold)
	}
	return fmt.Sprintf("λ=%.2f: recommend f=%.2f (priority %.2f min, regular %.2f min, ratio %.2f)",
		r.ArrivalRate, r.Fraction, r.PriorityMean, r.RegularMean, r.RegularMean/r.PriorityMean)
}

// Baseline returns the closed-form M/M/1 mean residence time 1/(μ-λ), or
// +Inf for an overloaded system (λ >= μ), which no fraction can satisfy.
func Baseline(arrivalRate, serviceRate float64) float64 {
	if arrivalRate >= serviceRate {
		return math.Inf(1)
	}
	return 1 / (serviceRate - arrivalRate)
}

// Recommend applies the policy to a swept table: for each arrival rate it
// picks the largest fraction whose priority and regular means are both
// defined and whose regular mean stays under the threshold.
func (p Policy) Recommend(t *Table) []Recommendation {
	multiple := p.ThresholdMultiple
	if multiple <= 0 {
		multiple = DefaultThresholdMultiple
	}

	out := make([]Recommendation, 0, len(t.Grid.ArrivalRates))
	for _, rate := range t.Grid.ArrivalRates {
		baseline := Baseline(rate, t.Grid.ServiceRate)
		rec := Recommendation{
			ArrivalRate: rate,
			Baseline:    baseline,
			Threshold:   multiple * baseline,
		}
		// An overloaded rate has no finite baseline to bound the regular
		// class against; no fraction can be recommended.
		if math.IsInf(baseline, 1) {
			out = append(out, rec)
			continue
		}
		for _, point := range t.PointsForRate(rate) {
			if !point.Priority.Defined() || !point.Regular.Defined() {
				continue
			}
			if point.Regular.Mean >= rec.Threshold {
				continue
			}
			if !rec.Found || point.Fraction > rec.Fraction {
				rec.Found = true
				rec.Fraction = point.Fraction
				rec.PriorityMean = point.Priority.Mean
				rec.RegularMean = point.Regular.Mean
			}
		}
		out = append(out, rec)
	}
	return out
}
