package sweep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// tableForRate builds a synthetic single-rate table for policy tests.
func tableForRate(rate float64, points []Point) *Table {
	return &Table{
		Grid: Grid{
			ArrivalRates: []float64{rate},
			ServiceRate:  1.0,
		},
		Points: points,
	}
}

func defined(mean float64) ClassSummary {
	return ClassSummary{Samples: 1, Mean: mean}
}

func TestBaseline_MM1ClosedForm(t *testing.T) {
	assert.InDelta(t, 2.0, Baseline(0.5, 1.0), 1e-12)
	assert.InDelta(t, 20.0, Baseline(0.95, 1.0), 1e-9)
}

func TestBaseline_OverloadedIsInfinite(t *testing.T) {
	assert.True(t, math.IsInf(Baseline(1.0, 1.0), 1))
	assert.True(t, math.IsInf(Baseline(1.5, 1.0), 1))
}

func TestRecommend_OverloadedRateNeverRecommends(t *testing.T) {
	// GIVEN an overloaded rate (λ > μ) whose regular means are finite only
	// because the horizon truncated the unbounded queue growth
	table := tableForRate(1.5, []Point{
		{ArrivalRate: 1.5, Fraction: 0.2, Priority: defined(5.0), Regular: defined(500.0)},
		{ArrivalRate: 1.5, Fraction: 0.8, Priority: defined(9.0), Regular: defined(900.0)},
	})

	// WHEN the default policy runs
	recs := Policy{}.Recommend(table)

	// THEN no fraction qualifies: an infinite baseline gives no bound to
	// compare the regular class against
	assert.Len(t, recs, 1)
	assert.False(t, recs[0].Found, "overloaded rate must not recommend a fraction")
	assert.Contains(t, recs[0].String(), "overloaded")
}

func TestRecommend_PicksLargestQualifyingFraction(t *testing.T) {
	// GIVEN a swept rate where the regular mean crosses the threshold
	// (baseline 2.0, multiple 2.5 → threshold 5.0) between f=0.6 and f=0.8
	table := tableForRate(0.5, []Point{
		{ArrivalRate: 0.5, Fraction: 0.2, Priority: defined(1.8), Regular: defined(2.2)},
		{ArrivalRate: 0.5, Fraction: 0.4, Priority: defined(1.9), Regular: defined(2.9)},
		{ArrivalRate: 0.5, Fraction: 0.6, Priority: defined(2.0), Regular: defined(4.1)},
		{ArrivalRate: 0.5, Fraction: 0.8, Priority: defined(2.1), Regular: defined(7.3)},
	})

	// WHEN the default policy runs
	recs := Policy{}.Recommend(table)

	// THEN it picks the largest fraction still under threshold
	assert.Len(t, recs, 1)
	rec := recs[0]
	assert.True(t, rec.Found)
	assert.Equal(t, 0.6, rec.Fraction)
	assert.Equal(t, 4.1, rec.RegularMean)
	assert.Equal(t, 2.0, rec.PriorityMean)
	assert.InDelta(t, 5.0, rec.Threshold, 1e-12)
}

func TestRecommend_SkipsUndefinedMeans(t *testing.T) {
	// GIVEN a point whose priority class never produced a sample (f=0)
	table := tableForRate(0.5, []Point{
		{ArrivalRate: 0.5, Fraction: 0.0, Priority: ClassSummary{}, Regular: defined(2.0)},
		{ArrivalRate: 0.5, Fraction: 0.3, Priority: defined(1.9), Regular: defined(2.4)},
	})

	recs := Policy{}.Recommend(table)

	// THEN the undefined point is excluded from recommendation
	assert.True(t, recs[0].Found)
	assert.Equal(t, 0.3, recs[0].Fraction)
}

func TestRecommend_NoQualifyingFraction(t *testing.T) {
	// GIVEN regular means above threshold everywhere
	table := tableForRate(0.5, []Point{
		{ArrivalRate: 0.5, Fraction: 0.2, Priority: defined(1.8), Regular: defined(9.0)},
		{ArrivalRate: 0.5, Fraction: 0.4, Priority: defined(1.9), Regular: defined(12.0)},
	})

	recs := Policy{}.Recommend(table)

	assert.False(t, recs[0].Found)
	assert.Contains(t, recs[0].String(), "no acceptable fraction")
}

func TestRecommend_CustomThresholdMultiple(t *testing.T) {
	// GIVEN a tighter policy (1.5x baseline → threshold 3.0)
	table := tableForRate(0.5, []Point{
		{ArrivalRate: 0.5, Fraction: 0.2, Priority: defined(1.8), Regular: defined(2.2)},
		{ArrivalRate: 0.5, Fraction: 0.6, Priority: defined(2.0), Regular: defined(4.1)},
	})

	recs := Policy{ThresholdMultiple: 1.5}.Recommend(table)

	assert.True(t, recs[0].Found)
	assert.Equal(t, 0.2, recs[0].Fraction)
}

func TestRecommendation_String_IncludesRatio(t *testing.T) {
	rec := Recommendation{
		ArrivalRate:  0.95,
		Fraction:     0.65,
		PriorityMean: 3.4,
		RegularMean:  49.1,
		Found:        true,
	}
	s := rec.String()
	assert.Contains(t, s, "f=0.65")
	assert.Contains(t, s, "ratio 14.44")
}
