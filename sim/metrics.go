// Tracks per-class residence time statistics over the post-warm-up
// observation window.

package sim

import (
	"github.com/DataDog/sketches-go/ddsketch"
)

// ClassStats aggregates residence times for one customer class.
// Only customers departing after the warm-up boundary are counted.
type ClassStats struct {
	Arrivals       int64   // customers of this class that arrived, warm-up included
	Completed      int64   // post-warm-up departures counted in the statistics
	TotalResidence float64 // sum of counted residence times (minutes)
	MaxResidence   float64 // largest counted residence time (minutes)

	sketch *ddsketch.DDSketch
}

func newClassStats() *ClassStats {
	sketch, err := ddsketch.NewDefaultDDSketch(0.01)
	if err != nil {
		panic(err)
	}
	return &ClassStats{sketch: sketch}
}

func (cs *ClassStats) record(residence float64) {
	cs.Completed++
	cs.TotalResidence += residence
	if residence > cs.MaxResidence {
		cs.MaxResidence = residence
	}
	// Add only fails for negative values; residence times are
	// non-negative, so the error cannot fire.
	cs.sketch.Add(residence)
}

// Mean returns the class mean residence time and whether it is defined.
// A class with zero counted departures has no mean.
func (cs *ClassStats) Mean() (float64, bool) {
	if cs.Completed == 0 {
		return 0, false
	}
	return cs.TotalResidence / float64(cs.Completed), true
}

// Quantile returns the q-quantile of counted residence times, or false
// when the class has no samples.
func (cs *ClassStats) Quantile(q float64) (float64, bool) {
	if cs.Completed == 0 {
		return 0, false
	}
	v, err := cs.sketch.GetValueAtQuantile(q)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Metrics is the statistics collector. It records the residence time of
// every customer departing after the warm-up boundary and aggregates them
// into per-class statistics for final reporting.
type Metrics struct {
	Warmup float64 // minutes excluded from the front of the run

	Priority *ClassStats
	Regular  *ClassStats
}

// NewMetrics creates a collector with the given warm-up boundary.
func NewMetrics(warmup float64) *Metrics {
	return &Metrics{
		Warmup:   warmup,
		Priority: newClassStats(),
		Regular:  newClassStats(),
	}
}

// Class returns the statistics bucket for the given class.
func (m *Metrics) Class(class Class) *ClassStats {
	if class == ClassPriority {
		return m.Priority
	}
	return m.Regular
}

// CountArrival tallies an arrival. Arrival counts are not warm-up gated;
// they describe the offered load, not the measured window.
func (m *Metrics) CountArrival(class Class) {
	m.Class(class).Arrivals++
}

// Record adds a departed customer to the statistics unless it left during
// the warm-up period. Warm-up departures still shaped the queue dynamics;
// they are only excluded from measurement.
func (m *Metrics) Record(c *Customer) {
	if c.DepartureTime <= m.Warmup {
		return
	}
	m.Class(c.Class).record(c.ResidenceTime())
}

// Snapshot produces the per-class result at the end of a run.
func (m *Metrics) Snapshot() Result {
	return Result{
		Priority: snapshotClass(m.Priority),
		Regular:  snapshotClass(m.Regular),
	}
}

func snapshotClass(cs *ClassStats) ClassResult {
	r := ClassResult{
		Arrivals: cs.Arrivals,
		Samples:  cs.Completed,
	}
	if mean, ok := cs.Mean(); ok {
		r.Mean = mean
		r.Max = cs.MaxResidence
		r.P50, _ = cs.Quantile(0.50)
		r.P95, _ = cs.Quantile(0.95)
		r.P99, _ = cs.Quantile(0.99)
	}
	return r
}
