// Package sweep runs the simulation engine across a grid of arrival rates
// and priority fractions, aggregates replications, and applies a
// recommendation policy to the swept table.
package sweep

import (
	"fmt"
	"hash/fnv"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/fastpass-sim/fastpass-sim/sim"
)

// Grid enumerates the (arrival rate, priority fraction) combinations to
// simulate, plus the run parameters shared by every point.
type Grid struct {
	ArrivalRates []float64
	Fractions    []float64
	ServiceRate  float64
	Horizon      float64
	Warmup       float64
	Seed         int64
	Replications int
}

// Validate checks the grid before any run starts.
func (g Grid) Validate() error {
	if len(g.ArrivalRates) == 0 {
		return fmt.Errorf("arrival_rates must not be empty")
	}
	if len(g.Fractions) == 0 {
		return fmt.Errorf("fractions must not be empty")
	}
	if g.Replications < 1 {
		return fmt.Errorf("replications must be >= 1, got %d", g.Replications)
	}
	for _, f := range g.Fractions {
		if f < 0 || f >= 1 {
			return fmt.Errorf("fraction must be in [0, 1), got %g", f)
		}
	}
	// Per-run parameters are validated again by sim.Config, but failing
	// here avoids launching a partial sweep.
	probe := sim.Config{
		ArrivalRate:      g.ArrivalRates[0],
		ServiceRate:      g.ServiceRate,
		PriorityFraction: g.Fractions[0],
		Horizon:          g.Horizon,
		Warmup:           g.Warmup,
		Seed:             g.Seed,
	}
	if err := probe.Validate(); err != nil {
		return err
	}
	return nil
}

// Linspace returns n evenly spaced values across [start, stop], matching
// the fraction grids the sweep sweeps by default.
func Linspace(start, stop float64, n int) []float64 {
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// ClassSummary aggregates one class's mean residence time across the
// replications of a grid point. Replications where the class had no
// post-warm-up departures are skipped; Defined reports whether any
// replication produced a mean.
type ClassSummary struct {
	Samples int     // replications with a defined mean
	Mean    float64 // mean of per-replication means
	StdDev  float64 // sample standard deviation across replications (0 for a single one)
}

// Defined reports whether the summary carries a usable mean.
func (cs ClassSummary) Defined() bool {
	return cs.Samples > 0
}

func summarize(means []float64) ClassSummary {
	if len(means) == 0 {
		return ClassSummary{}
	}
	// Replication means arrive in worker-completion order; sorting makes
	// the aggregation independent of scheduling.
	sort.Float64s(means)
	s := ClassSummary{
		Samples: len(means),
		Mean:    stat.Mean(means, nil),
	}
	if len(means) > 1 {
		s.StdDev = stat.StdDev(means, nil)
	}
	return s
}

// Point is the swept result for one (arrival rate, fraction) combination.
type Point struct {
	ArrivalRate float64
	Fraction    float64
	Priority    ClassSummary
	Regular     ClassSummary
}

// Table is the full swept result set, ordered by arrival rate then
// fraction. It is the tabular interface downstream reporting and plotting
// layers consume.
type Table struct {
	Grid   Grid
	Points []Point
}

// PointsForRate returns the points for one arrival rate in fraction order.
func (t *Table) PointsForRate(rate float64) []Point {
	var out []Point
	for _, p := range t.Points {
		if p.ArrivalRate == rate {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fraction < out[j].Fraction })
	return out
}

// Runner executes a sweep grid on a bounded pool of worker goroutines.
// Every replication derives its own seed and owns independent simulation
// state, so runs never contend on anything but the results slice.
type Runner struct {
	Workers int // worker goroutines; values < 1 mean 1
}

type job struct {
	index int
	cfg   sim.Config
}

// Run executes every (rate, fraction, replication) combination and
// aggregates the replications into one Point per grid cell.
func (r *Runner) Run(grid Grid) (*Table, error) {
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sweep grid: %w", err)
	}

	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	type cell struct {
		rate, fraction float64
	}
	numCells := len(grid.ArrivalRates) * len(grid.Fractions)
	cells := make([]cell, 0, numCells)
	jobs := make([]job, 0, numCells*grid.Replications)
	for _, rate := range grid.ArrivalRates {
		for _, fraction := range grid.Fractions {
			cellIdx := len(cells)
			cells = append(cells, cell{rate: rate, fraction: fraction})
			for rep := 0; rep < grid.Replications; rep++ {
				jobs = append(jobs, job{
					index: cellIdx,
					cfg: sim.Config{
						ArrivalRate:      rate,
						ServiceRate:      grid.ServiceRate,
						PriorityFraction: fraction,
						Horizon:          grid.Horizon,
						Warmup:           grid.Warmup,
						Seed:             runSeed(grid.Seed, rate, fraction, rep),
					},
				})
			}
		}
	}

	var (
		mu            sync.Mutex
		priorityMeans = make([][]float64, len(cells))
		regularMeans  = make([][]float64, len(cells))
		firstErr      error
	)

	jobCh := make(chan job)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				result, err := sim.Run(j.cfg)
				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				if mean, ok := result.Priority.MeanResidence(); ok {
					priorityMeans[j.index] = append(priorityMeans[j.index], mean)
				}
				if mean, ok := result.Regular.MeanResidence(); ok {
					regularMeans[j.index] = append(regularMeans[j.index], mean)
				}
				mu.Unlock()
			}
		}()
	}

	for _, j := range jobs {
		logrus.Debugf("sweep: rate=%g fraction=%g seed=%d", j.cfg.ArrivalRate, j.cfg.PriorityFraction, j.cfg.Seed)
		jobCh <- j
	}
	close(jobCh)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	table := &Table{Grid: grid, Points: make([]Point, len(cells))}
	for i, c := range cells {
		table.Points[i] = Point{
			ArrivalRate: c.rate,
			Fraction:    c.fraction,
			Priority:    summarize(priorityMeans[i]),
			Regular:     summarize(regularMeans[i]),
		}
	}
	return table, nil
}

// runSeed derives a per-run seed from the base seed and the run's grid
// coordinates, so replications are independent yet reproducible.
func runSeed(base int64, rate, fraction float64, rep int) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%g|%g|%d", rate, fraction, rep)
	return base ^ int64(h.Sum64())
}
