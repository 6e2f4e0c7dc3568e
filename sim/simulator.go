// sim/simulator.go
package sim

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Simulation is the core object that owns simulated time, system state, and
// the event loop for one run. All mutable state lives here; independent
// runs share nothing, so parameter sweeps may execute many Simulation
// instances in parallel without locking.
type Simulation struct {
	Config Config

	Clock   float64 // current simulated time in minutes
	Horizon float64

	// EventQueue holds the pending arrival and departure events
	EventQueue EventQueue
	// Queue is the two-class waiting line
	Queue *PriorityQueue
	// Server is the single service resource
	Server *Server
	// Variates draws interarrival/service durations and class trials
	Variates *VariateSource
	// Metrics collects post-warm-up residence times per class
	Metrics *Metrics

	seq       int64 // insertion counter for event tie-breaking
	nextID    int64 // next customer sequence number
	completed bool
}

// NewSimulation builds a run from a validated configuration and schedules
// the first arrival.
func NewSimulation(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	s := &Simulation{
		Config:     cfg,
		Horizon:    cfg.Horizon,
		EventQueue: make(EventQueue, 0),
		Queue:      &PriorityQueue{},
		Server:     &Server{},
		Variates:   NewVariateSource(rng, cfg.ArrivalRate, cfg.ServiceRate, cfg.PriorityFraction),
		Metrics:    NewMetrics(cfg.Warmup),
	}

	s.Schedule(&ArrivalEvent{time: s.Variates.NextInterarrival()})
	return s, nil
}

// Schedule pushes an event into the pending-event heap.
func (s *Simulation) Schedule(ev Event) {
	heap.Push(&s.EventQueue, pendingEvent{event: ev, seq: s.seq})
	s.seq++
}

// Advance removes and returns the earliest pending event and moves the
// clock to its timestamp. Callers must have checked Peek() against the
// horizon first; the run loop does.
func (s *Simulation) Advance() Event {
	ev := heap.Pop(&s.EventQueue).(pendingEvent).event
	s.Clock = ev.Time()
	return ev
}

// nextCustomer creates and classifies the customer for an arrival at the
// given time.
func (s *Simulation) nextCustomer(now float64) *Customer {
	c := &Customer{
		ID:          s.nextID,
		Class:       s.Variates.NextClass(),
		ArrivalTime: now,
	}
	s.nextID++
	return c
}

// Run drives the event loop: repeatedly advance to the earliest event and
// dispatch it, until the next event would fall past the horizon. That
// event is discarded unprocessed, so a customer still in service at the
// horizon is never counted. Run is idempotent: after completion it only
// returns the snapshot again.
func (s *Simulation) Run() Result {
	if s.completed {
		return s.Metrics.Snapshot()
	}

	for {
		next := s.EventQueue.Peek()
		if next == nil || next.Time() > s.Horizon {
			break
		}
		ev := s.Advance()
		ev.Execute(s)
	}

	s.completed = true
	logrus.Debugf("[%10.3f] simulation ended", s.Clock)
	return s.Metrics.Snapshot()
}

// Completed reports whether the run has finished. No further state
// mutation happens after completion.
func (s *Simulation) Completed() bool {
	return s.completed
}

// Run executes one full simulation for the given configuration and returns
// the per-class residence time statistics.
func Run(cfg Config) (Result, error) {
	s, err := NewSimulation(cfg)
	if err != nil {
		return Result{}, err
	}
	return s.Run(), nil
}
