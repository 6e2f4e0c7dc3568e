package sim

import "github.com/sirupsen/logrus"

// EventKind discriminates pending events. The numeric order is also the
// tie-break order for events sharing a timestamp: a Departure frees the
// server before a simultaneous Arrival is considered.
type EventKind int

const (
	KindDeparture EventKind = iota
	KindArrival
)

// Event defines the interface for all simulation events.
// Each event has a simulated timestamp (in minutes) and an Execute method
// that advances simulation state when invoked.
type Event interface {
	Time() float64
	Kind() EventKind
	Execute(*Simulation)
}

// ArrivalEvent represents the arrival of the next customer into the system.
// The customer is created and classified at execution time. Arrivals are
// scheduled one at a time, so there is always exactly one pending
// ArrivalEvent while the run is active.
type ArrivalEvent struct {
	time float64
}

// Time returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Time() float64 { return e.time }

// Kind returns KindArrival.
func (e *ArrivalEvent) Kind() EventKind { return KindArrival }

// Execute creates and classifies the arriving customer, enqueues it, and
// schedules the next arrival.
func (e *ArrivalEvent) Execute(sim *Simulation) {
	c := sim.nextCustomer(e.time)
	logrus.Debugf("[%10.3f] << arrival: %s", e.time, c)

	sim.Queue.Enqueue(c)
	sim.Metrics.CountArrival(c.Class)

	// Arrivals are self-perpetuating: each one schedules its successor.
	sim.Schedule(&ArrivalEvent{time: e.time + sim.Variates.NextInterarrival()})

	// An idle server starts on the new customer at the same instant.
	sim.Server.TryServe(sim, e.time)
}

// DepartureEvent represents a service completion for the customer currently
// holding the server. At most one is pending at any time (single server).
type DepartureEvent struct {
	time     float64
	Customer *Customer
}

// Time returns the scheduled time of the DepartureEvent.
func (e *DepartureEvent) Time() float64 { return e.time }

// Kind returns KindDeparture.
func (e *DepartureEvent) Kind() EventKind { return KindDeparture }

// Execute records the departure, releases the server, and immediately pulls
// the next waiting customer if any (the server is work-conserving).
func (e *DepartureEvent) Execute(sim *Simulation) {
	logrus.Debugf("[%10.3f] >> departure: %s", e.time, e.Customer)

	e.Customer.DepartureTime = e.time
	sim.Server.Release(e.Customer)
	sim.Metrics.Record(e.Customer)

	sim.Server.TryServe(sim, e.time)
}
