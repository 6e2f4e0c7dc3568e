// Package sim provides the discrete-event simulation engine for a two-class
// priority queueing system: a single exponential server shared by Priority
// (FastPass) and Regular customers.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - customer.go: Customer lifecycle (arrival → service → departure)
//   - event.go: The two event types that drive the simulation (Arrival, Departure)
//   - simulator.go: The event loop and run orchestration
//
// # Architecture
//
// A Simulation owns all mutable state for one run: the event heap, the
// two-class waiting line, the server, the partitioned RNG, and the
// statistics collector. Runs share nothing, so a parameter sweep may
// execute many Simulation instances in parallel without locking; the
// sim/sweep sub-package does exactly that.
package sim
