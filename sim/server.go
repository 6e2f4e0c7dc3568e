// Implements the single server. The server is work-conserving: whenever it
// goes idle while a customer is waiting, service on the priority-eligible
// head begins at the same simulated instant.

package sim

// Server models the single service resource. It serves at most one
// customer at a time; a new dequeue happens only on the busy→idle
// transition (departure) or when an arrival finds the server idle.
type Server struct {
	busy    bool
	current *Customer
}

// Busy reports whether a customer is currently in service.
func (s *Server) Busy() bool {
	return s.busy
}

// Current returns the customer in service, or nil when the server is idle.
func (s *Server) Current() *Customer {
	return s.current
}

// TryServe begins service on the next waiting customer if the server is
// idle and the queue is non-empty. It stamps the service start, draws the
// service duration, and schedules the corresponding departure.
func (s *Server) TryServe(sim *Simulation, now float64) {
	if s.busy {
		return
	}
	c := sim.Queue.DequeueNext()
	if c == nil {
		return
	}

	c.ServiceStartTime = now
	s.busy = true
	s.current = c

	sim.Schedule(&DepartureEvent{
		time:     now + sim.Variates.NextServiceTime(),
		Customer: c,
	})
}

// Release marks the server idle after the given customer departs.
func (s *Server) Release(c *Customer) {
	if s.current != c {
		panic("Release: departing customer is not the one in service")
	}
	s.busy = false
	s.current = nil
}
