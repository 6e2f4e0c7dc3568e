// Defines the Customer struct that models an individual customer in the
// simulation. Tracks class assignment and the arrival/service/departure
// timestamps used to compute residence time.

package sim

import (
	"fmt"
)

// Class identifies which of the two customer classes a customer belongs to.
type Class string

const (
	// ClassPriority customers (FastPass holders) are served before any
	// waiting Regular customer, non-preemptively.
	ClassPriority Class = "priority"
	// ClassRegular customers are served only when no Priority customer is waiting.
	ClassRegular Class = "regular"
)

// Customer models a single customer's passage through the system.
// Timestamps are simulated minutes. The class is fixed at arrival and the
// timestamps are each set exactly once, so for every departed customer
// ArrivalTime <= ServiceStartTime <= DepartureTime.
type Customer struct {
	ID    int64 // Unique, monotonically increasing within a run
	Class Class

	ArrivalTime      float64
	ServiceStartTime float64 // meaningful only once service has begun
	DepartureTime    float64 // meaningful only once service has completed
}

// ResidenceTime returns the total time the customer spent in the system,
// waiting plus service. Only meaningful after departure.
func (c *Customer) ResidenceTime() float64 {
	return c.DepartureTime - c.ArrivalTime
}

// WaitTime returns the time spent in the waiting line before service began.
func (c *Customer) WaitTime() float64 {
	return c.ServiceStartTime - c.ArrivalTime
}

// This method returns a human-readable string representation of a Customer.
func (c Customer) String() string {
	return fmt.Sprintf("Customer: (ID: %d, Class: %s, ArrivalTime: %.3f)", c.ID, c.Class, c.ArrivalTime)
}
