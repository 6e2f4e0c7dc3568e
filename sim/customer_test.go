package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomer_ResidenceTime_IsDepartureMinusArrival(t *testing.T) {
	c := &Customer{Class: ClassRegular, ArrivalTime: 10.0, ServiceStartTime: 12.5, DepartureTime: 14.0}
	assert.InDelta(t, 4.0, c.ResidenceTime(), 1e-12)
}

func TestCustomer_WaitTime_IsServiceStartMinusArrival(t *testing.T) {
	c := &Customer{Class: ClassPriority, ArrivalTime: 10.0, ServiceStartTime: 12.5, DepartureTime: 14.0}
	assert.InDelta(t, 2.5, c.WaitTime(), 1e-12)
}

func TestCustomer_String_IncludesIDAndClass(t *testing.T) {
	c := Customer{ID: 7, Class: ClassPriority, ArrivalTime: 1.25}
	s := c.String()
	assert.Contains(t, s, "ID: 7")
	assert.Contains(t, s, "priority")
}
