// Implements the two-class PriorityQueue, which holds all customers waiting
// to be served. Customers are enqueued on arrival into the line matching
// their class.

package sim

import (
	"fmt"
	"strings"
)

// waitLine is a FIFO of customers waiting for the server.
type waitLine struct {
	line []*Customer
}

// enqueue adds a customer to the back of the line.
func (wl *waitLine) enqueue(c *Customer) {
	wl.line = append(wl.line, c)
}

// dequeue removes and returns the customer at the front of the line.
// Returns nil if the line is empty.
func (wl *waitLine) dequeue() *Customer {
	if len(wl.line) == 0 {
		return nil
	}
	c := wl.line[0]
	wl.line = wl.line[1:]
	return c
}

func (wl *waitLine) len() int {
	return len(wl.line)
}

func (wl *waitLine) contains(c *Customer) bool {
	for _, w := range wl.line {
		if w == c {
			return true
		}
	}
	return false
}

// PriorityQueue holds the customers not yet in service, split into one FIFO
// line per class. It realizes the entire queue discipline: strict class
// precedence, first-come-first-served within a class, non-preemptive (a
// customer already in service is never interrupted).
type PriorityQueue struct {
	priorityWaiting waitLine
	regularWaiting  waitLine
}

// Enqueue appends the customer to the tail of the line matching its class.
func (pq *PriorityQueue) Enqueue(c *Customer) {
	if c.Class == ClassPriority {
		pq.priorityWaiting.enqueue(c)
		return
	}
	pq.regularWaiting.enqueue(c)
}

// DequeueNext removes and returns the next customer to serve: the head of
// the priority line if any customer waits there, else the head of the
// regular line. Returns nil when both lines are empty.
func (pq *PriorityQueue) DequeueNext() *Customer {
	if c := pq.priorityWaiting.dequeue(); c != nil {
		return c
	}
	return pq.regularWaiting.dequeue()
}

// Len returns the combined number of waiting customers.
func (pq *PriorityQueue) Len() int {
	return pq.priorityWaiting.len() + pq.regularWaiting.len()
}

// LenClass returns the number of waiting customers of the given class.
func (pq *PriorityQueue) LenClass(class Class) int {
	if class == ClassPriority {
		return pq.priorityWaiting.len()
	}
	return pq.regularWaiting.len()
}

// Contains reports whether the customer is currently in either line.
func (pq *PriorityQueue) Contains(c *Customer) bool {
	return pq.priorityWaiting.contains(c) || pq.regularWaiting.contains(c)
}

func (pq *PriorityQueue) String() string {
	var sb strings.Builder
	sb.WriteString("priority:[")
	for i, c := range pq.priorityWaiting.line {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprint(c.ID))
	}
	sb.WriteString("] regular:[")
	for i, c := range pq.regularWaiting.line {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprint(c.ID))
	}
	sb.WriteString("]")
	return sb.String()
}
