package sim

// pendingEvent pairs an Event with its insertion sequence number. The
// sequence number is the final tie-break, so simultaneous events of the
// same kind are processed in the order they were scheduled.
type pendingEvent struct {
	event Event
	seq   int64
}

// EventQueue implements heap.Interface and orders pending events by
// (time, kind, insertion order).
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []pendingEvent

func (eq EventQueue) Len() int { return len(eq) }

func (eq EventQueue) Less(i, j int) bool {
	if eq[i].event.Time() != eq[j].event.Time() {
		return eq[i].event.Time() < eq[j].event.Time()
	}
	if eq[i].event.Kind() != eq[j].event.Kind() {
		return eq[i].event.Kind() < eq[j].event.Kind()
	}
	return eq[i].seq < eq[j].seq
}

func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(pendingEvent))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	old[n-1].event = nil
	*eq = old[0 : n-1]
	return item
}

// Peek returns the earliest pending event without removing it, or nil when
// the queue is empty. The run loop peeks before popping so that an event
// scheduled past the horizon is never executed.
func (eq EventQueue) Peek() Event {
	if len(eq) == 0 {
		return nil
	}
	return eq[0].event
}
