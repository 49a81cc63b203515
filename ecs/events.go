package ecs

// EventKind identifies an event payload.
type EventKind string

const (
	// EventAnimationTrigger carries a one-shot animator trigger pulse.
	EventAnimationTrigger EventKind = "animation_trigger"
	// EventLedge carries a ledge grab or release.
	EventLedge EventKind = "ledge"
	// EventTuningReloaded is pushed after player tuning was replaced.
	EventTuningReloaded EventKind = "tuning_reloaded"
)

// Event is a generic ECS event payload.
type Event struct {
	Kind   EventKind
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue, cleared at the end of every frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Peek returns the queued events without clearing them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
