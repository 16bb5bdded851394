package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventDoor = "door"

// DoorEventKind identifies door state-edge event types.
type DoorEventKind string

const (
	DoorEventOpened DoorEventKind = "opened"
	DoorEventClosed DoorEventKind = "closed"
)

// DoorEvent is emitted on the frame a door's open state flips.
type DoorEvent struct {
	Entity Entity
	Kind   DoorEventKind
	Travel float64
}

// EventQueue is a simple FIFO queue.
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
