package ecs

// EventType identifies gameplay events raised during a frame.
type EventType string

const (
	EventLaunched       EventType = "launched"
	EventLanded         EventType = "landed"
	EventTookOff        EventType = "took_off"
	EventCrashed        EventType = "crashed"
	EventReset          EventType = "reset"
	EventOutOfBounds    EventType = "out_of_bounds"
	EventAsteroidImpact EventType = "asteroid_impact"
)

// Event is a frame-scoped notification. Body is the entity the event is
// about; Other is the second party when there is one (the landing body,
// the asteroid hit).
type Event struct {
	Type  EventType
	Body  Entity
	Other Entity
	X     float64
	Y     float64
}

// EventQueue is a simple FIFO queue cleared at the end of every frame.
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

// Items returns the events pushed so far this frame. Systems later in the
// schedule read them; none of them consume.
func (q *EventQueue) Items() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Of returns the events of one type.
func (q *EventQueue) Of(t EventType) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
