package spy

import "github.com/wctest-dev/wctest/pkg/dom"

// EventSpy accumulates every matching event dispatched on its render
// target for the lifetime of that target. All mutation happens on the
// goroutine that owns the DOM event queue, so no locking is needed.
type EventSpy struct {
	EventName string

	events []dom.Event
}

// Length returns the number of captured events.
func (s *EventSpy) Length() int {
	return len(s.events)
}

// Events returns the captured events in dispatch order.
func (s *EventSpy) Events() []dom.Event {
	return s.events
}

// FirstEvent returns the first captured event. The second return is
// false when nothing has been captured yet.
func (s *EventSpy) FirstEvent() (dom.Event, bool) {
	if len(s.events) == 0 {
		return dom.Event{}, false
	}
	return s.events[0], true
}

// LastEvent returns the most recently captured event.
func (s *EventSpy) LastEvent() (dom.Event, bool) {
	if len(s.events) == 0 {
		return dom.Event{}, false
	}
	return s.events[len(s.events)-1], true
}

// EventAt returns the nth captured event, 0-indexed.
func (s *EventSpy) EventAt(n int) (dom.Event, bool) {
	if n < 0 || n >= len(s.events) {
		return dom.Event{}, false
	}
	return s.events[n], true
}

func (s *EventSpy) record(ev dom.Event) {
	s.events = append(s.events, ev)
}
