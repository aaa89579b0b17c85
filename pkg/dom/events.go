package dom

// Event is a dispatched custom event. Detail carries the payload the
// component attached at dispatch time; it may be any value, including
// structures the generic serialization path cannot handle.
type Event struct {
	Type   string
	Detail any
}

// Listener receives dispatched events.
type Listener func(Event)

// AddEventListener registers a listener for the given event type.
// Listeners fire in registration order. Listeners registered after
// Remove are dropped.
func (e *Element) AddEventListener(eventType string, fn Listener) {
	if e.removed || fn == nil {
		return
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]Listener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], fn)
}

// DispatchEvent delivers the event to listeners registered for its
// type. Delivery is synchronous on the caller's goroutine; the caller
// owns the event queue, which is why spy state needs no locking.
func (e *Element) DispatchEvent(ev Event) {
	for _, fn := range e.listeners[ev.Type] {
		fn(ev)
	}
}
