package spy

import (
	"errors"

	"github.com/wctest-dev/wctest/pkg/dom"
)

// ErrNilTarget is returned when spying on a nil render target.
var ErrNilTarget = errors.New("spy: render target is nil")

// ErrRemovedTarget is returned when spying on a removed render target.
var ErrRemovedTarget = errors.New("spy: render target has been removed")

// Registry is the side table mapping render targets to their spies.
// Entries live exactly as long as the target: the registry hooks the
// target's removal and drops the entry then, so no explicit teardown
// call is needed.
type Registry struct {
	spies map[*dom.Element]map[string]*EventSpy
}

// NewRegistry creates an empty spy registry.
func NewRegistry() *Registry {
	return &Registry{spies: make(map[*dom.Element]map[string]*EventSpy)}
}

// SpyOn returns the spy for (target, eventName), creating and wiring it
// on first request. The call is idempotent per pair: a second call
// returns the same spy rather than attaching a duplicate listener.
func (r *Registry) SpyOn(target *dom.Element, eventName string) (*EventSpy, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	if target.Removed() {
		return nil, ErrRemovedTarget
	}

	byEvent, ok := r.spies[target]
	if !ok {
		byEvent = make(map[string]*EventSpy)
		r.spies[target] = byEvent
		target.OnRemove(func() { r.Forget(target) })
	}
	if s, ok := byEvent[eventName]; ok {
		return s, nil
	}

	s := &EventSpy{EventName: eventName}
	byEvent[eventName] = s
	target.AddEventListener(eventName, s.record)
	return s, nil
}

// Forget drops all spies for the target. Called automatically when the
// target is removed.
func (r *Registry) Forget(target *dom.Element) {
	delete(r.spies, target)
}

// Len returns the number of targets with live spies.
func (r *Registry) Len() int {
	return len(r.spies)
}

// defaultRegistry backs the package-level SpyOnEvent.
var defaultRegistry = NewRegistry()

// SpyOnEvent spies on eventName dispatched on target, using the
// process-default registry.
func SpyOnEvent(target *dom.Element, eventName string) (*EventSpy, error) {
	return defaultRegistry.SpyOn(target, eventName)
}
