// Package spy provides per-render-target bookkeeping of dispatched
// custom events for asynchronous event assertions.
//
//	buttonSpy, err := spy.SpyOnEvent(el, "myChange")
//	// ... drive the component ...
//	last, ok := buttonSpy.LastEvent()
//
// Spies are cached per (target, event name) pair and released when the
// target is removed. Spy state is mutated only from the event-dispatch
// path; confine dispatch to a single goroutine.
package spy
