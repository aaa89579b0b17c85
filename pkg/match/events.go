package match

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"

	"github.com/wctest-dev/wctest/internal/errors"
	"github.com/wctest-dev/wctest/pkg/dom"
	"github.com/wctest-dev/wctest/pkg/spy"
)

func requireSpy(s *spy.EventSpy) error {
	if s == nil {
		return errors.New("U005", errors.CategoryUsage, "event spy is nil").
			WithSuggestion("create the spy with spy.SpyOnEvent before dispatching")
	}
	return nil
}

// HaveReceivedEvent passes when the spy captured at least one event.
func HaveReceivedEvent(s *spy.EventSpy) (Result, error) {
	if err := requireSpy(s); err != nil {
		return Result{}, err
	}
	if s.Length() > 0 {
		return pass(constMsg(fmt.Sprintf("expected event %q not to have been received, received %d time(s)",
			s.EventName, s.Length()))), nil
	}
	return fail(constMsg(fmt.Sprintf("expected event %q to have been received", s.EventName))), nil
}

// HaveReceivedEventTimes passes when the spy captured exactly n events.
func HaveReceivedEventTimes(s *spy.EventSpy, n int) (Result, error) {
	if err := requireSpy(s); err != nil {
		return Result{}, err
	}
	if s.Length() == n {
		return pass(constMsg(fmt.Sprintf("expected event %q not to have been received %d time(s)",
			s.EventName, n))), nil
	}
	return fail(constMsg(fmt.Sprintf("expected event %q to have been received %d time(s), received %d",
		s.EventName, n, s.Length()))), nil
}

// HaveReceivedEventDetail compares the most recent event's detail.
func HaveReceivedEventDetail(s *spy.EventSpy, detail any) (Result, error) {
	if err := requireSpy(s); err != nil {
		return Result{}, err
	}
	ev, ok := s.LastEvent()
	return detailResult(s, ev, ok, "last", detail), nil
}

// HaveFirstReceivedEventDetail compares the first event's detail.
func HaveFirstReceivedEventDetail(s *spy.EventSpy, detail any) (Result, error) {
	if err := requireSpy(s); err != nil {
		return Result{}, err
	}
	ev, ok := s.FirstEvent()
	return detailResult(s, ev, ok, "first", detail), nil
}

// HaveLastReceivedEventDetail compares the last event's detail.
func HaveLastReceivedEventDetail(s *spy.EventSpy, detail any) (Result, error) {
	return HaveReceivedEventDetail(s, detail)
}

// HaveNthReceivedEventDetail compares the nth (0-indexed) event's detail.
func HaveNthReceivedEventDetail(s *spy.EventSpy, n int, detail any) (Result, error) {
	if err := requireSpy(s); err != nil {
		return Result{}, err
	}
	ev, ok := s.EventAt(n)
	return detailResult(s, ev, ok, fmt.Sprintf("#%d", n), detail), nil
}

func detailResult(s *spy.EventSpy, ev dom.Event, captured bool, which string, want any) Result {
	if !captured {
		return fail(constMsg(fmt.Sprintf("expected %s %q event, but only %d event(s) were received",
			which, s.EventName, s.Length())))
	}
	equal, diff := detailEqual(want, ev.Detail)
	if equal {
		return pass(constMsg(fmt.Sprintf("expected %s %q event detail not to equal %v", which, s.EventName, want)))
	}
	return fail(func() string {
		msg := fmt.Sprintf("expected %s %q event detail to equal %v, got %v", which, s.EventName, want, ev.Detail)
		if diff != "" {
			msg += "\ndiff (-want +got):\n" + diff
		}
		return msg
	})
}

// detailEqual deep-compares event payloads over a JSON round-trip so
// that structurally identical values compare equal regardless of their
// concrete Go types. Payloads that cannot be serialized (cyclic
// references) degrade to a shallow top-level comparison instead of
// failing the whole assertion; this trades precision for robustness on
// circular component payloads.
func detailEqual(want, got any) (bool, string) {
	w, wok := jsonRoundTrip(want)
	g, gok := jsonRoundTrip(got)
	if wok && gok {
		diff := cmp.Diff(w, g)
		return diff == "", diff
	}
	return shallowEqual(want, got), ""
}

func jsonRoundTrip(v any) (any, bool) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, false
	}
	return out, true
}

// shallowEqual compares two values one level deep: key sets and
// top-level values for maps and structs, identity for reference kinds.
func shallowEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}

	for av.Kind() == reflect.Pointer {
		if av.IsNil() || bv.IsNil() {
			return av.IsNil() && bv.IsNil()
		}
		if av.Pointer() == bv.Pointer() {
			return true
		}
		av, bv = av.Elem(), bv.Elem()
	}

	switch av.Kind() {
	case reflect.Map:
		if av.Len() != bv.Len() {
			return false
		}
		iter := av.MapRange()
		for iter.Next() {
			other := bv.MapIndex(iter.Key())
			if !other.IsValid() || !topLevelEqual(iter.Value(), other) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < av.NumField(); i++ {
			if !av.Type().Field(i).IsExported() {
				continue
			}
			if !topLevelEqual(av.Field(i), bv.Field(i)) {
				return false
			}
		}
		return true
	default:
		return topLevelEqual(av, bv)
	}
}

// topLevelEqual compares two values without recursing: == for
// comparable values, pointer identity for reference kinds.
func topLevelEqual(a, b reflect.Value) bool {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return a.Pointer() == b.Pointer()
	}
	if a.Comparable() {
		return a.Interface() == b.Interface()
	}
	return false
}
