package match

import (
	"strings"
	"testing"

	"github.com/wctest-dev/wctest/pkg/dom"
	"github.com/wctest-dev/wctest/pkg/spy"
)

func spiedTarget(t *testing.T) (*dom.Element, *spy.EventSpy) {
	t.Helper()
	el := dom.NewElement("my-counter")
	s, err := spy.SpyOnEvent(el, "countChanged")
	if err != nil {
		t.Fatalf("spy setup: %v", err)
	}
	return el, s
}

func dispatchSeq(el *dom.Element) {
	for n := 1; n <= 3; n++ {
		el.DispatchEvent(dom.Event{Type: "countChanged", Detail: map[string]any{"n": n}})
	}
}

func TestHaveReceivedEvent(t *testing.T) {
	el, s := spiedTarget(t)

	res, err := HaveReceivedEvent(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Pass {
		t.Error("expected failure before any dispatch")
	}

	el.DispatchEvent(dom.Event{Type: "countChanged"})
	if res, _ := HaveReceivedEvent(s); !res.Pass {
		t.Error("expected pass after dispatch")
	}
}

func TestHaveReceivedEventTimes(t *testing.T) {
	el, s := spiedTarget(t)
	dispatchSeq(el)

	if res, _ := HaveReceivedEventTimes(s, 3); !res.Pass {
		t.Error("exactly 3 should pass")
	}
	res, _ := HaveReceivedEventTimes(s, 2)
	if res.Pass {
		t.Error("2 should fail when 3 were received")
	}
	if !strings.Contains(res.Message(), "received 3") {
		t.Errorf("message should report actual count: %q", res.Message())
	}
}

func TestEventDetailOrdinals(t *testing.T) {
	el, s := spiedTarget(t)
	dispatchSeq(el)

	if res, _ := HaveFirstReceivedEventDetail(s, map[string]any{"n": 1}); !res.Pass {
		t.Error("first detail should be {n:1}")
	}
	if res, _ := HaveLastReceivedEventDetail(s, map[string]any{"n": 3}); !res.Pass {
		t.Error("last detail should be {n:3}")
	}
	if res, _ := HaveNthReceivedEventDetail(s, 1, map[string]any{"n": 2}); !res.Pass {
		t.Error("nth(1) detail should be {n:2}")
	}
	// Plain detail matcher compares the most recent event.
	if res, _ := HaveReceivedEventDetail(s, map[string]any{"n": 3}); !res.Pass {
		t.Error("detail matcher should compare the last event")
	}
	if res, _ := HaveReceivedEventDetail(s, map[string]any{"n": 1}); res.Pass {
		t.Error("detail matcher must not compare the first event")
	}
}

func TestEventDetailOutOfRange(t *testing.T) {
	el, s := spiedTarget(t)
	el.DispatchEvent(dom.Event{Type: "countChanged", Detail: 1})

	res, _ := HaveNthReceivedEventDetail(s, 5, 1)
	if res.Pass {
		t.Error("expected failure for out-of-range ordinal")
	}
	if !strings.Contains(res.Message(), "only 1 event") {
		t.Errorf("message should report the count: %q", res.Message())
	}
}

func TestEventDetailDeepEquality(t *testing.T) {
	el, s := spiedTarget(t)
	el.DispatchEvent(dom.Event{Type: "countChanged", Detail: map[string]any{
		"user": map[string]any{"id": 7, "name": "ada"},
		"tags": []string{"a", "b"},
	}})

	// Structurally identical, different concrete types.
	want := map[string]any{
		"user": map[string]int{"id": 7}, // missing name
		"tags": []string{"a", "b"},
	}
	res, _ := HaveReceivedEventDetail(s, want)
	if res.Pass {
		t.Fatal("expected failure for structural mismatch")
	}
	if !strings.Contains(res.Message(), "diff") {
		t.Errorf("failure should carry a diff: %q", res.Message())
	}

	res, _ = HaveReceivedEventDetail(s, map[string]any{
		"user": map[string]any{"id": 7, "name": "ada"},
		"tags": []any{"a", "b"},
	})
	if !res.Pass {
		t.Errorf("structurally equal payloads should pass: %s", res.Message())
	}
}

type cyclic struct {
	Name string
	Self *cyclic
}

func TestEventDetailCyclicFallback(t *testing.T) {
	el, s := spiedTarget(t)

	payload := &cyclic{Name: "loop"}
	payload.Self = payload
	el.DispatchEvent(dom.Event{Type: "countChanged", Detail: payload})

	// The payload cannot be serialized; shallow comparison on identity
	// still recognizes the same value.
	if res, _ := HaveReceivedEventDetail(s, payload); !res.Pass {
		t.Error("identical cyclic payload should pass via shallow fallback")
	}

	other := &cyclic{Name: "loop"}
	other.Self = other
	if res, _ := HaveReceivedEventDetail(s, other); res.Pass {
		t.Error("distinct cyclic payloads compare shallowly and must fail")
	}
}

func TestNilSpyIsUsageError(t *testing.T) {
	if _, err := HaveReceivedEvent(nil); err == nil {
		t.Error("expected usage error for nil spy")
	}
	if _, err := HaveNthReceivedEventDetail(nil, 0, nil); err == nil {
		t.Error("expected usage error for nil spy")
	}
}
