package match

import "testing"

func TestMatchersSurface(t *testing.T) {
	want := []string{
		"toHaveClass",
		"toHaveClasses",
		"toMatchClasses",
		"toHaveAttribute",
		"toEqualAttribute",
		"toEqualAttributes",
		"toHaveProperty",
		"toHaveTextContent",
		"toEqualText",
		"toHaveShadowRoot",
		"toEqualHtml",
		"toEqualLightHtml",
		"toHaveReceivedEvent",
		"toHaveReceivedEventTimes",
		"toHaveReceivedEventDetail",
		"toHaveFirstReceivedEventDetail",
		"toHaveLastReceivedEventDetail",
		"toHaveNthReceivedEventDetail",
	}

	m := Matchers()
	if len(m) != len(want) {
		t.Errorf("got %d matchers, want %d", len(m), len(want))
	}
	for _, name := range want {
		if m[name] == nil {
			t.Errorf("matcher %q missing", name)
		}
	}
}

func TestRegisterRunsOnce(t *testing.T) {
	calls := 0
	ext := ExtenderFunc(func(matchers map[string]any) {
		calls++
		if len(matchers) == 0 {
			t.Error("extension point received empty mapping")
		}
	})

	Register(ext)
	Register(ext)

	if calls > 1 {
		t.Errorf("extension point invoked %d times, want at most 1", calls)
	}
}
