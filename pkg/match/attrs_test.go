package match

import (
	"strings"
	"testing"

	"github.com/wctest-dev/wctest/pkg/dom"
)

func styledButton() *dom.Element {
	el := dom.NewElement("button", dom.NewText("Go"))
	el.SetAttribute("type", "button")
	el.SetAttribute("class", "button button--primary button--medium")
	return el
}

func TestHaveClass(t *testing.T) {
	el := styledButton()

	res, err := HaveClass(el, "button--primary")
	if err != nil || !res.Pass {
		t.Errorf("expected pass, err=%v", err)
	}

	res, _ = HaveClass(el, "button--large")
	if res.Pass {
		t.Error("expected failure for absent class")
	}
	if !strings.Contains(res.Message(), "button--large") {
		t.Errorf("message should name the class: %q", res.Message())
	}
}

func TestHaveClasses(t *testing.T) {
	el := styledButton()

	res, err := HaveClasses(el, []string{"button", "button--medium"})
	if err != nil || !res.Pass {
		t.Errorf("expected pass, err=%v", err)
	}

	res, _ = HaveClasses(el, []string{"button", "missing-one"})
	if res.Pass {
		t.Error("expected failure")
	}
	if !strings.Contains(res.Message(), "missing-one") {
		t.Errorf("message should list missing classes: %q", res.Message())
	}
}

func TestMatchClassesExactSet(t *testing.T) {
	el := styledButton()

	// Order must not matter.
	res, err := MatchClasses(el, []string{"button--medium", "button--primary", "button"})
	if err != nil || !res.Pass {
		t.Errorf("expected pass, err=%v", err)
	}

	// A strict subset is not an exact match.
	res, _ = MatchClasses(el, []string{"button"})
	if res.Pass {
		t.Error("expected failure for subset")
	}

	// Neither is a superset.
	res, _ = MatchClasses(el, []string{"button", "button--primary", "button--medium", "extra"})
	if res.Pass {
		t.Error("expected failure for superset")
	}
}

func TestHaveAttribute(t *testing.T) {
	el := styledButton()

	if res, err := HaveAttribute(el, "type"); err != nil || !res.Pass {
		t.Errorf("expected pass, err=%v", err)
	}
	if res, _ := HaveAttribute(el, "href"); res.Pass {
		t.Error("expected failure for absent attribute")
	}
}

func TestEqualAttribute(t *testing.T) {
	el := styledButton()

	if res, err := EqualAttribute(el, "type", "button"); err != nil || !res.Pass {
		t.Errorf("expected pass, err=%v", err)
	}

	res, _ := EqualAttribute(el, "type", "submit")
	if res.Pass {
		t.Error("expected failure")
	}
	if !strings.Contains(res.Message(), `"submit"`) || !strings.Contains(res.Message(), `"button"`) {
		t.Errorf("message should show both values: %q", res.Message())
	}

	res, _ = EqualAttribute(el, "href", "x")
	if res.Pass || !strings.Contains(res.Message(), "missing") {
		t.Errorf("absent attribute should report missing: %q", res.Message())
	}
}

func TestEqualAttributesBulk(t *testing.T) {
	el := styledButton()

	res, err := EqualAttributes(el, map[string]string{
		"type":  "button",
		"class": "button button--primary button--medium",
	})
	if err != nil || !res.Pass {
		t.Errorf("expected pass, err=%v", err)
	}

	res, _ = EqualAttributes(el, map[string]string{
		"type":     "button",
		"class":    "button",
		"tabindex": "0",
	})
	if res.Pass {
		t.Fatal("expected failure")
	}
	msg := res.Message()
	if !strings.Contains(msg, "tabindex: missing") {
		t.Errorf("absent key should be reported as missing: %q", msg)
	}
	if !strings.Contains(msg, "class:") {
		t.Errorf("mismatched key should be reported: %q", msg)
	}
	if strings.Contains(msg, "type:") {
		t.Errorf("matching key should not be reported: %q", msg)
	}
}

func TestHaveProperty(t *testing.T) {
	el := dom.NewElement("my-counter").SetProp("count", 3)

	if res, err := HaveProperty(el, "count"); err != nil || !res.Pass {
		t.Errorf("existence check: expected pass, err=%v", err)
	}
	if res, _ := HaveProperty(el, "count", 3); !res.Pass {
		t.Error("strict equality should pass")
	}
	if res, _ := HaveProperty(el, "count", "3"); res.Pass {
		t.Error("differing types must not compare equal")
	}
	if res, _ := HaveProperty(el, "total"); res.Pass {
		t.Error("absent property should fail")
	}
}

func TestHavePropertyUncomparableValues(t *testing.T) {
	items := []string{"a"}
	el := dom.NewElement("my-list").SetProp("items", items)

	// Must not panic on types == cannot compare.
	res, err := HaveProperty(el, "items", []string{"a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Pass {
		t.Error("distinct slices must not compare equal")
	}

	if res, _ := HaveProperty(el, "items", items); !res.Pass {
		t.Error("same slice should compare equal by identity")
	}

	el.SetProp("labels", map[string]string{"ok": "Go"})
	if res, _ := HaveProperty(el, "labels", map[string]string{"ok": "Go"}); res.Pass {
		t.Error("distinct maps must not compare equal")
	}

	type cfg struct{ Tags []string }
	el.SetProp("cfg", cfg{Tags: []string{"x"}})
	if res, _ := HaveProperty(el, "cfg", cfg{Tags: []string{"x"}}); res.Pass {
		t.Error("struct with uncomparable fields must fail, not panic")
	}
}

func TestTextMatchers(t *testing.T) {
	el := dom.NewElement("p",
		dom.NewText("  Hello, "),
		dom.NewElement("b", dom.NewText("world")),
		dom.NewText("!  "),
	)

	if res, err := HaveTextContent(el, "Hello"); err != nil || !res.Pass {
		t.Errorf("contains: expected pass, err=%v", err)
	}
	if res, _ := HaveTextContent(el, "goodbye"); res.Pass {
		t.Error("contains: expected failure")
	}

	if res, err := EqualText(el, "Hello, world!"); err != nil || !res.Pass {
		t.Errorf("exact trimmed: expected pass, err=%v", err)
	}
	if res, _ := EqualText(el, "Hello"); res.Pass {
		t.Error("exact: expected failure for partial text")
	}
}

func TestHaveShadowRoot(t *testing.T) {
	el := dom.NewElement("my-button")
	if res, _ := HaveShadowRoot(el); res.Pass {
		t.Error("expected failure without shadow root")
	}
	el.AttachShadow(false)
	if res, err := HaveShadowRoot(el); err != nil || !res.Pass {
		t.Errorf("expected pass, err=%v", err)
	}
}

func TestNilElementIsUsageError(t *testing.T) {
	if _, err := HaveClass(nil, "x"); err == nil {
		t.Error("HaveClass: expected usage error")
	}
	if _, err := EqualAttributes(nil, nil); err == nil {
		t.Error("EqualAttributes: expected usage error")
	}
	if _, err := HaveShadowRoot(nil); err == nil {
		t.Error("HaveShadowRoot: expected usage error")
	}
}
