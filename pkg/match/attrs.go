package match

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/wctest-dev/wctest/pkg/dom"
)

func requireElement(el *dom.Element) error {
	if el == nil {
		return errNilReceived()
	}
	return nil
}

// HaveClass checks that the element's class list contains the class.
func HaveClass(el *dom.Element, class string) (Result, error) {
	if err := requireElement(el); err != nil {
		return Result{}, err
	}
	classes := el.ClassList()
	for _, c := range classes {
		if c == class {
			return pass(constMsg(fmt.Sprintf("expected element not to have class %q, classes: %q", class, classes))), nil
		}
	}
	return fail(constMsg(fmt.Sprintf("expected element to have class %q, classes: %q", class, classes))), nil
}

// HaveClasses checks that the element's class list contains every given
// class, in any order, alongside any others.
func HaveClasses(el *dom.Element, classes []string) (Result, error) {
	if err := requireElement(el); err != nil {
		return Result{}, err
	}
	have := make(map[string]bool)
	for _, c := range el.ClassList() {
		have[c] = true
	}
	var missing []string
	for _, c := range classes {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) == 0 {
		return pass(constMsg(fmt.Sprintf("expected element not to have classes %q, classes: %q", classes, el.ClassList()))), nil
	}
	return fail(constMsg(fmt.Sprintf("expected element to have classes %q, missing: %q, classes: %q",
		classes, missing, el.ClassList()))), nil
}

// MatchClasses checks that the element's class list equals the given
// set exactly: both lists are sorted and compared element-wise.
func MatchClasses(el *dom.Element, classes []string) (Result, error) {
	if err := requireElement(el); err != nil {
		return Result{}, err
	}
	got := append([]string(nil), el.ClassList()...)
	want := append([]string(nil), classes...)
	sort.Strings(got)
	sort.Strings(want)

	equal := len(got) == len(want)
	if equal {
		for i := range got {
			if got[i] != want[i] {
				equal = false
				break
			}
		}
	}
	if equal {
		return pass(constMsg(fmt.Sprintf("expected element classes not to match %q exactly", want))), nil
	}
	return fail(constMsg(fmt.Sprintf("expected element classes to match %q exactly, classes: %q", want, got))), nil
}

// HaveAttribute checks that the attribute exists, with any value.
func HaveAttribute(el *dom.Element, name string) (Result, error) {
	if err := requireElement(el); err != nil {
		return Result{}, err
	}
	if _, ok := el.Attribute(name); ok {
		return pass(constMsg(fmt.Sprintf("expected element not to have attribute %q", name))), nil
	}
	return fail(constMsg(fmt.Sprintf("expected element to have attribute %q", name))), nil
}

// EqualAttribute checks that the attribute exists and equals value.
func EqualAttribute(el *dom.Element, name, value string) (Result, error) {
	if err := requireElement(el); err != nil {
		return Result{}, err
	}
	got, ok := el.Attribute(name)
	if !ok {
		return fail(constMsg(fmt.Sprintf("expected attribute %s=%q, attribute is missing", name, value))), nil
	}
	if got == value {
		return pass(constMsg(fmt.Sprintf("expected attribute %s not to equal %q", name, value))), nil
	}
	return fail(constMsg(fmt.Sprintf("expected attribute %s=%q, got %q", name, value, got))), nil
}

// EqualAttributes bulk-checks attributes. Every mismatched key is
// reported, and keys the element lacks are reported as missing.
func EqualAttributes(el *dom.Element, want map[string]string) (Result, error) {
	if err := requireElement(el); err != nil {
		return Result{}, err
	}

	names := make([]string, 0, len(want))
	for name := range want {
		names = append(names, name)
	}
	sort.Strings(names)

	var problems []string
	for _, name := range names {
		got, ok := el.Attribute(name)
		switch {
		case !ok:
			problems = append(problems, fmt.Sprintf("%s: missing (expected %q)", name, want[name]))
		case got != want[name]:
			problems = append(problems, fmt.Sprintf("%s: got %q, expected %q", name, got, want[name]))
		}
	}

	if len(problems) == 0 {
		return pass(constMsg(fmt.Sprintf("expected element attributes not to equal %v", want))), nil
	}
	return fail(constMsg("attribute mismatches:\n  " + strings.Join(problems, "\n  "))), nil
}

// HaveProperty checks that the element property exists. When a value is
// given, it must also be strictly equal: == for comparable values,
// identity for reference kinds the language cannot compare (slices,
// maps).
func HaveProperty(el *dom.Element, name string, value ...any) (Result, error) {
	if err := requireElement(el); err != nil {
		return Result{}, err
	}
	got, ok := el.Prop(name)
	if !ok {
		return fail(constMsg(fmt.Sprintf("expected element to have property %q", name))), nil
	}
	if len(value) == 0 {
		return pass(constMsg(fmt.Sprintf("expected element not to have property %q", name))), nil
	}
	if propEqual(got, value[0]) {
		return pass(constMsg(fmt.Sprintf("expected property %q not to equal %v", name, value[0]))), nil
	}
	return fail(constMsg(fmt.Sprintf("expected property %q to equal %v, got %v", name, value[0], got))), nil
}

// propEqual compares property values without panicking on uncomparable
// types, so component props holding slices or maps fail the predicate
// instead of crashing the test.
func propEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return topLevelEqual(reflect.ValueOf(a), reflect.ValueOf(b))
}

// HaveTextContent checks that the element's text content contains the
// given substring.
func HaveTextContent(el *dom.Element, substring string) (Result, error) {
	if err := requireElement(el); err != nil {
		return Result{}, err
	}
	text := el.TextContent()
	if strings.Contains(text, substring) {
		return pass(constMsg(fmt.Sprintf("expected text content not to contain %q, got %q", substring, text))), nil
	}
	return fail(constMsg(fmt.Sprintf("expected text content to contain %q, got %q", substring, text))), nil
}

// EqualText checks that the element's trimmed text content equals the
// trimmed expected text exactly.
func EqualText(el *dom.Element, text string) (Result, error) {
	if err := requireElement(el); err != nil {
		return Result{}, err
	}
	got := strings.TrimSpace(el.TextContent())
	want := strings.TrimSpace(text)
	if got == want {
		return pass(constMsg(fmt.Sprintf("expected text not to equal %q", want))), nil
	}
	return fail(constMsg(fmt.Sprintf("expected text %q, got %q", want, got))), nil
}

// HaveShadowRoot checks that the element carries a shadow root.
func HaveShadowRoot(el *dom.Element) (Result, error) {
	if err := requireElement(el); err != nil {
		return Result{}, err
	}
	if el.Shadow != nil {
		return pass(constMsg("expected element not to have a shadow root")), nil
	}
	return fail(constMsg("expected element to have a shadow root")), nil
}
