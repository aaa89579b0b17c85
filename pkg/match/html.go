package match

import (
	"fmt"

	"github.com/wctest-dev/wctest/internal/errors"
	"github.com/wctest-dev/wctest/pkg/dom"
	"github.com/wctest-dev/wctest/pkg/serialize"
)

// EqualHTML compares the received value against expected markup with
// shadow content included. The received side may be a live node or a
// raw markup string; strings are parsed by the fragment parser and only
// their inner markup is compared. Both sides are normalized before the
// exact string comparison, so whitespace and formatting never matter.
//
// A nil, unsettled, or unsupported received value is a usage error, not
// a failed comparison.
func EqualHTML(received any, expected string) (Result, error) {
	return equalHTML(received, expected, true)
}

// EqualLightHTML is EqualHTML with shadow trees excluded, so internal
// shadow markup and slot-fallback content never leak into the
// comparison.
func EqualLightHTML(received any, expected string) (Result, error) {
	return equalHTML(received, expected, false)
}

func equalHTML(received any, expected string, includeShadow bool) (Result, error) {
	actual, err := serializeReceived(received, includeShadow)
	if err != nil {
		return Result{}, err
	}

	wantFrag, perr := dom.ParseFragment(expected)
	if perr != nil {
		return Result{}, errors.New("U004", errors.CategoryUsage,
			"expected HTML does not parse").Wrap(perr)
	}
	want := serialize.Normalize(serialize.Serialize(wantFrag, serialize.Compact()))
	got := serialize.Normalize(actual)

	if got == want {
		return pass(func() string {
			return fmt.Sprintf("expected HTML to differ from:\n%s", serialize.Prettify(want))
		}), nil
	}
	return fail(func() string {
		return fmt.Sprintf("expected HTML:\n%s\n\nreceived HTML:\n%s",
			serialize.Prettify(want), serialize.Prettify(got))
	}), nil
}

// serializeReceived coerces the received side of an HTML matcher into
// canonical markup, guarding the common caller mistakes first.
func serializeReceived(received any, includeShadow bool) (string, error) {
	if received == nil {
		return "", errNilReceived()
	}
	if isAwaitable(received) {
		return "", errors.New("U002", errors.CategoryUsage,
			"received value has not settled yet").
			WithSuggestion("await the render result before asserting on it")
	}

	opts := []serialize.Option{serialize.Compact()}
	if !includeShadow {
		opts = append(opts, serialize.WithoutShadow())
	}

	switch v := received.(type) {
	case string:
		frag, err := dom.ParseFragment(v)
		if err != nil {
			return "", errors.New("U004", errors.CategoryUsage,
				"received HTML does not parse").Wrap(err)
		}
		return serialize.Serialize(frag, opts...), nil
	case dom.Node:
		return serialize.Serialize(v, opts...), nil
	default:
		return "", errors.New("U003", errors.CategoryUsage,
			"received value must be a string, Element, ShadowRoot, or Fragment, got %T", received)
	}
}

func errNilReceived() error {
	return errors.New("U001", errors.CategoryUsage, "received value is nil").
		WithSuggestion("make sure the render produced a node before asserting on it")
}

// isAwaitable reports whether the value looks like a pending
// asynchronous result: something exposing a settling capability rather
// than a finished tree. Duck-typed on purpose so any render-result
// helper is caught without a nominal dependency on it.
func isAwaitable(v any) bool {
	switch v.(type) {
	case interface{ Wait() error }:
		return true
	case interface{ Done() <-chan struct{} }:
		return true
	}
	return false
}
