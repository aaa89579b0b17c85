package match

import "testing"

// Assert fails the test when the matcher errored or did not pass.
//
//	res, err := match.EqualHTML(el, `<my-button>Go</my-button>`)
//	match.Assert(t, res, err)
func Assert(tb testing.TB, r Result, err error) {
	tb.Helper()
	if err != nil {
		tb.Fatalf("matcher usage error: %v", err)
	}
	if !r.Pass {
		tb.Error(r.Message())
	}
}

// AssertNot is the negation modifier: it fails when the matcher passed.
func AssertNot(tb testing.TB, r Result, err error) {
	tb.Helper()
	if err != nil {
		tb.Fatalf("matcher usage error: %v", err)
	}
	if r.Pass {
		tb.Error(r.Message())
	}
}
