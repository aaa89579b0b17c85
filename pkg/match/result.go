package match

// Result is the outcome of a matcher: a pass/fail verdict plus a lazy
// diagnostic. Message is only evaluated on failure (or on the negated
// path), so building it may be arbitrarily expensive.
type Result struct {
	Pass    bool
	Message func() string
}

func pass(msg func() string) Result {
	return Result{Pass: true, Message: msg}
}

func fail(msg func() string) Result {
	return Result{Pass: false, Message: msg}
}

func constMsg(s string) func() string {
	return func() string { return s }
}
