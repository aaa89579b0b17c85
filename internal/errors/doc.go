// Package errors provides the structured error type shared by the
// matchers, snapshot stores, and config loader. Each error carries a
// stable code, a category, and an optional fix suggestion that matcher
// diagnostics surface directly to the test author.
package errors
