// Package match implements the assertion matchers over rendered
// component trees and event spies.
//
// Every matcher returns a Result with a lazy diagnostic message plus an
// error for usage mistakes (nil received value, unsettled render,
// unsupported type). The Result composes with a host framework's
// negation modifier; Assert and AssertNot cover plain *testing.T use.
//
// The structural matchers, EqualHTML and EqualLightHTML, serialize the
// received tree to canonical markup, normalize both sides, and compare
// exact strings. Failure messages show both sides pretty-printed.
//
// Register hands the full name-to-matcher mapping to a host assertion
// framework exactly once per process.
package match
