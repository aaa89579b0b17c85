// Package serialize turns capability-model trees into canonical markup.
//
// The canonical form is the stable cross-back-end contract that the
// matchers and snapshot stores compare against: deterministic for a
// given tree and option set, attributes in the tree's own enumeration
// order, shadow roots wrapped in a fixed <mock:shadow-root> sentinel
// pair, void elements never closed.
//
//	html := serialize.Serialize(el)                          // pretty, shadow included
//	flat := serialize.Serialize(el, serialize.Compact())     // single line
//	light := serialize.Serialize(el, serialize.WithoutShadow())
//
// Prettify and Normalize are exported separately: Prettify for
// human-facing diagnostics, Normalize as the comparison form.
package serialize
