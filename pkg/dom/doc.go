// Package dom provides the minimal node capability model the serializer
// and matchers operate on.
//
// The model is deliberately small: node-kind discrimination, ordered
// attribute and child enumeration, an optional shadow root with a
// focus-delegation flag, and an optional hidden light-DOM override used
// by slot-polyfilled components. DOM back-ends feed the serializer by
// converting their trees into these node types; the package ships two
// producers of its own, the struct-based builders and the ParseFragment
// HTML parser.
//
// # Building Trees
//
//	el := dom.NewElement("my-button",
//	    dom.NewText("Click me"),
//	).SetAttribute("class", "primary")
//	sr := el.AttachShadow(false)
//	sr.Append(dom.NewElement("button", dom.NewElement("slot")))
//
// # Events
//
// Elements carry a custom-event surface used by the spy registry:
// AddEventListener registers listeners, DispatchEvent delivers
// synchronously on the caller's goroutine. Remove drops listeners and
// fires removal hooks, which is how spy side tables are released
// without explicit teardown calls.
package dom
