package serialize

import (
	"strings"

	"github.com/wctest-dev/wctest/pkg/dom"
)

// ShadowRootTag is the fixed sentinel tag denoting a shadow-root
// boundary in canonical markup. It is identical across every supported
// DOM back-end so expected-HTML fixtures stay portable.
const ShadowRootTag = "mock:shadow-root"

// delegatesFocusAttr marks a shadow root created with focus delegation.
const delegatesFocusAttr = "delegatesfocus"

// Options configures serialization. Use the Option functions to change
// the defaults: shadow roots included, pretty output, style tags
// excluded.
type Options struct {
	IncludeShadow bool
	Pretty        bool
	ExcludeStyles bool
}

// Option configures serialization.
type Option func(*Options)

// WithoutShadow omits shadow trees and their sentinel tags.
func WithoutShadow() Option {
	return func(o *Options) { o.IncludeShadow = false }
}

// Compact disables pretty-printing of the result.
func Compact() Option {
	return func(o *Options) { o.Pretty = false }
}

// WithStyles keeps <style> elements in the output.
func WithStyles() Option {
	return func(o *Options) { o.ExcludeStyles = false }
}

func defaultOptions() Options {
	return Options{IncludeShadow: true, Pretty: true, ExcludeStyles: true}
}

// Serialize produces canonical markup for a capability-model tree.
//
// A string input is returned unchanged, which lets the comparator work
// with either live nodes or raw markup. Serialization is total: nil
// nodes, nil shadow roots, and missing fields serialize as absent
// rather than failing, so partial mocks stay usable while debugging.
// Pretty-printing runs once over the fully built string, never during
// recursion, to avoid mis-indenting concatenated fragments.
func Serialize(v any, opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case dom.Node:
		var sb strings.Builder
		writeNode(&sb, t, o)
		out := sb.String()
		if o.Pretty {
			out = Prettify(out)
		}
		return out
	default:
		return ""
	}
}

// writeNode dispatches serialization based on node kind.
func writeNode(sb *strings.Builder, n dom.Node, o Options) {
	switch t := n.(type) {
	case *dom.Element:
		writeElement(sb, t, o)
	case *dom.Text:
		if t != nil {
			sb.WriteString(t.Data)
		}
	case *dom.Comment:
		if t != nil && t.Data != "" {
			sb.WriteString("<!--")
			sb.WriteString(t.Data)
			sb.WriteString("-->")
		}
	case *dom.Fragment:
		if t != nil {
			writeChildren(sb, t.Children, o)
		}
	case *dom.ShadowRoot:
		if t != nil {
			writeChildren(sb, t.Children, o)
		}
	default:
		// Foreign Node implementations expose children only.
		if n != nil {
			writeChildren(sb, n.ChildNodes(), o)
		}
	}
}

func writeChildren(sb *strings.Builder, children []dom.Node, o Options) {
	for _, c := range children {
		writeNode(sb, c, o)
	}
}

// writeElement emits an element: opening tag with attributes in the
// tree's own enumeration order, the shadow sentinel block when a shadow
// tree is attached, light content (slot-polyfill override preferred),
// and a closing tag unless the element is void.
func writeElement(sb *strings.Builder, el *dom.Element, o Options) {
	if el == nil {
		return
	}
	tag := el.TagName()
	if o.ExcludeStyles && tag == "style" {
		return
	}

	sb.WriteByte('<')
	sb.WriteString(tag)
	for _, a := range el.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Qualified())
		// An empty value renders as a bare boolean attribute.
		if a.Value != "" {
			sb.WriteString(`="`)
			sb.WriteString(escapeAttr(a.Value))
			sb.WriteByte('"')
		}
	}
	sb.WriteByte('>')

	if isVoidElement(tag) {
		return
	}

	if o.IncludeShadow && el.Shadow != nil {
		sb.WriteByte('<')
		sb.WriteString(ShadowRootTag)
		if el.Shadow.DelegatesFocus {
			sb.WriteByte(' ')
			sb.WriteString(delegatesFocusAttr)
		}
		sb.WriteByte('>')
		writeChildren(sb, el.Shadow.Children, o)
		sb.WriteString("</")
		sb.WriteString(ShadowRootTag)
		sb.WriteByte('>')
	}

	writeChildren(sb, el.LightDOM(), o)

	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteByte('>')
}
