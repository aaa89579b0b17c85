package dom

import "strings"

// NodeKind is the node type discriminator.
type NodeKind uint8

const (
	KindElement  NodeKind = iota // <div>, <my-component>, etc.
	KindText                     // Plain text node
	KindComment                  // <!-- comment -->
	KindFragment                 // Grouping without wrapper
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// Node is the minimal capability every tree node exposes. The
// serializer renders this package's node types in full; a foreign
// implementation contributes only its children, so back-ends convert
// their trees into these types rather than implementing Node directly.
type Node interface {
	NodeKind() NodeKind
	ChildNodes() []Node
}

// Attr is a single element attribute. Prefix carries the namespace
// prefix for namespaced attributes (e.g. "xlink" in xlink:href).
type Attr struct {
	Name   string
	Prefix string
	Value  string
}

// Qualified returns the attribute name as it appears in markup,
// including the namespace prefix when present.
func (a Attr) Qualified() string {
	if a.Prefix != "" {
		return a.Prefix + ":" + a.Name
	}
	return a.Name
}

// Text is a text node.
type Text struct {
	Data string
}

// NewText creates a text node.
func NewText(data string) *Text {
	return &Text{Data: data}
}

// NodeKind implements Node.
func (t *Text) NodeKind() NodeKind { return KindText }

// ChildNodes implements Node. Text nodes have no children.
func (t *Text) ChildNodes() []Node { return nil }

// Comment is a comment node.
type Comment struct {
	Data string
}

// NewComment creates a comment node.
func NewComment(data string) *Comment {
	return &Comment{Data: data}
}

// NodeKind implements Node.
func (c *Comment) NodeKind() NodeKind { return KindComment }

// ChildNodes implements Node. Comment nodes have no children.
func (c *Comment) ChildNodes() []Node { return nil }

// Fragment groups nodes without a wrapping element.
type Fragment struct {
	Children []Node
}

// NewFragment creates a fragment with the given children.
func NewFragment(children ...Node) *Fragment {
	return &Fragment{Children: children}
}

// NodeKind implements Node.
func (f *Fragment) NodeKind() NodeKind { return KindFragment }

// ChildNodes implements Node.
func (f *Fragment) ChildNodes() []Node { return f.Children }

// Append adds children to the fragment.
func (f *Fragment) Append(children ...Node) *Fragment {
	f.Children = append(f.Children, children...)
	return f
}

// ShadowRoot is the encapsulated subtree attached to a host element.
// It is owned exclusively by its host and never shared.
type ShadowRoot struct {
	Children       []Node
	DelegatesFocus bool

	host *Element
}

// Host returns the element this shadow root is attached to.
func (s *ShadowRoot) Host() *Element { return s.host }

// NodeKind implements Node. A shadow root serializes like a fragment
// when passed directly to the serializer.
func (s *ShadowRoot) NodeKind() NodeKind { return KindFragment }

// ChildNodes implements Node.
func (s *ShadowRoot) ChildNodes() []Node { return s.Children }

// Append adds children to the shadow root.
func (s *ShadowRoot) Append(children ...Node) *ShadowRoot {
	s.Children = append(s.Children, children...)
	return s
}

// Element is an element node.
//
// Tag is the generic, case-insensitive tag name. LocalName, when set,
// is the case-preserving name and takes precedence during serialization
// (needed for namespaced markup such as SVG's foreignObject).
//
// LightChildren is the slot-polyfill override: under scoped (non-shadow)
// encapsulation the framework rewrites the public child accessors to
// serve projected content, stashing the true light DOM in a hidden list.
// When non-nil it takes precedence over Children for light-content
// serialization.
type Element struct {
	Tag           string
	LocalName     string
	Attrs         []Attr
	Children      []Node
	LightChildren []Node
	Props         map[string]any
	Shadow        *ShadowRoot

	listeners map[string][]Listener
	onRemove  []func()
	removed   bool
}

// NewElement creates an element with the given tag and children.
func NewElement(tag string, children ...Node) *Element {
	return &Element{Tag: tag, Children: children}
}

// NodeKind implements Node.
func (e *Element) NodeKind() NodeKind { return KindElement }

// ChildNodes implements Node. This is the public child list; callers
// that must honor the slot-polyfill override should use LightDOM.
func (e *Element) ChildNodes() []Node { return e.Children }

// TagName returns the serialized tag name: the case-preserving local
// name when the back-end provides one, otherwise the lowercased tag.
func (e *Element) TagName() string {
	if e.LocalName != "" {
		return e.LocalName
	}
	return strings.ToLower(e.Tag)
}

// LightDOM returns the element's true light content: the slot-polyfill
// override list when present, otherwise the public child list.
func (e *Element) LightDOM() []Node {
	if e.LightChildren != nil {
		return e.LightChildren
	}
	return e.Children
}

// Append adds children to the element.
func (e *Element) Append(children ...Node) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// SetAttribute sets an attribute, replacing an existing one of the same
// qualified name while keeping its position in enumeration order.
func (e *Element) SetAttribute(name, value string) *Element {
	for i, a := range e.Attrs {
		if a.Prefix == "" && a.Name == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// Attribute returns the value of the named attribute and whether it exists.
func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Qualified() == name {
			return a.Value, true
		}
	}
	return "", false
}

// ClassList returns the element's classes, split from the class attribute.
func (e *Element) ClassList() []string {
	v, ok := e.Attribute("class")
	if !ok {
		return nil
	}
	return strings.Fields(v)
}

// SetProp sets an element property (distinct from attributes).
func (e *Element) SetProp(name string, value any) *Element {
	if e.Props == nil {
		e.Props = make(map[string]any)
	}
	e.Props[name] = value
	return e
}

// Prop returns the named property and whether it exists.
func (e *Element) Prop(name string) (any, bool) {
	v, ok := e.Props[name]
	return v, ok
}

// AttachShadow attaches a shadow root to the element, replacing any
// existing one, and returns it.
func (e *Element) AttachShadow(delegatesFocus bool) *ShadowRoot {
	e.Shadow = &ShadowRoot{DelegatesFocus: delegatesFocus, host: e}
	return e.Shadow
}

// TextContent returns the concatenated text of the element's light
// descendants, honoring the slot-polyfill override.
func (e *Element) TextContent() string {
	var sb strings.Builder
	writeTextContent(&sb, e.LightDOM())
	return sb.String()
}

func writeTextContent(sb *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		switch t := n.(type) {
		case *Text:
			sb.WriteString(t.Data)
		case *Element:
			writeTextContent(sb, t.LightDOM())
		}
	}
}

// OnRemove registers a hook invoked exactly once when the element is
// removed. The spy registry uses this to release its side table.
func (e *Element) OnRemove(fn func()) {
	e.onRemove = append(e.onRemove, fn)
}

// Remove marks the element removed, drops its listeners, and fires the
// removal hooks. Further calls are no-ops.
func (e *Element) Remove() {
	if e.removed {
		return
	}
	e.removed = true
	e.listeners = nil
	hooks := e.onRemove
	e.onRemove = nil
	for _, fn := range hooks {
		fn()
	}
}

// Removed reports whether Remove has been called.
func (e *Element) Removed() bool { return e.removed }
