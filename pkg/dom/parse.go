package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseFragment parses an HTML fragment into capability-model nodes.
// Parsing happens in body context, so fixtures can be plain snippets
// without html/head/body wrappers. Only the fragment's own content is
// returned; no wrapper element is added.
func ParseFragment(markup string) (*Fragment, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	parsed, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, err
	}
	frag := &Fragment{}
	for _, n := range parsed {
		if converted := convertNode(n); converted != nil {
			frag.Children = append(frag.Children, converted)
		}
	}
	return frag, nil
}

// convertNode maps a parsed html.Node to a capability-model node.
// Doctype and document nodes have no place in a fragment and map to nil.
func convertNode(n *html.Node) Node {
	switch n.Type {
	case html.ElementNode:
		el := &Element{Tag: n.Data}
		// Foreign content (SVG, MathML) carries case-sensitive names
		// such as foreignObject; keep them in the case-preserving slot
		// so serialization does not lowercase them.
		if n.Data != strings.ToLower(n.Data) {
			el.LocalName = n.Data
		}
		for _, a := range n.Attr {
			el.Attrs = append(el.Attrs, Attr{
				Name:   a.Key,
				Prefix: a.Namespace,
				Value:  a.Val,
			})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if converted := convertNode(c); converted != nil {
				el.Children = append(el.Children, converted)
			}
		}
		return el
	case html.TextNode:
		return &Text{Data: n.Data}
	case html.CommentNode:
		return &Comment{Data: n.Data}
	default:
		return nil
	}
}
