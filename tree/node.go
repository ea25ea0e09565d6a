// Package tree adapts concrete document trees to the nfa.Node interface
// the matching engine consumes: an in-memory GenericNode for tests and
// hand-built fixtures, and an adapter over golang.org/x/net/html for real
// HTML documents.
package tree

import "github.com/coregx/treexpr/nfa"

// GenericNode is a minimal in-memory nfa.Node implementation, useful for
// building test fixtures and for any caller constructing a document tree
// directly instead of parsing one.
type GenericNode struct {
	TagName     string
	HasTagName  bool
	Text        string
	HasText     bool
	NodeAttrs   []nfa.Attr
	FirstChild  *GenericNode
	Next        *GenericNode
}

// NewElement returns a named GenericNode with no content or attributes.
func NewElement(name string) *GenericNode {
	return &GenericNode{TagName: name, HasTagName: true}
}

// NewText returns a content-only GenericNode with no tag name. Unlike
// HTMLNode, which exposes an HTML text node under the pseudo-name "text",
// the returned node is matched only by the wildcard symbol ".".
func NewText(text string) *GenericNode {
	return &GenericNode{Text: text, HasText: true}
}

// WithAttr appends an attribute and returns the receiver, for fixture
// building convenience.
func (n *GenericNode) WithAttr(name, value string) *GenericNode {
	n.NodeAttrs = append(n.NodeAttrs, nfa.Attr{Name: name, Value: value, HasValue: true})
	return n
}

// WithChildren sets the node's first child to the head of the given
// sibling chain and returns the receiver.
func (n *GenericNode) WithChildren(children ...*GenericNode) *GenericNode {
	for i := 0; i < len(children)-1; i++ {
		children[i].Next = children[i+1]
	}
	if len(children) > 0 {
		n.FirstChild = children[0]
	}
	return n
}

// Name implements nfa.Node.
func (n *GenericNode) Name() (string, bool) { return n.TagName, n.HasTagName }

// Content implements nfa.Node.
func (n *GenericNode) Content() (string, bool) { return n.Text, n.HasText }

// Attributes implements nfa.Node.
func (n *GenericNode) Attributes() []nfa.Attr { return n.NodeAttrs }

// Children implements nfa.Node.
func (n *GenericNode) Children() nfa.Node {
	if n.FirstChild == nil {
		return nil
	}
	return n.FirstChild
}

// NextSibling implements nfa.Node.
func (n *GenericNode) NextSibling() nfa.Node {
	if n.Next == nil {
		return nil
	}
	return n.Next
}
