package tree

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/coregx/treexpr/nfa"
)

// HTMLNode adapts a *html.Node, as parsed by golang.org/x/net/html, to the
// nfa.Node interface.
//
// The underlying parser represents every piece of a document as a node,
// not just elements: free text between tags, comments, and the doctype
// declaration all get their own *html.Node with no tag name. Rather than
// drop them (losing the ability to write a pattern that restricts on text
// content or walks past a comment), HTMLNode exposes them under the
// pseudo-names "text", "comment", and "doctype", so a pattern can target
// them by name (e.g. text:"ab*c" matches a text node whose content matches
// "ab*c") the same way it targets a real tag name.
type HTMLNode struct {
	n *html.Node
}

// Wrap adapts an *html.Node into an nfa.Node. Returns nil for a nil input
// so callers can chain FirstChild/NextSibling without a separate nil
// check.
func Wrap(n *html.Node) *HTMLNode {
	if n == nil {
		return nil
	}
	return &HTMLNode{n: n}
}

// Name implements nfa.Node. Element nodes report their tag name; text,
// comment, and doctype nodes report their pseudo-name (see PseudoName).
// Only a DocumentNode itself (never exposed by ParseDocument or
// ParseFragment) reports ok == false.
func (h *HTMLNode) Name() (string, bool) {
	if h.n.Type == html.ElementNode {
		return h.n.Data, true
	}
	if pseudo := h.PseudoName(); pseudo != "" {
		return pseudo, true
	}
	return "", false
}

// Content implements nfa.Node: the literal text of a text node, or the
// comment body of a comment node. Element nodes have no direct content of
// their own (their text lives in child text nodes), so they report
// ok == false.
func (h *HTMLNode) Content() (string, bool) {
	switch h.n.Type {
	case html.TextNode, html.CommentNode:
		return h.n.Data, true
	default:
		return "", false
	}
}

// Attributes implements nfa.Node.
func (h *HTMLNode) Attributes() []nfa.Attr {
	if len(h.n.Attr) == 0 {
		return nil
	}
	attrs := make([]nfa.Attr, len(h.n.Attr))
	for i, a := range h.n.Attr {
		attrs[i] = nfa.Attr{Name: a.Key, Value: a.Val, HasValue: true}
	}
	return attrs
}

// Children implements nfa.Node.
func (h *HTMLNode) Children() nfa.Node {
	return wrapOrNil(h.n.FirstChild)
}

// NextSibling implements nfa.Node.
func (h *HTMLNode) NextSibling() nfa.Node {
	return wrapOrNil(h.n.NextSibling)
}

func wrapOrNil(n *html.Node) nfa.Node {
	if n == nil {
		return nil
	}
	return &HTMLNode{n: n}
}

// PseudoName returns the non-element pseudo-name this node is addressed
// by in pattern text ("text", "comment", "doctype"), or "" for an element
// node (which uses its real tag name) or a document root.
func (h *HTMLNode) PseudoName() string {
	switch h.n.Type {
	case html.TextNode:
		return "text"
	case html.CommentNode:
		return "comment"
	case html.DoctypeNode:
		return "doctype"
	default:
		return ""
	}
}

// ParseDocument parses an HTML document and returns its entry point: the
// first node a top-level pattern should be run against.
//
// golang.org/x/net/html always returns a DocumentNode root whose children
// are the document's real top-level content (typically a single <html>
// element, possibly preceded by a doctype declaration and surrounding
// whitespace text nodes). A pattern written against "the document" means
// matching against that real content, not the synthetic root, so
// ParseDocument skips over a leading DoctypeNode child (mirroring how the
// reference implementation's libxml2-based tree exposed a document-type
// placeholder ahead of the real root element) and returns the first
// sibling after it. A document with no doctype returns its first child
// unchanged.
func ParseDocument(r io.Reader) (nfa.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return documentRoot(doc), nil
}

// ParseFragment parses an HTML fragment whose top-level children should be
// matched against directly (e.g. "<li>one</li><li>two</li>" with no
// enclosing document), returning the first of those children.
func ParseFragment(htmlText string) (nfa.Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(htmlText), context)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, nil
	}
	// html.ParseFragment detaches each returned node from the synthetic
	// context node, clearing its sibling links, so relink them here for the
	// first node's NextSibling chain to reach the rest.
	for i := 0; i < len(nodes)-1; i++ {
		nodes[i].NextSibling = nodes[i+1]
		nodes[i+1].PrevSibling = nodes[i]
	}
	return Wrap(nodes[0]), nil
}

func documentRoot(doc *html.Node) nfa.Node {
	first := doc.FirstChild
	if first != nil && first.Type == html.DoctypeNode {
		first = first.NextSibling
	}
	return wrapOrNil(first)
}
