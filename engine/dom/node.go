/*
Package dom provides handles to document nodes.

Layout refers to document nodes only to bind flows and render boxes to the
content they were generated from. A Node is a thin, comparable handle around
a node of an HTML parse tree (golang.org/x/net/html). Two handles are equal
if and only if they refer to the same document node; structural equality of
content is never considered.

Querying is supported by CSS selectors (package cascadia) and by XPath
(package antchfx/xpath).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/flowlayout/core"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'flowlayout.dom'.
func tracer() tracing.Trace {
	return tracing.Select("flowlayout.dom")
}

// Node is an identity-comparable handle to a document node.
type Node struct {
	h *html.Node
}

// Null is the handle bound to no document node.
var Null = Node{}

// FromHTML wraps an HTML parse tree node.
func FromHTML(h *html.Node) Node {
	return Node{h: h}
}

// Parse reads an HTML document and returns its document node.
func Parse(r io.Reader) (Node, error) {
	h, err := html.Parse(r)
	if err != nil {
		return Null, core.WrapError(err, core.EINVALID, "cannot parse HTML document")
	}
	return Node{h: h}, nil
}

// HTMLNode returns the underlying HTML node.
func (n Node) HTMLNode() *html.Node {
	return n.h
}

// IsNull is true for a handle bound to no node.
func (n Node) IsNull() bool {
	return n.h == nil
}

// IsDocument is true for the root node of a document.
func (n Node) IsDocument() bool {
	return n.h != nil && n.h.Type == html.DocumentNode
}

// IsElement is true for element nodes.
func (n Node) IsElement() bool {
	return n.h != nil && n.h.Type == html.ElementNode
}

// IsText is true for text nodes.
func (n Node) IsText() bool {
	return n.h != nil && n.h.Type == html.TextNode
}

// NodeName returns the tag name of an element, "#text" for text nodes
// and "#document" for the document node.
func (n Node) NodeName() string {
	if n.h == nil {
		return ""
	}
	switch n.h.Type {
	case html.DocumentNode:
		return "#document"
	case html.TextNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	}
	return n.h.Data
}

// Text returns the content of a text node.
func (n Node) Text() string {
	if !n.IsText() {
		return ""
	}
	return n.h.Data
}

// Attr returns the value of an attribute of an element node.
func (n Node) Attr(key string) (string, bool) {
	if n.h == nil {
		return "", false
	}
	for _, a := range n.h.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Parent returns the parent node, or Null.
func (n Node) Parent() Node {
	if n.h == nil {
		return Null
	}
	return Node{h: n.h.Parent}
}

// Children returns the child nodes in document order.
func (n Node) Children() []Node {
	if n.h == nil {
		return nil
	}
	var children []Node
	for c := n.h.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, Node{h: c})
	}
	return children
}

func (n Node) String() string {
	if n.h == nil {
		return "DOM(null)"
	}
	if n.IsText() {
		return fmt.Sprintf("DOM(#text/%s)", shortText(n.h.Data))
	}
	return fmt.Sprintf("DOM(%s)", n.NodeName())
}

func shortText(s string) string {
	if len(s) > 10 {
		s = s[:10] + "…"
	}
	s = strings.Replace(s, "\n", `\n`, -1)
	s = strings.Replace(s, "\t", `\t`, -1)
	return "\"" + s + "\""
}
