package dom

import (
	"github.com/andybalholm/cascadia"
	"github.com/antchfx/xpath"
	"github.com/npillmayer/flowlayout/core"
)

// Selector is a compiled CSS selector.
type Selector struct {
	sel cascadia.Selector
	src string
}

// CompileSelector compiles a CSS selector.
func CompileSelector(s string) (Selector, error) {
	sel, err := cascadia.Compile(s)
	if err != nil {
		return Selector{}, core.WrapError(err, core.EINVALID, "illegal selector %q", s)
	}
	return Selector{sel: sel, src: s}, nil
}

// Matches is true if n is an element matched by the selector.
func (s Selector) Matches(n Node) bool {
	if s.sel == nil || !n.IsElement() {
		return false
	}
	return s.sel.Match(n.h)
}

func (s Selector) String() string {
	return s.src
}

// Select returns all descendants of root matching a CSS selector, in
// document order.
func Select(root Node, selector string) ([]Node, error) {
	s, err := CompileSelector(selector)
	if err != nil {
		return nil, err
	}
	if root.IsNull() {
		return nil, nil
	}
	var nodes []Node
	for _, h := range s.sel.MatchAll(root.h) {
		nodes = append(nodes, Node{h: h})
	}
	return nodes, nil
}

// XPath evaluates an XPath expression with root as context node and returns
// all nodes selected.
func XPath(root Node, expr string) ([]Node, error) {
	x, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "illegal XPath %q", expr)
	}
	if root.IsNull() {
		return nil, nil
	}
	var nodes []Node
	iter := x.Select(NewNavigator(root))
	for iter.MoveNext() {
		nav, ok := iter.Current().(*NodeNavigator)
		if !ok {
			continue
		}
		nodes = append(nodes, nav.Current())
	}
	tracer().Debugf("XPath %q selected %d nodes", expr, len(nodes))
	return nodes, nil
}
