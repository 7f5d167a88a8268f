package flow

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/flowlayout/engine/dom"
)

// Ref is a handle for a flow within a Tree.
type Ref int32

// NoFlow is the handle denoting no flow.
const NoFlow Ref = -1

// Tree is an arena of flows. Flows are never removed from a tree.
//
// A tree is not safe for concurrent mutation. Independent trees may be
// laid out concurrently.
type Tree struct {
	flows    []*Flow
	root     Ref
	boxCount int
}

// NewTree creates an empty flow tree.
func NewTree() *Tree {
	return &Tree{root: NoFlow}
}

// NewFlow creates a flow of kind k, bound to document node n (which may be
// dom.Null). Only one root flow may be created per tree.
func (t *Tree) NewFlow(k Kind, n dom.Node) Ref {
	r := Ref(len(t.flows))
	f := &Flow{
		ID:     len(t.flows) + 1,
		Kind:   k,
		Node:   n,
		parent: NoFlow,
	}
	switch k {
	case BlockFlow:
		f.payload = &BlockData{}
	case RootFlow:
		if t.root != NoFlow {
			panic(fmt.Sprintf("flow tree already has root flow f%d", t.flows[t.root].ID))
		}
		f.payload = &RootData{}
		t.root = r
	case InlineFlow:
		f.payload = &InlineData{}
	}
	t.flows = append(t.flows, f)
	return r
}

// NewBox creates a render box with an ID unique within the tree. The box
// still has to be attached to a flow.
func (t *Tree) NewBox(k BoxKind, n dom.Node) *RenderBox {
	t.boxCount++
	return &RenderBox{ID: t.boxCount, Kind: k, Node: n}
}

// Flow returns the flow for handle r.
func (t *Tree) Flow(r Ref) *Flow {
	if r < 0 || int(r) >= len(t.flows) {
		panic(fmt.Sprintf("invalid flow reference %d", r))
	}
	return t.flows[r]
}

// Root returns the root flow, or NoFlow.
func (t *Tree) Root() Ref {
	return t.root
}

// Len returns the number of flows in the tree.
func (t *Tree) Len() int {
	return len(t.flows)
}

// Equal is true if a and b denote the same flow.
func (t *Tree) Equal(a, b Ref) bool {
	return a == b
}

// AddChild appends child as the last child of parent.
// It panics if child already has a parent, is the root flow, or is an
// ancestor of parent.
func (t *Tree) AddChild(parent, child Ref) {
	p, c := t.Flow(parent), t.Flow(child)
	if c.parent != NoFlow {
		panic(fmt.Sprintf("flow f%d already has parent f%d", c.ID, t.flows[c.parent].ID))
	}
	if child == t.root {
		panic(fmt.Sprintf("root flow f%d cannot be a child", c.ID))
	}
	for a := parent; a != NoFlow; a = t.flows[a].parent {
		if a == child {
			panic(fmt.Sprintf("adding f%d to f%d would create a cycle", c.ID, p.ID))
		}
	}
	c.parent = parent
	p.children = append(p.children, child)
}

// Parent returns the parent of r, or NoFlow.
func (t *Tree) Parent(r Ref) Ref {
	return t.Flow(r).parent
}

// ChildCount returns the number of children of r.
func (t *Tree) ChildCount(r Ref) int {
	return len(t.Flow(r).children)
}

// Children returns a copy of the children of r, in insertion order.
func (t *Tree) Children(r Ref) []Ref {
	ch := t.Flow(r).children
	return append(make([]Ref, 0, len(ch)), ch...)
}

// EachChild calls visit for every child of r in insertion order, until
// visit returns false.
func (t *Tree) EachChild(r Ref, visit func(Ref) bool) {
	for _, c := range t.Flow(r).children {
		if !visit(c) {
			return
		}
	}
}

// PreOrder calls fn for r and all its descendants, parents before children.
func (t *Tree) PreOrder(r Ref, fn func(Ref)) {
	stack := arraystack.New()
	stack.Push(r)
	for !stack.Empty() {
		top, _ := stack.Pop()
		cur := top.(Ref)
		fn(cur)
		ch := t.flows[cur].children
		for i := len(ch) - 1; i >= 0; i-- {
			stack.Push(ch[i])
		}
	}
}

type visit struct {
	ref  Ref
	next int // next child to descend into
}

// PostOrder calls fn for r and all its descendants, children before parents.
// Children are visited in insertion order.
func (t *Tree) PostOrder(r Ref, fn func(Ref)) {
	stack := arraystack.New()
	stack.Push(&visit{ref: r})
	for !stack.Empty() {
		top, _ := stack.Peek()
		v := top.(*visit)
		if ch := t.flows[v.ref].children; v.next < len(ch) {
			stack.Push(&visit{ref: ch[v.next]})
			v.next++
			continue
		}
		stack.Pop()
		fn(v.ref)
	}
}

// SetBox attaches box to a block or root flow, replacing a previous one.
func (t *Tree) SetBox(r Ref, box *RenderBox) {
	f := t.Flow(r)
	switch f.Kind {
	case BlockFlow:
		f.Block().Box = box
	case RootFlow:
		f.Root().Box = box
	default:
		f.Mismatch("block or root")
	}
}

// AppendBox appends box to the boxes of an inline flow and returns its index.
func (t *Tree) AppendBox(r Ref, box *RenderBox) int {
	in := t.Flow(r).Inline()
	in.Boxes = append(in.Boxes, box)
	return len(in.Boxes) - 1
}

// AddNodeRange records that boxes in rng of inline flow r have been
// generated for document node n.
func (t *Tree) AddNodeRange(r Ref, n dom.Node, rng BoxRange) {
	in := t.Flow(r).Inline()
	if rng.Start < 0 || rng.End() > len(in.Boxes) {
		panic(fmt.Sprintf("box range %v out of bounds for flow f%d", rng, t.Flow(r).ID))
	}
	in.Elems = append(in.Elems, NodeRange{Node: n, Range: rng})
}
