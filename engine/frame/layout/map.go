package layout

import (
	"sync"

	"github.com/npillmayer/flowlayout/engine/dom"
	"github.com/npillmayer/flowlayout/engine/frame/flow"
	"golang.org/x/net/html"
)

// domToFlowAssoc associates document nodes with the flows generated for
// them. Lookups may run concurrently with each other.
type domToFlowAssoc struct {
	sync.RWMutex
	m map[*html.Node][]flow.Ref
}

func newAssoc() *domToFlowAssoc {
	return &domToFlowAssoc{
		m: make(map[*html.Node][]flow.Ref),
	}
}

// indexTree creates an association for all flows of tree bound to a
// document node.
func indexTree(tree *flow.Tree) *domToFlowAssoc {
	d2f := newAssoc()
	if tree.Root() == flow.NoFlow {
		return d2f
	}
	tree.PreOrder(tree.Root(), func(r flow.Ref) {
		if n := tree.Flow(r).Node; !n.IsNull() {
			d2f.Put(n, r)
		}
	})
	return d2f
}

func (d2f *domToFlowAssoc) Put(domnode dom.Node, r flow.Ref) {
	d2f.Lock()
	defer d2f.Unlock()
	d2f.m[domnode.HTMLNode()] = append(d2f.m[domnode.HTMLNode()], r)
}

func (d2f *domToFlowAssoc) Get(domnode dom.Node) ([]flow.Ref, bool) {
	d2f.RLock()
	defer d2f.RUnlock()
	refs, ok := d2f.m[domnode.HTMLNode()]
	return refs, ok
}

func (d2f *domToFlowAssoc) Length() int {
	d2f.RLock()
	defer d2f.RUnlock()
	return len(d2f.m)
}
