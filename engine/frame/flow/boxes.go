package flow

import "github.com/npillmayer/flowlayout/engine/dom"

// FoldAllBoxes folds fn over all boxes owned by flow r: at most one for
// block and root flows, all of them in order for inline flows.
// Other kinds of flows panic with a *VariantError.
func FoldAllBoxes[B any](t *Tree, r Ref, seed B, fn func(B, *RenderBox) B) B {
	acc := seed
	t.EachBox(r, func(box *RenderBox) {
		acc = fn(acc, box)
	})
	return acc
}

// FoldBoxesForNode is like FoldAllBoxes, restricted to boxes generated for
// document node n.
func FoldBoxesForNode[B any](t *Tree, r Ref, n dom.Node, seed B, fn func(B, *RenderBox) B) B {
	return FoldAllBoxes(t, r, seed, func(acc B, box *RenderBox) B {
		if box.Node == n {
			return fn(acc, box)
		}
		return acc
	})
}

// EachBox calls fn for every box owned by flow r.
func (t *Tree) EachBox(r Ref, fn func(*RenderBox)) {
	f := t.Flow(r)
	switch f.Kind {
	case RootFlow:
		if box := f.Root().Box; box != nil {
			fn(box)
		}
	case BlockFlow:
		if box := f.Block().Box; box != nil {
			fn(box)
		}
	case InlineFlow:
		for _, box := range f.Inline().Boxes {
			fn(box)
		}
	default:
		f.Mismatch("block, root or inline")
	}
}

// EachBoxForNode calls fn for every box of flow r generated for document
// node n.
func (t *Tree) EachBoxForNode(r Ref, n dom.Node, fn func(*RenderBox)) {
	t.EachBox(r, func(box *RenderBox) {
		if box.Node == n {
			fn(box)
		}
	})
}
