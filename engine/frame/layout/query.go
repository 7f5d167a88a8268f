package layout

import (
	"github.com/npillmayer/flowlayout/core/dimen"
	"github.com/npillmayer/flowlayout/engine/dom"
	"github.com/npillmayer/flowlayout/engine/frame/flow"
)

// Q is a query on a laid out flow tree.
type Q struct {
	tree   *flow.Tree
	assoc  *domToFlowAssoc
	origin map[flow.Ref]dimen.Point // absolute origins of flows
}

// Query prepares queries on a flow tree which has been laid out.
func Query(tree *flow.Tree) *Q {
	q := &Q{
		tree:   tree,
		assoc:  indexTree(tree),
		origin: make(map[flow.Ref]dimen.Point, tree.Len()),
	}
	if tree.Root() == flow.NoFlow {
		return q
	}
	tree.PreOrder(tree.Root(), func(r flow.Ref) {
		var base dimen.Point
		if p := tree.Parent(r); p != flow.NoFlow {
			base = q.origin[p]
		}
		q.origin[r] = base.Add(tree.Flow(r).Position.TopL)
	})
	return q
}

// Origin returns the absolute position of the top left corner of flow r.
func (q *Q) Origin(r flow.Ref) dimen.Point {
	return q.origin[r]
}

// Flows returns all flows generated for a document node.
func (q *Q) Flows(n dom.Node) []flow.Ref {
	refs, _ := q.assoc.Get(n)
	return refs
}

// ClientRects returns the rectangles, in absolute coordinates, occupied by
// a document node. Flows generated for n contribute their rectangle, other
// flows contribute the boxes generated for n (either directly or as part of
// an inline element).
func (q *Q) ClientRects(n dom.Node) []dimen.Rect {
	if n.IsNull() || q.tree.Root() == flow.NoFlow {
		return nil
	}
	var rects []dimen.Rect
	q.tree.PreOrder(q.tree.Root(), func(r flow.Ref) {
		f := q.tree.Flow(r)
		origin := q.origin[r]
		if f.Node == n {
			rects = append(rects, dimen.Rect{TopL: origin, Size: f.Position.Size})
			return
		}
		switch f.Kind {
		case flow.InlineFlow:
			in := f.Inline()
			for i, box := range in.Boxes {
				if box.Node == n || inElement(in.Elems, n, i) {
					rects = append(rects, box.Position.Translate(origin))
				}
			}
		case flow.RootFlow, flow.BlockFlow:
			q.tree.EachBoxForNode(r, n, func(box *flow.RenderBox) {
				rects = append(rects, box.Position.Translate(origin))
			})
		}
	})
	return rects
}

// BoundingRect returns the union of all client rects of n.
func (q *Q) BoundingRect(n dom.Node) (dimen.Rect, bool) {
	rects := q.ClientRects(n)
	if len(rects) == 0 {
		return dimen.ZeroRect, false
	}
	bbox := rects[0]
	for _, r := range rects[1:] {
		bbox = bbox.Union(r)
	}
	return bbox, true
}

func inElement(elems []flow.NodeRange, n dom.Node, i int) bool {
	for _, e := range elems {
		if e.Node == n && e.Range.Contains(i) {
			return true
		}
	}
	return false
}
