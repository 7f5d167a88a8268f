package layout

import (
	"github.com/npillmayer/flowlayout/core"
	"github.com/npillmayer/flowlayout/core/dimen"
	"github.com/npillmayer/flowlayout/engine/frame/flow"
	"golang.org/x/sync/errgroup"
)

// Invaluable:
// https://developer.mozilla.org/en-US/docs/Web/CSS/Visual_formatting_model

const supported = "block, root or inline"

// Layout runs all layout passes over tree. If a pass meets a flow of a kind
// it cannot handle, layout is aborted and an error with code
// core.EINTERNAL is returned. The tree is left partially laid out.
func Layout(ctx *Context, tree *flow.Tree) (err error) {
	if tree.Root() == flow.NoFlow {
		return core.Error(core.EMISSING, "flow tree has no root flow")
	}
	defer func() {
		if r := recover(); r != nil {
			verr, ok := r.(*flow.VariantError)
			if !ok {
				panic(r)
			}
			ctx.trace().Errorf("layout aborted: %v", verr)
			err = core.WrapError(verr, core.EINTERNAL, "layout aborted")
		}
	}()
	BubbleWidths(ctx, tree)
	AssignWidths(ctx, tree)
	AssignHeight(ctx, tree)
	return nil
}

// LayoutAll lays out independent flow trees concurrently. It returns the
// first error encountered, if any.
func LayoutAll(ctx *Context, trees []*flow.Tree) error {
	var g errgroup.Group
	for _, tree := range trees {
		tree := tree
		g.Go(func() error {
			return Layout(ctx, tree)
		})
	}
	return g.Wait()
}

// --- Width bubbling --------------------------------------------------------

// BubbleWidths computes minimum and preferred widths for all flows of tree,
// children before parents.
func BubbleWidths(ctx *Context, tree *flow.Tree) {
	if tree.Root() == flow.NoFlow {
		return
	}
	tree.PostOrder(tree.Root(), func(r flow.Ref) {
		f := tree.Flow(r)
		switch f.Kind {
		case flow.RootFlow, flow.BlockFlow:
			bubbleWidthsBlock(tree, r)
		case flow.InlineFlow:
			bubbleWidthsInline(tree, r)
		default:
			f.Mismatch(supported)
		}
		ctx.trace().Debugf("bubble widths %s: min=%v, pref=%v", f, f.MinWidth, f.PrefWidth)
	})
}

// Block and root flows: the widest of their box and their children.
func bubbleWidthsBlock(tree *flow.Tree, r flow.Ref) {
	var min, pref dimen.DU
	tree.EachBox(r, func(box *flow.RenderBox) {
		min, pref = box.MinWidth, box.PrefWidth
	})
	tree.EachChild(r, func(c flow.Ref) bool {
		child := tree.Flow(c)
		min = dimen.Max(min, child.MinWidth)
		pref = dimen.Max(pref, child.PrefWidth)
		return true
	})
	f := tree.Flow(r)
	f.SetMinWidth(min)
	f.SetPrefWidth(dimen.Max(min, pref))
}

// Inline flows: the preferred width is the longest line if breaking only
// at forced breaks, the minimum width is the widest single box.
// Child flows count as atomic items on a line of their own.
func bubbleWidthsInline(tree *flow.Tree, r flow.Ref) {
	var min, pref, line dimen.DU
	for _, box := range tree.Flow(r).Inline().Boxes {
		min = dimen.Max(min, box.MinWidth)
		line += box.PrefWidth
		if box.ForcedBreak {
			pref = dimen.Max(pref, line)
			line = 0
		}
	}
	pref = dimen.Max(pref, line)
	tree.EachChild(r, func(c flow.Ref) bool {
		child := tree.Flow(c)
		min = dimen.Max(min, child.MinWidth)
		pref = dimen.Max(pref, child.PrefWidth)
		return true
	})
	f := tree.Flow(r)
	f.SetMinWidth(min)
	f.SetPrefWidth(dimen.Max(min, pref))
}

// --- Width assignment ------------------------------------------------------

// AssignWidths assigns widths to all flows of tree, parents before
// children. The root flow gets the width of the viewport, every other flow
// the width made available by its parent.
func AssignWidths(ctx *Context, tree *flow.Tree) {
	root := tree.Root()
	if root == flow.NoFlow {
		return
	}
	f := tree.Flow(root)
	f.Position.TopL = dimen.Origin
	f.Position.W = ctx.Viewport.W
	tree.PreOrder(root, func(r flow.Ref) {
		f := tree.Flow(r)
		switch f.Kind {
		case flow.RootFlow, flow.BlockFlow:
			tree.EachBox(r, func(box *flow.RenderBox) {
				box.Position.TopL = dimen.Origin
				box.Position.W = f.Position.W
			})
		case flow.InlineFlow:
			in := f.Inline()
			in.Lines = BreakLines(in.Boxes, f.Position.W)
		default:
			f.Mismatch(supported)
		}
		tree.EachChild(r, func(c flow.Ref) bool {
			child := tree.Flow(c)
			child.Position.TopL.X = 0
			child.Position.W = f.Position.W
			return true
		})
		ctx.trace().Debugf("assign widths %s: w=%v", f, f.Position.W)
	})
}

// BreakLines breaks a sequence of boxes into lines of a given width.
// Boxes are packed first-fit in sequence order. A box not fitting onto a
// non-empty line starts a new line, a box wider than the line width is set
// on a line of its own. A forced break ends the line after its box.
//
// Boxes get their horizontal position within the line; line bounds have
// their height left unset.
func BreakLines(boxes []*flow.RenderBox, width dimen.DU) []flow.LineBox {
	var lines []flow.LineBox
	start := 0
	var x dimen.DU
	closeLine := func(end int) {
		lines = append(lines, flow.LineBox{
			Range:  flow.BoxRange{Start: start, Len: end - start},
			Bounds: dimen.Rect{Size: dimen.Size{W: x}},
		})
		start, x = end, 0
	}
	for i, box := range boxes {
		w := box.PrefWidth
		if i > start && x+w > width {
			closeLine(i)
		}
		box.Position.TopL.X = x
		box.Position.W = w
		x += w
		if box.ForcedBreak {
			closeLine(i + 1)
		}
	}
	if start < len(boxes) {
		closeLine(len(boxes))
	}
	return lines
}

// --- Height assignment -----------------------------------------------------

// AssignHeight computes heights for all flows of tree, children before
// parents, and places children below each other.
func AssignHeight(ctx *Context, tree *flow.Tree) {
	if tree.Root() == flow.NoFlow {
		return
	}
	tree.PostOrder(tree.Root(), func(r flow.Ref) {
		f := tree.Flow(r)
		switch f.Kind {
		case flow.RootFlow, flow.BlockFlow:
			assignHeightBlock(tree, r)
		case flow.InlineFlow:
			assignHeightInline(ctx, tree, r)
		default:
			f.Mismatch(supported)
		}
		ctx.trace().Debugf("assign height %s: h=%v", f, f.Position.H)
	})
}

func stackChildren(tree *flow.Tree, r flow.Ref, y dimen.DU) dimen.DU {
	tree.EachChild(r, func(c flow.Ref) bool {
		child := tree.Flow(c)
		child.Position.TopL = dimen.Point{X: 0, Y: y}
		y += child.Position.H
		return true
	})
	return y
}

func assignHeightBlock(tree *flow.Tree, r flow.Ref) {
	f := tree.Flow(r)
	h := stackChildren(tree, r, 0)
	tree.EachBox(r, func(box *flow.RenderBox) {
		h = dimen.Max(h, box.Height)
	})
	f.Position.H = h
	tree.EachBox(r, func(box *flow.RenderBox) {
		box.Position = dimen.Rect{Size: f.Position.Size}
	})
}

// Lines are as high as their tallest box, but at least ctx.LineHeight.
// Boxes are top-aligned.
func assignHeightInline(ctx *Context, tree *flow.Tree, r flow.Ref) {
	f := tree.Flow(r)
	in := f.Inline()
	var y dimen.DU
	for i := range in.Lines {
		line := &in.Lines[i]
		lh := ctx.LineHeight
		for _, box := range in.Boxes[line.Range.Start:line.Range.End()] {
			lh = dimen.Max(lh, box.Height)
		}
		line.Bounds.TopL.Y = y
		line.Bounds.H = lh
		for _, box := range in.Boxes[line.Range.Start:line.Range.End()] {
			box.Position.TopL.Y = y
			box.Position.H = box.Height
		}
		y += lh
	}
	f.Position.H = stackChildren(tree, r, y)
}
