package displaylist

import (
	"image/color"

	"github.com/npillmayer/flowlayout/core/dimen"
	"github.com/npillmayer/flowlayout/engine/frame/flow"
	"github.com/npillmayer/schuko/tracing"
)

// TextColor and BorderColor are used for all text and border items.
var (
	TextColor   = color.RGBA{A: 0xff}
	BorderColor = color.RGBA{A: 0xff}
)

// Builder creates display lists from laid out flow trees.
type Builder struct {
	Tracer tracing.Trace
}

// NewBuilder creates a display list builder.
func NewBuilder() *Builder {
	return &Builder{Tracer: tracer()}
}

// Build creates the display list for tree. Items not intersecting dirty
// are left out. The tree has to be laid out.
//
// Build panics with a *flow.VariantError for flows other than root, block
// and inline flows.
func (b *Builder) Build(tree *flow.Tree, dirty dimen.Rect) *DisplayList {
	list := &DisplayList{}
	if tree.Root() == flow.NoFlow {
		return list
	}
	b.BuildRecurse(tree, tree.Root(), dirty, dimen.Origin, list)
	b.trace().Debugf("display list for %v has %d items", dirty, list.Len())
	return list
}

// BuildRecurse appends the items of flow r and its descendants to list.
// offset is the absolute position of the parent of r.
func (b *Builder) BuildRecurse(tree *flow.Tree, r flow.Ref, dirty dimen.Rect,
	offset dimen.Point, list *DisplayList) {
	//
	f := tree.Flow(r)
	origin := offset.Add(f.Position.TopL)
	switch f.Kind {
	case flow.RootFlow, flow.BlockFlow, flow.InlineFlow:
		tree.EachBox(r, func(box *flow.RenderBox) {
			b.addBoxItems(box, dirty, origin, list)
		})
	default:
		f.Mismatch("block, root or inline")
	}
	tree.EachChild(r, func(c flow.Ref) bool {
		b.BuildRecurse(tree, c, dirty, origin, list)
		return true
	})
}

func (b *Builder) addBoxItems(box *flow.RenderBox, dirty dimen.Rect, origin dimen.Point,
	list *DisplayList) {
	//
	bounds := box.Position.Translate(origin)
	if !bounds.Intersects(dirty) {
		b.trace().Debugf("skipping %v at %v", box, bounds)
		return
	}
	if box.Background.A != 0 {
		list.Append(Item{Kind: SolidColor, Bounds: bounds, Box: box.ID, Node: box.Node,
			Color: box.Background})
	}
	if box.Border > 0 {
		list.Append(Item{Kind: Border, Bounds: bounds, Box: box.ID, Node: box.Node,
			Color: BorderColor, Width: box.Border})
	}
	if box.IsText() {
		list.Append(Item{Kind: Text, Bounds: bounds, Box: box.ID, Node: box.Node,
			Text: box.Text, Color: TextColor})
	}
}

func (b *Builder) trace() tracing.Trace {
	if b.Tracer == nil {
		return tracer()
	}
	return b.Tracer
}
