package displaylist

import (
	"image/color"
	"testing"

	"github.com/npillmayer/flowlayout/core/dimen"
	"github.com/npillmayer/flowlayout/engine/dom"
	"github.com/npillmayer/flowlayout/engine/frame/flow"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{R: 0xff, A: 0xff}

// laidOut creates a flow tree with positions set by hand:
//
//	root (0,0 100x60)
//	  block (0,10 100x50), box with background and border
//	    inline (0,5 100x20), text boxes "a" (0,0 10x10) and "b" (40,10 10x10)
func laidOut() (*flow.Tree, flow.Ref) {
	tree := flow.NewTree()
	root := tree.NewFlow(flow.RootFlow, dom.Null)
	tree.Flow(root).Position = dimen.R(0, 0, 100, 60)
	blk := tree.NewFlow(flow.BlockFlow, dom.Null)
	tree.AddChild(root, blk)
	tree.Flow(blk).Position = dimen.R(0, 10, 100, 50)
	box := tree.NewBox(flow.GenericBox, dom.Null)
	box.Background, box.Border = red, 2
	box.Position = dimen.R(0, 0, 100, 50)
	tree.SetBox(blk, box)
	in := tree.NewFlow(flow.InlineFlow, dom.Null)
	tree.AddChild(blk, in)
	tree.Flow(in).Position = dimen.R(0, 5, 100, 20)
	a := tree.NewBox(flow.TextBox, dom.Null)
	a.Text, a.Position = "a", dimen.R(0, 0, 10, 10)
	b := tree.NewBox(flow.TextBox, dom.Null)
	b.Text, b.Position = "b", dimen.R(40, 10, 10, 10)
	tree.AppendBox(in, a)
	tree.AppendBox(in, b)
	return tree, in
}

func TestBuildOrderAndOffsets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.displaylist")
	defer teardown()
	//
	tree, _ := laidOut()
	list := NewBuilder().Build(tree, dimen.R(0, 0, 100, 100))
	require.Equal(t, 4, list.Len())
	kinds := []ItemKind{}
	for _, it := range list.Items {
		kinds = append(kinds, it.Kind)
	}
	assert.Equal(t, []ItemKind{SolidColor, Border, Text, Text}, kinds)
	assert.Equal(t, dimen.R(0, 10, 100, 50), list.Items[0].Bounds)
	assert.Equal(t, red, list.Items[0].Color)
	assert.Equal(t, dimen.DU(2), list.Items[1].Width)
	assert.Equal(t, dimen.R(0, 15, 10, 10), list.Items[2].Bounds)
	assert.Equal(t, dimen.R(40, 25, 10, 10), list.Items[3].Bounds)
	assert.Equal(t, "b", list.Items[3].Text)
	assert.Equal(t, dimen.R(0, 10, 100, 50), list.Bounds())
}

func TestBuildSkipsOutsideDirty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.displaylist")
	defer teardown()
	//
	tree, _ := laidOut()
	list := NewBuilder().Build(tree, dimen.R(30, 20, 50, 10))
	texts := list.Filter(Text)
	require.Len(t, texts, 1)
	assert.Equal(t, "b", texts[0].Text)
	assert.Len(t, list.Filter(SolidColor), 1)
	//
	list = NewBuilder().Build(tree, dimen.R(200, 200, 10, 10))
	assert.Equal(t, 0, list.Len())
	assert.Equal(t, dimen.ZeroRect, list.Bounds())
}

func TestBuildUnsupportedKind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.displaylist")
	defer teardown()
	//
	tree, in := laidOut()
	tree.AddChild(in, tree.NewFlow(flow.InlineBlockFlow, dom.Null))
	assert.Panics(t, func() {
		NewBuilder().Build(tree, dimen.R(0, 0, 100, 100))
	})
}

func TestEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.displaylist")
	defer teardown()
	//
	list := NewBuilder().Build(flow.NewTree(), dimen.R(0, 0, 100, 100))
	assert.Equal(t, 0, list.Len())
}
