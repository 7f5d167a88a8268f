package layout

import (
	"image/color"
	"strings"
	"testing"

	"github.com/npillmayer/flowlayout/core"
	"github.com/npillmayer/flowlayout/core/dimen"
	"github.com/npillmayer/flowlayout/engine/dom"
	"github.com/npillmayer/flowlayout/engine/frame/displaylist"
	"github.com/npillmayer/flowlayout/engine/frame/flow"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestLayoutActorReflow(t *testing.T) {
	defer goleak.VerifyNone(t)
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.layout")
	defer teardown()
	//
	tree, _, blk, _ := exampleTree()
	tree.Flow(blk).Block().Box.Background = color.RGBA{R: 0xff, A: 0xff}
	ref := Spawn(NewContext(dimen.Size{W: 200 * dimen.PX, H: 400 * dimen.PX}))
	reply := make(chan Result, 1)
	require.NoError(t, ref.Send(Reflow{Tree: tree, Reply: reply}))
	res := <-reply
	require.NoError(t, res.Err)
	require.NotNil(t, res.List)
	assert.Len(t, res.List.Filter(displaylist.SolidColor), 1)
	assert.Len(t, res.List.Filter(displaylist.Text), 2)
	//
	// a failing reflow does not terminate the actor
	bad := flow.NewTree()
	r := bad.NewFlow(flow.RootFlow, dom.Null)
	bad.AddChild(r, bad.NewFlow(flow.AbsoluteFlow, dom.Null))
	require.NoError(t, ref.Send(Reflow{Tree: bad, Reply: reply}))
	res = <-reply
	assert.Equal(t, core.EINTERNAL, core.Code(res.Err))
	assert.Nil(t, res.List)
	require.NoError(t, ref.Send(Reflow{Tree: nil, Reply: reply}))
	res = <-reply
	assert.Equal(t, core.EMISSING, core.Code(res.Err))
	//
	done := make(chan struct{})
	require.NoError(t, ref.Send(Exit{Done: done}))
	<-done
	<-ref.Done()
	assert.NoError(t, ref.Err())
	assert.Error(t, ref.Send(Reflow{Tree: tree, Reply: reply}))
}

func TestLayoutActorDirtyRect(t *testing.T) {
	defer goleak.VerifyNone(t)
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.layout")
	defer teardown()
	//
	tree, _, _, _ := exampleTree()
	ref := Spawn(NewContext(dimen.Size{W: 80 * dimen.PX, H: 400 * dimen.PX}))
	defer ref.Close()
	reply := make(chan Result, 1)
	// the second line starts at 12pt, below the dirty rect
	dirty := dimen.R(0, 0, 80*dimen.PX, 5*dimen.PX)
	require.NoError(t, ref.Send(Reflow{Tree: tree, Dirty: dirty, Reply: reply}))
	res := <-reply
	require.NoError(t, res.Err)
	texts := res.List.Filter(displaylist.Text)
	require.Len(t, texts, 1)
	assert.Equal(t, dimen.DU(0), texts[0].Bounds.TopL.Y)
}

func TestQueryClientRects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.layout")
	defer teardown()
	//
	doc, err := dom.Parse(strings.NewReader("<p>a</p><b>x</b>"))
	require.NoError(t, err)
	ps, _ := dom.Select(doc, "p")
	bs, _ := dom.Select(doc, "b")
	tree := flow.NewTree()
	root := tree.NewFlow(flow.RootFlow, doc)
	top := tree.NewFlow(flow.BlockFlow, dom.Null)
	tree.SetBox(top, &flow.RenderBox{ID: 100, Height: 30 * dimen.PX})
	tree.AddChild(root, top)
	p := tree.NewFlow(flow.BlockFlow, ps[0])
	tree.AddChild(root, p)
	in := tree.NewFlow(flow.InlineFlow, dom.Null)
	tree.AddChild(p, in)
	tree.AppendBox(in, textBox(tree, 10*dimen.PX, 10*dimen.PX))
	tree.AppendBox(in, textBox(tree, 20*dimen.PX, 10*dimen.PX))
	tree.AddNodeRange(in, bs[0], flow.BoxRange{Start: 1, Len: 1})
	ctx := NewContext(dimen.Size{W: 100 * dimen.PX, H: 100 * dimen.PX})
	ctx.LineHeight = 10 * dimen.PX
	require.NoError(t, Layout(ctx, tree))
	//
	q := Query(tree)
	assert.Equal(t, []flow.Ref{p}, q.Flows(ps[0]))
	assert.Equal(t, []dimen.Rect{dimen.R(0, 30*dimen.PX, 100*dimen.PX, 10*dimen.PX)}, q.ClientRects(ps[0]))
	rects := q.ClientRects(bs[0])
	require.Len(t, rects, 1)
	assert.Equal(t, dimen.R(10*dimen.PX, 30*dimen.PX, 20*dimen.PX, 10*dimen.PX), rects[0])
	bbox, ok := q.BoundingRect(bs[0])
	assert.True(t, ok)
	assert.Equal(t, rects[0], bbox)
	_, ok = q.BoundingRect(dom.Null)
	assert.False(t, ok)
}
