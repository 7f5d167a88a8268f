package framedebug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/flowlayout/core"
	"github.com/npillmayer/flowlayout/engine/dom"
	"github.com/npillmayer/flowlayout/engine/frame/flow"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.framedebug")
	defer teardown()
	//
	tree := flow.NewTree()
	root := tree.NewFlow(flow.RootFlow, dom.Null)
	blk := tree.NewFlow(flow.BlockFlow, dom.Null)
	tree.AddChild(root, blk)
	in := tree.NewFlow(flow.InlineFlow, dom.Null)
	tree.AddChild(blk, in)
	box := tree.NewBox(flow.TextBox, dom.Null)
	box.Text = "Hello World, again"
	tree.AppendBox(in, box)
	tree.AddChild(root, tree.NewFlow(flow.FloatFlow, dom.Null))
	//
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(tree, &buf, true, tracing.Select("flowlayout.framedebug")))
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, "f1 -> f2")
	assert.Contains(t, dot, "f2 -> f3")
	assert.Contains(t, dot, "f1 -> f4")
	assert.Contains(t, dot, "f3 -> b1")
	assert.Contains(t, dot, "Hello␣Worl…")
	//
	err := ToGraphViz(flow.NewTree(), &buf, false, tracing.Select("flowlayout.framedebug"))
	assert.True(t, core.IsCode(err, core.EMISSING))
}

func TestToGraphVizWithoutTracer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.framedebug")
	defer teardown()
	//
	tree := flow.NewTree()
	root := tree.NewFlow(flow.RootFlow, dom.Null)
	tree.AddChild(root, tree.NewFlow(flow.BlockFlow, dom.Null))
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(tree, &buf, false, nil))
	assert.Contains(t, buf.String(), "f1 -> f2")
}
