package dom

import (
	"strings"
	"testing"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var minihtml = `
<html><head></head><body>
  <p id="a">The quick brown fox</p>
  <p id="b">jumps over <b>the</b> lazy dog.</p>
</body>
`

func parseMini(t *testing.T) Node {
	doc, err := Parse(strings.NewReader(minihtml))
	require.NoError(t, err)
	require.True(t, doc.IsDocument())
	return doc
}

func TestNodeIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.dom")
	defer teardown()
	//
	doc := parseMini(t)
	ps, err := Select(doc, "p")
	require.NoError(t, err)
	require.Len(t, ps, 2)
	again, err := Select(doc, "p#a")
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.True(t, ps[0] == again[0], "same document node must yield equal handles")
	assert.False(t, ps[0] == ps[1])
	//
	other, err := Parse(strings.NewReader(minihtml))
	require.NoError(t, err)
	ps2, _ := Select(other, "p#a")
	assert.False(t, ps[0] == ps2[0], "structurally equal nodes of different documents differ")
	assert.True(t, Null.IsNull())
	assert.Equal(t, "p", ps[0].NodeName())
	id, ok := ps[1].Attr("id")
	assert.True(t, ok)
	assert.Equal(t, "b", id)
}

func TestSelectorMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.dom")
	defer teardown()
	//
	doc := parseMini(t)
	sel, err := CompileSelector("body > p")
	require.NoError(t, err)
	ps, _ := Select(doc, "p")
	assert.True(t, sel.Matches(ps[0]))
	assert.False(t, sel.Matches(doc))
	_, err = CompileSelector("p[[")
	assert.Error(t, err)
}

func TestXPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.dom")
	defer teardown()
	//
	doc := parseMini(t)
	nodes, err := XPath(doc, "//p")
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	ps, _ := Select(doc, "p")
	assert.True(t, nodes[0] == ps[0])
	assert.True(t, nodes[1] == ps[1])
	//
	nodes, err = XPath(doc, "//p[@id='b']/b")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "b", nodes[0].NodeName())
	_, err = XPath(doc, "//p[")
	assert.Error(t, err)
}

func TestInnerText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.dom")
	defer teardown()
	//
	doc := parseMini(t)
	ps, _ := Select(doc, "p#b")
	require.Len(t, ps, 1)
	text, err := InnerText(ps[0])
	require.NoError(t, err)
	require.False(t, text.IsVoid())
	assert.Equal(t, "jumps over the lazy dog.", text.String())
	var elems []string
	text.EachLeaf(func(leaf cords.Leaf, pos uint64) error {
		l := leaf.(*TextLeaf)
		t.Logf("leaf @%d = %s", pos, l.dbgString())
		elems = append(elems, l.Element().NodeName())
		return nil
	})
	assert.Equal(t, []string{"p", "b", "p"}, elems)
	//
	_, err = InnerText(Null)
	assert.Error(t, err)
	//
	empty, err := Parse(strings.NewReader(`<html><body><p id="e"></p></body></html>`))
	require.NoError(t, err)
	ps, _ = Select(empty, "p#e")
	require.Len(t, ps, 1)
	text, err = InnerText(ps[0])
	require.NoError(t, err)
	assert.True(t, text.IsVoid())
}
