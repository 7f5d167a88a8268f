package flowbuild

import (
	"strings"
	"unicode"

	"github.com/npillmayer/flowlayout/core"
	"github.com/npillmayer/flowlayout/core/dimen"
	"github.com/npillmayer/flowlayout/engine/dom"
	"github.com/npillmayer/flowlayout/engine/frame/flow"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/text/unicode/norm"
)

// Options control flow tree building.
type Options struct {
	Measurer     Measurer // defaults to basicfont metrics
	Stylesheets  []string // additional stylesheets, after the user-agent stylesheet
	IgnoreAuthor bool     // ignore <style> elements and style attributes
	// Placeholders keeps float, absolute, inline-block and table elements as
	// content-less flows of their own kind. The layout passes reject these
	// kinds, so by default such elements are laid out as ordinary blocks.
	Placeholders bool
}

// builder holds the state of a single Build call.
type builder struct {
	tree     *flow.Tree
	styler   *Styler
	measurer Measurer
	words    *segment.Segmenter
	keepKind bool
}

// Build creates a flow tree for an HTML document. The root flow is bound to
// the document node, its box to the <html> element.
func Build(doc dom.Node, opts *Options) (*flow.Tree, error) {
	if !doc.IsDocument() {
		return nil, core.Error(core.EINVALID, "cannot build flows for %s: not a document", doc)
	}
	if opts == nil {
		opts = &Options{}
	}
	b := &builder{
		tree:     flow.NewTree(),
		measurer: opts.Measurer,
		words:    segment.NewSegmenter(uax14.NewLineWrap()),
		keepKind: opts.Placeholders,
	}
	if b.measurer == nil {
		b.measurer = NewFace(nil)
	}
	sheets := opts.Stylesheets
	if !opts.IgnoreAuthor {
		sheets = append(append([]string{}, sheets...), styleElements(doc)...)
	}
	var err error
	if b.styler, err = NewStyler(sheets...); err != nil {
		return nil, err
	}
	b.styler.IgnoreStyleAttr = opts.IgnoreAuthor
	root := b.tree.NewFlow(flow.RootFlow, doc)
	for _, c := range doc.Children() {
		if c.IsElement() && c.NodeName() == "html" {
			b.tree.SetBox(root, b.genericBox(c, b.styleFor(c)))
			b.blockContent(root, c)
		}
	}
	tracer().Debugf("built flow tree with %d flows", b.tree.Len())
	return b.tree, nil
}

// styleElements collects the content of all <style> elements.
func styleElements(doc dom.Node) []string {
	styles, err := dom.Select(doc, "style")
	if err != nil {
		return nil
	}
	var sheets []string
	for _, st := range styles {
		var src strings.Builder
		for _, c := range st.Children() {
			src.WriteString(c.Text())
		}
		sheets = append(sheets, src.String())
	}
	return sheets
}

func (b *builder) styleFor(n dom.Node) *Style {
	return b.styler.StyleFor(n)
}

// blockContent creates flows for the children of a block container elem
// and appends them to parent. Runs of inline content are wrapped into
// anonymous inline flows.
func (b *builder) blockContent(parent flow.Ref, elem dom.Node) {
	inline := flow.NoFlow
	for _, c := range elem.Children() {
		switch {
		case c.IsText():
			if inline == flow.NoFlow && strings.TrimSpace(c.Text()) == "" {
				continue
			}
			if inline == flow.NoFlow {
				inline = b.newInline(parent)
			}
			b.text(inline, c)
		case c.IsElement():
			st := b.styleFor(c)
			switch {
			case st.Display == DisplayNone:
				continue
			case st.Display.IsBlockLevel():
				inline = flow.NoFlow
				b.blockLevel(parent, c, st)
			default:
				if inline == flow.NoFlow {
					inline = b.newInline(parent)
				}
				b.inlineContent(inline, c, st)
			}
		}
	}
}

func (b *builder) blockLevel(parent flow.Ref, elem dom.Node, st *Style) {
	kind := st.Display.FlowKind()
	if kind != flow.BlockFlow && !b.keepKind {
		tracer().Infof("%s: %s not supported, laid out as block", elem, kind)
		kind = flow.BlockFlow
	}
	f := b.tree.NewFlow(kind, elem)
	b.tree.AddChild(parent, f)
	if kind != flow.BlockFlow {
		tracer().Infof("%s generates a %s without content", elem, kind)
		return
	}
	b.tree.SetBox(f, b.genericBox(elem, st))
	b.blockContent(f, elem)
}

func (b *builder) newInline(parent flow.Ref) flow.Ref {
	in := b.tree.NewFlow(flow.InlineFlow, dom.Null)
	b.tree.AddChild(parent, in)
	return in
}

// inlineContent appends the boxes for an inline element to an inline flow
// and records the range of boxes generated for it.
func (b *builder) inlineContent(in flow.Ref, elem dom.Node, st *Style) {
	start := len(b.tree.Flow(in).Inline().Boxes)
	if elem.NodeName() == "br" {
		b.forcedBreak(in, elem)
	}
	for _, c := range elem.Children() {
		if c.IsText() {
			b.text(in, c)
		} else if c.IsElement() {
			cst := b.styleFor(c)
			if cst.Display == DisplayNone {
				continue
			}
			b.inlineContent(in, c, cst)
		}
	}
	boxes := b.tree.Flow(in).Inline().Boxes
	for _, box := range boxes[start:] {
		if box.Background.A == 0 {
			box.Background = st.Background
		}
	}
	if n := len(boxes) - start; n > 0 {
		b.tree.AddNodeRange(in, elem, flow.BoxRange{Start: start, Len: n})
	}
}

// forcedBreak ends the current line of an inline flow. If there is no box
// to break after, an empty one is created.
func (b *builder) forcedBreak(in flow.Ref, br dom.Node) {
	boxes := b.tree.Flow(in).Inline().Boxes
	if len(boxes) > 0 && !boxes[len(boxes)-1].ForcedBreak {
		boxes[len(boxes)-1].ForcedBreak = true
		return
	}
	box := b.tree.NewBox(flow.TextBox, br)
	box.Height = b.measurer.LineHeight()
	box.ForcedBreak = true
	b.tree.AppendBox(in, box)
}

// text appends word boxes for a text node. White space is collapsed, words
// keep one trailing space. A word's minimum width excludes the space.
func (b *builder) text(in flow.Ref, n dom.Node) {
	raw := norm.NFC.String(n.Text())
	txt := strings.Join(strings.Fields(raw), " ")
	if txt == "" {
		if raw != "" {
			b.trailingSpace(in)
		}
		return
	}
	if startsWithSpace(raw) {
		b.trailingSpace(in)
	}
	if endsWithSpace(raw) {
		txt += " "
	}
	b.words.Init(strings.NewReader(txt))
	for b.words.Next() {
		word := b.words.Text()
		if strings.TrimSpace(word) == "" {
			b.trailingSpace(in)
			continue
		}
		box := b.tree.NewBox(flow.TextBox, n)
		box.Text = word
		box.MinWidth = b.measurer.Measure(strings.TrimRightFunc(word, unicode.IsSpace))
		box.PrefWidth = b.measurer.Measure(word)
		box.Height = b.measurer.LineHeight()
		b.tree.AppendBox(in, box)
	}
}

// trailingSpace makes sure the last box of an inline flow ends with a space.
func (b *builder) trailingSpace(in flow.Ref) {
	boxes := b.tree.Flow(in).Inline().Boxes
	if len(boxes) == 0 {
		return
	}
	last := boxes[len(boxes)-1]
	if !last.IsText() || last.ForcedBreak || endsWithSpace(last.Text) {
		return
	}
	last.Text += " "
	last.PrefWidth = b.measurer.Measure(last.Text)
}

func (b *builder) genericBox(elem dom.Node, st *Style) *flow.RenderBox {
	box := b.tree.NewBox(flow.GenericBox, elem)
	box.MinWidth = st.MinWidth
	if st.HasWidth {
		box.MinWidth = dimen.Max(box.MinWidth, st.Width)
		box.PrefWidth = st.Width
	}
	box.PrefWidth = dimen.Max(box.PrefWidth, box.MinWidth)
	box.Height = st.Height
	box.Background = st.Background
	box.Border = st.BorderWidth
	return box
}

func startsWithSpace(s string) bool {
	return s != "" && unicode.IsSpace(rune(s[0]))
}

func endsWithSpace(s string) bool {
	return s != "" && unicode.IsSpace(rune(s[len(s)-1]))
}
