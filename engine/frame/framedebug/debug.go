/*
Package framedebug exports flow trees in GraphViz DOT format.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package framedebug

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/flowlayout/core"
	"github.com/npillmayer/flowlayout/engine/frame/flow"
	"github.com/npillmayer/schuko/tracing"
)

// pkgTracer traces with key 'flowlayout.framedebug'
func pkgTracer() tracing.Trace {
	return tracing.Select("flowlayout.framedebug")
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	FlowTmpl  *template.Template
	BoxTmpl   *template.Template
	EdgeTmpl  *template.Template
	BEdgeTmpl *template.Template
}

// ToGraphViz creates a graphical representation of a flow tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
// Boxes of flows are drawn as separate nodes if withBoxes is set.
// A nil tracer selects the package tracer.
func ToGraphViz(tree *flow.Tree, w io.Writer, withBoxes bool, tracer tracing.Trace) error {
	if tree.Root() == flow.NoFlow {
		return core.Error(core.EMISSING, "flow tree without root")
	}
	if tracer == nil {
		tracer = pkgTracer()
	}
	header, err := template.New("flowTree").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	funcs := template.FuncMap{
		"shortstring": shortText,
		"fill":        fillColor,
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.FlowTmpl = template.Must(template.New("flow").Funcs(funcs).Parse(flowTmpl))
	gparams.BoxTmpl = template.Must(template.New("box").Funcs(funcs).Parse(boxTmpl))
	gparams.EdgeTmpl = template.Must(template.New("flowedge").Parse(edgeTmpl))
	gparams.BEdgeTmpl = template.Must(template.New("boxedge").Parse(boxEdgeTmpl))
	if err = header.Execute(w, gparams); err != nil {
		return err
	}
	tree.PreOrder(tree.Root(), func(r flow.Ref) {
		if err != nil {
			return
		}
		f := tree.Flow(r)
		tracer.Debugf("flow = %v", f)
		if err = gparams.FlowTmpl.Execute(w, f); err != nil {
			return
		}
		if p := tree.Parent(r); p != flow.NoFlow {
			err = gparams.EdgeTmpl.Execute(w, cedge{tree.Flow(p).ID, f.ID})
		}
		if err == nil && withBoxes {
			err = boxes(tree, r, w, &gparams)
		}
	})
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func boxes(tree *flow.Tree, r flow.Ref, w io.Writer, gparams *graphParamsType) error {
	f := tree.Flow(r)
	switch f.Kind {
	case flow.RootFlow, flow.BlockFlow, flow.InlineFlow:
	default:
		return nil
	}
	var err error
	tree.EachBox(r, func(box *flow.RenderBox) {
		if err != nil {
			return
		}
		if err = gparams.BoxTmpl.Execute(w, box); err == nil {
			err = gparams.BEdgeTmpl.Execute(w, cedge{f.ID, box.ID})
		}
	})
	return err
}

type cedge struct {
	From, To int
}

func shortText(box *flow.RenderBox) string {
	txt := box.Text
	s := "\"T \\\""
	if len(txt) > 10 {
		s += txt[:10] + "…\\\"\""
	} else {
		s += txt + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

func fillColor(box *flow.RenderBox) string {
	if box.Background.A == 0 {
		return "grey95"
	}
	return fmt.Sprintf("\"#%02x%02x%02x\"", box.Background.R, box.Background.G, box.Background.B)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const flowTmpl = `f{{ .ID }}	[ label="{{ .DebugString }}" shape=box style=filled fillcolor=lightblue3 ] ;
`

const boxTmpl = `{{ if .IsText }}b{{ .ID }}	[ label={{ shortstring . }} shape=box style=filled fillcolor={{ fill . }} fontname="Courier" fontsize=11.0 ] ;
{{ else }}b{{ .ID }}	[ label="b{{ .ID }}" shape=box style=filled fillcolor={{ fill . }} ] ;
{{ end }}`

const edgeTmpl = `f{{ .From }} -> f{{ .To }} [weight=1] ;
`

const boxEdgeTmpl = `f{{ .From }} -> b{{ .To }} [dir=none style=dashed] ;
`
