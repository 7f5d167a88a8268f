package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/golang/freetype/truetype"
	"github.com/npillmayer/flowlayout/backend/gfx/raster"
	"github.com/npillmayer/flowlayout/core"
	"github.com/npillmayer/flowlayout/core/actor"
	"github.com/npillmayer/flowlayout/core/dimen"
	"github.com/npillmayer/flowlayout/core/locate"
	"github.com/npillmayer/flowlayout/engine/dom"
	"github.com/npillmayer/flowlayout/engine/frame/displaylist"
	"github.com/npillmayer/flowlayout/engine/frame/flow"
	"github.com/npillmayer/flowlayout/engine/frame/flowbuild"
	"github.com/npillmayer/flowlayout/engine/frame/framedebug"
	"github.com/npillmayer/flowlayout/engine/frame/layout"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// tracer traces with key 'flowlayout.cli'
func tracer() tracing.Trace {
	return tracing.Select("flowlayout.cli")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	width := flag.String("width", "800px", "Viewport width")
	height := flag.String("height", "600px", "Viewport height")
	lineheight := flag.String("lineheight", "12pt", "Minimum line height")
	pngfile := flag.String("png", "", "Render to PNG file")
	dotfile := flag.String("dot", "", "Write flow tree as GraphViz DOT file")
	fontname := flag.String("font", "", "TrueType font file or system font name")
	fontsize := flag.Float64("fontsize", 12, "Font size in points")
	shape := flag.Bool("shape", false, "Measure text with HarfBuzz shaping (Go Sans if no font given)")
	interactive := flag.Bool("i", false, "Interactive mode")
	flag.Parse()
	if flag.NArg() != 1 {
		pterm.Error.Println("usage: flowlayout [flags] <document>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	// set up logging and layout configuration
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":              "go",
		"trace.flowlayout.cli":         "Info",
		"trace.flowlayout.layout":      *tlevel,
		"trace.flowlayout.flow":        *tlevel,
		"trace.flowlayout.dom":         *tlevel,
		"trace.flowlayout.actor":       *tlevel,
		"trace.flowlayout.flowbuild":   *tlevel,
		"trace.flowlayout.displaylist": *tlevel,
		"trace.flowlayout.raster":      *tlevel,
		"layout.viewport.width":        *width,
		"layout.viewport.height":       *height,
		"layout.line-height":           *lineheight,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	ctx, err := layout.ContextFrom(conf)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}

	intp := &Intp{ctx: ctx}
	if err := intp.setupFonts(*fontname, *fontsize, *shape); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	if err := intp.load(flag.Arg(0)); err != nil {
		pterm.Error.Println(err.Error())
		if core.IsCode(err, core.EMISSING) {
			pterm.Info.Println("document locations are file paths or http(s) URLs")
		}
		os.Exit(3)
	}
	intp.layouter = layout.Spawn(ctx)
	if err := intp.reflow(dimen.Rect{}); err != nil {
		pterm.Error.Println(err.Error())
		intp.stop() // os.Exit does not run deferred calls
		os.Exit(4)
	}
	defer intp.stop()
	if *dotfile != "" {
		if err := intp.writeDot(*dotfile); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	if *pngfile != "" {
		if err := intp.writePNG(*pngfile); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	if !*interactive {
		intp.dump()
		return
	}

	// set up REPL
	repl, err := readline.New("flow > ")
	if err != nil {
		tracer().Errorf(err.Error())
		intp.stop()
		os.Exit(5)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Welcome to flowlayout")
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	ctx      *layout.Context
	doc      dom.Node
	tree     *flow.Tree
	list     *displaylist.DisplayList
	layouter *actor.Ref[layout.Msg]
	face     font.Face // nil for the default font
	measurer flowbuild.Measurer
}

// setupFonts selects the font face for painting and the measurer for
// building flows.
func (intp *Intp) setupFonts(fontname string, size float64, shape bool) (err error) {
	if !shape {
		if fontname != "" {
			intp.face, err = locate.ResolveFontFace(fontname, size)
		}
		intp.measurer = flowbuild.NewFace(intp.face)
		return err
	}
	binary := goregular.TTF
	if fontname != "" {
		fpath, err := locate.FindFont(fontname)
		if err != nil {
			return err
		}
		if binary, err = os.ReadFile(fpath); err != nil {
			return err
		}
	}
	ttf, err := truetype.Parse(binary)
	if err != nil {
		return err
	}
	intp.face = truetype.NewFace(ttf, &truetype.Options{Size: size})
	intp.measurer, err = flowbuild.NewShaper(binary, dimen.DU(size*float64(dimen.PT)))
	return err
}

// load reads and parses a document and builds its flow tree.
func (intp *Intp) load(location string) error {
	u, err := locate.MakeURL(location, nil)
	if err != nil {
		return err
	}
	r, err := locate.Open(u)
	if err != nil {
		return err
	}
	defer r.Close()
	if intp.doc, err = dom.Parse(r); err != nil {
		return err
	}
	intp.tree, err = flowbuild.Build(intp.doc, &flowbuild.Options{
		Measurer: intp.measurer,
	})
	if err != nil {
		return err
	}
	tracer().Infof("%s: %d flows", u, intp.tree.Len())
	return nil
}

// reflow lets the layout actor lay out the flow tree.
func (intp *Intp) reflow(dirty dimen.Rect) error {
	reply := make(chan layout.Result, 1)
	if err := intp.layouter.Send(layout.Reflow{Tree: intp.tree, Dirty: dirty, Reply: reply}); err != nil {
		return err
	}
	res := <-reply
	if res.Err != nil {
		return res.Err
	}
	intp.list = res.List
	return nil
}

// stop terminates the layout actor and waits for it.
func (intp *Intp) stop() {
	done := make(chan struct{})
	if err := intp.layouter.Send(layout.Exit{Done: done}); err != nil {
		return
	}
	<-done
	intp.layouter.Close()
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

const help = `commands:
  dump                 print the flow tree
  list                 print the display list
  select <css>         print client rects of elements matching a CSS selector
  xpath <expr>         print client rects of nodes selected by XPath
  text <css>           print the inner text of elements matching a CSS selector
  reflow [x y w h]     lay out again, restricting the display list to a rect (px)
  width <dimen>        change the viewport width and lay out again
  png <file>           render the display list to a PNG file
  dot <file>           write the flow tree in GraphViz format
  quit`

func (intp *Intp) execute(line string) (bool, error) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Println(help)
	case "dump":
		intp.dump()
	case "list":
		intp.printList()
	case "select":
		nodes, err := dom.Select(intp.doc, arg)
		if err != nil {
			return false, err
		}
		intp.printRects(nodes)
	case "xpath":
		nodes, err := dom.XPath(intp.doc, arg)
		if err != nil {
			return false, err
		}
		intp.printRects(nodes)
	case "text":
		nodes, err := dom.Select(intp.doc, arg)
		if err != nil {
			return false, err
		}
		for _, n := range nodes {
			text, err := dom.InnerText(n)
			if err != nil {
				return false, err
			}
			pterm.Info.Printfln("%s: %q", n, text.String())
		}
	case "reflow":
		dirty, err := parseRect(arg)
		if err != nil {
			return false, err
		}
		if err = intp.reflow(dirty); err != nil {
			return false, err
		}
		pterm.Info.Printfln("%d display items", intp.list.Len())
	case "width":
		w, ispcnt, err := dimen.ParseDimen(arg)
		if err != nil || ispcnt || w <= 0 {
			return false, fmt.Errorf("illegal width %q", arg)
		}
		intp.stop()
		intp.ctx.Viewport.W = w
		intp.layouter = layout.Spawn(intp.ctx)
		return false, intp.reflow(dimen.Rect{})
	case "png":
		return false, intp.writePNG(arg)
	case "dot":
		return false, intp.writeDot(arg)
	default:
		return false, fmt.Errorf("unknown command %q, try 'help'", cmd)
	}
	return false, nil
}

func (intp *Intp) dump() {
	if err := intp.tree.Dump(os.Stdout, intp.tree.Root()); err != nil {
		pterm.Error.Println(err.Error())
	}
}

func (intp *Intp) printList() {
	if intp.list == nil {
		pterm.Info.Println("no display list")
		return
	}
	data := pterm.TableData{{"#", "Kind", "Box", "Bounds", "Content"}}
	for i, it := range intp.list.Items {
		content := ""
		switch it.Kind {
		case displaylist.Text:
			content = strconv.Quote(it.Text)
		case displaylist.Border:
			content = it.Width.String()
		default:
			content = fmt.Sprintf("#%02x%02x%02x", it.Color.R, it.Color.G, it.Color.B)
		}
		data = append(data, []string{strconv.Itoa(i), it.Kind.String(),
			fmt.Sprintf("b%d", it.Box), it.Bounds.String(), content})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err.Error())
	}
}

func (intp *Intp) printRects(nodes []dom.Node) {
	q := layout.Query(intp.tree)
	for _, n := range nodes {
		rects := q.ClientRects(n)
		if len(rects) == 0 {
			pterm.Info.Printfln("%s: no boxes", n)
			continue
		}
		bbox, _ := q.BoundingRect(n)
		pterm.Info.Printfln("%s: %d rects, bounding box %v", n, len(rects), bbox)
		for _, r := range rects {
			fmt.Printf("    %v\n", r)
		}
	}
}

func (intp *Intp) writePNG(path string) error {
	if path == "" {
		return errors.New("missing file name")
	}
	canvas := raster.NewCanvas(intp.ctx.Viewport, intp.face)
	canvas.Paint(intp.list)
	if err := canvas.SavePNG(path); err != nil {
		return err
	}
	pterm.Info.Printfln("wrote %s", path)
	return nil
}

func (intp *Intp) writeDot(path string) error {
	if path == "" {
		return errors.New("missing file name")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err = framedebug.ToGraphViz(intp.tree, f, true, tracer()); err != nil {
		return err
	}
	pterm.Info.Printfln("wrote %s", path)
	return nil
}

// parseRect parses "x y w h" in pixels. An empty string is the empty rect.
func parseRect(s string) (dimen.Rect, error) {
	if s == "" {
		return dimen.Rect{}, nil
	}
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return dimen.Rect{}, errors.New("expected x y w h")
	}
	var v [4]dimen.DU
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return dimen.Rect{}, fmt.Errorf("illegal coordinate %q", f)
		}
		v[i] = dimen.DU(n) * dimen.PX
	}
	return dimen.R(v[0], v[1], v[2], v[3]), nil
}
