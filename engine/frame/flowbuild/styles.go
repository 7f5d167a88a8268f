package flowbuild

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/flowlayout/core"
	"github.com/npillmayer/flowlayout/core/dimen"
	"github.com/npillmayer/flowlayout/engine/dom"
	"golang.org/x/image/colornames"
)

// UserAgentCSS is the default stylesheet, applied before any document
// styles.
const UserAgentCSS = `
html, address, article, aside, blockquote, body, dd, div, dl, dt, fieldset,
figcaption, figure, footer, form, h1, h2, h3, h4, h5, h6, header, hr, main,
nav, ol, p, pre, section, ul { display: block; }
li { display: list-item; }
table { display: table; }
head, link, meta, noscript, script, style, template, title { display: none; }
`

// Style holds the properties the builder cares about for an element.
type Style struct {
	Display     DisplayMode
	Width       dimen.DU // valid if HasWidth
	MinWidth    dimen.DU
	Height      dimen.DU
	BorderWidth dimen.DU
	Background  color.RGBA // zero value for transparent
	HasWidth    bool
}

// Styler computes styles for elements from a list of stylesheets.
// Rules are applied in source order; later rules override earlier ones,
// unless a declaration is marked !important. Selector specificity is not
// considered.
type Styler struct {
	IgnoreStyleAttr bool // do not consider style attributes of elements
	rules           []rule
}

type rule struct {
	selectors []dom.Selector
	decls     []*css.Declaration
}

// NewStyler creates a styler with the user-agent stylesheet, followed by
// additional stylesheets.
func NewStyler(sheets ...string) (*Styler, error) {
	s := &Styler{}
	for _, src := range append([]string{UserAgentCSS}, sheets...) {
		if err := s.AddStylesheet(src); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddStylesheet parses CSS source and appends its rules. At-rules are
// ignored, as are rules whose selectors cannot be compiled.
func (s *Styler) AddStylesheet(src string) error {
	sheet, err := parser.Parse(src)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot parse stylesheet")
	}
	for _, r := range sheet.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("ignoring at-rule %s", r.Name)
			continue
		}
		rl := rule{decls: r.Declarations}
		for _, sel := range r.Selectors {
			compiled, err := dom.CompileSelector(sel)
			if err != nil {
				tracer().Infof("ignoring selector %q: %v", sel, err)
				continue
			}
			rl.selectors = append(rl.selectors, compiled)
		}
		if len(rl.selectors) > 0 {
			s.rules = append(s.rules, rl)
		}
	}
	return nil
}

// RuleCount returns the number of rules of all stylesheets.
func (s *Styler) RuleCount() int {
	return len(s.rules)
}

type declared struct {
	value     string
	important bool
}

// StyleFor computes the style of an element. Non-element nodes are
// styled as inline content.
func (s *Styler) StyleFor(n dom.Node) *Style {
	props := make(map[string]declared)
	if n.IsElement() {
		for _, r := range s.rules {
			if r.matches(n) {
				cascade(props, r.decls)
			}
		}
		if attr, ok := n.Attr("style"); ok && !s.IgnoreStyleAttr {
			if decls, err := parser.ParseDeclarations(attr); err == nil {
				cascade(props, decls)
			} else {
				tracer().Infof("ignoring style attribute of %s: %v", n, err)
			}
		}
	}
	return computeStyle(props)
}

func (r rule) matches(n dom.Node) bool {
	for _, sel := range r.selectors {
		if sel.Matches(n) {
			return true
		}
	}
	return false
}

func cascade(props map[string]declared, decls []*css.Declaration) {
	for _, d := range decls {
		key := strings.ToLower(d.Property)
		if prev, ok := props[key]; ok && prev.important && !d.Important {
			continue
		}
		props[key] = declared{value: strings.TrimSpace(d.Value), important: d.Important}
	}
}

func computeStyle(props map[string]declared) *Style {
	st := &Style{Display: InlineMode}
	if d, ok := props["display"]; ok {
		if mode := ParseDisplay(d.value); mode != NoMode {
			st.Display = mode
		}
	}
	if st.Display != DisplayNone {
		if f, ok := props["float"]; ok && (f.value == "left" || f.value == "right") {
			st.Display = FloatMode
		}
		if p, ok := props["position"]; ok && (p.value == "absolute" || p.value == "fixed") {
			st.Display = AbsoluteMode
		}
	}
	if w, ok := dimenProperty(props, "width"); ok {
		st.Width, st.HasWidth = w, true
	}
	st.MinWidth, _ = dimenProperty(props, "min-width")
	st.Height, _ = dimenProperty(props, "height")
	st.BorderWidth, _ = dimenProperty(props, "border-width")
	if bg, ok := props["background-color"]; ok {
		if c, ok := ParseColor(bg.value); ok {
			st.Background = c
		}
	}
	return st
}

func dimenProperty(props map[string]declared, key string) (dimen.DU, bool) {
	p, ok := props[key]
	if !ok {
		return 0, false
	}
	d, ispcnt, err := dimen.ParseDimen(p.value)
	if err != nil || ispcnt || d < 0 {
		tracer().Debugf("unsupported value for %s: %q", key, p.value)
		return 0, false
	}
	return d, true
}

// ParseColor parses a CSS color given as a color name or in hex notation.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "transparent" {
		return color.RGBA{}, true
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return color.RGBA{}, false
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, false
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
	}
	c, ok := colornames.Map[s]
	return c, ok
}
