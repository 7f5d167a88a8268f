package flowbuild

import (
	"bytes"
	"sync"

	hbtt "github.com/benoitkugler/textlayout/fonts/truetype"
	hb "github.com/benoitkugler/textlayout/harfbuzz"
	"github.com/npillmayer/flowlayout/core"
	"github.com/npillmayer/flowlayout/core/dimen"
)

// Shaper measures text by shaping it with HarfBuzz. Kerning and ligatures
// of the font are respected, as opposed to Face, which sums up advances
// of single glyphs.
type Shaper struct {
	font *hb.Font
	size dimen.DU // em size
	mx   sync.Mutex
}

// NewShaper creates a shaping measurer for a TrueType or OpenType font
// binary, scaled to an em size.
func NewShaper(fontBinary []byte, size dimen.DU) (*Shaper, error) {
	if size <= 0 {
		return nil, core.Error(core.EINVALID, "illegal font size %v", size)
	}
	face, err := hbtt.Parse(bytes.NewReader(fontBinary), true)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font for shaping")
	}
	font := hb.NewFont(face)
	font.Ptem = float32(size.Points())
	return &Shaper{font: font, size: size}, nil
}

// Measure returns the sum of the advances of the glyphs shaped for text,
// written left to right.
func (sh *Shaper) Measure(text string) dimen.DU {
	if text == "" {
		return 0
	}
	sh.mx.Lock()
	defer sh.mx.Unlock()
	buf := hb.NewBuffer()
	buf.Props.Direction = hb.LeftToRight
	runes := []rune(text)
	buf.AddRunes(runes, 0, len(runes))
	buf.Shape(sh.font, nil)
	var adv int64
	for i := range buf.Pos {
		adv += int64(buf.Pos[i].XAdvance)
	}
	if sh.font.XScale == 0 {
		return 0
	}
	tracer().Debugf("shaped %q to %d glyphs", text, len(buf.Info))
	return dimen.DU(adv * int64(sh.size) / int64(sh.font.XScale))
}

// LineHeight returns 1.2 em.
func (sh *Shaper) LineHeight() dimen.DU {
	return sh.size * 6 / 5
}

var _ Measurer = &Shaper{}
