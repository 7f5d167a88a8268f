package flowbuild

import (
	"sync"

	"github.com/npillmayer/flowlayout/core/dimen"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Measurer measures text for word boxes.
type Measurer interface {
	Measure(text string) dimen.DU
	LineHeight() dimen.DU
}

var setupGraphemes sync.Once

// Monospace measures text in cells of a fixed width. Wide characters (as of
// UAX#11) occupy two cells.
type Monospace struct {
	Em      dimen.DU // width of a narrow cell
	Height  dimen.DU
	Context *uax11.Context
}

// NewMonospace creates a monospace measurer for a cell width. Lines are
// twice as high as a cell is wide.
func NewMonospace(em dimen.DU) *Monospace {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return &Monospace{Em: em, Height: 2 * em, Context: uax11.LatinContext}
}

// Measure returns the width of text.
func (ms *Monospace) Measure(text string) dimen.DU {
	gstr := grapheme.StringFromString(text)
	var w dimen.DU
	for i := 0; i < gstr.Len(); i++ {
		w += dimen.DU(uax11.Width([]byte(gstr.Nth(i)), ms.Context)) * ms.Em
	}
	return w
}

// LineHeight returns the height of a line of text.
func (ms *Monospace) LineHeight() dimen.DU {
	return ms.Height
}

var _ Measurer = &Monospace{}

// Face measures text with a font face. One pixel of the face corresponds
// to dimen.PX.
type Face struct {
	face font.Face
	mx   sync.Mutex // font.Face is not safe for concurrent use
}

// NewFace creates a measurer for a font face. If face is nil, a basic
// 7x13 pixel font is used.
func NewFace(face font.Face) *Face {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Face{face: face}
}

// Measure returns the advance width of text.
func (f *Face) Measure(text string) dimen.DU {
	f.mx.Lock()
	defer f.mx.Unlock()
	return fromFixed(font.MeasureString(f.face, text))
}

// LineHeight returns the recommended line height of the face.
func (f *Face) LineHeight() dimen.DU {
	f.mx.Lock()
	defer f.mx.Unlock()
	return fromFixed(f.face.Metrics().Height)
}

func fromFixed(x fixed.Int26_6) dimen.DU {
	return dimen.DU(int64(x) * int64(dimen.PX) / 64)
}

var _ Measurer = &Face{}
