/*
Package raster paints display lists onto bitmaps.

Rasterizing is a debugging aid: it draws backgrounds, borders and text of a
display list with a single font face, one pixel per dimen.PX.

BSD License

Copyright (c) 2017-21, Norbert Pillmayer <norbert@pillmayer.com>

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of Norbert Pillmayer nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package raster

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/npillmayer/flowlayout/core"
	"github.com/npillmayer/flowlayout/core/dimen"
	"github.com/npillmayer/flowlayout/engine/frame/displaylist"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// tracer traces with key 'flowlayout.raster'.
func tracer() tracing.Trace {
	return tracing.Select("flowlayout.raster")
}

// Canvas is a bitmap to paint display lists on.
type Canvas struct {
	dc   *gg.Context
	face font.Face
}

// NewCanvas creates a white canvas of the size of a viewport. Text is drawn
// with face, or with a basic 7x13 pixel font if face is nil.
func NewCanvas(viewport dimen.Size, face font.Face) *Canvas {
	if face == nil {
		face = basicfont.Face7x13
	}
	w, h := px(viewport.W), px(viewport.H)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dc := gg.NewContext(int(w), int(h))
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(face)
	return &Canvas{dc: dc, face: face}
}

// Paint draws all items of a display list, in order.
func (c *Canvas) Paint(list *displaylist.DisplayList) {
	if list == nil {
		return
	}
	ascent := float64(c.face.Metrics().Ascent) / 64
	for _, it := range list.Items {
		x, y := px(it.Bounds.TopL.X), px(it.Bounds.TopL.Y)
		w, h := px(it.Bounds.W), px(it.Bounds.H)
		c.dc.SetRGBA255(int(it.Color.R), int(it.Color.G), int(it.Color.B), int(it.Color.A))
		switch it.Kind {
		case displaylist.SolidColor:
			c.dc.DrawRectangle(x, y, w, h)
			c.dc.Fill()
		case displaylist.Border:
			lw := px(it.Width)
			c.dc.SetLineWidth(lw)
			c.dc.DrawRectangle(x+lw/2, y+lw/2, w-lw, h-lw)
			c.dc.Stroke()
		case displaylist.Text:
			c.dc.DrawString(it.Text, x, y+ascent)
		}
	}
	tracer().Debugf("painted %d display items", list.Len())
}

// Image returns the canvas bitmap.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return core.WrapError(err, core.EINVALID, "cannot write image %s", path)
	}
	return nil
}

func px(d dimen.DU) float64 {
	return float64(d) / float64(dimen.PX)
}
