// Package dimen implements dimensions and units.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// DU is a dimension type ("design unit").
// Values are in scaled big points (different from TeX).
type DU int32

// Some pre-defined dimensions
const (
	Zero DU = 0
	SP   DU = 1       // scaled point = BP / 65536
	BP   DU = 65536   // big point (PDF) = 1/72 inch
	PX   DU = 65536   // "pixels"
	PT   DU = 65291   // printers point 1/72.27 inch
	MM   DU = 185771  // millimeters
	CM   DU = 1857710 // centimeters
	IN   DU = 4718592 // inch
)

// Infinity is the largest possible dimension
const Infinity DU = math.MaxInt32

// Stringer implementation.
func (d DU) String() string {
	return fmt.Sprintf("%dsp", int32(d))
}

// Points returns a dimension in big (PDF) points.
func (d DU) Points() float64 {
	return float64(d) / float64(BP)
}

// Point is a point on a canvas.
type Point struct {
	X, Y DU
}

// Origin is origin
var Origin = Point{0, 0}

// Shift a point along a vector.
func (p *Point) Shift(vector Point) *Point {
	p.X += vector.X
	p.Y += vector.Y
	return p
}

// Add returns p + q without modifying p.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", p.X.Points(), p.Y.Points())
}

// Size is a pair of width and height.
type Size struct {
	W, H DU
}

// Rect is a rectangle, given as top left corner and size.
type Rect struct {
	TopL Point
	Size
}

// ZeroRect is an empty rectangle located at the origin.
var ZeroRect = Rect{}

// R creates a rectangle from origin and extent.
func R(x, y, w, h DU) Rect {
	return Rect{TopL: Point{x, y}, Size: Size{w, h}}
}

// BotR returns the bottom right corner of r.
func (r Rect) BotR() Point {
	return Point{r.TopL.X + r.W, r.TopL.Y + r.H}
}

// Width returns the width of a rectangle.
func (r Rect) Width() DU {
	return r.W
}

// Height returns the height of a rectangle.
func (r Rect) Height() DU {
	return r.H
}

// IsEmpty is true if r has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Translate returns r shifted by vector.
func (r Rect) Translate(vector Point) Rect {
	r.TopL = r.TopL.Add(vector)
	return r
}

// Contains is true if s lies completely within r. Degenerate rectangles
// without area are contained if their corners are.
func (r Rect) Contains(s Rect) bool {
	rb, sb := r.BotR(), s.BotR()
	return s.TopL.X >= r.TopL.X && s.TopL.Y >= r.TopL.Y && sb.X <= rb.X && sb.Y <= rb.Y
}

// Intersects is true if r and s share a region of non-zero area.
func (r Rect) Intersects(s Rect) bool {
	if r.IsEmpty() || s.IsEmpty() {
		return false
	}
	rb, sb := r.BotR(), s.BotR()
	return r.TopL.X < sb.X && s.TopL.X < rb.X && r.TopL.Y < sb.Y && s.TopL.Y < rb.Y
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	rb, sb := r.BotR(), s.BotR()
	tl := Point{Min(r.TopL.X, s.TopL.X), Min(r.TopL.Y, s.TopL.Y)}
	br := Point{Max(rb.X, sb.X), Max(rb.Y, sb.Y)}
	return Rect{TopL: tl, Size: Size{br.X - tl.X, br.Y - tl.Y}}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v %.2fx%.2f]", r.TopL, r.W.Points(), r.H.Points())
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]+)(%|[cminpxtc]{2})?$`)

// ParseDimen parses a string to return a dimension. Syntax is CSS Unit.
// If a percentage value is given (`80%`), the second return value will be true.
// Values not representable as DU are an error.
func ParseDimen(s string) (DU, bool, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return 0, false, errors.New("format error parsing dimension")
	}
	scale := SP
	ispcnt := false
	if len(d) > 2 {
		switch d[2] {
		case "pt", "PT":
			scale = PT
		case "mm", "MM":
			scale = MM
		case "bp", "px", "BP", "PX":
			scale = BP
		case "cm", "CM":
			scale = CM
		case "in", "IN":
			scale = IN
		case "sp", "SP", "":
			scale = SP
		case "%":
			scale, ispcnt = 1, true
		default:
			return 0, false, errors.New("format error parsing dimension")
		}
	}
	n, err := strconv.Atoi(d[1])
	if err != nil {
		return 0, false, errors.New("format error parsing dimension")
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, false, errors.New("dimension out of range")
	}
	v := int64(n) * int64(scale)
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, false, errors.New("dimension out of range")
	}
	return DU(v), ispcnt, nil
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b DU) DU {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b DU) DU {
	if a > b {
		return a
	}
	return b
}
