package displaylist

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/flowlayout/core/dimen"
	"github.com/npillmayer/flowlayout/engine/dom"
)

// ItemKind is the kind of a paint primitive.
type ItemKind uint8

// Kinds of display items.
const (
	SolidColor ItemKind = iota
	Text
	Border
)

func (k ItemKind) String() string {
	switch k {
	case SolidColor:
		return "SolidColor"
	case Text:
		return "Text"
	case Border:
		return "Border"
	}
	return fmt.Sprintf("ItemKind(%d)", k)
}

// Item is a paint primitive.
type Item struct {
	Kind   ItemKind
	Bounds dimen.Rect // absolute
	Box    int        // ID of the render box this item has been created for
	Node   dom.Node
	Text   string     // for text items
	Color  color.RGBA // fill color, text color or border color
	Width  dimen.DU   // border width
}

func (it Item) String() string {
	switch it.Kind {
	case Text:
		return fmt.Sprintf("%s b%d %v %q", it.Kind, it.Box, it.Bounds, it.Text)
	case Border:
		return fmt.Sprintf("%s b%d %v w=%v", it.Kind, it.Box, it.Bounds, it.Width)
	}
	return fmt.Sprintf("%s b%d %v #%02x%02x%02x", it.Kind, it.Box, it.Bounds,
		it.Color.R, it.Color.G, it.Color.B)
}

// DisplayList is an ordered sequence of display items.
type DisplayList struct {
	Items []Item
}

// Append adds an item at the end of the list.
func (l *DisplayList) Append(it Item) {
	l.Items = append(l.Items, it)
}

// Len returns the number of items.
func (l *DisplayList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Items)
}

// Bounds returns the union of the bounds of all items.
func (l *DisplayList) Bounds() dimen.Rect {
	if l.Len() == 0 {
		return dimen.ZeroRect
	}
	b := l.Items[0].Bounds
	for _, it := range l.Items[1:] {
		b = b.Union(it.Bounds)
	}
	return b
}

// Filter returns all items of a kind.
func (l *DisplayList) Filter(k ItemKind) []Item {
	var items []Item
	for _, it := range l.Items {
		if it.Kind == k {
			items = append(items, it)
		}
	}
	return items
}
