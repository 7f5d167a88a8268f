package flow

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/flowlayout/core/dimen"
	"github.com/npillmayer/flowlayout/engine/dom"
)

// BoxKind discriminates render boxes.
type BoxKind uint8

// Kinds of render boxes.
const (
	GenericBox BoxKind = iota
	TextBox
)

// RenderBox is a piece of content of a flow, the unit of painting.
// Position is relative to the origin of the owning flow.
type RenderBox struct {
	ID          int
	Node        dom.Node
	Kind        BoxKind
	Text        string // for text boxes
	MinWidth    dimen.DU
	PrefWidth   dimen.DU
	Height      dimen.DU
	ForcedBreak bool       // a line break must follow this box
	Background  color.RGBA // zero value paints nothing
	Border      dimen.DU   // border width, 0 for none
	Position    dimen.Rect
}

// IsText is true for text boxes.
func (box *RenderBox) IsText() bool {
	return box.Kind == TextBox
}

func (box *RenderBox) String() string {
	if box.Kind == TextBox {
		return fmt.Sprintf("b%d%q", box.ID, box.Text)
	}
	return fmt.Sprintf("b%d", box.ID)
}
