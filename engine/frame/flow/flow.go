package flow

import (
	"fmt"

	"github.com/npillmayer/flowlayout/core/dimen"
	"github.com/npillmayer/flowlayout/engine/dom"
)

// Kind is the kind of formatting context a flow establishes.
type Kind uint8

// Kinds of flows. The set is closed.
const (
	AbsoluteFlow Kind = iota
	BlockFlow
	FloatFlow
	InlineBlockFlow
	InlineFlow
	RootFlow
	TableFlow
)

var kindNames = [...]string{
	AbsoluteFlow:    "AbsoluteFlow",
	BlockFlow:       "BlockFlow",
	FloatFlow:       "FloatFlow",
	InlineBlockFlow: "InlineBlockFlow",
	InlineFlow:      "InlineFlow",
	RootFlow:        "RootFlow",
	TableFlow:       "TableFlow",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Flow is a node of a flow tree.
//
// MinWidth and PrefWidth are the intrinsic widths, computed bottom-up by
// width bubbling. Position is the flow's rectangle relative to its parent:
// the width is set top-down, height and origin are set bottom-up.
type Flow struct {
	ID        int
	Kind      Kind
	Node      dom.Node // originating document node, may be dom.Null
	MinWidth  dimen.DU
	PrefWidth dimen.DU
	Position  dimen.Rect
	parent    Ref
	children  []Ref
	payload   interface{}
}

// BlockData is the payload of a block flow.
type BlockData struct {
	Box *RenderBox // may be nil
}

// RootData is the payload of the root flow.
type RootData struct {
	Box *RenderBox // may be nil
}

// InlineData is the payload of an inline flow.
type InlineData struct {
	Boxes []*RenderBox // in content order
	Lines []LineBox    // set by width assignment
	Elems []NodeRange  // boxes generated per document element
}

// BoxRange is a range of boxes of an inline flow.
type BoxRange struct {
	Start, Len int
}

// End returns the index following the last box of r.
func (r BoxRange) End() int {
	return r.Start + r.Len
}

// Contains is true if box index i lies within r.
func (r BoxRange) Contains(i int) bool {
	return i >= r.Start && i < r.End()
}

// LineBox is a line of an inline flow. Bounds are relative to the flow.
type LineBox struct {
	Range  BoxRange
	Bounds dimen.Rect
}

// NodeRange maps a document element to the range of boxes generated for it.
type NodeRange struct {
	Node  dom.Node
	Range BoxRange
}

// VariantError is the panic value raised if a flow is treated as a kind
// it is not.
type VariantError struct {
	Flow int    // flow ID
	Want string // expected kind(s), human readable
	Is   Kind
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("flow f%d: expected %s flow, is %s", e.Flow, e.Want, e.Is)
}

// Mismatch panics with a *VariantError for f.
func (f *Flow) Mismatch(want string) {
	panic(&VariantError{Flow: f.ID, Want: want, Is: f.Kind})
}

// Block returns the payload of a block flow.
func (f *Flow) Block() *BlockData {
	if b, ok := f.payload.(*BlockData); ok {
		return b
	}
	f.Mismatch("block")
	return nil
}

// Root returns the payload of a root flow.
func (f *Flow) Root() *RootData {
	if r, ok := f.payload.(*RootData); ok {
		return r
	}
	f.Mismatch("root")
	return nil
}

// Inline returns the payload of an inline flow.
func (f *Flow) Inline() *InlineData {
	if in, ok := f.payload.(*InlineData); ok {
		return in
	}
	f.Mismatch("inline")
	return nil
}

// Is is true if f is of kind k.
func (f *Flow) Is(k Kind) bool {
	return f.Kind == k
}

// SetMinWidth sets the minimum intrinsic width.
func (f *Flow) SetMinWidth(w dimen.DU) {
	f.MinWidth = w
}

// SetPrefWidth sets the preferred intrinsic width.
func (f *Flow) SetPrefWidth(w dimen.DU) {
	f.PrefWidth = w
}

// SetPosition sets the rectangle of f, relative to its parent.
func (f *Flow) SetPosition(r dimen.Rect) {
	f.Position = r
}

// DebugString returns a one-line description of f, naming its boxes.
func (f *Flow) DebugString() string {
	var repr string
	switch f.Kind {
	case InlineFlow:
		repr = "InlineFlow(children="
		for _, box := range f.Inline().Boxes {
			repr += fmt.Sprintf(" b%d", box.ID)
		}
		repr += ")"
	case BlockFlow:
		repr = boxRepr(f.Kind, f.Block().Box)
	case RootFlow:
		repr = boxRepr(f.Kind, f.Root().Box)
	default:
		repr = f.Kind.String()
	}
	return fmt.Sprintf("f%d %s", f.ID, repr)
}

func boxRepr(k Kind, box *RenderBox) string {
	if box == nil {
		return k.String()
	}
	return fmt.Sprintf("%s(box=b%d)", k, box.ID)
}

func (f *Flow) String() string {
	return fmt.Sprintf("f%d %s", f.ID, f.Kind)
}
