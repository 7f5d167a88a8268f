package flowbuild

import (
	"strings"

	"github.com/npillmayer/flowlayout/engine/frame/flow"
)

// DisplayMode is a type for CSS property "display", combined with float and
// position, as far as they influence the kind of flow generated.
type DisplayMode uint8

// Display modes recognized by the builder.
const (
	NoMode DisplayMode = iota // unset
	DisplayNone
	BlockMode
	InlineMode
	InlineBlockMode
	TableMode
	FloatMode
	AbsoluteMode
)

var modeNames = [...]string{"NoMode", "None", "Block", "Inline", "InlineBlock", "Table",
	"Float", "Absolute"}

func (disp DisplayMode) String() string {
	if int(disp) < len(modeNames) {
		return modeNames[disp]
	}
	return "?"
}

// ParseDisplay maps a CSS display value to a display mode. Unknown values
// map to NoMode.
func ParseDisplay(display string) DisplayMode {
	switch strings.ToLower(strings.TrimSpace(display)) {
	case "none":
		return DisplayNone
	case "block", "list-item", "flow-root", "flex", "grid":
		return BlockMode
	case "inline", "contents":
		return InlineMode
	case "inline-block", "inline-flex", "inline-grid":
		return InlineBlockMode
	case "table", "inline-table":
		return TableMode
	}
	return NoMode
}

// IsBlockLevel is true for modes which interrupt inline content.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp != InlineMode && disp != DisplayNone && disp != NoMode
}

// FlowKind returns the kind of flow generated for a block-level mode.
func (disp DisplayMode) FlowKind() flow.Kind {
	switch disp {
	case InlineBlockMode:
		return flow.InlineBlockFlow
	case TableMode:
		return flow.TableFlow
	case FloatMode:
		return flow.FloatFlow
	case AbsoluteMode:
		return flow.AbsoluteFlow
	case InlineMode:
		return flow.InlineFlow
	}
	return flow.BlockFlow
}
