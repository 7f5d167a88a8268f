/*
Package layout computes positions and sizes for a tree of flows.

Overview

Layout runs three traversals over a flow tree:

  1. BubbleWidths (bottom-up) computes the intrinsic minimum and preferred
     widths of every flow.
  2. AssignWidths (top-down) distributes the available width, starting with
     the viewport width at the root. Inline flows break their boxes into lines.
  3. AssignHeight (bottom-up) computes heights and places children.

Every pass dispatches on the kind of a flow. Only root, block and inline
flows are supported; a flow of another kind aborts layout with a
*flow.VariantError. Layout runs all passes and turns such an abort into an
error.

A layout may be run inside an actor (see Spawn), which owns a private
layout context and answers reflow requests with a display list.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flowlayout.layout'.
func tracer() tracing.Trace {
	return tracing.Select("flowlayout.layout")
}
