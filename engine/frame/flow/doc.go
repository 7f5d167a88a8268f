/*
Package flow implements the tree of formatting contexts ("flows") which layout
operates on.

A flow is a node of a flow tree. Every flow is of one of a closed set of
kinds (block, inline, root, float, …) and carries common attributes
(intrinsic widths, position) plus a payload specific to its kind. Block and
root flows own at most one render box, inline flows own a sequence of render
boxes which will be broken into lines.

Flows live in an arena (type Tree) and are addressed by handles of type Ref.
Parent and child links are handles as well, so there are no pointer cycles
between flows. Two handles are equal exactly if they denote the same flow.

Asking a flow for a payload of the wrong kind is a programming error and
panics with a *VariantError.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package flow

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flowlayout.flow'.
func tracer() tracing.Trace {
	return tracing.Select("flowlayout.flow")
}
