/*
Package displaylist converts a laid out flow tree into a list of paint
primitives.

Items are in painting order: a flow's own items come before the items of
its children, children follow in tree order. Bounds of items are absolute.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package displaylist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flowlayout.displaylist'.
func tracer() tracing.Trace {
	return tracing.Select("flowlayout.displaylist")
}
