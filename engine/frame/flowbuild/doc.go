/*
Package flowbuild creates flow trees from HTML documents.

The builder is a thin collaborator of layout: it applies a small subset of
CSS (display, width, min-width, height, background-color, border-width,
float and position) from a user-agent stylesheet, from <style> elements and
from style attributes, and splits text into word boxes measured by a
Measurer.

Block-level elements generate block flows. Runs of inline content generate
anonymous inline flows, holding one box per word. Floats, absolutely
positioned elements, inline-blocks and tables generate flows of the
respective kind without content.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package flowbuild

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flowlayout.flowbuild'.
func tracer() tracing.Trace {
	return tracing.Select("flowlayout.flowbuild")
}
