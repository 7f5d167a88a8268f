package flow

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Dump writes the subtree starting at r to w, one line per flow, indented
// by depth.
func (t *Tree) Dump(w io.Writer, r Ref) error {
	return t.dumpIndent(w, r, 0)
}

func (t *Tree) dumpIndent(w io.Writer, r Ref, indent int) error {
	line := "|" + strings.Repeat("---- ", indent) + t.Flow(r).DebugString()
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	var err error
	t.EachChild(r, func(c Ref) bool {
		err = t.dumpIndent(w, c, indent+1)
		return err == nil
	})
	return err
}

// DumpTrace writes the dump of the subtree at r to the tracer, at
// level debug.
func (t *Tree) DumpTrace(r Ref) {
	var buf bytes.Buffer
	_ = t.Dump(&buf, r)
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		tracer().Debugf("%s", line)
	}
}
