package rules

import (
	"fmt"
	"io"
	"strconv"
)

// ExportDOT writes a Graphviz representation of the rule tree r to w.
func ExportDOT(w io.Writer, r Rule) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=TB;")

	next := 0
	var walk func(Rule) int
	walk = func(r Rule) int {
		id := next
		next++

		shape, label := "box", r.String()
		switch r.kind {
		case ruleNone:
			shape, label = "point", ""
		case ruleSequence:
			shape, label = "ellipse", "seq"
		case ruleQuantified:
			shape, label = "diamond", repeatLabel(r.min, r.max)
		}
		fmt.Fprintf(w, "    r%d [shape=%s, label=%s];\n", id, shape, strconv.Quote(label))

		for i, child := range r.children {
			cid := walk(child)
			fmt.Fprintf(w, "    r%d -> r%d [label=\"%d\"];\n", id, cid, i)
		}
		return id
	}
	walk(r)

	fmt.Fprintln(w, "}")
}

func repeatLabel(lo, hi int) string {
	if hi == Unbounded {
		return fmt.Sprintf("{%d,}", lo)
	}
	return fmt.Sprintf("{%d,%d}", lo, hi)
}
