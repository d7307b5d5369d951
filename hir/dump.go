package hir

import (
	"fmt"
	"strings"

	"github.com/regexkit/resyntax/util"
)

// Dump returns an indented, human readable representation of the HIR.
// The format follows the AST dump, one node per line.
func Dump(n *Hir) string {
	var b strings.Builder
	dumpNode(&b, n, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, n *Hir, depth int) {
	indent := strings.Repeat("  ", depth)

	switch n.Op {
	case OpEmpty:
		fmt.Fprintf(b, "%sEMPTY\n", indent)
	case OpLiteral:
		fmt.Fprintf(b, "%sLITERAL %s\n", indent, util.Escape(string(n.Bytes)))
	case OpClass:
		fmt.Fprintf(b, "%sCLASS\n", indent)
		for _, rng := range n.Ranges() {
			if rng.Lo == rng.Hi {
				fmt.Fprintf(b, "%s  %s\n", indent, util.EscapeRune(rng.Lo))
			} else {
				fmt.Fprintf(b, "%s  %s-%s\n", indent, util.EscapeRune(rng.Lo), util.EscapeRune(rng.Hi))
			}
		}
	case OpAnchor:
		fmt.Fprintf(b, "%s%v\n", indent, n.Params.(AnchorKind))
	case OpWordBoundary:
		p := n.Params.(WordBoundaryParam)
		name := "WORD_BOUNDARY"
		if p.Negated {
			name = "NOT_WORD_BOUNDARY"
		}
		if p.Ascii {
			name += " ASCII"
		}
		fmt.Fprintf(b, "%s%s\n", indent, name)
	case OpRepetition:
		p := n.Params.(RepetitionParam)
		mode := "greedy"
		if !p.Greedy {
			mode = "lazy"
		}
		if p.Max == MaxRepeat {
			fmt.Fprintf(b, "%sREPETITION %d MAXREPEAT %s\n", indent, p.Min, mode)
		} else {
			fmt.Fprintf(b, "%sREPETITION %d %d %s\n", indent, p.Min, p.Max, mode)
		}
		dumpNode(b, p.Inner, depth+1)
	case OpGroup:
		p := n.Params.(GroupParam)
		if p.Name != "" {
			fmt.Fprintf(b, "%sGROUP %d %s\n", indent, p.Index, p.Name)
		} else {
			fmt.Fprintf(b, "%sGROUP %d\n", indent, p.Index)
		}
		dumpNode(b, p.Inner, depth+1)
	case OpConcat:
		fmt.Fprintf(b, "%sCONCAT\n", indent)
		for _, item := range n.Children() {
			dumpNode(b, item, depth+1)
		}
	case OpAlternation:
		fmt.Fprintf(b, "%sALTERNATION\n", indent)
		for i, item := range n.Children() {
			if i > 0 {
				fmt.Fprintf(b, "%sOR\n", indent)
			}
			dumpNode(b, item, depth+1)
		}
	}
}
