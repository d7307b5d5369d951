package syntax

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump returns an indented debug representation of the AST.
// It is meant for tests and for inspecting how a pattern was parsed; the
// format is line-oriented with one node per line.
func Dump(n *Ast) string {
	var b strings.Builder
	dumpNode(&b, n, 0)
	return strings.TrimRight(b.String(), "\n ")
}

// dumpNode writes the debug representation of a node to the string builder.
// The `level` parameter is used to indent nested nodes.
func dumpNode(b *strings.Builder, n *Ast, level int) {
	indent := strings.Repeat("  ", level)

	b.WriteString(indent)
	b.WriteString(n.Op.String())

	switch n.Op {
	case OpEmpty, OpDot:
		b.WriteByte('\n')

	case OpLiteral:
		fmt.Fprintf(b, " %d\n", n.C)

	case OpAssertion:
		kind := n.Params.(AssertionKind)
		fmt.Fprintf(b, " %s\n", assertionName(kind))

	case OpClassPerl:
		p := n.Params.(PerlClassParam)
		fmt.Fprintf(b, " %s\n", perlClassName(p))

	case OpClassUnicode:
		p := n.Params.(UnicodeClassParam)
		b.WriteByte(' ')
		if p.Negated {
			b.WriteByte('!')
		}
		b.WriteString(p.Name)
		if p.Value != "" {
			b.WriteByte('=')
			b.WriteString(p.Value)
		}
		b.WriteByte('\n')

	case OpClassBracketed:
		p := n.Params.(ClassBracketedParam)
		if p.Negated {
			b.WriteString(" NEGATED")
		}
		b.WriteByte('\n')
		dumpClassSet(b, p.Set, level+1)

	case OpRepetition:
		p := n.Params.(RepetitionParam)

		maxval := "MAXREPEAT"
		if p.Max != RepetitionNoMax {
			maxval = strconv.Itoa(p.Max)
		}

		mode := "greedy"
		if !p.Greedy {
			mode = "lazy"
		}

		fmt.Fprintf(b, " %d %s %s\n", p.Min, maxval, mode)
		dumpNode(b, p.Inner, level+1)

	case OpGroup:
		p := n.Params.(GroupParam)

		switch p.Kind {
		case GroupCapture:
			b.WriteString(" CAPTURE")
		case GroupName:
			b.WriteString(" NAME ")
			b.WriteString(p.Name)
		case GroupNonCapture:
			b.WriteString(" NONCAPTURE")
			if p.AddFlags != 0 || p.DelFlags != 0 {
				fmt.Fprintf(b, " %s-%s", p.AddFlags, p.DelFlags)
			}
		}

		b.WriteByte('\n')
		dumpNode(b, p.Inner, level+1)

	case OpFlags:
		p := n.Params.(FlagsParam)
		fmt.Fprintf(b, " %s-%s\n", p.Add, p.Del)

	case OpAlternation:
		b.WriteByte('\n')
		for i, item := range n.Params.([]*Ast) {
			if i != 0 {
				b.WriteString(indent)
				b.WriteString("OR\n")
			}
			dumpNode(b, item, level+1)
		}

	case OpConcat:
		b.WriteByte('\n')
		for _, item := range n.Params.([]*Ast) {
			dumpNode(b, item, level+1)
		}
	}
}

// dumpClassSet writes the debug representation of a class set expression.
func dumpClassSet(b *strings.Builder, set *ClassSet, level int) {
	indent := strings.Repeat("  ", level)

	switch set.Op {
	case ClassSetUnion:
		for _, item := range set.Items {
			b.WriteString(indent)

			switch item.Op {
			case ClassItemLiteral:
				fmt.Fprintf(b, "LITERAL %d\n", item.Lo)
			case ClassItemRange:
				fmt.Fprintf(b, "RANGE (%d, %d)\n", item.Lo, item.Hi)
			case ClassItemPerl:
				fmt.Fprintf(b, "%s\n", perlClassName(item.Params.(PerlClassParam)))
			case ClassItemAscii:
				p := item.Params.(AsciiClassParam)
				b.WriteString("POSIX ")
				if p.Negated {
					b.WriteByte('!')
				}
				fmt.Fprintf(b, "%s\n", asciiClassName(p.Kind))
			case ClassItemUnicode:
				p := item.Params.(UnicodeClassParam)
				b.WriteString("UNICODE ")
				if p.Negated {
					b.WriteByte('!')
				}
				b.WriteString(p.Name)
				if p.Value != "" {
					b.WriteByte('=')
					b.WriteString(p.Value)
				}
				b.WriteByte('\n')
			case ClassItemBracketed:
				p := item.Params.(ClassBracketedParam)
				b.WriteString("CLASS")
				if p.Negated {
					b.WriteString(" NEGATED")
				}
				b.WriteByte('\n')
				dumpClassSet(b, p.Set, level+1)
			}
		}

	case ClassSetIntersection, ClassSetDifference:
		b.WriteString(indent)
		if set.Op == ClassSetIntersection {
			b.WriteString("INTERSECTION\n")
		} else {
			b.WriteString("DIFFERENCE\n")
		}
		dumpClassSet(b, set.Lhs, level+1)
		b.WriteString(indent)
		b.WriteString("WITH\n")
		dumpClassSet(b, set.Rhs, level+1)
	}
}

// assertionName returns the dump name of an assertion kind.
func assertionName(kind AssertionKind) string {
	switch kind {
	case AssertStartLine:
		return "START_LINE"
	case AssertEndLine:
		return "END_LINE"
	case AssertStartText:
		return "START_TEXT"
	case AssertEndText:
		return "END_TEXT"
	case AssertWordBoundary:
		return "WORD_BOUNDARY"
	case AssertNotWordBoundary:
		return "NOT_WORD_BOUNDARY"
	default:
		return "UNKNOWN"
	}
}

// perlClassName returns the dump name of a perl class.
func perlClassName(p PerlClassParam) string {
	var name string
	switch p.Kind {
	case PerlDigit:
		name = "DIGIT"
	case PerlSpace:
		name = "SPACE"
	case PerlWord:
		name = "WORD"
	default:
		name = "UNKNOWN"
	}

	if p.Negated {
		name = "NOT_" + name
	}

	return name
}

// asciiClassName returns the dump name of a posix class.
func asciiClassName(kind AsciiClassKind) string {
	for name, k := range asciiClassKinds {
		if k == kind {
			return name
		}
	}
	return "unknown"
}
