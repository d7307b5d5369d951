// Package hir implements the lowering pass of the regex front end.
// It walks a parsed AST, resolves unicode properties, canonicalizes character
// classes, folds literals and case variants and emits a high-level
// intermediate representation for a matching engine to consume.
package hir

import "math"

// MaxRepeat marks an unbounded repetition maximum in the HIR.
// Matching engines may impose a lower limit of their own.
const MaxRepeat = math.MaxInt

// Op is the type used for HIR node operators.
type Op uint32

// HIR node operators. The set is smaller than the AST's: all quantifiers
// lower to one repetition form, flag directives and non-capturing groups
// disappear, and every class variant becomes a canonical range set.
//
//   - EMPTY: matches the empty string
//   - LITERAL: a run of literal bytes
//   - CLASS: a sorted, non-overlapping, merged set of codepoint ranges
//   - ANCHOR: start/end of text or line
//   - WORD_BOUNDARY: `\b` or `\B`, unicode- or ascii-aware
//   - REPETITION: the single `{m,n}` repetition form
//   - GROUP: a capturing group with its index and optional name
//   - CONCAT: sequence of subexpressions
//   - ALTERNATION: ordered list of branches
const (
	OpEmpty Op = iota // EMPTY
	OpLiteral         // LITERAL
	OpClass           // CLASS
	OpAnchor          // ANCHOR
	OpWordBoundary    // WORD_BOUNDARY
	OpRepetition      // REPETITION
	OpGroup           // GROUP
	OpConcat          // CONCAT
	OpAlternation     // ALTERNATION
)

// String returns the operator name.
func (op Op) String() string {
	switch op {
	case OpEmpty:
		return "EMPTY"
	case OpLiteral:
		return "LITERAL"
	case OpClass:
		return "CLASS"
	case OpAnchor:
		return "ANCHOR"
	case OpWordBoundary:
		return "WORD_BOUNDARY"
	case OpRepetition:
		return "REPETITION"
	case OpGroup:
		return "GROUP"
	case OpConcat:
		return "CONCAT"
	case OpAlternation:
		return "ALTERNATION"
	default:
		return "UNKNOWN"
	}
}

// Hir represents a node in the lowered pattern tree.
// Like the AST, each node exclusively owns its children and the tree is
// immutable once the translator returns it.
type Hir struct {
	Op     Op
	Bytes  []byte // literal bytes; only set for LITERAL
	Params any    // extra parameters; may be nil
}

// ClassRange is a closed range of codepoints.
type ClassRange struct {
	Lo rune
	Hi rune
}

// AnchorKind is the type to specify anchors.
type AnchorKind uint32

// Available anchors.
const (
	AnchorStartText AnchorKind = iota // ANCHOR_START_TEXT
	AnchorEndText                     // ANCHOR_END_TEXT
	AnchorStartLine                   // ANCHOR_START_LINE
	AnchorEndLine                     // ANCHOR_END_LINE
)

// String returns the anchor name.
func (k AnchorKind) String() string {
	switch k {
	case AnchorStartText:
		return "ANCHOR_START_TEXT"
	case AnchorEndText:
		return "ANCHOR_END_TEXT"
	case AnchorStartLine:
		return "ANCHOR_START_LINE"
	default:
		return "ANCHOR_END_LINE"
	}
}

// WordBoundaryParam represents the parameters for the "WORD_BOUNDARY" operator.
type WordBoundaryParam struct {
	Ascii   bool // ascii-only word characters
	Negated bool // `\B`
}

// RepetitionParam represents the parameters for the "REPETITION" operator.
// Max is MaxRepeat for unbounded repetitions.
type RepetitionParam struct {
	Min    int
	Max    int
	Greedy bool
	Inner  *Hir
}

// GroupParam represents the parameters for the "GROUP" operator.
// Index is the 1-based capture index; Name is empty for unnamed groups.
type GroupParam struct {
	Index int
	Name  string
	Inner *Hir
}

// newEmptyNode creates a new node with operator "EMPTY".
func newEmptyNode() *Hir {
	return &Hir{Op: OpEmpty}
}

// newLiteralNode creates a new node with operator "LITERAL".
func newLiteralNode(b []byte) *Hir {
	return &Hir{
		Op:    OpLiteral,
		Bytes: b,
	}
}

// newClassNode creates a new node, that holds a canonical range set.
func newClassNode(ranges []ClassRange) *Hir {
	return &Hir{
		Op:     OpClass,
		Params: ranges,
	}
}

// newAnchorNode creates a new node, that holds an anchor kind.
func newAnchorNode(kind AnchorKind) *Hir {
	return &Hir{
		Op:     OpAnchor,
		Params: kind,
	}
}

// newWordBoundaryNode creates a new node with operator "WORD_BOUNDARY".
func newWordBoundaryNode(ascii, negated bool) *Hir {
	return &Hir{
		Op: OpWordBoundary,
		Params: WordBoundaryParam{
			Ascii:   ascii,
			Negated: negated,
		},
	}
}

// newRepetitionNode creates a new node, that holds the parameters of a repetition.
func newRepetitionNode(min, max int, greedy bool, inner *Hir) *Hir {
	return &Hir{
		Op: OpRepetition,
		Params: RepetitionParam{
			Min:    min,
			Max:    max,
			Greedy: greedy,
			Inner:  inner,
		},
	}
}

// newGroupNode creates a new node, that holds a capturing group.
func newGroupNode(index int, name string, inner *Hir) *Hir {
	return &Hir{
		Op: OpGroup,
		Params: GroupParam{
			Index: index,
			Name:  name,
			Inner: inner,
		},
	}
}

// newConcatNode creates a new node, that holds a sequence of subexpressions.
func newConcatNode(items []*Hir) *Hir {
	return &Hir{
		Op:     OpConcat,
		Params: items,
	}
}

// newAlternationNode creates a new node, that holds the branches of an alternation.
func newAlternationNode(items []*Hir) *Hir {
	return &Hir{
		Op:     OpAlternation,
		Params: items,
	}
}

// Ranges returns the canonical range set of a CLASS node.
func (n *Hir) Ranges() []ClassRange {
	if n.Op == OpClass {
		return n.Params.([]ClassRange)
	}
	return nil
}

// Children returns the child nodes of a CONCAT or ALTERNATION node.
func (n *Hir) Children() []*Hir {
	if n.Op == OpConcat || n.Op == OpAlternation {
		return n.Params.([]*Hir)
	}
	return nil
}

// CaptureCount returns the number of capturing groups in the tree.
func (n *Hir) CaptureCount() int {
	count := 0

	walk(n, func(h *Hir) {
		if h.Op == OpGroup {
			count++
		}
	})

	return count
}

// CaptureNames returns the capture group names, indexed by capture index.
// Index 0 corresponds to the implicit whole-match group and is always empty;
// unnamed groups have empty names.
func (n *Hir) CaptureNames() []string {
	names := make([]string, n.CaptureCount()+1)

	walk(n, func(h *Hir) {
		if h.Op == OpGroup {
			p := h.Params.(GroupParam)
			names[p.Index] = p.Name
		}
	})

	return names
}

// walk calls fn for every node of the tree in depth-first order.
func walk(n *Hir, fn func(*Hir)) {
	fn(n)

	switch n.Op {
	case OpRepetition:
		walk(n.Params.(RepetitionParam).Inner, fn)
	case OpGroup:
		walk(n.Params.(GroupParam).Inner, fn)
	case OpConcat, OpAlternation:
		for _, item := range n.Params.([]*Hir) {
			walk(item, fn)
		}
	}
}
