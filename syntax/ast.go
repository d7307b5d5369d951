package syntax

// Op is the type used for AST node operators.
type Op uint32

// AST node operators. Every parsed pattern is a tree of Ast nodes tagged with
// one of these. The set is closed; consumers switch exhaustively over it.
//
//   - EMPTY: the empty regex; matches the empty string
//   - LITERAL: a single literal character
//   - DOT: any character; `.`
//   - ASSERTION: zero-width positional match; `^`, `$`, `\A`, `\z`, `\b`, `\B`
//   - CLASS_PERL: perl character class; `\d`, `\s`, `\w` and negations
//   - CLASS_UNICODE: unicode property class; `\pL`, `\p{Greek}`, `\p{Script=Han}`
//   - CLASS_BRACKETED: bracketed character class; `[...]`
//   - REPETITION: quantified subexpression; `?`, `*`, `+`, `{m,n}`
//   - GROUP: parenthesized subexpression; `(...)`, `(?:...)`, `(?P<name>...)`
//   - FLAGS: inline flag directive; `(?i)`, `(?m-x)`
//   - ALTERNATION: list of subexpressions separated by `|`
//   - CONCAT: sequence of subexpressions
const (
	OpEmpty Op = iota // EMPTY
	OpLiteral         // LITERAL
	OpDot             // DOT
	OpAssertion       // ASSERTION
	OpClassPerl       // CLASS_PERL
	OpClassUnicode    // CLASS_UNICODE
	OpClassBracketed  // CLASS_BRACKETED
	OpRepetition      // REPETITION
	OpGroup           // GROUP
	OpFlags           // FLAGS
	OpAlternation     // ALTERNATION
	OpConcat          // CONCAT
)

// String returns the operator name.
func (op Op) String() string {
	switch op {
	case OpEmpty:
		return "EMPTY"
	case OpLiteral:
		return "LITERAL"
	case OpDot:
		return "DOT"
	case OpAssertion:
		return "ASSERTION"
	case OpClassPerl:
		return "CLASS_PERL"
	case OpClassUnicode:
		return "CLASS_UNICODE"
	case OpClassBracketed:
		return "CLASS_BRACKETED"
	case OpRepetition:
		return "REPETITION"
	case OpGroup:
		return "GROUP"
	case OpFlags:
		return "FLAGS"
	case OpAlternation:
		return "ALTERNATION"
	case OpConcat:
		return "CONCAT"
	default:
		return "UNKNOWN"
	}
}

// Ast represents a node in the parsed pattern tree.
// Each node exclusively owns its children; the tree is immutable once built.
type Ast struct {
	Op     Op
	Span   Span
	C      rune // literals are the most common node, so add an extra field for them
	Params any  // extra parameters; may be nil
}

// LiteralKind records how a literal was written in the pattern.
// The translator needs the distinction to decide whether a codepoint in
// 0x80..0xFF may lower to a raw byte in non-Unicode mode.
type LiteralKind uint32

// Possible literal kinds.
const (
	LiteralVerbatim LiteralKind = iota // written directly
	LiteralEscaped                     // punctuation escape, e.g. `\*`
	LiteralHex                         // hex escape, e.g. `\x61`, `\x{61}`
	LiteralOctal                       // octal escape, e.g. `\141`
)

// AssertionKind is the type to specify zero-width assertions.
type AssertionKind uint32

// Available assertions.
const (
	AssertStartLine       AssertionKind = iota // `^`
	AssertEndLine                              // `$`
	AssertStartText                            // `\A`
	AssertEndText                              // `\z`
	AssertWordBoundary                         // `\b`
	AssertNotWordBoundary                      // `\B`
)

// PerlClassKind is the type to specify perl character classes.
type PerlClassKind uint32

// Available perl classes.
const (
	PerlDigit PerlClassKind = iota // `\d`
	PerlSpace                      // `\s`
	PerlWord                       // `\w`
)

// PerlClassParam represents the parameters for the "CLASS_PERL" operator.
type PerlClassParam struct {
	Kind    PerlClassKind
	Negated bool
}

// UnicodeClassParam represents the parameters for the "CLASS_UNICODE" operator.
// Name holds the property name (or a one-letter general category); Value is
// non-empty for the `\p{Name=Value}` form. NameSpan covers the property name
// inside the pattern, so that resolution errors can point at it.
type UnicodeClassParam struct {
	Name     string
	Value    string
	Negated  bool
	NameSpan Span
}

// RepetitionOp is the type to specify quantifiers.
type RepetitionOp uint32

// Available quantifiers.
const (
	RepZeroOrOne  RepetitionOp = iota // `?`
	RepZeroOrMore                     // `*`
	RepOneOrMore                      // `+`
	RepRange                          // `{m}`, `{m,}`, `{m,n}`
)

// RepetitionNoMax marks an unbounded repetition maximum.
const RepetitionNoMax = -1

// RepetitionParam represents the parameters for the "REPETITION" operator.
// Min and Max are always populated (`?` = 0,1; `*` = 0,unbounded; `+` = 1,unbounded).
// Greedy is resolved at parse time, after applying the swap-greed flag.
type RepetitionParam struct {
	Op     RepetitionOp
	Min    int
	Max    int // RepetitionNoMax if unbounded
	Greedy bool
	Inner  *Ast
}

// GroupKind is the type to specify groups.
type GroupKind uint32

// Available group kinds.
const (
	GroupCapture    GroupKind = iota // `(...)`
	GroupName                        // `(?P<name>...)` or `(?<name>...)`
	GroupNonCapture                  // `(?:...)`, `(?i:...)`
)

// GroupParam represents the parameters for the "GROUP" operator.
// AddFlags and DelFlags are only set for non-capturing groups with inline
// flags; they scope to the group body.
type GroupParam struct {
	Kind     GroupKind
	Name     string
	AddFlags Flags
	DelFlags Flags
	Inner    *Ast
}

// FlagsParam represents the parameters for the "FLAGS" operator.
// The directive applies to the remainder of the enclosing group.
type FlagsParam struct {
	Add Flags
	Del Flags
}

// ClassBracketedParam represents the parameters for the "CLASS_BRACKETED" operator.
type ClassBracketedParam struct {
	Negated bool
	Set     *ClassSet
}

// ClassSetOp is the type used for class set expressions.
type ClassSetOp uint32

// Available class set operators.
const (
	ClassSetUnion        ClassSetOp = iota // juxtaposed members
	ClassSetIntersection                   // `&&`
	ClassSetDifference                     // `--`
)

// ClassSet is a character class set expression: either a union of items or a
// binary operation over two sets. The operators are left-associative and bind
// weaker than union by juxtaposition.
type ClassSet struct {
	Op   ClassSetOp
	Span Span

	// Union members; only set for ClassSetUnion.
	Items []*ClassItem

	// Operands; only set for binary operators.
	Lhs *ClassSet
	Rhs *ClassSet
}

// ClassItemOp is the type used for members of a class set union.
type ClassItemOp uint32

// Available class item kinds.
const (
	ClassItemLiteral   ClassItemOp = iota // a single character
	ClassItemRange                        // `a-z`
	ClassItemPerl                         // `\d`, `\s`, `\w` and negations
	ClassItemAscii                        // `[:alpha:]`
	ClassItemUnicode                      // `\p{...}`
	ClassItemBracketed                    // nested `[...]`
)

// ClassItem is a member of a class set union.
// Lo is the literal character for CLASS_ITEM_LITERAL; Lo and Hi are the range
// endpoints for CLASS_ITEM_RANGE. The remaining kinds store their parameters
// in Params, mirroring the Ast node layout.
type ClassItem struct {
	Op     ClassItemOp
	Span   Span
	Lo     rune
	Hi     rune
	Kind   LiteralKind // how a literal member was written
	Params any
}

// AsciiClassKind is the type to specify posix character classes.
type AsciiClassKind uint32

// Available posix classes.
const (
	AsciiAlnum AsciiClassKind = iota // [:alnum:]
	AsciiAlpha                       // [:alpha:]
	AsciiAscii                       // [:ascii:]
	AsciiBlank                       // [:blank:]
	AsciiCntrl                       // [:cntrl:]
	AsciiDigit                       // [:digit:]
	AsciiGraph                       // [:graph:]
	AsciiLower                       // [:lower:]
	AsciiPrint                       // [:print:]
	AsciiPunct                       // [:punct:]
	AsciiSpace                       // [:space:]
	AsciiUpper                       // [:upper:]
	AsciiWord                        // [:word:]
	AsciiXdigit                      // [:xdigit:]
)

// asciiClassKinds maps posix class names to their kinds.
var asciiClassKinds = map[string]AsciiClassKind{
	"alnum":  AsciiAlnum,
	"alpha":  AsciiAlpha,
	"ascii":  AsciiAscii,
	"blank":  AsciiBlank,
	"cntrl":  AsciiCntrl,
	"digit":  AsciiDigit,
	"graph":  AsciiGraph,
	"lower":  AsciiLower,
	"print":  AsciiPrint,
	"punct":  AsciiPunct,
	"space":  AsciiSpace,
	"upper":  AsciiUpper,
	"word":   AsciiWord,
	"xdigit": AsciiXdigit,
}

// AsciiClassParam represents the parameters of a CLASS_ITEM_ASCII member.
type AsciiClassParam struct {
	Kind    AsciiClassKind
	Negated bool
}

// newEmptyNode creates a new node with operator "EMPTY".
func newEmptyNode(span Span) *Ast {
	return &Ast{Op: OpEmpty, Span: span}
}

// newLiteral creates a new node with operator "LITERAL".
// This function is additional, because LITERAL nodes are very often created.
func newLiteral(c rune, kind LiteralKind, span Span) *Ast {
	return &Ast{
		Op:     OpLiteral,
		Span:   span,
		C:      c,
		Params: kind,
	}
}

// newDotNode creates a new node with operator "DOT".
func newDotNode(span Span) *Ast {
	return &Ast{Op: OpDot, Span: span}
}

// newAssertionNode creates a new node, that holds an assertion kind.
func newAssertionNode(kind AssertionKind, span Span) *Ast {
	return &Ast{
		Op:     OpAssertion,
		Span:   span,
		Params: kind,
	}
}

// newPerlClassNode creates a new node with operator "CLASS_PERL".
func newPerlClassNode(kind PerlClassKind, negated bool, span Span) *Ast {
	return &Ast{
		Op:   OpClassPerl,
		Span: span,
		Params: PerlClassParam{
			Kind:    kind,
			Negated: negated,
		},
	}
}

// newUnicodeClassNode creates a new node with operator "CLASS_UNICODE".
func newUnicodeClassNode(p UnicodeClassParam, span Span) *Ast {
	return &Ast{
		Op:     OpClassUnicode,
		Span:   span,
		Params: p,
	}
}

// newBracketedClassNode creates a new node with operator "CLASS_BRACKETED".
func newBracketedClassNode(negated bool, set *ClassSet, span Span) *Ast {
	return &Ast{
		Op:   OpClassBracketed,
		Span: span,
		Params: ClassBracketedParam{
			Negated: negated,
			Set:     set,
		},
	}
}

// newRepetitionNode creates a new node, that holds the parameters of a quantifier.
func newRepetitionNode(op RepetitionOp, min, max int, greedy bool, inner *Ast, span Span) *Ast {
	return &Ast{
		Op:   OpRepetition,
		Span: span,
		Params: RepetitionParam{
			Op:     op,
			Min:    min,
			Max:    max,
			Greedy: greedy,
			Inner:  inner,
		},
	}
}

// newGroupNode creates a new node, that holds a group.
func newGroupNode(p GroupParam, span Span) *Ast {
	return &Ast{
		Op:     OpGroup,
		Span:   span,
		Params: p,
	}
}

// newFlagsNode creates a new node, that holds an inline flag directive.
func newFlagsNode(add, del Flags, span Span) *Ast {
	return &Ast{
		Op:   OpFlags,
		Span: span,
		Params: FlagsParam{
			Add: add,
			Del: del,
		},
	}
}

// newAlternationNode creates a new node, that holds the branches of an alternation.
func newAlternationNode(items []*Ast, span Span) *Ast {
	return &Ast{
		Op:     OpAlternation,
		Span:   span,
		Params: items,
	}
}

// newConcatNode creates a new node, that holds a sequence of subexpressions.
func newConcatNode(items []*Ast, span Span) *Ast {
	return &Ast{
		Op:     OpConcat,
		Span:   span,
		Params: items,
	}
}

// newLiteralItem creates a literal class member.
func newLiteralItem(c rune, kind LiteralKind, span Span) *ClassItem {
	return &ClassItem{
		Op:   ClassItemLiteral,
		Span: span,
		Lo:   c,
		Kind: kind,
	}
}

// newRangeItem creates a character range class member.
func newRangeItem(lo, hi rune, span Span) *ClassItem {
	return &ClassItem{
		Op:   ClassItemRange,
		Span: span,
		Lo:   lo,
		Hi:   hi,
	}
}

// newPerlItem creates a perl class member.
func newPerlItem(kind PerlClassKind, negated bool, span Span) *ClassItem {
	return &ClassItem{
		Op:   ClassItemPerl,
		Span: span,
		Params: PerlClassParam{
			Kind:    kind,
			Negated: negated,
		},
	}
}

// newAsciiItem creates a posix class member.
func newAsciiItem(kind AsciiClassKind, negated bool, span Span) *ClassItem {
	return &ClassItem{
		Op:   ClassItemAscii,
		Span: span,
		Params: AsciiClassParam{
			Kind:    kind,
			Negated: negated,
		},
	}
}

// newUnicodeItem creates a unicode property class member.
func newUnicodeItem(p UnicodeClassParam, span Span) *ClassItem {
	return &ClassItem{
		Op:     ClassItemUnicode,
		Span:   span,
		Params: p,
	}
}

// newBracketedItem creates a nested bracketed class member.
func newBracketedItem(negated bool, set *ClassSet, span Span) *ClassItem {
	return &ClassItem{
		Op:   ClassItemBracketed,
		Span: span,
		Params: ClassBracketedParam{
			Negated: negated,
			Set:     set,
		},
	}
}

// Children returns the child nodes of an ALTERNATION or CONCAT node.
func (n *Ast) Children() []*Ast {
	if n.Op == OpAlternation || n.Op == OpConcat {
		return n.Params.([]*Ast)
	}
	return nil
}
