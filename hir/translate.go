package hir

import (
	"unicode"

	"github.com/regexkit/resyntax/syntax"
)

// Translator lowers parsed patterns into the HIR. The zero value resolves
// unicode properties with the default tables; a different resolver can be
// injected to pin another unicode database version.
type Translator struct {
	Tables UnicodeTables
}

// Translate lowers an AST with the default translator.
func Translate(pattern string, ast *syntax.Ast, cfg syntax.Config) (*Hir, error) {
	var t Translator
	return t.Translate(pattern, ast, cfg)
}

// Translate lowers an AST into the HIR. The pattern must be the string the
// AST was parsed from and cfg the configuration it was parsed with; both are
// needed to resolve spans and flag defaults. All dialect decisions are made
// here: case variants are expanded, classes are resolved to canonical range
// sets and anchors are picked per the multi-line mode.
func (t *Translator) Translate(pattern string, ast *syntax.Ast, cfg syntax.Config) (*Hir, error) {
	tables := t.Tables
	if tables == nil {
		tables = DefaultTables()
	}

	tr := translator{
		pattern: pattern,
		cfg:     cfg,
		tables:  tables,
		flags:   cfg.Flags(),
		names:   make(map[string]int),
	}

	return tr.translate(ast)
}

// translator holds the state of a single translation.
// The flag set is mutated while walking the tree, following the scoping rules
// of inline flags, and restored at group boundaries.
type translator struct {
	pattern string
	cfg     syntax.Config
	tables  UnicodeTables

	flags    syntax.Flags
	depth    uint32
	captures int
	names    map[string]int
}

func (t *translator) errorAt(kind ErrorKind, span syntax.Span) error {
	return &Error{Kind: kind, Pattern: t.pattern, Span: span}
}

func (t *translator) translate(n *syntax.Ast) (*Hir, error) {
	switch n.Op {
	case syntax.OpEmpty:
		return newEmptyNode(), nil
	case syntax.OpLiteral:
		return t.literal(n)
	case syntax.OpDot:
		return t.dot(), nil
	case syntax.OpAssertion:
		return t.assertion(n), nil
	case syntax.OpClassPerl:
		p := n.Params.(syntax.PerlClassParam)
		return t.classNode(perlRanges(p.Kind, t.unicodeMode()), p.Negated, n.Span)
	case syntax.OpClassUnicode:
		p := n.Params.(syntax.UnicodeClassParam)
		r, err := t.unicodeRanges(p)
		if err != nil {
			return nil, err
		}
		return t.classNode(r, p.Negated, n.Span)
	case syntax.OpClassBracketed:
		p := n.Params.(syntax.ClassBracketedParam)
		r, err := t.classSet(p.Set)
		if err != nil {
			return nil, err
		}
		return t.classNode(r, p.Negated, n.Span)
	case syntax.OpRepetition:
		return t.repetition(n)
	case syntax.OpGroup:
		return t.group(n)
	case syntax.OpFlags:
		p := n.Params.(syntax.FlagsParam)
		t.flags = (t.flags | p.Add) &^ p.Del
		return newEmptyNode(), nil
	case syntax.OpAlternation:
		return t.alternation(n)
	default:
		return t.concat(n)
	}
}

func (t *translator) unicodeMode() bool {
	return t.flags&syntax.FlagUnicode != 0
}

// alphabet returns the codepoint range that negation complements against:
// the full codepoint space in unicode mode, otherwise ASCII, widened to all
// byte values when invalid utf-8 is permitted.
func (t *translator) alphabet() (rune, rune) {
	if t.unicodeMode() {
		return 0, unicode.MaxRune
	}
	if t.cfg.AllowInvalidUTF8 {
		return 0, 0xFF
	}
	return 0, 0x7F
}

// literal lowers a literal character. Under case-insensitive matching the
// literal becomes a class of its case variants; a literal whose fold orbit is
// only itself stays a literal.
func (t *translator) literal(n *syntax.Ast) (*Hir, error) {
	if t.flags&syntax.FlagCaseInsensitive != 0 {
		r := foldedRanges(n.C, n.C, !t.unicodeMode())
		r = cleanClass(&r)
		if len(r) != 2 || r[0] != n.C || r[1] != n.C {
			return newClassNode(classRanges(r)), nil
		}
	}

	return t.encodeLiteral(n.C, n.Params.(syntax.LiteralKind), n.Span)
}

// encodeLiteral emits the byte encoding of a literal codepoint. In unicode
// mode this is its UTF-8 encoding. In non-unicode mode only ASCII is
// representable, except that hex and octal escapes in 0x80..0xFF lower to the
// raw byte when invalid utf-8 is permitted.
func (t *translator) encodeLiteral(c rune, kind syntax.LiteralKind, span syntax.Span) (*Hir, error) {
	if !t.unicodeMode() && c > 0x7F {
		if c <= 0xFF && t.cfg.AllowInvalidUTF8 && (kind == syntax.LiteralHex || kind == syntax.LiteralOctal) {
			return newLiteralNode([]byte{byte(c)}), nil
		}
		return nil, t.errorAt(ErrInvalidUTF8Literal, span)
	}

	return newLiteralNode([]byte(string(c))), nil
}

// dot lowers `.` to a class over the alphabet, excluding \n unless the
// dot-matches-newline flag is set.
func (t *translator) dot() *Hir {
	lo, hi := t.alphabet()

	var r []rune
	if t.flags&syntax.FlagDotAll != 0 {
		r = appendRange(r, lo, hi)
	} else {
		r = appendRange(r, lo, '\n'-1)
		r = appendRange(r, '\n'+1, hi)
	}

	return newClassNode(classRanges(r))
}

func (t *translator) assertion(n *syntax.Ast) *Hir {
	multiLine := t.flags&syntax.FlagMultiLine != 0

	switch n.Params.(syntax.AssertionKind) {
	case syntax.AssertStartLine:
		if multiLine {
			return newAnchorNode(AnchorStartLine)
		}
		return newAnchorNode(AnchorStartText)
	case syntax.AssertEndLine:
		if multiLine {
			return newAnchorNode(AnchorEndLine)
		}
		return newAnchorNode(AnchorEndText)
	case syntax.AssertStartText:
		return newAnchorNode(AnchorStartText)
	case syntax.AssertEndText:
		return newAnchorNode(AnchorEndText)
	case syntax.AssertWordBoundary:
		return newWordBoundaryNode(!t.unicodeMode(), false)
	default:
		return newWordBoundaryNode(!t.unicodeMode(), true)
	}
}

// unicodeRanges resolves a `\p{...}` class to its positive range vector.
// Property classes require unicode mode; negation is applied by the caller.
func (t *translator) unicodeRanges(p syntax.UnicodeClassParam) ([]rune, error) {
	if !t.unicodeMode() {
		return nil, t.errorAt(ErrUnicodeClassUnknown, p.NameSpan)
	}

	tab, ok := t.tables(p.Name, p.Value)
	if !ok {
		return nil, t.errorAt(ErrUnicodeClassUnknown, p.NameSpan)
	}

	r := appendTable(nil, tab)
	return cleanClass(&r), nil
}

// classNode builds a class node from a positive range vector: case variants
// are expanded first, then the set is clamped to the alphabet, or complemented
// against it if the class is negated. Folding before complementing means a
// negated class under (?i) excludes all case variants of its members.
func (t *translator) classNode(r []rune, negated bool, span syntax.Span) (*Hir, error) {
	r = cleanClass(&r)
	if t.flags&syntax.FlagCaseInsensitive != 0 {
		r = foldClass(r, !t.unicodeMode())
	}

	lo, hi := t.alphabet()
	if negated {
		r = negateClass(r, lo, hi)
	} else {
		r = intersectClass(r, []rune{lo, hi})
	}

	if len(r) == 0 {
		return nil, t.errorAt(ErrClassEmpty, span)
	}

	return newClassNode(classRanges(r)), nil
}

// classSet evaluates a class set expression to a positive range vector.
func (t *translator) classSet(set *syntax.ClassSet) ([]rune, error) {
	if set.Op == syntax.ClassSetUnion {
		var r []rune
		for _, item := range set.Items {
			member, err := t.classItem(item)
			if err != nil {
				return nil, err
			}
			r = appendRanges(r, member)
		}
		return cleanClass(&r), nil
	}

	lhs, err := t.classSet(set.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := t.classSet(set.Rhs)
	if err != nil {
		return nil, err
	}

	if set.Op == syntax.ClassSetIntersection {
		return intersectClass(lhs, rhs), nil
	}
	return differenceClass(lhs, rhs), nil
}

// classItem evaluates a single member of a class set union. Negated members
// (`\D`, `[:^alpha:]`, nested `[^...]`) are complemented against the alphabet
// before being united with their siblings.
func (t *translator) classItem(item *syntax.ClassItem) ([]rune, error) {
	lo, hi := t.alphabet()

	switch item.Op {
	case syntax.ClassItemLiteral:
		if err := t.checkMember(item.Lo, item.Kind, item.Span); err != nil {
			return nil, err
		}
		return appendRange(nil, item.Lo, item.Lo), nil

	case syntax.ClassItemRange:
		if err := t.checkRange(item.Lo, item.Hi, item.Span); err != nil {
			return nil, err
		}
		return appendRange(nil, item.Lo, item.Hi), nil

	case syntax.ClassItemPerl:
		p := item.Params.(syntax.PerlClassParam)
		r := perlRanges(p.Kind, t.unicodeMode())
		if p.Negated {
			r = negateClass(r, lo, hi)
		}
		return r, nil

	case syntax.ClassItemAscii:
		p := item.Params.(syntax.AsciiClassParam)
		r := asciiRanges(p.Kind)
		if p.Negated {
			r = negateClass(r, lo, hi)
		}
		return r, nil

	case syntax.ClassItemUnicode:
		p := item.Params.(syntax.UnicodeClassParam)
		r, err := t.unicodeRanges(p)
		if err != nil {
			return nil, err
		}
		if p.Negated {
			r = negateClass(r, lo, hi)
		}
		return r, nil

	default:
		p := item.Params.(syntax.ClassBracketedParam)
		r, err := t.classSet(p.Set)
		if err != nil {
			return nil, err
		}
		if p.Negated {
			r = negateClass(r, lo, hi)
		}
		return r, nil
	}
}

// checkMember rejects class members that are not representable in the current
// mode, with the same rule as standalone literals.
func (t *translator) checkMember(c rune, kind syntax.LiteralKind, span syntax.Span) error {
	if t.unicodeMode() || c <= 0x7F {
		return nil
	}
	if c <= 0xFF && t.cfg.AllowInvalidUTF8 && (kind == syntax.LiteralHex || kind == syntax.LiteralOctal) {
		return nil
	}
	return t.errorAt(ErrInvalidUTF8Literal, span)
}

// checkRange rejects ranges whose endpoints fall outside the alphabet in
// non-unicode mode. The parser has already validated the range ordering, but
// its endpoints lose the literal kind, so the check is on values alone.
func (t *translator) checkRange(lo, hi rune, span syntax.Span) error {
	if t.unicodeMode() {
		return nil
	}
	_, max := t.alphabet()
	if lo > max || hi > max {
		return t.errorAt(ErrInvalidUTF8Literal, span)
	}
	return nil
}

func (t *translator) repetition(n *syntax.Ast) (*Hir, error) {
	p := n.Params.(syntax.RepetitionParam)

	max := p.Max
	if max == syntax.RepetitionNoMax {
		max = MaxRepeat
	}

	inner, err := t.translate(p.Inner)
	if err != nil {
		return nil, err
	}

	return newRepetitionNode(p.Min, max, p.Greedy, inner), nil
}

// group lowers a group node. Inline flags carried by the group scope to its
// body; non-capturing groups leave no trace in the HIR. Capture indices are
// assigned in the order of the opening parentheses, starting at 1.
func (t *translator) group(n *syntax.Ast) (*Hir, error) {
	p := n.Params.(syntax.GroupParam)

	t.depth++
	if t.depth > t.nestLimit() {
		return nil, t.errorAt(ErrNestLimitExceeded, n.Span)
	}

	saved := t.flags
	t.flags = (t.flags | p.AddFlags) &^ p.DelFlags

	if p.Kind == syntax.GroupNonCapture {
		inner, err := t.translate(p.Inner)
		t.flags = saved
		t.depth--
		return inner, err
	}

	t.captures++
	index := t.captures
	if p.Kind == syntax.GroupName {
		// the parser rejects duplicate names already; re-checking keeps the
		// name table sound for ASTs built by hand
		if _, ok := t.names[p.Name]; ok {
			return nil, t.errorAt(ErrGroupNameDuplicate, n.Span)
		}
		t.names[p.Name] = index
	}

	inner, err := t.translate(p.Inner)
	t.flags = saved
	t.depth--
	if err != nil {
		return nil, err
	}

	return newGroupNode(index, p.Name, inner), nil
}

func (t *translator) nestLimit() uint32 {
	if t.cfg.NestLimit == 0 {
		return syntax.DefaultNestLimit
	}
	return t.cfg.NestLimit
}

func (t *translator) alternation(n *syntax.Ast) (*Hir, error) {
	children := n.Children()

	items := make([]*Hir, 0, len(children))
	for _, child := range children {
		h, err := t.translate(child)
		if err != nil {
			return nil, err
		}
		items = append(items, h)
	}

	return newAlternationNode(items), nil
}

// concat lowers a sequence. Flag directives take effect here and vanish from
// the HIR, empty subexpressions are dropped and adjacent literals merge into
// a single literal node.
func (t *translator) concat(n *syntax.Ast) (*Hir, error) {
	var items []*Hir

	for _, child := range n.Children() {
		if child.Op == syntax.OpFlags {
			p := child.Params.(syntax.FlagsParam)
			t.flags = (t.flags | p.Add) &^ p.Del
			continue
		}

		h, err := t.translate(child)
		if err != nil {
			return nil, err
		}

		if h.Op == OpEmpty {
			continue
		}
		if h.Op == OpLiteral && len(items) > 0 && items[len(items)-1].Op == OpLiteral {
			last := items[len(items)-1]
			last.Bytes = append(last.Bytes, h.Bytes...)
			continue
		}

		items = append(items, h)
	}

	switch len(items) {
	case 0:
		return newEmptyNode(), nil
	case 1:
		return items[0], nil
	default:
		return newConcatNode(items), nil
	}
}
