package syntax

import (
	"strconv"
	"strings"
	"unicode"
)

// maxRepeatCount is the maximum count allowed in a counted repetition.
// Matching engines expand counted repetitions, so large counts are rejected
// here instead of downstream.
const maxRepeatCount = 1000

// parser holds the state of a single parse: the source cursor, the read-only
// configuration, the positionally active flags, the current nesting depth and
// the capture group names seen so far.
type parser struct {
	s     source
	cfg   Config
	flags Flags
	depth uint32
	names map[string]Span
}

// Parse parses a regex pattern into an AST under the given configuration.
// The returned error is always a *Error carrying the error kind, the pattern
// and the span of the offending construct.
//
// The parser is a single left-to-right recursive descent with one token of
// lookahead. It fails fast on the first error and never returns a partial
// tree.
func Parse(pattern string, cfg Config) (*Ast, error) {
	p := parser{
		cfg:   cfg,
		flags: cfg.Flags(),
		names: make(map[string]Span),
	}
	p.s.init(pattern)

	ast, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}

	if _, ok := p.s.peek(); ok {
		// parseAlternation only stops early at an unbalanced ')'
		pos := p.s.tell()
		return nil, p.errorAt(ErrGroupUnopened, pos, pos+1)
	}

	return ast, nil
}

// errorAt creates a parse error covering the given byte range of the pattern.
func (p *parser) errorAt(kind ErrorKind, start, end int) error {
	if end > len(p.s.orig) {
		end = len(p.s.orig)
	}
	if start > end {
		start = end
	}

	return newError(kind, p.s.orig, newSpan(start, end))
}

// enter increases the nesting depth and checks it against the configured limit.
// The limit is an explicit counter so that adversarial patterns fail with a
// structured error instead of exhausting the call stack.
func (p *parser) enter(span Span) error {
	p.depth++
	if p.depth > p.cfg.nestLimit() {
		return newError(ErrNestLimitExceeded, p.s.orig, span)
	}

	return nil
}

// leave decreases the nesting depth.
func (p *parser) leave() {
	p.depth--
}

// parseAlternation parses a sequence of concatenations separated by '|'.
// If the alternation only contains one branch, the branch is returned directly.
func (p *parser) parseAlternation() (*Ast, error) {
	start := p.s.tell()

	var items []*Ast
	for {
		item, err := p.parseConcat()
		if err != nil {
			return nil, err
		}

		items = append(items, item)

		if !p.s.match('|') {
			break
		}
	}

	if len(items) == 1 {
		return items[0], nil
	}

	return newAlternationNode(items, newSpan(start, p.s.tell())), nil
}

// parseConcat parses a sequence of atoms with optional quantifiers, up to the
// end of the pattern, a '|' or a ')'.
func (p *parser) parseConcat() (*Ast, error) {
	start := p.s.tell()

	var items []*Ast
	var err error

	for {
		c, ok := p.s.peek()
		if !ok {
			break // end of pattern
		}

		if c == '|' || c == ')' {
			break // end of branch
		}

		if p.flags&FlagVerbose != 0 {
			// skip whitespace and comments
			if isWhitespace(c) {
				p.s.read()
				continue
			}
			if c == '#' {
				p.s.skipUntil('\n')
				continue
			}
		}

		here := p.s.tell()
		p.s.read()

		switch c {
		default:
			items = append(items, newLiteral(c, LiteralVerbatim, newSpan(here, p.s.tell())))

		case '\\':
			var node *Ast
			node, err = p.parseEscape(here)
			if err != nil {
				return nil, err
			}

			items = append(items, node)

		case '.':
			items = append(items, newDotNode(newSpan(here, p.s.tell())))

		case '^':
			items = append(items, newAssertionNode(AssertStartLine, newSpan(here, p.s.tell())))

		case '$':
			items = append(items, newAssertionNode(AssertEndLine, newSpan(here, p.s.tell())))

		case '[':
			var node *Ast
			node, err = p.parseClass(here)
			if err != nil {
				return nil, err
			}

			items = append(items, node)

		case '(':
			var node *Ast
			node, err = p.parseGroup(here)
			if err != nil {
				return nil, err
			}

			items = append(items, node)

		case '*':
			items, err = p.wrapRepeat(items, RepZeroOrMore, 0, RepetitionNoMax, here)
			if err != nil {
				return nil, err
			}

		case '+':
			items, err = p.wrapRepeat(items, RepOneOrMore, 1, RepetitionNoMax, here)
			if err != nil {
				return nil, err
			}

		case '?':
			items, err = p.wrapRepeat(items, RepZeroOrOne, 0, 1, here)
			if err != nil {
				return nil, err
			}

		case '{':
			items, err = p.parseCounted(items, here)
			if err != nil {
				return nil, err
			}
		}
	}

	switch len(items) {
	case 0:
		return newEmptyNode(newSpan(start, start)), nil
	case 1:
		return items[0], nil
	default:
		return newConcatNode(items, newSpan(start, items[len(items)-1].Span.End)), nil
	}
}

// wrapRepeat replaces the last parsed atom with a repetition of it.
// A quantifier with nothing before it, or applied to an assertion, a flag
// directive or another repetition, has nothing to repeat.
func (p *parser) wrapRepeat(items []*Ast, op RepetitionOp, min, max int, here int) ([]*Ast, error) {
	if len(items) == 0 {
		return nil, p.errorAt(ErrRepetitionMissing, here, p.s.tell())
	}

	item := items[len(items)-1]
	switch item.Op {
	case OpRepetition, OpAssertion, OpFlags, OpEmpty:
		return nil, p.errorAt(ErrRepetitionMissing, here, p.s.tell())
	}

	greedy := !p.s.match('?')
	if p.flags&FlagSwapGreed != 0 {
		greedy = !greedy
	}

	span := newSpan(item.Span.Start, p.s.tell())
	items[len(items)-1] = newRepetitionNode(op, min, max, greedy, item, span)

	return items, nil
}

// parseCounted parses a counted repetition after its '{' has been read.
// A brace that does not form a valid counted repetition is an ordinary
// literal; the cursor is rewound to just past the brace in that case.
func (p *parser) parseCounted(items []*Ast, here int) ([]*Ast, error) {
	if next, ok := p.s.peek(); ok && next == '}' {
		// empty braces are a literal
		return append(items, newLiteral('{', LiteralVerbatim, newSpan(here, here+1))), nil
	}

	lo, hasLo, okLo := p.s.nextInt(maxRepeatCount)

	hi, hasHi, okHi := lo, hasLo, true
	comma := p.s.match(',')
	if comma {
		hi, hasHi, okHi = p.s.nextInt(maxRepeatCount)
	}

	if (!hasLo && !comma) || !p.s.match('}') {
		// not a counted repetition after all
		p.s.seek(here + 1)
		return append(items, newLiteral('{', LiteralVerbatim, newSpan(here, here+1))), nil
	}

	if !okLo || !okHi {
		return nil, p.errorAt(ErrRepetitionCountOverflow, here, p.s.tell())
	}

	min := 0
	if hasLo {
		min = lo
	}

	max := RepetitionNoMax
	if !comma {
		max = min
	} else if hasHi {
		max = hi
	}

	if max != RepetitionNoMax && max < min {
		return nil, p.errorAt(ErrRepetitionCountInvalid, here, p.s.tell())
	}

	return p.wrapRepeat(items, RepRange, min, max, here)
}

// parseEscape parses an escape sequence outside of a character class.
// This function is only called if the last character was a backslash.
func (p *parser) parseEscape(here int) (*Ast, error) {
	c, ok := p.s.read()
	if !ok {
		return nil, p.errorAt(ErrEscapeUnexpectedEOF, here, p.s.tell())
	}

	switch c {
	case 'A':
		return newAssertionNode(AssertStartText, p.spanFrom(here)), nil
	case 'z', 'Z':
		return newAssertionNode(AssertEndText, p.spanFrom(here)), nil
	case 'b':
		return newAssertionNode(AssertWordBoundary, p.spanFrom(here)), nil
	case 'B':
		return newAssertionNode(AssertNotWordBoundary, p.spanFrom(here)), nil
	case 'd', 'D':
		return newPerlClassNode(PerlDigit, c == 'D', p.spanFrom(here)), nil
	case 's', 'S':
		return newPerlClassNode(PerlSpace, c == 'S', p.spanFrom(here)), nil
	case 'w', 'W':
		return newPerlClassNode(PerlWord, c == 'W', p.spanFrom(here)), nil
	case 'p', 'P':
		param, span, err := p.parseUnicodeClass(here, c == 'P')
		if err != nil {
			return nil, err
		}

		return newUnicodeClassNode(param, span), nil
	default:
		r, kind, err := p.parseEscapeChar(here, c)
		if err != nil {
			return nil, err
		}

		return newLiteral(r, kind, p.spanFrom(here)), nil
	}
}

// spanFrom returns the span from the given position to the current one.
func (p *parser) spanFrom(start int) Span {
	return newSpan(start, p.s.tell())
}

// parseEscapeChar parses the escapes that produce a single literal character.
// The backslash at position `here` and the character c have already been read.
// This function is shared between escapes inside and outside of classes.
func (p *parser) parseEscapeChar(here int, c rune) (rune, LiteralKind, error) {
	switch c {
	case 'x':
		if p.s.match('{') {
			return p.parseBracedHex(here)
		}

		e := p.s.nextHex(2)
		if len(e) != 2 {
			return 0, 0, p.errorAt(ErrEscapeHexInvalid, here, p.s.tell())
		}

		return parseIntRune(e, 16), LiteralHex, nil

	case 'u', 'U':
		// u: exactly four digits, or a braced form
		// U: exactly eight digits
		if c == 'u' && p.s.match('{') {
			return p.parseBracedHex(here)
		}

		size := 4
		if c == 'U' {
			size = 8
		}

		e := p.s.nextHex(size)
		if len(e) != size {
			return 0, 0, p.errorAt(ErrEscapeHexInvalid, here, p.s.tell())
		}

		r := parseIntRune(e, 16)
		if !validRune(r) {
			return 0, 0, p.errorAt(ErrEscapeHexInvalid, here, p.s.tell())
		}

		return r, LiteralHex, nil

	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		// octal escape; this front end has no backreferences
		if !p.cfg.Octal || c >= '8' {
			return 0, 0, p.errorAt(ErrEscapeUnrecognized, here, p.s.tell())
		}

		value := toDigit(c)
		for _, d := range p.s.nextOct(2) {
			value = 8*value + toDigit(d)
		}

		if value > 0o377 {
			return 0, 0, p.errorAt(ErrEscapeOctalInvalid, here, p.s.tell())
		}

		return rune(value), LiteralOctal, nil

	case 'a':
		return '\a', LiteralEscaped, nil
	case 'f':
		return '\f', LiteralEscaped, nil
	case 'n':
		return '\n', LiteralEscaped, nil
	case 'r':
		return '\r', LiteralEscaped, nil
	case 't':
		return '\t', LiteralEscaped, nil
	case 'v':
		return '\v', LiteralEscaped, nil
	case '\\':
		return '\\', LiteralEscaped, nil

	default:
		if isASCIILetter(c) {
			return 0, 0, p.errorAt(ErrEscapeUnrecognized, here, p.s.tell())
		}

		// punctuation and whitespace escape to themselves
		return c, LiteralEscaped, nil
	}
}

// parseBracedHex parses the digits of a braced hex escape after its '{'.
func (p *parser) parseBracedHex(here int) (rune, LiteralKind, error) {
	digits, ok := p.s.getUntil('}')
	if !ok {
		return 0, 0, p.errorAt(ErrEscapeHexInvalid, here, p.s.tell())
	}

	for i := 0; i < len(digits); i++ {
		if !isHexDigitByte(digits[i]) {
			return 0, 0, p.errorAt(ErrEscapeHexInvalid, here, p.s.tell())
		}
	}

	v, err := strconv.ParseInt(digits, 16, 32)
	if err != nil || !validRune(rune(v)) {
		return 0, 0, p.errorAt(ErrEscapeHexInvalid, here, p.s.tell())
	}

	return rune(v), LiteralHex, nil
}

// validRune checks that a codepoint is a valid, non-surrogate rune.
func validRune(r rune) bool {
	return r >= 0 && r <= unicode.MaxRune && !(r >= 0xD800 && r <= 0xDFFF)
}

// parseIntRune parses a string representation of a number in the given base and returns the corresponding rune value.
// The input string is expected to be valid for the given base and should not overflow the int32 type.
func parseIntRune(s string, base int) rune {
	r, _ := strconv.ParseInt(s, base, 32)
	return rune(r)
}

// parseUnicodeClass parses a unicode property class after its 'p' or 'P'.
// Both the one-letter form `\pL` and the braced forms `\p{Greek}`,
// `\p{Script=Han}` and `\p{^L}` are recognized. The name is not resolved
// here; resolution against the property tables happens at translate time.
func (p *parser) parseUnicodeClass(here int, negated bool) (UnicodeClassParam, Span, error) {
	var param UnicodeClassParam

	if p.s.match('{') {
		nameStart := p.s.tell()

		body, ok := p.s.getUntil('}')
		if !ok {
			return param, Span{}, p.errorAt(ErrUnicodeClassInvalid, here, p.s.tell())
		}

		if strings.HasPrefix(body, "^") {
			negated = !negated
			body = body[1:]
			nameStart++
		}

		name := body
		value := ""
		if i := strings.IndexAny(body, "=:"); i >= 0 {
			name = body[:i]
			value = body[i+1:]

			if value == "" {
				return param, Span{}, p.errorAt(ErrUnicodeClassInvalid, here, p.s.tell())
			}
		}

		if name == "" {
			return param, Span{}, p.errorAt(ErrUnicodeClassInvalid, here, p.s.tell())
		}

		param = UnicodeClassParam{
			Name:     name,
			Value:    value,
			Negated:  negated,
			NameSpan: newSpan(nameStart, nameStart+len(body)),
		}

		return param, p.spanFrom(here), nil
	}

	// one-letter general category, e.g. `\pL`
	c, ok := p.s.read()
	if !ok || !isASCIILetter(c) {
		return param, Span{}, p.errorAt(ErrUnicodeClassInvalid, here, p.s.tell())
	}

	param = UnicodeClassParam{
		Name:     string(c),
		Negated:  negated,
		NameSpan: newSpan(p.s.tell()-1, p.s.tell()),
	}

	return param, p.spanFrom(here), nil
}

// parseClass parses a bracketed character class after its '[' has been read.
// Unterminated classes are reported with the span of the opening bracket.
func (p *parser) parseClass(here int) (*Ast, error) {
	if err := p.enter(newSpan(here, here+1)); err != nil {
		return nil, err
	}
	defer p.leave()

	negated := p.s.match('^')

	set, err := p.parseClassSet(here)
	if err != nil {
		return nil, err
	}

	if !p.s.match(']') {
		return nil, p.errorAt(ErrClassUnclosed, here, here+1)
	}

	return newBracketedClassNode(negated, set, p.spanFrom(here)), nil
}

// parseClassSet parses a class set expression: a union of members, optionally
// combined with the left-associative `&&` and `--` operators when the dialect
// enables them. The closing ']' is left for the caller.
func (p *parser) parseClassSet(here int) (*ClassSet, error) {
	start := p.s.tell()

	lhs, err := p.parseClassUnion(here, true)
	if err != nil {
		return nil, err
	}

	for p.cfg.ClassSets {
		var op ClassSetOp
		if p.s.startsWith("&&") {
			op = ClassSetIntersection
		} else if p.s.startsWith("--") {
			op = ClassSetDifference
		} else {
			break
		}

		p.s.read()
		p.s.read()

		rhs, err := p.parseClassUnion(here, false)
		if err != nil {
			return nil, err
		}

		lhs = &ClassSet{
			Op:   op,
			Span: newSpan(start, p.s.tell()),
			Lhs:  lhs,
			Rhs:  rhs,
		}
	}

	return lhs, nil
}

// parseClassUnion parses juxtaposed class members up to a ']', a set operator
// or the end of the pattern. A ']' at the first member position is an ordinary
// member, so `[]]` is the class containing ']' and a lone `[]` runs off the
// end of the pattern.
func (p *parser) parseClassUnion(here int, first bool) (*ClassSet, error) {
	start := p.s.tell()

	var items []*ClassItem
	for {
		c, ok := p.s.peek()
		if !ok {
			return nil, p.errorAt(ErrClassUnclosed, here, here+1)
		}

		if p.cfg.ClassSets && (p.s.startsWith("&&") || p.s.startsWith("--")) {
			break
		}

		if c == ']' && !(first && len(items) == 0) {
			break
		}

		itemStart := p.s.tell()

		item, err := p.parseClassItem(here)
		if err != nil {
			return nil, err
		}

		// potential range
		if item.Op == ClassItemLiteral && p.s.startsWith("-") &&
			!p.s.startsWith("-]") && !(p.cfg.ClassSets && p.s.startsWith("--")) {
			p.s.read()

			end, err := p.parseClassItem(here)
			if err != nil {
				return nil, err
			}

			if end.Op != ClassItemLiteral {
				return nil, p.errorAt(ErrClassRangeLiteral, itemStart, p.s.tell())
			}
			if end.Lo < item.Lo {
				return nil, p.errorAt(ErrClassRangeInvalid, itemStart, p.s.tell())
			}

			item = newRangeItem(item.Lo, end.Lo, newSpan(itemStart, p.s.tell()))
		}

		items = append(items, item)
	}

	return &ClassSet{
		Op:    ClassSetUnion,
		Span:  newSpan(start, p.s.tell()),
		Items: items,
	}, nil
}

// parseClassItem parses a single class member.
func (p *parser) parseClassItem(here int) (*ClassItem, error) {
	start := p.s.tell()

	c, ok := p.s.read()
	if !ok {
		return nil, p.errorAt(ErrClassUnclosed, here, here+1)
	}

	switch c {
	case '\\':
		return p.parseClassEscape(start)

	case '[':
		if p.s.startsWith(":") {
			return p.parsePosixClass(start)
		}

		if !p.cfg.ClassSets {
			// '[' is an ordinary member in this dialect
			return newLiteralItem('[', LiteralVerbatim, p.spanFrom(start)), nil
		}

		// nested bracketed class
		if err := p.enter(newSpan(start, start+1)); err != nil {
			return nil, err
		}
		defer p.leave()

		negated := p.s.match('^')

		set, err := p.parseClassSet(start)
		if err != nil {
			return nil, err
		}

		if !p.s.match(']') {
			return nil, p.errorAt(ErrClassUnclosed, start, start+1)
		}

		return newBracketedItem(negated, set, p.spanFrom(start)), nil

	default:
		return newLiteralItem(c, LiteralVerbatim, p.spanFrom(start)), nil
	}
}

// parsePosixClass parses a posix class like `[:alpha:]` or `[:^alpha:]`.
// The '[' at position `start` has been read and the cursor is at the ':'.
func (p *parser) parsePosixClass(start int) (*ClassItem, error) {
	p.s.read() // ':'

	negated := p.s.match('^')

	name, ok := p.s.getUntil(':')
	if !ok || !p.s.match(']') {
		return nil, p.errorAt(ErrClassPosixUnknown, start, p.s.tell())
	}

	kind, ok := asciiClassKinds[name]
	if !ok {
		return nil, p.errorAt(ErrClassPosixUnknown, start, p.s.tell())
	}

	return newAsciiItem(kind, negated, p.spanFrom(start)), nil
}

// parseClassEscape parses an escape sequence inside a character class.
// The backslash at position `start` has been read. Unlike outside a class,
// `\b` is the backspace character and the assertion escapes are rejected.
func (p *parser) parseClassEscape(start int) (*ClassItem, error) {
	c, ok := p.s.read()
	if !ok {
		return nil, p.errorAt(ErrEscapeUnexpectedEOF, start, p.s.tell())
	}

	switch c {
	case 'd', 'D':
		return newPerlItem(PerlDigit, c == 'D', p.spanFrom(start)), nil
	case 's', 'S':
		return newPerlItem(PerlSpace, c == 'S', p.spanFrom(start)), nil
	case 'w', 'W':
		return newPerlItem(PerlWord, c == 'W', p.spanFrom(start)), nil
	case 'p', 'P':
		param, span, err := p.parseUnicodeClass(start, c == 'P')
		if err != nil {
			return nil, err
		}

		return newUnicodeItem(param, span), nil
	case 'b':
		return newLiteralItem('\b', LiteralEscaped, p.spanFrom(start)), nil
	default:
		r, kind, err := p.parseEscapeChar(start, c)
		if err != nil {
			return nil, err
		}

		return newLiteralItem(r, kind, p.spanFrom(start)), nil
	}
}

// parseGroup parses a group after its '(' has been read.
// Unclosed groups are reported with the span of the opening parenthesis.
func (p *parser) parseGroup(here int) (*Ast, error) {
	kind := GroupCapture
	name := ""

	var add, del Flags

	if p.s.match('?') {
		c, ok := p.s.read()
		if !ok {
			return nil, p.errorAt(ErrGroupUnclosed, here, here+1)
		}

		switch c {
		case ':':
			kind = GroupNonCapture

		case 'P':
			// python-style named group
			if !p.s.match('<') {
				return nil, p.errorAt(ErrGroupInvalid, here, p.s.tell())
			}

			var err error
			name, err = p.parseGroupName(here)
			if err != nil {
				return nil, err
			}

			kind = GroupName

		case '<':
			if next, ok := p.s.peek(); ok && (next == '=' || next == '!') {
				// lookbehind is not part of this dialect
				return nil, p.errorAt(ErrGroupInvalid, here, p.s.tell()+1)
			}

			var err error
			name, err = p.parseGroupName(here)
			if err != nil {
				return nil, err
			}

			kind = GroupName

		case '=', '!', '>', '#', '(':
			// lookahead, atomic groups, comments and conditionals
			return nil, p.errorAt(ErrGroupInvalid, here, p.s.tell())

		case ')':
			return nil, p.errorAt(ErrFlagUnrecognized, here, p.s.tell())

		default:
			if !isFlag(c) && c != '-' {
				if isASCIILetter(c) {
					return nil, p.errorAt(ErrFlagUnrecognized, p.s.tell()-p.s.clen(c), p.s.tell())
				}

				return nil, p.errorAt(ErrGroupInvalid, here, p.s.tell())
			}

			var scoped bool
			var err error

			add, del, scoped, err = p.parseFlags(here, c)
			if err != nil {
				return nil, err
			}

			if !scoped {
				// a flag directive like `(?i)`; applies to the
				// remainder of the enclosing group
				p.flags = (p.flags | add) &^ del
				return newFlagsNode(add, del, p.spanFrom(here)), nil
			}

			kind = GroupNonCapture
		}
	}

	if err := p.enter(newSpan(here, here+1)); err != nil {
		return nil, err
	}

	saved := p.flags
	p.flags = (p.flags | add) &^ del

	inner, err := p.parseAlternation()

	p.flags = saved
	p.leave()

	if err != nil {
		return nil, err
	}

	if !p.s.match(')') {
		return nil, p.errorAt(ErrGroupUnclosed, here, here+1)
	}

	param := GroupParam{
		Kind:     kind,
		Name:     name,
		AddFlags: add,
		DelFlags: del,
		Inner:    inner,
	}

	return newGroupNode(param, p.spanFrom(here)), nil
}

// parseGroupName parses a capture group name up to its closing '>'.
// Duplicate names are rejected pattern-wide, including across alternation
// branches.
func (p *parser) parseGroupName(here int) (string, error) {
	nameStart := p.s.tell()

	name, ok := p.s.getUntil('>')
	if !ok {
		if p.s.startsWith(">") {
			return "", p.errorAt(ErrGroupNameEmpty, here, nameStart+1)
		}

		return "", p.errorAt(ErrGroupUnclosed, here, here+1)
	}

	span := newSpan(nameStart, nameStart+len(name))

	if !validGroupName(name) {
		return "", p.errorAt(ErrGroupNameInvalid, span.Start, span.End)
	}

	if _, exists := p.names[name]; exists {
		return "", p.errorAt(ErrGroupNameDuplicate, span.Start, span.End)
	}

	p.names[name] = span

	return name, nil
}

// parseFlags parses the flag letters of an inline flag group.
// The first character after the '?' is passed in. The return value `scoped`
// is true if the flags end with ':' and apply to a group body, and false if
// they end with ')' and form a directive.
func (p *parser) parseFlags(here int, c rune) (add, del Flags, scoped bool, err error) {
	neg := false
	negPos := 0

	for {
		if c == '-' {
			if neg {
				err = p.errorAt(ErrFlagRepeatedNegation, p.s.tell()-1, p.s.tell())
				return
			}

			neg = true
			negPos = p.s.tell() - 1
		} else if isFlag(c) {
			flag := getFlag(c)

			if (add|del)&flag != 0 {
				err = p.errorAt(ErrFlagDuplicate, p.s.tell()-p.s.clen(c), p.s.tell())
				return
			}

			if neg {
				del |= flag
			} else {
				add |= flag
			}
		} else if isASCIILetter(c) {
			err = p.errorAt(ErrFlagUnrecognized, p.s.tell()-p.s.clen(c), p.s.tell())
			return
		} else {
			err = p.errorAt(ErrGroupInvalid, here, p.s.tell())
			return
		}

		next, ok := p.s.read()
		if !ok {
			err = p.errorAt(ErrGroupUnclosed, here, here+1)
			return
		}

		if next == ')' || next == ':' {
			if neg && del == 0 {
				err = p.errorAt(ErrFlagDanglingNegation, negPos, negPos+1)
				return
			}

			scoped = next == ':'
			return
		}

		c = next
	}
}
