package syntax

import (
	"fmt"
	"strings"

	"github.com/regexkit/resyntax/util"
)

// ErrorKind classifies parse errors.
type ErrorKind uint32

// Possible parse error kinds.
const (
	// Structural errors: a delimiter or operand is missing.
	ErrClassUnclosed ErrorKind = iota + 1
	ErrGroupUnclosed
	ErrGroupUnopened
	ErrRepetitionMissing
	ErrEscapeUnexpectedEOF

	// Semantic errors: the construct is complete but invalid.
	ErrClassRangeInvalid
	ErrClassRangeLiteral
	ErrClassPosixUnknown
	ErrGroupInvalid
	ErrGroupNameEmpty
	ErrGroupNameInvalid
	ErrGroupNameDuplicate
	ErrRepetitionCountInvalid
	ErrRepetitionCountOverflow
	ErrEscapeUnrecognized
	ErrEscapeHexInvalid
	ErrEscapeOctalInvalid
	ErrUnicodeClassInvalid
	ErrFlagUnrecognized
	ErrFlagDuplicate
	ErrFlagDanglingNegation
	ErrFlagRepeatedNegation

	// Resource errors.
	ErrNestLimitExceeded
)

// message returns the human-readable description of the error kind.
func (k ErrorKind) message() string {
	switch k {
	case ErrClassUnclosed:
		return "unterminated character set"
	case ErrGroupUnclosed:
		return "missing ), unterminated group"
	case ErrGroupUnopened:
		return "unbalanced parenthesis"
	case ErrRepetitionMissing:
		return "nothing to repeat"
	case ErrEscapeUnexpectedEOF:
		return "bad escape (end of pattern)"
	case ErrClassRangeInvalid:
		return "bad character range"
	case ErrClassRangeLiteral:
		return "character range endpoint must be a literal"
	case ErrClassPosixUnknown:
		return "unknown posix character class"
	case ErrGroupInvalid:
		return "unsupported or unknown group extension"
	case ErrGroupNameEmpty:
		return "missing group name"
	case ErrGroupNameInvalid:
		return "bad character in group name"
	case ErrGroupNameDuplicate:
		return "redefinition of group name"
	case ErrRepetitionCountInvalid:
		return "min repeat greater than max repeat"
	case ErrRepetitionCountOverflow:
		return "repetition count too large"
	case ErrEscapeUnrecognized:
		return "bad escape"
	case ErrEscapeHexInvalid:
		return "invalid hexadecimal escape"
	case ErrEscapeOctalInvalid:
		return "octal escape value outside of range 0-0377"
	case ErrUnicodeClassInvalid:
		return "malformed unicode property class"
	case ErrFlagUnrecognized:
		return "unknown flag"
	case ErrFlagDuplicate:
		return "repeated flag"
	case ErrFlagDanglingNegation:
		return "missing flag after -"
	case ErrFlagRepeatedNegation:
		return "flags may only be negated once"
	case ErrNestLimitExceeded:
		return "pattern exceeds the nesting limit"
	default:
		return "unknown error"
	}
}

// String returns the description of the error kind.
func (k ErrorKind) String() string {
	return k.message()
}

// Error is a structured parse error. It carries the error kind, the original
// pattern and the byte span of the offending construct, which is enough for a
// caller to render a caret-pointed diagnostic.
type Error struct {
	Kind    ErrorKind
	Pattern string
	Span    Span
}

// newError creates a parse error for the given span of the pattern.
func newError(kind ErrorKind, pattern string, span Span) *Error {
	return &Error{
		Kind:    kind,
		Pattern: pattern,
		Span:    span,
	}
}

// Error returns a one-line description of the parse error.
// If the pattern contains new line characters, the line and column number
// of the error position is appended.
func (e *Error) Error() string {
	msg := fmt.Sprintf("regex parse error: %s at position %d", e.Kind.message(), e.Span.Start)

	if strings.Contains(e.Pattern, "\n") {
		lineno := strings.Count(e.Pattern[:e.Span.Start], "\n") + 1
		colno := e.Span.Start - strings.LastIndex(e.Pattern[:e.Span.Start], "\n")

		msg = fmt.Sprintf("%s (line %d, column %d)", msg, lineno, colno)
	}

	return msg
}

// Diagnostic returns a multi-line rendering of the error with a caret marker
// under the offending span of the pattern.
func (e *Error) Diagnostic() string {
	return renderDiagnostic(e.Kind.message(), e.Pattern, e.Span)
}

// renderDiagnostic renders the escaped pattern with a "^~~~" marker under the
// span. It is shared with the translate errors of the hir package.
func renderDiagnostic(msg, pattern string, span Span) string {
	var b strings.Builder

	b.WriteString(msg)
	b.WriteByte('\n')
	b.WriteString("    ")
	b.WriteString(util.Escape(pattern))
	b.WriteByte('\n')
	b.WriteString("    ")

	if span.Start > len(pattern) {
		span.Start = len(pattern)
	}
	if span.End > len(pattern) {
		span.End = len(pattern)
	}

	b.WriteString(strings.Repeat(" ", util.EscapedWidth(pattern[:span.Start])))
	b.WriteByte('^')

	if w := util.EscapedWidth(pattern[span.Start:span.End]); w > 1 {
		b.WriteString(strings.Repeat("~", w-1))
	}

	return b.String()
}

// RenderDiagnostic renders a caret diagnostic for an arbitrary message, pattern
// and span. It backs the Diagnostic methods of both error types.
func RenderDiagnostic(msg, pattern string, span Span) string {
	return renderDiagnostic(msg, pattern, span)
}
