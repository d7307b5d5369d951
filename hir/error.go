package hir

import (
	"fmt"

	"github.com/regexkit/resyntax/syntax"
)

// ErrorKind classifies translation errors.
type ErrorKind uint32

const (
	ErrUnicodeClassUnknown ErrorKind = iota + 1 // unknown unicode property or class
	ErrGroupNameDuplicate                       // duplicate capture group name
	ErrInvalidUTF8Literal                       // literal would match invalid utf-8
	ErrClassEmpty                               // character class matches nothing
	ErrNestLimitExceeded                        // nesting exceeds the configured limit
)

func (k ErrorKind) message() string {
	switch k {
	case ErrUnicodeClassUnknown:
		return "unknown unicode property or class"
	case ErrGroupNameDuplicate:
		return "duplicate capture group name"
	case ErrInvalidUTF8Literal:
		return "literal cannot be encoded: pattern would match invalid utf-8"
	case ErrClassEmpty:
		return "character class matches nothing"
	case ErrNestLimitExceeded:
		return "pattern exceeds the nesting limit"
	default:
		return "unknown translation error"
	}
}

// Error is a translation error, carrying the pattern and the span of the
// construct that could not be lowered.
type Error struct {
	Kind    ErrorKind
	Pattern string
	Span    syntax.Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("regex translation error: %s at position %d", e.Kind.message(), e.Span.Start)
}

// Diagnostic renders the error with the offending part of the pattern
// underlined, in the same format as the parse errors.
func (e *Error) Diagnostic() string {
	return syntax.RenderDiagnostic(e.Kind.message(), e.Pattern, e.Span)
}
