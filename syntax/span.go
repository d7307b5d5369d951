package syntax

import "fmt"

// Span is a half-open byte-offset range into the original pattern string.
// Every AST node, class set item and error carries one, so that callers can
// point diagnostics at the exact piece of the pattern that produced them.
// A valid span satisfies 0 <= Start <= End <= len(pattern).
type Span struct {
	Start int
	End   int
}

// newSpan creates a span from the given offsets.
func newSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// String returns the span in "start..end" form.
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
