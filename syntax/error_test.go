package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	_, err := Parse("[a", DefaultConfig())
	require.Error(t, err)
	assert.EqualError(t, err, "regex parse error: unterminated character set at position 0")

	_, err = Parse("a{3,2}", DefaultConfig())
	require.Error(t, err)
	assert.EqualError(t, err, "regex parse error: min repeat greater than max repeat at position 1")
}

func TestErrorMessageMultiline(t *testing.T) {
	// patterns with newlines get a line and column number
	_, err := Parse("a\n(", DefaultConfig())
	require.Error(t, err)
	assert.EqualError(t, err, "regex parse error: missing ), unterminated group at position 2 (line 2, column 1)")
}

func TestErrorDiagnostic(t *testing.T) {
	_, err := Parse("[a", DefaultConfig())
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)

	want := "unterminated character set\n" +
		"    [a\n" +
		"    ^"
	assert.Equal(t, want, perr.Diagnostic())
}

func TestErrorDiagnosticSpan(t *testing.T) {
	_, err := Parse("a{3,2}", DefaultConfig())
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)

	want := "min repeat greater than max repeat\n" +
		"    a{3,2}\n" +
		"     ^~~~~"
	assert.Equal(t, want, perr.Diagnostic())
}

func TestErrorDiagnosticEscaped(t *testing.T) {
	// the caret must line up with the escaped rendering of the pattern
	_, err := Parse("\t[a", DefaultConfig())
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)

	want := "unterminated character set\n" +
		"    \\t[a\n" +
		"      ^"
	assert.Equal(t, want, perr.Diagnostic())
}
