package syntax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, pattern string, cfg Config) *Ast {
	t.Helper()

	ast, err := Parse(pattern, cfg)
	require.NoError(t, err, "pattern %q", pattern)

	return ast
}

func TestParseDump(t *testing.T) {
	octal := DefaultConfig()
	octal.Octal = true

	verbose := DefaultConfig()
	verbose.IgnoreWhitespace = true

	swapped := DefaultConfig()
	swapped.SwapGreed = true

	noSets := DefaultConfig()
	noSets.ClassSets = false

	tests := []struct {
		name    string
		pattern string
		cfg     Config
		want    []string
	}{
		{
			name:    "empty",
			pattern: "",
			want:    []string{"EMPTY"},
		},
		{
			name:    "literal",
			pattern: "a",
			want:    []string{"LITERAL 97"},
		},
		{
			name:    "concat",
			pattern: "ab",
			want: []string{
				"CONCAT",
				"  LITERAL 97",
				"  LITERAL 98",
			},
		},
		{
			name:    "alternation",
			pattern: "a|b",
			want: []string{
				"ALTERNATION",
				"  LITERAL 97",
				"OR",
				"  LITERAL 98",
			},
		},
		{
			name:    "empty branch",
			pattern: "a|",
			want: []string{
				"ALTERNATION",
				"  LITERAL 97",
				"OR",
				"  EMPTY",
			},
		},
		{
			name:    "dot",
			pattern: ".",
			want:    []string{"DOT"},
		},
		{
			name:    "anchors",
			pattern: "^$",
			want: []string{
				"CONCAT",
				"  ASSERTION START_LINE",
				"  ASSERTION END_LINE",
			},
		},
		{
			name:    "text anchors",
			pattern: `\Aa\z`,
			want: []string{
				"CONCAT",
				"  ASSERTION START_TEXT",
				"  LITERAL 97",
				"  ASSERTION END_TEXT",
			},
		},
		{
			name:    "word boundary",
			pattern: `\b`,
			want:    []string{"ASSERTION WORD_BOUNDARY"},
		},
		{
			name:    "not word boundary",
			pattern: `\B`,
			want:    []string{"ASSERTION NOT_WORD_BOUNDARY"},
		},
		{
			name:    "star",
			pattern: "a*",
			want: []string{
				"REPETITION 0 MAXREPEAT greedy",
				"  LITERAL 97",
			},
		},
		{
			name:    "lazy plus",
			pattern: "a+?",
			want: []string{
				"REPETITION 1 MAXREPEAT lazy",
				"  LITERAL 97",
			},
		},
		{
			name:    "question",
			pattern: "a?",
			want: []string{
				"REPETITION 0 1 greedy",
				"  LITERAL 97",
			},
		},
		{
			name:    "counted",
			pattern: "a{2,5}",
			want: []string{
				"REPETITION 2 5 greedy",
				"  LITERAL 97",
			},
		},
		{
			name:    "counted exact",
			pattern: "a{3}",
			want: []string{
				"REPETITION 3 3 greedy",
				"  LITERAL 97",
			},
		},
		{
			name:    "counted open",
			pattern: "a{2,}",
			want: []string{
				"REPETITION 2 MAXREPEAT greedy",
				"  LITERAL 97",
			},
		},
		{
			name:    "counted upper bound only",
			pattern: "a{,5}",
			want: []string{
				"REPETITION 0 5 greedy",
				"  LITERAL 97",
			},
		},
		{
			name:    "swapped greediness",
			pattern: "a*",
			cfg:     swapped,
			want: []string{
				"REPETITION 0 MAXREPEAT lazy",
				"  LITERAL 97",
			},
		},
		{
			name:    "brace literal",
			pattern: "a{2,b}",
			want: []string{
				"CONCAT",
				"  LITERAL 97",
				"  LITERAL 123",
				"  LITERAL 50",
				"  LITERAL 44",
				"  LITERAL 98",
				"  LITERAL 125",
			},
		},
		{
			name:    "empty braces literal",
			pattern: "a{}",
			want: []string{
				"CONCAT",
				"  LITERAL 97",
				"  LITERAL 123",
				"  LITERAL 125",
			},
		},
		{
			name:    "capture group",
			pattern: "(a)",
			want: []string{
				"GROUP CAPTURE",
				"  LITERAL 97",
			},
		},
		{
			name:    "non-capture group",
			pattern: "(?:ab)",
			want: []string{
				"GROUP NONCAPTURE",
				"  CONCAT",
				"    LITERAL 97",
				"    LITERAL 98",
			},
		},
		{
			name:    "named group",
			pattern: "(?P<word>a)",
			want: []string{
				"GROUP NAME word",
				"  LITERAL 97",
			},
		},
		{
			name:    "named group angle form",
			pattern: "(?<word>a)",
			want: []string{
				"GROUP NAME word",
				"  LITERAL 97",
			},
		},
		{
			name:    "scoped flags",
			pattern: "(?i:a)",
			want: []string{
				"GROUP NONCAPTURE i-",
				"  LITERAL 97",
			},
		},
		{
			name:    "scoped mixed flags",
			pattern: "(?i-m:a)",
			want: []string{
				"GROUP NONCAPTURE i-m",
				"  LITERAL 97",
			},
		},
		{
			name:    "flag directive",
			pattern: "(?i)a",
			want: []string{
				"CONCAT",
				"  FLAGS i-",
				"  LITERAL 97",
			},
		},
		{
			name:    "lone flag directive",
			pattern: "(?im)",
			want:    []string{"FLAGS im-"},
		},
		{
			name:    "verbose directive",
			pattern: "(?x)a b",
			want: []string{
				"CONCAT",
				"  FLAGS x-",
				"  LITERAL 97",
				"  LITERAL 98",
			},
		},
		{
			name:    "verbose config",
			pattern: "a b # trailing\nc",
			cfg:     verbose,
			want: []string{
				"CONCAT",
				"  LITERAL 97",
				"  LITERAL 98",
				"  LITERAL 99",
			},
		},
		{
			name:    "verbose escaped space",
			pattern: `a\ b`,
			cfg:     verbose,
			want: []string{
				"CONCAT",
				"  LITERAL 97",
				"  LITERAL 32",
				"  LITERAL 98",
			},
		},
		{
			name:    "perl classes",
			pattern: `\d\D\s\S\w\W`,
			want: []string{
				"CONCAT",
				"  CLASS_PERL DIGIT",
				"  CLASS_PERL NOT_DIGIT",
				"  CLASS_PERL SPACE",
				"  CLASS_PERL NOT_SPACE",
				"  CLASS_PERL WORD",
				"  CLASS_PERL NOT_WORD",
			},
		},
		{
			name:    "unicode one letter",
			pattern: `\pL`,
			want:    []string{"CLASS_UNICODE L"},
		},
		{
			name:    "unicode braced",
			pattern: `\p{Greek}`,
			want:    []string{"CLASS_UNICODE Greek"},
		},
		{
			name:    "unicode negated",
			pattern: `\P{Greek}`,
			want:    []string{"CLASS_UNICODE !Greek"},
		},
		{
			name:    "unicode caret negation",
			pattern: `\p{^Greek}`,
			want:    []string{"CLASS_UNICODE !Greek"},
		},
		{
			name:    "unicode double negation",
			pattern: `\P{^Greek}`,
			want:    []string{"CLASS_UNICODE Greek"},
		},
		{
			name:    "unicode keyed",
			pattern: `\p{Script=Han}`,
			want:    []string{"CLASS_UNICODE Script=Han"},
		},
		{
			name:    "hex escapes",
			pattern: `\x41\x{1F600}A\U0001F600`,
			want: []string{
				"CONCAT",
				"  LITERAL 65",
				"  LITERAL 128512",
				"  LITERAL 65",
				"  LITERAL 128512",
			},
		},
		{
			name:    "control escapes",
			pattern: `\a\f\n\r\t\v\\`,
			want: []string{
				"CONCAT",
				"  LITERAL 7",
				"  LITERAL 12",
				"  LITERAL 10",
				"  LITERAL 13",
				"  LITERAL 9",
				"  LITERAL 11",
				"  LITERAL 92",
			},
		},
		{
			name:    "punctuation escape",
			pattern: `\*\.`,
			want: []string{
				"CONCAT",
				"  LITERAL 42",
				"  LITERAL 46",
			},
		},
		{
			name:    "octal escape",
			pattern: `\101\0`,
			cfg:     octal,
			want: []string{
				"CONCAT",
				"  LITERAL 65",
				"  LITERAL 0",
			},
		},
		{
			name:    "simple class",
			pattern: "[abc]",
			want: []string{
				"CLASS_BRACKETED",
				"  LITERAL 97",
				"  LITERAL 98",
				"  LITERAL 99",
			},
		},
		{
			name:    "negated range class",
			pattern: "[^a-z]",
			want: []string{
				"CLASS_BRACKETED NEGATED",
				"  RANGE (97, 122)",
			},
		},
		{
			name:    "leading bracket literal",
			pattern: "[]a]",
			want: []string{
				"CLASS_BRACKETED",
				"  LITERAL 93",
				"  LITERAL 97",
			},
		},
		{
			name:    "trailing dash literal",
			pattern: "[a-]",
			want: []string{
				"CLASS_BRACKETED",
				"  LITERAL 97",
				"  LITERAL 45",
			},
		},
		{
			name:    "posix class",
			pattern: "[[:alpha:]]",
			want: []string{
				"CLASS_BRACKETED",
				"  POSIX alpha",
			},
		},
		{
			name:    "negated posix class",
			pattern: "[[:^digit:]]",
			want: []string{
				"CLASS_BRACKETED",
				"  POSIX !digit",
			},
		},
		{
			name:    "class escapes",
			pattern: `[\d\b\-]`,
			want: []string{
				"CLASS_BRACKETED",
				"  DIGIT",
				"  LITERAL 8",
				"  LITERAL 45",
			},
		},
		{
			name:    "class intersection",
			pattern: "[a-z&&[^aeiou]]",
			want: []string{
				"CLASS_BRACKETED",
				"  INTERSECTION",
				"    RANGE (97, 122)",
				"  WITH",
				"    CLASS NEGATED",
				"      LITERAL 97",
				"      LITERAL 101",
				"      LITERAL 105",
				"      LITERAL 111",
				"      LITERAL 117",
			},
		},
		{
			name:    "class difference",
			pattern: "[0-9--0-3]",
			want: []string{
				"CLASS_BRACKETED",
				"  DIFFERENCE",
				"    RANGE (48, 57)",
				"  WITH",
				"    RANGE (48, 51)",
			},
		},
		{
			name:    "class sets disabled",
			pattern: "[a&&b]",
			cfg:     noSets,
			want: []string{
				"CLASS_BRACKETED",
				"  LITERAL 97",
				"  LITERAL 38",
				"  LITERAL 38",
				"  LITERAL 98",
			},
		},
		{
			name:    "nested bracket disabled",
			pattern: "[a[b]",
			cfg:     noSets,
			want: []string{
				"CLASS_BRACKETED",
				"  LITERAL 97",
				"  LITERAL 91",
				"  LITERAL 98",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			if cfg == (Config{}) {
				cfg = DefaultConfig()
			}

			ast := mustParse(t, tt.pattern, cfg)
			assert.Equal(t, strings.Join(tt.want, "\n"), Dump(ast))
		})
	}
}

func TestParseErrors(t *testing.T) {
	octal := DefaultConfig()
	octal.Octal = true

	tests := []struct {
		name    string
		pattern string
		cfg     Config
		kind    ErrorKind
		span    Span
	}{
		{name: "unclosed class", pattern: "[a", kind: ErrClassUnclosed, span: Span{0, 1}},
		{name: "empty class", pattern: "[]", kind: ErrClassUnclosed, span: Span{0, 1}},
		{name: "unclosed group", pattern: "(a", kind: ErrGroupUnclosed, span: Span{0, 1}},
		{name: "unopened group", pattern: "a)", kind: ErrGroupUnopened, span: Span{1, 2}},
		{name: "lone close paren", pattern: ")", kind: ErrGroupUnopened, span: Span{0, 1}},
		{name: "leading star", pattern: "*a", kind: ErrRepetitionMissing, span: Span{0, 1}},
		{name: "double star", pattern: "a**", kind: ErrRepetitionMissing, span: Span{2, 3}},
		{name: "quantified anchor", pattern: "^*", kind: ErrRepetitionMissing, span: Span{1, 2}},
		{name: "quantified directive", pattern: "(?i)*", kind: ErrRepetitionMissing, span: Span{4, 5}},
		{name: "trailing backslash", pattern: `a\`, kind: ErrEscapeUnexpectedEOF, span: Span{1, 2}},
		{name: "reversed range", pattern: "[z-a]", kind: ErrClassRangeInvalid, span: Span{1, 4}},
		{name: "class range endpoint", pattern: `[a-\d]`, kind: ErrClassRangeLiteral, span: Span{1, 5}},
		{name: "unknown posix class", pattern: "[[:foo:]]", kind: ErrClassPosixUnknown, span: Span{1, 8}},
		{name: "lookahead", pattern: "(?=a)", kind: ErrGroupInvalid, span: Span{0, 3}},
		{name: "negative lookahead", pattern: "(?!a)", kind: ErrGroupInvalid, span: Span{0, 3}},
		{name: "lookbehind", pattern: "(?<=a)", kind: ErrGroupInvalid, span: Span{0, 4}},
		{name: "atomic group", pattern: "(?>a)", kind: ErrGroupInvalid, span: Span{0, 3}},
		{name: "conditional", pattern: "(?(1)a)", kind: ErrGroupInvalid, span: Span{0, 3}},
		{name: "group comment", pattern: "(?#c)", kind: ErrGroupInvalid, span: Span{0, 3}},
		{name: "backreference group", pattern: "(?P=x)", kind: ErrGroupInvalid, span: Span{0, 3}},
		{name: "empty group name", pattern: "(?P<>a)", kind: ErrGroupNameEmpty, span: Span{0, 5}},
		{name: "bad group name", pattern: "(?P<1a>a)", kind: ErrGroupNameInvalid, span: Span{4, 6}},
		{name: "duplicate group name", pattern: "(?P<x>a)(?P<x>b)", kind: ErrGroupNameDuplicate, span: Span{12, 13}},
		{name: "duplicate name across branches", pattern: "(?P<x>a)|(?P<x>b)", kind: ErrGroupNameDuplicate, span: Span{13, 14}},
		{name: "inverted counts", pattern: "a{3,2}", kind: ErrRepetitionCountInvalid, span: Span{1, 6}},
		{name: "count overflow", pattern: "a{1001}", kind: ErrRepetitionCountOverflow, span: Span{1, 7}},
		{name: "unknown escape", pattern: `\q`, kind: ErrEscapeUnrecognized, span: Span{0, 2}},
		{name: "digit escape without octal", pattern: `\1`, kind: ErrEscapeUnrecognized, span: Span{0, 2}},
		{name: "eight escape with octal", pattern: `\8`, cfg: octal, kind: ErrEscapeUnrecognized, span: Span{0, 2}},
		{name: "short hex escape", pattern: `\x1`, kind: ErrEscapeHexInvalid, span: Span{0, 3}},
		{name: "surrogate hex escape", pattern: `\x{D800}`, kind: ErrEscapeHexInvalid, span: Span{0, 8}},
		{name: "out of range hex escape", pattern: `\x{110000}`, kind: ErrEscapeHexInvalid, span: Span{0, 10}},
		{name: "octal out of range", pattern: `\400`, cfg: octal, kind: ErrEscapeOctalInvalid, span: Span{0, 4}},
		{name: "empty unicode class", pattern: `\p{}`, kind: ErrUnicodeClassInvalid, span: Span{0, 3}},
		{name: "unclosed unicode class", pattern: `\p{Greek`, kind: ErrUnicodeClassInvalid, span: Span{0, 3}},
		{name: "unicode class missing value", pattern: `\p{Script=}`, kind: ErrUnicodeClassInvalid, span: Span{0, 11}},
		{name: "unknown flag", pattern: "(?q)", kind: ErrFlagUnrecognized, span: Span{2, 3}},
		{name: "empty flags", pattern: "(?)", kind: ErrFlagUnrecognized, span: Span{0, 3}},
		{name: "duplicate flag", pattern: "(?ii)", kind: ErrFlagDuplicate, span: Span{3, 4}},
		{name: "dangling negation", pattern: "(?i-)", kind: ErrFlagDanglingNegation, span: Span{3, 4}},
		{name: "repeated negation", pattern: "(?i--m)", kind: ErrFlagRepeatedNegation, span: Span{4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			if cfg == (Config{}) {
				cfg = DefaultConfig()
			}

			ast, err := Parse(tt.pattern, cfg)
			require.Error(t, err)
			require.Nil(t, ast)

			var perr *Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.kind, perr.Kind, "got %q", perr.Kind)
			assert.Equal(t, tt.span, perr.Span)
			assert.Equal(t, tt.pattern, perr.Pattern)
		})
	}
}

func TestParseSpans(t *testing.T) {
	tests := []struct {
		pattern string
		span    Span
	}{
		{"a|bc", Span{0, 4}},
		{"[abc]", Span{0, 5}},
		{"(?P<x>a)", Span{0, 8}},
		{"a{2,5}", Span{0, 6}},
		{`\x{1F600}`, Span{0, 9}},
	}

	for _, tt := range tests {
		ast := mustParse(t, tt.pattern, DefaultConfig())
		assert.Equal(t, tt.span, ast.Span, "pattern %q", tt.pattern)
	}
}

func TestParseNestLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NestLimit = 2

	// depth equal to the limit is fine
	_, err := Parse("((a))", cfg)
	assert.NoError(t, err)

	_, err = Parse("(((a)))", cfg)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrNestLimitExceeded, perr.Kind)
	assert.Equal(t, Span{2, 3}, perr.Span)

	// nested classes count as well
	_, err = Parse("[a[b[c]]]", cfg)
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrNestLimitExceeded, perr.Kind)
}

func TestParseScopedFlagsRestore(t *testing.T) {
	// the verbose flag inside the group must not leak past it
	ast := mustParse(t, "(?x:a b)c d", DefaultConfig())

	want := []string{
		"CONCAT",
		"  GROUP NONCAPTURE x-",
		"    CONCAT",
		"      LITERAL 97",
		"      LITERAL 98",
		"  LITERAL 99",
		"  LITERAL 32",
		"  LITERAL 100",
	}
	assert.Equal(t, strings.Join(want, "\n"), Dump(ast))
}
