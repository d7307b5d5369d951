package syntax

// DefaultNestLimit bounds the nesting depth of groups, classes and alternations
// when Config.NestLimit is left zero. Pattern strings are frequently untrusted
// input, so the limit is a hard contract of the parser rather than an
// optimization.
const DefaultNestLimit = 250

// Config holds the dialect options recognized by the parser and the translator.
// A Config value is consumed read-only; it is never mutated during a parse.
type Config struct {
	// CaseInsensitive enables case-insensitive matching, as if the pattern
	// started with (?i). Case variants are expanded at translate time.
	CaseInsensitive bool

	// MultiLine makes ^ and $ match at line boundaries instead of text
	// boundaries, as if the pattern started with (?m).
	MultiLine bool

	// DotMatchesNewline makes . match \n as well, as if the pattern started
	// with (?s).
	DotMatchesNewline bool

	// SwapGreed inverts the meaning of a trailing ? on quantifiers, as if the
	// pattern started with (?U).
	SwapGreed bool

	// IgnoreWhitespace skips unescaped whitespace and #-to-end-of-line
	// comments outside character classes, as if the pattern started with (?x).
	IgnoreWhitespace bool

	// Unicode enables Unicode-aware perl classes, case folding, word
	// boundaries and \p{...} property classes. With Unicode disabled the
	// alphabet is restricted to ASCII (or to raw bytes, see AllowInvalidUTF8).
	Unicode bool

	// ClassSets enables nested bracketed classes and the && (intersection) and
	// -- (difference) operators inside character classes. With ClassSets
	// disabled, '[' and '&' inside a class are ordinary members.
	ClassSets bool

	// AllowInvalidUTF8 permits hex and octal escapes in the 0x80..0xFF range
	// to lower to raw bytes when Unicode is disabled.
	AllowInvalidUTF8 bool

	// Octal enables octal escapes (\0, \12, \377). Without it, a backslash
	// followed by a digit is rejected, since this front end has no
	// backreferences either.
	Octal bool

	// NestLimit is the maximum nesting depth of groups, bracketed classes and
	// alternations. Zero means the default limit.
	NestLimit uint32
}

// DefaultConfig returns the configuration of the default dialect:
// Unicode mode and class set operators enabled, everything else off.
func DefaultConfig() Config {
	return Config{
		Unicode:   true,
		ClassSets: true,
		NestLimit: DefaultNestLimit,
	}
}

// nestLimit returns the configured nesting limit, substituting the default for zero.
func (c Config) nestLimit() uint32 {
	if c.NestLimit == 0 {
		return DefaultNestLimit
	}
	return c.NestLimit
}

// Flags is a bit set of the pattern options that inline flag groups can toggle.
type Flags uint32

// Flag bits, in the order of their flag letters "imsUux".
const (
	FlagCaseInsensitive Flags = 1 << iota // i
	FlagMultiLine                         // m
	FlagDotAll                            // s
	FlagSwapGreed                         // U
	FlagUnicode                           // u
	FlagVerbose                           // x
)

// Flags returns the initial flag set described by the configuration.
func (c Config) Flags() Flags {
	var f Flags
	if c.CaseInsensitive {
		f |= FlagCaseInsensitive
	}
	if c.MultiLine {
		f |= FlagMultiLine
	}
	if c.DotMatchesNewline {
		f |= FlagDotAll
	}
	if c.SwapGreed {
		f |= FlagSwapGreed
	}
	if c.Unicode {
		f |= FlagUnicode
	}
	if c.IgnoreWhitespace {
		f |= FlagVerbose
	}
	return f
}

// isFlag determines whether a character is a valid inline flag letter.
func isFlag(c rune) bool {
	switch c {
	case 'i', 'm', 's', 'U', 'u', 'x':
		return true
	default:
		return false
	}
}

// getFlag converts a flag character to its corresponding flag bit.
// If the character is invalid for a flag, the function will return 0.
func getFlag(c rune) Flags {
	switch c {
	case 'i':
		return FlagCaseInsensitive
	case 'm':
		return FlagMultiLine
	case 's':
		return FlagDotAll
	case 'U':
		return FlagSwapGreed
	case 'u':
		return FlagUnicode
	case 'x':
		return FlagVerbose
	default: // should never happen
		return 0
	}
}

// String returns the flag letters of all set bits, in "imsUux" order.
func (f Flags) String() string {
	var b [6]byte
	n := 0
	for i, c := range []byte("imsUux") {
		if f&(1<<uint(i)) != 0 {
			b[n] = c
			n++
		}
	}
	return string(b[:n])
}
