// Package resyntax is a regular expression syntax compiler front end. It
// parses a pattern string into an AST and lowers the AST into a semantically
// resolved intermediate representation suitable for a matching engine.
//
// The two stages live in their own packages: syntax holds the parser, the AST
// and the dialect configuration; hir holds the translator and the lowered
// tree. This package ties them together for the common case of compiling a
// pattern in one step:
//
//	h, err := resyntax.Parse(`(?i)[a-z]+`)
//
// Both stages are pure functions without shared state, so independent calls
// may run concurrently.
package resyntax

import (
	"github.com/regexkit/resyntax/hir"
	"github.com/regexkit/resyntax/syntax"
)

// Config is the dialect configuration shared by both stages.
type Config = syntax.Config

// DefaultConfig returns the configuration of the default dialect.
func DefaultConfig() Config {
	return syntax.DefaultConfig()
}

// Parse compiles a pattern under the default configuration.
func Parse(pattern string) (*hir.Hir, error) {
	return ParseWith(pattern, syntax.DefaultConfig())
}

// ParseWith compiles a pattern under the given configuration: the pattern is
// parsed into an AST and the AST is lowered into the HIR. The returned error
// is a *syntax.Error if the pattern does not parse and a *hir.Error if it
// cannot be lowered.
func ParseWith(pattern string, cfg Config) (*hir.Hir, error) {
	ast, err := syntax.Parse(pattern, cfg)
	if err != nil {
		return nil, err
	}
	return hir.Translate(pattern, ast, cfg)
}
