package hir

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/regexkit/resyntax/syntax"
)

// Ascii tables for the posix classes and the non-unicode perl classes,
// as flat (lo, hi) pairs. All of them are canonical by construction.
var (
	asciiAlnum  = []rune{'0', '9', 'A', 'Z', 'a', 'z'}
	asciiAlpha  = []rune{'A', 'Z', 'a', 'z'}
	asciiAll    = []rune{0x00, 0x7F}
	asciiBlank  = []rune{'\t', '\t', ' ', ' '}
	asciiCntrl  = []rune{0x00, 0x1F, 0x7F, 0x7F}
	asciiDigit  = []rune{'0', '9'}
	asciiGraph  = []rune{0x21, 0x7E}
	asciiLower  = []rune{'a', 'z'}
	asciiPrint  = []rune{0x20, 0x7E}
	asciiPunct  = []rune{0x21, 0x2F, 0x3A, 0x40, 0x5B, 0x60, 0x7B, 0x7E}
	asciiSpace  = []rune{'\t', '\r', ' ', ' '}
	asciiUpper  = []rune{'A', 'Z'}
	asciiWord   = []rune{'0', '9', 'A', 'Z', '_', '_', 'a', 'z'}
	asciiXdigit = []rune{'0', '9', 'A', 'F', 'a', 'f'}
)

// Unicode tables for the unicode-aware perl classes. The word class follows
// the common definition of letters, marks, numbers, connector punctuation and
// the join controls.
var (
	joinControl = rangetable.New(0x200C, 0x200D)
	wordTable   = rangetable.Merge(unicode.L, unicode.M, unicode.N, unicode.Pc, joinControl)
)

// anyTable covers the full codepoint space, backing `\p{Any}`.
var anyTable = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0, Hi: 0xFFFF, Stride: 1}},
	R32: []unicode.Range32{{Lo: 0x10000, Hi: unicode.MaxRune, Stride: 1}},
}

// asciiTable covers the ASCII range, backing `\p{ASCII}`.
var asciiTable = &unicode.RangeTable{
	R16:         []unicode.Range16{{Lo: 0, Hi: 0x7F, Stride: 1}},
	LatinOffset: 1,
}

// asciiRanges returns a copy of the canonical range vector of a posix class.
func asciiRanges(kind syntax.AsciiClassKind) []rune {
	var r []rune

	switch kind {
	case syntax.AsciiAlnum:
		r = asciiAlnum
	case syntax.AsciiAlpha:
		r = asciiAlpha
	case syntax.AsciiAscii:
		r = asciiAll
	case syntax.AsciiBlank:
		r = asciiBlank
	case syntax.AsciiCntrl:
		r = asciiCntrl
	case syntax.AsciiDigit:
		r = asciiDigit
	case syntax.AsciiGraph:
		r = asciiGraph
	case syntax.AsciiLower:
		r = asciiLower
	case syntax.AsciiPrint:
		r = asciiPrint
	case syntax.AsciiPunct:
		r = asciiPunct
	case syntax.AsciiSpace:
		r = asciiSpace
	case syntax.AsciiUpper:
		r = asciiUpper
	case syntax.AsciiWord:
		r = asciiWord
	case syntax.AsciiXdigit:
		r = asciiXdigit
	}

	out := make([]rune, len(r))
	copy(out, r)

	return out
}

// perlRanges returns the canonical range vector of a perl class, using the
// unicode tables in unicode mode and the ascii tables otherwise.
func perlRanges(kind syntax.PerlClassKind, unicodeMode bool) []rune {
	if !unicodeMode {
		switch kind {
		case syntax.PerlDigit:
			return asciiRanges(syntax.AsciiDigit)
		case syntax.PerlSpace:
			return asciiRanges(syntax.AsciiSpace)
		default:
			return asciiRanges(syntax.AsciiWord)
		}
	}

	var tab *unicode.RangeTable
	switch kind {
	case syntax.PerlDigit:
		tab = unicode.Nd
	case syntax.PerlSpace:
		tab = unicode.White_Space
	default:
		tab = wordTable
	}

	r := appendTable(nil, tab)
	return cleanClass(&r)
}
