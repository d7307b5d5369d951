// Package util contains small string helpers shared by the syntax and hir packages.
package util

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Digits of hex strings.
var hexDigits = "0123456789abcdef"

// Escape returns a printable representation of a pattern fragment, suitable for
// embedding in error messages and caret diagnostics. Printable characters are
// copied as-is; tabs, newlines and carriage returns are mapped to their usual
// two-character escapes, and everything else becomes a hexadecimal escape.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var ch rune
	for size := 0; len(s) > 0; s = s[size:] {
		ch, size = utf8.DecodeRuneInString(s)
		if ch == utf8.RuneError {
			// Invalid UTF-8; escape the raw byte.
			b.WriteString(`\x`)
			b.WriteByte(hexDigits[(s[0]>>4)&0xf])
			b.WriteByte(hexDigits[s[0]&0xf])

			size = 1
			continue
		}

		switch {
		case ch == '\t':
			b.WriteString(`\t`)
		case ch == '\n':
			b.WriteString(`\n`)
		case ch == '\r':
			b.WriteString(`\r`)
		case ch < ' ' || ch == unicode.MaxASCII:
			b.WriteString(`\x`)
			b.WriteByte(hexDigits[(ch>>4)&0xf])
			b.WriteByte(hexDigits[ch&0xf])
		case !unicode.IsPrint(ch):
			hexEscape(&b, ch)
		default:
			b.WriteRune(ch)
		}
	}

	return b.String()
}

// EscapeRune returns the printable representation of a single character.
func EscapeRune(ch rune) string {
	return Escape(string(ch))
}

// EscapedWidth returns the number of characters Escape produces for the text.
// It is used to align caret markers under escaped pattern text.
func EscapedWidth(s string) int {
	return utf8.RuneCountInString(Escape(s))
}

// hexEscape escapes the character to a hex sequence and writes it to the string builder.
func hexEscape(w *strings.Builder, ch rune) {
	w.WriteByte('\\')
	if ch <= 0xff { // Map 8-bit characters to '\xhh'
		w.WriteByte('x')
		w.WriteByte(hexDigits[(ch>>4)&0xf])
		w.WriteByte(hexDigits[ch&0xf])
	} else if ch <= 0xffff { // Map 16-bit characters to '\uxxxx'
		w.WriteByte('u')
		w.WriteByte(hexDigits[(ch>>12)&0xf])
		w.WriteByte(hexDigits[(ch>>8)&0xf])
		w.WriteByte(hexDigits[(ch>>4)&0xf])
		w.WriteByte(hexDigits[ch&0xf])
	} else { // Map 21-bit characters to '\Uxxxxxxxx'
		w.WriteByte('U')
		for shift := 28; shift >= 0; shift -= 4 {
			w.WriteByte(hexDigits[(ch>>shift)&0xf])
		}
	}
}

// IsASCII checks, if the string only contains ASCII characters.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}
