package hir

import (
	"strings"
	"unicode"
)

// UnicodeTables resolves a unicode property name to its range table.
// For keyed forms like `\p{Script=Greek}`, name holds the key and value the
// property value; for plain forms like `\p{Greek}`, value is empty.
//
// A custom resolver can be injected into a Translator to pin a different
// unicode database version. The default resolver is backed by the tables of
// the unicode package.
type UnicodeTables func(name, value string) (*unicode.RangeTable, bool)

// DefaultTables returns the resolver used when none is injected. It knows the
// general categories by their short and long names, the scripts, the binary
// properties of the unicode package and the special classes Any, ASCII, Word,
// Digit and Space. Matching is loose: case, underscores, hyphens and spaces
// are ignored.
func DefaultTables() UnicodeTables {
	return lookupDefault
}

func lookupDefault(name, value string) (*unicode.RangeTable, bool) {
	if value != "" {
		switch normalizeName(name) {
		case "script", "sc":
			tab, ok := scriptLookup[normalizeName(value)]
			return tab, ok
		case "generalcategory", "gc":
			return lookupCategory(value)
		default:
			return nil, false
		}
	}

	if tab, ok := lookupCategory(name); ok {
		return tab, true
	}
	if tab, ok := scriptLookup[normalizeName(name)]; ok {
		return tab, true
	}
	if tab, ok := propertyLookup[normalizeName(name)]; ok {
		return tab, true
	}

	switch normalizeName(name) {
	case "any":
		return anyTable, true
	case "ascii":
		return asciiTable, true
	case "word":
		return wordTable, true
	case "digit":
		return unicode.Nd, true
	case "space":
		return unicode.White_Space, true
	}

	return nil, false
}

func lookupCategory(name string) (*unicode.RangeTable, bool) {
	if tab, ok := unicode.Categories[name]; ok {
		return tab, true
	}
	if short, ok := categoryAliases[normalizeName(name)]; ok {
		return unicode.Categories[short], true
	}
	return nil, false
}

// normalizeName lowercases a property name and strips the characters that
// loose matching ignores.
func normalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, c := range s {
		switch c {
		case '_', '-', ' ':
			continue
		}
		b.WriteRune(unicode.ToLower(c))
	}

	return b.String()
}

func buildLookup(tables map[string]*unicode.RangeTable) map[string]*unicode.RangeTable {
	m := make(map[string]*unicode.RangeTable, len(tables))
	for name, tab := range tables {
		m[normalizeName(name)] = tab
	}
	return m
}

var (
	scriptLookup   = buildLookup(unicode.Scripts)
	propertyLookup = buildLookup(unicode.Properties)
)

// categoryAliases maps the normalized long names of the general categories to
// the short names used by the unicode package.
var categoryAliases = map[string]string{
	"letter":               "L",
	"lowercaseletter":      "Ll",
	"uppercaseletter":      "Lu",
	"titlecaseletter":      "Lt",
	"modifierletter":       "Lm",
	"otherletter":          "Lo",
	"mark":                 "M",
	"nonspacingmark":       "Mn",
	"spacingmark":          "Mc",
	"enclosingmark":        "Me",
	"number":               "N",
	"decimalnumber":        "Nd",
	"letternumber":         "Nl",
	"othernumber":          "No",
	"punctuation":          "P",
	"connectorpunctuation": "Pc",
	"dashpunctuation":      "Pd",
	"openpunctuation":      "Ps",
	"closepunctuation":     "Pe",
	"initialpunctuation":   "Pi",
	"finalpunctuation":     "Pf",
	"otherpunctuation":     "Po",
	"symbol":               "S",
	"mathsymbol":           "Sm",
	"currencysymbol":       "Sc",
	"modifiersymbol":       "Sk",
	"othersymbol":          "So",
	"separator":            "Z",
	"spaceseparator":       "Zs",
	"lineseparator":        "Zl",
	"paragraphseparator":   "Zp",
	"other":                "C",
	"control":              "Cc",
	"format":               "Cf",
	"surrogate":            "Cs",
	"privateuse":           "Co",
}
