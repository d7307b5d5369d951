package hir

import "unicode"

// Folding bounds. Codepoints outside [minFold, maxFold] have no case variants,
// which lets foldedRanges skip most of a large range without probing it.
const (
	minFold        = 0x0041 // 'A'
	maxFoldUnicode = 0x1E943
	maxFoldASCII   = 'z'
)

// foldedRanges returns a canonical class containing all characters from `lo`
// to `hi` together with all of their case variants. If `ascii` is set, only
// ASCII case variants are added.
func foldedRanges(lo, hi rune, ascii bool) []rune {
	var r []rune

	maxFold := rune(maxFoldUnicode)
	if ascii {
		maxFold = maxFoldASCII
	}

	// Optimizations.
	if lo <= minFold && hi >= maxFold {
		// Range is full: folding can't add more.
		return appendRange(r, lo, hi)
	}
	if hi < minFold || lo > maxFold {
		// Range is outside folding possibilities.
		return appendRange(r, lo, hi)
	}
	if lo < minFold {
		// [lo, minFold-1] needs no folding.
		r = appendRange(r, lo, minFold-1)
		lo = minFold
	}
	if hi > maxFold {
		// [maxFold+1, hi] needs no folding.
		r = appendRange(r, maxFold+1, hi)
		hi = maxFold
	}

	// Determine the folding function.
	fold := unicode.SimpleFold
	if ascii {
		fold = simpleFoldASCII
	}

	// Brute force. Depend on appendRange to coalesce ranges on the fly.
	for c := lo; c <= hi; c++ {
		r = appendRange(r, c, c)
		for f := fold(c); f != c; f = fold(f) {
			r = appendRange(r, f, f)
		}
	}

	// Sort and simplify ranges.
	return cleanClass(&r)
}

// foldClass returns a canonical class containing all members of the canonical
// class r together with their case variants.
func foldClass(r []rune, ascii bool) []rune {
	var out []rune
	for i := 0; i < len(r); i += 2 {
		out = appendRanges(out, foldedRanges(r[i], r[i+1], ascii))
	}
	return cleanClass(&out)
}

// simpleFoldASCII is the equivalent function of `unicode.SimpleFold` limited to ASCII characters.
func simpleFoldASCII(c rune) rune {
	switch {
	case 'A' <= c && c <= 'Z':
		return c - 'A' + 'a'
	case 'a' <= c && c <= 'z':
		return c - 'a' + 'A'
	default:
		return c
	}
}
