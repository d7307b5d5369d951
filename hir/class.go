package hir

import (
	"sort"
	"unicode"
)

// Character classes are built as flat rune vectors of (lo, hi) pairs and only
// converted to []ClassRange once they are canonical. The flat form keeps the
// set algebra allocation-friendly and matches the representation used by
// `regexp/syntax`.

// appendRange returns the result of appending the range lo-hi to the class r.
func appendRange(r []rune, lo, hi rune) []rune {
	// Expand last range or next to last range if it overlaps or abuts.
	// Checking two ranges helps when appending case-folded
	// alphabets, so that one range can be expanding A-Z and the
	// other expanding a-z.
	n := len(r)
	for i := 2; i <= 4; i += 2 { // twice, using i=2, i=4
		if n >= i {
			rlo, rhi := r[n-i], r[n-i+1]
			if lo <= rhi+1 && rlo <= hi+1 {
				if lo < rlo {
					r[n-i] = lo
				}
				if hi > rhi {
					r[n-i+1] = hi
				}
				return r
			}
		}
	}

	return append(r, lo, hi)
}

// appendRanges appends all ranges of the class `other` to the class r.
func appendRanges(r []rune, other []rune) []rune {
	for i := 0; i < len(other); i += 2 {
		r = appendRange(r, other[i], other[i+1])
	}
	return r
}

// appendTable appends all ranges of a unicode range table to the class r.
func appendTable(r []rune, tab *unicode.RangeTable) []rune {
	for _, rng := range tab.R16 {
		lo, hi, stride := rune(rng.Lo), rune(rng.Hi), rune(rng.Stride)
		if stride == 1 {
			r = appendRange(r, lo, hi)
			continue
		}
		for c := lo; c <= hi; c += stride {
			r = appendRange(r, c, c)
		}
	}

	for _, rng := range tab.R32 {
		lo, hi, stride := rune(rng.Lo), rune(rng.Hi), rune(rng.Stride)
		if stride == 1 {
			r = appendRange(r, lo, hi)
			continue
		}
		for c := lo; c <= hi; c += stride {
			r = appendRange(r, c, c)
		}
	}

	return r
}

// ranges implements sort.Interface on a []rune.
// The choice of receiver type definition is strange
// but avoids an allocation since we already have
// a *[]rune.
type ranges struct {
	p *[]rune
}

func (ra ranges) Less(i, j int) bool {
	p := *ra.p
	i *= 2
	j *= 2
	return p[i] < p[j] || p[i] == p[j] && p[i+1] > p[j+1]
}

func (ra ranges) Len() int {
	return len(*ra.p) / 2
}

func (ra ranges) Swap(i, j int) {
	p := *ra.p
	i *= 2
	j *= 2
	p[i], p[i+1], p[j], p[j+1] = p[j], p[j+1], p[i], p[i+1]
}

// cleanClass sorts the ranges (pairs of elements of r),
// merges them, and eliminates duplicates.
func cleanClass(rp *[]rune) []rune {
	// Sort by lo increasing, hi decreasing to break ties.
	sort.Sort(ranges{rp})

	r := *rp
	if len(r) < 2 {
		return r
	}

	// Merge abutting, overlapping.
	w := 2 // write index
	for i := 2; i < len(r); i += 2 {
		lo, hi := r[i], r[i+1]
		if lo <= r[w-1]+1 {
			// merge with previous range
			if hi > r[w-1] {
				r[w-1] = hi
			}
			continue
		}
		// new disjoint range
		r[w] = lo
		r[w+1] = hi
		w += 2
	}

	return r[:w]
}

// negateClass returns the complement of the canonical class r over the
// alphabet [lo, hi]. Ranges of r outside the alphabet are ignored.
func negateClass(r []rune, lo, hi rune) []rune {
	var out []rune

	next := lo
	for i := 0; i < len(r); i += 2 {
		rlo, rhi := r[i], r[i+1]

		if rhi < next {
			continue
		}
		if rlo > hi {
			break
		}

		if rlo > next {
			out = appendRange(out, next, rlo-1)
		}

		next = rhi + 1
		if next > hi {
			break
		}
	}

	if next <= hi {
		out = appendRange(out, next, hi)
	}

	return out
}

// intersectClass returns the intersection of the canonical classes a and b.
func intersectClass(a, b []rune) []rune {
	var out []rune

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		lo := max(a[i], b[j])
		hi := min(a[i+1], b[j+1])

		if lo <= hi {
			out = appendRange(out, lo, hi)
		}

		if a[i+1] < b[j+1] {
			i += 2
		} else {
			j += 2
		}
	}

	return out
}

// differenceClass returns the canonical class a minus the canonical class b.
func differenceClass(a, b []rune) []rune {
	return intersectClass(a, negateClass(b, 0, unicode.MaxRune))
}

// classRanges converts a canonical flat vector into the exported range form.
func classRanges(r []rune) []ClassRange {
	out := make([]ClassRange, 0, len(r)/2)
	for i := 0; i < len(r); i += 2 {
		out = append(out, ClassRange{Lo: r[i], Hi: r[i+1]})
	}
	return out
}
