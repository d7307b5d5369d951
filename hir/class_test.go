package hir

import (
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestAppendRangeCoalesce(t *testing.T) {
	var r []rune
	r = appendRange(r, 'a', 'c')
	r = appendRange(r, 'd', 'f')
	assert.Equal(t, []rune{'a', 'f'}, r)

	r = appendRange(r, 'x', 'z')
	assert.Equal(t, []rune{'a', 'f', 'x', 'z'}, r)

	// overlap with the next to last range
	r = appendRange(r, 'b', 'e')
	assert.Equal(t, []rune{'a', 'f', 'x', 'z'}, r)
}

func TestCleanClass(t *testing.T) {
	r := []rune{'m', 'p', 'a', 'f', 'e', 'g'}
	assert.Equal(t, []rune{'a', 'g', 'm', 'p'}, cleanClass(&r))

	r = []rune{'a', 'b', 'a', 'b', 'a', 'b'}
	assert.Equal(t, []rune{'a', 'b'}, cleanClass(&r))

	r = nil
	assert.Empty(t, cleanClass(&r))
}

func TestNegateClass(t *testing.T) {
	r := negateClass([]rune{'b', 'd'}, 0, 0x7F)
	assert.Equal(t, []rune{0, 'a', 'e', 0x7F}, r)

	// empty class negates to the full alphabet
	assert.Equal(t, []rune{0, 0x7F}, negateClass(nil, 0, 0x7F))

	// full alphabet negates to nothing
	assert.Empty(t, negateClass([]rune{0, 0x7F}, 0, 0x7F))

	// ranges outside the alphabet are ignored
	assert.Empty(t, negateClass([]rune{0, 0xFF}, 0, 0x7F))
	assert.Equal(t, []rune{0, 0x7F}, negateClass([]rune{0x80, 0xFF}, 0, 0x7F))
}

func TestNegateClassRoundTrip(t *testing.T) {
	classes := [][]rune{
		{'a', 'z'},
		{'0', '9', 'A', 'F'},
		{0, 0x10, 'a', 'a', 0x3000, 0x4000},
	}

	for _, r := range classes {
		double := negateClass(negateClass(r, 0, unicode.MaxRune), 0, unicode.MaxRune)
		assert.Empty(t, cmp.Diff(r, double))
	}
}

func TestIntersectClass(t *testing.T) {
	got := intersectClass([]rune{'a', 'm'}, []rune{'g', 'z'})
	assert.Equal(t, []rune{'g', 'm'}, got)

	assert.Empty(t, intersectClass([]rune{'a', 'c'}, []rune{'x', 'z'}))

	got = intersectClass([]rune{'a', 'e', 'i', 'o'}, []rune{'c', 'k'})
	assert.Equal(t, []rune{'c', 'e', 'i', 'k'}, got)
}

func TestDifferenceClass(t *testing.T) {
	got := differenceClass([]rune{'a', 'z'}, []rune{'d', 'f'})
	assert.Equal(t, []rune{'a', 'c', 'g', 'z'}, got)

	assert.Empty(t, differenceClass([]rune{'a', 'z'}, []rune{'a', 'z'}))
	assert.Equal(t, []rune{'a', 'z'}, differenceClass([]rune{'a', 'z'}, []rune{'0', '9'}))
}

func TestAppendTableStride(t *testing.T) {
	tab := &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 'A', Hi: 'E', Stride: 2}},
	}

	r := appendTable(nil, tab)
	assert.Equal(t, []rune{'A', 'A', 'C', 'C', 'E', 'E'}, cleanClass(&r))
}

func TestFoldedRanges(t *testing.T) {
	// 'k' has a third case variant, the Kelvin sign
	assert.Equal(t, []rune{'K', 'K', 'k', 'k', 0x212A, 0x212A}, foldedRanges('k', 'k', false))
	assert.Equal(t, []rune{'K', 'K', 'k', 'k'}, foldedRanges('k', 'k', true))

	// characters without case variants fold to themselves
	assert.Equal(t, []rune{'0', '9'}, foldedRanges('0', '9', false))
}

func TestFoldClass(t *testing.T) {
	got := foldClass([]rune{'a', 'z'}, true)
	assert.Equal(t, []rune{'A', 'Z', 'a', 'z'}, got)

	got = foldClass([]rune{0x3B1, 0x3B1}, false) // α
	assert.Contains(t, classRanges(got), ClassRange{Lo: 0x391, Hi: 0x391})
}

func TestSimpleFoldASCII(t *testing.T) {
	assert.Equal(t, 'a', simpleFoldASCII('A'))
	assert.Equal(t, 'A', simpleFoldASCII('a'))
	assert.Equal(t, '0', simpleFoldASCII('0'))
	assert.Equal(t, rune(0x212A), simpleFoldASCII(0x212A))
}

func TestClassRanges(t *testing.T) {
	got := classRanges([]rune{'a', 'c', 'x', 'x'})
	assert.Equal(t, []ClassRange{{Lo: 'a', Hi: 'c'}, {Lo: 'x', Hi: 'x'}}, got)
	assert.Empty(t, classRanges(nil))
}
