package resyntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regexkit/resyntax/hir"
	"github.com/regexkit/resyntax/syntax"
)

func TestParse(t *testing.T) {
	h, err := Parse(`(?P<word>[a-z]+)\b`)
	require.NoError(t, err)

	children := h.Children()
	require.Len(t, children, 2)

	group := children[0].Params.(hir.GroupParam)
	assert.Equal(t, 1, group.Index)
	assert.Equal(t, "word", group.Name)
	assert.Equal(t, hir.OpRepetition, group.Inner.Op)

	assert.Equal(t, hir.OpWordBoundary, children[1].Op)
	assert.Equal(t, []string{"", "word"}, h.CaptureNames())
}

func TestParseWith(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CaseInsensitive = true

	h, err := ParseWith("k", cfg)
	require.NoError(t, err)
	assert.Equal(t, hir.OpClass, h.Op)
}

func TestParseErrorTypes(t *testing.T) {
	_, err := Parse("[a")
	var perr *syntax.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, syntax.ErrClassUnclosed, perr.Kind)

	_, err = Parse(`\p{Bogus}`)
	var terr *hir.Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, hir.ErrUnicodeClassUnknown, terr.Kind)
}
