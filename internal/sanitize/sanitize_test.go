package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewrite_RoundTrip(t *testing.T) {
	abs := "/srv/projects/proj/test.cairo"
	rel := "proj/test.cairo"
	text := "error: expected identifier\n --> " + abs + ":3:1\n"

	got := Rewrite(text, Replacement{Absolute: abs, Relative: rel})

	assert.Contains(t, got, rel)
	assert.NotContains(t, got, abs)
}

func TestRewrite_ChainedReplacements(t *testing.T) {
	srcAbs := "/srv/projects/proj/test.cairo"
	dstAbs := "/srv/sierra/proj/test.sierra"
	text := "compiling " + srcAbs + " into " + dstAbs

	got := Rewrite(text,
		Replacement{Absolute: srcAbs, Relative: "proj/test.cairo"},
		Replacement{Absolute: dstAbs, Relative: "proj/test.sierra"},
	)

	assert.Equal(t, "compiling proj/test.cairo into proj/test.sierra", got)
}

func TestRewrite_MultipleOccurrences(t *testing.T) {
	abs := "/srv/projects/a.cairo"
	text := abs + " then " + abs

	got := Rewrite(text, Replacement{Absolute: abs, Relative: "a.cairo"})

	assert.Equal(t, "a.cairo then a.cairo", got)
	assert.Zero(t, strings.Count(got, abs))
}

func TestRewrite_EmptyAbsoluteIsNoop(t *testing.T) {
	got := Rewrite("unchanged", Replacement{Absolute: "", Relative: "x"})
	assert.Equal(t, "unchanged", got)
}

func TestDecode_InvalidUTF8IsLossy(t *testing.T) {
	raw := append([]byte("warning: "), 0xff, 0xfe)
	got := Decode(raw)

	assert.True(t, strings.HasPrefix(got, "warning: "))
	assert.Contains(t, got, "�")
}

func TestDecode_ValidUTF8Unchanged(t *testing.T) {
	assert.Equal(t, "exit status 1", Decode([]byte("exit status 1")))
}
