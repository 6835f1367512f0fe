package common

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentLinesEmpty(t *testing.T) {
	assert.Equal(t, " * ", CommentLines("", 80))
	assert.Equal(t, " * ", CommentLines("   \t\n ", 80))
}

func TestCommentLinesShort(t *testing.T) {
	assert.Equal(t, " * Shunt voltage measurement data. ", CommentLines("Shunt voltage measurement data.", 80))
	assert.Equal(t, " * collapses runs of whitespace ", CommentLines("collapses   runs\tof\n whitespace", 80))
}

func TestCommentLinesWraps(t *testing.T) {
	got := CommentLines("aaaa bbbb cccc dddd", 12)
	assert.Equal(t, " * aaaa bbbb \n * cccc dddd ", got)

	// " * aa bbb" is exactly 9 runes, so "bbb" still fits and "c" wraps.
	got = CommentLines("aa bbb c", 9)
	assert.Equal(t, " * aa bbb \n * c ", got)
}

func TestCommentLinesLongWord(t *testing.T) {
	long := strings.Repeat("x", 20)
	got := CommentLines("a "+long+" b", 10)
	assert.Equal(t, " * a \n * "+long+" \n * b ", got)

	got = CommentLines(long, 10)
	assert.Equal(t, " * \n * "+long+" ", got, "an over-long first word flushes the empty prefix line")

	got = CommentLines(long+" b", 10)
	assert.Equal(t, " * \n * "+long+" \n * b ", got)
}

func TestCommentLinesDefaultWidth(t *testing.T) {
	text := strings.Repeat("word ", 40)
	assert.Equal(t, CommentLines(text, DefaultCommentWidth), CommentLines(text, 0))
	assert.Equal(t, CommentLines(text, DefaultCommentWidth), CommentLines(text, -5))
}

func TestCommentLinesCountsRunes(t *testing.T) {
	// Six two-byte runes per word: bytes would overflow a width of 13, runes do not.
	got := CommentLines("ääääää ööö", 13)
	assert.Equal(t, " * ääääää ööö ", got)
}

func TestCommentLinesProperties(t *testing.T) {
	text := "All-register reset, settings for bus voltage range, PGA gain, ADC " +
		"resolution/averaging. The device monitors both shunt voltage drop and bus " +
		"supply voltage, with programmable conversion times and filtering. A " +
		"supercalifragilisticexpialidocious-and-then-some-more-to-pass-forty-runes word appears too."
	for _, width := range []int{20, 40, 80, 120} {
		got := CommentLines(text, width)
		lines := strings.Split(got, "\n")
		require.NotEmpty(t, lines)

		var words []string
		for i, line := range lines {
			require.True(t, strings.HasPrefix(line, CommentPrefix), "line %q", line)
			body := strings.Fields(strings.TrimPrefix(line, CommentPrefix))
			words = append(words, body...)
			if i == len(lines)-1 || len(body) == 1 {
				continue
			}
			assert.LessOrEqual(t, utf8.RuneCountInString(strings.TrimRight(line, " ")), width, "width %d line %q", width, line)
		}
		assert.Equal(t, strings.Fields(text), words, "width %d", width)
	}
}
