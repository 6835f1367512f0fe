package common

import (
	"strings"
	"unicode/utf8"
)

const (
	// CommentPrefix starts every continuation line of a C block comment.
	CommentPrefix = " * "
	// DefaultCommentWidth is the column limit used when none is configured.
	DefaultCommentWidth = 80
)

// CommentLines reflows text into block comment continuation lines of at most
// width runes, each starting with CommentPrefix. Words are packed greedily and
// each one is followed by a single space, so every line keeps a trailing
// separator. A word that overflows flushes the current line even when it is
// still empty, so an over-long first word is preceded by a bare prefix line.
// The result always holds at least one line, even for empty text.
//
// A width <= 0 selects DefaultCommentWidth.
func CommentLines(text string, width int) string {
	if width <= 0 {
		width = DefaultCommentWidth
	}

	var lines []string
	line := CommentPrefix
	for _, word := range strings.Fields(text) {
		if utf8.RuneCountInString(line)+utf8.RuneCountInString(word) > width {
			lines = append(lines, line)
			line = CommentPrefix
		}
		line += word + " "
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
