// Package textutil holds small text layout helpers shared by usage rendering.
package textutil

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// Wrap breaks s into lines no wider than width, splitting on whitespace. Words longer than width are
// kept whole on their own line. The result always has at least one element, so callers can index
// the first line without checking.
func Wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	wrapped := wordwrap.WrapString(strings.TrimSpace(s), uint(width))
	var lines []string
	for _, line := range strings.Split(wrapped, "\n") {
		line = strings.TrimRight(line, " ")
		if len(line) <= width {
			lines = append(lines, line)
			continue
		}
		// wordwrap never breaks before a word at least as long as the limit.
		lines = append(lines, refill(line, width)...)
	}
	return lines
}

// refill greedily packs the words of line into lines of at most width, giving oversized words a
// line of their own.
func refill(line string, width int) []string {
	var out []string
	var cur string
	for _, word := range strings.Fields(line) {
		switch {
		case cur == "":
			cur = word
		case len(cur)+1+len(word) <= width:
			cur += " " + word
		default:
			out = append(out, cur)
			cur = word
		}
	}
	if cur != "" || len(out) == 0 {
		out = append(out, cur)
	}
	return out
}
