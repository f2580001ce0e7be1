package scanner

import "unicode/utf8"

// DefaultContext is how many bytes of surrounding text a snippet keeps on
// each side of a match.
const DefaultContext = 50

// FormatSnippet cuts the window of context bytes around offset out of
// content, clamped to the content bounds, and wraps it in ellipsis markers.
// The markers are applied even when the window already touches a boundary.
// Window edges that land inside a multi-byte rune are pulled inward so the
// excerpt stays valid UTF-8.
func FormatSnippet(content string, offset, context int) string {
	start := offset - context
	if start < 0 {
		start = 0
	}
	end := offset + context
	if end > len(content) {
		end = len(content)
	}
	for start < end && !utf8.RuneStart(content[start]) {
		start++
	}
	for end > start && end < len(content) && !utf8.RuneStart(content[end]) {
		end--
	}
	return "..." + content[start:end] + "..."
}
