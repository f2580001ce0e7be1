package scanner

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFormatSnippet(t *testing.T) {
	long := strings.Repeat("a", 200)

	tests := []struct {
		name     string
		content  string
		offset   int
		context  int
		expected string
	}{
		{
			name:     "match in the middle keeps context both sides",
			content:  long,
			offset:   100,
			context:  50,
			expected: "..." + strings.Repeat("a", 100) + "...",
		},
		{
			name:     "match near the start clamps at zero",
			content:  "abcdef" + long,
			offset:   2,
			context:  50,
			expected: "..." + "abcdef" + strings.Repeat("a", 46) + "...",
		},
		{
			name:     "match near the end clamps at length",
			content:  "0123456789",
			offset:   8,
			context:  5,
			expected: "...3456789...",
		},
		{
			name:     "short content is wrapped whole",
			content:  "tiny",
			offset:   0,
			context:  50,
			expected: "...tiny...",
		},
		{
			name:     "zero offset zero-width window still marked",
			content:  "",
			offset:   0,
			context:  50,
			expected: "......",
		},
		{
			name:     "small context narrows the window",
			content:  "abcdefghij",
			offset:   5,
			context:  2,
			expected: "...defg...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatSnippet(tt.content, tt.offset, tt.context)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormatSnippetRuneBoundaries(t *testing.T) {
	// Each é is two bytes, so most byte positions inside the run sit in the
	// middle of a rune. Whatever window the offset produces, the excerpt must
	// still decode cleanly.
	content := strings.Repeat("é", 100)
	for offset := 0; offset < len(content); offset++ {
		got := FormatSnippet(content, offset, 5)
		assert.True(t, utf8.ValidString(got), "offset %d produced invalid UTF-8: %q", offset, got)
	}
}

func TestFormatSnippetWindowWidth(t *testing.T) {
	content := strings.Repeat("x", 1000)
	got := FormatSnippet(content, 500, DefaultContext)
	// 50 bytes each side plus the two markers.
	assert.Len(t, got, 2*DefaultContext+6)
}
