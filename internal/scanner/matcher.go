package scanner

import "strings"

// FindOffsets returns the byte offset of every non-overlapping occurrence of
// query in content, ascending. The query is plain text: no character in it
// has pattern meaning, so matching is a direct substring scan rather than an
// escaped trip through a regexp engine. After a hit at offset i the scan
// resumes at i+len(query), so "aa" occurs in "aaaa" at [0 2], not [0 1 2].
// An empty query occurs nowhere.
func FindOffsets(content, query string) []int {
	if query == "" {
		return nil
	}
	var offsets []int
	for from := 0; ; {
		i := strings.Index(content[from:], query)
		if i < 0 {
			break
		}
		offsets = append(offsets, from+i)
		from += i + len(query)
	}
	return offsets
}
