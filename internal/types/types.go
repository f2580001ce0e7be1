package types

// FileMatch describes one searched file that contains the query at least
// once. Snippets holds one context excerpt per occurrence, in the order the
// occurrences appear in the file. A FileMatch is only ever built with a
// non-empty snippet list.
type FileMatch struct {
	Path     string   `json:"path"`
	Snippets []string `json:"snippets"`
}
