package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/worm/worm/internal/types"
)

// separatorWidth is the length of the dash rule printed after each matching
// file's snippets.
const separatorWidth = 80

// Printer renders the match report as a stream: a header first, then one
// block per matching file in the order the matches arrive, then a closing
// notice when nothing matched. Everything goes to a single writer.
type Printer struct {
	w       io.Writer
	noColor bool
}

// NewPrinter returns a Printer writing to w. With noColor set the output is
// plain text; otherwise file paths are highlighted with ANSI color.
func NewPrinter(w io.Writer, noColor bool) *Printer {
	return &Printer{w: w, noColor: noColor}
}

// Header announces the query before any results appear.
func (p *Printer) Header(query string) {
	fmt.Fprintf(p.w, "\nSearching for: %s\n\n", query)
}

// File prints one matching file: a blank line, the path, one context line
// per snippet in match order, and a separator rule.
func (p *Printer) File(m types.FileMatch) {
	path := m.Path
	if !p.noColor {
		path = "\x1b[36m" + path + "\x1b[0m" // cyan
	}
	fmt.Fprintf(p.w, "\nFound in: %s\n", path)
	for _, s := range m.Snippets {
		fmt.Fprintf(p.w, "Context: %s\n", s)
	}
	fmt.Fprintln(p.w, strings.Repeat("-", separatorWidth))
}

// NoMatches prints the closing notice for a run in which no file matched.
func (p *Printer) NoMatches() {
	fmt.Fprintln(p.w, "No matches found.")
}

// Diagnostic reports a per-file failure. These lines belong on a different
// stream than the match report so the report stays parseable.
func Diagnostic(w io.Writer, path string, err error) {
	fmt.Fprintf(w, "Error processing %s: %v\n", path, err)
}

// Summary prints the run statistics footer.
func Summary(w io.Writer, filesScanned int, d time.Duration) {
	fmt.Fprintf(w, "\nSearched %d files in %.2fs\n", filesScanned, d.Seconds())
}
