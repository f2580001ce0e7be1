package engine

import (
	"path/filepath"
	"time"

	"github.com/worm/worm/internal/rules"
	"github.com/worm/worm/internal/scanner"
	"github.com/worm/worm/internal/types"
)

// Config controls a search run.
type Config struct {
	// Root is the directory the walk starts from. Defaults to ".".
	Root string
	// Query is the text to look for. Every character is literal; an empty
	// query matches nothing.
	Query string
	// Context is the snippet radius in bytes on each side of a match.
	// Defaults to scanner.DefaultContext.
	Context int
	// Rules decides which directories are pruned and which files are
	// skipped. Defaults to rules.Default().
	Rules rules.Rules
}

// Result carries the matches of one run along with basic counters.
type Result struct {
	Matches      []types.FileMatch
	FilesScanned int
	FilesMatched int
	Duration     time.Duration
}

// Run walks cfg.Root, scans every eligible file for cfg.Query, and hands each
// match to emit the moment it is found, so callers can render output while
// the walk is still going. Paths in emitted matches are relative to cfg.Root.
//
// Failures are strictly per file: a path that cannot be read, or whose
// content is not text, is reported through diag and skipped, and the run
// carries on with the next file. Run itself never fails. The returned Result
// repeats every emitted match in emit order.
func Run(cfg Config, emit func(types.FileMatch), diag func(path string, err error)) Result {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.Context <= 0 {
		cfg.Context = scanner.DefaultContext
	}
	if cfg.Rules.Empty() {
		cfg.Rules = rules.Default()
	}

	var res Result
	started := time.Now()
	Walk(cfg.Root, cfg.Rules, diag, func(p string) {
		res.FilesScanned++
		m, err := scanner.ScanFile(p, cfg.Query, cfg.Context)
		if err != nil {
			if diag != nil {
				diag(p, err)
			}
			return
		}
		if m == nil {
			return
		}
		if rel, relErr := filepath.Rel(cfg.Root, p); relErr == nil {
			m.Path = rel
		}
		res.FilesMatched++
		res.Matches = append(res.Matches, *m)
		if emit != nil {
			emit(*m)
		}
	})
	res.Duration = time.Since(started)
	return res
}
