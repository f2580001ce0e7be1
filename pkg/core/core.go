package core

import (
	"github.com/worm/worm/internal/engine"
	"github.com/worm/worm/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Config = engine.Config
type FileMatch = types.FileMatch
type Result = engine.Result

// Search is the stable entrypoint for other programs. It walks cfg.Root and
// returns every file that contains cfg.Query, with context snippets. Files
// that cannot be read are skipped.
func Search(cfg Config) []FileMatch {
	return engine.Run(cfg, nil, nil).Matches
}

// SearchWithStats runs a search and returns the matches along with counters
// and timing. emit and diag may be nil; when set, emit receives each match
// as it is found and diag receives each per-file failure.
func SearchWithStats(cfg Config, emit func(FileMatch), diag func(path string, err error)) Result {
	return engine.Run(cfg, emit, diag)
}
