package rules

import (
	"path/filepath"
	"sort"
	"strings"
)

// Directory names that are pruned from every traversal. Matching is exact
// and case-sensitive on the base name; there is no glob or prefix matching.
var defaultExcludeDirs = []string{
	".git",
	".pytest_cache",
	"__pycache__",
	"backups",
	"build",
	"dist",
	"env",
	"node_modules",
	"venv",
}

// Extensions treated as non-text. Classification is by name only; files are
// never sniffed, so a renamed binary slips through. Accepted limitation.
var defaultBinaryExts = []string{
	// archives
	".zip", ".gz", ".tar", ".rar", ".7z",
	// databases
	".db", ".sqlite", ".sqlite3",
	// images
	".jpg", ".jpeg", ".png", ".gif",
	// compiled python
	".pyc", ".pyo", ".pyd",
	// shared libraries
	".so", ".dll", ".dylib",
	// executables
	".exe", ".bin",
	// backups and logs
	".bak", ".log",
}

// Rules decides which directory names are pruned from a walk and which file
// names are skipped as binary-like. The sets are fixed at construction; a
// Rules value never changes after New returns.
type Rules struct {
	dirs map[string]bool
	exts map[string]bool
}

// New builds a Rules value from explicit sets. Extensions are normalized to
// lower case with a leading dot; directory names are taken verbatim.
func New(dirs, exts []string) Rules {
	r := Rules{
		dirs: make(map[string]bool, len(dirs)),
		exts: make(map[string]bool, len(exts)),
	}
	for _, d := range dirs {
		r.dirs[d] = true
	}
	for _, e := range exts {
		e = strings.ToLower(e)
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		r.exts[e] = true
	}
	return r
}

// Default returns the compiled-in rule sets.
func Default() Rules {
	return New(defaultExcludeDirs, defaultBinaryExts)
}

// Empty reports whether the value carries no sets at all, which is the state
// of an uninitialized Rules. New always attaches sets, even zero-length ones,
// so a deliberately permissive Rules is not Empty.
func (r Rules) Empty() bool {
	return r.dirs == nil && r.exts == nil
}

// IsExcludedDir reports whether a directory with this base name is pruned.
func (r Rules) IsExcludedDir(name string) bool {
	return r.dirs[name]
}

// IsBinaryExt reports whether the file name carries a binary-like extension.
// The extension is everything after the last dot of the base name, compared
// case-insensitively. Names without an extension are never binary-like.
func (r Rules) IsBinaryExt(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if ext == "" {
		return false
	}
	return r.exts[ext]
}

// ExcludedDirs returns the directory name set, sorted.
func (r Rules) ExcludedDirs() []string {
	out := make([]string, 0, len(r.dirs))
	for d := range r.dirs {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// BinaryExts returns the extension set, sorted.
func (r Rules) BinaryExts() []string {
	out := make([]string, 0, len(r.exts))
	for e := range r.exts {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}
