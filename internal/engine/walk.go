package engine

import (
	"io/fs"
	"path/filepath"

	"github.com/worm/worm/internal/rules"
)

// Walk traverses the tree rooted at root and invokes handle for every file
// that survives the exclusion rules. Directories with an excluded base name
// are pruned before descent, so nothing beneath them is ever listed or
// opened. Files with a binary-like extension are skipped without being
// opened. Traversal problems (an unreadable directory, a root that does not
// exist) are reported through diag for the failing path and the walk moves
// on; Walk itself never fails.
//
// filepath.WalkDir visits entries in lexical order and does not follow
// symbolic links, so the traversal is deterministic and cycle-free.
func Walk(root string, r rules.Rules, diag func(path string, err error), handle func(path string)) {
	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if diag != nil {
				diag(p, err)
			}
			return nil
		}
		if d.IsDir() {
			// The root is where the walk starts, not a name encountered
			// during it, so it is never pruned even if its own base name
			// is on the exclusion list.
			if p != root && r.IsExcludedDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if r.IsBinaryExt(d.Name()) {
			return nil
		}
		handle(p)
		return nil
	})
}
