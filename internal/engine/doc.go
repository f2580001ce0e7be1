// Package engine contains the core search logic for worm. It walks a
// directory tree, scans eligible files for a literal query, and streams the
// matches back to the caller. This package is internal; external consumers
// should use the stable facade in pkg/core.
package engine
