// Package core provides a small, stable facade over worm's internal search
// engine for external integrations. It deliberately re-exports a narrow API
// surface so third-party tools can depend on a stable import path without
// exposing internal implementation packages.
//
// Example:
//
//	cfg := core.Config{Root: ".", Query: "TODO"}
//	matches := core.Search(cfg)
//	_ = core.MarshalMatches(os.Stdout, matches)
package core
