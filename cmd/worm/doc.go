// Package worm provides the command-line interface for the worm tool. It
// wires the search engine to the terminal: parses arguments, runs the
// search rooted at the current directory, and renders the report.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/worm/worm/cmd/worm"
//	func main() { worm.Execute() }
package worm
