// Package rules holds the immutable exclusion sets that shape a walk: which
// directory names are never descended into and which file extensions mark a
// file as binary-like. The sets are passed into the walker explicitly so
// tests can inject their own.
package rules
