package scanner

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/worm/worm/internal/types"
)

var (
	// ErrNotUTF8 marks a file whose bytes do not decode as UTF-8 text.
	ErrNotUTF8 = errors.New("content is not valid UTF-8 text")

	// ErrNotRegularFile marks paths that resolve to directories, devices,
	// sockets or pipes. Reading those would block or fail uselessly.
	ErrNotRegularFile = errors.New("not a regular file")
)

// ReadFileText reads the whole file at path as UTF-8 text. Any failure,
// including undecodable bytes, comes back as an error for the caller to
// report and skip; a failed read never carries partial content.
func ReadFileText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%s: %w", path, ErrNotUTF8)
	}
	return string(b), nil
}

// ScanFile searches one file for the literal query. It returns nil when the
// file contains no occurrence, and a FileMatch with one snippet per
// occurrence (in offset order) when it does. The returned match carries the
// path exactly as given; callers decide how to present it. context <= 0
// falls back to DefaultContext.
func ScanFile(path, query string, context int) (*types.FileMatch, error) {
	if context <= 0 {
		context = DefaultContext
	}
	content, err := ReadFileText(path)
	if err != nil {
		return nil, err
	}
	offsets := FindOffsets(content, query)
	if len(offsets) == 0 {
		return nil, nil
	}
	m := &types.FileMatch{
		Path:     path,
		Snippets: make([]string, 0, len(offsets)),
	}
	for _, off := range offsets {
		m.Snippets = append(m.Snippets, FormatSnippet(content, off, context))
	}
	return m, nil
}
