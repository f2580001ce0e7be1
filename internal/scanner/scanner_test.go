package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadFileText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(path, []byte("hello world\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFileText(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello world\n" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestReadFileTextMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadFileText(filepath.Join(dir, "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestReadFileTextInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mangled.txt")
	// 0xff can never start a UTF-8 sequence.
	if err := os.WriteFile(path, []byte{'o', 'k', 0xff, 0xfe, 'x'}, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadFileText(path)
	if !errors.Is(err, ErrNotUTF8) {
		t.Fatalf("expected ErrNotUTF8, got %v", err)
	}
}

func TestReadFileTextDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadFileText(dir)
	if !errors.Is(err, ErrNotRegularFile) {
		t.Fatalf("expected ErrNotRegularFile, got %v", err)
	}
}

func TestScanFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("first target then another target here"), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := ScanFile(path, "target", DefaultContext)
	if err != nil {
		t.Fatal(err)
	}
	if m == nil {
		t.Fatal("expected a match")
	}
	if m.Path != path {
		t.Fatalf("expected path %q, got %q", path, m.Path)
	}
	if len(m.Snippets) != 2 {
		t.Fatalf("expected 2 snippets, got %d", len(m.Snippets))
	}
	if m.Snippets[0] != "...first target then another target here..." {
		t.Fatalf("unexpected snippet %q", m.Snippets[0])
	}
}

func TestScanFileNoMatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("nothing of interest"), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := ScanFile(path, "target", DefaultContext)
	if err != nil {
		t.Fatal(err)
	}
	if m != nil {
		t.Fatalf("expected no match, got %+v", m)
	}
}

func TestScanFileDefaultsContext(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wide.txt")
	content := make([]byte, 0, 300)
	for len(content) < 120 {
		content = append(content, 'x')
	}
	content = append(content, []byte("target")...)
	for len(content) < 300 {
		content = append(content, 'y')
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	m, err := ScanFile(path, "target", 0)
	if err != nil {
		t.Fatal(err)
	}
	if m == nil {
		t.Fatal("expected a match")
	}
	want := 2*DefaultContext + 6
	if len(m.Snippets[0]) != want {
		t.Fatalf("expected snippet of %d bytes, got %d: %q", want, len(m.Snippets[0]), m.Snippets[0])
	}
}
