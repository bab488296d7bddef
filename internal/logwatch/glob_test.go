package logwatch

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestExpandGlobRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "top.log"), "x")
	writeFile(t, filepath.Join(sub, "nested.log"), "x")
	writeFile(t, filepath.Join(sub, "ignore.txt"), "x")

	matches, err := expandGlob(filepath.Join(dir, "**", "*.log"))
	if err != nil {
		t.Fatalf("expandGlob: %v", err)
	}
	sort.Strings(matches)
	want := []string{filepath.Join(sub, "nested.log"), filepath.Join(dir, "top.log")}
	sort.Strings(want)
	if len(matches) != len(want) {
		t.Fatalf("got %v, want %v", matches, want)
	}
	for i := range want {
		if matches[i] != want[i] {
			t.Fatalf("got %v, want %v", matches, want)
		}
	}
}

func TestExpandGlobLiteralPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.log")
	writeFile(t, path, "x")

	matches, err := expandGlob(path)
	if err != nil {
		t.Fatalf("expandGlob: %v", err)
	}
	if len(matches) != 1 || matches[0] != path {
		t.Fatalf("literal path should resolve to itself: %v", matches)
	}
}
