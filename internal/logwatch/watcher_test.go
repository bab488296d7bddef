package logwatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestRescanOpensMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.log"), "hello\n")
	writeFile(t, filepath.Join(dir, "app.log.1"), "older\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "irrelevant\n")

	c := New([]Pattern{{Glob: filepath.Join(dir, "*.log")}})
	delta, err := c.Rescan(context.Background())
	if err != nil {
		t.Fatalf("rescan: %v", err)
	}
	if len(delta.Added) != 1 {
		t.Fatalf("expected 1 added file, got %d: %+v", len(delta.Added), delta.Added)
	}
	if delta.Added[0].Path != filepath.Join(dir, "app.log") {
		t.Fatalf("unexpected file opened: %s", delta.Added[0].Path)
	}
}

func TestRescanRotatedGlobPicksUpSiblings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.log"), "hello\n")
	writeFile(t, filepath.Join(dir, "app.log.1"), "older\n")

	c := New([]Pattern{{Glob: filepath.Join(dir, "app.log"), Rotated: true}})
	delta, err := c.Rescan(context.Background())
	if err != nil {
		t.Fatalf("rescan: %v", err)
	}
	if len(delta.Added) != 2 {
		t.Fatalf("expected app.log and app.log.1, got %d: %+v", len(delta.Added), delta.Added)
	}
}

func TestRescanIsIdempotentAcrossPasses(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.log"), "hello\n")

	c := New([]Pattern{{Glob: filepath.Join(dir, "*.log")}})
	first, err := c.Rescan(context.Background())
	if err != nil {
		t.Fatalf("first rescan: %v", err)
	}
	if len(first.Added) != 1 {
		t.Fatalf("expected 1 file on first pass, got %d", len(first.Added))
	}
	second, err := c.Rescan(context.Background())
	if err != nil {
		t.Fatalf("second rescan: %v", err)
	}
	if len(second.Added) != 0 {
		t.Fatalf("already-open file should not be re-added, got %+v", second.Added)
	}
}

func TestRescanDetectsRename(t *testing.T) {
	dir := t.TempDir()
	orig := filepath.Join(dir, "app.log")
	writeFile(t, orig, "hello\n")

	c := New([]Pattern{{Glob: filepath.Join(dir, "*.log")}})
	if _, err := c.Rescan(context.Background()); err != nil {
		t.Fatalf("initial rescan: %v", err)
	}

	renamed := filepath.Join(dir, "renamed.log")
	if err := os.Rename(orig, renamed); err != nil {
		t.Fatalf("rename: %v", err)
	}

	delta, err := c.Rescan(context.Background())
	if err != nil {
		t.Fatalf("second rescan: %v", err)
	}
	if len(delta.Renamed) != 1 {
		t.Fatalf("expected 1 rename, got %d: %+v", len(delta.Renamed), delta.Renamed)
	}
	if delta.Renamed[0].NewPath != renamed {
		t.Fatalf("unexpected rename target: %+v", delta.Renamed[0])
	}
}

func TestRescanRecordsPerFileErrorsWithoutFailingWhole(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ok.log"), "fine\n")

	c := New([]Pattern{
		{Glob: filepath.Join(dir, "*.log")},
		{Glob: filepath.Join(dir, "missing-dir-xyz", "*.log")},
	})
	delta, err := c.Rescan(context.Background())
	if err != nil {
		t.Fatalf("rescan should not fail as a whole: %v", err)
	}
	if len(delta.Added) != 1 {
		t.Fatalf("expected the valid pattern's file to still open, got %+v", delta.Added)
	}
}

func TestClosedFileNotReopened(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	writeFile(t, path, "hello\n")

	c := New([]Pattern{{Glob: filepath.Join(dir, "*.log")}})
	if _, err := c.Rescan(context.Background()); err != nil {
		t.Fatalf("rescan: %v", err)
	}
	c.CloseFile(path)

	// Rescan again with the file still on disk and still matching the
	// pattern: the closed path must not come back as added.
	delta, err := c.Rescan(context.Background())
	if err != nil {
		t.Fatalf("rescan after close: %v", err)
	}
	for _, f := range delta.Added {
		if f.Path == path {
			t.Fatalf("closed file should not be re-added")
		}
	}
}
