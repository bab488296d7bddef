package logwatch

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestWalkZipSkipsEmptyMembers(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "logs.zip")

	f, err := os.Create(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w1, _ := zw.Create("app.log")
	w1.Write([]byte("hello\n"))
	_, _ = zw.Create("empty.log") // zero bytes written
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	members, err := walkArchive(zipPath, dir)
	if err != nil {
		t.Fatalf("walkArchive: %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("expected 1 non-empty member, got %d: %+v", len(members), members)
	}
	if members[0].Name != "app.log" {
		t.Fatalf("unexpected member name: %s", members[0].Name)
	}
	data, err := os.ReadFile(members[0].Path)
	if err != nil {
		t.Fatalf("read extracted member: %v", err)
	}
	if string(data) != "hello\n" {
		t.Fatalf("unexpected extracted content: %q", data)
	}
}
