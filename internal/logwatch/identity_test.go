package logwatch

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIdentityDetectsHardLinks(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.log")
	b := filepath.Join(dir, "b.log")
	writeFile(t, a, "same content\n")
	if err := os.Link(a, b); err != nil {
		t.Skipf("hard links unsupported on this filesystem: %v", err)
	}

	fiA, err := os.Stat(a)
	if err != nil {
		t.Fatal(err)
	}
	fiB, err := os.Stat(b)
	if err != nil {
		t.Fatal(err)
	}
	if identityOf(fiA) != identityOf(fiB) {
		t.Fatalf("hard-linked files should share an identity")
	}
}

func TestIdentityDistinguishesDifferentFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.log")
	b := filepath.Join(dir, "b.log")
	writeFile(t, a, "content a\n")
	writeFile(t, b, "content b is longer\n")

	fiA, _ := os.Stat(a)
	fiB, _ := os.Stat(b)
	if identityOf(fiA) == identityOf(fiB) {
		t.Fatalf("distinct files should not share an identity")
	}
}
