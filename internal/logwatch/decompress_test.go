package logwatch

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func TestOpenDecompressedGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log.gz")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(f)
	gw.Write([]byte("rotated and compressed\n"))
	gw.Close()
	f.Close()

	raw, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	rc, err := OpenDecompressed(path, raw)
	if err != nil {
		t.Fatalf("OpenDecompressed: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "rotated and compressed\n" {
		t.Fatalf("unexpected content: %q", data)
	}
}

func TestIsCompressed(t *testing.T) {
	if !IsCompressed("app.log.gz") || !IsCompressed("app.log.zst") {
		t.Fatalf("expected .gz/.zst to be recognized")
	}
	if IsCompressed("app.log") {
		t.Fatalf("plain file should not be recognized as compressed")
	}
}
