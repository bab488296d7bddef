package logwatch

import (
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// OpenDecompressed wraps raw, transparently unwrapping a trailing
// .gz/.zst extension (per path) so a rotated-and-compressed log reads
// like any other ordinary file. The caller owns the returned closer.
func OpenDecompressed(path string, raw io.ReadCloser) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(raw)
		if err != nil {
			raw.Close()
			return nil, err
		}
		return &gzipCloser{Reader: zr, under: raw}, nil
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(raw)
		if err != nil {
			raw.Close()
			return nil, err
		}
		return &zstdCloser{Decoder: zr, under: raw}, nil
	default:
		return raw, nil
	}
}

type gzipCloser struct {
	*gzip.Reader
	under io.ReadCloser
}

func (c *gzipCloser) Close() error {
	err := c.Reader.Close()
	if cerr := c.under.Close(); err == nil {
		err = cerr
	}
	return err
}

type zstdCloser struct {
	*zstd.Decoder
	under io.ReadCloser
}

func (c *zstdCloser) Close() error {
	c.Decoder.Close()
	return c.under.Close()
}

// IsCompressed reports whether path names a format OpenDecompressed knows
// how to unwrap.
func IsCompressed(path string) bool {
	return strings.HasSuffix(path, ".gz") || strings.HasSuffix(path, ".zst")
}
