package logwatch

import (
	"fmt"
	"io"
	"os"
)

// spliceFIFO drains a FIFO's current bytes into a fresh, uniquely-named
// temp file under dir and returns its path, so the rest of the pipeline can
// treat it like an ordinary file (spec.md 4.3 step 2).
func spliceFIFO(path, dir string) (string, error) {
	in, err := os.OpenFile(path, os.O_RDONLY|os.O_NONBLOCK, 0)
	if err != nil {
		return "", fmt.Errorf("logwatch: open fifo %s: %w", path, err)
	}
	defer in.Close()

	out, err := os.CreateTemp(dir, "fifo-*.log")
	if err != nil {
		return "", fmt.Errorf("logwatch: create fifo staging file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil && err != io.ErrClosedPipe {
		return "", fmt.Errorf("logwatch: drain fifo %s: %w", path, err)
	}
	return out.Name(), nil
}

func isFIFO(fi os.FileInfo) bool {
	return fi.Mode()&os.ModeNamedPipe != 0
}
