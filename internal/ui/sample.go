package ui

import (
	"bufio"
	"os"
)

// readSampleLines reads up to n lines from path, the raw-text sample
// logformat.DetectParser scores against to pick a line format for a newly
// discovered file.
func readSampleLines(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines := make([]string, 0, n)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() && len(lines) < n {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
