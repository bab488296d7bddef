package logwatch

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// expandGlob resolves a watch pattern to concrete paths, supporting `**`
// recursive patterns via doublestar rather than a hand-rolled walker.
func expandGlob(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		// An unparsable pattern is treated as a literal path, matching
		// lnav's fallback of opening the name directly. A plain path with
		// no metacharacters is a valid pattern and goes through Glob below,
		// so it resolves only if it exists.
		return []string{pattern}, nil
	}
	base, rel := splitPattern(pattern)
	matches, err := doublestar.Glob(os.DirFS(base), rel)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, filepath.Join(base, m))
	}
	return out, nil
}

// splitPattern separates a pattern's non-glob directory prefix (usable as
// an fs.FS root) from the remaining doublestar pattern.
func splitPattern(pattern string) (base, rel string) {
	dir := filepath.Dir(pattern)
	for dir != "." && dir != string(filepath.Separator) {
		if !containsGlobMeta(dir) {
			break
		}
		dir = filepath.Dir(dir)
	}
	if dir == "" {
		dir = "."
	}
	base = dir
	rel, _ = filepath.Rel(base, pattern)
	return base, filepath.ToSlash(rel)
}

func containsGlobMeta(s string) bool {
	for _, r := range s {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// rotatedSiblingGlob builds the "name.*" pattern used when the rotated flag
// is set on a pattern (spec.md 4.3 step 1).
func rotatedSiblingGlob(path string) string {
	return path + ".*"
}
