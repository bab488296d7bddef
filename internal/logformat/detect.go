package logformat

// sampleSize caps how many lines Detect reads before scoring, so detection
// on a multi-gigabyte file stays O(1) in file size.
const sampleSize = 200

// Detect scores every candidate format against sample and returns the
// best-scoring one. Ties favor the earlier entry in formats, so callers
// that want "generic" preferred over "json-lines" on an ambiguous sample
// should list it first (Builtins/AllBuiltins already do).
// Returns ok=false if no format scores above zero.
func Detect(sample []string, formats []Format) (Format, bool) {
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}
	var best Format
	bestScore := 0.0
	for _, f := range formats {
		score := f.Score(sample)
		if score > bestScore {
			best = f
			bestScore = score
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}
