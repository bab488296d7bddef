package spectro

import "time"

// ZoomLevels is the table of selectable granularities a spectrogram can be
// zoomed through, from one-second to day-wide buckets. The exact constant
// table lnav ships (ZOOM_LEVELS) lives outside the code-only source slice
// this repo was built from, so this reproduces the same log-scaled
// progression spec.md 4.7's "table of zoom levels" describes rather than
// guessing the original's exact values.
var ZoomLevels = []time.Duration{
	time.Second,
	10 * time.Second,
	30 * time.Second,
	time.Minute,
	5 * time.Minute,
	15 * time.Minute,
	time.Hour,
	6 * time.Hour,
	24 * time.Hour,
}

// DefaultZoomLevel is the granularity a fresh spectrogram starts at.
const DefaultZoomLevel = 3 // time.Minute

func rounddown(t time.Time, step time.Duration) time.Time {
	return t.Add(-time.Duration(t.UnixNano() % int64(step)))
}

func roundup(t time.Time, step time.Duration) time.Time {
	rem := t.UnixNano() % int64(step)
	if rem == 0 {
		return t
	}
	return t.Add(step - time.Duration(rem))
}
