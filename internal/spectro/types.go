package spectro

import "time"

// Bounds is the overall extent of the numeric field being spectrogrammed,
// spec.md 3's "Spectrogram state" bounds tuple.
type Bounds struct {
	MinValue  float64
	MaxValue  float64
	BeginTime time.Time
	EndTime   time.Time
	Count     int64
}

// Thresholds are the two sample-count cutoffs that choose a column's paint
// role, cached per spec.md 4.7 step 2 whenever Bounds.Count changes.
type Thresholds struct {
	Green  int64
	Yellow int64
}

// Request is what a row asks its ValueSource for, spec.md 4.7 step 3.
type Request struct {
	BeginTime  time.Time
	EndTime    time.Time
	Width      int
	ColumnSize float64
}

// RowBucket is one column's sample count and mark state.
type RowBucket struct {
	Counter int64
	Marked  bool
}

// Row is one time-bucket's full set of value-column buckets.
type Row struct {
	Width      int
	ColumnSize float64
	Buckets    []RowBucket
}

// ValueSource supplies the numeric field data a spectrogram buckets,
// spec.md 4.7's "value source".
type ValueSource interface {
	Bounds() Bounds
	Row(req Request) Row
	Mark(beginTime, endTime time.Time, vmin, vmax float64)
}

// Role is the paint role chosen for a non-zero column by the two-threshold
// scheme.
type Role int

const (
	RoleBlank Role = iota
	RoleLow
	RoleMed
	RoleHigh
)
