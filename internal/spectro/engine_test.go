package spectro

import (
	"testing"
	"time"
)

// fakeSource is a ValueSource test double: a fixed bounds and a fixed
// per-request row generator.
type fakeSource struct {
	bounds  Bounds
	rowFunc func(Request) Row
	marks   []markCall
}

type markCall struct {
	begin, end time.Time
	vmin, vmax float64
}

func (f *fakeSource) Bounds() Bounds { return f.bounds }
func (f *fakeSource) Row(req Request) Row {
	if f.rowFunc != nil {
		return f.rowFunc(req)
	}
	return Row{Buckets: make([]RowBucket, req.Width)}
}
func (f *fakeSource) Mark(begin, end time.Time, vmin, vmax float64) {
	f.marks = append(f.marks, markCall{begin, end, vmin, vmax})
}

func at(sec int64) time.Time { return time.Unix(sec, 0).UTC() }

func TestLineCountAndRounding(t *testing.T) {
	src := &fakeSource{bounds: Bounds{
		MinValue: 0, MaxValue: 100,
		BeginTime: at(5), EndTime: at(185), // 3 minutes span
		Count: 300,
	}}
	e := NewEngine(src, time.Minute)

	// begin rounds down to :00, end rounds up to the next minute boundary.
	want := int((roundup(at(185), time.Minute).Sub(rounddown(at(5), time.Minute)) + time.Minute - 1) / time.Minute)
	if got := e.LineCount(); got != want {
		t.Fatalf("LineCount() = %d, want %d", got, want)
	}
}

func TestThresholdsFloorAtTwo(t *testing.T) {
	src := &fakeSource{bounds: Bounds{
		MinValue: 0, MaxValue: 10,
		BeginTime: at(0), EndTime: at(60),
		Count: 2, // tiny sample count should floor thresholds at >=2
	}}
	e := NewEngine(src, time.Minute)
	th := e.Thresholds()
	if th.Green < 2 {
		t.Fatalf("expected green threshold floored at 2, got %d", th.Green)
	}
	if th.Yellow <= th.Green {
		t.Fatalf("expected yellow > green, got yellow=%d green=%d", th.Yellow, th.Green)
	}
}

func TestPaintRolesByThreshold(t *testing.T) {
	src := &fakeSource{bounds: Bounds{
		MinValue: 0, MaxValue: 10,
		BeginTime: at(0), EndTime: at(60),
		Count: 400, // lineCount=1 => samples_per_row=400, yellow=200, green=100
	}}
	e := NewEngine(src, time.Minute)
	row := Row{Buckets: []RowBucket{{Counter: 0}, {Counter: 50}, {Counter: 150}, {Counter: 250}}}
	roles := e.PaintRoles(row)
	want := []Role{RoleBlank, RoleLow, RoleMed, RoleHigh}
	for i := range want {
		if roles[i] != want[i] {
			t.Fatalf("roles[%d] = %v, want %v (roles=%v)", i, roles[i], want[i], roles)
		}
	}
}

func TestLoadRowCachesByRowTimeWidthAndColumnSize(t *testing.T) {
	calls := 0
	src := &fakeSource{
		bounds: Bounds{MinValue: 0, MaxValue: 100, BeginTime: at(0), EndTime: at(60), Count: 10},
		rowFunc: func(req Request) Row {
			calls++
			return Row{Buckets: make([]RowBucket, req.Width)}
		},
	}
	e := NewEngine(src, time.Minute)

	e.LoadRow(0, 20)
	e.LoadRow(0, 20) // same width -> cache hit, no second source call
	if calls != 1 {
		t.Fatalf("expected 1 source call after cache hit, got %d", calls)
	}
	e.LoadRow(0, 40) // different width -> cache miss
	if calls != 2 {
		t.Fatalf("expected 2 source calls after width change, got %d", calls)
	}
}

func TestMoveCursorWrapsAroundNonZeroColumns(t *testing.T) {
	e := NewEngine(&fakeSource{}, time.Minute)
	row := Row{Buckets: []RowBucket{{Counter: 1}, {Counter: 0}, {Counter: 1}, {Counter: 1}}}

	e.CursorColumn = -1
	e.MoveCursor(row, Right)
	if e.CursorColumn != 0 {
		t.Fatalf("expected first move right to land on column 0, got %d", e.CursorColumn)
	}
	e.MoveCursor(row, Right)
	if e.CursorColumn != 2 {
		t.Fatalf("expected second move right to skip the zero column to 2, got %d", e.CursorColumn)
	}
	e.MoveCursor(row, Right)
	if e.CursorColumn != 3 {
		t.Fatalf("expected third move right to land on 3, got %d", e.CursorColumn)
	}
	e.MoveCursor(row, Right)
	if e.CursorColumn != 0 {
		t.Fatalf("expected move right past the end to wrap to 0, got %d", e.CursorColumn)
	}
	e.MoveCursor(row, Left)
	if e.CursorColumn != 3 {
		t.Fatalf("expected move left from 0 to wrap to 3, got %d", e.CursorColumn)
	}
}

func TestMoveCursorNoNonZeroColumnsClearsCursor(t *testing.T) {
	e := NewEngine(&fakeSource{}, time.Minute)
	e.CursorColumn = 2
	row := Row{Buckets: []RowBucket{{Counter: 0}, {Counter: 0}}}
	e.MoveCursor(row, Right)
	if e.CursorColumn != -1 {
		t.Fatalf("expected cursor cleared when no non-zero columns, got %d", e.CursorColumn)
	}
}

func TestMarkComputesValueRangeAndInvalidatesCache(t *testing.T) {
	src := &fakeSource{bounds: Bounds{MinValue: 0, MaxValue: 100, BeginTime: at(0), EndTime: at(60), Count: 10}}
	e := NewEngine(src, time.Minute)

	r := e.LoadRow(0, 11) // columnSize = (100-0)/(11-1) = 10
	_ = r
	e.CursorTop = 0
	e.CursorColumn = 3

	if !e.Mark(0) {
		t.Fatalf("expected Mark to succeed")
	}
	if len(src.marks) != 1 {
		t.Fatalf("expected 1 mark call, got %d", len(src.marks))
	}
	m := src.marks[0]
	if m.vmin != 30 {
		t.Fatalf("expected vmin=30 (column 3 * columnSize 10), got %v", m.vmin)
	}
	if !m.begin.Equal(e.TimeForRow(0)) || !m.end.Equal(e.TimeForRow(0).Add(time.Minute)) {
		t.Fatalf("expected mark range to span the row's granularity window, got %v..%v", m.begin, m.end)
	}
	if _, ok := e.rowCache[e.TimeForRow(0)]; ok {
		t.Fatalf("expected Mark to evict the row from cache")
	}
}

func TestMarkFailsWithoutCursor(t *testing.T) {
	src := &fakeSource{bounds: Bounds{MinValue: 0, MaxValue: 100, BeginTime: at(0), EndTime: at(60), Count: 10}}
	e := NewEngine(src, time.Minute)
	if e.Mark(0) {
		t.Fatalf("expected Mark to fail when no cursor column is set")
	}
}

func TestNonZeroColumns(t *testing.T) {
	row := Row{Buckets: []RowBucket{{Counter: 0}, {Counter: 5}, {Counter: 0}, {Counter: 2}}}
	got := NonZeroColumns(row)
	want := []int{1, 3}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("NonZeroColumns = %v, want %v", got, want)
	}
}
