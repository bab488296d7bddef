package timeline

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/five82/chronoview/internal/logindex"
	"github.com/five82/chronoview/internal/loglevel"
)

// fakeSource is a test double for OpidSource: a fixed list of events, as if
// already extracted by the format engine from one file's indexed lines.
type fakeSource struct {
	events []OpidEvent
}

func (f fakeSource) OpidEvents() []OpidEvent { return f.events }

func unixTime(sec int64) time.Time { return time.Unix(sec, 0).UTC() }

// TestBuildMergesOpidAcrossFiles reproduces spec.md 8 scenario 6: two files
// contribute opid "abc" with overlapping but distinct ranges and one
// warning, one error; the merged row must span both ranges and carry both
// counts.
func TestBuildMergesOpidAcrossFiles(t *testing.T) {
	fileA := fakeSource{events: []OpidEvent{
		{OpID: "abc", Time: unixTime(10), Level: loglevel.Warning, Description: "started", DescKey: "fmtA"},
		{OpID: "abc", Time: unixTime(20), Level: loglevel.Info},
	}}
	fileB := fakeSource{events: []OpidEvent{
		{OpID: "abc", Time: unixTime(15), Level: loglevel.Info},
		{OpID: "abc", Time: unixTime(25), Level: loglevel.Error, Description: "failed", DescKey: "fmtB"},
	}}

	rows := Build([]OpidSource{fileA, fileB}, time.Time{}, time.Time{}, nil)
	if len(rows) != 1 {
		t.Fatalf("expected 1 merged row, got %d", len(rows))
	}
	row := rows[0]
	if row.OpID != "abc" {
		t.Fatalf("expected opid abc, got %q", row.OpID)
	}
	if !row.Range.Begin.Equal(unixTime(10)) || !row.Range.End.Equal(unixTime(25)) {
		t.Fatalf("expected range [10,25], got [%v,%v]", row.Range.Begin, row.Range.End)
	}
	if row.LevelStats.Warn != 1 || row.LevelStats.Error != 1 || row.LevelStats.Total != 4 {
		t.Fatalf("expected warn=1 error=1 total=4, got %+v", row.LevelStats)
	}
	if row.Descriptions["fmtA"] != "started" || row.Descriptions["fmtB"] != "failed" {
		t.Fatalf("expected both per-format descriptions to survive, got %+v", row.Descriptions)
	}
}

func TestBuildSubOpsDedupedAndContained(t *testing.T) {
	src := fakeSource{events: []OpidEvent{
		{OpID: "op1", SubID: "s1", Time: unixTime(100), Level: loglevel.Info},
		{OpID: "op1", SubID: "s1", Time: unixTime(110), Level: loglevel.Info},
		{OpID: "op1", SubID: "s2", Time: unixTime(200), Level: loglevel.Info},
	}}
	rows := Build([]OpidSource{src}, time.Time{}, time.Time{}, nil)
	row := rows[0]
	if len(row.SubOps) != 2 {
		t.Fatalf("expected sub_ops deduped to 2, got %d", len(row.SubOps))
	}
	for _, sub := range row.SubOps {
		if !row.Range.Contains(sub.Range) {
			t.Fatalf("row range %v does not contain sub_op %s range %v", row.Range, sub.SubID, sub.Range)
		}
	}
}

func TestBuildAppliesTimeCutoffs(t *testing.T) {
	src := fakeSource{events: []OpidEvent{
		{OpID: "early", Time: unixTime(1), Level: loglevel.Info},
		{OpID: "late", Time: unixTime(1000), Level: loglevel.Info},
		{OpID: "mid", Time: unixTime(50), Level: loglevel.Info},
	}}
	rows := Build([]OpidSource{src}, unixTime(10), unixTime(100), nil)
	if len(rows) != 1 || rows[0].OpID != "mid" {
		t.Fatalf("expected only 'mid' to survive the time cutoff, got %v", rows)
	}
}

func TestBuildSortsByRangeStart(t *testing.T) {
	src := fakeSource{events: []OpidEvent{
		{OpID: "b", Time: unixTime(20), Level: loglevel.Info},
		{OpID: "a", Time: unixTime(10), Level: loglevel.Info},
	}}
	rows := Build([]OpidSource{src}, time.Time{}, time.Time{}, nil)
	if rows[0].OpID != "a" || rows[1].OpID != "b" {
		t.Fatalf("expected rows sorted by range start, got %v, %v", rows[0].OpID, rows[1].OpID)
	}
}

func TestComputeBoundsAndLayout(t *testing.T) {
	src := fakeSource{events: []OpidEvent{
		{OpID: "abc", Time: unixTime(0), Level: loglevel.Info, Description: "x", DescKey: "f"},
		{OpID: "abc", Time: unixTime(100), Level: loglevel.Info},
	}}
	rows := Build([]OpidSource{src}, time.Time{}, time.Time{}, nil)
	bounds := ComputeBounds(rows)
	if !bounds.Min.Equal(unixTime(0)) || !bounds.Max.Equal(unixTime(100)) {
		t.Fatalf("unexpected bounds %+v", bounds)
	}
	bars := Layout(rows, bounds, 10)
	if len(bars) != 1 {
		t.Fatalf("expected 1 bar, got %d", len(bars))
	}
	if bars[0].StartCol != 0 || bars[0].WidthCols != 10 {
		t.Fatalf("expected bar spanning the full width, got %+v", bars[0])
	}
}

// opidParser is a LineParser test double for Preview: "<sec> <LEVEL> <opid> <rest>".
type opidParser struct{}

func (opidParser) Parse(raw string) (time.Time, loglevel.Level, string, bool) {
	parts := strings.SplitN(raw, " ", 4)
	if len(parts) < 3 {
		return time.Time{}, loglevel.Info, "", false
	}
	sec, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, loglevel.Info, "", false
	}
	lvl := loglevel.Info
	switch parts[1] {
	case "WARNING":
		lvl = loglevel.Warning
	case "ERROR":
		lvl = loglevel.Error
	}
	return unixTime(sec), lvl, parts[2], false
}

func writeTempLog(t *testing.T, dir, name string, lines []string) *logindex.LogFile {
	t.Helper()
	path := filepath.Join(dir, name)
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return logindex.NewLogFile(path, opidParser{})
}

func TestPreviewMergesMessagesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	fa := writeTempLog(t, dir, "a.log", []string{
		"10 WARNING abc hello from a",
		"20 INFO xyz unrelated",
	})
	fb := writeTempLog(t, dir, "b.log", []string{
		"15 INFO abc hello from b",
		"25 ERROR abc bye from b",
	})

	idx := logindex.New([]*logindex.LogFile{fa, fb})
	if _, err := idx.Rebuild(time.Time{}); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	row := &OperationRow{OpID: "abc", Range: TimeRange{Begin: unixTime(10), End: unixTime(25)}}
	msgs := Preview(idx, row, 0)
	if len(msgs) != 3 {
		t.Fatalf("expected 3 preview messages, got %d: %+v", len(msgs), msgs)
	}
	for i := 1; i < len(msgs); i++ {
		if msgs[i].Time.Before(msgs[i-1].Time) {
			t.Fatalf("expected preview messages in time order, got %+v", msgs)
		}
	}
	if msgs[0].File != fa.Path && msgs[0].File != fb.Path {
		t.Fatalf("unexpected file %q", msgs[0].File)
	}
}

func TestPreviewReturnsNilWhenNoMatch(t *testing.T) {
	dir := t.TempDir()
	fa := writeTempLog(t, dir, "a.log", []string{"10 INFO zzz nothing here"})
	idx := logindex.New([]*logindex.LogFile{fa})
	if _, err := idx.Rebuild(time.Time{}); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	row := &OperationRow{OpID: "missing", Range: TimeRange{Begin: unixTime(10), End: unixTime(20)}}
	if msgs := Preview(idx, row, 0); msgs != nil {
		t.Fatalf("expected nil preview, got %+v", msgs)
	}
}
