package logformat

import (
	"testing"
	"time"

	"github.com/five82/chronoview/internal/loglevel"
)

func TestGenericFormatParsesTimestampLevelAndOpid(t *testing.T) {
	f := Builtins()[0] // generic
	pl, ok := f.ParseLine("2023-05-01T10:02:03.123456 [ERROR] [op=abc123.4] connection refused")
	if !ok {
		t.Fatalf("expected generic format to parse line")
	}
	if pl.Level.Base() != loglevel.Error {
		t.Errorf("Level = %v, want Error", pl.Level)
	}
	if pl.OpID != "abc123" || pl.SubID != "4" {
		t.Errorf("OpID/SubID = %q/%q, want abc123/4", pl.OpID, pl.SubID)
	}
	if pl.Desc != "connection refused" {
		t.Errorf("Desc = %q", pl.Desc)
	}
	if pl.Time.Year() != 2023 || pl.Time.Month() != time.May {
		t.Errorf("Time = %v", pl.Time)
	}
}

func TestGenericFormatRejectsNonMatchingLine(t *testing.T) {
	f := Builtins()[0]
	if _, ok := f.ParseLine("this is not a log line at all"); ok {
		t.Fatalf("expected no match")
	}
}

func TestLogfmtFormatParsesKeyValuePairs(t *testing.T) {
	var f Format
	for _, cand := range Builtins() {
		if cand.Name() == "logfmt" {
			f = cand
		}
	}
	if f == nil {
		t.Fatal("logfmt format not registered")
	}
	pl, ok := f.ParseLine(`time=2023-05-01T10:02:03Z level=warn opid=req-42 msg="retrying"`)
	if !ok {
		t.Fatalf("expected logfmt format to parse line")
	}
	if pl.Level.Base() != loglevel.Warning {
		t.Errorf("Level = %v, want Warning", pl.Level)
	}
	if pl.OpID != "req-42" {
		t.Errorf("OpID = %q, want req-42", pl.OpID)
	}
}

func TestSyslogFormatParsesHostAndProgram(t *testing.T) {
	var f Format
	for _, cand := range Builtins() {
		if cand.Name() == "syslog" {
			f = cand
		}
	}
	pl, ok := f.ParseLine("Jan  2 15:04:05 myhost sshd[1234]: Accepted password for root")
	if !ok {
		t.Fatalf("expected syslog format to parse line")
	}
	if pl.OpID != "sshd" {
		t.Errorf("OpID = %q, want sshd", pl.OpID)
	}
	if pl.Desc != "Accepted password for root" {
		t.Errorf("Desc = %q", pl.Desc)
	}
}

func TestJSONLinesFormatParsesCommonFieldAliases(t *testing.T) {
	f := newJSONLinesFormat()
	pl, ok := f.ParseLine(`{"ts":"2023-05-01T10:02:03Z","severity":"error","trace_id":"t-1","msg":"boom"}`)
	if !ok {
		t.Fatalf("expected json-lines format to parse line")
	}
	if pl.Level.Base() != loglevel.Error {
		t.Errorf("Level = %v, want Error", pl.Level)
	}
	if pl.OpID != "t-1" {
		t.Errorf("OpID = %q, want t-1", pl.OpID)
	}
	if pl.Desc != "boom" {
		t.Errorf("Desc = %q", pl.Desc)
	}
}

func TestJSONLinesFormatRejectsNonJSON(t *testing.T) {
	f := newJSONLinesFormat()
	if _, ok := f.ParseLine("2023-05-01T10:02:03 plain text line"); ok {
		t.Fatalf("expected non-JSON line to be rejected")
	}
}

func TestDetectPicksHighestScoringFormat(t *testing.T) {
	sample := []string{
		`{"ts":"2023-05-01T10:02:03Z","level":"info","msg":"starting"}`,
		`{"ts":"2023-05-01T10:02:04Z","level":"info","msg":"ready"}`,
	}
	best, ok := Detect(sample, AllBuiltins())
	if !ok {
		t.Fatalf("expected a format to be detected")
	}
	if best.Name() != "json-lines" {
		t.Errorf("Detect = %q, want json-lines", best.Name())
	}
}

func TestDetectFallsBackWhenNothingMatches(t *testing.T) {
	_, ok := Detect([]string{"   ", ""}, AllBuiltins())
	if ok {
		t.Fatalf("expected no format to be detected for an all-blank sample")
	}
}

func TestParserAdapterMarksUnparseableLinesAsContinued(t *testing.T) {
	p := NewParser(Builtins()[0])
	_, _, _, continued := p.Parse("not a log line")
	if !continued {
		t.Fatalf("expected unparseable line to be reported as continued")
	}
}

func TestParserAdapterReturnsOpidForMatchingLine(t *testing.T) {
	p := NewParser(Builtins()[0])
	_, lvl, opid, continued := p.Parse("2023-05-01T10:02:03 [op=xyz] started")
	if continued {
		t.Fatalf("expected a parsed line to not be continued")
	}
	if opid != "xyz" {
		t.Errorf("opid = %q, want xyz", opid)
	}
	if lvl.Base() != loglevel.Info {
		t.Errorf("level = %v, want Info default", lvl)
	}
}

func TestDetectParserReturnsChosenFormat(t *testing.T) {
	sample := []string{"Jan  2 15:04:05 myhost cron[99]: job started"}
	p, f := DetectParser(sample)
	if f.Name() != "syslog" {
		t.Errorf("DetectParser chose %q, want syslog", f.Name())
	}
	if p.Format != f {
		t.Errorf("Parser.Format does not match returned Format")
	}
}
