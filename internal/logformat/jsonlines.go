package logformat

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/five82/chronoview/internal/loglevel"
)

// jsonTimeLayouts is the fallback chain for a JSON log record's "time"
// field: RFC3339Nano, then RFC3339, then a bare local-time layout.
var jsonTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999",
}

// jsonlinesFormat parses one JSON object per line, the way a structured
// application logger (zap, zerolog, slog's JSON handler) emits records.
// Field names are tried in a short list of common aliases rather than
// fixed at one convention, since every JSON logger names them differently.
type jsonlinesFormat struct{}

func newJSONLinesFormat() *jsonlinesFormat { return &jsonlinesFormat{} }

func (f *jsonlinesFormat) Name() string { return "json-lines" }

var (
	timeKeys  = []string{"time", "ts", "timestamp", "@timestamp"}
	levelKeys = []string{"level", "lvl", "severity"}
	opidKeys  = []string{"opid", "op_id", "request_id", "trace_id"}
	subidKeys = []string{"subid", "sub_id", "span_id"}
	msgKeys   = []string{"msg", "message", "text"}
)

func firstString(rec map[string]any, keys []string) string {
	for _, k := range keys {
		if v, ok := rec[k]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func (f *jsonlinesFormat) decode(raw string) (map[string]any, bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return nil, false
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(trimmed), &rec); err != nil {
		return nil, false
	}
	return rec, true
}

func (f *jsonlinesFormat) ParseLine(raw string) (ParsedLine, bool) {
	rec, ok := f.decode(raw)
	if !ok {
		return ParsedLine{}, false
	}
	rawTime := firstString(rec, timeKeys)
	if rawTime == "" {
		return ParsedLine{}, false
	}
	t, ok := parseTimestamp(rawTime, jsonTimeLayouts)
	if !ok {
		return ParsedLine{}, false
	}
	return ParsedLine{
		Time:  t,
		Level: loglevel.Parse(firstString(rec, levelKeys)),
		OpID:  firstString(rec, opidKeys),
		SubID: firstString(rec, subidKeys),
		Desc:  firstString(rec, msgKeys),
	}, true
}

func (f *jsonlinesFormat) Score(sample []string) float64 {
	total, matched := 0, 0
	for _, line := range sample {
		if strings.TrimSpace(line) == "" {
			continue
		}
		total++
		if _, ok := f.ParseLine(line); ok {
			matched++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total)
}
