package logformat

import (
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/five82/chronoview/internal/loglevel"
)

// regexFormat is a Format driven by one regexp2 pattern with named groups
// "time", "level", "opid", "subid", "body". Only "time" is required; the
// others default to zero values when the group is absent or didn't
// participate in the match. Timestamps are parsed against Layouts in
// order, falling back to the next layout on a parse failure.
type regexFormat struct {
	name    string
	re      *regexp2.Regexp
	Layouts []string
}

func newRegexFormat(name, pattern string, layouts []string) *regexFormat {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		// Built-in patterns are constants; a compile failure here is a
		// programmer error, not a runtime condition callers can recover
		// from.
		panic("logformat: bad builtin pattern for " + name + ": " + err.Error())
	}
	return &regexFormat{name: name, re: re, Layouts: layouts}
}

func (f *regexFormat) Name() string { return f.name }

func (f *regexFormat) groupString(m *regexp2.Match, name string) string {
	g := m.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}

func (f *regexFormat) ParseLine(raw string) (ParsedLine, bool) {
	m, err := f.re.FindStringMatch(raw)
	if err != nil || m == nil {
		return ParsedLine{}, false
	}
	rawTime := f.groupString(m, "time")
	if rawTime == "" {
		return ParsedLine{}, false
	}
	t, ok := parseTimestamp(rawTime, f.Layouts)
	if !ok {
		return ParsedLine{}, false
	}
	return ParsedLine{
		Time:  t,
		Level: loglevel.Parse(f.groupString(m, "level")),
		OpID:  f.groupString(m, "opid"),
		SubID: f.groupString(m, "subid"),
		Desc:  strings.TrimSpace(f.groupString(m, "body")),
	}, true
}

func (f *regexFormat) Score(sample []string) float64 {
	total, matched := 0, 0
	for _, line := range sample {
		if strings.TrimSpace(line) == "" {
			continue
		}
		total++
		if m, err := f.re.FindStringMatch(line); err == nil && m != nil && f.groupString(m, "time") != "" {
			matched++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total)
}

// parseTimestamp tries each layout in turn, returning the first one that
// parses value successfully.
func parseTimestamp(value string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

const (
	syslogLayout  = "Jan _2 15:04:05"
	genericLayout = "2006-01-02T15:04:05.999999"
	generic2      = "2006-01-02 15:04:05.999999"
	logfmtLayout  = time.RFC3339Nano
)

// Builtins returns the format engine's built-in format set, in the order
// auto-detection prefers on a tie. The generic format comes first, so it
// also serves as DetectParser's fallback.
func Builtins() []Format {
	return []Format{
		// Generic ISO-8601-prefixed format: "2023-05-01T10:02:03.123456
		// [op=abc123.4] message...". Covers most structured application logs
		// that don't match a more specific format.
		newRegexFormat(
			"generic",
			`^(?<time>\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(?:\.\d+)?)\s+`+
				`(?:\[(?<level>\w+)\]\s*)?`+
				`(?:\[op=(?<opid>[\w.-]+?)(?:\.(?<subid>[\w-]+))?\]\s*)?`+
				`(?<body>.*)$`,
			[]string{genericLayout, generic2, time.RFC3339Nano, time.RFC3339},
		),
		// logfmt: "time=2023-05-01T10:02:03Z level=info opid=abc123 msg=..."
		newRegexFormat(
			"logfmt",
			`^time=(?<time>\S+)\s+level=(?<level>\S+)\s+`+
				`(?:opid=(?<opid>\S+)\s+)?(?:msg="?(?<body>.*?)"?)?$`,
			[]string{logfmtLayout, time.RFC3339},
		),
		// syslog: "Jan  2 15:04:05 host program[pid]: message"
		newRegexFormat(
			"syslog",
			`^(?<time>\w{3}\s+\d{1,2}\s+\d{2}:\d{2}:\d{2})\s+\S+\s+`+
				`(?<opid>[\w.\-\/]+)(?:\[\d+\])?:\s*(?<body>.*)$`,
			[]string{syslogLayout},
		),
	}
}

// jsonlinesFormat is the one built-in that isn't expressible as a single
// regex: each line must parse as a JSON object before fields can be pulled
// out. Kept separate from Builtins() above for callers that specifically
// want to offer JSON Lines as an option; ordinary auto-detection runs it
// alongside the regex formats via AllBuiltins.
func AllBuiltins() []Format {
	return append(Builtins(), newJSONLinesFormat())
}
