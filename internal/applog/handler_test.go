package applog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestHandlerWritesLevelAndMessage(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &HandlerOptions{NoColor: true, Level: slog.LevelInfo})
	logger := slog.New(h)
	logger.Info("watcher rescanned", "files", 3)

	out := buf.String()
	if !strings.Contains(out, "INF") {
		t.Errorf("output missing level abbreviation: %q", out)
	}
	if !strings.Contains(out, "watcher rescanned") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "files=3") {
		t.Errorf("output missing attr: %q", out)
	}
}

func TestHandlerRespectsLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &HandlerOptions{NoColor: true, Level: slog.LevelWarn})
	logger := slog.New(h)
	logger.Info("should be dropped")
	logger.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Errorf("expected info record to be filtered, got %q", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("expected warn record to appear, got %q", out)
	}
}

func TestHandlerWithGroupPrefixesAttrKeys(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &HandlerOptions{NoColor: true})
	logger := slog.New(h).WithGroup("watch").With("path", "/var/log/a.log")
	logger.Info("opened")

	out := buf.String()
	if !strings.Contains(out, "watch.path=/var/log/a.log") {
		t.Errorf("expected grouped attr key, got %q", out)
	}
}

func TestHandlerQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &HandlerOptions{NoColor: true})
	slog.New(h).Info("msg", "detail", "two words")

	if !strings.Contains(buf.String(), `detail="two words"`) {
		t.Errorf("expected quoted attr value, got %q", buf.String())
	}
}

func TestNewJSONProducesJSONRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSON(&buf, slog.LevelInfo)
	logger.Info("hello")
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("expected JSON record, got %q", buf.String())
	}
}
