package ui

import (
	"strings"
	"testing"
)

func TestDiscoverStructureJSON(t *testing.T) {
	raw := `{"level":"error","fields":{"user":"alice","code":42}}`
	text, meta, ok := discoverStructure(raw)
	if !ok {
		t.Fatalf("expected JSON body to be discoverable")
	}
	if text == raw {
		t.Fatalf("expected JSON body to be re-indented")
	}

	lines := strings.Split(text, "\n")
	starts := lineStartsOf(text)
	offset := 0
	for i, line := range lines {
		if strings.Contains(line, `"user"`) {
			offset = starts[i]
			break
		}
	}
	path := meta.PathForRange(offset, offset)
	if len(path) != 2 || path[0].Name() != "fields" || path[1].Name() != "user" {
		t.Fatalf("expected path [fields user], got %v", path)
	}
}

func TestDiscoverStructureCodeFallback(t *testing.T) {
	raw := "func handle() {\n  doThing()\n}"
	text, meta, ok := discoverStructure(raw)
	if !ok {
		t.Fatalf("expected brace body to be discoverable")
	}
	if text != raw {
		t.Fatalf("code fallback should leave text unchanged")
	}
	if meta == nil {
		t.Fatalf("expected metadata from DiscoverCode")
	}
}

func TestDiscoverStructurePlainTextNotDiscoverable(t *testing.T) {
	_, _, ok := discoverStructure("2026-07-31 12:00:00 INFO plain message, no structure here")
	if ok {
		t.Fatalf("expected plain text to have no discoverable structure")
	}
}

func TestLineStartsOf(t *testing.T) {
	text := "a\nbb\nccc"
	starts := lineStartsOf(text)
	want := []int{0, 2, 5}
	if len(starts) != len(want) {
		t.Fatalf("expected %d line starts, got %v", len(want), starts)
	}
	for i, w := range want {
		if starts[i] != w {
			t.Fatalf("line start %d: expected %d, got %d", i, w, starts[i])
		}
	}
}

