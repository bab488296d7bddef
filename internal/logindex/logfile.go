package logindex

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/five82/chronoview/internal/loglevel"
	"github.com/five82/chronoview/internal/logwatch"
)

// Line is one logical line of a LogFile: a byte offset into the file, the
// parsed level (with flag bits), the opid string, a continuation flag, and the
// timestamp this line carries (possibly adjusted by the file's time
// offset).
type Line struct {
	Offset    int64
	Time      time.Time
	Level     loglevel.Level
	OpID      string
	Continued bool
}

// LineParser extracts a timestamp/level/opid from one raw line of text.
// The format-detection engine (internal/logformat) supplies the concrete
// implementation; LogFile only needs the interface.
type LineParser interface {
	Parse(raw string) (t time.Time, lvl loglevel.Level, opid string, continued bool)
}

// TimeOffset is a file-local, signed clock adjustment applied when
// producing timestamps for the merged stream, per spec.md 4.4 "Time
// offsets".
type TimeOffset struct {
	Sec  int64
	Usec int64
}

func (o TimeOffset) Apply(t time.Time) time.Time {
	return t.Add(time.Duration(o.Sec)*time.Second + time.Duration(o.Usec)*time.Microsecond)
}

// BookmarkMeta is the user-editable annotation attached to one logical
// line: comment text, tags, opid override, and the partition name that
// begins here (if any).
type BookmarkMeta struct {
	Name    string
	Comment string
	Tags    []string
	OpID    string
}

// Empty reports whether every field is unset, the condition under which
// lnav erases a BM_META entry outright.
func (m BookmarkMeta) Empty() bool {
	return m.Name == "" && m.Comment == "" && len(m.Tags) == 0 && m.OpID == ""
}

// LogFile is one indexed, watched file: logical line vector, per-file time
// offset, and per-line bookmark metadata.
type LogFile struct {
	Path      string
	Parser    LineParser
	Offset    TimeOffset
	Lines     []Line
	Meta      map[int]*BookmarkMeta // logical line index -> metadata
	indexedTo int64                 // byte offset consumed so far
	Hidden    bool
}

// NewLogFile constructs an unindexed LogFile for path.
func NewLogFile(path string, parser LineParser) *LogFile {
	return &LogFile{Path: path, Parser: parser, Meta: make(map[int]*BookmarkMeta)}
}

// openAtOffset opens path positioned at byte offset in its *decompressed*
// content. Ordinary files seek directly; a path ending .gz/.zst is opened
// through logwatch.OpenDecompressed and the prefix is discarded by reading,
// since a compressed stream has no random access of its own.
func openAtOffset(path string, offset int64) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !logwatch.IsCompressed(path) {
		if offset != 0 {
			if _, err := f.Seek(offset, 0); err != nil {
				f.Close()
				return nil, err
			}
		}
		return f, nil
	}

	rc, err := logwatch.OpenDecompressed(path, f)
	if err != nil {
		return nil, err
	}
	if offset != 0 {
		if _, err := io.CopyN(io.Discard, rc, offset); err != nil {
			rc.Close()
			return nil, fmt.Errorf("logindex: skip to offset %d in %s: %w", offset, path, err)
		}
	}
	return rc, nil
}

// IndexMore consumes bytes since the previous call, appending newly
// discovered logical lines, honoring a deadline the way
// `logfile.index_more(deadline)` does: if the deadline is reached mid-scan
// the call returns having made partial progress, and a later call resumes
// from indexedTo.
func (lf *LogFile) IndexMore(deadline time.Time) (grew bool, err error) {
	f, err := openAtOffset(lf.Path, lf.indexedTo)
	if err != nil {
		return false, fmt.Errorf("logindex: open %s: %w", lf.Path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	offset := lf.indexedTo
	for scanner.Scan() {
		raw := scanner.Text()
		lineLen := int64(len(raw)) + 1 // assume trailing "\n"; CRLF tolerated by the parser

		t, lvl, opid, continued := lf.Parser.Parse(raw)
		if t.IsZero() && len(lf.Lines) > 0 {
			// Lines without a recognizable timestamp continue the
			// previous entry's time, marked continued.
			prev := lf.Lines[len(lf.Lines)-1]
			t = prev.Time
			continued = true
		}
		adjusted := lf.Offset.Apply(t)
		if len(lf.Lines) > 0 && adjusted.Before(lf.Lines[len(lf.Lines)-1].Time) && !continued {
			lvl = lvl.With(loglevel.TimeSkew)
		}
		lf.Lines = append(lf.Lines, Line{
			Offset:    offset,
			Time:      adjusted,
			Level:     lvl,
			OpID:      opid,
			Continued: continued,
		})
		offset += lineLen
		grew = true

		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return grew, fmt.Errorf("logindex: scan %s: %w", lf.Path, err)
	}
	lf.indexedTo = offset
	return grew, nil
}

// ReadLineRaw reads the raw bytes of logical line idx directly from disk.
func (lf *LogFile) ReadLineRaw(idx int) (string, error) {
	if idx < 0 || idx >= len(lf.Lines) {
		return "", fmt.Errorf("logindex: line index %d out of range", idx)
	}
	f, err := openAtOffset(lf.Path, lf.Lines[idx].Offset)
	if err != nil {
		return "", err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	return "", scanner.Err()
}

// ReadFullMessage joins idx with every following continued line into one
// logical message.
func (lf *LogFile) ReadFullMessage(idx int) (string, error) {
	first, err := lf.ReadLineRaw(idx)
	if err != nil {
		return "", err
	}
	out := first
	for i := idx + 1; i < len(lf.Lines) && lf.Lines[i].Continued; i++ {
		more, err := lf.ReadLineRaw(i)
		if err != nil {
			return out, err
		}
		out += "\n" + more
	}
	return out, nil
}

// SetMeta replaces (or, if meta is empty, clears) the bookmark metadata on
// logical line idx.
func (lf *LogFile) SetMeta(idx int, meta BookmarkMeta) {
	if meta.Empty() {
		delete(lf.Meta, idx)
		return
	}
	lf.Meta[idx] = &meta
}
