package logformat

import (
	"github.com/five82/chronoview/internal/logindex"
	"github.com/five82/chronoview/internal/timeline"
)

// FileOpidSource adapts one indexed LogFile into a timeline.OpidSource.
// LogFile.Line only caches the opid string (enough to merge a stream and
// compute time skew); SubID and Desc aren't worth storing per-line for
// every logical line, so OpidEvents re-parses the raw text of just the
// opid-tagged lines through the same Format that indexed the file.
type FileOpidSource struct {
	File   *logindex.LogFile
	Format Format
	// DescKey groups this source's descriptions among other files'
	// contributions to the same opid; see timeline.OpidEvent.DescKey.
	DescKey string
}

func NewFileOpidSource(file *logindex.LogFile, format Format) *FileOpidSource {
	key := ""
	if format != nil {
		key = format.Name()
	}
	return &FileOpidSource{File: file, Format: format, DescKey: key}
}

func (s *FileOpidSource) OpidEvents() []timeline.OpidEvent {
	if s.Format == nil {
		return nil
	}
	var events []timeline.OpidEvent
	for i, line := range s.File.Lines {
		if line.OpID == "" || line.Continued {
			continue
		}
		raw, err := s.File.ReadLineRaw(i)
		if err != nil {
			continue
		}
		pl, ok := s.Format.ParseLine(raw)
		if !ok {
			continue
		}
		events = append(events, timeline.OpidEvent{
			OpID:        line.OpID,
			SubID:       pl.SubID,
			Time:        line.Time,
			Level:       line.Level,
			Description: pl.Desc,
			DescKey:     s.DescKey,
		})
	}
	return events
}
