package history

import (
	"time"

	"github.com/five82/chronoview/internal/loglevel"
)

// Class names one of the prompt kinds that owns a separate history, per
// spec.md 4.9.
type Class int

const (
	Command Class = iota
	SQL
	Search
	Script
)

func (c Class) String() string {
	switch c {
	case Command:
		return "command"
	case SQL:
		return "sql"
	case Search:
		return "search"
	case Script:
		return "script"
	default:
		return "unknown"
	}
}

// Entry is one persisted history record, mirroring textinput.history.hh's
// entry struct.
type Entry struct {
	SessionID string     `json:"session_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Content   string     `json:"content"`
	Status    loglevel.Level
}

// Guard is the scoped handle returned when an entry begins; calling End
// records the end time and a status inferred from whether Fail was called
// during its lifetime, mirroring textinput.history.hh's op_guard
// destructor.
type Guard struct {
	store     *Store
	sessionID string
	content   string
	startTime time.Time
	status    loglevel.Level
	ended     bool
}

// Fail marks the operation this guard covers as having failed; End will
// record Status as loglevel.Error instead of loglevel.Info.
func (g *Guard) Fail() {
	g.status = loglevel.Error
}

// End records the end time and inferred status, and appends the completed
// entry to the owning Store. Calling End more than once is a no-op.
func (g *Guard) End() {
	if g.ended {
		return
	}
	g.ended = true
	end := time.Now()
	g.store.append(Entry{
		SessionID: g.sessionID,
		StartTime: g.startTime,
		EndTime:   &end,
		Content:   g.content,
		Status:    g.status,
	})
}
