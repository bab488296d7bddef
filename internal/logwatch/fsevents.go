package logwatch

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// fsWatcher wraps fsnotify to push create/write/rename notifications for
// the directories a Collection is watching, supplementing poll-driven
// Rescan so rotation is detected promptly instead of waiting for the next
// tick.
type fsWatcher struct {
	w       *fsnotify.Watcher
	Events  <-chan Event
	events  chan Event
	done    chan struct{}
}

// Event is a simplified, pattern-agnostic notification: something changed
// under a watched directory and a rescan is worth triggering.
type Event struct {
	Path string
	Op   Op
}

// Op mirrors the subset of fsnotify operations the rescan loop cares
// about.
type Op int

const (
	OpCreate Op = iota
	OpWrite
	OpRemove
	OpRename
)

// WatchDirs starts an fsnotify watch over the given directories and
// returns a handle whose Events channel emits a simplified Event per
// change. Callers typically trigger an immediate Rescan on receipt rather
// than acting on the event directly, since fsnotify doesn't see renames
// into/out of glob matches reliably on its own.
func WatchDirs(dirs []string) (*fsWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for _, d := range dirs {
		d = filepath.Clean(d)
		if seen[d] {
			continue
		}
		seen[d] = true
		if err := w.Add(d); err != nil {
			// Non-fatal: the directory may not exist yet. Poll-based
			// rescan still covers it.
			continue
		}
	}

	fw := &fsWatcher{w: w, events: make(chan Event, 64), done: make(chan struct{})}
	fw.Events = fw.events
	go fw.pump()
	return fw, nil
}

func (fw *fsWatcher) pump() {
	defer close(fw.events)
	for {
		select {
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			op := translateOp(ev.Op)
			select {
			case fw.events <- Event{Path: ev.Name, Op: op}:
			case <-fw.done:
				return
			}
		case _, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			// Errors are dropped here; this package has no logger of its
			// own, and poll-driven rescans still cover what the watch misses.
		case <-fw.done:
			return
		}
	}
}

func translateOp(op fsnotify.Op) Op {
	switch {
	case op&fsnotify.Create != 0:
		return OpCreate
	case op&fsnotify.Remove != 0:
		return OpRemove
	case op&fsnotify.Rename != 0:
		return OpRename
	default:
		return OpWrite
	}
}

// Close stops the watch.
func (fw *fsWatcher) Close() error {
	close(fw.done)
	return fw.w.Close()
}

// WatchPatternDirs installs (or replaces) the Collection's push-notification
// watch over the parent directories of its patterns.
func (c *Collection) WatchPatternDirs() (<-chan Event, error) {
	c.mu.Lock()
	dirs := make([]string, 0, len(c.patterns))
	for _, p := range c.patterns {
		dirs = append(dirs, filepath.Dir(p.Glob))
	}
	c.mu.Unlock()

	fw, err := WatchDirs(dirs)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.fsw != nil {
		old := c.fsw
		c.fsw = fw
		c.mu.Unlock()
		old.Close()
	} else {
		c.fsw = fw
		c.mu.Unlock()
	}
	return fw.Events, nil
}
