package logwatch

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// File is an open file handle tracked by the Collection, analogous to
// lnav's logfile.
type File struct {
	Path     string
	Identity Identity
	Format   Format
	Source   Source
	Size     int64
}

// Rename records that a previously open file is now reachable under a
// different name.
type Rename struct {
	OldPath string
	NewPath string
}

// Delta is the result of one Rescan pass: files newly added to the open
// set, renames detected among already-open files, and any newly discovered
// names (e.g. archive members) that still need to be scheduled.
type Delta struct {
	Added       []*File
	Renamed     []Rename
	NewPatterns []string
}

// Collection is the file-watcher state machine described in spec.md 4.3:
// file_names, files, closed_files, other_files and name_to_errors.
type Collection struct {
	mu sync.Mutex

	patterns     []Pattern
	files        []*File
	byIdentity   map[Identity]*File
	closed       map[string]bool
	other        map[string]Format
	nameErrors   map[string]string
	scanProgress Progress

	maxOpenPerPass int
	stagingDir     string
	remote         RemoteTailer

	fsw *fsWatcher
}

// Progress is the writer-protected scan_progress object the UI samples.
type Progress struct {
	mu       sync.Mutex
	Total    int
	Done     int
	Current  string
}

func (p *Progress) snapshot() Progress {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Progress{Total: p.Total, Done: p.Done, Current: p.Current}
}

func (p *Progress) set(total, done int, current string) {
	p.mu.Lock()
	p.Total, p.Done, p.Current = total, done, current
	p.mu.Unlock()
}

// Snapshot returns a copy of the collection's current scan progress,
// safe to call from the UI goroutine while a rescan is in flight.
func (c *Collection) Snapshot() Progress {
	return c.scanProgress.snapshot()
}

// Option configures a new Collection.
type Option func(*Collection)

// WithMaxOpenPerPass bounds how many files are opened in a single Rescan
// (default 100), matching spec.md 4.3's per-tick work cap.
func WithMaxOpenPerPass(n int) Option {
	return func(c *Collection) { c.maxOpenPerPass = n }
}

// WithStagingDir sets the directory used for FIFO splices and archive
// extraction. Defaults to os.TempDir().
func WithStagingDir(dir string) Option {
	return func(c *Collection) { c.stagingDir = dir }
}

// WithRemoteTailer installs a RemoteTailer for URL-shaped patterns.
func WithRemoteTailer(rt RemoteTailer) Option {
	return func(c *Collection) { c.remote = rt }
}

// New builds an empty Collection watching the given patterns.
func New(patterns []Pattern, opts ...Option) *Collection {
	c := &Collection{
		patterns:       patterns,
		byIdentity:     make(map[Identity]*File),
		closed:         make(map[string]bool),
		other:          make(map[string]Format),
		nameErrors:     make(map[string]string),
		maxOpenPerPass: 100,
		stagingDir:     os.TempDir(),
		remote:         noRemoteTailer{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Close tears down any push-notification watch; Rescan remains usable
// afterward (poll-only).
func (c *Collection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fsw != nil {
		return c.fsw.Close()
	}
	return nil
}

// CloseFile marks path as user-closed: it will not be reopened by future
// rescans until explicitly re-added.
func (c *Collection) CloseFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed[path] = true
}

// Errors returns a snapshot of the per-path error map (name_to_errors).
func (c *Collection) Errors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.nameErrors))
	for k, v := range c.nameErrors {
		out[k] = v
	}
	return out
}

// Files returns a snapshot of the currently open files, insertion-ordered.
func (c *Collection) Files() []*File {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*File, len(c.files))
	copy(out, c.files)
	return out
}

// AddPattern re-adds a pattern (e.g. after the user re-opens a closed
// file), clearing it from the closed set if present.
func (c *Collection) AddPattern(p Pattern) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.patterns = append(c.patterns, p)
	delete(c.closed, p.Glob)
}

// Rescan performs one pass of spec.md 4.3's rescan algorithm: glob
// expansion, stat, dedupe, format probing, and delta computation. No
// per-file failure aborts the pass; all such failures land in
// name_to_errors instead.
func (c *Collection) Rescan(ctx context.Context) (Delta, error) {
	c.mu.Lock()
	patterns := append([]Pattern(nil), c.patterns...)
	c.mu.Unlock()

	var delta Delta
	newStats := make(map[Identity]bool)
	var candidates []string

	for _, pat := range patterns {
		if isURLPattern(pat.Glob) {
			path, err := c.remote.ScheduleTail(ctx, pat.Glob)
			if err != nil {
				c.recordError(pat.Glob, err)
				continue
			}
			candidates = append(candidates, path)
			continue
		}
		paths, err := expandGlob(pat.Glob)
		if err != nil {
			c.recordError(pat.Glob, err)
			continue
		}
		candidates = append(candidates, paths...)
		if pat.Rotated {
			rotated, _ := expandGlob(rotatedSiblingGlob(pat.Glob))
			candidates = append(candidates, rotated...)
		}
	}

	c.scanProgress.set(len(candidates), 0, "")
	opened := 0
	for idx, path := range candidates {
		c.scanProgress.set(len(candidates), idx, path)
		if c.isClosed(path) {
			continue
		}
		if opened >= c.maxOpenPerPass {
			delta.NewPatterns = append(delta.NewPatterns, path)
			continue
		}

		fi, err := os.Lstat(path)
		if err != nil {
			c.recordError(path, err)
			continue
		}

		if fi.IsDir() {
			delta.NewPatterns = append(delta.NewPatterns, filepath.Join(path, "*"))
			continue
		}
		if isFIFO(fi) {
			staged, err := spliceFIFO(path, c.stagingDir)
			if err != nil {
				c.recordError(path, err)
				continue
			}
			path = staged
			fi, err = os.Stat(path)
			if err != nil {
				c.recordError(path, err)
				continue
			}
		}

		id := identityOf(fi)
		if newStats[id] {
			continue // duplicate within this pass
		}
		newStats[id] = true

		if existing, ok := c.byIdentity[id]; ok {
			if existing.Path != path {
				delta.Renamed = append(delta.Renamed, Rename{OldPath: existing.Path, NewPath: path})
				existing.Path = path
			}
			continue
		}

		format, err := probeFormat(path)
		if err != nil {
			c.recordError(path, err)
			continue
		}

		if format == FormatArchive {
			members, err := walkArchive(path, c.stagingDir)
			if err != nil {
				c.recordError(path, err)
				continue
			}
			for _, m := range members {
				if m.Size == 0 {
					continue
				}
				delta.NewPatterns = append(delta.NewPatterns, m.Path)
			}
			continue
		}

		f := &File{Path: path, Identity: id, Format: format, Source: SourceDirect, Size: fi.Size()}
		c.byIdentity[id] = f
		c.files = append(c.files, f)
		delta.Added = append(delta.Added, f)
		opened++
	}

	c.scanProgress.set(len(candidates), len(candidates), "")
	sort.Slice(delta.Added, func(i, j int) bool { return delta.Added[i].Path < delta.Added[j].Path })
	return delta, nil
}

func (c *Collection) isClosed(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed[path]
}

func (c *Collection) recordError(path string, err error) {
	c.mu.Lock()
	c.nameErrors[path] = err.Error()
	c.mu.Unlock()
}

func isURLPattern(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https" || u.Scheme == "ssh")
}

func probeFormat(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatOrdinary, err
	}
	defer f.Close()

	var magic [16]byte
	n, _ := f.Read(magic[:])
	head := magic[:n]

	switch {
	case strings.HasPrefix(string(head), "SQLite format 3\x00"):
		return FormatSQLiteDB, nil
	case strings.HasSuffix(path, ".zip") || strings.HasSuffix(path, ".tar.gz") || strings.HasSuffix(path, ".tgz"):
		return FormatArchive, nil
	case len(head) >= 4 && head[0] == 0x1f && head[1] == 0x8b:
		return FormatOrdinary, nil // gzip-compressed ordinary log, see decompress.go
	default:
		return FormatOrdinary, nil
	}
}
