package logwatch

// Pattern is one requested watch pattern, with its per-pattern open
// options. It corresponds to an entry in lnav's file_collection::fc_file_names.
type Pattern struct {
	Glob      string
	Recursive bool
	Rotated   bool // enables the "name.*" rotated-sibling glob
}

// Source identifies where a discovered file came from, carried on Found so
// callers (and name_to_errors reporting) can tell an archive member from a
// directly-requested path.
type Source int

const (
	SourceDirect Source = iota
	SourceArchive
	SourceRemote
)

func (s Source) String() string {
	switch s {
	case SourceArchive:
		return "archive"
	case SourceRemote:
		return "remote"
	default:
		return "direct"
	}
}

// Format is the file-format probe result used to route a newly discovered
// path to the right open strategy.
type Format int

const (
	FormatOrdinary Format = iota
	FormatSQLiteDB
	FormatArchive
	FormatRemote
	FormatFIFO
)
