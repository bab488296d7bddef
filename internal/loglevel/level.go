// Package loglevel defines the log-level enum and its bit-flag side-set, the
// way lnav packs both into a single integer field on a logical line.
package loglevel

// Level is the base severity ordinal. The flag bits below live in the same
// integer space as Level but start at 0x10, past LevelInvalid, so a raw
// field value can carry both without a separate byte.
type Level int

const (
	Unknown Level = iota
	Trace
	Debug5
	Debug4
	Debug3
	Debug2
	Debug1
	Info
	Stats
	Notice
	Warning
	Error
	Critical
	Fatal
	Invalid

	maxLevel
)

// Flag bits, packed alongside a Level in the same field.
const (
	Ignore    Level = 0x10
	TimeSkew  Level = 0x20
	Mark      Level = 0x40
	Continued Level = 0x80

	flagMask = Ignore | TimeSkew | Mark | Continued
)

// Base strips the flag bits, returning the plain severity.
func (l Level) Base() Level { return l &^ flagMask }

// Flags returns just the flag bits.
func (l Level) Flags() Level { return l & flagMask }

// Has reports whether every bit in flag is set.
func (l Level) Has(flag Level) bool { return l&flag == flag }

// With returns l with flag set.
func (l Level) With(flag Level) Level { return l | flag }

// Without returns l with flag cleared.
func (l Level) Without(flag Level) Level { return l &^ flag }

// Valid reports whether the base level is one of the known severities.
func (l Level) Valid() bool {
	base := l.Base()
	return base >= Unknown && base < maxLevel
}

// AtLeast reports whether l's base severity meets or exceeds min, the
// comparison the log index uses for level-based filtering.
func (l Level) AtLeast(min Level) bool {
	return l.Base() >= min.Base()
}

func (l Level) String() string {
	switch l.Base() {
	case Unknown:
		return "unknown"
	case Trace:
		return "trace"
	case Debug5:
		return "debug5"
	case Debug4:
		return "debug4"
	case Debug3:
		return "debug3"
	case Debug2:
		return "debug2"
	case Debug1:
		return "debug"
	case Info:
		return "info"
	case Stats:
		return "stats"
	case Notice:
		return "notice"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Critical:
		return "critical"
	case Fatal:
		return "fatal"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Parse maps a case-sensitive level name (as found in a log line) back to
// its Level, or Unknown if the name isn't recognized.
func Parse(name string) Level {
	switch name {
	case "trace", "TRACE":
		return Trace
	case "debug5":
		return Debug5
	case "debug4":
		return Debug4
	case "debug3":
		return Debug3
	case "debug2":
		return Debug2
	case "debug", "DEBUG":
		return Debug1
	case "info", "INFO":
		return Info
	case "stats", "STATS":
		return Stats
	case "notice", "NOTICE":
		return Notice
	case "warning", "warn", "WARNING", "WARN":
		return Warning
	case "error", "ERROR", "err", "ERR":
		return Error
	case "critical", "CRITICAL", "crit", "CRIT":
		return Critical
	case "fatal", "FATAL":
		return Fatal
	default:
		return Unknown
	}
}
