package attrline

import (
	"encoding/hex"
	"strings"
)

// DecodeHexRow parses one hex-dump row (as produced by AppendHexdump)
// back into its source bytes, reading only the hex-digit columns so the
// ASCII echo column (lossy for control/non-ASCII bytes) never has to
// round-trip.
func DecodeHexRow(row string) ([]byte, error) {
	// The hex area is the leading space, sixteen "HH " cells, the mid-row
	// gap and the separator space; the ASCII echo follows it.
	if hexArea := 3 + hexRowWidth*3; len(row) > hexArea {
		row = row[:hexArea]
	}
	trimmed := strings.TrimPrefix(row, " ")
	fields := strings.Fields(trimmed)

	var hexFields []string
	for _, f := range fields {
		if len(f) == 2 && isHexPair(f) {
			hexFields = append(hexFields, f)
			continue
		}
		break
	}

	out := make([]byte, 0, len(hexFields))
	for _, f := range hexFields {
		b, err := hex.DecodeString(f)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

func isHexPair(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
