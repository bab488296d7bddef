package attrline

import (
	"fmt"
	"strings"
)

// hexRowWidth is the number of source bytes rendered per hex-dump row.
const hexRowWidth = 16

// AppendHexdump appends a classic 16-bytes-per-row hex dump of data,
// attaching Role attributes to the hex digits and their ASCII echo so the
// renderer can color NUL, control, and non-ASCII bytes distinctly.
//
// Row shape: " HH HH HH HH HH HH HH HH  HH HH HH HH HH HH HH HH  PPPPPPPPPPPPPPPP"
func (st *StyledText) AppendHexdump(data []byte) *StyledText {
	for row := 0; row < len(data); row += hexRowWidth {
		end := row + hexRowWidth
		if end > len(data) {
			end = len(data)
		}
		st.appendHexRow(data[row:end])
		if end < len(data) {
			st.Append("\n")
		}
	}
	return st
}

func (st *StyledText) appendHexRow(chunk []byte) {
	st.Append(" ")
	for i := 0; i < hexRowWidth; i++ {
		if i == 8 {
			st.Append(" ")
		}
		if i < len(chunk) {
			b := chunk[i]
			st.AppendAttr(fmt.Sprintf("%02x ", b), TypeRole, RoleValue(hexByteRole(b)))
		} else {
			st.Append("   ")
		}
	}
	st.Append(" ")
	var ascii strings.Builder
	for _, b := range chunk {
		start := st.Len()
		glyph := asciiEcho(b)
		ascii.WriteString(glyph)
		st.text.WriteString(glyph)
		st.dirty = true
		st.attrs = append(st.attrs, Attr{
			Range: NewRange(start, st.Len()),
			Type:  TypeRole,
			Value: RoleValue(hexByteRole(b)),
		})
	}
}

func hexByteRole(b byte) Role {
	switch {
	case b == 0:
		return RoleNull
	case b < 0x20 || b == 0x7f:
		return RoleASCIICtrl
	case b >= 0x80:
		return RoleNonASCII
	default:
		return RoleText
	}
}

// asciiEcho returns the single-glyph ASCII echo for a hex-dump byte: NUL
// becomes a diamond, space becomes an underscore, other control bytes
// become a bullet, non-ASCII becomes a cross, and printable ASCII echoes
// itself.
func asciiEcho(b byte) string {
	switch {
	case b == 0:
		return "⋄" // ⋄
	case b == ' ':
		return "_"
	case b < 0x20 || b == 0x7f:
		return "•" // •
	case b >= 0x80:
		return "×" // ×
	default:
		return string(rune(b))
	}
}
