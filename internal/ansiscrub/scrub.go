package ansiscrub

import (
	"sort"
	"strconv"
	"strings"

	"github.com/five82/chronoview/internal/attrline"
)

const esc = 0x1b

// Style bitflags packed into a TypeStyle attribute's Int64 value.
const (
	StyleBold = 1 << iota
	StyleUnderline
	StyleReverse
	StyleStrike
)

type colorKind int

const (
	colorNone colorKind = iota
	colorAnsi
	color256
	colorTrue
)

// sgrState is the complete style described by a single `ESC [ ... m`
// sequence. Unlike a real terminal, later escapes do not merge with earlier
// ones: each sequence fully replaces whatever was active, matching
// scrub_ansi_string's single current-style-pair behavior.
type sgrState struct {
	fgKind, bgKind  colorKind
	fg, bg          int64
	bold, underline bool
	reverse, strike bool
}

func (s sgrState) isDefault() bool {
	return s.fgKind == colorNone && s.bgKind == colorNone &&
		!s.bold && !s.underline && !s.reverse && !s.strike
}

type openSpan struct {
	start int
	state sgrState
}

type openRole struct {
	start int
	role  attrline.Role
}

// Scrub removes CSI escape sequences from s and returns the visible text
// plus the style attributes those sequences described, in the coordinate
// system of the *output* (scrubbed) string.
func Scrub(s string) (string, attrline.Attrs) {
	var out strings.Builder
	var attrs attrline.Attrs
	var sgr *openSpan
	var role *openRole

	emitSpan := func(span *openSpan, endPos int, open bool) {
		rng := attrline.NewRange(span.start, endPos)
		if open {
			rng = attrline.NewRange(span.start, attrline.OpenEnd)
		}
		st := span.state
		if st.bold || st.underline || st.reverse || st.strike {
			var flags int64
			if st.bold {
				flags |= StyleBold
			}
			if st.underline {
				flags |= StyleUnderline
			}
			if st.reverse {
				flags |= StyleReverse
			}
			if st.strike {
				flags |= StyleStrike
			}
			attrs = append(attrs, attrline.Attr{Range: rng, Type: attrline.TypeStyle, Value: attrline.Int64Value(flags)})
		}
		if st.fgKind != colorNone {
			attrs = append(attrs, attrline.Attr{Range: rng, Type: attrline.TypeForeground, Value: attrline.Int64Value(encodeColor(st.fgKind, st.fg))})
		}
		if st.bgKind != colorNone {
			attrs = append(attrs, attrline.Attr{Range: rng, Type: attrline.TypeBackground, Value: attrline.Int64Value(encodeColor(st.bgKind, st.bg))})
		}
	}

	emitRole := func(r *openRole, endPos int, open bool) {
		rng := attrline.NewRange(r.start, endPos)
		if open {
			rng = attrline.NewRange(r.start, attrline.OpenEnd)
		}
		attrs = append(attrs, attrline.Attr{Range: rng, Type: attrline.TypeRole, Value: attrline.RoleValue(r.role)})
	}

	i := 0
	for i < len(s) {
		if s[i] == esc && i+1 < len(s) && s[i+1] == '[' {
			seqEnd, final, params, ok := parseCSI(s, i)
			if !ok {
				out.WriteByte(s[i])
				i++
				continue
			}
			writePos := out.Len()
			switch final {
			case 'O':
				n := 0
				if len(params) > 0 {
					n = params[0]
				}
				if role != nil {
					emitRole(role, writePos, false)
					role = nil
				}
				role = &openRole{start: writePos, role: attrline.Role(n)}
			case 'm':
				newState := parseSGR(params)
				if sgr != nil {
					emitSpan(sgr, writePos, false)
					sgr = nil
				}
				if isPlainReset(params) && role != nil {
					emitRole(role, writePos, false)
					role = nil
				}
				if !newState.isDefault() {
					sgr = &openSpan{start: writePos, state: newState}
				}
			default:
				// Unknown/cursor-movement CSI: consumed silently.
			}
			i = seqEnd
			continue
		}
		out.WriteByte(s[i])
		i++
	}

	if sgr != nil {
		emitSpan(sgr, out.Len(), true)
	}
	if role != nil {
		emitRole(role, out.Len(), true)
	}

	sortAttrs(attrs)
	return out.String(), attrs
}

func isPlainReset(params []int) bool {
	return len(params) == 0 || (len(params) == 1 && params[0] == 0)
}

// ErasedLen returns the number of bytes that would be removed by Scrub, for
// callers that only need the visible length of s.
func ErasedLen(s string) int {
	visible, _ := Scrub(s)
	return len(s) - len(visible)
}

func encodeColor(kind colorKind, v int64) int64 {
	switch kind {
	case color256:
		return 0x10000 | v
	case colorTrue:
		return 0x1000000 | v
	default:
		return v
	}
}

func parseSGR(params []int) sgrState {
	var st sgrState
	if len(params) == 0 {
		params = []int{0}
	}
	for idx := 0; idx < len(params); idx++ {
		p := params[idx]
		switch {
		case p == 0:
			// Starting state is already the zero value.
		case p == 1:
			st.bold = true
		case p == 4:
			st.underline = true
		case p == 7:
			st.reverse = true
		case p == 9:
			st.strike = true
		case p == 22:
			st.bold = false
		case p == 24:
			st.underline = false
		case p == 27:
			st.reverse = false
		case p == 29:
			st.strike = false
		case p >= 30 && p <= 37:
			st.fgKind = colorAnsi
			st.fg = int64(p - 30)
		case p >= 40 && p <= 47:
			st.bgKind = colorAnsi
			st.bg = int64(p - 40)
		case p == 38 || p == 48:
			isBg := p == 48
			if idx+1 < len(params) && params[idx+1] == 5 && idx+2 < len(params) {
				if isBg {
					st.bgKind = color256
					st.bg = int64(params[idx+2])
				} else {
					st.fgKind = color256
					st.fg = int64(params[idx+2])
				}
				idx += 2
			} else if idx+1 < len(params) && params[idx+1] == 2 && idx+4 < len(params) {
				r, g, b := params[idx+2], params[idx+3], params[idx+4]
				packed := int64((r << 16) | (g << 8) | b)
				if isBg {
					st.bgKind = colorTrue
					st.bg = packed
				} else {
					st.fgKind = colorTrue
					st.fg = packed
				}
				idx += 4
			}
		}
	}
	return st
}

// parseCSI parses one `ESC [ params final` sequence starting at i (where
// s[i] == ESC). It returns the index just past the sequence, the final
// byte, the parsed semicolon-delimited integer parameters, and whether
// parsing succeeded.
func parseCSI(s string, i int) (end int, final byte, params []int, ok bool) {
	j := i + 2 // skip ESC [
	start := j
	for j < len(s) {
		c := s[j]
		if c >= '0' && c <= '9' || c == ';' {
			j++
			continue
		}
		break
	}
	if j >= len(s) {
		return 0, 0, nil, false
	}
	final = s[j]
	paramStr := s[start:j]
	if paramStr != "" {
		for _, p := range strings.Split(paramStr, ";") {
			if p == "" {
				params = append(params, 0)
				continue
			}
			n, err := strconv.Atoi(p)
			if err != nil {
				return 0, 0, nil, false
			}
			params = append(params, n)
		}
	}
	return j + 1, final, params, true
}

// sortAttrs orders attrs by the same rule attrline.SortRanges applies to
// bare ranges, stably, without requiring a parallel slice of Range values.
func sortAttrs(attrs attrline.Attrs) {
	sort.SliceStable(attrs, func(i, j int) bool {
		return attrs[i].Range.Less(attrs[j].Range)
	})
}
