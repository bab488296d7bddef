package highlight

import (
	"github.com/five82/chronoview/internal/ansiscrub"
	"github.com/five82/chronoview/internal/attrline"
)

// RegexHighlight annotates a regex pattern string the way the prompt's
// syntax highlighter does: metacharacters as special, repetition modifiers
// on their preceding element, `\w \d \s \b \A \Z ...` as symbol, `\xNN`/
// `\0NN` as a numeric escape, a stray backslash-space or unknown escape as
// error, and the bracket matching the one at cursor (if any) painted bold+
// reverse with unbalanced brackets flagged as error. cursor is the byte
// offset of the insertion point, or -1 if there is none.
func RegexHighlight(text string, cursor int) attrline.Attrs {
	var attrs attrline.Attrs
	backslashQuoted := false

	role := func(start, end int, r attrline.Role) {
		attrs = append(attrs, attrline.Attr{Range: attrline.NewRange(start, end), Type: attrline.TypeRole, Value: attrline.RoleValue(r)})
	}
	errorRange := func(start, end int) {
		attrs = append(attrs,
			attrline.Attr{Range: attrline.NewRange(start, end), Type: attrline.TypeStyle, Value: attrline.Int64Value(ansiscrub.StyleBold | ansiscrub.StyleReverse)},
			attrline.Attr{Range: attrline.NewRange(start, end), Type: attrline.TypeRole, Value: attrline.RoleValue(attrline.RoleError)},
		)
	}

	for lpc := 0; lpc < len(text); lpc++ {
		if lpc == 0 || text[lpc-1] != '\\' {
			switch text[lpc] {
			case '^', '$', '*', '+', '|', '.':
				role(lpc, lpc+1, attrline.RoleRegexSpecial)
				if (text[lpc] == '*' || text[lpc] == '+') && checkRePrev(text, lpc) {
					role(lpc-1, lpc, attrline.RoleRegexRepeat)
				}
			case '?':
				switch {
				case lpc == 0:
					errorRange(lpc, lpc+1)
				case text[lpc-1] == '(':
					end := lpc + 1
					switch safeByte(text, lpc+1) {
					case ':', '!', '#':
						end++
					}
					role(lpc, end, attrline.RoleOK)
					if safeByte(text, lpc+1) == '<' {
						role(lpc+1, lpc+2, attrline.RoleRegexSpecial)
					}
				default:
					role(lpc, lpc+1, attrline.RoleRegexSpecial)
					if checkRePrev(text, lpc) {
						role(lpc-1, lpc, attrline.RoleRegexRepeat)
					}
				}
			case '(', ')', '{', '}', '[', ']':
				role(lpc, lpc+1, attrline.RoleOK)
			}
		}
		if lpc > 0 && text[lpc-1] == '\\' {
			if backslashQuoted {
				backslashQuoted = false
				continue
			}
			switch text[lpc] {
			case '\\':
				backslashQuoted = true
				role(lpc-1, lpc+1, attrline.RoleRegexSpecial)
			case 'd', 'D', 'h', 'H', 'N', 'R', 's', 'S', 'v', 'V', 'w', 'W', 'X',
				'A', 'b', 'B', 'G', 'Z', 'z':
				role(lpc-1, lpc+1, attrline.RoleSymbol)
			case ' ':
				errorRange(lpc-1, lpc+1)
			case '0', 'x':
				switch {
				case safeByte(text, lpc+1) == '{':
					role(lpc-1, lpc+1, attrline.RoleRegexSpecial)
				case isDigit(safeByte(text, lpc+1)) && isDigit(safeByte(text, lpc+2)):
					role(lpc-1, lpc+3, attrline.RoleRegexSpecial)
				default:
					errorRange(lpc-1, lpc+1)
				}
			case 'Q', 'E':
				role(lpc-1, lpc+1, attrline.RoleOK)
			default:
				if isDigit(text[lpc]) {
					role(lpc-1, lpc+1, attrline.RoleRegexSpecial)
				}
			}
		}
	}

	for _, pair := range [][2]byte{{'[', ']'}, {'{', '}'}, {'(', ')'}, {'Q', 'E'}} {
		attrs = append(attrs, findMatchingBracket(text, cursor, pair[0], pair[1])...)
	}
	return attrs
}

// checkRePrev reports whether the element preceding position x (a `*`, `+`,
// or `?`) is itself eligible to carry a "repeat" highlight: it must exist,
// not already be a repetition/group-closer, and not be an escaped literal.
func checkRePrev(line string, x int) bool {
	if x <= 0 {
		return false
	}
	switch line[x-1] {
	case ')', ']', '*', '?', '+':
		return false
	}
	if x >= 2 && line[x-2] == '\\' {
		return false
	}
	return true
}

func safeByte(s string, i int) byte {
	if i >= 0 && i < len(s) {
		return s[i]
	}
	return 0
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// findMatchingBracket locates the left/right pair straddling cursor (if
// any) and paints its counterpart bold+reverse/VCR_OK, then scans the
// whole text for unbalanced brackets of this kind and flags each one
// error. left=='Q' selects the `\Q...\E` literal-quote pair, where a
// bracket only counts when preceded by a backslash rather than NOT
// preceded by one.
func findMatchingBracket(text string, cursor int, left, right byte) attrline.Attrs {
	var attrs attrline.Attrs
	isLit := left == 'Q'
	isBracket := func(idx int) bool {
		if idx == 0 {
			return true
		}
		if isLit {
			return text[idx-1] == '\\'
		}
		return text[idx-1] != '\\'
	}
	mark := func(pos int, r attrline.Role) {
		attrs = append(attrs,
			attrline.Attr{Range: attrline.NewRange(pos, pos+1), Type: attrline.TypeStyle, Value: attrline.Int64Value(ansiscrub.StyleBold | ansiscrub.StyleReverse)},
			attrline.Attr{Range: attrline.NewRange(pos, pos+1), Type: attrline.TypeRole, Value: attrline.RoleValue(r)},
		)
	}
	markErrorRange := func(start, end int) {
		attrs = append(attrs,
			attrline.Attr{Range: attrline.NewRange(start, end), Type: attrline.TypeStyle, Value: attrline.Int64Value(ansiscrub.StyleBold | ansiscrub.StyleReverse)},
			attrline.Attr{Range: attrline.NewRange(start, end), Type: attrline.TypeRole, Value: attrline.RoleValue(attrline.RoleError)},
		)
	}

	if cursor >= 0 && cursor < len(text) {
		if text[cursor] == right && isBracket(cursor) {
			depth := 0
		backward:
			for lpc := cursor - 1; lpc >= 0; lpc-- {
				switch {
				case text[lpc] == right && isBracket(lpc):
					depth++
				case text[lpc] == left && isBracket(lpc):
					if depth == 0 {
						mark(lpc, attrline.RoleOK)
						break backward
					}
					depth--
				}
			}
		}
		if text[cursor] == left && isBracket(cursor) {
			depth := 0
		forward:
			for lpc := cursor + 1; lpc < len(text); lpc++ {
				switch {
				case text[lpc] == left && isBracket(lpc):
					depth++
				case text[lpc] == right && isBracket(lpc):
					if depth == 0 {
						mark(lpc, attrline.RoleOK)
						break forward
					}
					depth--
				}
			}
		}
	}

	depth := 0
	firstLeft := -1
	for lpc := 0; lpc < len(text); lpc++ {
		switch {
		case text[lpc] == left && isBracket(lpc):
			depth++
			if firstLeft == -1 {
				firstLeft = lpc
			}
		case text[lpc] == right && isBracket(lpc):
			if depth > 0 {
				depth--
			} else {
				start := lpc
				if isLit {
					start--
				}
				markErrorRange(start, lpc+1)
			}
		}
	}
	if depth > 0 {
		start := firstLeft
		if isLit {
			start--
		}
		markErrorRange(start, firstLeft+1)
	}

	return attrs
}
