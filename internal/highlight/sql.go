package highlight

import (
	"strings"

	"github.com/five82/chronoview/internal/attrline"
)

// sqlKeywords is the set of words SQLHighlight paints as RoleKeyword;
// anything else word-shaped is an identifier or (if followed by an open
// paren) a function call.
var sqlKeywords = map[string]bool{
	"SELECT": true, "FROM": true, "WHERE": true, "GROUP": true, "BY": true,
	"ORDER": true, "HAVING": true, "LIMIT": true, "OFFSET": true, "JOIN": true,
	"LEFT": true, "RIGHT": true, "INNER": true, "OUTER": true, "ON": true,
	"AND": true, "OR": true, "NOT": true, "NULL": true, "AS": true,
	"INSERT": true, "INTO": true, "VALUES": true, "UPDATE": true, "SET": true,
	"DELETE": true, "CREATE": true, "TABLE": true, "INDEX": true, "DROP": true,
	"ALTER": true, "DISTINCT": true, "UNION": true, "ALL": true, "EXISTS": true,
	"IN": true, "BETWEEN": true, "LIKE": true, "CASE": true, "WHEN": true,
	"THEN": true, "ELSE": true, "END": true, "ASC": true, "DESC": true,
}

// clearLRWords are the clause keywords the reformatter puts on their own
// line, both before and after, per sql.formatter.cc's CLEAR_LR.
var clearLRWords = map[string]bool{"FROM": true, "SELECT": true, "SET": true, "WHERE": true}

// sqlToken is one disjoint lexical span of a statement.
type sqlToken struct {
	Range attrline.Range
	Kind  attrline.Role
	Text  string
}

// tokenizeSQL splits text into disjoint {command, keyword, identifier,
// function, string, number, operator, paren, comment, garbage} spans, per
// spec.md 4.8's SQL highlighter attribute set.
func tokenizeSQL(text string) []sqlToken {
	var toks []sqlToken
	n := len(text)
	i := 0
	first := true

	for i < n {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '-' && safeByte(text, i+1) == '-':
			start := i
			for i < n && text[i] != '\n' {
				i++
			}
			toks = append(toks, sqlToken{attrline.NewRange(start, i), attrline.RoleComment, text[start:i]})
		case c == '/' && safeByte(text, i+1) == '*':
			start := i
			i += 2
			for i < n && !(text[i] == '*' && safeByte(text, i+1) == '/') {
				i++
			}
			if i < n {
				i += 2
			}
			toks = append(toks, sqlToken{attrline.NewRange(start, i), attrline.RoleComment, text[start:i]})
		case c == '\'':
			start := i
			i++
			for i < n {
				if text[i] == '\'' && safeByte(text, i+1) == '\'' {
					i += 2
					continue
				}
				if text[i] == '\'' {
					i++
					break
				}
				i++
			}
			toks = append(toks, sqlToken{attrline.NewRange(start, i), attrline.RoleString, text[start:i]})
		case c == '"' || c == '`':
			quote := c
			start := i
			i++
			for i < n && text[i] != quote {
				i++
			}
			if i < n {
				i++
			}
			toks = append(toks, sqlToken{attrline.NewRange(start, i), attrline.RoleIdentifier, text[start:i]})
		case isDigit(c):
			start := i
			for i < n && (isDigit(text[i]) || text[i] == '.') {
				i++
			}
			toks = append(toks, sqlToken{attrline.NewRange(start, i), attrline.RoleNumber, text[start:i]})
		case isWordStart(c):
			start := i
			for i < n && isWordChar(text[i]) {
				i++
			}
			word := text[start:i]
			upper := strings.ToUpper(word)
			kind := attrline.RoleIdentifier
			switch {
			case first && (upper == "SELECT" || upper == "INSERT" || upper == "UPDATE" || upper == "DELETE" || upper == "CREATE" || upper == "DROP" || upper == "ALTER"):
				kind = attrline.RoleCommand
			case sqlKeywords[upper]:
				kind = attrline.RoleKeyword
			case followedByParen(text, i):
				kind = attrline.RoleFunction
			}
			toks = append(toks, sqlToken{attrline.NewRange(start, i), kind, word})
		case c == '(' || c == ')':
			toks = append(toks, sqlToken{attrline.NewRange(i, i+1), attrline.RoleParen, text[i : i+1]})
			i++
		case strings.ContainsRune("=<>+-*/.,;", rune(c)):
			start := i
			i++
			for i < n && strings.ContainsRune("=<>", rune(text[i])) {
				i++
			}
			toks = append(toks, sqlToken{attrline.NewRange(start, i), attrline.RoleOperator, text[start:i]})
		default:
			toks = append(toks, sqlToken{attrline.NewRange(i, i+1), attrline.RoleGarbage, text[i : i+1]})
			i++
		}
		first = false
	}
	return toks
}

func isWordStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isWordChar(c byte) bool {
	return isWordStart(c) || isDigit(c)
}

func followedByParen(text string, from int) bool {
	i := from
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	return i < len(text) && text[i] == '('
}

// SQLHighlight annotates a SQL statement with the disjoint attribute set
// spec.md 4.8 names, for display in the prompt/result view.
func SQLHighlight(text string) attrline.Attrs {
	toks := tokenizeSQL(text)
	attrs := make(attrline.Attrs, 0, len(toks))
	for _, t := range toks {
		attrs = append(attrs, attrline.Attr{Range: t.Range, Type: attrline.TypeRole, Value: attrline.RoleValue(t.Kind)})
	}
	return attrs
}

// SQLFormat pretty-prints a statement by inserting newlines/indentation
// after major clauses and around parenthesized sub-selects, and maps
// cursorOffset in the original text to its position in the reformatted
// text, per sql.formatter.cc's sql::format.
func SQLFormat(text string, cursorOffset int) (string, int) {
	const indentSize = 4
	toks := tokenizeSQL(text)

	var out strings.Builder
	indent := 0
	cursorOut := -1
	var parenIndents []bool

	clearLeft := func() {
		s := out.String()
		if s == "" || strings.HasSuffix(s, "\n") {
			return
		}
		out.WriteByte('\n')
	}
	clearRight := func() { out.WriteByte('\n') }
	addIndent := func(ind int) {
		s := out.String()
		if strings.HasSuffix(s, "\n") {
			out.WriteString(strings.Repeat(" ", ind))
		}
	}
	addSpace := func(ind int) {
		s := out.String()
		if s == "" {
			return
		}
		if strings.HasSuffix(s, "\n") {
			out.WriteString(strings.Repeat(" ", ind))
		} else {
			out.WriteByte(' ')
		}
	}
	trimTrailingSpace := func() {
		s := out.String()
		trimmed := strings.TrimRight(s, " \t")
		out.Reset()
		out.WriteString(trimmed)
	}

	for _, t := range toks {
		if cursorOut < 0 && cursorOffset < t.Range.Start {
			cursorOut = out.Len()
		}

		switch t.Kind {
		case attrline.RoleKeyword, attrline.RoleCommand:
			upperWord := strings.ToUpper(t.Text)
			doClear := clearLRWords[upperWord]
			if doClear {
				if len(parenIndents) > 0 {
					parenIndents[len(parenIndents)-1] = true
				}
				if indent > 0 {
					indent -= indentSize
				}
				clearLeft()
			}
			addSpace(indent)
			out.WriteString(upperWord)
			if doClear {
				clearRight()
				indent += indentSize
			} else {
				checkMultiWordClearLeft(&out, indent)
			}
		case attrline.RoleParen:
			if t.Text == "(" {
				parenIndents = append(parenIndents, false)
				trimTrailingSpace()
				out.WriteByte(' ')
				indent += indentSize
				out.WriteString(t.Text)
			} else {
				indent -= indentSize
				if indent < 0 {
					indent = 0
				}
				if len(parenIndents) > 0 {
					top := parenIndents[len(parenIndents)-1]
					parenIndents = parenIndents[:len(parenIndents)-1]
					if top {
						out.WriteByte('\n')
					}
				}
				ind := indent - indentSize
				if ind < 0 {
					ind = 0
				}
				addIndent(ind)
				out.WriteString(t.Text)
			}
		case attrline.RoleFunction:
			addSpace(indent)
			out.WriteString(t.Text)
		case attrline.RoleOperator:
			out.WriteString(t.Text)
			if t.Text == "," {
				clearRight()
			}
		default:
			s := out.String()
			if s == "" || !strings.HasSuffix(s, "(") {
				addSpace(indent)
			}
			out.WriteString(t.Text)
		}

		if t.Range.Contains(cursorOffset - 1) || t.Range.Start == cursorOffset {
			diff := t.Range.End - cursorOffset
			s := out.String()
			if strings.HasSuffix(s, "\n") {
				diff++
			}
			if diff >= 0 && diff < out.Len() {
				cursorOut = out.Len() - diff
			} else {
				cursorOut = out.Len()
			}
		}
	}
	if cursorOut < 0 {
		cursorOut = out.Len()
	}
	return out.String(), cursorOut
}

// checkMultiWordClearLeft converts "... ORDER BY" into "...\n    ORDER BY"
// once the second word of a two-word clause keyword has been appended, per
// sql.formatter.cc's check_for_multi_word_clear_left (currently the only
// such clause lnav recognizes).
func checkMultiWordClearLeft(out *strings.Builder, indent int) {
	const phrase = "ORDER BY"
	s := out.String()
	if !strings.HasSuffix(s, phrase) {
		return
	}
	cut := len(s) - len(phrase)
	if cut > 0 && s[cut-1] == ' ' {
		cut--
	} else {
		return
	}
	out.Reset()
	out.WriteString(s[:cut])
	out.WriteByte('\n')
	out.WriteString(strings.Repeat(" ", indent))
	out.WriteString(phrase)
}
