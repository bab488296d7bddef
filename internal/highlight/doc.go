// Package highlight annotates prompt and result text with attrline
// attributes: a regex syntax highlighter with matching-bracket navigation,
// a SQL statement highlighter plus reformatter, a markdown-to-StyledText
// renderer, and a generic numbers/quoted-strings highlighter for arbitrary
// log text.
package highlight
