// Package ansiscrub strips ANSI CSI/SGR escape sequences from a byte
// string and converts the sequences it understands into attrline.Attr
// style ranges, the way lnav's scrub_ansi_string does for attr_line_t.
package ansiscrub
