// Package attrline implements the styled-text model shared by every view in
// chronoview: a line of text plus an ordered set of typed attribute ranges.
//
// # Overview
//
// A StyledText is an ephemeral builder for a single rendered line: raw bytes
// plus a vector of Attr{Range, Type, Value} triples describing how the
// renderer should paint sub-spans of it (role colors, hyperlinks, hidden
// regions, and so on). Every other core package - the log index, the
// operation timeline, the spectrogram, the highlighters - produces its
// output as a StyledText, so the mutators here (Insert, Erase, Append, Wrap)
// are the single place that keeps attribute ranges aligned under arbitrary
// composition.
//
// # Invariants
//
// After every mutation:
//   - every attribute's Range is either valid (Start >= 0, Start <= End) or
//     carries the sentinel End = -1, meaning "to the end of the string";
//   - attributes with Start >= the mutation point are shifted so their
//     meaning is preserved;
//   - relative order of equal-Start, equal-Type attributes is preserved, so
//     a painter that layers attributes in insertion order (later wins) is
//     deterministic.
package attrline
