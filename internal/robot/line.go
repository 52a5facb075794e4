// Package robot holds the intermediate representation of a generated Robot
// Framework file: ordered lines grouped into sections, serialized with the
// fixed field separator the RF plain-text format expects.
package robot

import "strings"

// FieldSeparator joins the fields of a Line on emission. Robot Framework
// requires at least two spaces between fields; four is what the format's
// tooling conventionally emits.
const FieldSeparator = "    "

// Line is one line of a generated file. A Line is either opaque text or an
// ordered list of fields joined with FieldSeparator. An empty leading field
// represents one level of indentation.
type Line struct {
	text   string
	fields []string
}

// Text creates an opaque text line.
func Text(s string) Line {
	return Line{text: s}
}

// Fields creates a field line. Fields must not contain FieldSeparator;
// that is a caller error and the result is undefined.
func Fields(fields ...string) Line {
	return Line{fields: fields}
}

// Blank is an empty text line.
var Blank = Text("")

// String renders the line without a trailing newline.
func (l Line) String() string {
	if l.fields != nil {
		return strings.Join(l.fields, FieldSeparator)
	}
	return l.text
}

// Section is an ordered sequence of lines.
type Section struct {
	lines []Line
}

// Append adds lines to the end of the section.
func (s *Section) Append(lines ...Line) {
	s.lines = append(s.lines, lines...)
}

// Lines returns the section's lines in order.
func (s *Section) Lines() []Line {
	return s.lines
}

// Empty reports whether the section has no lines.
func (s *Section) Empty() bool {
	return len(s.lines) == 0
}
