package robot

import "bytes"

// Builder accumulates emitted lines into the final file content. All
// output is line-oriented UTF-8; every added line ends with a newline.
type Builder struct {
	buf bytes.Buffer
}

// Add appends lines, each terminated with a newline.
func (b *Builder) Add(lines ...Line) {
	for _, line := range lines {
		b.buf.WriteString(line.String())
		b.buf.WriteByte('\n')
	}
}

// AddSection appends every line of a section.
func (b *Builder) AddSection(s *Section) {
	b.Add(s.Lines()...)
}

// Raw appends pre-formatted content (merged external settings), ensuring
// it ends with a newline.
func (b *Builder) Raw(data []byte) {
	if len(data) == 0 {
		return
	}
	b.buf.Write(data)
	if data[len(data)-1] != '\n' {
		b.buf.WriteByte('\n')
	}
}

// Bytes returns the accumulated file content.
func (b *Builder) Bytes() []byte {
	return b.buf.Bytes()
}
