package document

import (
	"bytes"
	"fmt"
	"strings"
)

// Builder accumulates a fixed-width plain-text page line by line.
type Builder struct {
	buf   bytes.Buffer
	width int // page width in characters
}

// NewBuilder creates a builder for a page of the given character width.
func NewBuilder(width int) *Builder {
	if width <= 0 {
		width = 72
	}
	return &Builder{width: width}
}

// Line writes a line of text
func (b *Builder) Line(s string) *Builder {
	b.buf.WriteString(s)
	b.buf.WriteByte('\n')
	return b
}

// LineF writes a formatted line of text
func (b *Builder) LineF(format string, args ...interface{}) *Builder {
	b.buf.WriteString(fmt.Sprintf(format, args...))
	b.buf.WriteByte('\n')
	return b
}

// Blank writes an empty line
func (b *Builder) Blank() *Builder {
	b.buf.WriteByte('\n')
	return b
}

// Center writes a line centered on the page width
func (b *Builder) Center(s string) *Builder {
	pad := (b.width - len(s)) / 2
	if pad > 0 {
		b.buf.WriteString(strings.Repeat(" ", pad))
	}
	b.buf.WriteString(s)
	b.buf.WriteByte('\n')
	return b
}

// Separator writes a full-width line of the given character
func (b *Builder) Separator(char byte) *Builder {
	b.buf.WriteString(strings.Repeat(string(char), b.width))
	b.buf.WriteByte('\n')
	return b
}

// Split writes a left-aligned and a right-aligned text on the same line.
// Example: "Bill Number: 20240002          Customer Unique Code: C-17"
func (b *Builder) Split(left, right string) *Builder {
	spaces := b.width - len(left) - len(right)
	if spaces < 1 {
		spaces = 1
	}
	b.buf.WriteString(left)
	b.buf.WriteString(strings.Repeat(" ", spaces))
	b.buf.WriteString(right)
	b.buf.WriteByte('\n')
	return b
}

// Columns writes cells left-aligned at fixed column widths. The last cell
// is written as-is; longer cells push the following ones right rather
// than being truncated.
func (b *Builder) Columns(widths []int, cells []string) *Builder {
	var line strings.Builder
	for i, cell := range cells {
		line.WriteString(cell)
		if i < len(cells)-1 && i < len(widths) {
			pad := widths[i] - len(cell)
			if pad < 1 {
				pad = 1
			}
			line.WriteString(strings.Repeat(" ", pad))
		}
	}
	b.buf.WriteString(line.String())
	b.buf.WriteByte('\n')
	return b
}

// Width returns the page width in characters
func (b *Builder) Width() int {
	return b.width
}

// Bytes returns the accumulated page
func (b *Builder) Bytes() []byte {
	return b.buf.Bytes()
}

// String returns the accumulated page as a string
func (b *Builder) String() string {
	return b.buf.String()
}
