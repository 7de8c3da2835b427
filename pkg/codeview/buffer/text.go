// ABOUTME: Text is the document's line storage, mutated only through Diff
// ABOUTME: application so every change to it is expressible as an edit

package buffer

import "strings"

// Text holds a document as a sequence of lines with no embedded newlines.
// A freshly constructed Text always has at least one line, even if empty.
type Text struct {
	lines []string
}

// NewText splits s on "\n" into lines. A trailing "\r" on each line is
// preserved as content; only "\n" is a line terminator.
func NewText(s string) Text {
	return Text{lines: strings.Split(s, "\n")}
}

// NewTextFromLines builds a Text from an already-split line slice.
func NewTextFromLines(lines []string) Text {
	if len(lines) == 0 {
		lines = []string{""}
	}
	return Text{lines: append([]string(nil), lines...)}
}

// LineCount returns the number of lines.
func (t Text) LineCount() int { return len(t.lines) }

// Line returns the content of line i.
func (t Text) Line(i int) string { return t.lines[i] }

// Lines returns a copy of the full line slice.
func (t Text) Lines() []string { return append([]string(nil), t.lines...) }

// Length returns the Length spanning the whole document: lines is the
// count of line breaks and bytes is the byte length of the final line.
func (t Text) Length() Length {
	return Length{Lines: uint32(len(t.lines) - 1), Bytes: uint32(len(t.lines[len(t.lines)-1]))}
}

// End returns the Pos just past the last byte of the document.
func (t Text) End() Pos {
	return Pos{Line: uint32(len(t.lines) - 1), Byte: uint32(len(t.lines[len(t.lines)-1]))}
}

// String joins the lines back into a single "\n"-delimited string.
func (t Text) String() string { return strings.Join(t.lines, "\n") }

// ApplyDiff returns the Text produced by running d against t. d must span
// t's full length (its Retain/Delete lengths must sum to t.Length()).
func (t Text) ApplyDiff(d Diff) Text {
	return Text{lines: Apply(t.lines, d)}
}

// Slice returns the text spanned by r as a "\n"-joined string.
func (t Text) Slice(r Range) string {
	if r.Start.Line == r.End.Line {
		return t.lines[r.Start.Line][r.Start.Byte:r.End.Byte]
	}
	var b strings.Builder
	b.WriteString(t.lines[r.Start.Line][r.Start.Byte:])
	for i := r.Start.Line + 1; i < r.End.Line; i++ {
		b.WriteByte('\n')
		b.WriteString(t.lines[i])
	}
	b.WriteByte('\n')
	b.WriteString(t.lines[r.End.Line][:r.End.Byte])
	return b.String()
}
