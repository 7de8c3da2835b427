// ABOUTME: Pure Diff producers over (Text, Range): replace/enter/delete/
// ABOUTME: backspace

package editops

import "github.com/mauromedda/codeview-go/pkg/codeview/buffer"

// Replace returns the diff that retains text up to r.Start, removes r's
// span, inserts newText, and retains the remainder. It is the primitive
// every other operation in this package reduces to.
func Replace(text buffer.Text, r buffer.Range, newText string) buffer.Diff {
	prefix := r.Start.Sub(buffer.Pos{})
	mid := r.Len()
	suffix := text.End().Sub(r.End)

	d := buffer.NewDiff()
	d = d.Push(buffer.Retain(prefix))
	if !mid.IsZero() {
		d = d.Push(buffer.Delete(mid))
	}
	if newText != "" {
		d = d.Push(buffer.Insert(newText))
	}
	d = d.Push(buffer.Retain(suffix))
	return d
}

// Enter replaces r with a single newline, splitting the line at r.Start
// (or replacing a selection with one). Unlike some editors this core does
// not carry indentation forward onto the new line.
func Enter(text buffer.Text, r buffer.Range) buffer.Diff {
	return Replace(text, r, "\n")
}

// Delete removes r if non-empty, otherwise removes the grapheme cluster
// immediately after r.Start, joining with the next line at end of line.
func Delete(text buffer.Text, r buffer.Range) buffer.Diff {
	if !r.Len().IsZero() {
		return Replace(text, r, "")
	}
	end := nextBoundaryPos(text, r.Start)
	return Replace(text, buffer.NewRange(r.Start, end), "")
}

// Backspace removes r if non-empty, otherwise removes the grapheme
// cluster immediately before r.Start, joining with the previous line at
// start of line.
func Backspace(text buffer.Text, r buffer.Range) buffer.Diff {
	if !r.Len().IsZero() {
		return Replace(text, r, "")
	}
	start := prevBoundaryPos(text, r.Start)
	return Replace(text, buffer.NewRange(start, r.Start), "")
}
