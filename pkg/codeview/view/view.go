// ABOUTME: View is the read-only projection exposed to motion helpers and
// ABOUTME: the host: line access, settings, selections, the element stream

package view

import "github.com/mauromedda/codeview-go/pkg/codeview/buffer"

// View wraps a *State for read-only access. It is cheap to construct and
// meant to be created fresh per read rather than stored.
type View struct {
	s *State
}

// LineCount returns the number of lines in the underlying text.
func (v View) LineCount() int { return v.s.Text.LineCount() }

// Line returns a read-only summary of line i: its text, fold column, and
// current scale. Use Elements for the full inline stream needed to render.
func (v View) Line(i int) LineInfo {
	st := v.s.Lines[i]
	return LineInfo{
		Index:      i,
		Text:       v.s.Text.Line(i),
		FoldColumn: st.FoldColumn,
		Scale:      st.Scale,
		Hidden:     st.Scale == 0,
	}
}

// LineInfo is the plain per-line accessor result; Elements() builds the
// richer merged-and-wrapped stream used for actual rendering.
type LineInfo struct {
	Index      int
	Text       string
	FoldColumn uint32
	Scale      float64
	Hidden     bool
}

// Settings returns the view's column-arithmetic settings.
func (v View) Settings() Settings { return v.s.Settings }

// MaxColumn returns the current wrap column, if any.
func (v View) MaxColumn() MaxColumn { return v.s.MaxColumn }

// Text returns the underlying document text.
func (v View) Text() buffer.Text { return v.s.Text }

// Sels returns the current selection set.
func (v View) Sels() buffer.Set { return v.s.Sels }

// LatestSelIndex returns the index of the latest selection.
func (v View) LatestSelIndex() int {
	_, idx := v.s.Sels.Latest()
	return idx
}

// SoftBreaks returns the soft-wrap byte offsets for line i.
func (v View) SoftBreaks(i int) []uint32 {
	return append([]uint32(nil), v.s.Lines[i].SoftBreaks...)
}

// StartColumnAfterWrap returns the continuation column for line i.
func (v View) StartColumnAfterWrap(i int) uint32 {
	return v.s.Lines[i].StartColumnAfterWrap
}
