// ABOUTME: wrapLines is the two-pass reflow engine triggered by SetMaxColumn:
// ABOUTME: continuation column first, then soft-break placement

package codeview

import (
	"github.com/mauromedda/codeview-go/pkg/codeview/strext"
	"github.com/mauromedda/codeview-go/pkg/codeview/view"
)

// SetMaxColumn sets the wrap column (Set false to disable wrapping) and
// reflows every line against it.
func (d *Document) SetMaxColumn(maxColumn view.MaxColumn) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.MaxColumn = maxColumn
	d.wrapLines()
}

// reflowFragment is one whitespace-delimited run of token text, or one
// non-splittable inlay/widget occupying its own column width. Inline text
// inlays are grouped with widgets here rather than split at whitespace:
// like a widget, an inlay's text isn't part of the underlying line's
// bytes, so treating it as a single zero-byte-advance fragment keeps
// soft-break byte offsets anchored to real text positions.
type reflowFragment struct {
	start      uint32
	text       string
	atomic     bool
	atomicCols uint32
}

func (f reflowFragment) columnWidth(tabWidth uint32) uint32 {
	if f.atomic {
		return f.atomicCols
	}
	return strext.ColumnCount(f.text, tabWidth)
}

func reflowFragments(v view.View, line int, tabWidth uint32) []reflowFragment {
	var out []reflowFragment
	for _, el := range v.InlineElements(line) {
		switch el.Kind {
		case view.InlineWidget:
			out = append(out, reflowFragment{start: el.Start, atomic: true, atomicCols: el.Widget.ColumnCount})
		case view.InlineInlayText:
			out = append(out, reflowFragment{start: el.Start, atomic: true, atomicCols: strext.ColumnCount(el.Text, tabWidth)})
		default: // InlineToken
			offset := el.Start
			for _, piece := range strext.SplitWhitespaceBoundaries(el.Text) {
				out = append(out, reflowFragment{start: offset, text: piece})
				offset += uint32(len(piece))
			}
		}
	}
	return out
}

// wrapLines recomputes soft_breaks and start_column_after_wrap for every
// line, then resumes summed-height accumulation from whichever lines
// changed break count.
func (d *Document) wrapLines() {
	s := d.state
	v := s.AsView()
	tabWidth := s.Settings.TabWidth

	for line := 0; line < s.Text.LineCount(); line++ {
		ls := &s.Lines[line]
		oldBreakCount := len(ls.SoftBreaks)
		ls.SoftBreaks = nil
		ls.StartColumnAfterWrap = 0

		if !s.MaxColumn.Set {
			if oldBreakCount != 0 {
				truncateSummedHeights(s, line)
			}
			continue
		}
		maxCol := s.MaxColumn.Value
		frags := reflowFragments(v, line, tabWidth)

		// Pass 1: the continuation column itself depends on reflow
		// decisions, so compute it before deciding any actual breaks.
		continuation := strext.ColumnCount(strext.Indentation(s.Text.Line(line)), tabWidth)
		for _, f := range frags {
			if continuation+f.columnWidth(tabWidth) > maxCol {
				continuation = 0
			}
		}
		ls.StartColumnAfterWrap = continuation

		// Pass 2: walk again, this time actually placing breaks.
		column := uint32(0)
		for _, f := range frags {
			next := column + f.columnWidth(tabWidth)
			if next > maxCol {
				ls.SoftBreaks = append(ls.SoftBreaks, f.start)
				next = ls.StartColumnAfterWrap
			}
			column = next
		}

		if len(ls.SoftBreaks) != oldBreakCount {
			truncateSummedHeights(s, line)
		}
	}

	d.updateSummedHeights()
}
