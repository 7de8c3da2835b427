// ABOUTME: Summed-heights maintenance: resumable prefix-sum accumulation
// ABOUTME: plus the truncation helper every invalidator shares

package codeview

import "github.com/mauromedda/codeview-go/pkg/codeview/view"

// truncateSummedHeights drops every accumulated entry at or past line,
// the one invalidation update_summed_heights ever has to undo.
func truncateSummedHeights(s *view.State, line int) {
	if line < len(s.SummedHeights) {
		s.SummedHeights = s.SummedHeights[:line]
	}
}

// UpdateSummedHeights resumes prefix-sum accumulation from
// len(SummedHeights) through the end of the document. Callers rarely need
// this directly — ModifyText, SetMaxColumn (via wrapLines), and
// UpdateFoldAnimations all call it already. It only extends the array from
// its current length; entries already summed are not recomputed.
func (d *Document) UpdateSummedHeights() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.updateSummedHeights()
}

// updateSummedHeights walks the element stream from the first
// not-yet-summed line to the end, accumulating a running pixel total. A
// line's own scaled height (zero when fully folded) always advances the
// running total, but only a visible line appends an entry — collapsing
// hidden lines out of the array entirely and keeping len(SummedHeights) <=
// line count even though block widgets and line inlays also contribute
// height along the way.
func (d *Document) updateSummedHeights() {
	s := d.state
	start := len(s.SummedHeights)
	lineCount := s.Text.LineCount()
	if start >= lineCount {
		return
	}

	v := s.AsView()
	running := 0.0
	if start > 0 {
		running = s.SummedHeights[start-1]
	}

	for _, el := range v.Elements(start, lineCount) {
		switch el.Kind {
		case view.ElementLineInlay:
			running += float64(el.LineInlay.Height)
		case view.ElementBlockWidget:
			running += float64(el.BlockWidget.Height)
		case view.ElementLine:
			running += el.Line.ScaledHeight(s.UnitHeight)
			if !el.Line.Hidden {
				s.SummedHeights = append(s.SummedHeights, running)
			}
		}
	}
}
