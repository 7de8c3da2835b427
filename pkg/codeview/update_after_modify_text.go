// ABOUTME: updateAfterModifyText walks a composite diff and splices/drains
// ABOUTME: per-line arrays to match it line-for-line

package codeview

import (
	"fmt"

	"github.com/mauromedda/codeview-go/pkg/codeview/buffer"
	"github.com/mauromedda/codeview-go/pkg/codeview/internal/clog"
	"github.com/mauromedda/codeview-go/pkg/codeview/view"
)

// updateAfterModifyText walks diff maintaining a current line cursor:
// Retain advances it by the op's line count; Delete drains that many line
// slots starting at the cursor (deletion collapses the range onto the
// cursor, so it doesn't itself advance); Insert splices that many fresh
// line slots immediately after the cursor, then advances past them. Both
// Delete and Insert truncate summed heights from the cursor forward, since
// the line-to-pixel mapping past that point is no longer valid.
//
// Callers must have already written the post-diff text to s.Text; this
// only maintains the per-line derived arrays and triggers retokenization
// and summed-height recomputation.
func (d *Document) updateAfterModifyText(diff buffer.Diff) {
	s := d.state
	line := 0
	for _, op := range diff.Ops {
		switch op.Kind {
		case buffer.OpRetain:
			line += int(op.Len.Lines)
		case buffer.OpDelete:
			end := line + int(op.Len.Lines)
			if end > line {
				s.Lines = append(append([]view.LineState(nil), s.Lines[:line]...), s.Lines[end:]...)
			}
			truncateSummedHeights(s, line)
		case buffer.OpInsert:
			n := int(op.Len.Lines)
			if n > 0 {
				insertAt := line + 1
				fresh := make([]view.LineState, n)
				for i := range fresh {
					fresh[i] = view.NewLineState()
				}
				merged := make([]view.LineState, 0, len(s.Lines)+n)
				merged = append(merged, s.Lines[:insertAt]...)
				merged = append(merged, fresh...)
				merged = append(merged, s.Lines[insertAt:]...)
				s.Lines = merged
			}
			truncateSummedHeights(s, line)
			line += n
		}
	}

	if len(s.Lines) != s.Text.LineCount() {
		clog.Warn("per-line array length %d diverged from line count %d after ModifyText", len(s.Lines), s.Text.LineCount())
		panic(fmt.Sprintf("codeview: per-line array length %d != line count %d after ModifyText", len(s.Lines), s.Text.LineCount()))
	}

	if s.Tokenizer != nil {
		s.Tokenizer.Retokenize(diff, s.Text)
	}
	d.updateSummedHeights()
}
