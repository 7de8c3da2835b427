// ABOUTME: ModifyText: the per-selection-diff composition pipeline plus the
// ABOUTME: boundary methods (Replace/Enter/Delete/Backspace)

package codeview

import (
	"github.com/mauromedda/codeview-go/pkg/codeview/buffer"
	"github.com/mauromedda/codeview-go/pkg/codeview/editops"
)

// TextEditFunc is a pure function from a selection's current range (in the
// text as mutated by every already-processed selection) to the diff that
// replaces it.
type TextEditFunc func(text buffer.Text, r buffer.Range) buffer.Diff

// ModifyText applies f once per selection, in document order, composing
// the per-selection diffs into a single composite diff while rebasing each
// selection's own endpoints onto the text as left by every already-applied
// selection before it. updateAfterModifyText runs exactly once, after the
// full composite diff is known.
func (d *Document) ModifyText(f TextEditFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.modifyTextLocked(f)
}

func (d *Document) modifyTextLocked(f TextEditFunc) {
	s := d.state
	sels := s.Sels.All()
	_, latestIdx := s.Sels.Latest()

	text := s.Text
	composite := buffer.NewDiff()
	prevEnd := buffer.Pos{}
	diffedPrevEnd := buffer.Pos{}
	newSels := make([]buffer.Sel, len(sels))

	for i, sel := range sels {
		distance := sel.Start().Pos.Sub(prevEnd)
		diffedStart := diffedPrevEnd.Add(distance)
		diffedEnd := diffedStart.Add(sel.Len())

		diff := f(text, buffer.NewRange(diffedStart, diffedEnd))

		diffedStart2 := buffer.ApplyToPos(diffedStart, diff, buffer.InsertBefore)
		diffedEnd2 := buffer.ApplyToPos(diffedEnd, diff, buffer.InsertBefore)

		text = text.ApplyDiff(diff)
		composite = composite.Compose(diff)

		prevEnd = sel.End().Pos
		diffedPrevEnd = diffedEnd2

		start := buffer.BiasedPos{Pos: diffedStart2, Bias: sel.Start().Bias}
		end := buffer.BiasedPos{Pos: diffedEnd2, Bias: sel.End().Bias}
		if sel.IsReversed() {
			newSels[i] = buffer.Sel{Anchor: end, Cursor: buffer.Cursor{BiasedPos: start}}
		} else {
			newSels[i] = buffer.Sel{Anchor: start, Cursor: buffer.Cursor{BiasedPos: end}}
		}
	}

	s.Text = text
	s.Sels = buffer.Rebuild(newSels, latestIdx)
	d.updateAfterModifyText(composite)
}

// Replace substitutes every selection's range with newText.
func (d *Document) Replace(newText string) {
	d.ModifyText(func(text buffer.Text, r buffer.Range) buffer.Diff {
		return editops.Replace(text, r, newText)
	})
}

// Enter replaces every selection's range with a single newline.
func (d *Document) Enter() { d.ModifyText(editops.Enter) }

// Delete removes every selection's range, or the grapheme cluster after an
// empty selection's caret.
func (d *Document) Delete() { d.ModifyText(editops.Delete) }

// Backspace removes every selection's range, or the grapheme cluster
// before an empty selection's caret.
func (d *Document) Backspace() { d.ModifyText(editops.Backspace) }
