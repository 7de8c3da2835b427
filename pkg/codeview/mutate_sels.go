// ABOUTME: ModifySels: the cursor-motion pipeline plus the boundary methods
// ABOUTME: (move/set/insert cursor)

package codeview

import (
	"github.com/mauromedda/codeview-go/pkg/codeview/buffer"
	"github.com/mauromedda/codeview-go/pkg/codeview/moveops"
	"github.com/mauromedda/codeview-go/pkg/codeview/view"
)

// SelMoveFunc is a pure transform of one selection given a fresh read-only
// view.
type SelMoveFunc func(v view.View, sel buffer.Sel) buffer.Sel

// ModifySels applies f to every selection (each against a fresh view of
// the unmutated state — f is pure position arithmetic, never a text edit),
// collapses each result to a caret when selectExtend is false, then
// re-sorts and re-merges the whole set in one sweep, preserving which
// selection is "latest" across any merge that absorbs it.
func (d *Document) ModifySels(selectExtend bool, f SelMoveFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := d.state
	v := s.AsView()
	sels := s.Sels.All()
	_, latestIdx := s.Sels.Latest()

	newSels := make([]buffer.Sel, len(sels))
	for i, sel := range sels {
		ns := f(v, sel)
		if !selectExtend {
			ns = ns.ResetAnchor()
		}
		newSels[i] = ns
	}
	s.Sels = buffer.Rebuild(newSels, latestIdx)
}

// MoveCursorsLeft moves every selection's cursor back one grapheme
// cluster. selectExtend keeps each selection's anchor fixed (extending);
// otherwise every selection collapses to its new caret.
func (d *Document) MoveCursorsLeft(selectExtend bool) {
	d.ModifySels(selectExtend, func(v view.View, sel buffer.Sel) buffer.Sel {
		return moveops.Left(v, sel, selectExtend)
	})
}

// MoveCursorsRight moves every selection's cursor forward one grapheme
// cluster.
func (d *Document) MoveCursorsRight(selectExtend bool) {
	d.ModifySels(selectExtend, func(v view.View, sel buffer.Sel) buffer.Sel {
		return moveops.Right(v, sel, selectExtend)
	})
}

// MoveCursorsUp moves every selection's cursor to the line above, at its
// sticky visual column.
func (d *Document) MoveCursorsUp(selectExtend bool) {
	d.ModifySels(selectExtend, func(v view.View, sel buffer.Sel) buffer.Sel {
		return moveops.Up(v, sel, v.Settings().TabWidth, selectExtend)
	})
}

// MoveCursorsDown moves every selection's cursor to the line below, at its
// sticky visual column.
func (d *Document) MoveCursorsDown(selectExtend bool) {
	d.ModifySels(selectExtend, func(v view.View, sel buffer.Sel) buffer.Sel {
		return moveops.Down(v, sel, v.Settings().TabWidth, selectExtend)
	})
}

// MoveCursorTo moves only the selection at LatestSelIndex to pos, then
// re-normalizes (sorting and merging) the whole set around its new
// position.
func (d *Document) MoveCursorTo(selectExtend bool, pos buffer.Pos) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.validatePos(pos); err != nil {
		return err
	}
	s := d.state
	sel, idx := s.Sels.Latest()
	ns := sel.WithPos(buffer.BiasedPos{Pos: pos, Bias: buffer.Before}, selectExtend)
	s.Sels = s.Sels.Replace(idx, ns)
	return nil
}

// SetCursorPos discards every selection and replaces the set with a
// single caret at pos.
func (d *Document) SetCursorPos(pos buffer.Pos) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.validatePos(pos); err != nil {
		return err
	}
	d.state.Sels = buffer.NewSet(buffer.NewCaret(pos))
	return nil
}

// InsertCursor adds a new caret at pos and makes it the latest selection.
// A caret that lands inside (or on the boundary of) an existing selection
// replaces that selection; otherwise the other selections are left as
// they are.
func (d *Document) InsertCursor(pos buffer.Pos) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.validatePos(pos); err != nil {
		return err
	}
	d.state.Sels = d.state.Sels.Insert(buffer.NewCaret(pos))
	return nil
}
