// ABOUTME: Fold animation stepping: FoldLine/UnfoldLine toggle set
// ABOUTME: membership; UpdateFoldAnimations steps scale one tick

package codeview

// foldDecay and foldEpsilon are the animation's design parameters:
// decay=0.9 yields perceptually smooth folding at typical host tick rates
// (~60 Hz); epsilon=1e-3 is where a line snaps fully open or closed and
// drops out of animation.
const (
	foldDecay   = 0.9
	foldEpsilon = 1e-3
)

// FoldLine begins (or restarts) folding line to foldColumn: the line
// leaves unfolding_lines, if present, and enters folding_lines.
func (d *Document) FoldLine(line int, foldColumn uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := d.state
	s.Lines[line].FoldColumn = foldColumn
	key := uint32(line)
	delete(s.UnfoldingLines, key)
	s.FoldingLines[key] = struct{}{}
}

// UnfoldLine begins unfolding line: it leaves folding_lines, if present,
// and enters unfolding_lines.
func (d *Document) UnfoldLine(line int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := d.state
	key := uint32(line)
	delete(s.FoldingLines, key)
	s.UnfoldingLines[key] = struct{}{}
}

// UpdateFoldAnimations steps every folding/unfolding line's scale one tick
// toward its target (0 or 1), snapping and dropping from its set once
// within foldEpsilon, then resumes summed-height accumulation for every
// line whose scale changed. It returns true iff either set was non-empty
// on entry, so a host can decide whether to schedule another tick.
func (d *Document) UpdateFoldAnimations() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := d.state
	hadWork := len(s.FoldingLines) > 0 || len(s.UnfoldingLines) > 0

	for line := range s.FoldingLines {
		ls := &s.Lines[line]
		ls.Scale *= foldDecay
		if ls.Scale < foldEpsilon {
			ls.Scale = 0
			delete(s.FoldingLines, line)
		}
		truncateSummedHeights(s, int(line))
	}
	for line := range s.UnfoldingLines {
		ls := &s.Lines[line]
		ls.Scale = 1 - foldDecay*(1-ls.Scale)
		if ls.Scale > 1-foldEpsilon {
			ls.Scale = 1
			delete(s.UnfoldingLines, line)
		}
		truncateSummedHeights(s, int(line))
	}

	d.updateSummedHeights()
	return hadWork
}
