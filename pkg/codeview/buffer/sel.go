// ABOUTME: Cursor and Sel, the selection algebra, plus an ordered Set that
// ABOUTME: keeps selections non-overlapping and tracks the "latest" one

package buffer

import "sort"

// Cursor is the moving end of a selection: a biased position plus an
// optional sticky visual column remembered across vertical motion so
// Up/Down through short lines doesn't lose the caret's horizontal intent.
// Column is cleared by horizontal motion and by any text edit.
type Cursor struct {
	BiasedPos BiasedPos
	Column    *uint32
}

// Sel is a single selection: Anchor stays fixed while extending, Cursor is
// the end that moves. A Sel with Anchor.Pos == Cursor.BiasedPos.Pos is a
// plain caret.
type Sel struct {
	Anchor BiasedPos
	Cursor Cursor
}

// NewCaret returns a zero-length selection at p, biased Before.
func NewCaret(p Pos) Sel {
	bp := BiasedPos{Pos: p, Bias: Before}
	return Sel{Anchor: bp, Cursor: Cursor{BiasedPos: bp}}
}

// Start returns the earlier endpoint (Anchor or Cursor.BiasedPos).
func (s Sel) Start() BiasedPos {
	if s.Cursor.BiasedPos.Less(s.Anchor) {
		return s.Cursor.BiasedPos
	}
	return s.Anchor
}

// End returns the later endpoint.
func (s Sel) End() BiasedPos {
	if s.Anchor.Less(s.Cursor.BiasedPos) {
		return s.Cursor.BiasedPos
	}
	return s.Anchor
}

// IsEmpty reports whether the selection is a plain caret.
func (s Sel) IsEmpty() bool { return s.Anchor.Pos == s.Cursor.BiasedPos.Pos }

// Range returns the selection's extent as a plain Range over Pos.
func (s Sel) Range() Range { return NewRange(s.Start().Pos, s.End().Pos) }

// Len returns the Length spanned by the selection.
func (s Sel) Len() Length { return s.Range().Len() }

// IsReversed reports whether Cursor precedes Anchor (extending backwards).
func (s Sel) IsReversed() bool { return s.Cursor.BiasedPos.Less(s.Anchor) }

// ResetAnchor collapses the selection to its Cursor, discarding any extent.
func (s Sel) ResetAnchor() Sel {
	return Sel{Anchor: s.Cursor.BiasedPos, Cursor: s.Cursor}
}

// WithPos returns a copy of s with Cursor moved to bp. When extend is
// false the Anchor collapses onto the new Cursor too (a plain move);
// horizontal motion always clears the sticky column.
func (s Sel) WithPos(bp BiasedPos, extend bool) Sel {
	cur := Cursor{BiasedPos: bp}
	if extend {
		return Sel{Anchor: s.Anchor, Cursor: cur}
	}
	return Sel{Anchor: bp, Cursor: cur}
}

// TryMerge merges s with other if their ranges overlap or touch. The
// merged selection's orientation (which endpoint is Anchor vs Cursor) is
// taken from whichever input selection spans the larger range; ties favor
// s, the earlier selection in document order. Reports false if disjoint.
func (s Sel) TryMerge(other Sel) (Sel, bool) {
	sr, or := s.Range(), other.Range()
	if sr.End.Less(or.Start) || or.End.Less(sr.Start) {
		return Sel{}, false
	}

	start, startBias := sr.Start, s.Start().Bias
	if or.Start.Less(sr.Start) {
		start, startBias = or.Start, other.Start().Bias
	}
	end, endBias := sr.End, s.End().Bias
	if sr.End.Less(or.End) {
		end, endBias = or.End, other.End().Bias
	}

	reversed := s.IsReversed()
	sLen, oLen := s.Len(), other.Len()
	if oLen.Lines > sLen.Lines || (oLen.Lines == sLen.Lines && oLen.Bytes > sLen.Bytes) {
		reversed = other.IsReversed()
	}

	startBP := BiasedPos{Pos: start, Bias: startBias}
	endBP := BiasedPos{Pos: end, Bias: endBias}
	if reversed {
		return Sel{Anchor: endBP, Cursor: Cursor{BiasedPos: startBP}}, true
	}
	return Sel{Anchor: startBP, Cursor: Cursor{BiasedPos: endBP}}, true
}

// Set is an ordered, non-overlapping collection of selections, with one
// designated as "latest" (the one most recently created or moved, used as
// the target of single-selection motion verbs).
type Set struct {
	sels   []Sel
	latest int
}

// NewSet returns a Set containing a single selection.
func NewSet(sel Sel) Set {
	return Set{sels: []Sel{sel}, latest: 0}
}

// Len returns the number of selections.
func (s Set) Len() int { return len(s.sels) }

// At returns the i'th selection in document order.
func (s Set) At(i int) Sel { return s.sels[i] }

// All returns the selections in document order.
func (s Set) All() []Sel { return append([]Sel(nil), s.sels...) }

// Latest returns the designated latest selection and its index.
func (s Set) Latest() (Sel, int) { return s.sels[s.latest], s.latest }

// Replace overwrites the i'th selection (e.g. after a motion moves it) and
// re-normalizes, keeping i's selection tracked as latest through any merge
// that absorbs it.
func (s Set) Replace(i int, sel Sel) Set {
	sels := append([]Sel(nil), s.sels...)
	sels[i] = sel
	return normalize(sels, i)
}

// Insert adds a new selection (e.g. from a multi-cursor click). Per
// spec.md §4.1, a caret insertion is first checked against each existing
// selection with a "contains pos" test: an exact hit (the caret lands
// inside, or at the boundary of, an existing selection) replaces that
// selection outright rather than extending it, the new caret winning over
// whatever it landed in; otherwise the caret is inserted at the gap
// between its neighbors, found by binary search on start position. A non-caret sel (one with
// extent) falls back to the general overlap/touch merge sweep, since the
// exact-hit rule is specifically about a zero-length caret displacing
// whatever it lands on, not about two ranges combining their coverage.
func (s Set) Insert(sel Sel) Set {
	if !sel.IsEmpty() {
		sels := append(append([]Sel(nil), s.sels...), sel)
		return normalize(sels, len(sels)-1)
	}

	pos := sel.Cursor.BiasedPos.Pos
	for i, existing := range s.sels {
		r := existing.Range()
		if !pos.Less(r.Start) && !r.End.Less(pos) {
			sels := append([]Sel(nil), s.sels...)
			sels[i] = sel
			return Set{sels: sels, latest: i}
		}
	}

	idx := sort.Search(len(s.sels), func(i int) bool { return pos.Less(s.sels[i].Start().Pos) })
	sels := make([]Sel, 0, len(s.sels)+1)
	sels = append(sels, s.sels[:idx]...)
	sels = append(sels, sel)
	sels = append(sels, s.sels[idx:]...)
	return Set{sels: sels, latest: idx}
}

// Rebuild constructs a Set from a freshly computed selection slice (e.g.
// modify_sels remapping every selection through a motion function),
// normalizing order and merges while tracking which of the input slice's
// positions should remain latest.
func Rebuild(sels []Sel, latestIdx int) Set {
	return normalize(sels, latestIdx)
}

// RebaseAfterEdit remaps every cursor's Pos through f, used after a text
// edit to carry selections forward across the diff that produced it. Bias
// is preserved; the sticky column is cleared, matching an edit's effect on
// cursor.column.
func (s Set) RebaseAfterEdit(f func(Pos) Pos) Set {
	sels := make([]Sel, len(s.sels))
	for i, sel := range s.sels {
		sels[i] = Sel{
			Anchor: BiasedPos{Pos: f(sel.Anchor.Pos), Bias: sel.Anchor.Bias},
			Cursor: Cursor{BiasedPos: BiasedPos{Pos: f(sel.Cursor.BiasedPos.Pos), Bias: sel.Cursor.BiasedPos.Bias}},
		}
	}
	return normalize(sels, s.latest)
}

// sortsBefore orders two selections by Start(), ties broken by End(),
// matching spec.md §4.1's "selections are kept sorted by start(); ties
// broken by end()".
func sortsBefore(a, b Sel) bool {
	if c := a.Start().Compare(b.Start()); c != 0 {
		return c < 0
	}
	return a.End().Less(b.End())
}

// normalize sorts sels by start position (ties broken by end position) and
// merges overlapping/touching runs via TryMerge, keeping track of which
// original index (preferIdx) ends up where so latest tracking survives the
// shuffle.
func normalize(sels []Sel, preferIdx int) Set {
	type tagged struct {
		sel  Sel
		orig int
	}
	tg := make([]tagged, len(sels))
	for i, sel := range sels {
		tg[i] = tagged{sel: sel, orig: i}
	}
	for i := 1; i < len(tg); i++ {
		for j := i; j > 0 && sortsBefore(tg[j].sel, tg[j-1].sel); j-- {
			tg[j], tg[j-1] = tg[j-1], tg[j]
		}
	}

	var out []tagged
	for _, cur := range tg {
		if len(out) == 0 {
			out = append(out, cur)
			continue
		}
		last := out[len(out)-1]
		if merged, ok := last.sel.TryMerge(cur.sel); ok {
			orig := last.orig
			if cur.orig == preferIdx {
				orig = cur.orig
			}
			out[len(out)-1] = tagged{sel: merged, orig: orig}
			continue
		}
		out = append(out, cur)
	}

	result := Set{sels: make([]Sel, len(out))}
	for i, t := range out {
		result.sels[i] = t.sel
		if t.orig == preferIdx {
			result.latest = i
		}
	}
	return result
}
