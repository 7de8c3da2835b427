// ABOUTME: Tests for the selection algebra: merge, ordering, and the Set
// ABOUTME: invariant that keeps selections sorted, disjoint, and tracked

package buffer

import "testing"

func bp(line, byte uint32) BiasedPos { return BiasedPos{Pos: Pos{Line: line, Byte: byte}, Bias: Before} }

func TestSelTryMergeOverlapping(t *testing.T) {
	t.Parallel()

	a := Sel{Anchor: bp(0, 0), Cursor: Cursor{BiasedPos: bp(0, 5)}}
	b := Sel{Anchor: bp(0, 3), Cursor: Cursor{BiasedPos: bp(0, 8)}}
	merged, ok := a.TryMerge(b)
	if !ok {
		t.Fatal("expected overlapping selections to merge")
	}
	if got, want := merged.Start().Pos, (Pos{0, 0}); got != want {
		t.Errorf("Start() = %v, want %v", got, want)
	}
	if got, want := merged.End().Pos, (Pos{0, 8}); got != want {
		t.Errorf("End() = %v, want %v", got, want)
	}
}

func TestSelTryMergeTouchingEndpoints(t *testing.T) {
	t.Parallel()

	a := Sel{Anchor: bp(0, 2), Cursor: Cursor{BiasedPos: bp(0, 5)}}
	b := Sel{Anchor: bp(0, 5), Cursor: Cursor{BiasedPos: bp(0, 9)}}
	if _, ok := a.TryMerge(b); !ok {
		t.Error("expected touching selections (end == start) to merge")
	}
}

func TestSelTryMergeDisjointFails(t *testing.T) {
	t.Parallel()

	a := Sel{Anchor: bp(0, 0), Cursor: Cursor{BiasedPos: bp(0, 2)}}
	b := Sel{Anchor: bp(0, 10), Cursor: Cursor{BiasedPos: bp(0, 12)}}
	if _, ok := a.TryMerge(b); ok {
		t.Error("expected disjoint selections to not merge")
	}
}

func TestSelTryMergeIsIdempotent(t *testing.T) {
	t.Parallel()

	a := Sel{Anchor: bp(0, 1), Cursor: Cursor{BiasedPos: bp(0, 4)}}
	merged, ok := a.TryMerge(a)
	if !ok {
		t.Fatal("a selection must merge with itself")
	}
	if merged.Range() != a.Range() {
		t.Errorf("TryMerge(a, a).Range() = %v, want %v", merged.Range(), a.Range())
	}
}

// TestSetInsertMergesOverlapping checks that inserting a selection that
// overlaps an existing caret merges the two into a single selection.
func TestSetInsertMergesOverlapping(t *testing.T) {
	t.Parallel()

	s := NewSet(NewCaret(Pos{0, 0}))
	s = s.Insert(Sel{Anchor: bp(0, 0), Cursor: Cursor{BiasedPos: bp(0, 4)}})
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after merging overlapping caret", s.Len())
	}
}

// TestSetInsertCaretInsideSelectionReplacesIt covers spec.md §4.1's
// exact-hit rule: a caret landing inside an existing non-empty selection
// replaces that selection outright (the new caret wins) rather than
// merging into it and keeping the old extent.
func TestSetInsertCaretInsideSelectionReplacesIt(t *testing.T) {
	t.Parallel()

	s := NewSet(Sel{Anchor: bp(0, 0), Cursor: Cursor{BiasedPos: bp(0, 10)}})
	s = s.Insert(NewCaret(Pos{0, 4}))

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (caret replaces the hit selection)", s.Len())
	}
	got := s.At(0)
	if !got.IsEmpty() {
		t.Fatalf("At(0) = %v, want a collapsed caret, not the original extent", got)
	}
	if got.Cursor.BiasedPos.Pos != (Pos{0, 4}) {
		t.Errorf("At(0) caret = %v, want {0,4}", got.Cursor.BiasedPos.Pos)
	}
	latest, idx := s.Latest()
	if idx != 0 || latest != got {
		t.Errorf("Latest() = (%v, %d), want the replacing caret at index 0", latest, idx)
	}
}

func TestSetInsertKeepsDisjointSelectionsOrdered(t *testing.T) {
	t.Parallel()

	s := NewSet(NewCaret(Pos{2, 0}))
	s = s.Insert(NewCaret(Pos{0, 0}))
	s = s.Insert(NewCaret(Pos{1, 0}))
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	for i := 0; i < s.Len()-1; i++ {
		if !s.At(i).Start().Less(s.At(i + 1).Start()) {
			t.Errorf("selections not ordered at index %d: %v, %v", i, s.At(i), s.At(i+1))
		}
	}
}

func TestSetLatestTracksThroughInsert(t *testing.T) {
	t.Parallel()

	s := NewSet(NewCaret(Pos{0, 0}))
	s = s.Insert(NewCaret(Pos{5, 0}))
	latest, idx := s.Latest()
	if latest.Start().Pos != (Pos{5, 0}) {
		t.Errorf("Latest() = %v, want caret at {5,0}", latest)
	}
	if s.At(idx) != latest {
		t.Errorf("At(latest index) = %v, want %v", s.At(idx), latest)
	}
}

// TestSetInsertAtMidpointGrowsAndTracksLatest is scenario 6: inserting a
// caret that lands in a gap among three non-overlapping selections grows
// the list to four and tracks the new entry as latest.
func TestSetInsertAtMidpointGrowsAndTracksLatest(t *testing.T) {
	t.Parallel()

	s := NewSet(NewCaret(Pos{0, 0}))
	s = s.Insert(NewCaret(Pos{0, 10}))
	s = s.Insert(NewCaret(Pos{0, 20}))
	s = s.Insert(NewCaret(Pos{0, 5}))
	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
	latest, idx := s.Latest()
	if latest.Start().Pos != (Pos{0, 5}) {
		t.Errorf("Latest() = %v, want caret at {0,5}", latest)
	}
	if idx != 1 {
		t.Errorf("latest index = %d, want 1 (sorted position of {0,5})", idx)
	}
}

func TestSetRebaseAfterEditShiftsAllCursors(t *testing.T) {
	t.Parallel()

	s := NewSet(NewCaret(Pos{0, 5}))
	s = s.Insert(NewCaret(Pos{0, 10}))
	shifted := s.RebaseAfterEdit(func(p Pos) Pos { return Pos{Line: p.Line, Byte: p.Byte + 2} })
	if got, want := shifted.At(0).Start().Pos, (Pos{0, 7}); got != want {
		t.Errorf("rebased first caret = %v, want %v", got, want)
	}
	if got, want := shifted.At(1).Start().Pos, (Pos{0, 12}); got != want {
		t.Errorf("rebased second caret = %v, want %v", got, want)
	}
}
