// ABOUTME: Tests for Document: the ModifyText/ModifySels pipelines, reflow,
// ABOUTME: fold animation and summed heights

package codeview

import (
	"testing"

	"github.com/mauromedda/codeview-go/pkg/codeview/buffer"
	"github.com/mauromedda/codeview-go/pkg/codeview/view"
)

type stubTokenizer struct{ lines []string }

func (s *stubTokenizer) Retokenize(_ buffer.Diff, text buffer.Text) { s.lines = text.Lines() }
func (s *stubTokenizer) Tokens(line int) []view.Token               { return []view.Token{{Text: s.lines[line]}} }

func newDoc(src string) *Document {
	return New(src, view.Settings{TabWidth: 4}, &stubTokenizer{}, 1.0)
}

// TestEnterSplitsLine checks that a bare Enter splits the line at the caret
// and leaves the caret at the start of the new second line.
func TestEnterSplitsLine(t *testing.T) {
	t.Parallel()

	d := newDoc("abc\ndef")
	if err := d.SetCursorPos(buffer.Pos{Line: 0, Byte: 1}); err != nil {
		t.Fatal(err)
	}
	d.Enter()

	v := d.AsView()
	if got, want := v.Text().String(), "a\nbc\ndef"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	sel, _ := v.Sels().Latest()
	if got, want := sel.Cursor.BiasedPos.Pos, (buffer.Pos{Line: 1, Byte: 0}); got != want {
		t.Errorf("caret = %v, want %v", got, want)
	}
	if v.LineCount() != 3 {
		t.Errorf("LineCount() = %d, want 3", v.LineCount())
	}
}

// TestReplaceAtTwoCaretsRebasesSecondSelection checks that replacing text
// at two independent carets rebases the second caret across the first
// edit's insertion: with InsertBefore rebase semantics (a position sitting
// exactly at an insertion point is pushed past it), the second caret lands
// immediately after its own inserted "X", symmetric with the first. See
// DESIGN.md for why this differs from a naive read of the byte arithmetic.
func TestReplaceAtTwoCaretsRebasesSecondSelection(t *testing.T) {
	t.Parallel()

	d := newDoc("hello world")
	if err := d.SetCursorPos(buffer.Pos{Line: 0, Byte: 0}); err != nil {
		t.Fatal(err)
	}
	if err := d.InsertCursor(buffer.Pos{Line: 0, Byte: 6}); err != nil {
		t.Fatal(err)
	}
	d.Replace("X")

	v := d.AsView()
	if got, want := v.Text().String(), "Xhello Xworld"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	if v.Sels().Len() != 2 {
		t.Fatalf("Sels().Len() = %d, want 2", v.Sels().Len())
	}
	if got, want := v.Sels().At(0).Cursor.BiasedPos.Pos, (buffer.Pos{Line: 0, Byte: 1}); got != want {
		t.Errorf("sel[0] caret = %v, want %v", got, want)
	}
	if got, want := v.Sels().At(1).Cursor.BiasedPos.Pos, (buffer.Pos{Line: 0, Byte: 8}); got != want {
		t.Errorf("sel[1] caret = %v, want %v", got, want)
	}
}

// TestMoveCursorsLeftCollapsesAndStaysDistinct checks that two selections
// collapse to carets under MoveCursorsLeft(extend=false) and the post-move
// merge sweep leaves them distinct. The two starting selections need a
// gap between them (here two bytes): Set merges touching selections eagerly on
// construction, so two selections abutting exactly at a shared byte can't
// be built as separate selections in the first place.
func TestMoveCursorsLeftCollapsesAndStaysDistinct(t *testing.T) {
	t.Parallel()

	d := newDoc("0123456789")
	if err := d.SetCursorPos(buffer.Pos{Line: 0, Byte: 2}); err != nil {
		t.Fatal(err)
	}
	if err := d.MoveCursorTo(true, buffer.Pos{Line: 0, Byte: 4}); err != nil {
		t.Fatal(err)
	}
	if err := d.InsertCursor(buffer.Pos{Line: 0, Byte: 6}); err != nil {
		t.Fatal(err)
	}
	if err := d.MoveCursorTo(true, buffer.Pos{Line: 0, Byte: 8}); err != nil {
		t.Fatal(err)
	}

	d.MoveCursorsLeft(false)

	v := d.AsView()
	if v.Sels().Len() != 2 {
		t.Fatalf("Sels().Len() = %d, want 2 (distinct after collapse)", v.Sels().Len())
	}
	if got, want := v.Sels().At(0).Cursor.BiasedPos.Pos, (buffer.Pos{Line: 0, Byte: 3}); got != want {
		t.Errorf("sel[0] caret = %v, want %v", got, want)
	}
	if got, want := v.Sels().At(1).Cursor.BiasedPos.Pos, (buffer.Pos{Line: 0, Byte: 7}); got != want {
		t.Errorf("sel[1] caret = %v, want %v", got, want)
	}
}

// TestWrapLinesBreaksAtWhitespaceBoundary checks that a wrapped line breaks
// at the last whitespace boundary at or before the max column.
func TestWrapLinesBreaksAtWhitespaceBoundary(t *testing.T) {
	t.Parallel()

	d := newDoc("aaaa bbbb cccc dddd")
	d.SetMaxColumn(view.MaxColumn{Value: 10, Set: true})

	v := d.AsView()
	breaks := v.SoftBreaks(0)
	if len(breaks) == 0 {
		t.Fatal("expected at least one soft break")
	}
	if breaks[0] != 10 {
		t.Errorf("first soft break = %d, want 10 (last whitespace boundary <= column 10)", breaks[0])
	}
	if got := v.StartColumnAfterWrap(0); got != 0 {
		t.Errorf("StartColumnAfterWrap(0) = %d, want 0 (no indentation)", got)
	}
}

// TestFoldLineAnimatesToZero drives UpdateFoldAnimations until a folding
// line's scale decays to zero (enough ticks for 0.9^n to cross epsilon,
// not tied to the fold column itself).
func TestFoldLineAnimatesToZero(t *testing.T) {
	t.Parallel()

	d := newDoc("a\nb\nc\nd\ne")
	d.FoldLine(3, 40)

	for i := 0; i < 100; i++ {
		d.UpdateFoldAnimations()
		v := d.AsView()
		if len(v.Sels().All()) == 0 {
			t.Fatal("selections should never become empty")
		}
	}

	v := d.AsView()
	if got := v.Line(3).Scale; got != 0 {
		t.Errorf("scale[3] = %v, want 0", got)
	}
}

// TestInsertCursorGrowsSetAndBecomesLatest checks that InsertCursor grows
// the selection set and the newly inserted cursor becomes latest.
func TestInsertCursorGrowsSetAndBecomesLatest(t *testing.T) {
	t.Parallel()

	d := newDoc("0123456789")
	if err := d.SetCursorPos(buffer.Pos{Line: 0, Byte: 0}); err != nil {
		t.Fatal(err)
	}
	if err := d.InsertCursor(buffer.Pos{Line: 0, Byte: 9}); err != nil {
		t.Fatal(err)
	}
	if err := d.InsertCursor(buffer.Pos{Line: 0, Byte: 3}); err != nil {
		t.Fatal(err)
	}

	v := d.AsView()
	if v.Sels().Len() != 3 {
		t.Fatalf("Sels().Len() = %d, want 3", v.Sels().Len())
	}

	if err := d.InsertCursor(buffer.Pos{Line: 0, Byte: 5}); err != nil {
		t.Fatal(err)
	}
	v = d.AsView()
	if v.Sels().Len() != 4 {
		t.Fatalf("Sels().Len() = %d, want 4", v.Sels().Len())
	}
	latest, idx := v.Sels().Latest()
	want := buffer.Pos{Line: 0, Byte: 5}
	if got := latest.Cursor.BiasedPos.Pos; got != want {
		t.Errorf("latest caret = %v, want %v", got, want)
	}
	if got := v.Sels().At(idx).Cursor.BiasedPos.Pos; got != want {
		t.Errorf("LatestSelIndex does not point at the inserted caret: got %v, want %v", got, want)
	}
}

func TestBackspaceJoinsLines(t *testing.T) {
	t.Parallel()

	d := newDoc("abc\ndef")
	if err := d.SetCursorPos(buffer.Pos{Line: 1, Byte: 0}); err != nil {
		t.Fatal(err)
	}
	d.Backspace()

	v := d.AsView()
	if got, want := v.Text().String(), "abcdef"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	if v.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", v.LineCount())
	}
}

func TestSetCursorPosRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	d := newDoc("abc")
	if err := d.SetCursorPos(buffer.Pos{Line: 5, Byte: 0}); err == nil {
		t.Error("expected an error for an out-of-range line")
	}
	if err := d.SetCursorPos(buffer.Pos{Line: 0, Byte: 99}); err == nil {
		t.Error("expected an error for an out-of-range byte")
	}
}

func TestSummedHeightsTruncatedByDelete(t *testing.T) {
	t.Parallel()

	d := newDoc("a\nb\nc\nd")
	d.UpdateSummedHeights()
	v := d.AsView()
	if got, want := len(v.Text().Lines()), 4; got != want {
		t.Fatalf("LineCount() = %d, want %d", got, want)
	}

	if err := d.SetCursorPos(buffer.Pos{Line: 1, Byte: 0}); err != nil {
		t.Fatal(err)
	}
	if err := d.MoveCursorTo(true, buffer.Pos{Line: 2, Byte: 0}); err != nil {
		t.Fatal(err)
	}
	d.Delete()

	v = d.AsView()
	if v.LineCount() != 3 {
		t.Fatalf("LineCount() = %d, want 3 after deleting one line", v.LineCount())
	}
}
