// ABOUTME: Tests for the read-only View projection: line access and the
// ABOUTME: element stream's inlay merge and soft-break row splitting

package view

import (
	"testing"

	"github.com/mauromedda/codeview-go/pkg/codeview/buffer"
)

type fakeTokenizer struct {
	lines []string
}

func (f *fakeTokenizer) Retokenize(_ buffer.Diff, text buffer.Text) {
	f.lines = text.Lines()
}

func (f *fakeTokenizer) Tokens(line int) []Token {
	return []Token{{Text: f.lines[line]}}
}

func newTestState(src string) *State {
	text := buffer.NewText(src)
	tok := &fakeTokenizer{}
	return NewState(text, Settings{TabWidth: 4}, tok, 1.0)
}

func TestLineCountMatchesText(t *testing.T) {
	t.Parallel()

	s := newTestState("a\nb\nc")
	v := s.AsView()
	if got := v.LineCount(); got != 3 {
		t.Errorf("LineCount() = %d, want 3", got)
	}
}

func TestElementsMergesWidgetInlayByByteOffset(t *testing.T) {
	t.Parallel()

	s := newTestState("helloworld")
	s.Lines[0].InlineWidgetInlays = []InlineWidgetInlay{
		{Byte: 5, Bias: buffer.Before, Widget: Widget{ID: "w1", ColumnCount: 2}},
	}
	v := s.AsView()
	elems := v.Elements(0, 1)
	if len(elems) != 1 || elems[0].Kind != ElementLine {
		t.Fatalf("expected a single line element, got %+v", elems)
	}
	row := elems[0].Line.Rows[0]
	if len(row) != 3 {
		t.Fatalf("expected token/widget/token split, got %d fragments: %+v", len(row), row)
	}
	if row[0].Text != "hello" || row[1].Kind != InlineWidget || row[2].Text != "world" {
		t.Errorf("unexpected inline split: %+v", row)
	}
}

func TestElementsSplitsAtSoftBreaks(t *testing.T) {
	t.Parallel()

	s := newTestState("abcdefgh")
	s.Lines[0].SoftBreaks = []uint32{4}
	v := s.AsView()
	elems := v.Elements(0, 1)
	rows := elems[0].Line.Rows
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows after a soft break, got %d", len(rows))
	}
	if rows[0][0].Text != "abcd" || rows[1][0].Text != "efgh" {
		t.Errorf("unexpected row split: %+v", rows)
	}
}

func TestElementsInterleavesBlockWidgetsAndLineInlays(t *testing.T) {
	t.Parallel()

	s := newTestState("a\nb")
	s.BlockWidgets = []BlockWidgetEntry{{Line: 1, Bias: buffer.Before, Widget: Widget{ID: "diag"}}}
	s.LineInlays = []LineInlayEntry{{Line: 1, Inlay: LineInlay{Text: "note"}}}
	v := s.AsView()
	elems := v.Elements(0, 2)

	var kinds []ElementKind
	for _, e := range elems {
		kinds = append(kinds, e.Kind)
	}
	want := []ElementKind{ElementLine, ElementBlockWidget, ElementLineInlay, ElementLine}
	if len(kinds) != len(want) {
		t.Fatalf("Elements() kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kind[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestLineHiddenWhenFullyFolded(t *testing.T) {
	t.Parallel()

	s := newTestState("a\nb")
	s.Lines[1].Scale = 0
	v := s.AsView()
	if !v.Line(1).Hidden {
		t.Error("expected line with scale 0 to report Hidden")
	}
	if v.Line(0).Hidden {
		t.Error("expected line with scale 1 to not report Hidden")
	}
}
