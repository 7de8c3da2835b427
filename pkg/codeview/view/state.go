// ABOUTME: State is the mutable aggregate: text, per-line/global derived
// ABOUTME: arrays, selections. The orchestrator mutates it; View reads it

package view

import "github.com/mauromedda/codeview-go/pkg/codeview/buffer"

// MaxColumn is an optional wrap column: Set false means unbounded.
type MaxColumn struct {
	Value uint32
	Set   bool
}

// State is the document-state bundle: a single aggregate owned by the
// caller. Mutators (the Document in the root package) take exclusive
// access to it; View is a read-only projection created fresh per read,
// never a stored pointer-bundle of its own.
type State struct {
	Text  buffer.Text
	Lines []LineState

	LineInlays    []LineInlayEntry
	BlockWidgets  []BlockWidgetEntry
	SummedHeights []float64

	Sels buffer.Set

	Settings   Settings
	MaxColumn  MaxColumn
	UnitHeight float64

	FoldingLines   map[uint32]struct{}
	UnfoldingLines map[uint32]struct{}

	Tokenizer Tokenizer
}

// NewState builds the initial aggregate for text, with a single caret at
// the document start and every line fully expanded.
func NewState(text buffer.Text, settings Settings, tok Tokenizer, unitHeight float64) *State {
	lines := make([]LineState, text.LineCount())
	for i := range lines {
		lines[i] = NewLineState()
	}
	s := &State{
		Text:           text,
		Lines:          lines,
		Sels:           buffer.NewSet(buffer.NewCaret(buffer.Pos{})),
		Settings:       settings,
		UnitHeight:     unitHeight,
		FoldingLines:   make(map[uint32]struct{}),
		UnfoldingLines: make(map[uint32]struct{}),
		Tokenizer:      tok,
	}
	if tok != nil {
		tok.Retokenize(buffer.Diff{}, text)
	}
	return s
}

// AsView returns a fresh read-only projection of the current state.
func (s *State) AsView() View { return View{s: s} }
