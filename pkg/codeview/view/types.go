// ABOUTME: Per-line and global derived state types: inlays, widgets, scale
// ABOUTME: Array-of-structs layout: the per-line arrays grouped into one LineState per line

package view

import (
	"github.com/google/uuid"

	"github.com/mauromedda/codeview-go/pkg/codeview/buffer"
)

// Settings carries the column-arithmetic knobs the reflow engine and
// motion helpers both need. It is a plain struct constructed by the host;
// this core does not load it from a file.
type Settings struct {
	TabWidth uint32
}

// Widget is a fixed-size inline or block decoration the host supplies
// (diagnostics, code-lens hints, collapsed-region markers). ID is a stable
// identity so a host can correlate the same widget across frames without
// relying on its position in a slice, which shifts as lines are edited.
type Widget struct {
	ID          string
	ColumnCount uint32
	Height      uint32
}

// NewWidget returns a Widget with a freshly generated stable ID. Hosts
// that need to correlate a widget with something of their own (a
// diagnostic, a code-lens entry) should keep that association keyed by
// this ID rather than by the widget's position in a LineState slice.
func NewWidget(columnCount, height uint32) Widget {
	return Widget{ID: uuid.NewString(), ColumnCount: columnCount, Height: height}
}

// InlineTextInlay is a zero-width run of text spliced into a line's
// inline element stream at Byte without existing in the underlying Text.
type InlineTextInlay struct {
	Byte uint32
	Text string
}

// InlineWidgetInlay pins a Widget into a line's inline element stream at
// Byte, using Bias to order it relative to other inlays tied at the same
// byte offset.
type InlineWidgetInlay struct {
	Byte   uint32
	Bias   buffer.Bias
	Widget Widget
}

// LineState groups a line's derived arrays (inlays, soft breaks, wrap and
// fold state) into one struct so splicing lines after an edit is a single
// slice operation instead of six separate ones, an array-of-structs layout
// traded for per-field truncation.
type LineState struct {
	InlineTextInlays     []InlineTextInlay
	InlineWidgetInlays   []InlineWidgetInlay
	SoftBreaks           []uint32
	StartColumnAfterWrap uint32
	FoldColumn           uint32
	Scale                float64
}

// NewLineState returns the zero state for a freshly inserted line: no
// inlays, no soft breaks, fully expanded.
func NewLineState() LineState {
	return LineState{Scale: 1.0}
}

// LineInlay is content inserted between two lines that is not itself a
// line of the document (e.g. a diagnostic message rendered under a line).
type LineInlay struct {
	Text   string
	Height uint32
}

// LineInlayEntry pins a LineInlay at a line index, ordered by Line.
type LineInlayEntry struct {
	Line  uint32
	Inlay LineInlay
}

// BlockWidgetEntry pins a Widget at a line index, ordered by (Line, Bias).
// Bias Before places the widget immediately above the line; After places
// it immediately below.
type BlockWidgetEntry struct {
	Line   uint32
	Bias   buffer.Bias
	Widget Widget
}
