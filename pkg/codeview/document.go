// ABOUTME: Document is the single exclusive-access entry point for every
// ABOUTME: mutating operation: text edits, cursor motion, reflow, folding

package codeview

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mauromedda/codeview-go/pkg/codeview/buffer"
	"github.com/mauromedda/codeview-go/pkg/codeview/internal/clog"
	"github.com/mauromedda/codeview-go/pkg/codeview/view"
)

// ErrPosOutOfRange is returned by the boundary mutators (those that take a
// raw buffer.Pos supplied by the host) when the position names a line or
// byte offset the current document doesn't have. A caller that trips this
// has violated a documented precondition; it is not a programming-invariant
// violation internal to the core, so it comes back as an error rather than
// a panic.
var ErrPosOutOfRange = errors.New("codeview: position out of range")

// Document owns the document state bundle (text, per-line derived arrays,
// selections, fold sets, summed heights) and is the only thing allowed to
// mutate it. A mutex guards the aggregate, the same discipline an editor's
// buffer type uses to guard its own lines/row/col — a caller driving a
// Document from a single goroutine pays nothing for it, and one sharing it
// across goroutines still gets exclusive access per call. Reading goes
// through AsView, a fresh projection created per call, never a stored
// reference.
type Document struct {
	mu    sync.Mutex
	state *view.State
}

// New builds a Document over src with the given settings, tokenizer, and
// per-row unit height used by summed-height accumulation. tok may be nil,
// in which case the view falls back to untyped single-token lines.
func New(src string, settings view.Settings, tok view.Tokenizer, unitHeight float64) *Document {
	return &Document{state: view.NewState(buffer.NewText(src), settings, tok, unitHeight)}
}

// AsView returns a fresh read-only projection of the current state. The
// result must not be retained across a subsequent mutating call on d.
func (d *Document) AsView() view.View {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.AsView()
}

// validatePos checks that pos names an existing line and an in-bounds byte
// offset within it. Internal callers that already hold the lock call this
// directly; exported boundary methods call it before mutating.
func (d *Document) validatePos(pos buffer.Pos) error {
	s := d.state
	if int(pos.Line) >= s.Text.LineCount() {
		clog.Warn("rejecting pos %v: line out of range (have %d lines)", pos, s.Text.LineCount())
		return fmt.Errorf("codeview: line %d (have %d): %w", pos.Line, s.Text.LineCount(), ErrPosOutOfRange)
	}
	if int(pos.Byte) > len(s.Text.Line(int(pos.Line))) {
		clog.Warn("rejecting pos %v: byte out of range on line %d", pos, pos.Line)
		return fmt.Errorf("codeview: byte %d on line %d: %w", pos.Byte, pos.Line, ErrPosOutOfRange)
	}
	return nil
}
