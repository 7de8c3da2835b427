// ABOUTME: Pure cursor transforms over a read-only View: Left/Right/Up/Down
// ABOUTME: Horizontal motion clears the sticky column; vertical consults it

package moveops

import (
	"github.com/rivo/uniseg"

	"github.com/mauromedda/codeview-go/pkg/codeview/buffer"
	"github.com/mauromedda/codeview-go/pkg/codeview/strext"
	"github.com/mauromedda/codeview-go/pkg/codeview/view"
)

// Left moves sel's cursor back one grapheme cluster, joining onto the end
// of the previous line at the start of a line.
func Left(v view.View, sel buffer.Sel, extend bool) buffer.Sel {
	p := sel.Cursor.BiasedPos.Pos
	var next buffer.Pos
	switch {
	case p.Byte > 0:
		next = buffer.Pos{Line: p.Line, Byte: prevGraphemeBoundary(v.Text().Line(int(p.Line)), p.Byte)}
	case p.Line > 0:
		prevLine := v.Text().Line(int(p.Line) - 1)
		next = buffer.Pos{Line: p.Line - 1, Byte: uint32(len(prevLine))}
	default:
		next = p
	}
	return sel.WithPos(buffer.BiasedPos{Pos: next, Bias: buffer.Before}, extend)
}

// Right moves sel's cursor forward one grapheme cluster, joining onto the
// start of the next line at the end of a line.
func Right(v view.View, sel buffer.Sel, extend bool) buffer.Sel {
	p := sel.Cursor.BiasedPos.Pos
	line := v.Text().Line(int(p.Line))
	var next buffer.Pos
	switch {
	case int(p.Byte) < len(line):
		next = buffer.Pos{Line: p.Line, Byte: nextGraphemeBoundary(line, p.Byte)}
	case int(p.Line)+1 < v.LineCount():
		next = buffer.Pos{Line: p.Line + 1, Byte: 0}
	default:
		next = p
	}
	return sel.WithPos(buffer.BiasedPos{Pos: next, Bias: buffer.Before}, extend)
}

// Up moves sel's cursor to the line above at its sticky visual column,
// computing and caching that column from the current byte offset if the
// cursor doesn't already carry one.
func Up(v view.View, sel buffer.Sel, tabWidth uint32, extend bool) buffer.Sel {
	p := sel.Cursor.BiasedPos.Pos
	col := stickyColumn(v, sel, tabWidth)
	targetLine := p.Line
	if targetLine > 0 {
		targetLine--
	}
	return withVerticalMove(v, sel, targetLine, col, tabWidth, extend)
}

// Down moves sel's cursor to the line below at its sticky visual column.
func Down(v view.View, sel buffer.Sel, tabWidth uint32, extend bool) buffer.Sel {
	p := sel.Cursor.BiasedPos.Pos
	col := stickyColumn(v, sel, tabWidth)
	targetLine := p.Line
	if int(targetLine)+1 < v.LineCount() {
		targetLine++
	}
	return withVerticalMove(v, sel, targetLine, col, tabWidth, extend)
}

func withVerticalMove(v view.View, sel buffer.Sel, targetLine, col, tabWidth uint32, extend bool) buffer.Sel {
	line := v.Text().Line(int(targetLine))
	byteOff := byteForColumn(line, tabWidth, col)
	next := sel.WithPos(buffer.BiasedPos{Pos: buffer.Pos{Line: targetLine, Byte: byteOff}, Bias: buffer.Before}, extend)
	next.Cursor.Column = &col
	return next
}

func stickyColumn(v view.View, sel buffer.Sel, tabWidth uint32) uint32 {
	if sel.Cursor.Column != nil {
		return *sel.Cursor.Column
	}
	p := sel.Cursor.BiasedPos.Pos
	line := v.Text().Line(int(p.Line))
	return strext.ColumnCount(line[:p.Byte], tabWidth)
}

// byteForColumn returns the byte offset of the first grapheme cluster whose
// right edge (the column width of the line up to and including it) exceeds
// target, or len(line) when no cluster does.
func byteForColumn(line string, tabWidth, target uint32) uint32 {
	rest := line
	state := -1
	bytePos := 0
	for len(rest) > 0 {
		cluster, next, _, newState := uniseg.FirstGraphemeClusterInString(rest, state)
		if strext.ColumnCount(line[:bytePos+len(cluster)], tabWidth) > target {
			return uint32(bytePos)
		}
		bytePos += len(cluster)
		rest = next
		state = newState
	}
	return uint32(bytePos)
}

func nextGraphemeBoundary(line string, byteOffset uint32) uint32 {
	var cur uint32
	rest := line
	state := -1
	for len(rest) > 0 {
		cluster, next, _, newState := uniseg.FirstGraphemeClusterInString(rest, state)
		cur += uint32(len(cluster))
		if cur > byteOffset {
			return cur
		}
		rest = next
		state = newState
	}
	return uint32(len(line))
}

func prevGraphemeBoundary(line string, byteOffset uint32) uint32 {
	boundaries := []uint32{0}
	var cur uint32
	rest := line
	state := -1
	for len(rest) > 0 {
		cluster, next, _, newState := uniseg.FirstGraphemeClusterInString(rest, state)
		cur += uint32(len(cluster))
		boundaries = append(boundaries, cur)
		rest = next
		state = newState
	}
	for i := len(boundaries) - 1; i >= 0; i-- {
		if boundaries[i] < byteOffset {
			return boundaries[i]
		}
	}
	return 0
}
