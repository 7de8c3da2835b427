// ABOUTME: Grapheme-cluster-aware neighbor positions for Delete/Backspace
// ABOUTME: Crosses line boundaries by joining onto the adjacent line

package editops

import (
	"github.com/rivo/uniseg"

	"github.com/mauromedda/codeview-go/pkg/codeview/buffer"
)

func nextBoundaryPos(text buffer.Text, p buffer.Pos) buffer.Pos {
	line := text.Line(int(p.Line))
	if int(p.Byte) < len(line) {
		return buffer.Pos{Line: p.Line, Byte: nextGraphemeBoundary(line, p.Byte)}
	}
	if int(p.Line)+1 < text.LineCount() {
		return buffer.Pos{Line: p.Line + 1, Byte: 0}
	}
	return p
}

func prevBoundaryPos(text buffer.Text, p buffer.Pos) buffer.Pos {
	if p.Byte > 0 {
		line := text.Line(int(p.Line))
		return buffer.Pos{Line: p.Line, Byte: prevGraphemeBoundary(line, p.Byte)}
	}
	if p.Line > 0 {
		prev := text.Line(int(p.Line) - 1)
		return buffer.Pos{Line: p.Line - 1, Byte: uint32(len(prev))}
	}
	return p
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
