// ABOUTME: The element stream: block widgets and line inlays interleaved
// ABOUTME: with lines, each split into wrapped rows

package view

import "sort"

// ElementKind discriminates the three shapes Elements can yield.
type ElementKind int

const (
	ElementLine ElementKind = iota
	ElementLineInlay
	ElementBlockWidget
)

// Element is one entry of the stream elements() produces: either a Line,
// a pinned LineInlay, or a pinned block Widget.
type Element struct {
	Kind        ElementKind
	Line        *LineElement
	LineInlay   *LineInlay
	BlockWidget *Widget
}

// LineElement is a document line projected into wrapped rows of inline
// content, with its fold state.
type LineElement struct {
	Index  int
	Hidden bool
	Scale  float64
	Rows   [][]InlineElement
}

// ScaledHeight is scale * unitHeight.
func (l LineElement) ScaledHeight(unitHeight float64) float64 {
	return l.Scale * unitHeight
}

// InlineKind discriminates token text from inlay text from inlay widgets
// within a line's inline stream.
type InlineKind int

const (
	InlineToken InlineKind = iota
	InlineInlayText
	InlineWidget
)

// InlineElement is one fragment of a line's inline stream: either a run of
// tokenized text, a zero-width text inlay, or a pinned widget.
type InlineElement struct {
	Kind   InlineKind
	Text   string
	Widget *Widget
	Start  uint32 // byte offset in the original line; widgets are zero-width
}

// Elements interleaves block widgets and line inlays pinned to lines
// [start, end) with the lines themselves, each built from the merged
// token/inlay stream and split at soft breaks.
func (v View) Elements(start, end int) []Element {
	var out []Element
	bwIdx, liIdx := 0, 0
	bw := v.s.BlockWidgets
	li := v.s.LineInlays

	emitBlockWidgets := func(line int, bias func(b BlockWidgetEntry) bool) {
		for bwIdx < len(bw) && int(bw[bwIdx].Line) == line && bias(bw[bwIdx]) {
			w := bw[bwIdx].Widget
			out = append(out, Element{Kind: ElementBlockWidget, BlockWidget: &w})
			bwIdx++
		}
	}

	for line := start; line < end; line++ {
		emitBlockWidgets(line, func(e BlockWidgetEntry) bool { return e.Bias == 0 }) // Before
		for liIdx < len(li) && int(li[liIdx].Line) == line {
			inlay := li[liIdx].Inlay
			out = append(out, Element{Kind: ElementLineInlay, LineInlay: &inlay})
			liIdx++
		}
		out = append(out, Element{Kind: ElementLine, Line: v.buildLineElement(line)})
		emitBlockWidgets(line, func(e BlockWidgetEntry) bool { return e.Bias == 1 }) // After
	}
	return out
}

// InlineElements returns line's merged token/inlay stream unsplit by soft
// breaks, the raw material the reflow engine walks to decide where those
// breaks go.
func (v View) InlineElements(line int) []InlineElement {
	return v.mergedInline(line, v.s.Lines[line])
}

func (v View) buildLineElement(line int) *LineElement {
	st := v.s.Lines[line]
	inline := v.mergedInline(line, st)
	return &LineElement{
		Index:  line,
		Hidden: st.Scale == 0,
		Scale:  st.Scale,
		Rows:   splitRows(inline, st.SoftBreaks),
	}
}

type inlayPoint struct {
	byte   uint32
	bias   int // 0 = Before, 1 = After
	text   string
	widget *Widget
}

// mergedInline interleaves tokens with this line's inline text/widget
// inlays, ordered by byte offset with bias breaking ties.
func (v View) mergedInline(line int, st LineState) []InlineElement {
	points := make([]inlayPoint, 0, len(st.InlineTextInlays)+len(st.InlineWidgetInlays))
	for _, ti := range st.InlineTextInlays {
		points = append(points, inlayPoint{byte: ti.Byte, text: ti.Text})
	}
	for _, wi := range st.InlineWidgetInlays {
		bias := 0
		if wi.Bias == 1 {
			bias = 1
		}
		w := wi.Widget
		points = append(points, inlayPoint{byte: wi.Byte, bias: bias, widget: &w})
	}
	sort.SliceStable(points, func(i, j int) bool {
		if points[i].byte != points[j].byte {
			return points[i].byte < points[j].byte
		}
		return points[i].bias < points[j].bias
	})

	var tokens []Token
	if v.s.Tokenizer != nil {
		tokens = v.s.Tokenizer.Tokens(line)
	} else {
		tokens = []Token{{Text: v.s.Text.Line(line)}}
	}

	var out []InlineElement
	pIdx := 0
	var tokByte uint32
	for _, tok := range tokens {
		tokStart := tokByte
		tokEnd := tokByte + uint32(len(tok.Text))
		local := tokStart
		for pIdx < len(points) && points[pIdx].byte <= tokEnd {
			p := points[pIdx]
			if p.byte > local {
				out = append(out, InlineElement{Kind: InlineToken, Text: tok.Text[local-tokStart : p.byte-tokStart], Start: local})
				local = p.byte
			}
			if p.widget != nil {
				out = append(out, InlineElement{Kind: InlineWidget, Widget: p.widget, Start: p.byte})
			} else {
				out = append(out, InlineElement{Kind: InlineInlayText, Text: p.text, Start: p.byte})
			}
			pIdx++
		}
		if local < tokEnd {
			out = append(out, InlineElement{Kind: InlineToken, Text: tok.Text[local-tokStart:], Start: local})
		}
		tokByte = tokEnd
	}
	for ; pIdx < len(points); pIdx++ {
		p := points[pIdx]
		if p.widget != nil {
			out = append(out, InlineElement{Kind: InlineWidget, Widget: p.widget, Start: p.byte})
		} else {
			out = append(out, InlineElement{Kind: InlineInlayText, Text: p.text, Start: p.byte})
		}
	}
	return out
}

// splitRows cuts a line's merged inline stream into rows at the given
// soft-break byte offsets, splitting a token fragment in two when a break
// falls inside it. Widgets are zero-width and never split.
func splitRows(elems []InlineElement, breaks []uint32) [][]InlineElement {
	if len(breaks) == 0 {
		return [][]InlineElement{elems}
	}
	var rows [][]InlineElement
	var cur []InlineElement
	bi := 0
	for _, el := range elems {
		for bi < len(breaks) && breaks[bi] <= el.Start {
			rows = append(rows, cur)
			cur = nil
			bi++
		}
		if el.Kind == InlineWidget {
			cur = append(cur, el)
			continue
		}
		end := el.Start + uint32(len(el.Text))
		for bi < len(breaks) && breaks[bi] > el.Start && breaks[bi] < end {
			cut := breaks[bi] - el.Start
			cur = append(cur, InlineElement{Kind: el.Kind, Text: el.Text[:cut], Start: el.Start})
			rows = append(rows, cur)
			cur = nil
			el.Text = el.Text[cut:]
			el.Start = breaks[bi]
			bi++
		}
		cur = append(cur, el)
	}
	rows = append(rows, cur)
	return rows
}
