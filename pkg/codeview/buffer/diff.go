// ABOUTME: Retain/Insert/Delete diff sequence with composition and application
// ABOUTME: The edit algebra every mutation in the core ultimately reduces to

package buffer

import "strings"

// OpKind enumerates the three diff operation shapes.
type OpKind int

const (
	OpRetain OpKind = iota
	OpInsert
	OpDelete
)

// Op is a single diff operation. Len is always populated; Text holds the
// inserted bytes for OpInsert and is unused otherwise.
type Op struct {
	Kind OpKind
	Len  Length
	Text string // only meaningful when Kind == OpInsert
}

// Retain returns a Retain operation of the given length.
func Retain(l Length) Op { return Op{Kind: OpRetain, Len: l} }

// Delete returns a Delete operation of the given length.
func Delete(l Length) Op { return Op{Kind: OpDelete, Len: l} }

// Insert returns an Insert operation carrying text. Len is derived from
// text's line/byte shape so callers never have to compute it by hand.
func Insert(text string) Op {
	return Op{Kind: OpInsert, Len: lengthOfString(text), Text: text}
}

func lengthOfString(s string) Length {
	lines := uint32(0)
	lastNewline := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines++
			lastNewline = i
		}
	}
	return Length{Lines: lines, Bytes: uint32(len(s) - lastNewline - 1)}
}

// Diff is an ordered sequence of operations describing a single edit.
type Diff struct {
	Ops []Op
}

// NewDiff returns an empty diff.
func NewDiff() Diff { return Diff{} }

// Push appends an operation, merging it with the preceding operation of
// the same kind when possible so a composed diff stays minimal.
func (d Diff) Push(op Op) Diff {
	if op.Kind == OpInsert && op.Text == "" {
		return d
	}
	if op.Kind != OpInsert && op.Len.IsZero() {
		return d
	}
	if n := len(d.Ops); n > 0 && d.Ops[n-1].Kind == op.Kind {
		last := d.Ops[n-1]
		if op.Kind == OpInsert {
			last.Text += op.Text
			last.Len = lengthOfString(last.Text)
		} else {
			last.Len = last.Len.Add(op.Len)
		}
		d.Ops[n-1] = last
		return d
	}
	d.Ops = append(d.Ops, op)
	return d
}

// Compose returns the diff equivalent to applying d, then other, to the
// same text, as a single diff against d's original input. d's output must
// be other's input: other is expressed against the text produced by d.
func (d Diff) Compose(other Diff) Diff {
	result := NewDiff()
	dOps := append([]Op(nil), d.Ops...)
	oOps := append([]Op(nil), other.Ops...)

	for len(dOps) > 0 || len(oOps) > 0 {
		switch {
		case len(dOps) > 0 && dOps[0].Kind == OpInsert:
			dOp := dOps[0]
			switch {
			case len(oOps) == 0:
				result = result.Push(dOp)
				dOps = dOps[1:]
			case oOps[0].Kind == OpInsert:
				result = result.Push(oOps[0])
				oOps = oOps[1:]
			case oOps[0].Kind == OpRetain:
				n := minLength(dOp.Len, oOps[0].Len)
				head, tail := sliceByLength(dOp.Text, n)
				result = result.Push(Insert(head))
				dOps = replaceHead(dOps, Insert(tail))
				oOps = shrinkHead(oOps, n)
			default: // OpDelete: cancels the corresponding part of the insert
				n := minLength(dOp.Len, oOps[0].Len)
				_, tail := sliceByLength(dOp.Text, n)
				dOps = replaceHead(dOps, Insert(tail))
				oOps = shrinkHead(oOps, n)
			}
		case len(oOps) > 0 && oOps[0].Kind == OpInsert:
			result = result.Push(oOps[0])
			oOps = oOps[1:]
		case len(dOps) > 0 && dOps[0].Kind == OpDelete:
			result = result.Push(dOps[0])
			dOps = dOps[1:]
		case len(oOps) > 0 && oOps[0].Kind == OpDelete:
			if len(dOps) == 0 {
				result = result.Push(oOps[0])
				oOps = oOps[1:]
				continue
			}
			n := minLength(dOps[0].Len, oOps[0].Len)
			result = result.Push(Delete(n))
			dOps = shrinkHead(dOps, n)
			oOps = shrinkHead(oOps, n)
		case len(dOps) == 0:
			result = result.Push(oOps[0])
			oOps = oOps[1:]
		case len(oOps) == 0:
			result = result.Push(dOps[0])
			dOps = dOps[1:]
		default: // both Retain
			n := minLength(dOps[0].Len, oOps[0].Len)
			result = result.Push(Retain(n))
			dOps = shrinkHead(dOps, n)
			oOps = shrinkHead(oOps, n)
		}
	}
	return result
}

func replaceHead(ops []Op, op Op) []Op {
	if op.Kind == OpInsert && op.Text == "" {
		return ops[1:]
	}
	ops[0] = op
	return ops
}

func shrinkHead(ops []Op, n Length) []Op {
	rest := subLength(ops[0].Len, n)
	if rest.IsZero() {
		return ops[1:]
	}
	ops[0] = Op{Kind: ops[0].Kind, Len: rest}
	return ops
}

func subLength(a, b Length) Length {
	if b.IsZero() {
		return a
	}
	if a.Lines != b.Lines {
		return Length{Lines: a.Lines - b.Lines, Bytes: a.Bytes}
	}
	return Length{Lines: 0, Bytes: a.Bytes - b.Bytes}
}

func minLength(a, b Length) Length {
	if a.Lines != b.Lines {
		if a.Lines < b.Lines {
			return a
		}
		return b
	}
	if a.Bytes < b.Bytes {
		return a
	}
	return b
}

// sliceByLength splits s into a prefix of exactly length l and the
// remaining suffix. l must describe a valid prefix of s (l.Lines
// newlines followed by l.Bytes more bytes).
func sliceByLength(s string, l Length) (head, tail string) {
	pos := 0
	for remaining := l.Lines; remaining > 0; remaining-- {
		idx := strings.IndexByte(s[pos:], '\n')
		pos += idx + 1
	}
	pos += int(l.Bytes)
	return s[:pos], s[pos:]
}

// Apply runs d against lines (a Text's line slice, lines with no embedded
// newlines) and returns the resulting lines.
func Apply(lines []string, d Diff) []string {
	var out []string
	var cur strings.Builder
	srcLine := 0
	var srcByte uint32

	flush := func() {
		out = append(out, cur.String())
		cur.Reset()
	}

	for _, op := range d.Ops {
		switch op.Kind {
		case OpRetain:
			if op.Len.Lines == 0 {
				cur.WriteString(lines[srcLine][srcByte : srcByte+op.Len.Bytes])
				srcByte += op.Len.Bytes
				continue
			}
			cur.WriteString(lines[srcLine][srcByte:])
			flush()
			srcLine++
			for k := uint32(1); k < op.Len.Lines; k++ {
				out = append(out, lines[srcLine])
				srcLine++
			}
			cur.WriteString(lines[srcLine][:op.Len.Bytes])
			srcByte = op.Len.Bytes
		case OpDelete:
			if op.Len.Lines == 0 {
				srcByte += op.Len.Bytes
				continue
			}
			srcLine += int(op.Len.Lines)
			srcByte = op.Len.Bytes
		case OpInsert:
			parts := strings.Split(op.Text, "\n")
			cur.WriteString(parts[0])
			for _, part := range parts[1:] {
				flush()
				cur.WriteString(part)
			}
		}
	}
	cur.WriteString(lines[srcLine][srcByte:])
	flush()
	for k := srcLine + 1; k < len(lines); k++ {
		out = append(out, lines[k])
	}
	return out
}

// ApplyDiffMode decides, for an insertion landing exactly at a position,
// whether the position is pushed past the insertion or stays before it.
type ApplyDiffMode int

const (
	InsertBefore ApplyDiffMode = iota
	InsertAfter
)

// ApplyToPos rebases p across d under the given insertion tie-break mode.
func ApplyToPos(p Pos, d Diff, mode ApplyDiffMode) Pos {
	src := Pos{}
	dst := Pos{}
	for _, op := range d.Ops {
		switch op.Kind {
		case OpRetain:
			end := src.Add(op.Len)
			if p.Less(end) {
				return dst.Add(p.Sub(src))
			}
			dst = dst.Add(op.Len)
			src = end
		case OpDelete:
			end := src.Add(op.Len)
			if p.Less(end) {
				return dst
			}
			src = end
		case OpInsert:
			end := dst.Add(op.Len)
			if src.Less(p) {
				dst = end
			} else if p == src && mode == InsertBefore {
				dst = end
			}
		}
	}
	return dst.Add(p.Sub(src))
}
