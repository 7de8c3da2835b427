// ABOUTME: String helpers for column arithmetic used by reflow and motion
// ABOUTME: Tab-aware column counting, whitespace-boundary splitting, indentation

package strext

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ColumnCount returns the number of display columns s occupies when laid
// out at the current cursor column 0, expanding each tab to the next
// multiple of tabWidth. Grapheme clusters wider than one cell (East Asian
// wide characters, some emoji) count for their full width.
func ColumnCount(s string, tabWidth uint32) uint32 {
	var col uint32
	rest := s
	state := -1
	for len(rest) > 0 {
		cluster, next, _, newState := uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "\t" {
			col = nextTabStop(col, tabWidth)
		} else {
			col += uint32(graphemeWidth(cluster))
		}
		rest = next
		state = newState
	}
	return col
}

func nextTabStop(col, tabWidth uint32) uint32 {
	if tabWidth == 0 {
		return col + 1
	}
	return col + (tabWidth - col%tabWidth)
}

func graphemeWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// Indentation returns the leading run of space and tab bytes in s.
func Indentation(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[:i]
}

// SplitWhitespaceBoundaries splits s into a sequence of substrings that
// alternate between whitespace runs and non-whitespace runs, preserving
// every byte of s across the returned fragments in order. An empty s
// yields no fragments.
func SplitWhitespaceBoundaries(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	inSpace := isSpaceByte(s[0])
	for i := 1; i < len(s); i++ {
		sp := isSpaceByte(s[i])
		if sp != inSpace {
			out = append(out, s[start:i])
			start = i
			inSpace = sp
		}
	}
	out = append(out, s[start:])
	return out
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t'
}
