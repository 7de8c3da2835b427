// ABOUTME: The opaque tokenizer contract the view projection consumes
// ABOUTME: Retokenize mutates the adapter's internal cache; Tokens reads it

package view

import "github.com/mauromedda/codeview-go/pkg/codeview/buffer"

// TokenKind classifies a Token for styling; it is intentionally coarse —
// the core only needs enough structure to merge tokens with inlays, not a
// full highlighting taxonomy.
type TokenKind int

const (
	TokenText TokenKind = iota
	TokenKeyword
	TokenString
	TokenComment
	TokenNumber
	TokenOperator
	TokenIdentifier
)

// Token is one lexical run within a line. Concatenating a line's tokens in
// order must reproduce the line's text exactly.
type Token struct {
	Text string
	Kind TokenKind
}

// Tokenizer is consumed opaquely: the view only ever calls Retokenize
// after a text mutation and Tokens when building the inline element
// stream. It must be idempotent under identical (diff, text) replay —
// re-running Retokenize with the same arguments must leave Tokens(line)
// unchanged for every line.
type Tokenizer interface {
	Retokenize(diff buffer.Diff, text buffer.Text)
	Tokens(line int) []Token
}
