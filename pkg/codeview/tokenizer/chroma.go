// ABOUTME: Chroma-backed concrete Tokenizer adapter: re-lexes the whole
// ABOUTME: buffer on every Retokenize call, chroma lexers are not incremental

package tokenizer

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/mauromedda/codeview-go/pkg/codeview/buffer"
	"github.com/mauromedda/codeview-go/pkg/codeview/view"
)

// Chroma implements view.Tokenizer over chroma/v2's lexer registry. It
// ignores the diff argument to Retokenize and re-lexes text in full —
// chroma's lexers operate on a complete source string, so there is no
// incremental path to exploit here. This satisfies the idempotent-replay
// requirement trivially: identical text always yields identical tokens.
type Chroma struct {
	lexer chroma.Lexer
	lines [][]view.Token
}

// NewChroma selects a lexer by filename (falling back to a plain-text
// lexer when chroma has no match) and coalesces adjacent same-type tokens,
// matching chroma's own recommended usage.
func NewChroma(filename string) *Chroma {
	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &Chroma{lexer: chroma.Coalesce(lexer)}
}

// NewChromaForLanguage selects a lexer by chroma language name (e.g. "go",
// "python") instead of by filename.
func NewChromaForLanguage(name string) *Chroma {
	lexer := lexers.Get(name)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &Chroma{lexer: chroma.Coalesce(lexer)}
}

// Retokenize re-lexes text.String() and distributes the resulting tokens
// across per-line slices, splitting any token whose value spans a
// newline.
func (c *Chroma) Retokenize(_ buffer.Diff, text buffer.Text) {
	lineCount := text.LineCount()
	it, err := c.lexer.Tokenise(nil, text.String())
	if err != nil {
		c.lines = plainTextFallback(text)
		return
	}

	lines := make([][]view.Token, lineCount)
	lineIdx := 0
	for _, tok := range it.Tokens() {
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if part != "" && lineIdx < lineCount {
				lines[lineIdx] = append(lines[lineIdx], view.Token{Text: part, Kind: mapTokenKind(tok.Type)})
			}
			if i < len(parts)-1 && lineIdx < lineCount-1 {
				lineIdx++
			}
		}
	}
	c.lines = lines
}

// Tokens returns the token stream cached for line from the last Retokenize.
func (c *Chroma) Tokens(line int) []view.Token {
	if line < 0 || line >= len(c.lines) {
		return nil
	}
	return c.lines[line]
}

func plainTextFallback(text buffer.Text) [][]view.Token {
	lines := make([][]view.Token, text.LineCount())
	for i := range lines {
		if s := text.Line(i); s != "" {
			lines[i] = []view.Token{{Text: s, Kind: view.TokenText}}
		}
	}
	return lines
}

func mapTokenKind(tt chroma.TokenType) view.TokenKind {
	switch {
	case tt.InCategory(chroma.Keyword):
		return view.TokenKeyword
	case tt.InCategory(chroma.LiteralString):
		return view.TokenString
	case tt.InCategory(chroma.Comment):
		return view.TokenComment
	case tt.InCategory(chroma.LiteralNumber):
		return view.TokenNumber
	case tt.InCategory(chroma.Operator):
		return view.TokenOperator
	case tt.InCategory(chroma.Name):
		return view.TokenIdentifier
	default:
		return view.TokenText
	}
}
