// Package translate renders English text word-for-word through a static
// dictionary. There is no grammar or context handling; word order and
// punctuation of the source are kept as they are.
package translate

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Token is one segment of the input: a word or a run of separator characters.
type Token struct {
	Text string
	Word bool
}

// Tokenize splits text at Unicode word boundaries (UAX #29). Every byte of the
// input lands in exactly one token, so joining the token texts yields text.
func Tokenize(text string) []Token {
	var tokens []Token
	state := -1
	rest := text
	for len(rest) > 0 {
		var segment string
		segment, rest, state = uniseg.FirstWordInString(rest, state)
		tokens = append(tokens, Token{Text: segment, Word: isWord(segment)})
	}
	return tokens
}

func isWord(segment string) bool {
	for _, r := range segment {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// Substitute replaces each token found in the table and returns a slice of the
// same length. Blank tokens are never looked up.
func (t *Table) Substitute(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	for i, tok := range tokens {
		out[i] = tok
		if strings.TrimSpace(tok.Text) == "" {
			continue
		}
		if text, ok := t.Lookup(tok.Text); ok {
			out[i].Text = text
		}
	}
	return out
}

// Translate lowercases text, substitutes known words and joins the result.
func (t *Table) Translate(text string) string {
	if text == "" {
		return ""
	}
	tokens := t.Substitute(Tokenize(strings.ToLower(text)))

	var b strings.Builder
	b.Grow(len(text))
	for _, tok := range tokens {
		b.WriteString(tok.Text)
	}
	return b.String()
}

// Translate runs text through the built-in table.
func Translate(text string) string {
	return defaultTable.Translate(text)
}
