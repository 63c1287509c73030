package analysis

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// TokenStream is a pull-based source of tokens. Next reports false once the
// stream is exhausted; an exhausted stream stays exhausted.
type TokenStream interface {
	Next() (string, bool)
}

// Tokenizer splits buffered text into maximal runs of letters and ASCII
// digits. Rejecting mixed runs is left to AlphabetFilter.
type Tokenizer struct {
	text string
	pos  int
}

// NewTokenizer returns a tokenizer positioned at the start of text.
// The text is NFC-composed first so that a base letter followed by a
// combining diaeresis is read as one letter.
func NewTokenizer(text string) *Tokenizer {
	return &Tokenizer{text: norm.NFC.String(text)}
}

// Next returns the next run.
func (t *Tokenizer) Next() (string, bool) {
	// пропускаем всё, что не буква и не цифра
	for t.pos < len(t.text) {
		r, size := utf8.DecodeRuneInString(t.text[t.pos:])
		if isTokenRune(r) {
			break
		}
		t.pos += size
	}
	if t.pos >= len(t.text) {
		return "", false
	}
	start := t.pos
	for t.pos < len(t.text) {
		r, size := utf8.DecodeRuneInString(t.text[t.pos:])
		if !isTokenRune(r) {
			break
		}
		t.pos += size
	}
	return t.text[start:t.pos], true
}

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || ('0' <= r && r <= '9')
}

// Tokenize drains a fresh tokenizer over text.
func Tokenize(text string) []string {
	var out []string
	t := NewTokenizer(text)
	for {
		tok, ok := t.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

// Collect drains any token stream into a slice.
func Collect(ts TokenStream) []string {
	var out []string
	for {
		tok, ok := ts.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}
