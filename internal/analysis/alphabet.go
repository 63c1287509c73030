package analysis

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Alphabet is the set of runes a token may consist of: the 33 Russian
// letters plus the hyphen.
const Alphabet = "абвгдеёжзийклмнопрстуфхцчшщьыъэя-"

// MinTokenLength is the shortest token, in runes, that passes the filter.
const MinTokenLength = 3

var alphabetSet = func() map[rune]struct{} {
	m := make(map[rune]struct{}, utf8.RuneCountInString(Alphabet))
	for _, r := range Alphabet {
		m[r] = struct{}{}
	}
	return m
}()

// InAlphabet reports whether every rune of word belongs to Alphabet.
// The empty word is not in the alphabet.
func InAlphabet(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if _, ok := alphabetSet[r]; !ok {
			return false
		}
	}
	return true
}

// Normalize lowercases word and folds ё into е.
func Normalize(word string) string {
	return normalize(cases.Lower(language.Russian), word)
}

func normalize(lower cases.Caser, word string) string {
	return strings.ReplaceAll(lower.String(word), "ё", "е")
}

// AlphabetFilter passes normalized tokens of at least MinTokenLength runes
// made only of Alphabet runes.
type AlphabetFilter struct {
	input TokenStream
	lower cases.Caser
}

// NewAlphabetFilter wraps input.
func NewAlphabetFilter(input TokenStream) *AlphabetFilter {
	return &AlphabetFilter{input: input, lower: cases.Lower(language.Russian)}
}

// Next pulls from upstream until a token passes or upstream is exhausted.
func (f *AlphabetFilter) Next() (string, bool) {
	for {
		tok, ok := f.input.Next()
		if !ok {
			return "", false
		}
		// сначала нормализация, потом проверка длины
		tok = normalize(f.lower, tok)
		if utf8.RuneCountInString(tok) < MinTokenLength {
			continue
		}
		if InAlphabet(tok) {
			return tok, true
		}
	}
}
