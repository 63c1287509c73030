// Package stemmer reduces Russian words to their Snowball stem.
package stemmer

import (
	"errors"
	"fmt"

	"github.com/kljensen/snowball"

	"stemcheck/internal/analysis"
)

// ErrUnstemmable is returned for words containing runes outside the
// analysis alphabet.
var ErrUnstemmable = errors.New("word cannot be stemmed")

const language = "russian"

// Snowball stems with the Russian Snowball algorithm.
type Snowball struct{}

// New returns a Russian Snowball stemmer.
func New() Snowball { return Snowball{} }

// Stem returns the stem of word. Stop words are stemmed too.
func (Snowball) Stem(word string) (string, error) {
	if !analysis.InAlphabet(word) {
		return "", fmt.Errorf("%w: %q", ErrUnstemmable, word)
	}
	stem, err := snowball.Stem(word, language, true)
	if err != nil {
		return "", fmt.Errorf("stem %q: %w", word, err)
	}
	return stem, nil
}
