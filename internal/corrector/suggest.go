package corrector

import (
	"io"

	"github.com/rs/zerolog/log"

	"stemcheck/internal/analysis"
)

// SuggestionFilter turns every token into a record carrying the lexicon's
// ranked candidates. It never drops a token.
type SuggestionFilter struct {
	input   analysis.TokenStream
	lexicon Lexicon
	budget  int
	stemmer Stemmer // не nil только при StemFallback
}

// NewSuggestionFilter asks lexicon for up to budget candidates per
// unknown token.
func NewSuggestionFilter(input analysis.TokenStream, lexicon Lexicon, budget int) *SuggestionFilter {
	return &SuggestionFilter{input: input, lexicon: lexicon, budget: budget}
}

// WithStemFallback makes the filter retry with the token's stem when the
// token itself got no candidates.
func (f *SuggestionFilter) WithStemFallback(s Stemmer) *SuggestionFilter {
	f.stemmer = s
	return f
}

func (f *SuggestionFilter) Next() (Record, error) {
	tok, ok := f.input.Next()
	if !ok {
		return Record{}, io.EOF
	}
	rec := Record{Source: tok}
	if f.lexicon.Exists(tok) {
		return rec, nil
	}
	rec.Candidates = f.suggest(tok)
	if len(rec.Candidates) == 0 && f.stemmer != nil {
		cands, err := f.fromStem(tok)
		if err != nil {
			return Record{}, err
		}
		rec.Candidates = cands
	}
	return rec, nil
}

func (f *SuggestionFilter) suggest(word string) []string {
	cands, err := f.lexicon.Suggest(word, f.budget)
	if err != nil {
		// ошибка лексикона не фатальна: просто нет подсказок
		log.Warn().Err(err).Str("token", word).Msg("lexicon suggest failed")
		return nil
	}
	return cands
}

func (f *SuggestionFilter) fromStem(word string) ([]string, error) {
	stem, err := f.stemmer.Stem(word)
	if err != nil {
		return nil, err
	}
	if stem == word || stem == "" {
		return nil, nil
	}
	if f.lexicon.Exists(stem) {
		return []string{stem}, nil
	}
	return f.suggest(stem), nil
}
