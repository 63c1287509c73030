package corrector

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"stemcheck/internal/analysis"
)

var ErrMissingDependency = errors.New("missing pipeline dependency")

// Deps are the collaborators a pipeline runs against. Frequencies and
// StopWords may be nil.
type Deps struct {
	Lexicon     Lexicon
	Stemmer     Stemmer
	Similarity  Similarity
	Frequencies Frequencies
	StopWords   analysis.StopWords
}

func (d Deps) validate() error {
	switch {
	case d.Lexicon == nil:
		return fmt.Errorf("%w: lexicon", ErrMissingDependency)
	case d.Stemmer == nil:
		return fmt.Errorf("%w: stemmer", ErrMissingDependency)
	case d.Similarity == nil:
		return fmt.Errorf("%w: similarity", ErrMissingDependency)
	}
	return nil
}

// Pipeline pulls text through
// tokenizer → alphabet → stop words → suggestions → confidence → stems → similarity.
// Once Next returns an error, including io.EOF, it keeps returning it.
type Pipeline struct {
	out RecordStream
	err error
}

// NewPipeline builds the stage chain over buffered text.
func NewPipeline(text string, deps Deps, cfg CorrectorConfig) (*Pipeline, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var tokens analysis.TokenStream = analysis.NewTokenizer(text)
	tokens = analysis.NewAlphabetFilter(tokens)
	tokens = analysis.NewStopWordFilter(tokens, deps.StopWords)

	suggest := NewSuggestionFilter(tokens, deps.Lexicon, cfg.Suggestions)
	if cfg.StemFallback {
		suggest.WithStemFallback(deps.Stemmer)
	}
	var recs RecordStream = NewConfidenceFilter(suggest, deps.Similarity, deps.Frequencies, cfg)
	if cfg.StopAfterCorrection && deps.StopWords != nil {
		recs = NewSpellStopFilter(recs, deps.StopWords)
	}
	recs = NewStemFilter(recs, deps.Stemmer)
	recs = NewSimilarityFilter(recs)

	return &Pipeline{out: recs}, nil
}

// Next returns the next surviving record or io.EOF.
func (p *Pipeline) Next() (Record, error) {
	if p.err != nil {
		return Record{}, p.err
	}
	rec, err := p.out.Next()
	if err != nil {
		p.err = err
		return Record{}, err
	}
	return rec, nil
}

// Records iterates the remaining records. Iteration ends at the end of the
// stream or after yielding the first error.
func (p *Pipeline) Records() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for {
			rec, err := p.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Record{}, err)
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// Run drains a new pipeline over text.
func Run(text string, deps Deps, cfg CorrectorConfig) ([]Record, error) {
	p, err := NewPipeline(text, deps, cfg)
	if err != nil {
		return nil, err
	}
	var out []Record
	for rec, err := range p.Records() {
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, nil
}
