package corrector

import (
	"fmt"

	"stemcheck/internal/analysis"
)

// StemFilter fills SourceStem and SpellStem. A stemmer failure ends the
// stream with that error.
type StemFilter struct {
	input   RecordStream
	stemmer Stemmer
}

func NewStemFilter(input RecordStream, stemmer Stemmer) *StemFilter {
	return &StemFilter{input: input, stemmer: stemmer}
}

func (f *StemFilter) Next() (Record, error) {
	rec, err := f.input.Next()
	if err != nil {
		return Record{}, err
	}
	if rec.SourceStem, err = f.stemmer.Stem(rec.Source); err != nil {
		return Record{}, fmt.Errorf("stem source %q: %w", rec.Source, err)
	}
	if rec.SpellStem, err = f.stemmer.Stem(rec.Spell); err != nil {
		return Record{}, fmt.Errorf("stem spell %q of %q: %w", rec.Spell, rec.Source, err)
	}
	return rec, nil
}

// SpellStopFilter drops records whose chosen spelling is a stop word.
type SpellStopFilter struct {
	input RecordStream
	stop  analysis.StopWords
}

func NewSpellStopFilter(input RecordStream, stop analysis.StopWords) *SpellStopFilter {
	return &SpellStopFilter{input: input, stop: stop}
}

func (f *SpellStopFilter) Next() (Record, error) {
	for {
		rec, err := f.input.Next()
		if err != nil {
			return Record{}, err
		}
		if f.stop == nil || !f.stop.Contains(rec.Spell) {
			return rec, nil
		}
	}
}
