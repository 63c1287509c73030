package corrector

// SimilarityFilter suppresses records whose correction keeps the stem.
type SimilarityFilter struct {
	input RecordStream
}

func NewSimilarityFilter(input RecordStream) *SimilarityFilter {
	return &SimilarityFilter{input: input}
}

func (f *SimilarityFilter) Next() (Record, error) {
	for {
		rec, err := f.input.Next()
		if err != nil {
			return Record{}, err
		}
		if rec.SourceStem != rec.SpellStem {
			return rec, nil
		}
	}
}
