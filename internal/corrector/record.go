package corrector

// Record is what the pipeline emits per surviving token.
type Record struct {
	Source     string   `json:"source"`
	Candidates []string `json:"candidates,omitempty"`
	Spell      string   `json:"spell"`
	Confidence float64  `json:"confidence"`
	SourceStem string   `json:"sourceStem"`
	SpellStem  string   `json:"spellStem"`
}

// Corrected reports whether Spell differs from Source.
func (r Record) Corrected() bool { return r.Spell != r.Source }

// RecordStream is a pull-based source of records. Next returns io.EOF once
// the stream is exhausted.
type RecordStream interface {
	Next() (Record, error)
}

// Lexicon answers known-word and suggestion queries.
type Lexicon interface {
	Exists(word string) bool
	Suggest(word string, n int) ([]string, error)
}

// Stemmer reduces a word to its stem.
type Stemmer interface {
	Stem(word string) (string, error)
}

// Similarity scores two words in [0,1].
type Similarity func(a, b string) float64

// Frequencies returns corpus counts, 0 for unknown words.
type Frequencies interface {
	Count(word string) int
}
