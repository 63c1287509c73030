package corrector

import (
	"math"
	"unicode/utf8"
)

// ConfidenceFilter picks the most plausible candidate of every record and
// sets Spell and Confidence.
type ConfidenceFilter struct {
	input RecordStream
	sim   Similarity
	freq  Frequencies
	cfg   CorrectorConfig
}

// NewConfidenceFilter scores candidates with sim and corpus frequencies.
func NewConfidenceFilter(input RecordStream, sim Similarity, freq Frequencies, cfg CorrectorConfig) *ConfidenceFilter {
	return &ConfidenceFilter{input: input, sim: sim, freq: freq, cfg: cfg}
}

func (f *ConfidenceFilter) Next() (Record, error) {
	rec, err := f.input.Next()
	if err != nil {
		return Record{}, err
	}
	rec.Spell, rec.Confidence = f.Choose(rec.Source, rec.Candidates)
	return rec, nil
}

// Choose scans candidates in rank order and returns the best one with its
// confidence. Without candidates the source is kept with confidence 1.
//
// The score of a candidate is 1/(1+max(0, edits+ratio)) where edits is the
// edit count derived from the similarity and ratio biases towards the more
// frequent word of the two.
func (f *ConfidenceFilter) Choose(source string, candidates []string) (string, float64) {
	if len(candidates) == 0 {
		return source, 1
	}

	var (
		bestSpell string
		bestConf  float64
	)
	srcLen := utf8.RuneCountInString(source)
	for _, cand := range candidates {
		edits := editCount(f.sim(source, cand), max(srcLen, utf8.RuneCountInString(cand)))

		// дальше по рангу кандидаты только хуже
		if edits > f.cfg.EditLimit && bestSpell != "" {
			break
		}
		if edits == 0 {
			return cand, 1
		}

		score := 1 / (1 + math.Max(0, float64(edits)+f.ratio(source, cand)))
		if score > bestConf {
			bestSpell, bestConf = cand, score
			if bestConf == 1 || edits > f.cfg.EditLimit {
				break
			}
		}
	}
	return bestSpell, bestConf
}

// ratio is the frequency bias: a non-negative penalty when the source is at
// least as frequent as the candidate, a bonus floored at RatioFloor otherwise.
func (f *ConfidenceFilter) ratio(source, cand string) float64 {
	raw := float64(1+f.count(source)) / float64(1+f.count(cand))
	if raw >= 1 {
		return raw - 1
	}
	return math.Max(f.cfg.RatioFloor, 1-1/raw)
}

func (f *ConfidenceFilter) count(w string) int {
	if f.freq == nil {
		return 0
	}
	return f.freq.Count(w)
}

// editCount approximates the number of edits from a normalized similarity.
// Halves round to even.
func editCount(sim float64, maxLen int) int {
	sim = math.Max(0, math.Min(1, sim))
	return int(math.RoundToEven((1 - sim) * float64(maxLen)))
}
