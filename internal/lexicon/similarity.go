package lexicon

import (
	"fmt"

	"github.com/hbollon/go-edlib"

	"stemcheck/pkg/options"
)

// Similarity scores two words in [0,1], 1 meaning identical.
type Similarity func(a, b string) float64

// NewSimilarity returns the metric named by o.Metric.
func NewSimilarity(o options.LexiconOptions) (Similarity, error) {
	switch o.Metric {
	case "", options.MetricLevenshtein:
		return edlibSimilarity(edlib.Levenshtein), nil
	case options.MetricDamerau:
		return edlibSimilarity(edlib.OSADamerauLevenshtein), nil
	case options.MetricJaroWinkler:
		return edlibSimilarity(edlib.JaroWinkler), nil
	case options.MetricKeyboard:
		k := keyboardMetric{transpose: o.TransposeCost, insDel: o.InsDelCost, nearSub: o.NearSubCost}
		return k.similarity, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, o.Metric)
	}
}

func edlibSimilarity(algo edlib.Algorithm) Similarity {
	return func(a, b string) float64 {
		if a == b {
			return 1
		}
		s, err := edlib.StringsSimilarity(a, b, algo)
		if err != nil {
			return 0
		}
		return float64(s)
	}
}
