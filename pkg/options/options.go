package options

// Метрики сходства, которые понимает лексикон
const (
	MetricLevenshtein = "levenshtein"
	MetricDamerau     = "damerau"
	MetricJaroWinkler = "jaro-winkler"
	MetricKeyboard    = "keyboard"
)

// DefaultOptions mirrors the Lucene spellchecker defaults: accuracy 0.5 and
// ten index hits per requested suggestion.
var DefaultOptions = LexiconOptions{
	Accuracy:        0.5,
	CandidateFactor: 10,
	CacheSize:       4096,
	Metric:          MetricLevenshtein,
	TransposeCost:   0.6,
	InsDelCost:      0.9,
	NearSubCost:     0.6,
}

type LexiconOptions struct {
	Accuracy        float64 // Минимальное сходство кандидата с запросом
	CandidateFactor int     // Сколько n-граммных совпадений рассматривать на одну подсказку
	CacheSize       int     // Размер LRU-кэша подсказок, 0 выключает кэш
	Metric          string
	TransposeCost   float64 // Стоимости для клавиатурной метрики
	InsDelCost      float64
	NearSubCost     float64
}

type Options interface {
	Apply(options *LexiconOptions)
}

type FuncConfig struct {
	ops func(options *LexiconOptions)
}

func (w FuncConfig) Apply(conf *LexiconOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *LexiconOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

func WithAccuracy(accuracy float64) Options {
	return NewFuncOption(func(options *LexiconOptions) {
		options.Accuracy = accuracy
	})
}

func WithCandidateFactor(factor int) Options {
	return NewFuncOption(func(options *LexiconOptions) {
		options.CandidateFactor = factor
	})
}

func WithCacheSize(size int) Options {
	return NewFuncOption(func(options *LexiconOptions) {
		options.CacheSize = size
	})
}

func WithoutCache() Options {
	return NewFuncOption(func(options *LexiconOptions) {
		options.CacheSize = 0
	})
}

func WithMetric(metric string) Options {
	return NewFuncOption(func(options *LexiconOptions) {
		options.Metric = metric
	})
}

// WithKeyboardCosts switches to the keyboard-aware metric with the given
// edit costs.
func WithKeyboardCosts(transpose, insDel, nearSub float64) Options {
	return NewFuncOption(func(options *LexiconOptions) {
		options.Metric = MetricKeyboard
		options.TransposeCost = transpose
		options.InsDelCost = insDel
		options.NearSubCost = nearSub
	})
}

// Resolve applies opts over DefaultOptions.
func Resolve(opts ...Options) LexiconOptions {
	o := DefaultOptions
	for _, opt := range opts {
		if opt != nil {
			opt.Apply(&o)
		}
	}
	return o
}
