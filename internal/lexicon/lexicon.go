// Package lexicon is an in-memory dictionary answering membership and
// similarity-ranked suggestion queries, after the Lucene spellchecker: words
// are indexed by character n-grams, n-gram hits are re-ranked with a string
// similarity metric.
package lexicon

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"

	"stemcheck/internal/analysis"
	"stemcheck/pkg/options"
)

// ErrUnknownMetric is returned for an unsupported similarity metric name.
var ErrUnknownMetric = errors.New("unknown similarity metric")

const (
	startBoost = 2.0
	endBoost   = 1.0
)

// Lexicon is safe for concurrent use.
type Lexicon struct {
	opts  options.LexiconOptions
	sim   Similarity
	cache *lru.Cache[string, []string]

	mu       sync.RWMutex
	words    map[string]int
	postings map[string]mapset.Set[string]
}

// Suggestion is a ranked candidate with its similarity score.
type Suggestion struct {
	Word  string
	Score float64
	Freq  int
}

// New returns an empty lexicon.
func New(opts ...options.Options) (*Lexicon, error) {
	o := options.Resolve(opts...)
	sim, err := NewSimilarity(o)
	if err != nil {
		return nil, err
	}
	if o.CandidateFactor <= 0 {
		o.CandidateFactor = options.DefaultOptions.CandidateFactor
	}
	l := &Lexicon{
		opts:     o,
		sim:      sim,
		words:    make(map[string]int),
		postings: make(map[string]mapset.Set[string]),
	}
	if o.CacheSize > 0 {
		if l.cache, err = lru.New[string, []string](o.CacheSize); err != nil {
			return nil, fmt.Errorf("suggestion cache: %w", err)
		}
	}
	return l, nil
}

// Load reads a plain-text dictionary: one word per line, optionally
// followed by a count. It returns the number of words added.
func (l *Lexicon) Load(r io.Reader) (int, error) {
	var n int
	s := bufio.NewScanner(r)
	for s.Scan() {
		parts := strings.Fields(s.Text())
		if len(parts) == 0 {
			continue
		}
		freq := 0
		if len(parts) > 1 {
			if c, err := strconv.Atoi(parts[1]); err == nil && c > 0 {
				freq = c
			}
		}
		if l.Add(parts[0], freq) {
			n++
		}
	}
	if err := s.Err(); err != nil {
		return n, fmt.Errorf("read dictionary: %w", err)
	}
	log.Debug().Int("words", n).Int("total", l.Len()).Msg("dictionary loaded")
	return n, nil
}

// Add inserts word after normalizing it. Words outside the alphabet are
// ignored. It reports whether the word was new. A repeated word keeps the
// larger frequency.
func (l *Lexicon) Add(word string, freq int) bool {
	w := analysis.Normalize(strings.TrimSpace(word))
	if !analysis.InAlphabet(w) {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if old, ok := l.words[w]; ok {
		l.words[w] = max(old, freq)
		return false
	}
	l.words[w] = freq
	for _, k := range gramKeys([]rune(w)) {
		set, ok := l.postings[k]
		if !ok {
			set = mapset.NewThreadUnsafeSet[string]()
			l.postings[k] = set
		}
		set.Add(w)
	}
	l.purge()
	return true
}

// Remove deletes word. It reports whether the word was present.
func (l *Lexicon) Remove(word string) bool {
	w := analysis.Normalize(strings.TrimSpace(word))

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.words[w]; !ok {
		return false
	}
	delete(l.words, w)
	for _, k := range gramKeys([]rune(w)) {
		if set, ok := l.postings[k]; ok {
			set.Remove(w)
			if set.Cardinality() == 0 {
				delete(l.postings, k)
			}
		}
	}
	l.purge()
	return true
}

func (l *Lexicon) purge() {
	if l.cache != nil && l.cache.Len() > 0 {
		l.cache.Purge()
	}
}

// Len returns the number of known words.
func (l *Lexicon) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.words)
}

// Exists reports whether word is known verbatim.
func (l *Lexicon) Exists(word string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.words[word]
	return ok
}

// Similarity scores a against b with the lexicon's ranking metric.
func (l *Lexicon) Similarity(a, b string) float64 {
	return l.sim(a, b)
}

// Suggest returns up to n known words most similar to word, best first.
// The word itself is never suggested.
func (l *Lexicon) Suggest(word string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	key := word + "\x00" + strconv.Itoa(n)
	if l.cache != nil {
		if v, ok := l.cache.Get(key); ok {
			return slices.Clone(v), nil
		}
	}
	ss := l.suggest(word, n)
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.Word
	}
	if l.cache != nil {
		l.cache.Add(key, slices.Clone(out))
	}
	return out, nil
}

// SuggestScored is Suggest with scores and frequencies. It bypasses the cache.
func (l *Lexicon) SuggestScored(word string, n int) []Suggestion {
	if n <= 0 {
		return nil
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.suggest(word, n)
}

func (l *Lexicon) suggest(word string, n int) []Suggestion {
	runes := []rune(word)
	if len(runes) == 0 {
		return nil
	}
	hits := l.gramHits(runes)
	if limit := n * l.opts.CandidateFactor; len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]Suggestion, 0, len(hits))
	for _, h := range hits {
		if h.word == word {
			continue
		}
		score := l.sim(word, h.word)
		if score < l.opts.Accuracy {
			continue
		}
		out = append(out, Suggestion{Word: h.word, Score: score, Freq: l.words[h.word]})
	}
	slices.SortFunc(out, func(a, b Suggestion) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Freq, a.Freq); c != 0 {
			return c
		}
		return strings.Compare(a.Word, b.Word)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

type gramHit struct {
	word  string
	score float64
}

// gramHits scores every word sharing an n-gram with the query, best
// n-gram overlap first.
func (l *Lexicon) gramHits(runes []rune) []gramHit {
	scores := make(map[string]float64)
	lo, hi := gramRange(len(runes))
	for ng := lo; ng <= hi; ng++ {
		grams := nGrams(runes, ng)
		for i, g := range grams {
			if ng > 1 {
				l.score(scores, gramKey('g', ng, g), 1)
			}
			if i == 0 {
				l.score(scores, gramKey('s', ng, g), startBoost)
			}
			if i == len(grams)-1 {
				l.score(scores, gramKey('e', ng, g), endBoost)
			}
		}
	}

	hits := make([]gramHit, 0, len(scores))
	for w, s := range scores {
		hits = append(hits, gramHit{word: w, score: s})
	}
	slices.SortFunc(hits, func(a, b gramHit) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return strings.Compare(a.word, b.word)
	})
	return hits
}

func (l *Lexicon) score(scores map[string]float64, key string, boost float64) {
	set, ok := l.postings[key]
	if !ok {
		return
	}
	set.Each(func(w string) bool {
		scores[w] += boost
		return false
	})
}

// gramRange picks n-gram sizes by word length, as the Lucene spellchecker does.
func gramRange(l int) (int, int) {
	switch {
	case l > 5:
		return 3, 4
	case l == 5:
		return 2, 3
	default:
		return 1, 2
	}
}

func nGrams(runes []rune, ng int) []string {
	if len(runes) < ng {
		return nil
	}
	out := make([]string, 0, len(runes)-ng+1)
	for i := 0; i+ng <= len(runes); i++ {
		out = append(out, string(runes[i:i+ng]))
	}
	return out
}

func gramKey(kind byte, ng int, g string) string {
	return string(kind) + strconv.Itoa(ng) + ":" + g
}

// gramKeys lists every posting key a word is indexed under. Words are
// indexed for all gram sizes so that queries of any length can reach them.
// Inner unigrams are not indexed: nearly every word would share one.
func gramKeys(runes []rune) []string {
	var keys []string
	for ng := 1; ng <= 4; ng++ {
		grams := nGrams(runes, ng)
		for i, g := range grams {
			if ng > 1 {
				keys = append(keys, gramKey('g', ng, g))
			}
			if i == 0 {
				keys = append(keys, gramKey('s', ng, g))
			}
			if i == len(grams)-1 {
				keys = append(keys, gramKey('e', ng, g))
			}
		}
	}
	return keys
}
