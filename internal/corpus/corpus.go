// Package corpus builds word frequency counts from a reference text.
package corpus

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"stemcheck/internal/analysis"
)

// Index maps a word to its occurrence count in the reference corpus.
// It is read-only once built.
type Index struct {
	counts map[string]int
	total  int
}

// Entry is a word with its count.
type Entry struct {
	Word  string
	Count int
}

// Build tokenizes text with the same Tokenizer and AlphabetFilter as the
// main pipeline and counts every surviving token.
func Build(text string) *Index {
	idx := &Index{counts: make(map[string]int)}
	ts := analysis.NewAlphabetFilter(analysis.NewTokenizer(text))
	for {
		w, ok := ts.Next()
		if !ok {
			break
		}
		idx.counts[w]++
		idx.total++
	}
	return idx
}

// FromCounts wraps an existing count map. Non-positive counts are dropped.
func FromCounts(counts map[string]int) *Index {
	idx := &Index{counts: make(map[string]int, len(counts))}
	for w, c := range counts {
		if c <= 0 {
			continue
		}
		idx.counts[w] = c
		idx.total += c
	}
	return idx
}

// LoadCounts reads a "word count" list, one entry per line. Words are
// normalized like pipeline tokens; lines that do not parse are skipped.
func LoadCounts(r io.Reader) (map[string]int, error) {
	counts := make(map[string]int)
	s := bufio.NewScanner(r)
	for s.Scan() {
		parts := strings.Fields(s.Text())
		if len(parts) < 2 {
			continue
		}
		word := analysis.Normalize(parts[0])
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			if fv, err2 := strconv.ParseFloat(parts[1], 64); err2 == nil {
				count = int(fv)
			} else {
				continue
			}
		}
		if count > 0 {
			counts[word] += count
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read frequencies: %w", err)
	}
	return counts, nil
}

// Merge returns a new index holding the sum of both indexes.
func (i *Index) Merge(other *Index) *Index {
	out := &Index{counts: make(map[string]int, len(i.counts)+len(other.counts))}
	for _, src := range []*Index{i, other} {
		for w, c := range src.counts {
			out.counts[w] += c
			out.total += c
		}
	}
	return out
}

// Count returns the number of occurrences of word, 0 when absent.
func (i *Index) Count(word string) int {
	if i == nil {
		return 0
	}
	return i.counts[word]
}

// Len returns the number of distinct words.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.counts)
}

// Total returns the number of counted tokens.
func (i *Index) Total() int {
	if i == nil {
		return 0
	}
	return i.total
}

// Top returns the n most frequent words, ties broken by word. n <= 0
// returns every entry.
func (i *Index) Top(n int) []Entry {
	if i == nil {
		return nil
	}
	ee := make([]Entry, 0, len(i.counts))
	for w, c := range i.counts {
		ee = append(ee, Entry{Word: w, Count: c})
	}
	slices.SortFunc(ee, func(a, b Entry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Word, b.Word)
	})
	if n > 0 && n < len(ee) {
		ee = ee[:n]
	}
	return ee
}
