package analysis

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"gopkg.in/yaml.v3"
)

// StopWords is a read-only set of words dropped by StopWordFilter.
type StopWords = mapset.Set[string]

// NewStopWords builds a stop-word set from words as given.
func NewStopWords(words ...string) StopWords {
	return mapset.NewThreadUnsafeSet(words...)
}

// LoadStopWords reads one stop word per line. Blank lines are skipped;
// entries are otherwise kept verbatim.
func LoadStopWords(r io.Reader) (StopWords, error) {
	set := mapset.NewThreadUnsafeSet[string]()
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		set.Add(line)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read stop words: %w", err)
	}
	return set, nil
}

// ParseStopWordsYAML reads a `terms:` list.
func ParseStopWordsYAML(data []byte) (StopWords, error) {
	var doc struct {
		Terms []string `yaml:"terms"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode stop words: %w", err)
	}
	set := mapset.NewThreadUnsafeSet[string]()
	for _, t := range doc.Terms {
		if t = strings.TrimSpace(t); t != "" {
			set.Add(t)
		}
	}
	return set, nil
}

// StopWordFilter drops tokens present in a stop-word set.
type StopWordFilter struct {
	input TokenStream
	stop  StopWords
}

// NewStopWordFilter wraps input. A nil set drops nothing.
func NewStopWordFilter(input TokenStream, stop StopWords) *StopWordFilter {
	if stop == nil {
		stop = mapset.NewThreadUnsafeSet[string]()
	}
	return &StopWordFilter{input: input, stop: stop}
}

func (f *StopWordFilter) Next() (string, bool) {
	for {
		tok, ok := f.input.Next()
		if !ok {
			return "", false
		}
		if !f.stop.Contains(tok) {
			return tok, true
		}
	}
}
