package corrector_test

import (
	"errors"
	"io"
	"unicode/utf8"

	"stemcheck/internal/corrector"
)

type fakeLexicon struct {
	known map[string]bool
	sugs  map[string][]string
	errs  map[string]error
	calls []string
}

func (l *fakeLexicon) Exists(w string) bool { return l.known[w] }

func (l *fakeLexicon) Suggest(w string, n int) ([]string, error) {
	l.calls = append(l.calls, w)
	if err := l.errs[w]; err != nil {
		return nil, err
	}
	s := l.sugs[w]
	if len(s) > n {
		s = s[:n]
	}
	return s, nil
}

// prefixStemmer keeps the first four runes.
type prefixStemmer struct {
	fail map[string]bool
}

var errStem = errors.New("boom")

func (s prefixStemmer) Stem(w string) (string, error) {
	if s.fail[w] {
		return "", errStem
	}
	if utf8.RuneCountInString(w) <= 4 {
		return w, nil
	}
	return string([]rune(w)[:4]), nil
}

type counts map[string]int

func (c counts) Count(w string) int { return c[w] }

// tableSim returns preset similarities and records which candidates it saw.
type tableSim struct {
	table map[string]float64
	seen  []string
}

func (s *tableSim) sim(_, b string) float64 {
	s.seen = append(s.seen, b)
	return s.table[b]
}

// sliceStream replays records.
type sliceStream struct {
	recs []corrector.Record
	err  error
}

func (s *sliceStream) Next() (corrector.Record, error) {
	if len(s.recs) == 0 {
		if s.err != nil {
			return corrector.Record{}, s.err
		}
		return corrector.Record{}, io.EOF
	}
	r := s.recs[0]
	s.recs = s.recs[1:]
	return r, nil
}

func drain(rs corrector.RecordStream) ([]corrector.Record, error) {
	var out []corrector.Record
	for {
		r, err := rs.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, r)
	}
}
