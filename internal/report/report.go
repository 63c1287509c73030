// Package report groups pipeline records into the high/low confidence
// buckets consumed by downstream tooling.
package report

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"stemcheck/internal/corrector"
)

// HighConfidence splits the buckets. Downstream tooling keys off it.
const HighConfidence = 0.95

// Line is the flat text form of a record:
// source, spell, source stem, spell stem, confidence with two decimals.
func Line(r corrector.Record) string {
	return strings.Join(fields(r), " ")
}

func fields(r corrector.Record) []string {
	return []string{r.Source, r.Spell, r.SourceStem, r.SpellStem, FormatConfidence(r.Confidence)}
}

// FormatConfidence renders c with two decimals.
func FormatConfidence(c float64) string {
	return strconv.FormatFloat(c, 'f', 2, 64)
}

// Entry is one distinct formatted record and how often it occurred.
type Entry struct {
	Source     string  `json:"source"`
	Spell      string  `json:"spell"`
	SourceStem string  `json:"sourceStem"`
	SpellStem  string  `json:"spellStem"`
	Confidence float64 `json:"confidence"`
	Count      int     `json:"count"`
}

func (e Entry) line() string {
	return strings.Join([]string{e.Source, e.Spell, e.SourceStem, e.SpellStem, FormatConfidence(e.Confidence)}, " ")
}

// High reports whether the entry belongs to the high-confidence bucket.
func (e Entry) High() bool { return e.Confidence >= HighConfidence }

// Report holds both buckets, most frequent entries first.
type Report struct {
	High  []Entry `json:"high"`
	Low   []Entry `json:"low"`
	Total int     `json:"total"`
}

// Aggregator counts identical formatted records. Not safe for concurrent use.
type Aggregator struct {
	entries map[string]*Entry
	total   int
}

func NewAggregator() *Aggregator {
	return &Aggregator{entries: make(map[string]*Entry)}
}

// Add counts r.
func (a *Aggregator) Add(r corrector.Record) {
	a.total++
	key := Line(r)
	if e, ok := a.entries[key]; ok {
		e.Count++
		return
	}
	// уверенность берём из отформатированной строки, чтобы корзина совпадала с выводом
	conf := math.Round(r.Confidence*100) / 100
	a.entries[key] = &Entry{
		Source:     r.Source,
		Spell:      r.Spell,
		SourceStem: r.SourceStem,
		SpellStem:  r.SpellStem,
		Confidence: conf,
		Count:      1,
	}
}

// Len returns the number of distinct entries.
func (a *Aggregator) Len() int { return len(a.entries) }

// Report partitions and sorts the entries seen so far.
func (a *Aggregator) Report() Report {
	rep := Report{Total: a.total}
	for _, e := range a.entries {
		if e.High() {
			rep.High = append(rep.High, *e)
		} else {
			rep.Low = append(rep.Low, *e)
		}
	}
	byCount := func(x, y Entry) int {
		if c := cmp.Compare(y.Count, x.Count); c != 0 {
			return c
		}
		return strings.Compare(x.line(), y.line())
	}
	slices.SortFunc(rep.High, byCount)
	slices.SortFunc(rep.Low, byCount)
	return rep
}

// WriteText prints both buckets as aligned columns.
func (r Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, b := range []struct {
		title   string
		entries []Entry
	}{
		{fmt.Sprintf("high confidence (>= %.2f)", HighConfidence), r.High},
		{fmt.Sprintf("low confidence (< %.2f)", HighConfidence), r.Low},
	} {
		fmt.Fprintf(tw, "# %s: %d\n", b.title, len(b.entries))
		for _, e := range b.entries {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
				e.Count, e.Source, e.Spell, e.SourceStem, e.SpellStem, FormatConfidence(e.Confidence))
		}
	}
	return tw.Flush()
}

// WriteJSON encodes the report.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}

// WriteRecords prints records in stream order, one Line per record.
func WriteRecords(w io.Writer, recs []corrector.Record) error {
	for _, r := range recs {
		if _, err := fmt.Fprintln(w, Line(r)); err != nil {
			return err
		}
	}
	return nil
}
