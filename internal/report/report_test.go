package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stemcheck/internal/corrector"
	"stemcheck/internal/report"
)

func rec(src, spell string, conf float64) corrector.Record {
	return corrector.Record{Source: src, Spell: spell, SourceStem: src, SpellStem: spell, Confidence: conf}
}

func TestLine(t *testing.T) {
	assert.Equal(t, "превет привет прев прив 1.00",
		report.Line(corrector.Record{Source: "превет", Spell: "привет", SourceStem: "прев", SpellStem: "прив", Confidence: 1}))
	assert.Equal(t, "0.33", report.FormatConfidence(1.0/3.0))
}

func TestAggregator(t *testing.T) {
	a := report.NewAggregator()
	a.Add(rec("превет", "привет", 1))
	a.Add(rec("превет", "привет", 1))
	a.Add(rec("карова", "корова", 0.5))
	a.Add(rec("малако", "молоко", 0.951))
	a.Add(rec("сабака", "собака", 0.949))
	a.Add(rec("сабака", "собака", 0.9449))
	a.Add(rec("карова", "корова", 0.5))
	a.Add(rec("карова", "корова", 0.5))

	rep := a.Report()
	assert.Equal(t, 8, rep.Total)
	assert.Equal(t, 5, a.Len())

	require.Len(t, rep.High, 3)
	assert.Equal(t, "превет", rep.High[0].Source)
	assert.Equal(t, 2, rep.High[0].Count)
	for _, e := range rep.High {
		assert.GreaterOrEqual(t, e.Confidence, report.HighConfidence)
	}

	require.Len(t, rep.Low, 2)
	assert.Equal(t, "карова", rep.Low[0].Source)
	assert.Equal(t, 3, rep.Low[0].Count)
	assert.Equal(t, 0.94, rep.Low[1].Confidence)
}

func TestAggregatorRoundsConfidence(t *testing.T) {
	uu := map[string]struct {
		c    float64
		e    float64
		high bool
	}{
		"up":    {c: 0.9951, e: 1, high: true},
		"edge":  {c: 0.949, e: 0.95, high: true},
		"down":  {c: 0.9449, e: 0.94},
		"third": {c: 1.0 / 3.0, e: 0.33},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			a := report.NewAggregator()
			a.Add(rec("сабака", "собака", u.c))
			rep := a.Report()
			ee := rep.Low
			if u.high {
				ee = rep.High
			}
			require.Len(t, ee, 1)
			assert.InDelta(t, u.e, ee[0].Confidence, 1e-9)
		})
	}
}

func TestWriteText(t *testing.T) {
	a := report.NewAggregator()
	a.Add(rec("превет", "привет", 1))
	a.Add(rec("карова", "корова", 0.5))

	var buf bytes.Buffer
	require.NoError(t, a.Report().WriteText(&buf))
	out := buf.String()

	assert.Contains(t, out, "# high confidence (>= 0.95): 1")
	assert.Contains(t, out, "# low confidence (< 0.95): 1")
	assert.Less(t, strings.Index(out, "привет"), strings.Index(out, "корова"))
	assert.Contains(t, out, "0.50")
}

func TestWriteJSON(t *testing.T) {
	a := report.NewAggregator()
	a.Add(rec("превет", "привет", 1))

	var buf bytes.Buffer
	require.NoError(t, a.Report().WriteJSON(&buf))

	var rep report.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rep))
	assert.Equal(t, 1, rep.Total)
	require.Len(t, rep.High, 1)
	assert.Equal(t, "привет", rep.High[0].Spell)
	assert.Empty(t, rep.Low)
}

func TestWriteRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteRecords(&buf, []corrector.Record{rec("а", "б", 0.25), rec("в", "г", 1)}))
	assert.Equal(t, "а б а б 0.25\nв г в г 1.00\n", buf.String())
}
