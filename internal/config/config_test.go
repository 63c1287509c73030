package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stemcheck/internal/config"
	"stemcheck/internal/corrector"
	"stemcheck/pkg/options"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "stemcheck.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefault(t *testing.T) {
	c := config.Default()

	assert.Equal(t, corrector.DefaultConfig(), c.CorrectorConfig())
	assert.Equal(t, options.MetricLevenshtein, c.Lexicon.Metric)
	assert.Equal(t, 0.5, c.Lexicon.Accuracy)
	assert.Equal(t, config.DefaultHTTP, c.HTTP.Addr)
	assert.Equal(t, config.DefaultRedis, c.Redis.Addr)
	assert.Equal(t, config.DefaultDictKey, c.Redis.Key)
	assert.Equal(t, "info", c.Log.Level)
}

func TestLoad(t *testing.T) {
	p := writeConfig(t, `
dictionary: ru.dict
corpus: [a.txt, b.txt]
stopWords: stop.txt
corrector:
  suggestions: 10
  editLimit: 0
  stopAfterCorrection: true
lexicon:
  metric: keyboard
  cacheSize: 0
redis:
  enabled: true
  db: 2
log:
  pretty: true
`)
	c, err := config.Load(p)
	require.NoError(t, err)

	assert.Equal(t, "ru.dict", c.Dictionary)
	assert.Equal(t, []string{"a.txt", "b.txt"}, c.Corpus)
	cc := c.CorrectorConfig()
	assert.Equal(t, 10, cc.Suggestions)
	assert.Equal(t, 0, cc.EditLimit)
	assert.Equal(t, corrector.DefaultRatioFloor, cc.RatioFloor)
	assert.True(t, cc.StopAfterCorrection)
	assert.False(t, cc.StemFallback)

	lo := options.Resolve(c.LexiconOptions()...)
	assert.Equal(t, options.MetricKeyboard, lo.Metric)
	assert.Equal(t, 0, lo.CacheSize)
	assert.True(t, c.Redis.Enabled)
	assert.Equal(t, 2, c.Redis.DB)
	assert.True(t, c.Log.Pretty)
}

func TestLoadZeroRatioFloor(t *testing.T) {
	c, err := config.Load(writeConfig(t, "dictionary: d\ncorrector:\n  ratioFloor: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.CorrectorConfig().RatioFloor)

	c, err = config.Load(writeConfig(t, "dictionary: d\n"))
	require.NoError(t, err)
	assert.Equal(t, corrector.DefaultRatioFloor, c.CorrectorConfig().RatioFloor)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(config.EnvDictionary, "env.dict")
	t.Setenv(config.EnvCorpus, "x.txt"+string(os.PathListSeparator)+"y.txt")
	t.Setenv(config.EnvRedisDB, "5")
	t.Setenv(config.EnvHTTPAddr, ":9090")

	c, err := config.Load(writeConfig(t, "dictionary: file.dict\nredis:\n  db: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, "env.dict", c.Dictionary)
	assert.Equal(t, []string{"x.txt", "y.txt"}, c.Corpus)
	assert.Equal(t, 5, c.Redis.DB)
	assert.Equal(t, ":9090", c.HTTP.Addr)
}

func TestLoadBadEnvInt(t *testing.T) {
	t.Setenv(config.EnvDictionary, "env.dict")
	t.Setenv(config.EnvRedisDB, "nope")

	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 0, c.Redis.DB)
}

func TestLoadErrors(t *testing.T) {
	uu := map[string]string{
		"no-dictionary": "corpus: [a.txt]\n",
		"accuracy":      "dictionary: d\nlexicon:\n  accuracy: 2\n",
		"cache":         "dictionary: d\nlexicon:\n  cacheSize: -1\n",
		"ratio":         "dictionary: d\ncorrector:\n  ratioFloor: 0.5\n",
		"edits":         "dictionary: d\ncorrector:\n  editLimit: -1\n",
		"log":           "dictionary: d\nlog:\n  level: loud\n",
	}

	for k, body := range uu {
		t.Run(k, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, body))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformed(t *testing.T) {
	_, err := config.Load(writeConfig(t, "dictionary: [unclosed\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := config.Log{Level: "warn"}.Logger(&buf)
	require.NoError(t, err)

	l.Info().Msg("hidden")
	l.Warn().Str("word", "превет").Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"word":"превет"`)

	_, err = config.Log{Level: "loud"}.Logger(&buf)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestReadSkipsValidation(t *testing.T) {
	c, err := config.Read(writeConfig(t, "corpus: [a.txt]\n"))
	require.NoError(t, err)
	assert.Empty(t, c.Dictionary)
	assert.ErrorIs(t, c.Validate(), config.ErrInvalid)
}
