// Package engine assembles the lexicon, corpus index, stop words and
// custom-word store described by a Config, and runs checks against them.
package engine

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"stemcheck/internal/analysis"
	"stemcheck/internal/config"
	"stemcheck/internal/corpus"
	"stemcheck/internal/corrector"
	"stemcheck/internal/customdict"
	"stemcheck/internal/lexicon"
	"stemcheck/internal/stemmer"
	"stemcheck/internal/textfile"
)

// ErrNoCustomDict is returned by word operations when Redis is disabled.
var ErrNoCustomDict = errors.New("custom dictionary is not configured")

// Engine holds the loaded collaborators. It is safe for concurrent checks;
// each check runs its own pipeline.
type Engine struct {
	cfg       corrector.CorrectorConfig
	lexicon   *lexicon.Lexicon
	corpus    *corpus.Index
	stopWords analysis.StopWords
	stemmer   stemmer.Snowball
	custom    *customdict.CustomDict
	client    *redis.Client
}

// New loads every input named by cfg. Redis custom words are merged into the
// lexicon when cfg.Redis.Enabled is set.
func New(ctx context.Context, cfg config.Config) (*Engine, error) {
	lex, err := lexicon.New(cfg.LexiconOptions()...)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}
	text, err := textfile.Read(cfg.Dictionary)
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	if _, err := lex.Load(strings.NewReader(text)); err != nil {
		return nil, fmt.Errorf("dictionary %s: %w", cfg.Dictionary, err)
	}

	e := Engine{
		cfg:     cfg.CorrectorConfig(),
		lexicon: lex,
		stemmer: stemmer.New(),
	}
	if e.corpus, err = loadCorpus(cfg); err != nil {
		return nil, err
	}
	if cfg.StopWords != "" {
		if e.stopWords, err = loadStopWords(cfg.StopWords); err != nil {
			return nil, err
		}
	}

	if cfg.Redis.Enabled {
		e.client = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		e.custom = customdict.New(e.client, cfg.Redis.Key)
		if err := e.loadCustom(ctx); err != nil {
			_ = e.client.Close()
			return nil, err
		}
	}

	log.Info().
		Int("words", lex.Len()).
		Int("corpus", e.corpus.Len()).
		Bool("redis", cfg.Redis.Enabled).
		Msg("engine ready")
	return &e, nil
}

func loadCorpus(cfg config.Config) (*corpus.Index, error) {
	idx := corpus.FromCounts(nil)
	if len(cfg.Corpus) > 0 {
		text, err := textfile.ReadAll(cfg.Corpus...)
		if err != nil {
			return nil, fmt.Errorf("corpus: %w", err)
		}
		idx = corpus.Build(text)
	}
	if cfg.Frequencies != "" {
		text, err := textfile.Read(cfg.Frequencies)
		if err != nil {
			return nil, fmt.Errorf("frequencies: %w", err)
		}
		counts, err := corpus.LoadCounts(strings.NewReader(text))
		if err != nil {
			return nil, fmt.Errorf("frequencies %s: %w", cfg.Frequencies, err)
		}
		idx = idx.Merge(corpus.FromCounts(counts))
	}
	log.Debug().Int("words", idx.Len()).Int("tokens", idx.Total()).Msg("corpus indexed")
	return idx, nil
}

func loadStopWords(path string) (analysis.StopWords, error) {
	text, err := textfile.Read(path)
	if err != nil {
		return nil, fmt.Errorf("stop words: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return analysis.ParseStopWordsYAML([]byte(text))
	default:
		return analysis.LoadStopWords(strings.NewReader(text))
	}
}

func (e *Engine) loadCustom(ctx context.Context) error {
	if err := e.custom.Ping(ctx); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	words, err := e.custom.All(ctx)
	if err != nil {
		return err
	}
	var n int
	for _, w := range words {
		if e.lexicon.Add(w, 0) {
			n++
		}
	}
	log.Debug().Int("words", n).Msg("custom words merged")
	return nil
}

// Close releases the Redis connection, if any.
func (e *Engine) Close() error {
	if e.client == nil {
		return nil
	}
	return e.client.Close()
}

// Deps returns the pipeline collaborators.
func (e *Engine) Deps() corrector.Deps {
	return corrector.Deps{
		Lexicon:     e.lexicon,
		Stemmer:     e.stemmer,
		Similarity:  e.lexicon.Similarity,
		Frequencies: e.corpus,
		StopWords:   e.stopWords,
	}
}

// Pipeline starts a pipeline over text.
func (e *Engine) Pipeline(text string) (*corrector.Pipeline, error) {
	return corrector.NewPipeline(text, e.Deps(), e.cfg)
}

// Check runs text through a new pipeline. A positive limit stops pulling
// after that many records.
func (e *Engine) Check(text string, limit int) ([]corrector.Record, error) {
	p, err := e.Pipeline(text)
	if err != nil {
		return nil, err
	}
	var out []corrector.Record
	for rec, err := range p.Records() {
		if err != nil {
			return out, err
		}
		out = append(out, rec)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// Lexicon returns the live lexicon.
func (e *Engine) Lexicon() *lexicon.Lexicon { return e.lexicon }

// Corpus returns the frequency index.
func (e *Engine) Corpus() *corpus.Index { return e.corpus }

// AddWord stores word in Redis and adds it to the live lexicon.
func (e *Engine) AddWord(ctx context.Context, word string) (string, error) {
	if e.custom == nil {
		return "", ErrNoCustomDict
	}
	w, err := e.custom.Add(ctx, word)
	if err != nil {
		return "", err
	}
	e.lexicon.Add(w, 0)
	return w, nil
}

// RemoveWord deletes word from Redis and from the live lexicon.
func (e *Engine) RemoveWord(ctx context.Context, word string) (string, error) {
	if e.custom == nil {
		return "", ErrNoCustomDict
	}
	w, err := e.custom.Remove(ctx, word)
	if err != nil {
		return "", err
	}
	e.lexicon.Remove(w)
	return w, nil
}

// Words lists the stored custom words.
func (e *Engine) Words(ctx context.Context) ([]string, error) {
	if e.custom == nil {
		return nil, ErrNoCustomDict
	}
	return e.custom.All(ctx)
}
