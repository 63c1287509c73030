// Package config loads the stemcheck configuration: a YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"stemcheck/internal/corrector"
	"stemcheck/pkg/options"
)

const (
	EnvDictionary  = "STEMCHECK_DICTIONARY"
	EnvCorpus      = "STEMCHECK_CORPUS"
	EnvStopWords   = "STEMCHECK_STOPWORDS"
	EnvLogLevel    = "STEMCHECK_LOG_LEVEL"
	EnvRedisAddr   = "REDIS_ADDR"
	EnvRedisPass   = "REDIS_PASSWORD"
	EnvRedisDB     = "REDIS_DB"
	EnvHTTPAddr    = "HTTP_ADDR"
	DefaultHTTP    = ":8080"
	DefaultRedis   = "localhost:6379"
	DefaultLogLvl  = "info"
	DefaultDictKey = "custom_dict"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Dictionary  string    `yaml:"dictionary"`
	Corpus      []string  `yaml:"corpus"`
	Frequencies string    `yaml:"frequencies"`
	StopWords   string    `yaml:"stopWords"`
	Corrector   Corrector `yaml:"corrector"`
	Lexicon     Lexicon   `yaml:"lexicon"`
	Redis       Redis     `yaml:"redis"`
	Log         Log       `yaml:"log"`
	HTTP        HTTP      `yaml:"http"`
}

type Corrector struct {
	Suggestions         int      `yaml:"suggestions"`
	EditLimit           *int     `yaml:"editLimit"`
	RatioFloor          *float64 `yaml:"ratioFloor"`
	StopAfterCorrection bool     `yaml:"stopAfterCorrection"`
	StemFallback        bool     `yaml:"stemFallback"`
}

type Lexicon struct {
	Metric          string  `yaml:"metric"`
	Accuracy        float64 `yaml:"accuracy"`
	CandidateFactor int     `yaml:"candidateFactor"`
	CacheSize       *int    `yaml:"cacheSize"`
}

type Redis struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`
}

type Log struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type HTTP struct {
	Addr string `yaml:"addr"`
}

// Default returns a configuration with every default applied.
func Default() Config {
	var c Config
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills zero values.
func (c *Config) ApplyDefaults() {
	if c.Corrector.Suggestions == 0 {
		c.Corrector.Suggestions = corrector.DefaultSuggestions
	}
	if c.Corrector.EditLimit == nil {
		n := corrector.DefaultEditLimit
		c.Corrector.EditLimit = &n
	}
	if c.Corrector.RatioFloor == nil {
		f := corrector.DefaultRatioFloor
		c.Corrector.RatioFloor = &f
	}
	if c.Lexicon.Metric == "" {
		c.Lexicon.Metric = options.DefaultOptions.Metric
	}
	if c.Lexicon.Accuracy == 0 {
		c.Lexicon.Accuracy = options.DefaultOptions.Accuracy
	}
	if c.Lexicon.CandidateFactor == 0 {
		c.Lexicon.CandidateFactor = options.DefaultOptions.CandidateFactor
	}
	if c.Lexicon.CacheSize == nil {
		n := options.DefaultOptions.CacheSize
		c.Lexicon.CacheSize = &n
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = DefaultRedis
	}
	if c.Redis.Key == "" {
		c.Redis.Key = DefaultDictKey
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLvl
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = DefaultHTTP
	}
}

// Load reads path, then validates.
func Load(path string) (Config, error) {
	c, err := Read(path)
	if err != nil {
		return c, err
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Read decodes path when it is not empty and applies environment overrides
// and defaults. The result is not validated.
func Read(path string) (Config, error) {
	var c Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	c.applyEnv()
	c.ApplyDefaults()
	return c, nil
}

func (c *Config) applyEnv() {
	c.Dictionary = getenv(EnvDictionary, c.Dictionary)
	if v := os.Getenv(EnvCorpus); v != "" {
		c.Corpus = strings.Split(v, string(os.PathListSeparator))
	}
	c.StopWords = getenv(EnvStopWords, c.StopWords)
	c.Log.Level = getenv(EnvLogLevel, c.Log.Level)
	c.Redis.Addr = getenv(EnvRedisAddr, c.Redis.Addr)
	c.Redis.Password = getenv(EnvRedisPass, c.Redis.Password)
	c.Redis.DB = getEnvInt(EnvRedisDB, c.Redis.DB)
	c.HTTP.Addr = getenv(EnvHTTPAddr, c.HTTP.Addr)
}

// Validate checks value ranges. Input paths are checked when opened.
func (c Config) Validate() error {
	if c.Dictionary == "" {
		return fmt.Errorf("%w: dictionary path is required", ErrInvalid)
	}
	if c.Lexicon.Accuracy < 0 || c.Lexicon.Accuracy > 1 {
		return fmt.Errorf("%w: lexicon accuracy %.2f outside [0,1]", ErrInvalid, c.Lexicon.Accuracy)
	}
	if c.Lexicon.CacheSize != nil && *c.Lexicon.CacheSize < 0 {
		return fmt.Errorf("%w: lexicon cache size %d < 0", ErrInvalid, *c.Lexicon.CacheSize)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	if err := c.CorrectorConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// CorrectorConfig converts to the pipeline policy.
func (c Config) CorrectorConfig() corrector.CorrectorConfig {
	cc := corrector.DefaultConfig()
	cc.Suggestions = c.Corrector.Suggestions
	if c.Corrector.EditLimit != nil {
		cc.EditLimit = *c.Corrector.EditLimit
	}
	if c.Corrector.RatioFloor != nil {
		cc.RatioFloor = *c.Corrector.RatioFloor
	}
	cc.StopAfterCorrection = c.Corrector.StopAfterCorrection
	cc.StemFallback = c.Corrector.StemFallback
	return cc
}

// LexiconOptions converts to lexicon options.
func (c Config) LexiconOptions() []options.Options {
	opts := []options.Options{
		options.WithMetric(c.Lexicon.Metric),
		options.WithAccuracy(c.Lexicon.Accuracy),
		options.WithCandidateFactor(c.Lexicon.CandidateFactor),
	}
	if c.Lexicon.CacheSize != nil {
		opts = append(opts, options.WithCacheSize(*c.Lexicon.CacheSize))
	}
	return opts
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
