package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"stemcheck/internal/config"
)

type globalFlags struct {
	config     string
	dictionary string
	corpus     []string
	stopWords  string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var g globalFlags
	root := &cobra.Command{
		Use:           "stemcheck",
		Short:         "Spell-check Russian text against a dictionary and a reference corpus",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&g.config, "config", "c", "", "config file (YAML)")
	pf.StringVar(&g.dictionary, "dictionary", "", "dictionary file, one word per line")
	pf.StringSliceVar(&g.corpus, "corpus", nil, "reference corpus files")
	pf.StringVar(&g.stopWords, "stopwords", "", "stop-word list (plain or .yaml)")
	pf.StringVar(&g.logLevel, "log-level", "", "log level")

	root.AddCommand(newCheckCmd(&g), newFreqCmd(&g), newWordCmd(&g))
	return root
}

// load reads the config and overlays command-line flags. Validation is left
// to the caller since not every command needs a dictionary.
func (g *globalFlags) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Read(g.config)
	if err != nil {
		return cfg, err
	}
	if g.dictionary != "" {
		cfg.Dictionary = g.dictionary
	}
	if len(g.corpus) > 0 {
		cfg.Corpus = g.corpus
	}
	if g.stopWords != "" {
		cfg.StopWords = g.stopWords
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	logger, err := cfg.Log.Logger(cmd.ErrOrStderr())
	if err != nil {
		return cfg, err
	}
	log.Logger = logger
	return cfg, nil
}
